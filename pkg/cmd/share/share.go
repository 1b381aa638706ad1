package share

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/portal"
	"github.com/Paintersrp/sidoc/internal/share"
	"github.com/Paintersrp/sidoc/internal/state"
	"github.com/Paintersrp/sidoc/pkg/shared/arg"
	"github.com/Paintersrp/sidoc/pkg/shared/flags"
)

func NewCmdShare(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "share [id]",
		Short: "Print the share link for a document.",
		Long: heredoc.Doc(`
			Prints the public link for a document, built from the configured
			share base url and the document title. With --copy the link is
			also placed on the system clipboard.
		`),
		Example: heredoc.Doc(`
			sidoc share 1
			sidoc share 1 --copy
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := arg.HandleID(args)
			if err != nil {
				return err
			}

			var copier share.Copier
			if flags.HandleCopy(cmd) {
				copier = share.SystemClipboard{}
			}
			return run(cmd.OutOrStdout(), s.Catalog, s.Config.ShareBaseURL, id, copier)
		},
	}

	flags.AddCopy(cmd)
	return cmd
}

// run prints the link for id and copies it when copier is not nil.
func run(
	out io.Writer,
	docs catalog.Repository,
	baseURL string,
	id portal.DocumentID,
	copier share.Copier,
) error {
	d, err := docs.Get(id)
	if err != nil {
		return err
	}

	link, err := share.Link(baseURL, d.Title)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintln(out, link); err != nil {
		return err
	}

	if copier == nil {
		return nil
	}
	if err := copier.Copy(link); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, "Copied to clipboard")
	return err
}

package open

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/sidoc/internal/fzf"
	core "github.com/Paintersrp/sidoc/internal/portal"
	"github.com/Paintersrp/sidoc/internal/state"
	portalui "github.com/Paintersrp/sidoc/internal/tui/portal"
	portalcmd "github.com/Paintersrp/sidoc/pkg/cmd/portal"
)

// Picker chooses a document id, seeded with an optional query.
type Picker func(query string) (core.DocumentID, error)

func NewCmdOpen(s *state.State) *cobra.Command {
	var edit bool

	cmd := &cobra.Command{
		Use:     "open [query]",
		Aliases: []string{"o"},
		Short:   "Fuzzy find a document and open it in the portal.",
		Long: heredoc.Doc(`
			Lists the catalog in a fuzzy finder with a rendered preview.
			The chosen document opens in the portal viewer, or in the editor
			with --edit. An optional query seeds the finder.
		`),
		Example: heredoc.Doc(`
			sidoc open
			sidoc open roadmap
			sidoc o handbook --edit
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			finder := fzf.NewFuzzyFinder(
				s.Catalog.List(s.Config.SortField()),
				"Select a document to open.",
			)
			finder.Theme = s.Config.ActiveTheme()
			return run(cmd.OutOrStdout(), s, args, edit, finder.Run, portalui.Run)
		},
	}

	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Open the document in the editor")
	return cmd
}

func run(
	out io.Writer,
	s *state.State,
	args []string,
	edit bool,
	pick Picker,
	launch portalcmd.Launcher,
) error {
	id, err := pick(strings.Join(args, " "))
	if err != nil {
		if errors.Is(err, fzf.ErrNoSelection) {
			_, werr := fmt.Fprintln(out, "No document selected")
			return werr
		}
		return err
	}

	page := core.PageViewer
	if edit {
		page = core.PageEditor
	}
	return launch(s, page, core.Some(id))
}

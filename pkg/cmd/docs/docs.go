package docs

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/sidoc/internal/state"
	"github.com/Paintersrp/sidoc/pkg/cmd/docs/docsList"
	"github.com/Paintersrp/sidoc/pkg/cmd/docs/docsShow"
)

func NewCmdDocs(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "docs",
		Aliases: []string{"d"},
		Short:   "Work with catalog documents from the command line.",
		Long: heredoc.Doc(`
			Lists and prints catalog documents without opening the portal.
		`),
		Example: heredoc.Doc(`
			sidoc docs list --sort title
			sidoc docs show 3
		`),
	}

	cmd.AddCommand(
		docsList.NewCmdDocsList(s),
		docsShow.NewCmdDocsShow(s),
	)

	return cmd
}

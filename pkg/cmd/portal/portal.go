package portal

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	core "github.com/Paintersrp/sidoc/internal/portal"
	"github.com/Paintersrp/sidoc/internal/state"
	portalui "github.com/Paintersrp/sidoc/internal/tui/portal"
	"github.com/Paintersrp/sidoc/pkg/shared/flags"
)

// Launcher starts the interactive portal.
type Launcher func(s *state.State, page core.Page, doc core.OptionalID) error

func NewCmdPortal(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "portal",
		Aliases: []string{"p"},
		Short:   "Open the document portal.",
		Long: heredoc.Doc(`
			Opens the document portal on the configured start page.
			A page or a document id can be given to start somewhere else.
			A document opens in the viewer, or in the editor with --page editor.
		`),
		Example: heredoc.Doc(`
			sidoc portal
			sidoc portal --page recent
			sidoc portal --doc 3
			sidoc portal --doc 3 --page editor
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(cmd, s, portalui.Run)
		},
	}

	AddFlags(cmd)
	return cmd
}

// AddFlags registers the flags read by Run.
func AddFlags(cmd *cobra.Command) {
	flags.AddPage(cmd, "")
	flags.AddDoc(cmd)
}

// Run resolves the start screen from cmd's flags and hands it to launch.
func Run(cmd *cobra.Command, s *state.State, launch Launcher) error {
	page, err := flags.HandlePage(cmd, s.Config.Page())
	if err != nil {
		return err
	}

	doc, err := flags.HandleDoc(cmd)
	if err != nil {
		return err
	}

	if id, ok := doc.Get(); ok {
		if _, err := s.Catalog.Get(id); err != nil {
			return err
		}
	} else if page == core.PageViewer {
		return fmt.Errorf("--page %s needs --doc: %w", page, core.ErrMissingSelection)
	}

	return launch(s, page, doc)
}

package root

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Paintersrp/sidoc/internal/constants"
	"github.com/Paintersrp/sidoc/internal/state"
	portalui "github.com/Paintersrp/sidoc/internal/tui/portal"
	"github.com/Paintersrp/sidoc/pkg/cmd/docs"
	"github.com/Paintersrp/sidoc/pkg/cmd/open"
	"github.com/Paintersrp/sidoc/pkg/cmd/portal"
	"github.com/Paintersrp/sidoc/pkg/cmd/search"
	"github.com/Paintersrp/sidoc/pkg/cmd/settings"
	"github.com/Paintersrp/sidoc/pkg/cmd/share"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	var catalogPath string

	cmd := &cobra.Command{
		Use:     constants.AppName,
		Version: constants.Version,
		Short:   "Browse, read and edit a document catalog from the terminal.",
		Long: heredoc.Doc(`
			A terminal document portal: dashboard, document lists, tags, shared
			and recent documents, a markdown viewer and editor, search, and
			share, upload and delete dialogs.

			Running sidoc without a subcommand opens the portal.
		`),
		Example: heredoc.Doc(`
			sidoc
			sidoc --page documents
			sidoc --catalog ~/work/catalog.yaml docs list
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString("catalog")
			f := cmd.Flag("catalog")
			if f != nil && f.Changed {
				path = catalogPath
			} else if path == "" || path == s.CatalogPath {
				return nil
			}
			if err := s.UseCatalog(path); err != nil {
				return err
			}
			s.Logger.Debug("catalog override", zap.String("path", path))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return portal.Run(cmd, s, portalui.Run)
		},
	}

	cmd.PersistentFlags().
		StringVarP(
			&catalogPath,
			"catalog",
			"C",
			s.Config.Catalog,
			"Catalog file to use instead of the configured one.",
		)
	viper.BindPFlag("catalog", cmd.PersistentFlags().Lookup("catalog"))

	portal.AddFlags(cmd)
	viper.BindPFlag("page", cmd.Flags().Lookup("page"))

	cmd.AddCommand(
		portal.NewCmdPortal(s),
		docs.NewCmdDocs(s),
		search.NewCmdSearch(s),
		open.NewCmdOpen(s),
		share.NewCmdShare(s),
		settings.NewCmdSettings(s),
	)

	return cmd, nil
}

package settings

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/sidoc/internal/state"
	"github.com/Paintersrp/sidoc/internal/tui/settings"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "settings",
		Aliases: []string{"s"},
		Short:   "CLI settings menu",
		Long: heredoc.Doc(`
			Adjusts the portal settings from the terminal: start page, list
			layout, default sort, markdown theme, share link base url and the
			catalog file. Every change is saved to the config file immediately.
		`),
		Example: "sidoc settings",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return settings.Run(s.Config)
		},
	}

	return cmd
}

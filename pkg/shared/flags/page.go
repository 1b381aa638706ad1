package flags

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/sidoc/internal/portal"
)

func AddPage(cmd *cobra.Command, fallback string) {
	cmd.Flags().StringP("page", "P", fallback, "Page to open: "+joinNames(portal.PageNames()))
}

// HandlePage parses the page flag. An unset flag falls back to the viper
// "page" key, then to fallback.
func HandlePage(cmd *cobra.Command, fallback portal.Page) (portal.Page, error) {
	raw, err := cmd.Flags().GetString("page")
	if err != nil {
		return fallback, err
	}
	if !cmd.Flags().Changed("page") {
		raw = viper.GetString("page")
	}
	if raw == "" {
		return fallback, nil
	}
	return portal.ParsePage(raw)
}

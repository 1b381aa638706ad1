package flags

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/sidoc/internal/catalog"
)

func AddSort(cmd *cobra.Command, fallback string) {
	cmd.Flags().StringP("sort", "o", fallback, "Sort documents by date, title or author")
}

// HandleSort parses the sort flag. An unset flag defers to the viper "sort"
// key when it holds a value.
func HandleSort(cmd *cobra.Command) (catalog.SortField, error) {
	raw, err := cmd.Flags().GetString("sort")
	if err != nil {
		return catalog.SortDate, err
	}
	if v := viper.GetString("sort"); !cmd.Flags().Changed("sort") && v != "" {
		raw = v
	}
	return catalog.ParseSortField(raw)
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}

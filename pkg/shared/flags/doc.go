package flags

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/sidoc/internal/portal"
)

func AddDoc(cmd *cobra.Command) {
	cmd.Flags().IntP("doc", "d", 0, "Document id to open")
}

// HandleDoc returns the document id from the doc flag, unset when the flag
// was not given.
func HandleDoc(cmd *cobra.Command) (portal.OptionalID, error) {
	if !cmd.Flags().Changed("doc") {
		return portal.None(), nil
	}
	id, err := cmd.Flags().GetInt("doc")
	if err != nil {
		return portal.None(), err
	}
	return portal.Some(portal.DocumentID(id)), nil
}

package flags

import "github.com/spf13/cobra"

func AddCopy(cmd *cobra.Command) {
	cmd.Flags().BoolP("copy", "c", false, "Copy the result to the clipboard")
}

func HandleCopy(cmd *cobra.Command) bool {
	copyFlag, _ := cmd.Flags().GetBool("copy")
	return copyFlag
}

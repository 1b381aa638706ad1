package docsList

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/state"
	"github.com/Paintersrp/sidoc/pkg/shared/flags"
)

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func NewCmdDocsList(s *state.State) *cobra.Command {
	var tag string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "l"},
		Short:   "Print the document catalog as a table.",
		Long: heredoc.Doc(`
			Prints every document in the catalog, newest first unless another
			sort is given. A tag narrows the list to documents carrying it.
		`),
		Example: heredoc.Doc(`
			sidoc docs list
			sidoc docs list --sort author
			sidoc docs list --tag finance
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := flags.HandleSort(cmd)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), s.Catalog, field, tag)
		},
	}

	flags.AddSort(cmd, s.Config.Sort)
	cmd.Flags().StringVarP(&tag, "tag", "t", "", "Only list documents with this tag")
	return cmd
}

func run(out io.Writer, docs catalog.Repository, field catalog.SortField, tag string) error {
	var rows [][]string
	for _, d := range docs.List(field) {
		if tag != "" && !d.HasTag(tag) {
			continue
		}
		rows = append(rows, []string{
			d.ID.String(),
			d.Title,
			d.Author,
			d.Modified.Format("Jan 2, 2006"),
			string(d.Status),
			strings.Join(d.Tags, ", "),
		})
	}

	if len(rows) == 0 {
		if tag != "" {
			_, err := fmt.Fprintf(out, "No documents tagged %q\n", tag)
			return err
		}
		_, err := fmt.Fprintln(out, "No documents")
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "Title", "Author", "Modified", "Status", "Tags").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == 0 {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(out, t.Render())
	return err
}

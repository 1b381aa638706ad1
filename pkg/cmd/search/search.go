package search

import (
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/state"
)

func NewCmdSearch(s *state.State) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "search [query]",
		Aliases: []string{"find", "f"},
		Short:   "Search the catalog by title, tag, author or content.",
		Long: heredoc.Doc(`
			Searches the catalog the same way the portal search bar does.
			Title matches rank first, then tags and authors, then document text,
			then loose fuzzy matches on the title.
		`),
		Example: heredoc.Doc(`
			sidoc search budget
			sidoc search "product roadmap" --limit 3
		`),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), s.Catalog, strings.Join(args, " "), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 0, "Maximum number of results, 0 for all")
	return cmd
}

func run(out io.Writer, docs catalog.Repository, query string, limit int) error {
	query = strings.TrimSpace(query)
	if query == "" {
		return fmt.Errorf("search query cannot be empty")
	}

	results := docs.Search(query)
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if len(results) == 0 {
		_, err := fmt.Fprintf(out, "No documents match %q\n", query)
		return err
	}

	for _, r := range results {
		d := r.Document
		if _, err := fmt.Fprintf(
			out,
			"%3d  %s  (%s, %s)\n     %s\n",
			d.ID,
			d.Title,
			d.Author,
			d.Modified.Format("Jan 2, 2006"),
			d.Snippet,
		); err != nil {
			return err
		}
	}
	return nil
}

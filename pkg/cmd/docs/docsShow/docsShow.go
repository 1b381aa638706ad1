package docsShow

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/outline"
	"github.com/Paintersrp/sidoc/internal/state"
	"github.com/Paintersrp/sidoc/pkg/shared/arg"
)

const defaultWidth = 100

type options struct {
	raw   bool
	theme string
	width int
}

func NewCmdDocsShow(s *state.State) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:     "show [id]",
		Aliases: []string{"s", "cat"},
		Short:   "Print a document rendered as markdown.",
		Long: heredoc.Doc(`
			Prints one document with its metadata and body. The body is rendered
			with the configured theme when writing to a terminal, and printed as
			plain markdown otherwise or when --raw is given.
		`),
		Example: heredoc.Doc(`
			sidoc docs show 1
			sidoc docs show 3 --raw > api.md
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := arg.HandleID(args)
			if err != nil {
				return err
			}
			doc, err := s.Catalog.Get(id)
			if err != nil {
				return err
			}

			opts := options{raw: raw, theme: s.Config.ActiveTheme(), width: defaultWidth}
			fd := int(os.Stdout.Fd())
			if !term.IsTerminal(fd) {
				opts.raw = true
			} else if w, _, err := term.GetSize(fd); err == nil && w > 0 {
				opts.width = w
			}

			return run(cmd.OutOrStdout(), doc, opts)
		},
	}

	cmd.Flags().BoolVarP(&raw, "raw", "r", false, "Print the markdown source")
	return cmd
}

func run(out io.Writer, d catalog.Document, opts options) error {
	source := document(d)
	if opts.raw {
		_, err := io.WriteString(out, source)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opts.theme),
		glamour.WithWordWrap(opts.width),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := r.Render(source)
	if err != nil {
		return fmt.Errorf("failed to render document %d: %w", d.ID, err)
	}

	_, err = io.WriteString(out, rendered)
	return err
}

// document lays out the metadata block above the body.
func document(d catalog.Document) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "- Author: %s\n", d.Author)
	fmt.Fprintf(&b, "- Modified: %s\n", d.Modified.Format("January 2, 2006"))
	fmt.Fprintf(&b, "- Status: %s\n", d.Status)
	if len(d.Tags) > 0 {
		fmt.Fprintf(&b, "- Tags: %s\n", strings.Join(d.Tags, ", "))
	}
	if v, ok := d.Current(); ok {
		fmt.Fprintf(&b, "- Version: %s\n", v.Label)
	}
	fmt.Fprintf(&b, "- Words: %d\n", outline.Parse(d.Body).Words)
	b.WriteString("\n---\n\n")
	b.WriteString(d.Body)
	if !strings.HasSuffix(d.Body, "\n") {
		b.WriteByte('\n')
	}
	return b.String()
}

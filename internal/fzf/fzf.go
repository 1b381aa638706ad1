// Package fzf picks a catalog document with an interactive fuzzy finder.
package fzf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/portal"
)

// ErrNoSelection is returned when the user aborts the finder.
var ErrNoSelection = errors.New("no document selected")

// Finder is a thin wrapper so tests can replace the terminal UI.
type Finder func(docs []catalog.Document, label func(int) string, opts ...fuzzyfinder.Option) (int, error)

// FuzzyFinder lists catalog documents with a rendered markdown preview.
type FuzzyFinder struct {
	Header string
	Theme  string
	docs   []catalog.Document
	find   Finder
}

func NewFuzzyFinder(docs []catalog.Document, header string) *FuzzyFinder {
	return &FuzzyFinder{
		Header: header,
		Theme:  "dracula",
		docs:   docs,
		find: func(docs []catalog.Document, label func(int) string, opts ...fuzzyfinder.Option) (int, error) {
			return fuzzyfinder.Find(docs, label, opts...)
		},
	}
}

// WithFinder replaces the interactive finder.
func (f *FuzzyFinder) WithFinder(find Finder) *FuzzyFinder {
	f.find = find
	return f
}

// Run shows the finder, seeded with query when it is not empty, and returns
// the id of the chosen document.
func (f *FuzzyFinder) Run(query string) (portal.DocumentID, error) {
	if len(f.docs) == 0 {
		return 0, fmt.Errorf("catalog is empty")
	}

	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}
	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	idx, err := f.find(f.docs, f.label, options...)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return 0, ErrNoSelection
		}
		return 0, fmt.Errorf("error selecting document: %w", err)
	}
	if idx < 0 || idx >= len(f.docs) {
		return 0, ErrNoSelection
	}

	return f.docs[idx].ID, nil
}

func (f *FuzzyFinder) label(i int) string {
	d := f.docs[i]
	if len(d.Tags) == 0 {
		return fmt.Sprintf("%s [No tags] ", d.Title)
	}
	return fmt.Sprintf("%s [Tags: %s] ", d.Title, strings.Join(d.Tags, ", "))
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	d := f.docs[i]
	source := fmt.Sprintf("# %s\n\n*%s · %s*\n\n%s", d.Title, d.Author, d.Modified.Format("Jan 2, 2006"), d.Body)

	width := w - 4
	if width < 20 {
		width = 20
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(f.Theme),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return d.Body
	}

	markdown, err := r.Render(source)
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}

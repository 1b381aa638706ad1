package portal

import (
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// markdownRenderer caches a glamour renderer for the last requested width.
type markdownRenderer struct {
	theme    string
	width    int
	renderer *glamour.TermRenderer
}

func (r *markdownRenderer) invalidate() {
	r.renderer = nil
}

func (r *markdownRenderer) render(source string, width int) (string, error) {
	if width < 20 {
		width = 20
	}
	if r.renderer == nil || r.width != width {
		tr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style()),
			glamour.WithWordWrap(width),
			glamour.WithColorProfile(colorProfile(r.theme)),
		)
		if err != nil {
			return source, err
		}
		r.renderer = tr
		r.width = width
	}
	return r.renderer.Render(source)
}

func (r *markdownRenderer) style() string {
	if r.theme == "" {
		return "dracula"
	}
	return r.theme
}

func colorProfile(theme string) termenv.Profile {
	switch theme {
	case "notty", "ascii":
		return termenv.Ascii
	}
	return lipgloss.ColorProfile()
}

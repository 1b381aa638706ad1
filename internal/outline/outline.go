package outline

import (
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type Heading struct {
	Level int
	Text  string
}

type Summary struct {
	Headings []Heading
	Words    int
	Tasks    int
}

// Parse walks a markdown document and collects its headings and word count.
func Parse(source string) Summary {
	src := []byte(source)
	doc := goldmark.DefaultParser().Parse(text.NewReader(src))

	var s Summary
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			s.Headings = append(s.Headings, Heading{
				Level: node.Level,
				Text:  strings.TrimSpace(string(node.Text(src))),
			})
		case *ast.Text:
			s.Words += countWords(string(node.Segment.Value(src)))
		case *ast.CodeSpan:
			s.Words++
			return ast.WalkSkipChildren, nil
		case *ast.ListItem:
			content := strings.TrimSpace(string(node.Text(src)))
			if strings.HasPrefix(content, "[ ]") || strings.HasPrefix(content, "[x]") {
				s.Tasks++
			}
		}
		return ast.WalkContinue, nil
	})
	return s
}

func countWords(s string) int {
	return len(strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r)
	}))
}

// Render formats the headings as an indented list.
func (s Summary) Render() string {
	if len(s.Headings) == 0 {
		return ""
	}
	base := s.Headings[0].Level
	for _, h := range s.Headings {
		if h.Level < base {
			base = h.Level
		}
	}

	var b strings.Builder
	for i, h := range s.Headings {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat("  ", h.Level-base))
		b.WriteString(h.Text)
	}
	return b.String()
}

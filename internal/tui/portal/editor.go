package portal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Paintersrp/sidoc/internal/outline"
	core "github.com/Paintersrp/sidoc/internal/portal"
)

type editorField int

const (
	fieldTitle editorField = iota
	fieldBody
)

type editorModel struct {
	title   textinput.Model
	body    textarea.Model
	preview viewport.Model
	focus   editorField
	showing bool
	err     error
}

func newEditorModel() editorModel {
	title := textinput.New()
	title.Placeholder = "Untitled Document"
	title.Prompt = ""
	title.CharLimit = 200

	body := textarea.New()
	body.Placeholder = "Start writing..."
	body.CharLimit = 0
	body.ShowLineNumbers = false
	body.MaxHeight = 1000

	e := editorModel{
		title:   title,
		body:    body,
		preview: viewport.New(defaultWidth, defaultHeight),
	}
	e.resize(defaultWidth, defaultHeight)
	return e
}

func (e *editorModel) resize(width, height int) {
	e.title.Width = max(20, width-4)
	e.body.SetWidth(max(20, width-2))
	e.body.SetHeight(max(4, height-6))
	e.preview.Width = max(20, width-2)
	e.preview.Height = max(4, height-6)
}

// update forwards msg to the focused field.
func (e *editorModel) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if e.showing {
		e.preview, cmd = e.preview.Update(msg)
		return cmd
	}
	switch e.focus {
	case fieldTitle:
		e.title, cmd = e.title.Update(msg)
	default:
		e.body, cmd = e.body.Update(msg)
	}
	return cmd
}

func (e *editorModel) focusField(f editorField) tea.Cmd {
	e.focus = f
	if f == fieldTitle {
		e.body.Blur()
		return e.title.Focus()
	}
	e.title.Blur()
	return e.body.Focus()
}

// loadEditor fills the editor for id and returns the focus command of the
// first field.
func (m *Model) loadEditor(id core.OptionalID) tea.Cmd {
	w, h := m.contentSize()
	m.editor.resize(w, h)
	m.editor.showing = false
	m.editor.err = nil
	m.editor.title.SetValue("")
	m.editor.body.SetValue("")

	if docID, ok := id.Get(); ok {
		doc, err := m.docs.Get(docID)
		if err != nil {
			m.editor.err = err
		} else {
			m.editor.title.SetValue(doc.Title)
			m.editor.body.SetValue(strings.TrimRight(doc.Body, "\n"))
		}
	}

	field := fieldBody
	if !id.IsSet() {
		field = fieldTitle
	}
	return m.editor.focusField(field)
}

func (m *Model) updateEditor(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.save):
		m.coord.ConfirmSave()
		return nil
	case key.Matches(msg, m.keys.back):
		m.coord.Back()
		return nil
	case key.Matches(msg, m.keys.preview):
		m.togglePreview()
		return nil
	case !m.editor.showing && key.Matches(msg, m.keys.nextField):
		if m.editor.focus == fieldTitle {
			return m.editor.focusField(fieldBody)
		}
		return m.editor.focusField(fieldTitle)
	}
	return m.editor.update(msg)
}

func (m *Model) togglePreview() {
	m.editor.showing = !m.editor.showing
	if !m.editor.showing {
		return
	}

	source := m.editor.body.Value()
	if title := strings.TrimSpace(m.editor.title.Value()); title != "" {
		source = "# " + title + "\n\n" + source
	}
	rendered, err := m.md.render(source, m.editor.preview.Width)
	if err != nil {
		m.logger.Warn("render preview", zap.Error(err))
	}
	m.editor.preview.SetContent(rendered)
	m.editor.preview.GotoTop()
}

func (m *Model) renderEditor(id core.OptionalID, width int) string {
	heading := "Edit Document"
	if !id.IsSet() {
		heading = "New Document"
	}

	tabs := []string{"Write", "Preview"}
	active := 0
	if m.editor.showing {
		active = 1
	}
	for i, tab := range tabs {
		if i == active {
			tabs[i] = sidebarActiveStyle.Render(tab)
		} else {
			tabs[i] = sidebarItemStyle.Render(tab)
		}
	}

	var body string
	if m.editor.showing {
		body = m.editor.preview.View()
	} else {
		body = lipgloss.JoinVertical(
			lipgloss.Left,
			searchStyle.Width(width-4).Render(m.editor.title.View()),
			m.editor.body.View(),
		)
	}

	sum := outline.Parse(m.editor.body.Value())
	status := subtleStyle.Render(fmt.Sprintf("%d words · %d headings", sum.Words, len(sum.Headings)))
	if m.editor.err != nil {
		status = dangerStyle.Render(m.editor.err.Error())
	}

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(heading),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		body,
		status,
	))
}

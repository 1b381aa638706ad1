package portal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/outline"
	core "github.com/Paintersrp/sidoc/internal/portal"
)

const viewerSidebarWidth = 30

type viewerModel struct {
	viewport viewport.Model
	id       core.DocumentID
	doc      catalog.Document
	err      error
	outline  outline.Summary
}

func newViewerModel() viewerModel {
	return viewerModel{viewport: viewport.New(defaultWidth, defaultHeight)}
}

func (v *viewerModel) resize(width, height int) {
	v.viewport.Width = max(20, width-viewerSidebarWidth-panelStyle.GetHorizontalFrameSize())
	v.viewport.Height = max(4, height-4)
}

func (m *Model) loadViewer(id core.DocumentID) {
	w, h := m.contentSize()
	m.viewer.resize(w, h)
	m.viewer.id = id

	doc, err := m.docs.Get(id)
	m.viewer.doc = doc
	m.viewer.err = err
	if err != nil {
		m.viewer.outline = outline.Summary{}
		m.viewer.viewport.SetContent("")
		return
	}

	m.viewer.outline = outline.Parse(doc.Body)
	rendered, err := m.md.render(doc.Body, m.viewer.viewport.Width)
	if err != nil {
		m.logger.Warn("render document", zap.Stringer("id", id), zap.Error(err))
	}
	m.viewer.viewport.SetContent(rendered)
	m.viewer.viewport.GotoTop()
}

func (m *Model) updateViewer(msg tea.KeyMsg) tea.Cmd {
	if isDocumentKey(m.keys, msg) {
		return m.documentAction(msg, func() (core.DocumentID, bool) {
			return m.viewer.id, m.viewer.err == nil
		})
	}

	var cmd tea.Cmd
	m.viewer.viewport, cmd = m.viewer.viewport.Update(msg)
	return cmd
}

func isDocumentKey(k keyMap, msg tea.KeyMsg) bool {
	return key.Matches(msg, k.open, k.edit, k.share, k.remove)
}

func (m *Model) renderViewer(width int) string {
	if m.viewer.err != nil {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render("Document unavailable"),
			subtleStyle.Render(m.viewer.err.Error()),
		)
	}

	d := m.viewer.doc
	header := lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render(d.Title)+" "+statusBadge(d.Status),
		subtleStyle.Render(fmt.Sprintf("%s · %s · %s", d.Author, d.Modified.Format(dateLayout), d.Type)),
		renderTags(d.Tags, width),
	)

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.viewer.viewport.View(),
		panelStyle.Width(viewerSidebarWidth).Render(m.renderDocumentPanel(d)),
	)

	scroll := subtleStyle.Render(fmt.Sprintf("%3.f%%", m.viewer.viewport.ScrollPercent()*100))
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, header, "", body, scroll))
}

func (m *Model) renderDocumentPanel(d catalog.Document) string {
	sum := m.viewer.outline
	lines := []string{titleStyle.Render("Outline")}
	if toc := sum.Render(); toc != "" {
		for _, line := range strings.Split(toc, "\n") {
			lines = append(lines, textStyle.Render(truncate(line, viewerSidebarWidth-2)))
		}
	} else {
		lines = append(lines, subtleStyle.Render("No headings"))
	}
	lines = append(lines, subtleStyle.Render(fmt.Sprintf("%d words", sum.Words)))
	if sum.Tasks > 0 {
		lines = append(lines, subtleStyle.Render(fmt.Sprintf("%d tasks", sum.Tasks)))
	}

	lines = append(lines, "", titleStyle.Render("Version History"))
	if len(d.Versions) == 0 {
		lines = append(lines, subtleStyle.Render("No versions"))
	}
	for i, v := range d.Versions {
		label := v.Label
		if i == 0 {
			label += " (current)"
		}
		lines = append(lines,
			textStyle.Render(label),
			subtleStyle.Render(truncate(v.Date.Format(dateLayout)+" · "+v.Author, viewerSidebarWidth-2)),
		)
		if v.Note != "" {
			lines = append(lines, subtleStyle.Render(truncate(v.Note, viewerSidebarWidth-2)))
		}
	}

	lines = append(lines, "", titleStyle.Render("People with Access"))
	for _, a := range d.Access {
		lines = append(lines, textStyle.Render(truncate(a.Initials()+"  "+a.Name, viewerSidebarWidth-12))+" "+subtleStyle.Render(a.Role.Label()))
	}
	return strings.Join(lines, "\n")
}

package portal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/config"
	core "github.com/Paintersrp/sidoc/internal/portal"
)

const (
	dateLayout = "Jan 2, 2006"
	cardWidth  = 32
)

// entry is one row of a listing. Tag is only set on the tags page, where a
// document appears once per tag.
type entry struct {
	tag string
	doc catalog.Document
}

var listingTitles = map[core.Page]string{
	core.PageDocuments: "All Documents",
	core.PageTags:      "Tags & Labels",
	core.PageShared:    "Shared with Me",
	core.PageRecent:    "Recent Documents",
}

func (m *Model) loadListing(page core.Page, entering bool) {
	m.entries = m.listingEntries(page)
	if entering {
		m.cursor = 0
	}
	m.cursor = clamp(m.cursor, len(m.entries))
	m.buildTable(page)
}

func (m *Model) listingEntries(page core.Page) []entry {
	var entries []entry
	switch page {
	case core.PageDocuments:
		for _, d := range m.docs.List(m.sortField) {
			entries = append(entries, entry{doc: d})
		}
	case core.PageShared:
		docs := m.docs.Shared()
		catalog.Sort(docs, m.sortField)
		for _, d := range docs {
			entries = append(entries, entry{doc: d})
		}
	case core.PageRecent:
		for _, d := range m.docs.Recent(0) {
			entries = append(entries, entry{doc: d})
		}
	case core.PageTags:
		for _, group := range m.docs.Tags() {
			catalog.Sort(group.Documents, m.sortField)
			for _, d := range group.Documents {
				entries = append(entries, entry{tag: group.Tag, doc: d})
			}
		}
	}
	return entries
}

func (m *Model) buildTable(page core.Page) {
	width, height := m.contentSize()
	tagged := page == core.PageTags

	titleW := width / 3
	authorW := width / 6
	dateW := 13
	statusW := 10
	rest := width - titleW - authorW - dateW - statusW - 10
	if rest < 8 {
		rest = 8
	}

	var cols []table.Column
	if tagged {
		cols = []table.Column{
			{Title: "Tag", Width: rest},
			{Title: "Title", Width: titleW},
			{Title: "Author", Width: authorW},
			{Title: "Modified", Width: dateW},
			{Title: "Status", Width: statusW},
		}
	} else {
		cols = []table.Column{
			{Title: "Title", Width: titleW},
			{Title: "Author", Width: authorW},
			{Title: "Modified", Width: dateW},
			{Title: "Status", Width: statusW},
			{Title: "Tags", Width: rest},
		}
	}

	rows := make([]table.Row, 0, len(m.entries))
	for _, e := range m.entries {
		d := e.doc
		date := d.Modified.Format(dateLayout)
		if tagged {
			rows = append(rows, table.Row{e.tag, d.Title, d.Author, date, string(d.Status)})
			continue
		}
		rows = append(rows, table.Row{d.Title, d.Author, date, string(d.Status), strings.Join(d.Tags, ", ")})
	}

	// Rows must shrink before the columns do or the table indexes past them.
	m.table.SetRows(nil)
	m.table.SetColumns(cols)
	m.table.SetRows(rows)
	m.table.SetHeight(height - 2)
	m.table.SetCursor(m.cursor)
}

func (m *Model) selectedEntry() (entry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return entry{}, false
	}
	return m.entries[m.cursor], true
}

func (m *Model) cardColumns() int {
	width, _ := m.contentSize()
	cols := width / (cardWidth + cardStyle.GetHorizontalFrameSize())
	if cols < 1 {
		return 1
	}
	return cols
}

func (m *Model) moveCursor(delta int) {
	m.cursor = clamp(m.cursor+delta, len(m.entries))
	m.table.SetCursor(m.cursor)
}

func (m *Model) updateListing(msg tea.KeyMsg) tea.Cmd {
	step := 1
	if m.layout == config.LayoutCards {
		step = m.cardColumns()
	}

	switch {
	case key.Matches(msg, m.keys.up):
		m.moveCursor(-step)
	case key.Matches(msg, m.keys.down):
		m.moveCursor(step)
	case key.Matches(msg, m.keys.left):
		if m.layout == config.LayoutCards {
			m.moveCursor(-1)
		}
	case key.Matches(msg, m.keys.right):
		if m.layout == config.LayoutCards {
			m.moveCursor(1)
		}
	case key.Matches(msg, m.keys.layout):
		if m.layout == config.LayoutTable {
			m.layout = config.LayoutCards
		} else {
			m.layout = config.LayoutTable
		}
	case key.Matches(msg, m.keys.sort):
		m.sortField = m.sortField.Next()
		m.sync(true)
	default:
		return m.documentAction(msg, m.selectedID)
	}
	return nil
}

func (m *Model) selectedID() (core.DocumentID, bool) {
	e, ok := m.selectedEntry()
	if !ok {
		return 0, false
	}
	return e.doc.ID, true
}

// documentAction handles the per-document keys shared by every page that
// has a current document.
func (m *Model) documentAction(msg tea.KeyMsg, current func() (core.DocumentID, bool)) tea.Cmd {
	var action func(core.DocumentID)
	switch {
	case key.Matches(msg, m.keys.open):
		action = m.coord.ViewDocument
	case key.Matches(msg, m.keys.edit):
		action = func(id core.DocumentID) { m.coord.EditDocument(core.Some(id)) }
	case key.Matches(msg, m.keys.share):
		action = m.openShare
	case key.Matches(msg, m.keys.remove):
		action = m.coord.RequestDelete
	default:
		return nil
	}

	if id, ok := current(); ok {
		action(id)
	}
	return nil
}

func (m *Model) renderListing(page core.Page, width int) string {
	header := titleStyle.Render(listingTitles[page])
	sortLabel := "Sorted by " + m.sortField.Label()
	if page == core.PageRecent {
		sortLabel = "Newest first"
	}
	meta := subtleStyle.Render(fmt.Sprintf("%d documents · %s · %s view", len(m.entries), sortLabel, m.layout))

	var body string
	switch {
	case len(m.entries) == 0:
		body = subtleStyle.Render("No documents here yet.")
	case m.layout == config.LayoutCards:
		body = m.renderCards(page)
	default:
		body = m.table.View()
	}

	return lipgloss.NewStyle().Width(width).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, meta, "", body),
	)
}

func (m *Model) renderCards(page core.Page) string {
	cols := m.cardColumns()
	_, height := m.contentSize()

	// Keep the cursor's card row on screen.
	perCard := 7
	visibleRows := max(1, (height-3)/perCard)
	row := m.cursor / cols
	first := 0
	if row >= visibleRows {
		first = row - visibleRows + 1
	}

	var rows []string
	var current []string
	var lastTag string
	for i, e := range m.entries {
		if i/cols < first {
			continue
		}
		if i/cols >= first+visibleRows {
			break
		}
		if page == core.PageTags && e.tag != lastTag && len(current) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
		lastTag = e.tag
		current = append(current, renderCard(e, i == m.cursor))
		if len(current) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
			current = nil
		}
	}
	if len(current) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, current...))
	}
	return strings.Join(rows, "\n")
}

func renderCard(e entry, selected bool) string {
	d := e.doc
	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}

	title := truncate(d.Title, cardWidth-2)
	lines := []string{
		titleStyle.Render(title),
		subtleStyle.Render(truncate(d.Author+" · "+d.Modified.Format(dateLayout), cardWidth-2)),
		textStyle.Render(truncate(d.Snippet, cardWidth-2)),
		statusBadge(d.Status) + " " + renderTags(d.Tags, cardWidth-len(d.Status)-3),
	}
	if e.tag != "" {
		lines = append([]string{tagStyle.Render("#" + e.tag)}, lines...)
	}
	return style.Width(cardWidth).Render(strings.Join(lines, "\n"))
}

func renderTags(tags []string, width int) string {
	var b strings.Builder
	used := 0
	for _, tag := range tags {
		label := "#" + tag
		if used+len(label)+1 > width {
			break
		}
		if used > 0 {
			b.WriteString(" ")
			used++
		}
		b.WriteString(tagStyle.Copy().Padding(0).Render(label))
		used += len(label)
	}
	return b.String()
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}

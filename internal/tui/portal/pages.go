package portal

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/sidoc/internal/catalog"
	core "github.com/Paintersrp/sidoc/internal/portal"
)

func (m *Model) updateDashboard(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.up):
		m.dashboardCursor = clamp(m.dashboardCursor-1, len(m.recent))
		return nil
	case key.Matches(msg, m.keys.down):
		m.dashboardCursor = clamp(m.dashboardCursor+1, len(m.recent))
		return nil
	}
	return m.documentAction(msg, func() (core.DocumentID, bool) {
		if m.dashboardCursor >= len(m.recent) {
			return 0, false
		}
		return m.recent[m.dashboardCursor].ID, true
	})
}

func (m *Model) renderDashboard(width int) string {
	stats := m.docs.Stats()
	cards := []struct {
		label string
		value int
	}{
		{"Total Documents", stats.Total},
		{"Shared with Me", stats.Shared},
		{"Drafts", stats.Drafts},
		{"This Week", stats.ThisWeek},
	}

	statWidth := max(14, (width-len(cards)*3)/len(cards))
	rendered := make([]string, 0, len(cards))
	for _, c := range cards {
		rendered = append(rendered, cardStyle.Width(statWidth).Render(
			subtleStyle.Render(c.label)+"\n"+titleStyle.Render(fmt.Sprintf("%d", c.value)),
		))
	}

	lines := []string{
		titleStyle.Render("Welcome back, " + m.cfg.Profile.FirstName),
		subtleStyle.Render("Here's what's happening with your documents today."),
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, rendered...),
		"",
		titleStyle.Render("Recent Documents"),
	}

	if len(m.recent) == 0 {
		lines = append(lines, subtleStyle.Render("No documents yet."))
	}
	for i, d := range m.recent {
		line := fmt.Sprintf("%-*s %s", max(10, width/2), truncate(d.Title, width/2), subtleStyle.Render(d.Author+" · "+d.Modified.Format(dateLayout)))
		if i == m.dashboardCursor {
			lines = append(lines, selectedItemStyle.Render("> "+line))
			continue
		}
		lines = append(lines, "  "+line)
	}

	lines = append(lines,
		"",
		titleStyle.Render("Quick Actions"),
		textStyle.Render("u  Upload Document    n  New Document    / Search"),
	)

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m *Model) loadResults(query string, entering bool) {
	m.results = m.docs.Search(query)
	if entering {
		m.resultCursor = 0
	}
	m.resultCursor = clamp(m.resultCursor, len(m.results))
}

func (m *Model) updateResults(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.up):
		m.resultCursor = clamp(m.resultCursor-1, len(m.results))
		return nil
	case key.Matches(msg, m.keys.down):
		m.resultCursor = clamp(m.resultCursor+1, len(m.results))
		return nil
	}
	return m.documentAction(msg, func() (core.DocumentID, bool) {
		if m.resultCursor >= len(m.results) {
			return 0, false
		}
		return m.results[m.resultCursor].Document.ID, true
	})
}

func (m *Model) renderResults(query string, width int) string {
	lines := []string{
		titleStyle.Render("Search Results"),
		subtleStyle.Render(fmt.Sprintf("%d results for %q", len(m.results), query)),
		"",
	}

	if len(m.results) == 0 {
		lines = append(lines, textStyle.Render("No documents match your search."))
	}

	for i, r := range m.results {
		block := []string{
			highlightTitle(r),
			subtleStyle.Render(r.Document.Author + " · " + r.Document.Modified.Format(dateLayout) + " · " + strings.Join(r.Document.Tags, ", ")),
			textStyle.Render(truncate(r.Document.Snippet, width-4)),
		}
		style := cardStyle
		if i == m.resultCursor {
			style = cardSelectedStyle
		}
		lines = append(lines, style.Width(width-4).Render(strings.Join(block, "\n")))
	}

	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

// highlightTitle underlines the characters of the title the query matched.
func highlightTitle(r catalog.Result) string {
	if len(r.TitleMatches) == 0 {
		return titleStyle.Render(r.Document.Title)
	}

	matched := make(map[int]bool, len(r.TitleMatches))
	for _, i := range r.TitleMatches {
		matched[i] = true
	}

	hit := titleStyle.Copy().Underline(true)
	var b strings.Builder
	for i, ch := range []rune(r.Document.Title) {
		if matched[i] {
			b.WriteString(hit.Render(string(ch)))
			continue
		}
		b.WriteString(titleStyle.Render(string(ch)))
	}
	return b.String()
}

func (m *Model) renderProfile(width int) string {
	p := m.cfg.Profile

	verified := ""
	if p.Verified {
		verified = publishedStyle.Render(" ✓ Verified")
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		avatarStyle.Copy().Padding(1, 2).Render(p.Initials()),
		"  ",
		lipgloss.JoinVertical(
			lipgloss.Left,
			titleStyle.Render(p.Name())+verified,
			textStyle.Render(p.JobTitle),
			subtleStyle.Render(p.Email),
		),
	)

	perms := p.Permissions
	permissions := []string{
		titleStyle.Render("Role & Permissions"),
		textStyle.Render("Role: " + p.Role),
		checkbox(perms.CreateDocuments, "Create documents"),
		checkbox(perms.EditDocuments, "Edit documents"),
		checkbox(perms.DeleteDocuments, "Delete documents"),
		checkbox(perms.ShareDocuments, "Share documents"),
		checkbox(perms.ManageUsers, "Manage users"),
	}

	prefs := p.Preferences
	preferences := []string{
		titleStyle.Render("Preferences"),
		checkbox(prefs.EmailNotifications, "Email notifications"),
		checkbox(prefs.AutoSave, "Auto-save documents"),
		checkbox(prefs.DarkMode, "Dark mode"),
	}

	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("Profile"),
		"",
		header,
		"",
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			cardStyle.Render(strings.Join(permissions, "\n")),
			cardStyle.Render(strings.Join(preferences, "\n")),
		),
	))
}

func checkbox(on bool, label string) string {
	if on {
		return publishedStyle.Render("[x] ") + textStyle.Render(label)
	}
	return subtleStyle.Render("[ ] " + label)
}

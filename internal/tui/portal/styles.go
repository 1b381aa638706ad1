package portal

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/notify"
)

var (
	accent = lipgloss.Color("#0AF")
	muted  = lipgloss.Color("#334455")

	appStyle = lipgloss.NewStyle().Padding(0, 1)

	brandStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true).
			Padding(0, 1)

	topbarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(muted)

	searchStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(muted).
			Padding(0, 1)

	searchFocusedStyle = searchStyle.Copy().
				BorderForeground(accent)

	avatarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(accent).
			Bold(true).
			Padding(0, 1)

	sidebarStyle = lipgloss.NewStyle().
			Width(22).
			MarginRight(1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(muted)

	sidebarItemStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#CCC")).
				Padding(0, 1)

	sidebarActiveStyle = lipgloss.NewStyle().
				Foreground(accent).
				Background(lipgloss.Color("#224")).
				Bold(true).
				Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888"))

	textStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#CCC"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			MarginRight(1)

	cardSelectedStyle = cardStyle.Copy().
				BorderForeground(accent)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(accent).
				Background(lipgloss.Color("#224"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7")).
			Padding(0, 1)

	draftStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F5A97F"))

	publishedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1"))

	panelStyle = lipgloss.NewStyle().
			MarginLeft(1).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(muted).
			PaddingLeft(1)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 2).
			Width(56)

	dangerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38BA8")).
			Bold(true)

	toastStyles = map[notify.Severity]lipgloss.Style{
		notify.Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true),
		notify.Info:    lipgloss.NewStyle().Foreground(accent),
		notify.Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true),
	}

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#cba6f7"))
)

func statusBadge(status catalog.Status) string {
	if status == catalog.StatusDraft {
		return draftStyle.Render(string(status))
	}
	return publishedStyle.Render(string(status))
}

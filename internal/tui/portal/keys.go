package portal

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit       key.Binding
	help       key.Binding
	search     key.Binding
	profile    key.Binding
	dashboard  key.Binding
	documents  key.Binding
	tags       key.Binding
	shared     key.Binding
	recent     key.Binding
	upload     key.Binding
	create     key.Binding
	back       key.Binding
	layout     key.Binding
	sort       key.Binding
	open       key.Binding
	edit       key.Binding
	share      key.Binding
	remove     key.Binding
	up         key.Binding
	down       key.Binding
	left       key.Binding
	right      key.Binding
	preview    key.Binding
	save       key.Binding
	nextField  key.Binding
	confirm    key.Binding
	copyLink   key.Binding
	permission key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		dashboard: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "dashboard"),
		),
		documents: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "all documents"),
		),
		tags: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "tags"),
		),
		shared: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "shared"),
		),
		recent: key.NewBinding(
			key.WithKeys("5"),
			key.WithHelp("5", "recent"),
		),
		upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		create: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new document"),
		),
		back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		layout: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "table/cards"),
		),
		sort: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sort"),
		),
		open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "view"),
		),
		edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		share: key.NewBinding(
			key.WithKeys("S"),
			key.WithHelp("S", "share"),
		),
		remove: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		preview: key.NewBinding(
			key.WithKeys("ctrl+p"),
			key.WithHelp("ctrl+p", "preview"),
		),
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		confirm: key.NewBinding(
			key.WithKeys("enter", "y"),
			key.WithHelp("↵/y", "confirm"),
		),
		copyLink: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy link"),
		),
		permission: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "permission"),
		),
	}
}

func (k keyMap) navigationHelp() []key.Binding {
	return []key.Binding{k.dashboard, k.documents, k.tags, k.shared, k.recent, k.search, k.profile, k.upload, k.create}
}

func (k keyMap) listingHelp() []key.Binding {
	return []key.Binding{k.open, k.edit, k.share, k.remove, k.layout, k.sort, k.back}
}

func (k keyMap) viewerHelp() []key.Binding {
	return []key.Binding{k.edit, k.share, k.remove, k.up, k.down, k.back}
}

func (k keyMap) editorHelp() []key.Binding {
	return []key.Binding{k.save, k.preview, k.nextField, k.back}
}

func (k keyMap) dialogHelp(shareDialog bool) []key.Binding {
	if shareDialog {
		return []key.Binding{k.copyLink, k.permission, k.back}
	}
	return []key.Binding{k.confirm, k.back}
}

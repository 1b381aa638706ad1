package settings

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/erikgeiser/promptkit/selection"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/config"
	"github.com/Paintersrp/sidoc/internal/portal"
)

// setting describes one editable config value. Settings with choices are
// edited through a selection prompt, the rest through a text input.
type setting struct {
	title   string
	prompt  string
	choices []string
	value   func(*config.Config) string
	apply   func(*config.Config, string) error
}

func settings() []setting {
	return []setting{
		{
			title:   "Start Page",
			prompt:  "Select the page the portal opens on.",
			choices: config.StartPages(),
			value:   func(c *config.Config) string { return c.StartPage },
			apply: func(c *config.Config, v string) error {
				page, err := portal.ParsePage(v)
				if err != nil {
					return err
				}
				return c.SetStartPage(page)
			},
		},
		{
			title:   "Layout",
			prompt:  "Select how document lists are drawn.",
			choices: []string{config.LayoutTable, config.LayoutCards},
			value:   func(c *config.Config) string { return c.Layout },
			apply:   (*config.Config).SetLayout,
		},
		{
			title:   "Sort",
			prompt:  "Select the default document ordering.",
			choices: []string{string(catalog.SortDate), string(catalog.SortTitle), string(catalog.SortAuthor)},
			value:   func(c *config.Config) string { return c.Sort },
			apply:   (*config.Config).SetSort,
		},
		{
			title:   "Theme",
			prompt:  "Select the markdown theme.",
			choices: config.ThemeNames(),
			value:   func(c *config.Config) string { return c.Theme },
			apply:   (*config.Config).SetTheme,
		},
		{
			title: "ShareBaseURL",
			value: func(c *config.Config) string { return c.ShareBaseURL },
			apply: (*config.Config).SetShareBaseURL,
		},
		{
			title: "Catalog",
			value: func(c *config.Config) string { return c.Catalog },
			apply: (*config.Config).SetCatalog,
		},
	}
}

type ListItem struct {
	title       string
	description string
}

func (i ListItem) Title() string       { return i.title }
func (i ListItem) Description() string { return i.description }
func (i ListItem) FilterValue() string { return i.title }

type listKeyMap struct {
	toggleHelpMenu key.Binding
	toggleEditItem key.Binding
	exitInputMode  key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		toggleEditItem: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "edit item"),
		),
		exitInputMode: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit input mode"),
		),
	}
}

type ListModel struct {
	list        list.Model
	keys        *listKeyMap
	config      *config.Config
	settings    []setting
	configInput ListInputModel
	inputActive bool
	selector    *selection.Model[string]
}

func NewListModel(cfg *config.Config) ListModel {
	listKeys := newListKeyMap()
	all := settings()

	items := make([]list.Item, 0, len(all))
	for _, s := range all {
		items = append(items, ListItem{title: s.title, description: s.value(cfg)})
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = selectedItemStyle
	d.Styles.SelectedDesc = selectedItemStyle

	configList := list.New(items, d, 0, 0)
	configList.Title = "Configuration"
	configList.Styles.Title = titleStyle
	configList.SetFilteringEnabled(false)
	configList.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{listKeys.toggleEditItem, listKeys.toggleHelpMenu}
	}

	return ListModel{
		list:        configList,
		keys:        listKeys,
		config:      cfg,
		settings:    all,
		configInput: initialInputModel(),
	}
}

func (m ListModel) Init() tea.Cmd {
	return nil
}

func (m ListModel) current() (setting, bool) {
	i := m.list.Index()
	if i < 0 || i >= len(m.settings) {
		return setting{}, false
	}
	return m.settings[i], true
}

func (m ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		if m.selector != nil {
			return m.updateSelector(msg)
		}
		if m.inputActive {
			return m.updateInput(msg)
		}

		switch {
		case key.Matches(msg, m.keys.toggleEditItem):
			s, ok := m.current()
			if !ok {
				return m, nil
			}
			if len(s.choices) > 0 {
				sel := selection.New(s.prompt, s.choices)
				sel.Filter = nil
				m.selector = selection.NewModel(sel)
				return m, m.selector.Init()
			}
			m.inputActive = true
			m.configInput.Title = s.title
			m.configInput.Input.SetValue(s.value(m.config))
			return m, m.configInput.Input.Focus()

		case key.Matches(msg, m.keys.toggleHelpMenu):
			m.list.SetShowHelp(!m.list.ShowHelp())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m ListModel) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitInputMode):
		m.selector = nil
		return m, nil
	case key.Matches(msg, m.keys.toggleEditItem):
		value, err := m.selector.Value()
		m.selector = nil
		if err != nil {
			return m, m.list.NewStatusMessage(errorMessageStyle("Selection failed: " + err.Error()))
		}
		return m, m.save(value)
	}

	_, cmd := m.selector.Update(msg)
	return m, cmd
}

func (m ListModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitInputMode):
		m.configInput.Input.Blur()
		m.inputActive = false
		return m, nil
	case key.Matches(msg, m.keys.toggleEditItem):
		value := m.configInput.Input.Value()
		m.configInput.Input.Reset()
		m.configInput.Input.Blur()
		m.inputActive = false
		return m, m.save(value)
	}

	var cmd tea.Cmd
	m.configInput.Input, cmd = m.configInput.Input.Update(msg)
	return m, cmd
}

// save applies value to the selected setting and refreshes its list item.
func (m *ListModel) save(value string) tea.Cmd {
	s, ok := m.current()
	if !ok {
		return nil
	}
	if err := s.apply(m.config, value); err != nil {
		return m.list.NewStatusMessage(errorMessageStyle(fmt.Sprintf("%s not saved: %v", s.title, err)))
	}

	m.list.SetItem(m.list.Index(), ListItem{title: s.title, description: s.value(m.config)})
	return m.list.NewStatusMessage(statusMessageStyle("Updated and Saved: " + s.title))
}

func (m ListModel) View() string {
	if m.selector != nil {
		return appStyle.Render(m.selector.View())
	}
	if m.inputActive {
		return appStyle.Render(inputStyle.Render(m.configInput.View()))
	}
	return appStyle.Render(m.list.View())
}

func Run(c *config.Config) error {
	if _, err := tea.NewProgram(NewListModel(c), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("error running settings: %w", err)
	}
	return nil
}

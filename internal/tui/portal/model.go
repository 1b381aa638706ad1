package portal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/Paintersrp/sidoc/internal/catalog"
	"github.com/Paintersrp/sidoc/internal/config"
	"github.com/Paintersrp/sidoc/internal/notify"
	core "github.com/Paintersrp/sidoc/internal/portal"
	"github.com/Paintersrp/sidoc/internal/share"
	"github.com/Paintersrp/sidoc/internal/state"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	recentLimit   = 5
)

// Model is the root portal model. Every navigation goes through the
// coordinator; the model only keeps widget state for the screen on display.
type Model struct {
	state  *state.State
	docs   catalog.Repository
	cfg    *config.Config
	logger *zap.Logger
	coord  *core.Coordinator
	toasts *notify.Queue
	copier share.Copier
	// dropped is the overflow count already logged.
	dropped int

	keys     keyMap
	help     help.Model
	showHelp bool

	width  int
	height int

	search        textinput.Model
	searchFocused bool

	// shown is the screen the widgets below were last loaded for.
	shown core.Screen

	layout    string
	sortField catalog.SortField
	table     table.Model
	entries   []entry
	cursor    int

	recent          []catalog.Document
	dashboardCursor int

	results      []catalog.Result
	resultCursor int

	viewer viewerModel
	editor editorModel
	dialog dialogModel
	md     markdownRenderer
}

func NewModel(s *state.State) (*Model, error) {
	if s == nil || s.Catalog == nil {
		return nil, errors.New("portal needs a loaded catalog")
	}

	cfg := s.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	toasts := notify.NewQueue(cfg.Notifications.Limit, cfg.Notifications.TTL)

	search := textinput.New()
	search.Placeholder = "Search documents..."
	search.Prompt = "/ "
	search.CharLimit = 120
	search.Width = 40

	t := table.New(table.WithFocused(true))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(muted).
		BorderBottom(true).
		Bold(true)
	styles.Selected = selectedItemStyle.Copy().Bold(true)
	t.SetStyles(styles)

	m := &Model{
		state:     s,
		docs:      s.Catalog,
		cfg:       cfg,
		logger:    logger.Named("tui"),
		toasts:    toasts,
		copier:    share.SystemClipboard{},
		keys:      newKeyMap(),
		help:      help.New(),
		search:    search,
		layout:    cfg.ActiveLayout(),
		sortField: cfg.SortField(),
		table:     t,
		viewer:    newViewerModel(),
		editor:    newEditorModel(),
		dialog:    newDialogModel(),
		md:        markdownRenderer{theme: cfg.ActiveTheme()},
	}
	m.coord = core.NewCoordinator(toasts, logger)

	if err := m.open(cfg.Page(), core.None()); err != nil {
		return nil, err
	}
	m.sync(false)
	return m, nil
}

// Open moves the portal to page, or to the given document when doc is set.
// A document opens in the viewer unless page is the editor.
func (m *Model) Open(page core.Page, doc core.OptionalID) error {
	if err := m.open(page, doc); err != nil {
		return err
	}
	m.sync(false)
	return nil
}

func (m *Model) open(page core.Page, doc core.OptionalID) error {
	if id, ok := doc.Get(); ok {
		if _, err := m.docs.Get(id); err != nil {
			return err
		}
		if page == core.PageEditor {
			m.coord.EditDocument(doc)
		} else {
			m.coord.ViewDocument(id)
		}
		return nil
	}
	return m.coord.Navigate(page)
}

// State exposes the coordinator state for callers that render around the
// portal or inspect it after the program exits.
func (m *Model) State() core.State {
	return m.coord.State()
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.watch(), m.sync(false)}
	if m.coord.State().Page() == core.PageEditor {
		cmds = append(cmds, m.editor.focusField(m.editor.focus))
	}
	return tea.Batch(cmds...)
}

func (m *Model) watch() tea.Cmd {
	if m.state == nil || m.state.Watcher == nil {
		return nil
	}
	return m.state.Watcher.Start()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case notify.DismissMsg:
		m.toasts.Dismiss(msg.ID)
		return m, nil
	case copiedExpiredMsg:
		if msg.seq == m.dialog.copiedSeq {
			m.dialog.copied = false
		}
		return m, nil
	case state.CatalogChangedMsg:
		m.logger.Info("catalog changed", zap.String("path", msg.Path))
		m.toasts.Notify("Catalog reloaded", notify.Info)
		cmds = append(cmds, m.sync(true), m.watch())
	case state.CatalogWatcherErrMsg:
		m.logger.Warn("catalog watcher error", zap.Error(msg.Err))
		m.toasts.Notify(fmt.Sprintf("Catalog reload failed: %v", msg.Err), notify.Error)
		cmds = append(cmds, m.watch())
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))
		cmds = append(cmds, m.sync(false))
	default:
		cmds = append(cmds, m.forward(msg))
	}

	if n := m.toasts.Dropped(); n > m.dropped {
		m.logger.Debug("notifications dropped", zap.Int("count", n-m.dropped))
		m.dropped = n
	}
	cmds = append(cmds, m.toasts.Drain())
	return m, tea.Batch(cmds...)
}

// forward delivers non-key messages, such as cursor blinks, to whichever
// input currently has focus.
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.searchFocused:
		m.search, cmd = m.search.Update(msg)
	case m.coord.State().ModalOpen(core.ModalUpload):
		m.dialog.upload, cmd = m.dialog.upload.Update(msg)
	case m.coord.State().Page() == core.PageEditor:
		cmd = m.editor.update(msg)
	}
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	st := m.coord.State()

	if modal, ok := activeModal(st); ok {
		return m.updateDialog(modal, msg)
	}
	if m.searchFocused {
		return m.updateSearch(msg)
	}
	if st.Page() == core.PageEditor {
		return m.updateEditor(msg)
	}
	if cmd, ok := m.handleGlobalKey(msg); ok {
		return cmd
	}

	page := st.Page()
	if page.Listing() {
		return m.updateListing(msg)
	}
	switch page {
	case core.PageDashboard:
		return m.updateDashboard(msg)
	case core.PageViewer:
		return m.updateViewer(msg)
	case core.PageSearch:
		return m.updateResults(msg)
	}
	return nil
}

func (m *Model) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return tea.Quit, true
	case key.Matches(msg, m.keys.help):
		m.showHelp = !m.showHelp
		return nil, true
	case key.Matches(msg, m.keys.search):
		m.searchFocused = true
		m.search.SetValue(m.coord.State().Query)
		m.search.CursorEnd()
		return m.search.Focus(), true
	case key.Matches(msg, m.keys.profile):
		return m.navigate(core.PageProfile), true
	case key.Matches(msg, m.keys.dashboard):
		return m.navigate(core.PageDashboard), true
	case key.Matches(msg, m.keys.documents):
		return m.navigate(core.PageDocuments), true
	case key.Matches(msg, m.keys.tags):
		return m.navigate(core.PageTags), true
	case key.Matches(msg, m.keys.shared):
		return m.navigate(core.PageShared), true
	case key.Matches(msg, m.keys.recent):
		return m.navigate(core.PageRecent), true
	case key.Matches(msg, m.keys.upload):
		return m.openUpload(), true
	case key.Matches(msg, m.keys.create):
		m.coord.EditDocument(core.None())
		return nil, true
	case key.Matches(msg, m.keys.back):
		m.coord.Back()
		return nil, true
	}
	return nil, false
}

func (m *Model) navigate(page core.Page) tea.Cmd {
	if err := m.coord.Navigate(page); err != nil {
		m.toasts.Notify(err.Error(), notify.Error)
	}
	return nil
}

func (m *Model) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEnter:
		query := m.search.Value()
		m.blurSearch()
		m.coord.Search(query)
		return nil
	case tea.KeyEsc:
		m.blurSearch()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return cmd
}

func (m *Model) blurSearch() {
	m.searchFocused = false
	m.search.Blur()
}

// sync reloads the widgets for the coordinator's current screen. When force
// is set the current screen is reloaded even if it has not changed.
func (m *Model) sync(force bool) tea.Cmd {
	st := m.coord.State()
	entering := st.Screen != m.shown
	if !entering && !force {
		return nil
	}
	m.shown = st.Screen

	switch s := st.Screen.(type) {
	case core.Dashboard:
		m.recent = m.docs.Recent(recentLimit)
		m.dashboardCursor = clamp(m.dashboardCursor, len(m.recent))
	case core.Documents, core.Tags, core.Shared, core.Recent:
		m.loadListing(st.Page(), entering)
	case core.Viewer:
		m.loadViewer(s.ID)
	case core.Editor:
		if entering {
			return m.loadEditor(s.ID)
		}
	case core.SearchResults:
		m.loadResults(s.Query, entering)
	}
	return nil
}

func activeModal(st core.State) (core.Modal, bool) {
	switch {
	case st.Modals.Delete.Open:
		return core.ModalDelete, true
	case st.Modals.Share.Open:
		return core.ModalShare, true
	case st.Modals.Upload:
		return core.ModalUpload, true
	}
	return 0, false
}

func (m *Model) frameSize() (int, int) {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}
	return width, height
}

// contentSize is the area right of the sidebar and between the top bar and
// the footer.
func (m *Model) contentSize() (int, int) {
	width, height := m.frameSize()
	w := width - sidebarStyle.GetWidth() - sidebarStyle.GetHorizontalFrameSize() - appStyle.GetHorizontalFrameSize()
	h := height - 8
	if w < 30 {
		w = 30
	}
	if h < 8 {
		h = 8
	}
	return w, h
}

func (m *Model) resize() {
	w, h := m.contentSize()
	m.help.Width = w
	m.search.Width = max(20, w/2)
	m.table.SetWidth(w)
	m.table.SetHeight(h - 2)
	m.viewer.resize(w, h)
	m.editor.resize(w, h)
	m.md.invalidate()
	if m.shown != nil {
		m.sync(true)
	}
}

func (m *Model) View() string {
	width, _ := m.frameSize()
	contentWidth, contentHeight := m.contentSize()

	var body string
	st := m.coord.State()
	if modal, ok := activeModal(st); ok {
		body = lipgloss.Place(
			contentWidth,
			contentHeight,
			lipgloss.Center,
			lipgloss.Center,
			m.renderDialog(modal),
		)
	} else {
		body = m.renderPage(st, contentWidth)
	}

	main := lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(st), body)
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTopbar(width),
		main,
		m.renderFooter(width),
	)
	return padFrame(appStyle.Render(content), m.width, m.height)
}

func (m *Model) renderPage(st core.State, width int) string {
	switch s := st.Screen.(type) {
	case core.Dashboard:
		return m.renderDashboard(width)
	case core.Documents, core.Tags, core.Shared, core.Recent:
		return m.renderListing(st.Page(), width)
	case core.Viewer:
		return m.renderViewer(width)
	case core.Editor:
		return m.renderEditor(s.ID, width)
	case core.SearchResults:
		return m.renderResults(s.Query, width)
	case core.Profile:
		return m.renderProfile(width)
	}
	return ""
}

func (m *Model) renderTopbar(width int) string {
	brand := brandStyle.Render("SIDOC")

	style := searchStyle
	if m.searchFocused {
		style = searchFocusedStyle
	}
	search := style.Render(m.search.View())

	profile := m.cfg.Profile
	user := lipgloss.JoinHorizontal(
		lipgloss.Center,
		avatarStyle.Render(profile.Initials()),
		" ",
		textStyle.Render(profile.Name()),
	)

	gap := width - lipgloss.Width(brand) - lipgloss.Width(search) - lipgloss.Width(user) - appStyle.GetHorizontalFrameSize() - 2
	if gap < 1 {
		gap = 1
	}
	bar := lipgloss.JoinHorizontal(
		lipgloss.Center,
		brand,
		" ",
		search,
		strings.Repeat(" ", gap),
		user,
	)
	return topbarStyle.Render(bar)
}

var sidebarItems = []struct {
	page  core.Page
	label string
	key   string
}{
	{core.PageDashboard, "Dashboard", "1"},
	{core.PageDocuments, "All Documents", "2"},
	{core.PageTags, "Tags & Labels", "3"},
	{core.PageShared, "Shared", "4"},
	{core.PageRecent, "Recent", "5"},
}

func (m *Model) renderSidebar(st core.State) string {
	lines := make([]string, 0, len(sidebarItems)+3)
	for _, item := range sidebarItems {
		label := fmt.Sprintf("%s %s", item.key, item.label)
		if st.Page() == item.page {
			lines = append(lines, sidebarActiveStyle.Render(label))
			continue
		}
		lines = append(lines, sidebarItemStyle.Render(label))
	}
	lines = append(lines, "", sidebarItemStyle.Render("u Upload"), sidebarItemStyle.Render("n New Document"))
	return sidebarStyle.Render(strings.Join(lines, "\n"))
}

func (m *Model) renderFooter(width int) string {
	var lines []string
	for _, t := range m.toasts.Active() {
		style, ok := toastStyles[t.Severity]
		if !ok {
			style = toastStyles[notify.Info]
		}
		lines = append(lines, style.Render(toastIcon(t.Severity)+" "+t.Message))
	}

	bindings := m.pageHelp()
	m.help.Width = width
	if m.showHelp {
		lines = append(lines, helpStyle.Render(m.help.FullHelpView([][]key.Binding{m.keys.navigationHelp(), bindings})))
	} else {
		lines = append(lines, helpStyle.Render(m.help.ShortHelpView(bindings)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) pageHelp() []key.Binding {
	st := m.coord.State()
	if modal, ok := activeModal(st); ok {
		return m.keys.dialogHelp(modal == core.ModalShare)
	}
	if m.searchFocused {
		return []key.Binding{m.keys.open, m.keys.back}
	}
	if st.Page().Listing() {
		return m.keys.listingHelp()
	}
	switch st.Page() {
	case core.PageViewer:
		return m.keys.viewerHelp()
	case core.PageEditor:
		return m.keys.editorHelp()
	}
	return []key.Binding{m.keys.search, m.keys.profile, m.keys.upload, m.keys.create, m.keys.help, m.keys.quit}
}

func toastIcon(s notify.Severity) string {
	switch s {
	case notify.Success:
		return "✓"
	case notify.Error:
		return "✗"
	}
	return "•"
}

func clamp(cursor, n int) int {
	if n <= 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func padFrame(content string, width, height int) string {
	lines := strings.Split(content, "\n")

	if width > 0 {
		for i, line := range lines {
			pad := width - lipgloss.Width(line)
			if pad > 0 {
				lines[i] = line + strings.Repeat(" ", pad)
			}
		}
	}

	if height > len(lines) {
		blank := ""
		if width > 0 {
			blank = strings.Repeat(" ", width)
		}
		for len(lines) < height {
			lines = append(lines, blank)
		}
	}

	return strings.Join(lines, "\n")
}

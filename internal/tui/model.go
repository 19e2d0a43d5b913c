package tui

import (
	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/Veraticus/freemium-tools/internal/model"
	"github.com/Veraticus/freemium-tools/internal/service"
	"github.com/Veraticus/freemium-tools/internal/tui/components"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// State represents the current state of the TUI.
type State int

const (
	StateLoading State = iota
	StateBrowse
	StateHelp
)

// maxHistory bounds the back stack.
const maxHistory = 50

// Model holds the main TUI state.
type Model struct {
	theme       themes.Theme
	store       service.PreferenceStore
	lastErr     error
	catalog     *catalog.Catalog
	consent     *model.ConsentDecision
	config      Config
	keymap      KeyMap
	help        help.Model
	spinner     spinner.Model
	prefs       model.Preferences
	route       catalog.Route
	history     []catalog.Route
	sidebar     components.SidebarModel
	home        components.HomeModel
	category    components.CategoryModel
	toolPage    components.ToolPageModel
	legal       components.LegalModel
	banner      components.CookieBannerModel
	width       int
	height      int
	state       State
	quitting    bool
	sidebarOpen bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	theme := themes.GetTheme(cfg.Theme)
	m := Model{
		theme:   theme,
		store:   cfg.Store,
		catalog: cfg.Catalog,
		config:  cfg,
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		prefs:   model.DefaultPreferences(),
		width:   cfg.Width,
		height:  cfg.Height,
		state:   StateBrowse,
		sidebar: components.NewSidebarModel(cfg.Catalog.Categories(), theme),
		home:    components.NewHomeModel(cfg.Catalog.Categories(), theme),
		banner:  components.NewCookieBannerModel(theme),
	}

	m.route = cfg.Catalog.Resolve(cfg.Route)
	m.sidebarOpen = m.prefs.SidebarVisible(m.width, cfg.SidebarBreakpoint)
	if m.store != nil {
		m.state = StateLoading
	} else {
		m.banner.Show()
	}
	m.openPage()
	return m
}

// Init loads stored preferences and consent.
func (m Model) Init() tea.Cmd {
	if m.store == nil {
		return nil
	}
	return tea.Batch(m.loadPreferences(), m.loadConsent(), m.spinner.Tick)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		bp := m.config.SidebarBreakpoint
		wasWide := m.width >= bp
		m.width = msg.Width
		m.height = msg.Height
		if wasWide != (m.width >= bp) {
			m.sidebarOpen = m.prefs.SidebarVisible(m.width, bp)
		}
		m.resize()
		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case preferencesLoadedMsg:
		if msg.err != nil {
			m.fail(msg.err, "failed to load preferences")
		}
		m.prefs = msg.prefs
		if m.config.Theme == "" {
			m.applyTheme(themes.GetTheme(m.prefs.Theme))
		}
		m.sidebarOpen = m.prefs.SidebarVisible(m.width, m.config.SidebarBreakpoint)
		m.state = StateBrowse
		m.resize()
		return m, nil

	case consentLoadedMsg:
		if msg.err != nil {
			m.fail(msg.err, "failed to load cookie consent")
		}
		m.consent = msg.decision
		if m.consent == nil {
			m.banner.Show()
			m.resize()
		}
		return m, nil

	case preferencesSavedMsg:
		if msg.err != nil {
			m.fail(msg.err, "failed to save preferences")
		}
		return m, nil

	case consentSavedMsg:
		if msg.err != nil {
			m.fail(msg.err, "failed to save cookie consent")
		}
		return m, nil

	case components.NavigateMsg:
		m.navigate(msg.Route)
		return m, nil

	case components.ConsentMsg:
		m.resize()
		if msg.Closed {
			return m, nil
		}
		decision := model.NewConsentDecision(msg.Accepted, m.config.Now())
		m.consent = &decision
		return m, m.saveConsent(decision)
	}

	return m.updatePage(msg)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateLoading:
		return m.renderLoading()
	case StateHelp:
		return m.renderHelp()
	}

	sections := []string{m.renderHeader(), m.renderBody(), m.renderFooter()}
	if m.banner.Visible() {
		sections = append(sections, m.banner.View())
	}
	sections = append(sections, m.renderStatusBar())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// handleKey dispatches a key press. The cookie banner and help overlay are
// modal; character keys go to a focused form before any shortcut.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}
	if m.state == StateLoading {
		return m, nil
	}

	if m.banner.Visible() {
		var cmd tea.Cmd
		m.banner, cmd = m.banner.Update(msg)
		return m, cmd
	}

	if m.state == StateHelp {
		if key.Matches(msg, m.keymap.Help, m.keymap.Back, m.keymap.Quit) {
			m.state = StateBrowse
		}
		return m, nil
	}

	if key.Matches(msg, m.keymap.ToggleSidebar) {
		return m.toggleSidebar()
	}
	if m.typing() {
		return m.updatePage(msg)
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.state = StateHelp
		return m, nil
	case key.Matches(msg, m.keymap.ToggleTheme):
		return m.toggleTheme()
	case key.Matches(msg, m.keymap.SwitchPane):
		if m.sidebarOpen && !m.sidebar.Focused() {
			m.sidebar.Focus()
		} else {
			m.sidebar.Blur()
		}
		return m, nil
	case key.Matches(msg, m.keymap.Home):
		m.navigate(catalog.Home)
		return m, nil
	case key.Matches(msg, m.keymap.Privacy):
		m.navigate(catalog.Route{Kind: catalog.RoutePrivacyPolicy})
		return m, nil
	case key.Matches(msg, m.keymap.Terms):
		m.navigate(catalog.Route{Kind: catalog.RouteTermsOfService})
		return m, nil
	case key.Matches(msg, m.keymap.Cookies):
		m.navigate(catalog.Route{Kind: catalog.RouteCookiePolicy})
		return m, nil
	case key.Matches(msg, m.keymap.Back):
		if m.sidebar.Focused() {
			m.sidebar.Blur()
			return m, nil
		}
		m.back()
		return m, nil
	}

	if m.sidebar.Focused() {
		var cmd tea.Cmd
		m.sidebar, cmd = m.sidebar.Update(msg)
		return m, cmd
	}
	return m.updatePage(msg)
}

// updatePage forwards msg to the page for the current route.
func (m Model) updatePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.route.Kind {
	case catalog.RouteHome:
		m.home, cmd = m.home.Update(msg)
	case catalog.RouteCategory:
		m.category, cmd = m.category.Update(msg)
	case catalog.RouteTool:
		m.toolPage, cmd = m.toolPage.Update(msg)
	case catalog.RoutePrivacyPolicy, catalog.RouteTermsOfService, catalog.RouteCookiePolicy:
		m.legal, cmd = m.legal.Update(msg)
	}
	return m, cmd
}

func (m Model) typing() bool {
	return m.route.Kind == catalog.RouteTool && m.toolPage.Typing()
}

func (m Model) toggleSidebar() (tea.Model, tea.Cmd) {
	m.sidebarOpen = !m.sidebarOpen
	if !m.sidebarOpen {
		m.sidebar.Blur()
	}
	m.prefs = m.prefs.WithSidebar(m.sidebarOpen)
	m.resize()
	return m, m.savePreferences(m.prefs)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.config.Theme != "" {
		m.prefs.Theme = m.theme.Name
		m.config.Theme = ""
	}
	m.prefs = m.prefs.NextTheme()
	m.applyTheme(themes.GetTheme(m.prefs.Theme))
	return m, m.savePreferences(m.prefs)
}

// navigate opens r, validated against the catalog, and records the
// current route for Back.
func (m *Model) navigate(r catalog.Route) {
	r = m.catalog.Resolve(r.Path())
	if r == m.route {
		return
	}
	m.history = append(m.history, m.route)
	if len(m.history) > maxHistory {
		m.history = m.history[len(m.history)-maxHistory:]
	}
	m.route = r
	m.sidebar.Blur()
	m.openPage()
}

func (m *Model) back() {
	if n := len(m.history); n > 0 {
		m.route = m.history[n-1]
		m.history = m.history[:n-1]
		m.openPage()
		return
	}
	if m.route.Kind != catalog.RouteHome {
		m.route = catalog.Home
		m.openPage()
	}
}

// openPage builds the page for the current route.
func (m *Model) openPage() {
	w, h := m.contentSize()
	switch m.route.Kind {
	case catalog.RouteCategory:
		cat, err := m.catalog.Category(m.route.CategoryID)
		if err != nil {
			m.route = catalog.Home
			break
		}
		m.category = components.NewCategoryModel(cat, m.theme)
	case catalog.RouteTool:
		cat, tool, err := m.catalog.Tool(m.route.CategoryID, m.route.ToolID)
		if err != nil {
			m.route.Kind = catalog.RouteNotFound
			break
		}
		related := m.catalog.Related(cat.ID, tool.ID, catalog.RelatedLimit)
		widget := components.NewWidget(tool.ID, m.theme, m.config.PageURL)
		m.toolPage = components.NewToolPageModel(cat, tool, related, widget, m.theme, m.config.Ads, w, h)
	case catalog.RoutePrivacyPolicy, catalog.RouteTermsOfService, catalog.RouteCookiePolicy:
		slug, _ := m.route.LegalSlug()
		m.legal = components.NewLegalModel(slug, m.theme, w, h-1)
		if err := m.legal.Err(); err != nil {
			m.fail(err, "failed to render legal page")
		}
	}
	m.sidebar.SetActive(m.route)
	m.resize()
}

func (m *Model) applyTheme(theme themes.Theme) {
	m.theme = theme
	m.sidebar.SetTheme(theme)
	m.home.SetTheme(theme)
	m.banner.SetTheme(theme)
	switch m.route.Kind {
	case catalog.RouteCategory:
		m.category.SetTheme(theme)
	case catalog.RouteTool:
		m.toolPage.SetTheme(theme)
	case catalog.RoutePrivacyPolicy, catalog.RouteTermsOfService, catalog.RouteCookiePolicy:
		m.legal.SetTheme(theme)
	}
}

// contentSize is the area left for the page after the header, footer,
// status bar, banner and sidebar.
func (m Model) contentSize() (int, int) {
	w := m.width
	if m.sidebarOpen {
		w -= components.SidebarWidth + 1
	}
	h := m.height - 3
	if m.banner.Visible() {
		h -= lipgloss.Height(m.banner.View())
	}
	return max(w, 20), max(h, 3)
}

// resize adjusts component sizes to the terminal and layout.
func (m *Model) resize() {
	m.banner.Resize(m.width)
	w, h := m.contentSize()
	m.sidebar.Resize(h)
	m.home.Resize(w, h)
	m.category.Resize(w, h)
	m.toolPage.Resize(w, h)
	if _, ok := m.route.LegalSlug(); ok {
		m.legal.Resize(w, h-1)
	}
	m.help.Width = m.width
}

func (m *Model) fail(err error, msg string) {
	m.lastErr = err
	common.LogError(err, msg, common.Fields{"route": m.route.Path()})
}

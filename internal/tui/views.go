package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Loading Freemium Tools..."),
		lipgloss.NewStyle().Foreground(m.theme.Primary).Render(m.spinner.View()),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Restoring your preferences..."),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// renderHeader renders the brand bar.
func (m Model) renderHeader() string {
	left := "☰ FREEMIUM TOOLS"
	mode := "☀ " + m.theme.Name
	if m.theme.Dark {
		mode = "☾ " + m.theme.Name
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(mode)-2, 1)
	return m.theme.Header.
		Width(m.width).
		MaxWidth(m.width).
		Render(left + strings.Repeat(" ", gap) + mode)
}

// renderBody renders the sidebar and the current page side by side.
func (m Model) renderBody() string {
	w, h := m.contentSize()
	page := lipgloss.NewStyle().
		Width(w).
		Height(h).
		MaxHeight(h).
		Render(m.renderPage())

	if !m.sidebarOpen {
		return page
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebar.View(), " ", page)
}

// renderPage renders the page for the current route.
func (m Model) renderPage() string {
	switch m.route.Kind {
	case catalog.RouteHome:
		return m.home.View()
	case catalog.RouteCategory:
		return m.category.View()
	case catalog.RouteTool:
		return m.toolPage.View()
	case catalog.RoutePrivacyPolicy, catalog.RouteTermsOfService, catalog.RouteCookiePolicy:
		return m.legal.View()
	default:
		return m.renderNotFound()
	}
}

func (m Model) renderNotFound() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Tool not found"),
		lipgloss.NewStyle().Foreground(m.theme.Muted).
			Render(fmt.Sprintf("Nothing lives at %s.", m.route.Path())),
		"",
		m.theme.Link.Render("[Esc] Back  [H] Home"),
	)
}

// renderFooter renders the copyright line and legal links.
func (m Model) renderFooter() string {
	links := []string{"[P] Privacy Policy", "[T] Terms of Service", "[C] Cookie Policy"}
	text := fmt.Sprintf("© %d FreemiumTools. All rights reserved.   %s",
		m.config.Now().Year(), strings.Join(links, "  "))
	return lipgloss.NewStyle().
		Foreground(m.theme.Muted).
		Width(m.width).
		MaxWidth(m.width).
		MaxHeight(1).
		Render(text)
}

// renderStatusBar renders the bottom status bar.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(m.pageTitle())
	if m.lastErr != nil {
		left = m.theme.StatusError.Render("Error: " + m.lastErr.Error())
	} else if m.typing() {
		left += lipgloss.NewStyle().Foreground(m.theme.Muted).Render("  editing")
	}

	right := m.help.View(m.keymap)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.NewStyle().
		MaxWidth(m.width).
		Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) pageTitle() string {
	switch m.route.Kind {
	case catalog.RouteHome:
		return "Home"
	case catalog.RouteCategory:
		return m.category.Category().Title
	case catalog.RouteTool:
		return m.toolPage.Tool().Title
	case catalog.RoutePrivacyPolicy, catalog.RouteTermsOfService, catalog.RouteCookiePolicy:
		return m.legal.Title()
	default:
		return "Not found"
	}
}

// renderHelp renders the help screen.
func (m Model) renderHelp() string {
	title := m.theme.Title.Render("Freemium Tools - Help")

	sections := []struct {
		title string
		items [][2]string
	}{
		{
			"Navigation",
			[][2]string{
				{"↑/k, ↓/j", "Move up/down"},
				{"←/h, →/l", "Previous/next category"},
				{"Enter", "Open tool or link"},
				{"m", "Open category (home grid)"},
				{"Esc", "Back"},
				{"H", "Home"},
			},
		},
		{
			"Layout",
			[][2]string{
				{"Ctrl+B", "Toggle sidebar"},
				{"Tab", "Switch sidebar/content"},
				{"t", "Cycle theme"},
			},
		},
		{
			"Tools",
			[][2]string{
				{"Enter/i", "Start editing"},
				{"Tab", "Next field"},
				{"Enter", "Calculate"},
				{"Ctrl+S", "Show/hide calculation steps"},
				{"Ctrl+R", "Try again"},
				{"1-3", "Open related tool"},
				{"PgUp/PgDn", "Scroll"},
			},
		},
		{
			"Application",
			[][2]string{
				{"P/T/C", "Privacy, terms, cookies"},
				{"q", "Quit"},
				{"Ctrl+C", "Force quit"},
			},
		},
	}

	var content []string
	keyStyle := lipgloss.NewStyle().Foreground(m.theme.Primary).Width(12)
	for _, section := range sections {
		content = append(content, m.theme.Subtitle.Render(section.title))
		for _, item := range section.items {
			content = append(content, "  "+keyStyle.Render(item[0])+" "+m.theme.Normal.Render(item[1]))
		}
		content = append(content, "")
	}

	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help")

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.
			Width(min(60, max(m.width-2, 20))).
			MaxHeight(max(m.height-2, 5)).
			Render(lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinVertical(lipgloss.Left, content...), footer)),
	)
}

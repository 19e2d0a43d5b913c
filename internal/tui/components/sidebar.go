package components

import (
	"strings"

	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SidebarWidth is the rendered width of the sidebar, border included.
const SidebarWidth = 30

type sidebarEntry struct {
	route    catalog.Route
	label    string
	category int
}

// SidebarModel lists every category and expands the active one.
type SidebarModel struct {
	theme      themes.Theme
	activeCat  string
	activeTool string
	categories []catalog.Category
	entries    []sidebarEntry
	cursor     int
	height     int
	focused    bool
}

// NewSidebarModel creates a sidebar over the given categories.
func NewSidebarModel(categories []catalog.Category, theme themes.Theme) SidebarModel {
	m := SidebarModel{categories: categories, theme: theme}
	m.rebuild()
	return m
}

// SetActive expands the category of r and moves the cursor onto it.
func (m *SidebarModel) SetActive(r catalog.Route) {
	m.activeCat = r.CategoryID
	m.activeTool = ""
	if r.Kind == catalog.RouteTool {
		m.activeTool = r.ToolID
	}
	m.rebuild()
	for i, e := range m.entries {
		if e.route.CategoryID == m.activeCat && e.route.ToolID == m.activeTool {
			m.cursor = i
			return
		}
	}
	m.cursor = 0
}

// Focus gives the sidebar keyboard focus.
func (m *SidebarModel) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *SidebarModel) Blur() { m.focused = false }

// Focused reports whether the sidebar has keyboard focus.
func (m SidebarModel) Focused() bool { return m.focused }

// SetTheme swaps the sidebar theme.
func (m *SidebarModel) SetTheme(theme themes.Theme) { m.theme = theme }

// Resize updates the sidebar height.
func (m *SidebarModel) Resize(height int) { m.height = height }

func (m *SidebarModel) rebuild() {
	m.entries = make([]sidebarEntry, 0, len(m.categories))
	for i, c := range m.categories {
		m.entries = append(m.entries, sidebarEntry{
			route:    catalog.CategoryRoute(c.ID),
			label:    c.Icon + " " + c.Title,
			category: i,
		})
		if c.ID != m.activeCat {
			continue
		}
		for _, t := range c.Tools {
			m.entries = append(m.entries, sidebarEntry{
				route:    catalog.ToolRoute(c.ID, t.ID),
				label:    t.Title,
				category: i,
			})
		}
	}
	if m.cursor >= len(m.entries) {
		m.cursor = len(m.entries) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Selected returns the route under the cursor.
func (m SidebarModel) Selected() (catalog.Route, bool) {
	if len(m.entries) == 0 {
		return catalog.Route{}, false
	}
	return m.entries[m.cursor].route, true
}

// Update handles navigation while focused.
func (m SidebarModel) Update(msg tea.Msg) (SidebarModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.entries) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.entries)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.entries) - 1
	case "enter", "l", "right":
		if r, ok := m.Selected(); ok {
			return m, navigate(r)
		}
	}
	return m, nil
}

// View renders the sidebar.
func (m SidebarModel) View() string {
	inner := SidebarWidth - 4
	lines := []string{m.theme.Bold.Render("Categories"), ""}

	for i, e := range m.entries {
		cat := m.categories[e.category]
		label := truncate(e.label, inner-3)
		var line string
		if e.route.Kind == catalog.RouteCategory {
			marker := lipgloss.NewStyle().Foreground(m.theme.CategoryColor(cat.Color)).Render("▌")
			line = marker + " " + label
		} else {
			line = "    " + truncate(e.label, inner-5)
			if e.route.ToolID == m.activeTool {
				line = lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(line)
			}
		}
		if m.focused && i == m.cursor {
			line = m.theme.Selected.Render(padRight(stripMarker(e, label, inner), inner))
		}
		lines = append(lines, line)
	}

	border := m.theme.Border
	if m.focused {
		border = m.theme.Primary
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(border).
		Width(SidebarWidth-1).
		Padding(0, 1)
	if m.height > 0 {
		style = style.Height(m.height)
		lines = clipLines(lines, m.height, m.cursor+2)
	}
	return style.Render(strings.Join(lines, "\n"))
}

func stripMarker(e sidebarEntry, label string, width int) string {
	if e.route.Kind == catalog.RouteCategory {
		return "▌ " + label
	}
	return "    " + truncate(e.label, width-5)
}

// clipLines keeps a window of height lines that contains focus.
func clipLines(lines []string, height, focus int) []string {
	if len(lines) <= height {
		return lines
	}
	start := 0
	if focus >= height {
		start = focus - height + 1
	}
	end := start + height
	if end > len(lines) {
		end = len(lines)
		start = end - height
	}
	return lines[start:end]
}

func truncate(s string, width int) string {
	if width <= 1 || lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

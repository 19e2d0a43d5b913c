package components

import (
	"strings"

	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 36

// HomeModel is the grid of category cards on the landing page. The cursor
// sits on a tool link, or on a card's "More →" link when toolIdx equals
// the number of tools.
type HomeModel struct {
	theme      themes.Theme
	categories []catalog.Category
	catIdx     int
	toolIdx    int
	width      int
	height     int
}

// NewHomeModel creates the landing page.
func NewHomeModel(categories []catalog.Category, theme themes.Theme) HomeModel {
	return HomeModel{categories: categories, theme: theme}
}

// SetTheme swaps the theme.
func (m *HomeModel) SetTheme(theme themes.Theme) { m.theme = theme }

// Resize updates the available area.
func (m *HomeModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Selected returns the route the cursor points at.
func (m HomeModel) Selected() (catalog.Route, bool) {
	if len(m.categories) == 0 {
		return catalog.Route{}, false
	}
	c := m.categories[m.catIdx]
	if m.toolIdx >= len(c.Tools) {
		return catalog.CategoryRoute(c.ID), true
	}
	return catalog.ToolRoute(c.ID, c.Tools[m.toolIdx].ID), true
}

// Update handles grid navigation.
func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.categories) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.toolIdx < len(m.categories[m.catIdx].Tools) {
			m.toolIdx++
		}
	case "k", "up":
		if m.toolIdx > 0 {
			m.toolIdx--
		}
	case "l", "right":
		if m.catIdx < len(m.categories)-1 {
			m.catIdx++
			m.clampTool()
		}
	case "h", "left":
		if m.catIdx > 0 {
			m.catIdx--
			m.clampTool()
		}
	case "m":
		return m, navigate(catalog.CategoryRoute(m.categories[m.catIdx].ID))
	case "enter":
		if r, ok := m.Selected(); ok {
			return m, navigate(r)
		}
	}
	return m, nil
}

func (m *HomeModel) clampTool() {
	if n := len(m.categories[m.catIdx].Tools); m.toolIdx > n {
		m.toolIdx = n
	}
}

func (m HomeModel) columns() int {
	cols := m.width / (cardWidth + 2)
	switch {
	case cols < 1:
		return 1
	case cols > 3:
		return 3
	default:
		return cols
	}
}

// View renders the grid.
func (m HomeModel) View() string {
	header := m.theme.Bold.Render("FREE ONLINE TOOLS")
	cols := m.columns()

	var rows []string
	focusLine := 0
	lines := 2
	for start := 0; start < len(m.categories); start += cols {
		end := min(start+cols, len(m.categories))
		cards := make([]string, 0, end-start)
		for i := start; i < end; i++ {
			cards = append(cards, m.renderCard(i))
			if i == m.catIdx {
				focusLine = lines + 3 + m.toolIdx
			}
		}
		row := lipgloss.JoinHorizontal(lipgloss.Top, cards...)
		rows = append(rows, row)
		lines += lipgloss.Height(row)
	}

	all := strings.Split(lipgloss.JoinVertical(lipgloss.Left, append([]string{header, ""}, rows...)...), "\n")
	if m.height > 0 {
		all = clipLines(all, m.height, focusLine)
	}
	return strings.Join(all, "\n")
}

func (m HomeModel) renderCard(i int) string {
	c := m.categories[i]
	inner := cardWidth - 4

	title := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(c.Title)
	desc := lipgloss.NewStyle().Foreground(m.theme.Muted).Width(inner).Render(truncate(c.Description, inner))

	links := make([]string, 0, len(c.Tools)+1)
	for j, t := range c.Tools {
		links = append(links, m.link(truncate(t.Title, inner), i, j))
	}
	links = append(links, m.link("More →", i, len(c.Tools)))

	body := lipgloss.JoinVertical(lipgloss.Left, title, desc, "", strings.Join(links, "\n"))
	return lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(m.theme.CategoryColor(c.Color)).
		Width(cardWidth - 2).
		PaddingLeft(1).
		MarginRight(2).
		MarginBottom(1).
		Render(body)
}

func (m HomeModel) link(label string, cat, tool int) string {
	if cat == m.catIdx && tool == m.toolIdx {
		return m.theme.Selected.Render(label)
	}
	if tool == len(m.categories[cat].Tools) {
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Render(label)
	}
	return m.theme.Normal.Render(label)
}

package components

import (
	"strings"

	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CategoryModel lists the tools of one category.
type CategoryModel struct {
	theme    themes.Theme
	category catalog.Category
	cursor   int
	width    int
	height   int
}

// NewCategoryModel creates a category listing.
func NewCategoryModel(category catalog.Category, theme themes.Theme) CategoryModel {
	return CategoryModel{category: category, theme: theme}
}

// Category returns the listed category.
func (m CategoryModel) Category() catalog.Category { return m.category }

// SetTheme swaps the theme.
func (m *CategoryModel) SetTheme(theme themes.Theme) { m.theme = theme }

// Resize updates the available area.
func (m *CategoryModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles list navigation.
func (m CategoryModel) Update(msg tea.Msg) (CategoryModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.category.Tools) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "j", "down":
		if m.cursor < len(m.category.Tools)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter", "l", "right":
		t := m.category.Tools[m.cursor]
		return m, navigate(catalog.ToolRoute(m.category.ID, t.ID))
	}
	return m, nil
}

// View renders the listing.
func (m CategoryModel) View() string {
	c := m.category
	bar := lipgloss.NewStyle().Foreground(m.theme.CategoryColor(c.Color)).Render("▌")

	lines := []string{
		m.theme.Subtitle.Render("Home > " + strings.ToUpper(c.Title)),
		"",
		bar + " " + m.theme.Title.UnsetMarginBottom().Render(c.Icon+" "+c.Title),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Width(max(m.width-2, 20)).Render(c.Description),
		"",
	}
	focus := len(lines)
	for i, t := range c.Tools {
		title := t.Icon + " " + t.Title
		if i == m.cursor {
			title = m.theme.Selected.Render(title)
			focus = len(lines)
		} else {
			title = m.theme.Bold.Render(title)
		}
		lines = append(lines, title, "   "+lipgloss.NewStyle().Foreground(m.theme.Muted).Render(t.Description))
	}

	if m.height > 0 {
		lines = clipLines(lines, m.height, focus+1)
	}
	return strings.Join(lines, "\n")
}

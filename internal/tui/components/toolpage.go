package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/catalog"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// sideBySideWidth is the narrowest content area that fits the input and
// output panes next to each other.
const sideBySideWidth = 90

type faqEntry struct {
	question string
	answer   string
}

var flamesFAQ = []faqEntry{
	{
		"What is the Flames Calculator?",
		"The Flames Calculator is a fun and interactive tool that predicts the relationship between two people " +
			"based on their names. It uses the classic FLAMES method, where each letter stands for a relationship " +
			"type: Friends, Love, Affection, Marriage, Enemies, or Siblings.",
	},
	{
		"How does the Flames Test work?",
		"The FLAMES test works by removing all common letters from both names, counting the remaining letters, " +
			"and using this count to determine the relationship type. The count is divided by 6 (representing the " +
			"6 letters in FLAMES), and the remainder corresponds to a specific relationship type in the FLAMES acronym.",
	},
	{
		"Is the Flames Test accurate?",
		"The Flames Test is primarily meant for entertainment and should be taken with a light heart. It's a fun " +
			"activity that has been popular among young people for generations, but it doesn't have any scientific " +
			"basis for predicting actual relationships.",
	},
	{
		"Can I use full names or nicknames in the Flames Calculator?",
		"Yes, you can use either full names, first names, or nicknames. The results might vary depending on which " +
			"version of the names you use, so you can try different combinations for fun.",
	},
	{
		"What should I do if I get a result I don't like?",
		"Remember that the Flames Test is just for fun. If you get a result you don't like (such as \"Enemies\"), " +
			"don't take it too seriously! Try different variations of your names to see if you get different results.",
	},
}

// ToolPageModel lays out a tool: breadcrumb, ads, the widget's input and
// output panes, related tools and, for FLAMES, the FAQ.
type ToolPageModel struct {
	theme    themes.Theme
	widget   Widget
	ads      AdConfig
	category catalog.Category
	tool     catalog.Tool
	related  []catalog.Tool
	viewport viewport.Model
	width    int
	height   int
}

// NewToolPageModel creates a tool page around widget.
func NewToolPageModel(category catalog.Category, tool catalog.Tool, related []catalog.Tool,
	widget Widget, theme themes.Theme, ads AdConfig, width, height int,
) ToolPageModel {
	return ToolPageModel{
		theme:    theme,
		widget:   widget,
		ads:      ads,
		category: category,
		tool:     tool,
		related:  related,
		viewport: viewport.New(width, height),
		width:    width,
		height:   height,
	}
}

// Widget returns the page's interactive widget.
func (m ToolPageModel) Widget() Widget { return m.widget }

// Tool returns the page's tool.
func (m ToolPageModel) Tool() catalog.Tool { return m.tool }

// Typing reports whether key presses go to the widget.
func (m ToolPageModel) Typing() bool { return m.widget != nil && m.widget.Focused() }

// SetTheme swaps the theme.
func (m *ToolPageModel) SetTheme(theme themes.Theme) {
	m.theme = theme
	if m.widget != nil {
		m.widget.SetTheme(theme)
	}
}

// Resize updates the available area.
func (m *ToolPageModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
}

// Update routes input to the widget or handles page shortcuts.
func (m ToolPageModel) Update(msg tea.Msg) (ToolPageModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, m.widget.Update(msg)
	}

	switch keyMsg.String() {
	case "pgup", "pgdown", "ctrl+u", "ctrl+d":
		return m.scroll(keyMsg)
	}

	if m.widget.Focused() {
		if keyMsg.String() == "esc" {
			m.widget.Blur()
			return m, nil
		}
		return m, m.widget.Update(msg)
	}

	switch key := keyMsg.String(); key {
	case "enter", "i":
		return m, m.widget.Focus()
	case "1", "2", "3":
		i := int(key[0] - '1')
		if i < len(m.related) {
			return m, navigate(catalog.ToolRoute(m.category.ID, m.related[i].ID))
		}
		return m, nil
	case "j", "k", "up", "down":
		return m.scroll(keyMsg)
	}
	return m, m.widget.Update(msg)
}

func (m ToolPageModel) scroll(msg tea.KeyMsg) (ToolPageModel, tea.Cmd) {
	m.viewport.SetContent(m.body())
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible part of the page.
func (m ToolPageModel) View() string {
	vp := m.viewport
	vp.SetContent(m.body())
	return vp.View()
}

func (m ToolPageModel) body() string {
	width := max(m.width, 40)
	muted := lipgloss.NewStyle().Foreground(m.theme.Muted)

	sections := []string{
		muted.Render("Home > " + strings.ToUpper(m.category.Title) + " > " + m.tool.Title),
		"",
		m.theme.Title.Render(m.tool.Icon + " " + m.tool.Title),
		muted.Width(width).Render(m.tool.Description),
		"",
		RenderAd(m.theme, m.ads, AdTop, width),
		"",
		m.renderPanes(width),
		"",
		RenderAd(m.theme, m.ads, AdMiddle, width),
		"",
		RenderAd(m.theme, m.ads, AdBottom, width),
	}

	if len(m.related) > 0 {
		sections = append(sections, "", m.theme.Bold.Render("Related Tools"))
		for i, t := range m.related {
			sections = append(sections, fmt.Sprintf("[%d] %s %s", i+1, t.Icon, t.Title)+
				muted.Render(" - "+t.Description))
		}
	}

	if m.tool.ID == "flames-calculator" {
		sections = append(sections, "", m.theme.Bold.Render("Frequently Asked Questions"))
		for _, q := range flamesFAQ {
			sections = append(sections, "",
				m.theme.Bold.Render(q.question),
				muted.Width(width).Render(q.answer))
		}
	}

	hint := "[Enter/i] Edit  [1-3] Related tool  [PgUp/PgDn] Scroll  [Esc] Back"
	if m.widget.Focused() {
		hint = "[Esc] Stop editing  [PgUp/PgDn] Scroll"
	}
	sections = append(sections, "", muted.Render(hint))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ToolPageModel) renderPanes(width int) string {
	border := m.theme.Border
	if m.widget.Focused() {
		border = m.theme.Primary
	}

	if width >= sideBySideWidth {
		pane := width/2 - 1
		inner := pane - 4
		input := m.theme.RoundedBox.BorderForeground(border).Width(pane - 2).
			Render(m.theme.Bold.Render("Tool") + "\n\n" + m.widget.InputView(inner))
		output := m.theme.RoundedBox.Width(pane - 2).
			Render(m.theme.Bold.Render("Output") + "\n\n" + m.widget.OutputView(inner))
		return lipgloss.JoinHorizontal(lipgloss.Top, input, " ", output)
	}

	inner := width - 6
	input := m.theme.RoundedBox.BorderForeground(border).Width(width - 2).
		Render(m.theme.Bold.Render("Tool") + "\n\n" + m.widget.InputView(inner))
	output := m.theme.RoundedBox.Width(width - 2).
		Render(m.theme.Bold.Render("Output") + "\n\n" + m.widget.OutputView(inner))
	return lipgloss.JoinVertical(lipgloss.Left, input, output)
}

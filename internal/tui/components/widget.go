package components

import (
	"github.com/Veraticus/freemium-tools/internal/tools"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Widget is the interactive part of a tool page: an input pane the user
// types into and an output pane showing the latest result. A focused
// widget receives every key press; an unfocused one only sees the keys
// the tool page does not claim.
type Widget interface {
	Update(msg tea.Msg) tea.Cmd
	Focus() tea.Cmd
	Blur()
	Focused() bool
	SetTheme(theme themes.Theme)
	InputView(width int) string
	OutputView(width int) string
}

// NewWidget returns the widget for a tool id.
func NewWidget(toolID string, theme themes.Theme, pageURL string) Widget {
	switch toolID {
	case "flames-calculator":
		return NewFlamesModel(theme, pageURL)
	case "calculator":
		return NewCalculatorModel(theme)
	case "area-calculator":
		return NewAreaModel(theme)
	default:
		return &PlaceholderModel{theme: theme}
	}
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.CharLimit = 256
	return ti
}

func fieldLabel(theme themes.Theme, label string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label)
	}
	return theme.Bold.Render(label)
}

func errorView(theme themes.Theme, message string, width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.StatusError.Render("Error"),
		lipgloss.NewStyle().Foreground(theme.Error).Width(width).Render(message),
	)
}

func mutedText(theme themes.Theme, text string, width int) string {
	return lipgloss.NewStyle().Foreground(theme.Muted).Width(width).Render(text)
}

// PlaceholderModel stands in for tools that are listed but not built.
type PlaceholderModel struct {
	theme themes.Theme
}

// Update ignores all input.
func (m *PlaceholderModel) Update(tea.Msg) tea.Cmd { return nil }

// Focus is a no-op; there is nothing to type into.
func (m *PlaceholderModel) Focus() tea.Cmd { return nil }

// Blur is a no-op.
func (m *PlaceholderModel) Blur() {}

// Focused always reports false.
func (m *PlaceholderModel) Focused() bool { return false }

// SetTheme swaps the theme.
func (m *PlaceholderModel) SetTheme(theme themes.Theme) { m.theme = theme }

// InputView renders the placeholder notice.
func (m *PlaceholderModel) InputView(width int) string {
	return mutedText(m.theme, tools.PlaceholderMessage, width)
}

// OutputView renders the empty output pane.
func (m *PlaceholderModel) OutputView(width int) string {
	return mutedText(m.theme, "Results will appear here", width)
}

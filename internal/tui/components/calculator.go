package components

import (
	"github.com/Veraticus/freemium-tools/internal/tools"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CalculatorModel evaluates arithmetic expressions.
type CalculatorModel struct {
	theme      themes.Theme
	result     string
	expression string
	err        string
	input      textinput.Model
}

// NewCalculatorModel creates a focused calculator.
func NewCalculatorModel(theme themes.Theme) *CalculatorModel {
	m := &CalculatorModel{theme: theme, input: newInput("0")}
	m.input.Focus()
	return m
}

// Update handles input while focused.
func (m *CalculatorModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			if m.input.Focused() {
				m.calculate()
				return nil
			}
		case "ctrl+r":
			m.clear()
			return nil
		case "r":
			if !m.input.Focused() {
				m.clear()
				return nil
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *CalculatorModel) calculate() {
	m.expression = m.input.Value()
	v, err := tools.Evaluate(m.expression)
	if err != nil {
		m.err = tools.Message(err)
		m.result = ""
		return
	}
	m.err = ""
	m.result = tools.FormatNumber(v)
}

func (m *CalculatorModel) clear() {
	m.input.Reset()
	m.result = ""
	m.expression = ""
	m.err = ""
}

// Focus focuses the expression input.
func (m *CalculatorModel) Focus() tea.Cmd { return m.input.Focus() }

// Blur releases the expression input.
func (m *CalculatorModel) Blur() { m.input.Blur() }

// Focused reports whether the input has focus.
func (m *CalculatorModel) Focused() bool { return m.input.Focused() }

// SetTheme swaps the theme.
func (m *CalculatorModel) SetTheme(theme themes.Theme) { m.theme = theme }

// InputView renders the expression field.
func (m *CalculatorModel) InputView(width int) string {
	m.input.Width = max(width-4, 10)
	return lipgloss.JoinVertical(lipgloss.Left,
		fieldLabel(m.theme, "Expression", m.input.Focused()),
		m.input.View(),
		"",
		mutedText(m.theme, "Supports + - * / and parentheses. [Enter] Calculate  [Ctrl+R] Clear", width),
	)
}

// OutputView renders the result or error.
func (m *CalculatorModel) OutputView(width int) string {
	switch {
	case m.err != "":
		return errorView(m.theme, m.err, width)
	case m.result != "":
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Bold.Render("Result"),
			lipgloss.NewStyle().Foreground(m.theme.Info).Bold(true).Render(m.result),
			mutedText(m.theme, "Expression: "+m.expression, width),
		)
	default:
		return mutedText(m.theme, "Results will appear here", width)
	}
}

package components

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/freemium-tools/internal/flames"
	"github.com/Veraticus/freemium-tools/internal/share"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const flamesAbout = "FLAMES is a fun relationship calculator game that predicts the relationship " +
	"between two people. The letters stand for Friends, Love, Affection, Marriage, Enemies, " +
	"and Siblings. It works by counting the remaining letters after removing common letters " +
	"from both names."

var shareLabels = map[share.Platform]string{
	share.Facebook: "Share on Facebook",
	share.Twitter:  "Tweet",
	share.LinkedIn: "Share on LinkedIn",
}

// FlamesModel is the FLAMES calculator form.
type FlamesModel struct {
	theme     themes.Theme
	outcome   *flames.Outcome
	pageURL   string
	err       string
	inputs    [2]textinput.Model
	focus     int
	focused   bool
	showSteps bool
}

// NewFlamesModel creates a form with the first name field focused.
func NewFlamesModel(theme themes.Theme, pageURL string) *FlamesModel {
	if pageURL == "" {
		pageURL = share.DefaultPageURL
	}
	m := &FlamesModel{
		theme:   theme,
		pageURL: pageURL,
		inputs:  [2]textinput.Model{newInput("Enter first name"), newInput("Enter second name")},
		focused: true,
	}
	m.inputs[0].CharLimit = flames.MaxInputLength
	m.inputs[1].CharLimit = flames.MaxInputLength
	m.inputs[0].Focus()
	return m
}

// SetNames fills both name fields.
func (m *FlamesModel) SetNames(name1, name2 string) {
	m.inputs[0].SetValue(name1)
	m.inputs[1].SetValue(name2)
}

// Outcome returns the last successful result.
func (m *FlamesModel) Outcome() (flames.Outcome, bool) {
	if m.outcome == nil {
		return flames.Outcome{}, false
	}
	return *m.outcome, true
}

// Err returns the message of the last failed calculation.
func (m *FlamesModel) Err() string { return m.err }

// ShowingSteps reports whether the calculation trace is expanded.
func (m *FlamesModel) ShowingSteps() bool { return m.showSteps }

// Update handles input. Unfocused, only the result shortcuts apply.
func (m *FlamesModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return cmd
	}

	if !m.focused {
		switch keyMsg.String() {
		case "s", "ctrl+s":
			m.toggleSteps()
		case "r", "ctrl+r":
			return m.reset()
		}
		return nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		return m.setFocus((m.focus + 1) % len(m.inputs))
	case "shift+tab", "up":
		return m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
	case "enter":
		m.calculate()
		return nil
	case "ctrl+s":
		m.toggleSteps()
		return nil
	case "ctrl+r":
		return m.reset()
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return cmd
}

func (m *FlamesModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m *FlamesModel) calculate() {
	outcome, err := flames.Compute(m.inputs[0].Value(), m.inputs[1].Value())
	if err != nil {
		m.outcome = nil
		var verr *flames.ValidationError
		if errors.As(err, &verr) {
			m.err = verr.Message
		} else {
			m.err = err.Error()
		}
		return
	}
	m.err = ""
	m.outcome = &outcome
}

func (m *FlamesModel) toggleSteps() {
	if m.outcome != nil {
		m.showSteps = !m.showSteps
	}
}

func (m *FlamesModel) reset() tea.Cmd {
	m.inputs[0].Reset()
	m.inputs[1].Reset()
	m.outcome = nil
	m.err = ""
	m.showSteps = false
	if !m.focused {
		m.focus = 0
		return nil
	}
	return m.setFocus(0)
}

// Focus gives the form keyboard focus.
func (m *FlamesModel) Focus() tea.Cmd {
	m.focused = true
	return m.inputs[m.focus].Focus()
}

// Blur releases keyboard focus.
func (m *FlamesModel) Blur() {
	m.focused = false
	m.inputs[0].Blur()
	m.inputs[1].Blur()
}

// Focused reports whether the form has keyboard focus.
func (m *FlamesModel) Focused() bool { return m.focused }

// SetTheme swaps the theme.
func (m *FlamesModel) SetTheme(theme themes.Theme) { m.theme = theme }

// InputView renders the name fields.
func (m *FlamesModel) InputView(width int) string {
	for i := range m.inputs {
		m.inputs[i].Width = max(width-4, 10)
	}
	heading := lipgloss.NewStyle().Foreground(m.theme.TokenColor("red")).Render("♥") +
		" " + m.theme.Bold.Render("FLAMES Calculator")

	return lipgloss.JoinVertical(lipgloss.Left,
		heading,
		mutedText(m.theme, "Find out your relationship type using the classic FLAMES method "+
			"(Friends, Love, Affection, Marriage, Enemies, Siblings).", width),
		"",
		fieldLabel(m.theme, "First Person's Name", m.focused && m.focus == 0),
		m.inputs[0].View(),
		"",
		fieldLabel(m.theme, "Second Person's Name", m.focused && m.focus == 1),
		m.inputs[1].View(),
		"",
		m.theme.Selected.Render(" ♥ Calculate Relationship [Enter] "),
		"",
		m.theme.Bold.Render("What is FLAMES?"),
		mutedText(m.theme, flamesAbout, width),
	)
}

// OutputView renders the result, error or prompt.
func (m *FlamesModel) OutputView(width int) string {
	switch {
	case m.err != "":
		return errorView(m.theme, m.err, width)
	case m.outcome != nil:
		return m.renderOutcome(width)
	default:
		return mutedText(m.theme, "Enter two names and press Enter to see your FLAMES result!", width)
	}
}

func (m *FlamesModel) renderOutcome(width int) string {
	o := m.outcome
	color := m.theme.TokenColor(o.Color)

	lines := []string{
		o.Icon,
		lipgloss.NewStyle().Foreground(color).Bold(true).Render(o.Category.String()),
		m.theme.Normal.Width(width).Render(o.Description),
		"",
	}

	text := share.Text(m.inputs[0].Value(), m.inputs[1].Value(), *o)
	links := share.Links(m.pageURL, text)
	link := m.theme.Link.Width(width)
	for _, p := range share.Platforms {
		lines = append(lines, m.theme.Bold.Render(shareLabels[p]+":"), link.Render(links[p]))
	}

	toggle := "Show"
	if m.showSteps {
		toggle = "Hide"
	}
	lines = append(lines,
		"",
		m.theme.Selected.Render(" ↻ Try Again [Ctrl+R] "),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Primary).Render(toggle+" calculation steps [Ctrl+S]"),
	)

	if m.showSteps {
		lines = append(lines, "", m.theme.Bold.Render("How we calculated this result:"))
		for i, step := range o.Trace {
			lines = append(lines, m.theme.Normal.Width(width).Render(fmt.Sprintf("%d. %s", i+1, step)))
		}
	}
	return strings.Join(lines, "\n")
}

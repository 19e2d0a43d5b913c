package components

import (
	"strings"

	"github.com/Veraticus/freemium-tools/internal/tools"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AreaModel computes the area of a chosen shape. Focus slot 0 is the shape
// selector; the remaining slots are the fields the shape needs.
type AreaModel struct {
	theme   themes.Theme
	inputs  map[string]*textinput.Model
	result  *tools.AreaResult
	err     string
	shape   int
	slot    int
	focused bool
}

// NewAreaModel creates a focused area calculator showing a square.
func NewAreaModel(theme themes.Theme) *AreaModel {
	m := &AreaModel{theme: theme, inputs: make(map[string]*textinput.Model), focused: true}
	for _, name := range []string{"length", "width", "radius", "base", "height"} {
		ti := newInput("Enter " + name)
		m.inputs[name] = &ti
	}
	return m
}

// Shape returns the selected shape.
func (m *AreaModel) Shape() tools.Shape { return tools.Shapes[m.shape] }

func (m *AreaModel) fields() []string { return m.Shape().Fields() }

func (m *AreaModel) current() *textinput.Model {
	if !m.focused || m.slot == 0 {
		return nil
	}
	return m.inputs[m.fields()[m.slot-1]]
}

func (m *AreaModel) setSlot(slot int) tea.Cmd {
	if cur := m.current(); cur != nil {
		cur.Blur()
	}
	m.slot = slot
	if cur := m.current(); cur != nil {
		return cur.Focus()
	}
	return nil
}

// Update handles input while focused.
func (m *AreaModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if cur := m.current(); cur != nil {
			var cmd tea.Cmd
			*cur, cmd = cur.Update(msg)
			return cmd
		}
		return nil
	}

	if !m.focused {
		if k := keyMsg.String(); k == "r" || k == "ctrl+r" {
			m.reset()
		}
		return nil
	}

	slots := len(m.fields()) + 1
	switch keyMsg.String() {
	case "tab", "down":
		return m.setSlot((m.slot + 1) % slots)
	case "shift+tab", "up":
		return m.setSlot((m.slot + slots - 1) % slots)
	case "enter":
		m.calculate()
		return nil
	case "ctrl+r":
		m.reset()
		return nil
	case "left", "right":
		if m.slot == 0 {
			step := 1
			if keyMsg.String() == "left" {
				step = len(tools.Shapes) - 1
			}
			m.shape = (m.shape + step) % len(tools.Shapes)
			m.result = nil
			m.err = ""
			return nil
		}
	}

	if cur := m.current(); cur != nil {
		var cmd tea.Cmd
		*cur, cmd = cur.Update(msg)
		return cmd
	}
	return nil
}

func (m *AreaModel) dimensions() tools.Dimensions {
	return tools.Dimensions{
		Length: m.inputs["length"].Value(),
		Width:  m.inputs["width"].Value(),
		Radius: m.inputs["radius"].Value(),
		Base:   m.inputs["base"].Value(),
		Height: m.inputs["height"].Value(),
	}
}

func (m *AreaModel) calculate() {
	res, err := tools.CalculateArea(m.Shape(), m.dimensions())
	if err != nil {
		m.result = nil
		m.err = tools.Message(err)
		return
	}
	m.err = ""
	m.result = &res
}

func (m *AreaModel) reset() {
	for _, in := range m.inputs {
		in.Reset()
	}
	m.result = nil
	m.err = ""
}

// Focus gives the form keyboard focus.
func (m *AreaModel) Focus() tea.Cmd {
	m.focused = true
	if cur := m.current(); cur != nil {
		return cur.Focus()
	}
	return nil
}

// Blur releases keyboard focus.
func (m *AreaModel) Blur() {
	if cur := m.current(); cur != nil {
		cur.Blur()
	}
	m.focused = false
}

// Focused reports whether the form has keyboard focus.
func (m *AreaModel) Focused() bool { return m.focused }

// SetTheme swaps the theme.
func (m *AreaModel) SetTheme(theme themes.Theme) { m.theme = theme }

// InputView renders the shape selector and dimension fields.
func (m *AreaModel) InputView(width int) string {
	shapes := make([]string, 0, len(tools.Shapes))
	for i, s := range tools.Shapes {
		label := title(string(s))
		if i == m.shape {
			label = m.theme.Selected.Render(" " + label + " ")
		} else {
			label = " " + label + " "
		}
		shapes = append(shapes, label)
	}

	lines := []string{
		fieldLabel(m.theme, "Select Shape", m.focused && m.slot == 0),
		"‹" + strings.Join(shapes, "") + "›",
		"",
	}
	for i, name := range m.fields() {
		in := m.inputs[name]
		in.Width = max(width-4, 10)
		lines = append(lines, fieldLabel(m.theme, title(name), m.focused && m.slot == i+1), in.View())
	}
	lines = append(lines, "",
		mutedText(m.theme, "[←/→] Shape  [Tab] Next field  [Enter] Calculate Area  [Ctrl+R] Reset", width))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// OutputView renders the result or error.
func (m *AreaModel) OutputView(width int) string {
	switch {
	case m.err != "":
		return errorView(m.theme, m.err, width)
	case m.result != nil:
		muted := lipgloss.NewStyle().Foreground(m.theme.Muted)
		return lipgloss.JoinVertical(lipgloss.Left,
			m.theme.Bold.Render("Area Calculation Result"),
			lipgloss.NewStyle().Foreground(m.theme.Info).Bold(true).Render(tools.FormatArea(m.result.Area)),
			"",
			muted.Render("Shape: "+m.result.Shape),
			muted.Render("Formula: "+m.result.Formula),
			muted.Render("Dimensions: "+m.result.Dimensions),
		)
	default:
		return mutedText(m.theme, "Results will appear here", width)
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package testing

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyPress creates a key press message for testing.
func KeyPress(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

// KeyDown creates a down arrow key message.
func KeyDown() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyDown}
}

// KeyUp creates an up arrow key message.
func KeyUp() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyUp}
}

// KeyLeft creates a left arrow key message.
func KeyLeft() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyLeft}
}

// KeyRight creates a right arrow key message.
func KeyRight() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRight}
}

// KeyEnter creates an enter key message.
func KeyEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

// KeyEsc creates an escape key message.
func KeyEsc() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEsc}
}

// KeyTab creates a tab key message.
func KeyTab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyTab}
}

// KeyShiftTab creates a shift+tab key message.
func KeyShiftTab() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyShiftTab}
}

// KeyBackspace creates a backspace key message.
func KeyBackspace() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyBackspace}
}

// KeyPgDown creates a page down key message.
func KeyPgDown() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyPgDown}
}

// KeyCtrl creates a ctrl key combination message, e.g. KeyCtrl("b") for
// ctrl+b.
func KeyCtrl(key string) tea.KeyMsg {
	if len(key) != 1 {
		panic("KeyCtrl requires a single character")
	}

	r := rune(key[0])
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	// Control codes run from ctrl+a = 1 to ctrl+z = 26.
	return tea.KeyMsg{Type: tea.KeyType(r - 'a' + 1)}
}

// WindowSize creates a window size message for testing responsive layouts.
func WindowSize(width, height int) tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  width,
		Height: height,
	}
}

// Type returns one key press per rune of text.
func Type(text string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(text))
	for _, r := range text {
		msgs = append(msgs, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return msgs
}

// InputSequence represents a sequence of inputs for testing.
type InputSequence struct {
	inputs []tea.Msg
}

// NewInputSequence creates a new input sequence.
func NewInputSequence(inputs ...tea.Msg) *InputSequence {
	return &InputSequence{inputs: inputs}
}

// Add adds an input to the sequence.
func (s *InputSequence) Add(input tea.Msg) *InputSequence {
	s.inputs = append(s.inputs, input)
	return s
}

// Type adds a string of characters to the sequence.
func (s *InputSequence) Type(text string) *InputSequence {
	s.inputs = append(s.inputs, Type(text)...)
	return s
}

// Apply feeds every input to model through renderer and returns the
// final model.
func (s *InputSequence) Apply(model tea.Model, renderer *TestRenderer) tea.Model {
	result := model
	for _, input := range s.inputs {
		result, _ = renderer.Update(result, input)
	}
	return result
}

// Messages returns all messages in the sequence.
func (s *InputSequence) Messages() []tea.Msg {
	return s.inputs
}

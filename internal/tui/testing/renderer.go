// Package testing provides test utilities for TUI components.
package testing

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// TestRenderer captures the output of a Bubble Tea model without a real
// terminal.
type TestRenderer struct {
	// Output contains the last rendered view
	Output string

	// Commands contains all non-nil commands returned by Update
	Commands []tea.Cmd

	// UpdateCount tracks how many times Update was called
	UpdateCount int
}

// NewTestRenderer creates a new test renderer.
func NewTestRenderer() *TestRenderer {
	return &TestRenderer{}
}

// Render renders a model and captures its output.
func (r *TestRenderer) Render(model tea.Model) string {
	r.Output = model.View()
	return r.Output
}

// Update sends a message to the model and captures the new view.
func (r *TestRenderer) Update(model tea.Model, msg tea.Msg) (tea.Model, tea.Cmd) {
	r.UpdateCount++

	newModel, cmd := model.Update(msg)
	if cmd != nil {
		r.Commands = append(r.Commands, cmd)
	}
	r.Output = newModel.View()
	return newModel, cmd
}

// Send applies msgs in order and returns the final model.
func (r *TestRenderer) Send(model tea.Model, msgs ...tea.Msg) tea.Model {
	for _, msg := range msgs {
		model, _ = r.Update(model, msg)
	}
	return model
}

// LastCommand returns the most recent command, or nil if none was
// returned.
func (r *TestRenderer) LastCommand() tea.Cmd {
	if len(r.Commands) == 0 {
		return nil
	}
	return r.Commands[len(r.Commands)-1]
}

// StripANSI returns the last output without escape codes.
func (r *TestRenderer) StripANSI() string {
	return StripANSI(r.Output)
}

// Lines returns the output split by newlines.
func (r *TestRenderer) Lines() []string {
	return strings.Split(r.Output, "\n")
}

// Reset clears all captured data.
func (r *TestRenderer) Reset() {
	r.Output = ""
	r.Commands = nil
	r.UpdateCount = 0
}

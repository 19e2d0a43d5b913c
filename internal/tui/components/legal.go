package components

import (
	"github.com/Veraticus/freemium-tools/internal/legal"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LegalModel shows a rendered legal page in a scrollable viewport.
type LegalModel struct {
	theme    themes.Theme
	err      error
	slug     string
	title    string
	viewport viewport.Model
}

// NewLegalModel renders the page for slug at the given size.
func NewLegalModel(slug string, theme themes.Theme, width, height int) LegalModel {
	m := LegalModel{slug: slug, theme: theme, viewport: viewport.New(width, height)}
	if doc, err := legal.Page(slug); err == nil {
		m.title = doc.Title
	}
	m.render()
	return m
}

// Title returns the page heading.
func (m LegalModel) Title() string { return m.title }

// Err returns the render failure, if any.
func (m LegalModel) Err() error { return m.err }

func (m *LegalModel) render() {
	out, err := legal.Render(m.slug, m.viewport.Width, m.theme.Dark)
	m.err = err
	if err != nil {
		m.viewport.SetContent(m.theme.StatusError.Render(err.Error()))
		return
	}
	m.viewport.SetContent(out)
}

// SetTheme re-renders the page for theme.
func (m *LegalModel) SetTheme(theme themes.Theme) {
	m.theme = theme
	m.render()
}

// Resize re-renders the page for a new size.
func (m *LegalModel) Resize(width, height int) {
	changed := width != m.viewport.Width
	m.viewport.Width = width
	m.viewport.Height = height
	if changed {
		m.render()
	}
}

// Update scrolls the page.
func (m LegalModel) Update(msg tea.Msg) (LegalModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the visible part of the page.
func (m LegalModel) View() string {
	footer := lipgloss.NewStyle().Foreground(m.theme.Muted).
		Render("[↑/↓] Scroll  [PgUp/PgDn] Page  [Esc] Back")
	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

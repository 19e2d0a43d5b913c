package components

import (
	"testing"

	tuitest "github.com/Veraticus/freemium-tools/internal/tui/testing"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consentFrom(t *testing.T, cmd tea.Cmd) ConsentMsg {
	t.Helper()
	require.NotNil(t, cmd)
	msg, ok := cmd().(ConsentMsg)
	require.True(t, ok, "expected ConsentMsg")
	return msg
}

func TestCookieBanner_Shortcuts(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
		want ConsentMsg
	}{
		{"accept", tuitest.KeyPress("a"), ConsentMsg{Accepted: true}},
		{"decline", tuitest.KeyPress("d"), ConsentMsg{}},
		{"close", tuitest.KeyPress("x"), ConsentMsg{Closed: true}},
		{"escape closes", tuitest.KeyEsc(), ConsentMsg{Closed: true}},
		{"enter takes default", tuitest.KeyEnter(), ConsentMsg{Accepted: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewCookieBannerModel(themes.Light)
			m.Show()
			require.True(t, m.Visible())

			m, cmd := m.Update(tt.key)
			assert.Equal(t, tt.want, consentFrom(t, cmd))
			assert.False(t, m.Visible())
			assert.Empty(t, m.View())
		})
	}
}

func TestCookieBanner_CursorSelection(t *testing.T) {
	m := NewCookieBannerModel(themes.Light)
	m.Show()

	m, _ = m.Update(tuitest.KeyLeft())
	m, cmd := m.Update(tuitest.KeyEnter())
	assert.Equal(t, ConsentMsg{}, consentFrom(t, cmd))

	m.Show()
	m, _ = m.Update(tuitest.KeyRight())
	_, cmd = m.Update(tuitest.KeyEnter())
	assert.Equal(t, ConsentMsg{Closed: true}, consentFrom(t, cmd))
}

func TestCookieBanner_HiddenIgnoresKeys(t *testing.T) {
	m := NewCookieBannerModel(themes.Light)
	m, cmd := m.Update(tuitest.KeyPress("a"))
	assert.Nil(t, cmd)
	assert.False(t, m.Visible())
}

func TestCookieBanner_View(t *testing.T) {
	m := NewCookieBannerModel(themes.Dark)
	m.Resize(100)
	m.Show()

	view := tuitest.Plain(m.View())
	assert.Contains(t, view, "We use cookies")
	assert.Contains(t, view, "[A]ccept")
	assert.Contains(t, view, "[D]ecline")
	assert.Contains(t, view, "[x] Close")
}

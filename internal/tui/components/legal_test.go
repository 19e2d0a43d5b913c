package components

import (
	"testing"

	tuitest "github.com/Veraticus/freemium-tools/internal/tui/testing"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLegalModel(t *testing.T) {
	m := NewLegalModel("privacy-policy", themes.Light, 80, 20)
	require.NoError(t, m.Err())
	assert.Equal(t, "Privacy Policy", m.Title())

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Privacy")
	assert.Contains(t, view, "Esc")

	m.SetTheme(themes.Dark)
	assert.NoError(t, m.Err())
}

func TestLegalModel_UnknownPage(t *testing.T) {
	m := NewLegalModel("refund-policy", themes.Light, 80, 20)
	assert.Error(t, m.Err())
	assert.Contains(t, m.View(), "unknown legal page")
}

package main

import (
	"testing"

	"github.com/Veraticus/freemium-tools/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userMessage(err error) string {
	return common.UserMessage(err)
}

func TestPrefsCmd_Defaults(t *testing.T) {
	out, _, err := execute(t, testConfig(t), "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "light")
	assert.Contains(t, out, "automatic")
	assert.Contains(t, out, "not answered")
}

func TestPrefsCmd_Theme(t *testing.T) {
	cfg := testConfig(t)

	out, _, err := execute(t, cfg, "prefs", "theme", "Dark")
	require.NoError(t, err)
	assert.Contains(t, out, "Theme set to dark")

	out, _, err = execute(t, cfg, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "dark")

	_, _, err = execute(t, cfg, "prefs", "theme", "neon")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestPrefsCmd_Sidebar(t *testing.T) {
	cfg := testConfig(t)

	_, _, err := execute(t, cfg, "prefs", "sidebar", "closed")
	require.NoError(t, err)

	out, _, err := execute(t, cfg, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "closed")
	assert.NotContains(t, out, "automatic")

	_, _, err = execute(t, cfg, "prefs", "sidebar", "sideways")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

func TestPrefsCmd_Consent(t *testing.T) {
	cfg := testConfig(t)

	out, _, err := execute(t, cfg, "prefs", "consent", "accept")
	require.NoError(t, err)
	assert.Contains(t, out, "Cookies accepted")

	out, _, err = execute(t, cfg, "prefs", "consent", "decline")
	require.NoError(t, err)
	assert.Contains(t, out, "Cookies declined")

	out, _, err = execute(t, cfg, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "declined on")

	_, _, err = execute(t, cfg, "prefs", "consent", "reset")
	require.NoError(t, err)

	out, _, err = execute(t, cfg, "prefs", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "not answered")

	_, _, err = execute(t, cfg, "prefs", "consent", "maybe")
	assert.ErrorIs(t, err, common.ErrInvalidConfig)
}

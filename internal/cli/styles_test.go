package cli

import (
	"testing"

	"github.com/Veraticus/freemium-tools/internal/flames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenColor(t *testing.T) {
	for _, c := range flames.All() {
		info, ok := flames.Lookup(c)
		require.True(t, ok)
		assert.NotEqual(t, SubtleColor, TokenColor(info.Color), info.Color)
	}
	assert.Equal(t, SubtleColor, TokenColor("chartreuse"))
}

func TestFormatHelpers(t *testing.T) {
	assert.Contains(t, FormatSuccess("saved"), "saved")
	assert.Contains(t, FormatError("failed"), "failed")
	assert.Contains(t, FormatWarning("careful"), "careful")
	assert.Contains(t, FormatInfo("note"), "note")
	assert.Contains(t, FormatTitle("Tools"), "Tools")
}

func TestRenderOutcome(t *testing.T) {
	outcome, err := flames.Compute("Tom", "Tim")
	require.NoError(t, err)

	plain := RenderOutcome("Tom", "Tim", outcome, false)
	assert.Contains(t, plain, "Love")
	assert.Contains(t, plain, outcome.Description)
	assert.NotContains(t, plain, "Calculation steps")

	withSteps := RenderOutcome("Tom", "Tim", outcome, true)
	assert.Contains(t, withSteps, "Calculation steps")
	assert.Contains(t, withSteps, "Total remaining letters: 2")
}

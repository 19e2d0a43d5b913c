package components

import (
	"testing"

	"github.com/Veraticus/freemium-tools/internal/tools"
	tuitest "github.com/Veraticus/freemium-tools/internal/tui/testing"
	"github.com/Veraticus/freemium-tools/internal/tui/themes"
	"github.com/stretchr/testify/assert"
)

func TestAreaModel_Square(t *testing.T) {
	m := NewAreaModel(themes.Light)
	assert.Equal(t, tools.Square, m.Shape())

	m.Update(tuitest.KeyTab())
	typeInto(m, "4")
	m.Update(tuitest.KeyEnter())

	out := tuitest.StripANSI(m.OutputView(80))
	assert.Contains(t, out, "16.00 square units")
	assert.Contains(t, out, "Formula:")
}

func TestAreaModel_ShapeSelector(t *testing.T) {
	m := NewAreaModel(themes.Light)

	m.Update(tuitest.KeyRight())
	assert.Equal(t, tools.Rectangle, m.Shape())
	m.Update(tuitest.KeyLeft())
	m.Update(tuitest.KeyLeft())
	assert.Equal(t, tools.Triangle, m.Shape())

	in := tuitest.StripANSI(m.InputView(80))
	assert.Contains(t, in, "Base")
	assert.Contains(t, in, "Height")
	assert.NotContains(t, in, "Radius")
}

func TestAreaModel_Errors(t *testing.T) {
	m := NewAreaModel(themes.Light)
	m.Update(tuitest.KeyRight())
	m.Update(tuitest.KeyTab())
	typeInto(m, "3")
	m.Update(tuitest.KeyEnter())
	assert.Contains(t, tuitest.StripANSI(m.OutputView(80)), "Please enter both length and width")

	m.Update(tuitest.KeyTab())
	typeInto(m, "abc")
	m.Update(tuitest.KeyEnter())
	assert.Contains(t, tuitest.StripANSI(m.OutputView(80)), "Please enter valid numeric values")

	m.Update(tuitest.KeyCtrl("r"))
	assert.Contains(t, tuitest.StripANSI(m.OutputView(80)), "Results will appear here")
}

func TestAreaModel_Circle(t *testing.T) {
	m := NewAreaModel(themes.Light)
	m.Update(tuitest.KeyRight())
	m.Update(tuitest.KeyRight())
	assert.Equal(t, tools.Circle, m.Shape())

	m.Update(tuitest.KeyDown())
	typeInto(m, "1")
	m.Update(tuitest.KeyEnter())
	assert.Contains(t, tuitest.StripANSI(m.OutputView(80)), "3.14 square units")
}

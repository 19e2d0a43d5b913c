package tools

import "errors"

var messages = []struct {
	err error
	msg string
}{
	{ErrEmptyExpression, "Please enter an expression"},
	{ErrInvalidCharacters, "Invalid characters in expression"},
	{ErrInvalidExpression, "Invalid expression"},
	{ErrDivisionByZero, "Division by zero"},
	{ErrMissingSide, "Please enter the length of the square"},
	{ErrMissingLengthWidth, "Please enter both length and width"},
	{ErrMissingRadius, "Please enter the radius"},
	{ErrMissingBaseHeight, "Please enter both base and height"},
	{ErrInvalidNumericValues, "Please enter valid numeric values"},
	{ErrUnknownShape, "Please choose a square, rectangle, circle or triangle"},
}

// Message returns the text the result pane shows for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return "An error occurred during calculation"
}

// PlaceholderMessage is shown for catalog tools without an implementation.
const PlaceholderMessage = "Tool implementation coming soon..."

// Implemented reports whether toolID has an interactive implementation.
func Implemented(toolID string) bool {
	switch toolID {
	case "calculator", "area-calculator", "flames-calculator":
		return true
	default:
		return false
	}
}

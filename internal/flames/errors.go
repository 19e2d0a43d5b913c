package flames

import "errors"

// Validation failures. Compute wraps these in a *ValidationError.
var (
	ErrMissingFirstName      = errors.New("missing first name")
	ErrMissingSecondName     = errors.New("missing second name")
	ErrNoLettersInFirstName  = errors.New("no letters in first name")
	ErrNoLettersInSecondName = errors.New("no letters in second name")
	ErrInputTooLong          = errors.New("input too long")
)

// ValidationError carries the failing rule along with a message suitable
// for display next to the form.
type ValidationError struct {
	Kind    error
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

var messages = map[error]string{
	ErrMissingFirstName:      "Please enter the first name",
	ErrMissingSecondName:     "Please enter the second name",
	ErrNoLettersInFirstName:  "The first name must contain at least one letter",
	ErrNoLettersInSecondName: "The second name must contain at least one letter",
	ErrInputTooLong:          "Names must be at most 10000 characters long",
}

func invalid(kind error) error {
	return &ValidationError{Kind: kind, Message: messages[kind]}
}

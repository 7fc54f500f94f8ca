package appstate

import "errors"

var (
	// ErrValidation is matched by every input validation failure
	ErrValidation = errors.New("validation failed")

	// ErrNotFound is returned when an add targets a missing view or section
	ErrNotFound = errors.New("not found")

	ErrInvalidPresetName = errors.New("preset name is required")
	ErrPresetNameTooLong = errors.New("preset name must be at most 50 characters")
	ErrPresetExists      = errors.New("preset already exists")
	ErrMissingID         = errors.New("id is required")
	ErrMissingName       = errors.New("name is required")
	ErrDuplicateID       = errors.New("id already exists")
	ErrDuplicateName     = errors.New("name is already used by another view")
)

// ValidationError is a rejected input. Its message is meant for the user.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Err.Error()
	}
	return e.Field + ": " + e.Err.Error()
}

// Unwrap exposes both ErrValidation and the specific cause to errors.Is.
func (e *ValidationError) Unwrap() []error {
	return []error{ErrValidation, e.Err}
}

func invalid(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

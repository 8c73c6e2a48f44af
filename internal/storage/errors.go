package storage

import (
	"errors"
	"fmt"
)

// ValidationError reports user input that a storage operation rejected:
// blank subjects, malformed times or dates, unknown days, out-of-range
// indices, or attempts to check off a habit in the future. Callers show
// these in the status bar instead of treating them as I/O failures.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Validationf creates a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

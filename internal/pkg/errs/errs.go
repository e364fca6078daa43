package errs

import (
	"errors"
	"strings"
)

// IsValidation reports whether err is (or wraps) one of the validation errors:
// ValueIsRequiredError, ValueIsInvalidError or ValueIsOutOfRangeError.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValueIsRequired) ||
		errors.Is(err, ErrValueIsInvalid) ||
		errors.Is(err, ErrValueIsOutOfRange)
}

// sanitize keeps user supplied values on a single line so messages stay log friendly.
func sanitize(s string) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
}

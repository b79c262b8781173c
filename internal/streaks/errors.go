package streaks

import (
	"errors"
	"strings"
)

var ErrEventNotFound = errors.New("event not found")

// ValidationError rejects malformed event input before any store call.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "invalid event input: " + strings.Join(e.Reasons, "; ")
}

func IsValidationError(err error) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr)
}

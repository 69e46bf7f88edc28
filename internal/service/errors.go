package service

import (
	"errors"
	"fmt"
)

// ErrValidation marks failures caught before any storage or database call.
// Handlers map it to a 400; everything else surfaces as a server error.
var ErrValidation = errors.New("validation failed")

func validationError(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

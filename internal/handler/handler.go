package handler

import (
	"errors"
	"strings"

	"github.com/innovelous/agency/internal/service"
)

func isValidationErr(err error) bool {
	return errors.Is(err, service.ErrValidation)
}

// validationMessage strips the sentinel prefix so clients see only the
// human-readable part.
func validationMessage(err error) string {
	msg := err.Error()
	prefix := service.ErrValidation.Error() + ": "
	if strings.HasPrefix(msg, prefix) {
		return strings.TrimPrefix(msg, prefix)
	}
	return msg
}

package util

import (
	"fmt"
	"strings"

	"github.com/kbukum/edukit/errors"
)

// ValidateNonEmpty validates that value is not empty after trimming whitespace.
func ValidateNonEmpty(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.InvalidArgument(field, fmt.Sprintf("%s must be a non-empty string", field))
	}
	return nil
}

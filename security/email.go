package security

import (
	"regexp"

	"github.com/kbukum/edukit/util"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

// ValidateEmail reports whether email has the shape local@host.extension.
// The emptiness check trims whitespace; the match itself does not, so
// surrounding spaces make an address invalid.
func ValidateEmail(email string) (bool, error) {
	if err := util.ValidateNonEmpty("email", email); err != nil {
		return false, err
	}
	return emailPattern.MatchString(email), nil
}

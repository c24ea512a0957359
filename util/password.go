package util

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/kbukum/edukit/errors"
)

const (
	// DefaultPasswordLength is the length used when callers have no preference.
	DefaultPasswordLength = 12
	// MinPasswordLength is the shortest password GenerateStrongPassword accepts.
	MinPasswordLength = 8

	// PasswordAlphabet lists every character a generated password may contain.
	PasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*"
)

// GenerateStrongPassword returns a random password of exactly length
// characters drawn uniformly from PasswordAlphabet using crypto/rand.
func GenerateStrongPassword(length int) (string, error) {
	if length < MinPasswordLength {
		return "", errors.InvalidArgument("length",
			fmt.Sprintf("password length must be at least %d characters", MinPasswordLength))
	}

	limit := big.NewInt(int64(len(PasswordAlphabet)))
	out := make([]byte, length)
	for i := range out {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", errors.Internal(err)
		}
		out[i] = PasswordAlphabet[idx.Int64()]
	}
	return string(out), nil
}

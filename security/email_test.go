package security

import (
	"testing"

	"github.com/kbukum/edukit/errors"
)

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "martin.serafimov@example.com", true},
		{"plus and underscore", "first_last+tag@mail-host.io", true},
		{"subdomain folds into extension", "user@sub.example.co.uk", true},
		{"repeated dots accepted", "a@b.c..d", true},
		{"missing at", "example.com", false},
		{"double at", "user@@example.com", false},
		{"missing extension", "user@localhost", false},
		{"leading space", " user@example.com", false},
		{"trailing newline", "user@example.com\n", false},
		{"underscore in host label", "user@exa_mple.com", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ValidateEmail(tc.email)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ValidateEmail(%q) = %v, want %v", tc.email, got, tc.want)
			}
		})
	}
}

func TestValidateEmailEmpty(t *testing.T) {
	for _, email := range []string{"", "   ", "\t\n"} {
		ok, err := ValidateEmail(email)
		if !errors.IsInvalidArgument(err) {
			t.Errorf("ValidateEmail(%q): expected INVALID_ARGUMENT, got %v", email, err)
		}
		if ok {
			t.Errorf("ValidateEmail(%q) should not report a match on failure", email)
		}
	}
}

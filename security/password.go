package security

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/kbukum/edukit/errors"
)

const (
	minStrongLength = 8
	criteriaCount   = 4
)

var (
	upperPattern   = regexp.MustCompile(`[A-Z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*]`)
)

// PasswordReport is the outcome of CheckPasswordComplexity.
type PasswordReport struct {
	Length     bool   `json:"length" yaml:"length"`
	HasUpper   bool   `json:"has_upper" yaml:"has_upper"`
	HasDigit   bool   `json:"has_digit" yaml:"has_digit"`
	HasSpecial bool   `json:"has_special" yaml:"has_special"`
	Score      string `json:"score" yaml:"score"`
}

// Met returns how many of the four criteria hold.
func (r PasswordReport) Met() int {
	n := 0
	for _, ok := range []bool{r.Length, r.HasUpper, r.HasDigit, r.HasSpecial} {
		if ok {
			n++
		}
	}
	return n
}

func (r PasswordReport) String() string {
	return fmt.Sprintf("length=%t has_upper=%t has_digit=%t has_special=%t score=%s",
		r.Length, r.HasUpper, r.HasDigit, r.HasSpecial, r.Score)
}

// Strong reports whether every criterion holds.
func (r PasswordReport) Strong() bool {
	return r.Met() == criteriaCount
}

// CheckPasswordComplexity scores password against four independent
// criteria: at least eight characters, an uppercase ASCII letter, a digit and
// one of !@#$%^&*.
func CheckPasswordComplexity(password string) (PasswordReport, error) {
	if password == "" {
		return PasswordReport{}, errors.InvalidArgument("password", "password must be a non-empty string")
	}

	report := PasswordReport{
		Length:     utf8.RuneCountInString(password) >= minStrongLength,
		HasUpper:   upperPattern.MatchString(password),
		HasDigit:   digitPattern.MatchString(password),
		HasSpecial: specialPattern.MatchString(password),
	}
	report.Score = fmt.Sprintf("%d/%d", report.Met(), criteriaCount)
	return report, nil
}

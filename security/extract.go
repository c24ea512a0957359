package security

import "regexp"

const redactedToken = "[REDACTED]"

var (
	phonePattern = regexp.MustCompile(`\d{3}-\d{3}-\d{4}`)

	// 16 digits in groups of four, optionally separated by '-' or ' '.
	cardPattern = regexp.MustCompile(`\b\d{4}[- ]?\d{4}[- ]?\d{4}[- ]?\d{4}\b`)
)

// ExtractPhoneNumbers returns every XXX-XXX-XXXX number in text, in order of
// appearance. The result is empty, not nil, when nothing matches.
func ExtractPhoneNumbers(text string) []string {
	found := phonePattern.FindAllString(text, -1)
	if found == nil {
		return []string{}
	}
	return found
}

// CensorSensitiveData replaces every card-like 16-digit number in text with
// [REDACTED].
func CensorSensitiveData(text string) string {
	return cardPattern.ReplaceAllLiteralString(text, redactedToken)
}

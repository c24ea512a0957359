package util

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

const vowels = "aeiouAEIOU"

// IsPalindrome reports whether text reads the same backwards, ignoring case
// and space characters. Other whitespace and punctuation are significant.
func IsPalindrome(text string) bool {
	// A Caser is stateful, so each call builds its own.
	folded := cases.Fold().String(text)
	cleaned := []rune(strings.ReplaceAll(folded, " ", ""))
	for i, j := 0, len(cleaned)-1; i < j; i, j = i+1, j-1 {
		if cleaned[i] != cleaned[j] {
			return false
		}
	}
	return true
}

// CountVowels counts the ASCII vowels in text, in either case.
func CountVowels(text string) int {
	count := 0
	for _, r := range text {
		if strings.ContainsRune(vowels, r) {
			count++
		}
	}
	return count
}

// ReverseString returns text with its characters in reverse order.
func ReverseString(text string) string {
	runes := []rune(text)
	slices.Reverse(runes)
	return string(runes)
}

package util

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestHelperProperties(t *testing.T) {
	properties := newProperties()

	properties.Property("average equals sum over length", prop.ForAll(
		func(values []float64) bool {
			if len(values) == 0 {
				return true
			}
			var sum float64
			for _, v := range values {
				sum += v
			}
			got, err := CalculateAverage(values)
			return err == nil && got == sum/float64(len(values))
		},
		gen.SliceOf(gen.Float64Range(-1e9, 1e9)),
	))

	properties.Property("prime iff no divisor in [2, sqrt n]", prop.ForAll(
		func(n int) bool {
			want := n > 1
			for d := 2; d*d <= n; d++ {
				if n%d == 0 {
					want = false
					break
				}
			}
			return IsPrime(n) == want
		},
		gen.IntRange(-100, 50000),
	))

	properties.Property("reverse is an involution", prop.ForAll(
		func(s string) bool {
			return ReverseString(ReverseString(s)) == s
		},
		gen.AlphaString(),
	))

	properties.Property("a string joined to its reverse is a palindrome", prop.ForAll(
		func(s string) bool {
			return IsPalindrome(s + ReverseString(s))
		},
		gen.AlphaString(),
	))

	properties.Property("even and odd partition the integers", prop.ForAll(
		func(n int64) bool {
			return IsEven(n) != IsOdd(n)
		},
		gen.Int64(),
	))

	properties.Property("generated passwords have the requested length and alphabet", prop.ForAll(
		func(length int) bool {
			pw, err := GenerateStrongPassword(length)
			if err != nil || len(pw) != length {
				return false
			}
			for _, r := range pw {
				if !strings.ContainsRune(PasswordAlphabet, r) {
					return false
				}
			}
			return true
		},
		gen.IntRange(MinPasswordLength, 128),
	))

	properties.TestingRun(t)
}

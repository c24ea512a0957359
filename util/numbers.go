package util

import (
	"cmp"
	"slices"

	"github.com/kbukum/edukit/errors"
)

// Integer is satisfied by every built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is satisfied by every built-in integer and floating-point type.
type Number interface {
	Integer | ~float32 | ~float64
}

// IsEven checks if a number is even.
func IsEven[T Integer](n T) bool {
	return n%2 == 0
}

// IsOdd checks if a number is odd. Negative odd numbers are odd too.
func IsOdd[T Integer](n T) bool {
	return n%2 != 0
}

// CalculatePercentage returns what percentage part is of whole.
func CalculatePercentage(part, whole float64) (float64, error) {
	if whole == 0 {
		return 0, errors.InvalidArgument("whole", "cannot calculate percentage with zero denominator")
	}
	return (part / whole) * 100, nil
}

// CelsiusToFahrenheit converts a temperature from Celsius to Fahrenheit.
func CelsiusToFahrenheit(celsius float64) float64 {
	return (celsius * 9 / 5) + 32
}

// GetMaxValue returns the largest element of values.
func GetMaxValue[T cmp.Ordered](values []T) (T, error) {
	if len(values) == 0 {
		var zero T
		return zero, errors.InvalidArgument("values", "cannot find max of empty list")
	}
	return slices.Max(values), nil
}

// CalculateAverage returns the arithmetic mean of values.
func CalculateAverage[T Number](values []T) (float64, error) {
	if len(values) == 0 {
		return 0, errors.InvalidArgument("values", "cannot calculate average of empty list")
	}
	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), nil
}

// IsPrime reports whether n is prime using trial division by 2 and then by
// odd candidates up to the square root of n.
func IsPrime[T Integer](n T) bool {
	if n <= 1 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	// i <= n/i keeps i*i from overflowing near the top of T's range.
	for i := T(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

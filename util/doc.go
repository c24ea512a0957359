// Package util provides the math and string helpers of edukit together with
// the small generic helpers the rest of the module builds on.
//
// Every function is pure: it reads only its arguments and returns a new
// value. Functions with a precondition return an *errors.AppError with code
// INVALID_ARGUMENT when it is violated.
package util

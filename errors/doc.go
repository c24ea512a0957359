// Package errors provides the structured error type shared by edukit packages.
// Every failure is an *AppError carrying one of a small set of codes:
// INVALID_ARGUMENT for bad values, TYPE_ERROR for badly shaped input and
// INTERNAL_ERROR for everything the caller cannot fix.
package errors

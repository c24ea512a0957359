package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors
const (
	// ErrCodeInvalidArgument indicates a semantically wrong value, such as an
	// empty collection or a zero denominator.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeTypeError indicates input of the wrong shape or type.
	ErrCodeTypeError ErrorCode = "TYPE_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure outside the caller's control.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var callerFaultCodes = map[ErrorCode]bool{
	ErrCodeInvalidArgument: true,
	ErrCodeTypeError:       true,
	ErrCodeInternal:        false,
}

// IsCallerFault returns true if the code blames the input rather than the library.
func IsCallerFault(code ErrorCode) bool {
	return callerFaultCodes[code]
}

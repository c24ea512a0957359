package errors

import (
	stderrors "errors"
)

// ErrorResponse is the envelope the CLI prints for structured output formats.
type ErrorResponse struct {
	Error ErrorBody `json:"error" yaml:"error"`
}

// ErrorBody contains the error details sent to the caller.
type ErrorBody struct {
	Code        ErrorCode      `json:"code" yaml:"code"`
	Message     string         `json:"message" yaml:"message"`
	CallerFault bool           `json:"caller_fault" yaml:"caller_fault"`
	Details     map[string]any `json:"details,omitempty" yaml:"details,omitempty"`
}

// ToResponse converts an AppError to an ErrorResponse for serialization.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{
		Error: ErrorBody{
			Code:        e.Code,
			Message:     e.Message,
			CallerFault: IsCallerFault(e.Code),
			Details:     e.Details,
		},
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// IsInvalidArgument reports whether err is an INVALID_ARGUMENT AppError.
func IsInvalidArgument(err error) bool { return HasCode(err, ErrCodeInvalidArgument) }

// IsTypeError reports whether err is a TYPE_ERROR AppError.
func IsTypeError(err error) bool { return HasCode(err, ErrCodeTypeError) }

package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestAppError_New_Success(t *testing.T) {
	err := New(ErrCodeInvalidArgument, "bad value")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidArgument, err.Code)
	}
	if err.Message != "bad value" {
		t.Errorf("expected message 'bad value', got %q", err.Message)
	}
	if err.Error() != "INVALID_ARGUMENT: bad value" {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestAppError_InvalidArgument_Success(t *testing.T) {
	err := InvalidArgument("whole", "denominator cannot be zero")
	if err.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", err.Code)
	}
	if err.Details["field"] != "whole" {
		t.Errorf("expected field=whole, got %v", err.Details["field"])
	}
	if !strings.Contains(err.Message, "denominator cannot be zero") {
		t.Errorf("expected reason in message, got %q", err.Message)
	}
}

func TestAppError_InvalidArgument_EmptyField(t *testing.T) {
	err := InvalidArgument("", "nope")
	if _, ok := err.Details["field"]; ok {
		t.Error("expected no 'field' key in details when field is empty")
	}
}

func TestAppError_TypeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		field   string
		got     any
		wantGot string
		wantMsg string
	}{
		{"go value", "stock", 3.5, "float64", "stock: expected integer, got float64"},
		{"description", "stock", "!!str", "!!str", "stock: expected integer, got !!str"},
		{"no field", "", true, "bool", "expected integer, got bool"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := TypeMismatch(tc.field, "integer", tc.got)
			if err.Code != ErrCodeTypeError {
				t.Errorf("expected TYPE_ERROR, got %s", err.Code)
			}
			if err.Details["got"] != tc.wantGot {
				t.Errorf("expected got=%q, got %v", tc.wantGot, err.Details["got"])
			}
			if err.Message != tc.wantMsg {
				t.Errorf("expected message %q, got %q", tc.wantMsg, err.Message)
			}
		})
	}
}

func TestAppError_Internal_Success(t *testing.T) {
	cause := fmt.Errorf("entropy exhausted")
	err := Internal(cause)
	if err.Code != ErrCodeInternal {
		t.Errorf("expected INTERNAL_ERROR, got %s", err.Code)
	}
	if err.Cause != cause {
		t.Error("expected cause to be set")
	}
	if !strings.Contains(err.Error(), "cause: entropy exhausted") {
		t.Errorf("expected cause in Error(), got %q", err.Error())
	}
	if IsCallerFault(err.Code) {
		t.Error("INTERNAL_ERROR should not be a caller fault")
	}
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("root")
	err := InvalidArgument("x", "bad").WithCause(cause)
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the cause")
	}
}

func TestAppError_WithDetail(t *testing.T) {
	err := New(ErrCodeTypeError, "x").WithDetail("line", 4)
	if err.Details["line"] != 4 {
		t.Errorf("expected line=4, got %v", err.Details["line"])
	}
}

func TestIsCallerFault(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want bool
	}{
		{ErrCodeInvalidArgument, true},
		{ErrCodeTypeError, true},
		{ErrCodeInternal, false},
		{ErrorCode("UNKNOWN"), false},
	}
	for _, tc := range tests {
		t.Run(string(tc.code), func(t *testing.T) {
			if got := IsCallerFault(tc.code); got != tc.want {
				t.Errorf("IsCallerFault(%s) = %v, want %v", tc.code, got, tc.want)
			}
		})
	}
}

func TestAsAppError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("loading: %w", TypeMismatch("scores", "sequence", "!!map"))
	appErr, ok := AsAppError(wrapped)
	if !ok {
		t.Fatal("expected AsAppError to unwrap")
	}
	if appErr.Code != ErrCodeTypeError {
		t.Errorf("expected TYPE_ERROR, got %s", appErr.Code)
	}
	if !IsAppError(wrapped) {
		t.Error("expected IsAppError to be true")
	}
	if !IsTypeError(wrapped) {
		t.Error("expected IsTypeError to be true")
	}
	if IsInvalidArgument(wrapped) {
		t.Error("expected IsInvalidArgument to be false")
	}
}

func TestAsAppError_Plain(t *testing.T) {
	if _, ok := AsAppError(stderrors.New("plain")); ok {
		t.Error("plain error should not convert")
	}
	if IsInvalidArgument(nil) {
		t.Error("nil should not match")
	}
}

func TestToResponse(t *testing.T) {
	resp := InvalidArgument("scores", "cannot be empty").ToResponse()
	if resp.Error.Code != ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", resp.Error.Code)
	}
	if !resp.Error.CallerFault {
		t.Error("expected caller_fault=true")
	}
	if resp.Error.Details["field"] != "scores" {
		t.Errorf("expected field detail, got %v", resp.Error.Details)
	}
}

package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/edukit/errors"
)

func TestValidatorRequired(t *testing.T) {
	v := New()
	v.Required("name", "Alice")
	if v.HasErrors() {
		t.Error("expected no errors for valid input")
	}

	v2 := New()
	v2.Required("name", "")
	if !v2.HasErrors() {
		t.Error("expected error for empty required field")
	}

	v3 := New()
	v3.Required("name", "   ")
	if !v3.HasErrors() {
		t.Error("expected error for whitespace-only required field")
	}
}

func TestValidatorNotEmpty(t *testing.T) {
	if New().NotEmpty("items", 3).HasErrors() {
		t.Error("expected no error for non-empty collection")
	}
	v := New().NotEmpty("items", 0)
	if !v.HasErrors() {
		t.Fatal("expected error for empty collection")
	}
	if v.Errors()[0].Message != "cannot be empty" {
		t.Errorf("unexpected message %q", v.Errors()[0].Message)
	}
}

func TestValidatorMin(t *testing.T) {
	if New().Min("length", 8, 8).HasErrors() {
		t.Error("expected boundary value to pass")
	}
	if !New().Min("length", 7, 8).HasErrors() {
		t.Error("expected error below minimum")
	}
}

func TestValidatorUnique(t *testing.T) {
	if New().Unique("student", []string{"Alice", "Bob"}).HasErrors() {
		t.Error("expected no error for unique values")
	}
	v := New().Unique("student", []string{"Alice", "Bob", "Alice", "Alice"})
	if len(v.Errors()) != 2 {
		t.Fatalf("expected one error per repeat, got %d", len(v.Errors()))
	}
	if !strings.Contains(v.Errors()[0].Message, `"Alice"`) {
		t.Errorf("expected duplicate name in message, got %q", v.Errors()[0].Message)
	}
}

func TestValidatorOneOf(t *testing.T) {
	allowed := []string{"text", "json", "yaml"}

	if New().OneOf("output", "json", allowed).HasErrors() {
		t.Error("expected no error for allowed value")
	}
	if New().OneOf("output", "", allowed).HasErrors() {
		t.Error("expected no error for empty value")
	}
	if !New().OneOf("output", "xml", allowed).HasErrors() {
		t.Error("expected error for disallowed value")
	}
}

func TestValidatorCustom(t *testing.T) {
	if New().Custom(true, "x", "bad").HasErrors() {
		t.Error("expected no error when condition holds")
	}
	v := New().Custom(false, "x", "bad")
	if len(v.Errors()) != 1 || v.Errors()[0].Field != "x" {
		t.Errorf("unexpected errors: %v", v.Errors())
	}
}

func TestValidatorValidate(t *testing.T) {
	if New().Validate() != nil {
		t.Error("expected nil for validator without errors")
	}
	if New().Err() != nil {
		t.Error("expected nil interface from Err without errors")
	}

	v := New().NotEmpty("scores", 0).Required("name", "")
	appErr := v.Validate()
	if appErr == nil {
		t.Fatal("expected AppError")
	}
	if appErr.Code != errors.ErrCodeInvalidArgument {
		t.Errorf("expected INVALID_ARGUMENT, got %s", appErr.Code)
	}
	if appErr.Message != "scores: cannot be empty; name: is required" {
		t.Errorf("unexpected message %q", appErr.Message)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("expected 2 field errors in details, got %v", appErr.Details["fields"])
	}
	if !errors.IsInvalidArgument(v.Err()) {
		t.Error("expected Err to return the same INVALID_ARGUMENT error")
	}
}

type passwordSection struct {
	DefaultLength int `mapstructure:"default_length" validate:"gte=8"`
}

type sampleConfig struct {
	Output   string          `mapstructure:"output" validate:"oneof=text json yaml"`
	Name     string          `mapstructure:"name" validate:"required"`
	Password passwordSection `mapstructure:"password"`
	MaxItems int             `validate:"lte=10"`
}

func TestValidateStruct(t *testing.T) {
	valid := sampleConfig{Output: "json", Name: "edukit", Password: passwordSection{DefaultLength: 12}}
	if err := Validate(valid); err != nil {
		t.Fatalf("expected valid struct, got %v", err)
	}

	invalid := sampleConfig{Output: "xml", Password: passwordSection{DefaultLength: 4}, MaxItems: 11}
	err := Validate(invalid)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsInvalidArgument(err) {
		t.Errorf("expected INVALID_ARGUMENT, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{
		"output: must be one of: text json yaml",
		"name: is required",
		"password.default_length: must be at least 8",
		"max_items: must be at most 10",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in %q", want, msg)
		}
	}
}

func TestValidateNonStruct(t *testing.T) {
	err := Validate("not a struct")
	if !errors.IsInvalidArgument(err) {
		t.Errorf("expected INVALID_ARGUMENT for non-struct input, got %v", err)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"DefaultLength": "default_length",
		"Name":          "name",
		"already_snake": "already_snake",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}

// Package validation provides input validation utilities for edukit.
//
// It supports both struct tag validation (using the validator library) and
// programmatic validation with error collection. Both report failures as an
// INVALID_ARGUMENT *errors.AppError whose details list every failing field.
//
// # Struct Tag Validation
//
//	type appConfig struct {
//	    Output string `mapstructure:"output" validate:"oneof=text json yaml"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	err := validation.New().
//	    NotEmpty("scores", len(book)).
//	    Unique("student", names).
//	    Err()
package validation

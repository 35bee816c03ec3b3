package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrMalformedSchema indicates a flat-schema string violated the grammar.
	ErrMalformedSchema = errors.New("malformed schema")

	// ErrReference indicates a component reference could not be resolved.
	ErrReference = errors.New("reference error")

	// ErrValidation indicates an exported document failed structural validation.
	ErrValidation = errors.New("validation error")

	// ErrConfig indicates an invalid configuration or input.
	ErrConfig = errors.New("configuration error")
)

// MalformedSchemaError represents a flat-schema string that could not be compiled.
// It is raised for unbalanced or mismatched braces and brackets, and for
// fragments that cannot be classified as an array, object, or scalar spec.
type MalformedSchemaError struct {
	// Input is the whitespace-stripped schema string that failed
	Input string
	// Fragment is the offending part of the input (may equal Input)
	Fragment string
	// Message describes the grammar violation
	Message string
}

// Error returns a human-readable error message.
func (e *MalformedSchemaError) Error() string {
	msg := "malformed schema"
	if e.Input != "" {
		msg += ": " + e.Input
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Fragment != "" && e.Fragment != e.Input {
		msg += fmt.Sprintf(" (near %q)", e.Fragment)
	}
	return msg
}

// Unwrap returns nil as MalformedSchemaError has no underlying cause.
func (e *MalformedSchemaError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *MalformedSchemaError) Is(target error) bool {
	return target == ErrMalformedSchema
}

// ReferenceError represents a reference to a component that does not exist.
type ReferenceError struct {
	// Ref is the reference string that failed to resolve
	Ref string
	// Message provides additional context about the failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ReferenceError) Error() string {
	msg := "reference error"
	if e.Ref != "" {
		msg += ": " + e.Ref
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ReferenceError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ReferenceError) Is(target error) bool {
	return target == ErrReference
}

// ValidationError represents an OpenAPI structural violation in an exported document.
type ValidationError struct {
	// Path is the document location of the problem, when known (e.g., "paths./pets.get")
	Path string
	// Message describes the validation failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

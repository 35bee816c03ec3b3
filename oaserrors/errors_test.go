package oaserrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestMalformedSchemaError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &MalformedSchemaError{
			Input:    "{a:i,b:{c:s}",
			Fragment: "{a:i,$0",
			Message:  "unterminated block",
		}
		expected := `malformed schema: {a:i,b:{c:s}: unterminated block (near "{a:i,$0")`
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Fragment equal to input is not repeated", func(t *testing.T) {
		err := &MalformedSchemaError{Input: "{a:i", Fragment: "{a:i"}
		if err.Error() != "malformed schema: {a:i" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &MalformedSchemaError{}
		if err.Error() != "malformed schema" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns nil", func(t *testing.T) {
		err := &MalformedSchemaError{}
		if err.Unwrap() != nil {
			t.Error("Unwrap should return nil")
		}
	})

	t.Run("Is matches ErrMalformedSchema", func(t *testing.T) {
		err := &MalformedSchemaError{Input: "]"}
		if !errors.Is(err, ErrMalformedSchema) {
			t.Error("MalformedSchemaError should match ErrMalformedSchema")
		}
		if errors.Is(err, ErrConfig) {
			t.Error("MalformedSchemaError should not match ErrConfig")
		}
	})

	t.Run("As extracts MalformedSchemaError", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", &MalformedSchemaError{Input: "[i"})
		var schemaErr *MalformedSchemaError
		if !errors.As(err, &schemaErr) {
			t.Fatal("errors.As should succeed")
		}
		if schemaErr.Input != "[i" {
			t.Errorf("unexpected input: %s", schemaErr.Input)
		}
	})
}

func TestReferenceError(t *testing.T) {
	t.Run("Error message for missing component", func(t *testing.T) {
		err := &ReferenceError{
			Ref:     "#/components/schemas/Pet",
			Message: "not registered",
		}
		expected := "reference error: #/components/schemas/Pet: not registered"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrReference only", func(t *testing.T) {
		err := &ReferenceError{Ref: "#Pet"}
		if !errors.Is(err, ErrReference) {
			t.Error("ReferenceError should match ErrReference")
		}
		if errors.Is(err, ErrValidation) {
			t.Error("ReferenceError should not match ErrValidation")
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &ReferenceError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("value of title must be a non-empty string")
		err := &ValidationError{
			Path:    "info",
			Message: "invalid info",
			Cause:   cause,
		}
		expected := "validation error at info: invalid info: value of title must be a non-empty string"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message minimal", func(t *testing.T) {
		err := &ValidationError{}
		if err.Error() != "validation error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrValidation", func(t *testing.T) {
		err := &ValidationError{Message: "x"}
		if !errors.Is(err, ErrValidation) {
			t.Error("ValidationError should match ErrValidation")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("invalid value")
		err := &ConfigError{
			Option:  "openapi",
			Value:   "2.0",
			Message: "only 3.x documents are supported",
			Cause:   cause,
		}
		expected := "configuration error for openapi (value: 2.0): only 3.x documents are supported: invalid value"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with nil value excluded", func(t *testing.T) {
		err := &ConfigError{
			Option:  "path",
			Value:   nil,
			Message: "required",
		}
		expected := "configuration error for path: required"
		if err.Error() != expected {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Is matches ErrConfig", func(t *testing.T) {
		err := &ConfigError{Option: "test"}
		if !errors.Is(err, ErrConfig) {
			t.Error("ConfigError should match ErrConfig")
		}
		if errors.Is(err, ErrMalformedSchema) {
			t.Error("ConfigError should not match ErrMalformedSchema")
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrMalformedSchema,
		ErrReference,
		ErrValidation,
		ErrConfig,
	}

	for i, s1 := range sentinels {
		for j, s2 := range sentinels {
			if i != j && errors.Is(s1, s2) {
				t.Errorf("sentinel errors should be distinct: %v should not match %v", s1, s2)
			}
		}
	}
}

func TestErrorChaining(t *testing.T) {
	t.Run("config error wrapping a malformed schema", func(t *testing.T) {
		schemaErr := &MalformedSchemaError{Input: "{a:i"}
		cfgErr := &ConfigError{Option: "req", Cause: schemaErr}
		wrapped := fmt.Errorf("layer: %w", cfgErr)

		if !errors.Is(wrapped, ErrConfig) {
			t.Error("should match ErrConfig")
		}
		if !errors.Is(wrapped, ErrMalformedSchema) {
			t.Error("should match ErrMalformedSchema through the cause chain")
		}

		var extracted *MalformedSchemaError
		if !errors.As(wrapped, &extracted) {
			t.Fatal("errors.As should work through wrapping")
		}
		if extracted.Input != "{a:i" {
			t.Errorf("unexpected input: %s", extracted.Input)
		}
	})
}

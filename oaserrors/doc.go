// Package oaserrors provides structured error types for the oasflat library.
//
// Import path: github.com/erraggy/oasflat/oaserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a malformed flat schema, a dangling
// component reference, a structurally invalid export, and plain misuse.
//
// # Error Types
//
//   - [MalformedSchemaError]: flat-schema grammar violations (unbalanced blocks, invalid scalars)
//   - [ReferenceError]: references to components that were never registered
//   - [ValidationError]: structural problems found when validating an exported document
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrMalformedSchema]: Matches any [MalformedSchemaError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
// Check error category with errors.Is():
//
//	schema, err := flatschema.Compile("{id:i,name:s")
//	if errors.Is(err, oaserrors.ErrMalformedSchema) {
//	    // Reject the route registration
//	}
//
// Extract error details with errors.As():
//
//	var malformed *oaserrors.MalformedSchemaError
//	if errors.As(err, &malformed) {
//	    fmt.Printf("bad schema %q near %q\n", malformed.Input, malformed.Fragment)
//	}
//
// # Error Chaining
//
// [ReferenceError], [ValidationError] and [ConfigError] support chaining via
// the Cause field and Unwrap() method, so a builder error wrapping a
// [MalformedSchemaError] still matches [ErrMalformedSchema].
package oaserrors

package builder

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasflat/oaserrors"
)

// ComponentType identifies the type of component where an error occurred.
type ComponentType string

const (
	// ComponentOperation indicates an error in an operation definition.
	ComponentOperation ComponentType = "operation"
	// ComponentParameter indicates an error in a parameter definition.
	ComponentParameter ComponentType = "parameter"
	// ComponentSchema indicates an error in a schema definition.
	ComponentSchema ComponentType = "schema"
	// ComponentRequestBody indicates an error in a request body definition.
	ComponentRequestBody ComponentType = "request_body"
	// ComponentResponse indicates an error in a response definition.
	ComponentResponse ComponentType = "response"
	// ComponentSecurityScheme indicates an error in a security scheme.
	ComponentSecurityScheme ComponentType = "security_scheme"
	// ComponentServer indicates an error in a server definition.
	ComponentServer ComponentType = "server"
	// ComponentTag indicates an error in a tag definition.
	ComponentTag ComponentType = "tag"
)

// operationLocation tracks where an operationID was first defined.
type operationLocation struct {
	Method string
	Path   string
}

// String returns a human-readable location description.
func (ol operationLocation) String() string {
	return fmt.Sprintf("%s %s", strings.ToUpper(ol.Method), ol.Path)
}

// BuilderError represents a structured error from the builder package.
// It records which call was rejected and why; the rejected call leaves the
// document untouched.
type BuilderError struct {
	// Component is the type of component where the error occurred.
	Component ComponentType
	// Method is the HTTP method (for operation errors).
	Method string
	// Path is the API path (for operation errors) or component name.
	Path string
	// OperationID is the operation identifier (if applicable).
	OperationID string
	// Field is the specific input with the error (e.g., "req", "query").
	Field string
	// Message describes the error.
	Message string
	// FirstOccurrence tracks where a duplicate was first defined.
	FirstOccurrence *operationLocation
	// Cause is the underlying error, if any.
	Cause error
}

// Error implements the error interface with a detailed, formatted message.
func (e *BuilderError) Error() string {
	var sb strings.Builder
	sb.WriteString("builder")

	if e.Component != "" {
		sb.WriteString(": ")
		sb.WriteString(string(e.Component))
	}

	if e.Method != "" && e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(strings.ToUpper(e.Method))
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	} else if e.Path != "" {
		sb.WriteString(" ")
		sb.WriteString(e.Path)
	}

	if e.OperationID != "" {
		sb.WriteString(" [operationId: ")
		sb.WriteString(e.OperationID)
		sb.WriteString("]")
	}

	if e.Field != "" {
		sb.WriteString(" field ")
		sb.WriteString(e.Field)
	}

	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}

	if e.FirstOccurrence != nil {
		sb.WriteString(" (first defined at ")
		sb.WriteString(e.FirstOccurrence.String())
		sb.WriteString(")")
	}

	if e.Cause != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Cause.Error())
	}

	return sb.String()
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *BuilderError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// All BuilderErrors are classified as ErrConfig errors; the cause stays
// reachable, so errors.Is(err, oaserrors.ErrMalformedSchema) also works for
// rejected flat schemas.
func (e *BuilderError) Is(target error) bool {
	return target == oaserrors.ErrConfig
}

// Location returns a descriptive location string.
func (e *BuilderError) Location() string {
	if e.Method != "" && e.Path != "" {
		return fmt.Sprintf("%s %s", strings.ToUpper(e.Method), e.Path)
	}
	if e.Path != "" {
		return e.Path
	}
	if e.Component != "" {
		return string(e.Component)
	}
	return "unknown"
}

// NewDuplicateOperationIDError creates an error for duplicate operation IDs.
func NewDuplicateOperationIDError(operationID, method, path string, first *operationLocation) *BuilderError {
	return &BuilderError{
		Component:       ComponentOperation,
		Method:          method,
		Path:            path,
		OperationID:     operationID,
		Message:         fmt.Sprintf("duplicate operationId %q", operationID),
		FirstOccurrence: first,
	}
}

// NewInvalidMethodError creates an error for invalid/unknown HTTP methods.
func NewInvalidMethodError(method, path string) *BuilderError {
	return &BuilderError{
		Component: ComponentOperation,
		Path:      path,
		Message:   fmt.Sprintf("unsupported HTTP method: %s", method),
	}
}

// NewSchemaError creates an error for schema-related issues.
func NewSchemaError(schemaName, message string, cause error) *BuilderError {
	return &BuilderError{
		Component: ComponentSchema,
		Path:      schemaName,
		Message:   message,
		Cause:     cause,
	}
}

// NewReferenceError creates an error for a reference to an undefined component.
func NewReferenceError(component ComponentType, ref, method, path string) *BuilderError {
	return &BuilderError{
		Component: component,
		Method:    method,
		Path:      path,
		Cause:     &oaserrors.ReferenceError{Ref: ref, Message: "component is not defined"},
	}
}

// BuilderErrors is a collection of BuilderError with formatting support.
type BuilderErrors []*BuilderError

// Error implements the error interface with a formatted multi-error message.
func (errs BuilderErrors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	if len(errs) == 1 {
		if errs[0] == nil {
			return ""
		}
		return errs[0].Error()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "builder: %d error(s):\n", len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		sb.WriteString("  - ")
		// Strip the "builder: " prefix for nested errors to avoid repetition
		sb.WriteString(strings.TrimPrefix(e.Error(), "builder: "))
		sb.WriteString("\n")
	}

	return strings.TrimSuffix(sb.String(), "\n")
}

// Unwrap returns the errors for Go 1.20+ error wrapping semantics,
// enabling errors.Is and errors.As to work with multiple wrapped errors.
func (errs BuilderErrors) Unwrap() []error {
	result := make([]error, 0, len(errs))
	for _, e := range errs {
		if e == nil {
			continue
		}
		result = append(result, e)
	}
	return result
}

package validator

import (
	"context"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/oaserrors"
)

// Severity indicates the severity level of a validation issue
type Severity int

const (
	// SeverityError indicates a violation that makes the document invalid
	SeverityError Severity = iota
	// SeverityWarning indicates a best practice violation or recommendation
	SeverityWarning
)

// String returns "error" or "warning".
func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

const (
	defaultErrorCapacity   = 10
	defaultWarningCapacity = 10
)

// Issue is a single validation finding.
type Issue struct {
	// Severity is the issue level
	Severity Severity
	// Path is the document location (e.g., "paths./pets.get.responses")
	Path string
	// Message describes the problem
	Message string
}

// String formats the issue as "path: message".
func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationResult contains the results of validating a document
type ValidationResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool
	// Version is the document's "openapi" field
	Version string
	// Errors contains all validation errors
	Errors []Issue
	// Warnings contains all validation warnings
	Warnings []Issue
	// ErrorCount is the total number of errors
	ErrorCount int
	// WarningCount is the total number of warnings
	WarningCount int
	// OperationCount is the number of operations inspected
	OperationCount int
}

// Err converts the result into an error. It returns nil for a valid result
// and a *oaserrors.ValidationError describing the first error otherwise.
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid || len(r.Errors) == 0 {
		return nil
	}
	first := r.Errors[0]
	msg := first.Message
	if extra := len(r.Errors) - 1; extra > 0 {
		msg = fmt.Sprintf("%s (and %d more)", msg, extra)
	}
	return &oaserrors.ValidationError{Path: first.Path, Message: msg}
}

// Validator handles OpenAPI document validation
type Validator struct {
	// IncludeWarnings determines whether to include best practice warnings
	IncludeWarnings bool
	// StrictMode promotes warnings to errors
	StrictMode bool
	// ValidateStructure runs the kin-openapi structural pass after the
	// semantic checks
	ValidateStructure bool
	// ValidateExamples checks schema examples during the structural pass
	ValidateExamples bool
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{
		IncludeWarnings:   true,
		ValidateStructure: true,
		ValidateExamples:  true,
	}
}

// Validate checks doc and returns nil or a *oaserrors.ValidationError.
// Configuration problems are returned as *oaserrors.ConfigError.
func Validate(ctx context.Context, doc *oas.Document, opts ...Option) error {
	result, err := ValidateWithOptions(ctx, doc, opts...)
	if err != nil {
		return err
	}
	return result.Err()
}

// ValidateWithOptions validates doc using functional options and returns the
// full list of findings.
func ValidateWithOptions(ctx context.Context, doc *oas.Document, opts ...Option) (*ValidationResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, err
	}
	v := &Validator{
		IncludeWarnings:   cfg.includeWarnings,
		StrictMode:        cfg.strictMode,
		ValidateStructure: cfg.validateStructure,
		ValidateExamples:  cfg.validateExamples,
	}
	return v.ValidateDocument(ctx, doc)
}

// ValidateDocument runs the semantic checks and, when enabled, the structural
// pass over doc.
func (v *Validator) ValidateDocument(ctx context.Context, doc *oas.Document) (*ValidationResult, error) {
	if doc == nil {
		return nil, &oaserrors.ConfigError{Option: "document", Message: "document is nil"}
	}

	result := &ValidationResult{
		Version:  doc.OpenAPI,
		Errors:   make([]Issue, 0, defaultErrorCapacity),
		Warnings: make([]Issue, 0, defaultWarningCapacity),
	}

	v.validateVersion(doc, result)
	v.validateInfo(doc, result)
	v.validateServers(doc, result)
	v.validateTags(doc, result)
	v.validateComponents(doc, result)
	v.validatePaths(doc, result)
	v.validateOperationIDs(doc, result)
	v.validateSecurityRequirements(doc, result)
	v.validateRefs(doc, result)

	// The structural pass repeats many of the checks above with less precise
	// locations, so it only runs on documents that passed them.
	if v.ValidateStructure && len(result.Errors) == 0 {
		if err := v.validateStructure(ctx, doc, result); err != nil {
			return nil, err
		}
	}

	if !v.IncludeWarnings {
		result.Warnings = result.Warnings[:0]
	}
	result.ErrorCount = len(result.Errors)
	result.WarningCount = len(result.Warnings)
	result.Valid = result.ErrorCount == 0
	return result, nil
}

// validateStructure round-trips the document through kin-openapi.
func (v *Validator) validateStructure(ctx context.Context, doc *oas.Document, result *ValidationResult) error {
	data, err := oas.EncodeJSON(doc)
	if err != nil {
		return fmt.Errorf("validator: encoding document: %w", err)
	}

	loader := openapi3.NewLoader()
	loader.Context = ctx
	t, err := loader.LoadFromData(data)
	if err != nil {
		v.addError(result, "", fmt.Sprintf("document does not load as OpenAPI 3: %v", err))
		return nil
	}

	var kinOpts []openapi3.ValidationOption
	if !v.ValidateExamples {
		kinOpts = append(kinOpts, openapi3.DisableExamplesValidation())
	}
	if err := t.Validate(ctx, kinOpts...); err != nil {
		v.addError(result, "", err.Error())
	}
	return nil
}

func (v *Validator) addError(result *ValidationResult, path, message string) {
	result.Errors = append(result.Errors, Issue{Severity: SeverityError, Path: path, Message: message})
}

// addWarning records a warning, or an error in strict mode.
func (v *Validator) addWarning(result *ValidationResult, path, message string) {
	if v.StrictMode {
		v.addError(result, path, message)
		return
	}
	result.Warnings = append(result.Warnings, Issue{Severity: SeverityWarning, Path: path, Message: message})
}

func joinPath(parts ...string) string {
	return strings.Join(parts, ".")
}

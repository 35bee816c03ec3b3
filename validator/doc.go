// Package validator checks OpenAPI 3 documents produced by the builder.
//
// Validation runs in two passes. The semantic pass walks the document model
// directly and reports precise locations:
//
//   - info title and version are present
//   - every operation defines at least one response with a valid status key
//   - path templates and declared path parameters agree
//   - operation IDs are unique
//   - schema references and security requirements name defined components
//   - security schemes carry the fields their type requires
//
// When the semantic pass finds no errors, the document is encoded to JSON
// and handed to kin-openapi for a full structural check. Flat-schema
// documents carry per-property boolean "required" flags, which are not
// valid OpenAPI 3; validate the standardized form instead (see
// builder.Builder.StrictDocument).
//
// # Validation Levels
//
//   - SeverityError: violations that make the document invalid
//   - SeverityWarning: recommendations, such as non-standard status codes
//
// Warnings can be suppressed with WithIncludeWarnings(false). WithStrictMode
// promotes them to errors.
//
// # Usage
//
//	result, err := validator.ValidateWithOptions(ctx, doc,
//		validator.WithStrictMode(true),
//	)
//	if err != nil {
//		return err
//	}
//	for _, issue := range result.Errors {
//		fmt.Println(issue)
//	}
//
// Validate is the short form that returns a *oaserrors.ValidationError
// describing the first failure, or nil.
package validator

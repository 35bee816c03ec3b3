package validator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/oaserrors"
)

// validDocument returns a small document that passes both validation passes.
func validDocument() *oas.Document {
	doc := oas.NewDocument("", &oas.Info{Title: "Pets", Version: "1.0.0"})

	pet := &oas.Schema{Type: oas.TypeObject, Properties: oas.NewOrderedMap[*oas.Schema]()}
	pet.Properties.Set("id", &oas.Schema{Type: oas.TypeInteger, Example: int64(1)})
	pet.Properties.Set("name", &oas.Schema{Type: oas.TypeString})
	pet.RequiredProperties = []string{"id"}
	doc.Components = &oas.Components{
		Schemas:         oas.NewOrderedMap[*oas.Schema](),
		SecuritySchemes: oas.NewOrderedMap[*oas.SecurityScheme](),
	}
	doc.Components.Schemas.Set("Pet", pet)
	doc.Components.SecuritySchemes.Set("bearerAuth", &oas.SecurityScheme{Type: "http", Scheme: "bearer"})

	get := oas.NewOperation()
	get.OperationID = "getPetsById"
	get.Parameters = []*oas.Parameter{{
		Name: "id", In: oas.ParamInPath, Required: true,
		Schema: &oas.Schema{Type: oas.TypeString, Example: "42"},
	}}
	get.Responses.Set("200", &oas.Response{Description: "ok", Content: map[string]*oas.MediaType{
		oas.MediaTypeJSON: {Schema: &oas.Schema{Ref: oas.SchemaRef("Pet")}},
	}})
	get.Security = []oas.SecurityRequirement{{"bearerAuth": {}}}

	item := &oas.PathItem{}
	item.SetOperation("get", get)
	doc.Paths.Set("/pets/{id}", item)
	return doc
}

func issueMessages(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.String()
	}
	return out
}

func TestValidate_ValidDocument(t *testing.T) {
	result, err := ValidateWithOptions(context.Background(), validDocument())
	require.NoError(t, err)
	assert.True(t, result.Valid, "errors: %v", issueMessages(result.Errors))
	assert.Empty(t, result.Warnings)
	assert.Equal(t, 1, result.OperationCount)
	assert.Equal(t, "3.0.0", result.Version)
	assert.NoError(t, result.Err())

	assert.NoError(t, Validate(context.Background(), validDocument()))
}

func TestValidate_NilDocument(t *testing.T) {
	err := Validate(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrConfig))
}

func TestValidate_SemanticErrors(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(doc *oas.Document)
		path    string
		message string
	}{
		{
			name:    "missing title",
			mutate:  func(doc *oas.Document) { doc.Info.Title = "" },
			path:    "info.title",
			message: "Info object must have a title",
		},
		{
			name:    "missing version",
			mutate:  func(doc *oas.Document) { doc.Info.Version = "" },
			path:    "info.version",
			message: "Info object must have a version",
		},
		{
			name:    "unsupported openapi version",
			mutate:  func(doc *oas.Document) { doc.OpenAPI = "2.0" },
			path:    "openapi",
			message: `Unsupported openapi version "2.0", expected 3.x`,
		},
		{
			name: "no responses",
			mutate: func(doc *oas.Document) {
				op := getOperation(doc)
				op.Responses = oas.NewOrderedMap[*oas.Response]()
			},
			path:    "paths./pets/{id}.get.responses",
			message: "Operation must define at least one response",
		},
		{
			name: "invalid status key",
			mutate: func(doc *oas.Document) {
				getOperation(doc).Responses.Set("abc", &oas.Response{})
			},
			path:    "paths./pets/{id}.get.responses.abc",
			message: "Invalid HTTP status code: abc",
		},
		{
			name: "undeclared path parameter",
			mutate: func(doc *oas.Document) {
				getOperation(doc).Parameters = nil
			},
			path:    "paths./pets/{id}.get",
			message: "Path template references parameter '{id}' but it is not declared in parameters",
		},
		{
			name: "optional path parameter",
			mutate: func(doc *oas.Document) {
				getOperation(doc).Parameters[0].Required = false
			},
			path:    "paths./pets/{id}.get.parameters[0].required",
			message: "Path parameters must have required: true",
		},
		{
			name: "duplicate parameter",
			mutate: func(doc *oas.Document) {
				op := getOperation(doc)
				op.Parameters = append(op.Parameters, op.Parameters[0].Clone())
			},
			path:    "paths./pets/{id}.get.parameters[1]",
			message: `Duplicate path parameter "id"`,
		},
		{
			name: "dangling schema reference",
			mutate: func(doc *oas.Document) {
				doc.Components.Schemas.Delete("Pet")
			},
			path:    "paths./pets/{id}.get.responses.200.content.application/json.schema.$ref",
			message: `Reference "#/components/schemas/Pet" does not resolve`,
		},
		{
			name: "undefined security scheme",
			mutate: func(doc *oas.Document) {
				doc.Security = []oas.SecurityRequirement{{"apiKey": {}}}
			},
			path:    "security[0].apiKey",
			message: `Security requirement references undefined scheme "apiKey"`,
		},
		{
			name: "http scheme without scheme",
			mutate: func(doc *oas.Document) {
				doc.Components.SecuritySchemes.Set("basic", &oas.SecurityScheme{Type: "http"})
			},
			path:    "components.securitySchemes.basic.scheme",
			message: "HTTP security scheme must have a scheme",
		},
		{
			name: "apiKey without location",
			mutate: func(doc *oas.Document) {
				doc.Components.SecuritySchemes.Set("key", &oas.SecurityScheme{Type: "apiKey", Name: "X-Key"})
			},
			path:    "components.securitySchemes.key.in",
			message: `API key location must be query, header or cookie, got ""`,
		},
		{
			name: "invalid component name",
			mutate: func(doc *oas.Document) {
				doc.Components.Schemas.Set("Bad Name", &oas.Schema{Type: oas.TypeString})
			},
			path:    "components.schemas.Bad Name",
			message: `Invalid component name "Bad Name": must match ^[a-zA-Z0-9._-]+$`,
		},
		{
			name: "duplicate operationId",
			mutate: func(doc *oas.Document) {
				del := oas.NewOperation()
				del.OperationID = "getPetsById"
				del.Parameters = getOperation(doc).Parameters
				del.Responses.Set("204", &oas.Response{})
				item, _ := doc.Paths.Get("/pets/{id}")
				item.SetOperation("delete", del)
			},
			path:    "paths./pets/{id}.delete.operationId",
			message: `Duplicate operationId "getPetsById" (first seen at GET /pets/{id})`,
		},
		{
			name: "array without items",
			mutate: func(doc *oas.Document) {
				doc.Components.Schemas.Set("List", &oas.Schema{Type: oas.TypeArray})
			},
			path:    "components.schemas.List",
			message: "Array schema must define items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			result, err := ValidateWithOptions(context.Background(), doc)
			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Contains(t, result.Errors, Issue{Severity: SeverityError, Path: tt.path, Message: tt.message})
			assert.Equal(t, len(result.Errors), result.ErrorCount)

			err = result.Err()
			require.Error(t, err)
			assert.True(t, errors.Is(err, oaserrors.ErrValidation))
		})
	}
}

func getOperation(doc *oas.Document) *oas.Operation {
	item, _ := doc.Paths.Get("/pets/{id}")
	return item.Operation("get")
}

func TestValidate_Warnings(t *testing.T) {
	doc := validDocument()
	getOperation(doc).Responses.Set("299", &oas.Response{})

	result, err := ValidateWithOptions(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, SeverityWarning, result.Warnings[0].Severity)
	assert.Equal(t, "paths./pets/{id}.get.responses.299: Non-standard HTTP status code: 299", result.Warnings[0].String())

	result, err = ValidateWithOptions(context.Background(), doc, WithIncludeWarnings(false))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Empty(t, result.Warnings)

	result, err = ValidateWithOptions(context.Background(), doc, WithStrictMode(true))
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, SeverityError, result.Errors[0].Severity)
}

func TestValidate_NoSuccessResponseWarns(t *testing.T) {
	doc := validDocument()
	op := getOperation(doc)
	op.Responses = oas.NewOrderedMap[*oas.Response]()
	op.Responses.Set("404", &oas.Response{Description: "missing"})

	result, err := ValidateWithOptions(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Contains(t, issueMessages(result.Warnings),
		"paths./pets/{id}.get.responses: Operation should define at least one successful (2XX) response")
}

func TestValidate_StatusRangesAndDefault(t *testing.T) {
	doc := validDocument()
	op := getOperation(doc)
	op.Responses.Set("4XX", &oas.Response{Description: "client error"})
	op.Responses.Set("default", &oas.Response{Description: "other"})

	result, err := ValidateWithOptions(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, result.Valid, "errors: %v", issueMessages(result.Errors))
	assert.Empty(t, result.Warnings)
}

func TestValidate_UnusedPathParameterWarns(t *testing.T) {
	doc := validDocument()
	op := getOperation(doc)
	op.Parameters = append(op.Parameters, &oas.Parameter{
		Name: "extra", In: oas.ParamInPath, Required: true, Schema: &oas.Schema{Type: oas.TypeString},
	})

	result, err := ValidateWithOptions(context.Background(), doc, WithValidateStructure(false))
	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Contains(t, issueMessages(result.Warnings),
		`paths./pets/{id}.get.parameters[1]: Parameter "extra" is declared as path parameter but not used in path template`)
}

func TestValidate_StructuralPass(t *testing.T) {
	// Boolean required flags pass the semantic checks but are not valid
	// OpenAPI 3, so the structural pass rejects them.
	doc := validDocument()
	pet, _ := doc.Components.Schemas.Get("Pet")
	pet.RequiredProperties = nil
	pet.Property("id").Required = true

	result, err := ValidateWithOptions(context.Background(), doc)
	require.NoError(t, err)
	assert.False(t, result.Valid)
	require.Len(t, result.Errors, 1)
	assert.Empty(t, result.Errors[0].Path)

	result, err = ValidateWithOptions(context.Background(), doc, WithValidateStructure(false))
	require.NoError(t, err)
	assert.True(t, result.Valid)

	doc.Components.Schemas.Set("Pet", pet.Standardize())
	assert.NoError(t, Validate(context.Background(), doc))
}

func TestValidate_ExamplesValidation(t *testing.T) {
	doc := validDocument()
	pet, _ := doc.Components.Schemas.Get("Pet")
	pet.Property("id").Example = "not a number"

	err := Validate(context.Background(), doc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, oaserrors.ErrValidation))

	assert.NoError(t, Validate(context.Background(), doc, WithExamplesValidation(false)))
}

func TestApplyOptions_Defaults(t *testing.T) {
	cfg, err := applyOptions()
	require.NoError(t, err)
	assert.True(t, cfg.includeWarnings)
	assert.False(t, cfg.strictMode)
	assert.True(t, cfg.validateStructure)
	assert.True(t, cfg.validateExamples)

	cfg, err = applyOptions(nil, WithStrictMode(true), WithExamplesValidation(false))
	require.NoError(t, err)
	assert.True(t, cfg.strictMode)
	assert.False(t, cfg.validateExamples)
}

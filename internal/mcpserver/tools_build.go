package mcpserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasflat/builder"
	"github.com/erraggy/oasflat/manifest"
	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/validator"
)

type buildDocumentInput struct {
	Manifest string `json:"manifest"           jsonschema:"Manifest content (YAML or JSON). Flat schemas must be quoted strings."`
	Format   string `json:"format,omitempty"   jsonschema:"Output format: json or yaml (default from OASFLAT_OUTPUT_FORMAT)"`
	Strict   bool   `json:"strict,omitempty"   jsonschema:"Emit the strict OpenAPI form: object-level required lists and brace path keys"`
	Validate bool   `json:"validate,omitempty" jsonschema:"Validate the strict form of the document and report errors and warnings"`
}

type buildIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

type buildDocumentOutput struct {
	Format         string       `json:"format"`
	Title          string       `json:"title"`
	PathCount      int          `json:"path_count"`
	OperationCount int          `json:"operation_count"`
	SchemaCount    int          `json:"schema_count"`
	Valid          *bool        `json:"valid,omitempty"`
	Errors         []buildIssue `json:"errors,omitempty"`
	Warnings       []buildIssue `json:"warnings,omitempty"`
	Document       string       `json:"document"`
}

func handleBuildDocument(ctx context.Context, _ *mcp.CallToolRequest, input buildDocumentInput) (*mcp.CallToolResult, buildDocumentOutput, error) {
	if err := checkInput("manifest", input.Manifest); err != nil {
		return errResult(err), buildDocumentOutput{}, nil
	}
	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), buildDocumentOutput{}, nil
	}

	m, err := manifest.Parse([]byte(input.Manifest))
	if err != nil {
		return errResult(err), buildDocumentOutput{}, nil
	}
	b, err := m.Build(builder.WithLogger(builder.NewSlogAdapter(slog.Default())))
	if err != nil {
		return errResult(err), buildDocumentOutput{}, nil
	}

	strictDoc, err := b.StrictDocument()
	if err != nil {
		return errResult(err), buildDocumentOutput{}, nil
	}
	doc := strictDoc
	if !input.Strict {
		if doc, err = b.Document(); err != nil {
			return errResult(err), buildDocumentOutput{}, nil
		}
	}

	output := buildDocumentOutput{
		Format:    format,
		Title:     doc.Info.Title,
		PathCount: doc.Paths.Len(),
	}
	doc.WalkOperations(func(_, _ string, _ *oas.Operation) bool {
		output.OperationCount++
		return true
	})
	if doc.Components != nil {
		output.SchemaCount = doc.Components.Schemas.Len()
	}

	if input.Validate {
		result, err := validator.ValidateWithOptions(ctx, strictDoc)
		if err != nil {
			return errResult(err), buildDocumentOutput{}, nil
		}
		output.Valid = &result.Valid
		output.Errors = toBuildIssues(result.Errors)
		output.Warnings = toBuildIssues(result.Warnings)
	}

	if output.Document, err = encode(doc, format); err != nil {
		return errResult(err), buildDocumentOutput{}, nil
	}
	return nil, output, nil
}

func toBuildIssues(issues []validator.Issue) []buildIssue {
	if len(issues) == 0 {
		return nil
	}
	out := make([]buildIssue, 0, len(issues))
	for _, i := range issues {
		out = append(out, buildIssue{Path: i.Path, Message: i.Message})
	}
	return out
}

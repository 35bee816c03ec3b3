package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasflat/flatschema"
)

type compileSchemaInput struct {
	Schema string `json:"schema"           jsonschema:"Flat schema string, e.g. {id:i,name:s,tags:?[s]}"`
	Format string `json:"format,omitempty" jsonschema:"Output format: json or yaml (default from OASFLAT_OUTPUT_FORMAT)"`
	Strict bool   `json:"strict,omitempty" jsonschema:"Fold per-property required flags into object-level required lists"`
}

type compileSchemaOutput struct {
	Format string `json:"format"`
	Type   string `json:"type,omitempty"`
	Schema string `json:"schema"`
}

func handleCompileSchema(_ context.Context, _ *mcp.CallToolRequest, input compileSchemaInput) (*mcp.CallToolResult, compileSchemaOutput, error) {
	if err := checkInput("schema", input.Schema); err != nil {
		return errResult(err), compileSchemaOutput{}, nil
	}
	format, err := resolveFormat(input.Format)
	if err != nil {
		return errResult(err), compileSchemaOutput{}, nil
	}

	schema, err := flatschema.Compile(input.Schema)
	if err != nil {
		return errResult(err), compileSchemaOutput{}, nil
	}
	if input.Strict {
		schema = schema.Standardize()
	}

	text, err := encode(schema, format)
	if err != nil {
		return errResult(err), compileSchemaOutput{}, nil
	}
	return nil, compileSchemaOutput{Format: format, Type: schema.Type, Schema: text}, nil
}

// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasflat capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasflat"
	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/oaserrors"
)

const serverInstructions = `oasflat MCP server: compiles flat-schema strings into OpenAPI 3 schemas, extracts path parameters from route templates, and builds whole documents from manifests.

Flat schema grammar: {id:i,name:s,tags:?[s]} is an object with a required integer id, a required string name and an optional string array tags. Type codes: s string, i integer, n number, b boolean. A third segment is the example (age:i:21). "#Pet" references a component schema.

Configuration via OASFLAT_* environment variables in your MCP client config:
- OASFLAT_MAX_INPUT (default: 65536) - maximum byte length of any input string
- OASFLAT_OUTPUT_FORMAT (default: json) - json or yaml when a call omits format`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasflat", Version: oasflat.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "compile_schema",
		Description: "Compile a flat-schema string such as {id:i,name:s,tags:?[s]} into an OpenAPI 3 schema object. Returns the schema as JSON or YAML. Use strict=true to emit object-level required lists instead of per-property required flags.",
	}, handleCompileSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "path_params",
		Description: "Extract path parameters from a route template. Accepts brace templates (/users/{id:42}) and colon templates (/users/:id). Returns the normalized path key, its brace form, and one required string parameter per token with its example.",
	}, handlePathParams)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "build_document",
		Description: "Build a complete OpenAPI 3 document from a manifest (YAML or JSON) listing title, servers, tags, security schemes, component schemas and routes, all schemas written as quoted flat-schema strings. Use validate=true to check the result and get errors and warnings with document paths.",
	}, handleBuildDocument)
}

// checkInput rejects strings longer than the configured maximum.
func checkInput(field, value string) error {
	if len(value) > cfg.MaxInput {
		return &oaserrors.ConfigError{
			Option:  field,
			Message: fmt.Sprintf("input is %d bytes, limit is %d (OASFLAT_MAX_INPUT)", len(value), cfg.MaxInput),
		}
	}
	return nil
}

// resolveFormat returns the requested format, or the configured default
// when requested is empty.
func resolveFormat(requested string) (string, error) {
	if requested == "" {
		return cfg.OutputFormat, nil
	}
	f, ok := normalizeFormat(requested)
	if !ok {
		return "", &oaserrors.ConfigError{Option: "format", Value: requested, Message: "format must be json or yaml"}
	}
	return f, nil
}

// encode renders v in the given format.
func encode(v any, format string) (string, error) {
	var data []byte
	var err error
	if format == formatYAML {
		data, err = oas.EncodeYAML(v)
	} else {
		data, err = oas.EncodeJSON(v)
	}
	if err != nil {
		return "", fmt.Errorf("encoding %s: %w", format, err)
	}
	return string(data), nil
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}

package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasflat/pathtemplate"
)

type pathParamsInput struct {
	Path string `json:"path" jsonschema:"Route template, e.g. /users/{id:42} or /users/:id"`
}

type pathParam struct {
	Name     string `json:"name"`
	In       string `json:"in"`
	Required bool   `json:"required"`
	Type     string `json:"type"`
	Example  string `json:"example,omitempty"`
}

type pathParamsOutput struct {
	Key        string      `json:"key"`
	BraceKey   string      `json:"brace_key"`
	Parameters []pathParam `json:"parameters"`
}

func handlePathParams(_ context.Context, _ *mcp.CallToolRequest, input pathParamsInput) (*mcp.CallToolResult, pathParamsOutput, error) {
	if err := checkInput("path", input.Path); err != nil {
		return errResult(err), pathParamsOutput{}, nil
	}
	if input.Path == "" {
		return errResult(fmt.Errorf("path is required")), pathParamsOutput{}, nil
	}

	params := pathtemplate.ExtractParameters(input.Path)
	output := pathParamsOutput{
		Key:        pathtemplate.NormalizeKey(input.Path),
		BraceKey:   pathtemplate.ToBraceForm(input.Path),
		Parameters: make([]pathParam, 0, len(params)),
	}
	for _, p := range params {
		pp := pathParam{Name: p.Name, In: p.In, Required: p.Required, Type: p.Schema.Type}
		if ex, ok := p.Schema.Example.(string); ok {
			pp.Example = ex
		}
		output.Parameters = append(output.Parameters, pp)
	}
	return nil, output, nil
}

package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathParamsTool(t *testing.T) {
	withConfig(t, &serverConfig{MaxInput: 1024, OutputFormat: formatJSON})

	tests := []struct {
		name      string
		path      string
		wantKey   string
		wantBrace string
		wantNames []string
		wantEx    []string
	}{
		{
			name:      "brace with examples",
			path:      "/users/{id:42}/posts/{slug}",
			wantKey:   "/users/{id}/posts/{slug}",
			wantBrace: "/users/{id}/posts/{slug}",
			wantNames: []string{"id", "slug"},
			wantEx:    []string{"42", ""},
		},
		{
			name:      "colon style",
			path:      "/users/:id",
			wantKey:   "/users/:id",
			wantBrace: "/users/{id}",
			wantNames: []string{"id"},
			wantEx:    []string{""},
		},
		{
			name:      "no tokens",
			path:      "/health",
			wantKey:   "/health",
			wantBrace: "/health",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, output, err := handlePathParams(context.Background(), &mcp.CallToolRequest{}, pathParamsInput{Path: tt.path})
			require.NoError(t, err)
			require.Nil(t, result)

			assert.Equal(t, tt.wantKey, output.Key)
			assert.Equal(t, tt.wantBrace, output.BraceKey)
			require.Len(t, output.Parameters, len(tt.wantNames))
			for i, p := range output.Parameters {
				assert.Equal(t, tt.wantNames[i], p.Name)
				assert.Equal(t, tt.wantEx[i], p.Example)
				assert.Equal(t, "path", p.In)
				assert.Equal(t, "string", p.Type)
				assert.True(t, p.Required)
			}
		})
	}
}

func TestPathParamsTool_Errors(t *testing.T) {
	withConfig(t, &serverConfig{MaxInput: 8, OutputFormat: formatJSON})

	result, _, err := handlePathParams(context.Background(), &mcp.CallToolRequest{}, pathParamsInput{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, "path is required", resultText(t, result))

	result, _, err = handlePathParams(context.Background(), &mcp.CallToolRequest{}, pathParamsInput{Path: "/a/b/c/d/e"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "OASFLAT_MAX_INPUT")
}

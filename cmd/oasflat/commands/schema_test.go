package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupSchemaFlags(t *testing.T) {
	fs, flags := SetupSchemaFlags()

	assert.Equal(t, FormatJSON, flags.Format)
	assert.False(t, flags.Strict)
	assert.Empty(t, flags.In)

	require.NoError(t, fs.Parse([]string{"-format", "yaml", "-strict", "-in", "query", "a:i"}))
	assert.Equal(t, FormatYAML, flags.Format)
	assert.True(t, flags.Strict)
	assert.Equal(t, "query", flags.In)
	assert.Equal(t, "a:i", fs.Arg(0))
}

func TestHandleSchema(t *testing.T) {
	out, _ := captureOutput(t, "")

	require.NoError(t, HandleSchema([]string{"{id:i:3,name:?s}"}))

	var schema map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
	assert.Equal(t, "object", schema["type"])
	props := schema["properties"].(map[string]any)
	id := props["id"].(map[string]any)
	assert.Equal(t, "integer", id["type"])
	assert.Equal(t, float64(3), id["example"])
}

func TestHandleSchema_Strict(t *testing.T) {
	out, _ := captureOutput(t, "")

	require.NoError(t, HandleSchema([]string{"-strict", "{a:s,b:?i}"}))

	var schema struct {
		Required []string `json:"required"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &schema))
	assert.Equal(t, []string{"a"}, schema.Required)
}

func TestHandleSchema_Stdin(t *testing.T) {
	out, _ := captureOutput(t, "  [s]\n")

	require.NoError(t, HandleSchema([]string{"-format", "yaml", "-"}))
	assert.Contains(t, out.String(), "type: array")
	assert.Contains(t, out.String(), "type: string")
}

func TestHandleSchema_Parameter(t *testing.T) {
	out, _ := captureOutput(t, "")

	require.NoError(t, HandleSchema([]string{"-in", "query", "limit:?i:20"}))

	var param struct {
		Name     string         `json:"name"`
		In       string         `json:"in"`
		Required bool           `json:"required"`
		Schema   map[string]any `json:"schema"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &param))
	assert.Equal(t, "limit", param.Name)
	assert.Equal(t, "query", param.In)
	assert.False(t, param.Required)
	assert.Equal(t, float64(20), param.Schema["example"])
}

func TestHandleSchema_Errors(t *testing.T) {
	captureOutput(t, "")

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"no args", []string{}, "requires exactly one flat schema"},
		{"malformed", []string{"{a:i"}, "compiling schema: malformed schema"},
		{"bad format", []string{"-format", "text", "{a:i}"}, "invalid format"},
		{"bad location", []string{"-in", "body", "a:i"}, "unsupported parameter location"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := HandleSchema(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestHandleSchema_Help(t *testing.T) {
	captureOutput(t, "")
	assert.NoError(t, HandleSchema([]string{"--help"}))
}

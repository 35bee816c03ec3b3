package mcpserver

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

// clearOASFLATEnv clears all OASFLAT_* env vars to isolate tests from the ambient environment.
func clearOASFLATEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"OASFLAT_MAX_INPUT", "OASFLAT_OUTPUT_FORMAT"} {
		t.Setenv(key, "")
	}
}

// captureSlog redirects the default slog logger for the duration of the test.
func captureSlog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearOASFLATEnv(t)

	c := loadConfig()

	assert.Equal(t, 64*1024, c.MaxInput)
	assert.Equal(t, formatJSON, c.OutputFormat)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearOASFLATEnv(t)
	t.Setenv("OASFLAT_MAX_INPUT", "1024")
	t.Setenv("OASFLAT_OUTPUT_FORMAT", "YML")

	c := loadConfig()

	assert.Equal(t, 1024, c.MaxInput)
	assert.Equal(t, formatYAML, c.OutputFormat)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantLog string
	}{
		{"non-numeric size", "OASFLAT_MAX_INPUT", "banana", "invalid int env var, using default"},
		{"zero size", "OASFLAT_MAX_INPUT", "0", "invalid int env var, using default"},
		{"negative size", "OASFLAT_MAX_INPUT", "-5", "invalid int env var, using default"},
		{"unknown format", "OASFLAT_OUTPUT_FORMAT", "xml", "invalid format env var, using default"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearOASFLATEnv(t)
			logs := captureSlog(t)
			t.Setenv(tt.key, tt.value)

			c := loadConfig()

			assert.Equal(t, 64*1024, c.MaxInput)
			assert.Equal(t, formatJSON, c.OutputFormat)
			assert.Contains(t, logs.String(), tt.wantLog)
			assert.Contains(t, logs.String(), "key="+tt.key)
		})
	}
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"json", formatJSON, true},
		{" JSON ", formatJSON, true},
		{"yaml", formatYAML, true},
		{"yml", formatYAML, true},
		{"toml", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := normalizeFormat(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.wantOK, ok, tt.in)
	}
}

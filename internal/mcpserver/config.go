package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// Output formats
const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// MaxInput bounds the byte length of every string a client sends.
	MaxInput int

	// OutputFormat is the document format used when a tool call omits one.
	OutputFormat string
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASFLAT_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxInput:     envInt("OASFLAT_MAX_INPUT", 64*1024),
		OutputFormat: envFormat("OASFLAT_OUTPUT_FORMAT", formatJSON),
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envFormat(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, ok := normalizeFormat(v)
	if !ok {
		slog.Warn("invalid format env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return f
}

// normalizeFormat maps "json", "yaml" and "yml" (any case) to a format.
func normalizeFormat(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case formatJSON:
		return formatJSON, true
	case formatYAML, "yml":
		return formatYAML, true
	}
	return "", false
}

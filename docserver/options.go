package docserver

import (
	"github.com/erraggy/oasflat/builder"
)

// Option configures a Server.
type Option func(*serverConfig)

type serverConfig struct {
	jsonPath string
	yamlPath string
	strict   bool
	logger   builder.Logger
}

// Default mount paths
const (
	DefaultJSONPath = "/openapi.json"
	DefaultYAMLPath = "/openapi.yaml"
)

func applyOptions(opts []Option) *serverConfig {
	cfg := &serverConfig{
		jsonPath: DefaultJSONPath,
		yamlPath: DefaultYAMLPath,
		logger:   builder.NopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// WithJSONPath sets the route serving the JSON document.
// An empty path disables the JSON route.
func WithJSONPath(path string) Option {
	return func(cfg *serverConfig) {
		cfg.jsonPath = path
	}
}

// WithYAMLPath sets the route serving the YAML document.
// An empty path disables the YAML route.
func WithYAMLPath(path string) Option {
	return func(cfg *serverConfig) {
		cfg.yamlPath = path
	}
}

// WithStrict serves the strict form of the document (object-level required
// lists, brace path keys) whatever the builder options are.
func WithStrict(enabled bool) Option {
	return func(cfg *serverConfig) {
		cfg.strict = enabled
	}
}

// WithLogger sets the logger used to report build failures.
// A nil logger keeps the default NopLogger.
func WithLogger(l builder.Logger) Option {
	return func(cfg *serverConfig) {
		if l != nil {
			cfg.logger = l
		}
	}
}

package builder

import "github.com/erraggy/oasflat/oas"

// BuilderOption configures a Builder instance.
// Options are applied when creating a new Builder with New().
type BuilderOption func(*builderConfig)

// builderConfig holds builder configuration applied via options.
type builderConfig struct {
	title          string
	version        string
	description    string
	openapi        string
	logger         Logger
	operationIDs   bool
	strictRequired bool
	bracePaths     bool
}

// defaultAPIVersion is the info.version written when none is configured.
const defaultAPIVersion = "1.0.0"

// defaultBuilderConfig returns a new builderConfig with default values:
// an untitled API at version 1.0.0, OpenAPI 3.0.0, and no logging.
func defaultBuilderConfig() *builderConfig {
	return &builderConfig{
		version: defaultAPIVersion,
		openapi: oas.DefaultOpenAPIVersion,
		logger:  NopLogger{},
	}
}

// WithTitle sets info.title.
func WithTitle(title string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.title = title
	}
}

// WithVersion sets info.version, the version of the described API.
// The default is "1.0.0".
func WithVersion(version string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.version = version
	}
}

// WithDescription sets info.description.
func WithDescription(desc string) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.description = desc
	}
}

// WithOpenAPIVersion sets the "openapi" field of the document.
// The default is "3.0.0". Empty values keep the default.
func WithOpenAPIVersion(version string) BuilderOption {
	return func(cfg *builderConfig) {
		if version != "" {
			cfg.openapi = version
		}
	}
}

// WithLogger sets the logger used to report route registration and rejected
// calls. A nil logger disables logging.
func WithLogger(l Logger) BuilderOption {
	return func(cfg *builderConfig) {
		if l == nil {
			l = NopLogger{}
		}
		cfg.logger = l
	}
}

// WithOperationIDs enables generated operation IDs such as "getUsersById"
// for operations that do not set one explicitly.
func WithOperationIDs(enabled bool) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.operationIDs = enabled
	}
}

// WithStrictRequired exports object-level "required" lists instead of the
// per-property "required": true flags produced by the flat-schema compiler.
// Strict output is what OpenAPI 3 validators expect.
func WithStrictRequired(enabled bool) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.strictRequired = enabled
	}
}

// WithBracePaths stores colon-style templates ("/users/:id") under their
// brace form ("/users/{id}"), as OpenAPI requires.
func WithBracePaths(enabled bool) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.bracePaths = enabled
	}
}

package validator

// Option is a function that configures a validation operation
type Option func(*validateConfig) error

// validateConfig holds configuration for a validation operation
type validateConfig struct {
	includeWarnings   bool
	strictMode        bool
	validateStructure bool
	validateExamples  bool
}

// applyOptions applies option functions on top of the defaults
func applyOptions(opts ...Option) (*validateConfig, error) {
	cfg := &validateConfig{
		includeWarnings:   true,
		strictMode:        false,
		validateStructure: true,
		validateExamples:  true,
	}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// WithIncludeWarnings enables or disables best practice warnings
func WithIncludeWarnings(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.includeWarnings = enabled
		return nil
	}
}

// WithStrictMode enables or disables strict validation.
// Strict mode promotes warnings (such as non-standard status codes) to errors.
func WithStrictMode(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.strictMode = enabled
		return nil
	}
}

// WithValidateStructure enables or disables the OpenAPI 3 structural pass
// performed by kin-openapi. The semantic checks always run.
func WithValidateStructure(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.validateStructure = enabled
		return nil
	}
}

// WithExamplesValidation controls whether schema examples are checked against
// their schema during the structural pass.
func WithExamplesValidation(enabled bool) Option {
	return func(cfg *validateConfig) error {
		cfg.validateExamples = enabled
		return nil
	}
}

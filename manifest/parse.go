package manifest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.yaml.in/yaml/v4"
)

// ParseError represents an error during manifest parsing.
type ParseError struct {
	// Path is the file path or source identifier.
	Path string

	// Cause is the underlying error.
	Cause error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("manifest: failed to parse %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("manifest: failed to parse: %v", e.Cause)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Parse parses a manifest from YAML or JSON bytes.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest

	// yaml.Unmarshal handles both YAML and JSON
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ParseError{Cause: err}
	}
	return &m, nil
}

// Load reads and parses a manifest from r.
func Load(r io.Reader) (*Manifest, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ParseError{Cause: err}
	}
	return Parse(data)
}

// LoadFile reads and parses the manifest at path.
func LoadFile(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	m, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
			return nil, pe
		}
		return nil, &ParseError{Path: path, Cause: err}
	}
	return m, nil
}

// Package commands provides CLI command handlers for oasflat.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/erraggy/oasflat/oas"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// outputFileMode is the file permission mode for output files (owner read/write only)
const outputFileMode = 0600

// Process streams, replaced in tests.
var (
	stdin  io.Reader = os.Stdin
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ValidateOutputFormat validates a document format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s", format, FormatJSON, FormatYAML)
	}
	return nil
}

// ValidateListFormat validates a listing format, which also accepts text.
func ValidateListFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// FormatForPath infers the document format from an output file extension.
// Anything other than .json is YAML.
func FormatForPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Encode renders v as JSON or YAML, keeping declaration order.
func Encode(v any, format string) ([]byte, error) {
	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = oas.EncodeJSON(v)
	case FormatYAML:
		data, err = oas.EncodeYAML(v)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return data, nil
}

// OutputStructured writes v to stdout in the given format.
func OutputStructured(v any, format string) error {
	data, err := Encode(v, format)
	if err != nil {
		return err
	}
	Writef(stdout, "%s", data)
	if len(data) > 0 && data[len(data)-1] != '\n' {
		Writef(stdout, "\n")
	}
	return nil
}

// ReadInput reads path, or stdin when path is StdinFilePath.
func ReadInput(path string) ([]byte, error) {
	if path == StdinFilePath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// WriteOutput writes data to path, refusing to overwrite the input or to
// follow a symlink.
func WriteOutput(path, inputPath string, data []byte) error {
	cleaned := filepath.Clean(path)
	if inputPath != StdinFilePath {
		if err := ValidateOutputPath(cleaned, []string{inputPath}); err != nil {
			return err
		}
	}
	if err := RejectSymlinkOutput(cleaned); err != nil {
		return err
	}
	if err := os.WriteFile(cleaned, data, outputFileMode); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	return nil
}

// ValidateOutputPath checks if the output path is safe to write to
func ValidateOutputPath(outputPath string, inputPaths []string) error {
	absOutputPath, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}

	// Check if output file would overwrite any input files
	for _, inputPath := range inputPaths {
		absInputPath, err := filepath.Abs(inputPath)
		if err != nil {
			return fmt.Errorf("invalid input path %s: %w", inputPath, err)
		}
		if absOutputPath == absInputPath {
			return fmt.Errorf("output file %s would overwrite input file %s", outputPath, inputPath)
		}
	}

	// Check if output file already exists and warn (but don't error)
	if _, err := os.Stat(outputPath); err == nil {
		Writef(stderr, "Warning: output file %s already exists and will be overwritten\n", outputPath)
	}
	return nil
}

// RejectSymlinkOutput checks if the output path is a symlink and returns an error if so.
func RejectSymlinkOutput(cleanedPath string) error {
	info, err := os.Lstat(cleanedPath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("commands: checking output path: %w", err)
	}
	if info.Mode()&os.ModeSymlink != 0 {
		return fmt.Errorf("commands: refusing to write to symlink: %s", cleanedPath)
	}
	return nil
}

// FormatSpecPath returns a display-friendly path for an input file.
// Returns "<stdin>" if the path is StdinFilePath, otherwise returns the path as-is.
func FormatSpecPath(path string) string {
	if path == StdinFilePath {
		return "<stdin>"
	}
	return path
}

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

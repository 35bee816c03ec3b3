package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"

	"github.com/erraggy/oasflat/builder"
	"github.com/erraggy/oasflat/manifest"
	"github.com/erraggy/oasflat/oas"
	"github.com/erraggy/oasflat/validator"
)

// BuildFlags contains flags for the build command
type BuildFlags struct {
	Output     string
	Format     string
	Strict     bool
	Validate   bool
	NoWarnings bool
	Quiet      bool
	Verbose    bool
}

// SetupBuildFlags creates and configures a FlagSet for the build command.
// Returns the FlagSet and a BuildFlags struct with bound flag variables.
func SetupBuildFlags() (*flag.FlagSet, *BuildFlags) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	flags := &BuildFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Format, "format", "", "output format: json or yaml (default: from -o extension, else json)")
	fs.BoolVar(&flags.Strict, "strict", false, "emit object-level required lists and brace path keys")
	fs.BoolVar(&flags.Validate, "validate", false, "validate the document before writing it")
	fs.BoolVar(&flags.NoWarnings, "no-warnings", false, "suppress validation warnings (only show errors)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no diagnostic messages")
	fs.BoolVar(&flags.Verbose, "v", false, "log builder activity to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasflat build [flags] <manifest|->\n\n")
		Writef(fs.Output(), "Build an OpenAPI document from a manifest file or stdin.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasflat build api.yaml\n")
		Writef(fs.Output(), "  oasflat build -validate -o openapi.json api.yaml\n")
		Writef(fs.Output(), "  cat api.yaml | oasflat build -strict -format yaml -\n")
		Writef(fs.Output(), "\nExit Codes:\n")
		Writef(fs.Output(), "  0    Document built (and valid, with -validate)\n")
		Writef(fs.Output(), "  1    Manifest, build, or validation errors\n")
	}

	return fs, flags
}

// HandleBuild executes the build command
func HandleBuild(args []string) error {
	fs, flags := SetupBuildFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("build command requires exactly one manifest path or '-' for stdin")
	}

	format := flags.Format
	if format == "" {
		format = FormatJSON
		if flags.Output != "" {
			format = FormatForPath(flags.Output)
		}
	}
	if err := ValidateOutputFormat(format); err != nil {
		return err
	}

	manifestPath := fs.Arg(0)
	b, err := loadBuilder(manifestPath, newLogger(flags.Verbose))
	if err != nil {
		return err
	}

	strictDoc, err := b.StrictDocument()
	if err != nil {
		return fmt.Errorf("building document: %w", err)
	}
	doc := strictDoc
	if !flags.Strict {
		if doc, err = b.Document(); err != nil {
			return fmt.Errorf("building document: %w", err)
		}
	}

	if flags.Validate {
		if err := reportValidation(strictDoc, flags); err != nil {
			return err
		}
	}

	data, err := Encode(doc, format)
	if err != nil {
		return err
	}
	if flags.Output == "" {
		Writef(stdout, "%s", data)
		return nil
	}
	if err := WriteOutput(flags.Output, manifestPath, data); err != nil {
		return err
	}
	if !flags.Quiet {
		Writef(stderr, "Wrote %s (%d paths, %d operations)\n", flags.Output, doc.Paths.Len(), countOperations(doc))
	}
	return nil
}

// loadBuilder parses the manifest at path (or stdin) and applies it to a
// new builder.
func loadBuilder(path string, logger builder.Logger) (*builder.Builder, error) {
	data, err := ReadInput(path)
	if err != nil {
		return nil, err
	}
	m, err := manifest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FormatSpecPath(path), err)
	}
	b, err := m.Build(builder.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", FormatSpecPath(path), err)
	}
	return b, nil
}

// newLogger returns a stderr slog logger at debug level when verbose, and a
// NopLogger otherwise.
func newLogger(verbose bool) builder.Logger {
	if !verbose {
		return builder.NopLogger{}
	}
	return builder.NewSlogAdapter(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

// reportValidation validates doc, prints the findings to stderr, and fails
// when there are errors.
func reportValidation(doc *oas.Document, flags *BuildFlags) error {
	result, err := validator.ValidateWithOptions(context.Background(), doc,
		validator.WithIncludeWarnings(!flags.NoWarnings),
	)
	if err != nil {
		return fmt.Errorf("validating document: %w", err)
	}

	if !flags.Quiet {
		if len(result.Errors) > 0 {
			Writef(stderr, "Errors (%d):\n", result.ErrorCount)
			for _, e := range result.Errors {
				Writef(stderr, "  %s\n", e.String())
			}
		}
		if len(result.Warnings) > 0 {
			Writef(stderr, "Warnings (%d):\n", result.WarningCount)
			for _, w := range result.Warnings {
				Writef(stderr, "  %s\n", w.String())
			}
		}
	}

	if !result.Valid {
		return fmt.Errorf("validation failed: %d error(s)", result.ErrorCount)
	}
	if !flags.Quiet {
		Writef(stderr, "✓ Validation passed")
		if result.WarningCount > 0 {
			Writef(stderr, " with %d warning(s)", result.WarningCount)
		}
		Writef(stderr, "\n")
	}
	return nil
}

func countOperations(doc *oas.Document) int {
	n := 0
	doc.WalkOperations(func(_, _ string, _ *oas.Operation) bool {
		n++
		return true
	})
	return n
}

package commands

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/erraggy/oasflat/flatschema"
)

// SchemaFlags contains flags for the schema command
type SchemaFlags struct {
	Format string
	Strict bool
	In     string
}

// SetupSchemaFlags creates and configures a FlagSet for the schema command.
// Returns the FlagSet and a SchemaFlags struct with bound flag variables.
func SetupSchemaFlags() (*flag.FlagSet, *SchemaFlags) {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	flags := &SchemaFlags{}

	fs.StringVar(&flags.Format, "format", FormatJSON, "output format: json or yaml")
	fs.BoolVar(&flags.Strict, "strict", false, "emit object-level required lists instead of per-property flags")
	fs.StringVar(&flags.In, "in", "", "compile a parameter spec for this location (query, header, cookie, path)")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasflat schema [flags] <flat-schema|->\n\n")
		Writef(fs.Output(), "Compile a flat schema into an OpenAPI schema object.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasflat schema '{id:i,name:s,tags:?[s]}'\n")
		Writef(fs.Output(), "  oasflat schema -format yaml -strict '{a:s,b:?i}'\n")
		Writef(fs.Output(), "  oasflat schema -in query 'limit:?i:20'\n")
		Writef(fs.Output(), "  echo '[a:s,b:i]' | oasflat schema -\n")
	}

	return fs, flags
}

// HandleSchema executes the schema command
func HandleSchema(args []string) error {
	fs, flags := SetupSchemaFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("schema command requires exactly one flat schema or '-' for stdin")
	}
	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	input := fs.Arg(0)
	if input == StdinFilePath {
		data, err := ReadInput(StdinFilePath)
		if err != nil {
			return err
		}
		input = strings.TrimSpace(string(data))
	}

	if flags.In != "" {
		param, err := flatschema.ParseParameter(flags.In, input)
		if err != nil {
			return fmt.Errorf("compiling parameter: %w", err)
		}
		if flags.Strict {
			param.Schema = param.Schema.Standardize()
		}
		return OutputStructured(param, flags.Format)
	}

	schema, err := flatschema.Compile(input)
	if err != nil {
		return fmt.Errorf("compiling schema: %w", err)
	}
	if flags.Strict {
		schema = schema.Standardize()
	}
	return OutputStructured(schema, flags.Format)
}

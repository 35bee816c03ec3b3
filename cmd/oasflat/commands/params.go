package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/erraggy/oasflat/pathtemplate"
)

// ParamsFlags contains flags for the params command
type ParamsFlags struct {
	Format string
}

// SetupParamsFlags creates and configures a FlagSet for the params command.
// Returns the FlagSet and a ParamsFlags struct with bound flag variables.
func SetupParamsFlags() (*flag.FlagSet, *ParamsFlags) {
	fs := flag.NewFlagSet("params", flag.ContinueOnError)
	flags := &ParamsFlags{}

	fs.StringVar(&flags.Format, "format", FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasflat params [flags] <path-template>\n\n")
		Writef(fs.Output(), "List the path parameters of a route template.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasflat params '/users/{id:42}/posts/{slug}'\n")
		Writef(fs.Output(), "  oasflat params -format json /users/:id\n")
	}

	return fs, flags
}

// HandleParams executes the params command
func HandleParams(args []string) error {
	fs, flags := SetupParamsFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("params command requires exactly one path template")
	}
	if err := ValidateListFormat(flags.Format); err != nil {
		return err
	}

	template := fs.Arg(0)
	params := pathtemplate.ExtractParameters(template)

	if flags.Format != FormatText {
		return OutputStructured(params, flags.Format)
	}

	Writef(stdout, "Path: %s\n", pathtemplate.NormalizeKey(template))
	Writef(stdout, "OpenAPI path: %s\n", pathtemplate.ToBraceForm(template))
	if len(params) == 0 {
		Writef(stdout, "No path parameters\n")
		return nil
	}
	Writef(stdout, "Parameters (%d):\n", len(params))
	for _, p := range params {
		Writef(stdout, "  %s (%s, %s)", p.Name, p.In, p.Schema.Type)
		if p.Schema.Example != nil {
			Writef(stdout, " example=%v", p.Schema.Example)
		}
		Writef(stdout, "\n")
	}
	return nil
}

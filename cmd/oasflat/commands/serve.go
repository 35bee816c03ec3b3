package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/erraggy/oasflat/docserver"
)

// shutdownTimeout bounds how long in-flight requests may take after a signal.
const shutdownTimeout = 5 * time.Second

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Addr     string
	JSONPath string
	YAMLPath string
	Strict   bool
	Verbose  bool
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
// Returns the FlagSet and a ServeFlags struct with bound flag variables.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Addr, "addr", ":8080", "listen address")
	fs.StringVar(&flags.JSONPath, "json-path", docserver.DefaultJSONPath, "route serving the JSON document (empty disables)")
	fs.StringVar(&flags.YAMLPath, "yaml-path", docserver.DefaultYAMLPath, "route serving the YAML document (empty disables)")
	fs.BoolVar(&flags.Strict, "strict", false, "serve object-level required lists and brace path keys")
	fs.BoolVar(&flags.Verbose, "v", false, "log requests and builder activity to stderr")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasflat serve [flags] <manifest>\n\n")
		Writef(fs.Output(), "Serve the document built from a manifest over HTTP.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oasflat serve api.yaml\n")
		Writef(fs.Output(), "  oasflat serve -addr 127.0.0.1:9000 -strict api.yaml\n")
	}

	return fs, flags
}

// HandleServe executes the serve command. It blocks until SIGINT or SIGTERM.
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("serve command requires exactly one manifest path")
	}

	handler, err := NewServeHandler(fs.Arg(0), flags)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              flags.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	Writef(stderr, "Serving %s on %s\n", FormatSpecPath(fs.Arg(0)), flags.Addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// NewServeHandler builds the manifest at path and returns a gin engine
// serving its document.
func NewServeHandler(path string, flags *ServeFlags) (http.Handler, error) {
	if path == StdinFilePath {
		return nil, fmt.Errorf("serve command cannot read the manifest from stdin")
	}
	logger := newLogger(flags.Verbose)
	b, err := loadBuilder(path, logger)
	if err != nil {
		return nil, err
	}
	// fail at startup rather than on the first request
	if _, err := b.Document(); err != nil {
		return nil, fmt.Errorf("building document: %w", err)
	}

	if !flags.Verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	if flags.Verbose {
		r.Use(gin.LoggerWithWriter(stderr))
	}
	docserver.Register(r, b,
		docserver.WithJSONPath(flags.JSONPath),
		docserver.WithYAMLPath(flags.YAMLPath),
		docserver.WithStrict(flags.Strict),
		docserver.WithLogger(logger),
	)
	return r, nil
}

package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/erraggy/oasflat/internal/mcpserver"
)

// HandleMCP executes the mcp command: an MCP server over stdio.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasflat mcp\n\n")
		Writef(fs.Output(), "Run an MCP (Model Context Protocol) server over stdio.\n\n")
		Writef(fs.Output(), "Environment:\n")
		Writef(fs.Output(), "  OASFLAT_MAX_INPUT      maximum byte length of any input string (default 65536)\n")
		Writef(fs.Output(), "  OASFLAT_OUTPUT_FORMAT  json or yaml when a call omits format (default json)\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}

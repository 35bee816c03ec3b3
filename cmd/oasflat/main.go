package main

import (
	"fmt"
	"os"

	"github.com/erraggy/oasflat"
	"github.com/erraggy/oasflat/cmd/oasflat/commands"
)

// commandNames lists every top-level command, for typo suggestions.
var commandNames = []string{"schema", "params", "build", "serve", "mcp", "version", "help"}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "version", "-v", "--version":
		fmt.Printf("oasflat %s\n", oasflat.Version())
		if len(args) > 0 && (args[0] == "-l" || args[0] == "--long") {
			fmt.Println(oasflat.BuildInfo())
		}
	case "help", "-h", "--help":
		printUsage()
	case "schema":
		err = commands.HandleSchema(args)
	case "params":
		err = commands.HandleParams(args)
	case "build":
		err = commands.HandleBuild(args)
	case "serve":
		err = commands.HandleServe(args)
	case "mcp":
		err = commands.HandleMCP(args)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// suggestCommand returns the command closest to input within an edit
// distance of 2, or "".
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `oasflat - build OpenAPI documents from flat schemas

Usage:
  oasflat <command> [flags] [arguments]

Commands:
  schema    Compile a flat schema into an OpenAPI schema
  params    List the path parameters of a route template
  build     Build an OpenAPI document from a manifest
  serve     Serve the document built from a manifest over HTTP
  mcp       Run an MCP server over stdio
  version   Show version information (-l for build details)
  help      Show this help message

Run 'oasflat <command> --help' for details on a command.
`)
}

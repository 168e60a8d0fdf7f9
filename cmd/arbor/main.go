// Arbor: problem-decomposition tree MCP server
//
// Maintains an in-memory decomposition tree (problems, causes, effects,
// solutions, decisions, options) and exposes analytical operations over
// it to any MCP-capable AI tool: MECE validation, gap detection,
// feasibility and actionability scoring, hypothesis generation, and
// workflow guidance.
//
// Usage:
//
//	arbor serve    # Start MCP server (stdio transport)
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	arborserver "github.com/decampo/arbor/internal/server"
	"github.com/mark3labs/mcp-go/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "--help", "-h", "help":
		printUsage()
		os.Exit(0)
	case "--version", "-v", "version":
		fmt.Printf("arbor v%s\n", arborserver.Version)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func run() error {
	s, cleanup, err := arborserver.New()
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Run cleanup on interrupt too — ServeStdio returns when stdin
	// closes, but a signal can arrive first.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cleanup()
		os.Exit(0)
	}()

	return server.ServeStdio(s)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `Arbor v%s — problem-decomposition tree MCP server

Usage:
  arbor serve    Start the MCP server (stdio transport)

Environment:
  ARBOR_QUIET    Suppress the tree echo printed to stderr after mutations
  ARBOR_JOURNAL  Path to a SQLite file for the operation audit journal

Configuration:
  Add to your AI tool's MCP config:

  {
    "mcpServers": {
      "arbor": {
        "command": "arbor",
        "args": ["serve"]
      }
    }
  }
`, arborserver.Version)
}

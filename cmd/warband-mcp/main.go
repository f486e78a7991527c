// Package main provides the warband-mcp server for MCP client integration.
//
// warband-mcp exposes the local collection store via the Model Context
// Protocol, so MCP-compatible clients can read and update the tracked
// collection.
//
// Usage:
//
//	warband-mcp [flags]
//
// The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ember-forge/warband/internal/catalog"
	"github.com/ember-forge/warband/internal/config"
	"github.com/ember-forge/warband/internal/mcp"
	"github.com/ember-forge/warband/internal/store"
	"github.com/ember-forge/warband/internal/telemetry"
	"github.com/ember-forge/warband/pkg/version"
)

func main() {
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Printf("warband-mcp %s\n", version.Version)
		os.Exit(0)
	}

	if len(os.Args) > 1 && (os.Args[1] == "--help" || os.Args[1] == "-h") {
		printHelp()
		os.Exit(0)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	paths := config.GetPaths(cfg)
	s := store.New(store.Options{
		Path:            paths.Snapshot,
		FallbackCatalog: catalog.Fallback(),
	})

	telemetryClient := telemetry.New()
	defer telemetryClient.Close()

	server := mcp.NewServer(s, cfg, telemetryClient)
	if err := server.Serve(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	help := `warband-mcp - MCP server for the Warband collection tracker

USAGE:
    warband-mcp [FLAGS]

FLAGS:
    -h, --help       Print this help message
    -v, --version    Print version information

DESCRIPTION:
    warband-mcp is a Model Context Protocol (MCP) server that exposes
    the local Warband collection to MCP-compatible clients.

    The server communicates via JSON-RPC 2.0 over stdio (stdin/stdout).

CONFIGURATION:
    Add to ~/.claude.json for user-level access:

    {
      "mcpServers": {
        "warband": {
          "type": "stdio",
          "command": "warband-mcp"
        }
      }
    }

    Or add to .mcp.json in your project root for project-level access.

TOOLS PROVIDED:
    warband_list_characters   List all tracked characters
    warband_add_character     Add a character to the collection
    warband_search_catalog    Search the character catalog
    warband_add_task          Add a task to the board
    warband_move_task         Move a task between lanes
    warband_nudge_milestone   Bump a milestone's progress
    warband_get_stats         Get collection statistics

RESOURCES PROVIDED:
    warband://snapshot        Full collection snapshot as JSON
`
	fmt.Print(help)
}

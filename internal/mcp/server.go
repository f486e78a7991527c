// Package mcp provides the Model Context Protocol server for Warband.
//
// The server exposes the local collection store and the character
// catalog to MCP-compatible clients, reusing internal/store so
// behavior matches the TUI and CLI exactly.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ember-forge/warband/internal/config"
	"github.com/ember-forge/warband/internal/store"
	"github.com/ember-forge/warband/internal/telemetry"
	"github.com/ember-forge/warband/pkg/version"
)

// Server wraps the MCP server with Warband-specific functionality.
type Server struct {
	store     *store.Store
	cfg       *config.Config
	server    *server.MCPServer
	telemetry telemetry.Client
}

// NewServer creates a new MCP server instance.
func NewServer(s *store.Store, cfg *config.Config, tc telemetry.Client) *Server {
	srv := &Server{
		store:     s,
		cfg:       cfg,
		telemetry: tc,
	}

	srv.server = server.NewMCPServer(
		"warband",
		version.Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	srv.registerTools()
	srv.registerResources()

	return srv
}

// Serve starts the MCP server over stdio.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.server)
}

// registerTools adds all Warband tools to the MCP server.
func (s *Server) registerTools() {
	s.server.AddTool(listCharactersTool(), s.handleListCharacters)
	s.server.AddTool(addCharacterTool(), s.handleAddCharacter)
	s.server.AddTool(searchCatalogTool(), s.handleSearchCatalog)
	s.server.AddTool(addTaskTool(), s.handleAddTask)
	s.server.AddTool(moveTaskTool(), s.handleMoveTask)
	s.server.AddTool(nudgeMilestoneTool(), s.handleNudgeMilestone)
	s.server.AddTool(getStatsTool(), s.handleGetStats)
}

// registerResources adds all Warband resources to the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(
		mcp.NewResource(
			"warband://snapshot",
			"Collection snapshot",
			mcp.WithResourceDescription("Full JSON snapshot of the tracked collection"),
			mcp.WithMIMEType("application/json"),
		),
		s.handleSnapshotResource,
	)
}

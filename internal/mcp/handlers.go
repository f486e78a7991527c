package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ember-forge/warband/internal/catalog"
	"github.com/ember-forge/warband/internal/models"
	"github.com/ember-forge/warband/internal/store"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// parseLimit extracts and validates a limit parameter from MCP tool arguments.
func parseLimit(arguments map[string]interface{}, defaultVal, maxVal int) int {
	if l, ok := arguments["limit"].(float64); ok && l > 0 {
		limit := int(l)
		if limit > maxVal {
			return maxVal
		}
		return limit
	}
	return defaultVal
}

// stringArg extracts an optional string argument.
func stringArg(arguments map[string]interface{}, key string) string {
	s, _ := arguments[key].(string)
	return s
}

// trackToolCall is a helper to track MCP tool invocations.
func (s *Server) trackToolCall(toolName string, start time.Time, success bool) {
	if s.telemetry != nil {
		durationMs := time.Since(start).Milliseconds()
		s.telemetry.TrackMCPToolCalled(toolName, durationMs, success)
	}
}

// StatsResponse represents collection statistics.
type StatsResponse struct {
	TotalCharacters int `json:"total_characters"`
	TotalSixStar    int `json:"total_six_star"`
	Tasks           int `json:"tasks"`
	Milestones      int `json:"milestones"`
	CatalogEntries  int `json:"catalog_entries"`
}

func (s *Server) handleListCharacters(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	data, err := json.Marshal(s.store.Characters())
	if err != nil {
		s.trackToolCall("warband_list_characters", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal characters: %v", err)), nil
	}

	s.trackToolCall("warband_list_characters", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleAddCharacter(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	name, ok := req.Params.Arguments["name"].(string)
	if !ok || name == "" {
		s.trackToolCall("warband_add_character", start, false)
		return mcp.NewToolResultError("name parameter is required"), nil
	}

	result := s.store.AddCharacter(store.AddCharacterInput{
		Name:    name,
		Faction: stringArg(req.Params.Arguments, "faction"),
		Type:    stringArg(req.Params.Arguments, "type"),
		Rarity:  stringArg(req.Params.Arguments, "rarity"),
		Level:   stringArg(req.Params.Arguments, "level"),
	})
	if !result.Success {
		s.trackToolCall("warband_add_character", start, false)
		switch result.Reason {
		case store.ReasonDuplicate:
			return mcp.NewToolResultError(fmt.Sprintf("a character named %q is already tracked", name)), nil
		default:
			return mcp.NewToolResultError("character name must not be empty"), nil
		}
	}

	data, err := json.Marshal(result.Character)
	if err != nil {
		s.trackToolCall("warband_add_character", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal character: %v", err)), nil
	}

	s.trackToolCall("warband_add_character", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleSearchCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	query, ok := req.Params.Arguments["query"].(string)
	if !ok || query == "" {
		s.trackToolCall("warband_search_catalog", start, false)
		return mcp.NewToolResultError("query parameter is required"), nil
	}

	limit := parseLimit(req.Params.Arguments, defaultSearchLimit, maxSearchLimit)
	matches := catalog.SearchByName(s.store.Catalog(), query, limit)

	data, err := json.Marshal(matches)
	if err != nil {
		s.trackToolCall("warband_search_catalog", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal results: %v", err)), nil
	}

	s.trackToolCall("warband_search_catalog", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleAddTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	title, ok := req.Params.Arguments["title"].(string)
	if !ok || title == "" {
		s.trackToolCall("warband_add_task", start, false)
		return mcp.NewToolResultError("title parameter is required"), nil
	}

	task := s.store.AddTask(store.TaskInput{
		Title:    title,
		Priority: stringArg(req.Params.Arguments, "priority"),
		Status:   stringArg(req.Params.Arguments, "lane"),
	})

	data, err := json.Marshal(task)
	if err != nil {
		s.trackToolCall("warband_add_task", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal task: %v", err)), nil
	}

	s.trackToolCall("warband_add_task", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleMoveTask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	id, ok := req.Params.Arguments["id"].(string)
	if !ok || id == "" {
		s.trackToolCall("warband_move_task", start, false)
		return mcp.NewToolResultError("id parameter is required"), nil
	}
	lane, ok := req.Params.Arguments["lane"].(string)
	if !ok || !models.IsValidStatus(lane) {
		s.trackToolCall("warband_move_task", start, false)
		return mcp.NewToolResultError("lane must be one of: todo, in-progress, complete"), nil
	}

	s.store.MoveTask(id, lane)
	for _, task := range s.store.Tasks() {
		if task.ID == id {
			data, err := json.Marshal(task)
			if err != nil {
				s.trackToolCall("warband_move_task", start, false)
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal task: %v", err)), nil
			}
			s.trackToolCall("warband_move_task", start, true)
			return mcp.NewToolResultText(string(data)), nil
		}
	}

	s.trackToolCall("warband_move_task", start, false)
	return mcp.NewToolResultError(fmt.Sprintf("task not found: %s", id)), nil
}

func (s *Server) handleNudgeMilestone(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	id, ok := req.Params.Arguments["id"].(string)
	if !ok || id == "" {
		s.trackToolCall("warband_nudge_milestone", start, false)
		return mcp.NewToolResultError("id parameter is required"), nil
	}

	s.store.NudgeMilestone(id)
	for _, ms := range s.store.Milestones() {
		if ms.ID == id {
			data, err := json.Marshal(ms)
			if err != nil {
				s.trackToolCall("warband_nudge_milestone", start, false)
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal milestone: %v", err)), nil
			}
			s.trackToolCall("warband_nudge_milestone", start, true)
			return mcp.NewToolResultText(string(data)), nil
		}
	}

	s.trackToolCall("warband_nudge_milestone", start, false)
	return mcp.NewToolResultError(fmt.Sprintf("milestone not found: %s", id)), nil
}

func (s *Server) handleGetStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start := time.Now()

	stats := s.store.RecomputeStats()
	response := StatsResponse{
		TotalCharacters: stats.TotalCharacters,
		TotalSixStar:    stats.TotalSixStar,
		Tasks:           len(s.store.Tasks()),
		Milestones:      len(s.store.Milestones()),
		CatalogEntries:  len(s.store.Catalog()),
	}

	data, err := json.Marshal(response)
	if err != nil {
		s.trackToolCall("warband_get_stats", start, false)
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal stats: %v", err)), nil
	}

	s.trackToolCall("warband_get_stats", start, true)
	return mcp.NewToolResultText(string(data)), nil
}

// handleSnapshotResource serves the full collection snapshot.
func (s *Server) handleSnapshotResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := s.store.Export()
	if err != nil {
		return nil, fmt.Errorf("export snapshot: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

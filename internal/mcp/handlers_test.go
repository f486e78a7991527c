package mcp

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-forge/warband/internal/catalog"
	"github.com/ember-forge/warband/internal/config"
	"github.com/ember-forge/warband/internal/models"
	"github.com/ember-forge/warband/internal/store"
)

func setupTestServer(t *testing.T) *Server {
	t.Helper()

	s := store.New(store.Options{FallbackCatalog: catalog.Fallback()})
	return NewServer(s, config.DefaultConfig(), nil)
}

func callArgs(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	require.NotNil(t, result)
	require.NotEmpty(t, result.Content)
	textContent, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return textContent.Text
}

func TestHandleAddCharacter(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	t.Run("adds with clamped level", func(t *testing.T) {
		result, err := server.handleAddCharacter(ctx, callArgs(map[string]any{
			"name":   "Coldheart",
			"rarity": "Epic",
			"level":  "9999",
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var character models.Character
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &character))
		assert.Equal(t, "Coldheart", character.Name)
		assert.Equal(t, models.MaxLevel, character.Level)
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		result, err := server.handleAddCharacter(ctx, callArgs(map[string]any{
			"name": "coldheart",
		}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})

	t.Run("requires a name", func(t *testing.T) {
		result, err := server.handleAddCharacter(ctx, callArgs(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestHandleSearchCatalog(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	t.Run("matches by substring", func(t *testing.T) {
		result, err := server.handleSearchCatalog(ctx, callArgs(map[string]any{
			"query": "kael",
			"limit": float64(10),
		}))
		require.NoError(t, err)
		require.False(t, result.IsError)

		var entries []models.CatalogEntry
		require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &entries))
		require.NotEmpty(t, entries)
		assert.Equal(t, "Kael", entries[0].Name)
	})

	t.Run("requires a query", func(t *testing.T) {
		result, err := server.handleSearchCatalog(ctx, callArgs(map[string]any{}))
		require.NoError(t, err)
		assert.True(t, result.IsError)
	})
}

func TestHandleTaskTools(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	result, err := server.handleAddTask(ctx, callArgs(map[string]any{
		"title":    "Farm dragon 20 times",
		"priority": models.PriorityHigh,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var task models.Task
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &task))
	assert.Equal(t, models.StatusTodo, task.Status)

	result, err = server.handleMoveTask(ctx, callArgs(map[string]any{
		"id":   task.ID,
		"lane": models.StatusComplete,
	}))
	require.NoError(t, err)
	require.False(t, result.IsError)
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &task))
	assert.Equal(t, models.StatusComplete, task.Status)

	result, err = server.handleMoveTask(ctx, callArgs(map[string]any{
		"id":   task.ID,
		"lane": "done",
	}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleNudgeMilestone(t *testing.T) {
	server := setupTestServer(t)
	ctx := context.Background()

	milestones := server.store.Milestones()
	require.NotEmpty(t, milestones)
	target := milestones[0]
	want := models.ClampProgress(target.Progress + models.ProgressStep)

	result, err := server.handleNudgeMilestone(ctx, callArgs(map[string]any{"id": target.ID}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var ms models.Milestone
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &ms))
	assert.Equal(t, want, ms.Progress)

	result, err = server.handleNudgeMilestone(ctx, callArgs(map[string]any{"id": "ghost"}))
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestHandleGetStats(t *testing.T) {
	server := setupTestServer(t)

	result, err := server.handleGetStats(context.Background(), callArgs(map[string]any{}))
	require.NoError(t, err)
	require.False(t, result.IsError)

	var stats StatsResponse
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &stats))
	assert.Equal(t, len(server.store.Characters()), stats.TotalCharacters)
	assert.NotZero(t, stats.CatalogEntries)
}

func TestHandleSnapshotResource(t *testing.T) {
	server := setupTestServer(t)

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "warband://snapshot"

	contents, err := server.handleSnapshotResource(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcp.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, "application/json", text.MIMEType)
	assert.Contains(t, text.Text, "characters")
}

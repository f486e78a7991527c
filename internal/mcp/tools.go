package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Tool definitions for the Warband MCP server.

// listCharactersTool returns the warband_list_characters tool definition.
func listCharactersTool() mcp.Tool {
	return mcp.NewTool("warband_list_characters",
		mcp.WithDescription("List all tracked characters with faction, type, rarity, and level."),
	)
}

// addCharacterTool returns the warband_add_character tool definition.
func addCharacterTool() mcp.Tool {
	return mcp.NewTool("warband_add_character",
		mcp.WithDescription("Add a character to the collection. Names must be unique (case-insensitive); the level is clamped to 1-60."),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Character name"),
		),
		mcp.WithString("faction",
			mcp.Description("Character faction"),
		),
		mcp.WithString("type",
			mcp.Description("Character type (Attack, Defense, Support, HP)"),
		),
		mcp.WithString("rarity",
			mcp.Description("Character rarity (Common, Uncommon, Rare, Epic, Legendary, Mythical)"),
		),
		mcp.WithString("level",
			mcp.Description("Character level 1-60 (defaults to 1; non-numeric values also default to 1)"),
		),
	)
}

// searchCatalogTool returns the warband_search_catalog tool definition.
func searchCatalogTool() mcp.Tool {
	return mcp.NewTool("warband_search_catalog",
		mcp.WithDescription("Search the cached character catalog by name substring, case-insensitively."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Name fragment to search for"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of results to return (default: 10, max: 50)"),
		),
	)
}

// addTaskTool returns the warband_add_task tool definition.
func addTaskTool() mcp.Tool {
	return mcp.NewTool("warband_add_task",
		mcp.WithDescription("Add a task to the board. Starts in the todo lane unless a valid lane is given."),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Task title"),
		),
		mcp.WithString("priority",
			mcp.Description("Priority: Low, Medium, or High"),
		),
		mcp.WithString("lane",
			mcp.Description("Starting lane: todo, in-progress, or complete"),
		),
	)
}

// moveTaskTool returns the warband_move_task tool definition.
func moveTaskTool() mcp.Tool {
	return mcp.NewTool("warband_move_task",
		mcp.WithDescription("Move a task to another board lane."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Task id"),
		),
		mcp.WithString("lane",
			mcp.Required(),
			mcp.Description("Target lane: todo, in-progress, or complete"),
		),
	)
}

// nudgeMilestoneTool returns the warband_nudge_milestone tool definition.
func nudgeMilestoneTool() mcp.Tool {
	return mcp.NewTool("warband_nudge_milestone",
		mcp.WithDescription("Bump a milestone's progress by one step (capped at 100)."),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("Milestone id"),
		),
	)
}

// getStatsTool returns the warband_get_stats tool definition.
func getStatsTool() mcp.Tool {
	return mcp.NewTool("warband_get_stats",
		mcp.WithDescription("Get collection statistics: tracked characters, six-star count, tasks, milestones, and catalog size."),
	)
}

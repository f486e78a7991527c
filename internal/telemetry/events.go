package telemetry

import (
	"runtime"

	"github.com/ember-forge/warband/pkg/version"
)

// Event names - CLI
const (
	EventAppStarted         = "app_started"
	EventAppExited          = "app_exited"
	EventCLICommandExecuted = "cli_command_executed"
	EventCLIErrorOccurred   = "cli_error_occurred"
	EventCharacterAdded     = "character_added"
	EventCharacterRemoved   = "character_removed"
	EventCatalogRefreshed   = "catalog_refreshed"
	EventRosterSynced       = "roster_synced"
	EventTaskMoved          = "task_moved"
	EventMilestoneNudged    = "milestone_nudged"
	EventDataExported       = "data_exported"
	EventDataImported       = "data_imported"
)

// Event names - TUI
const (
	EventViewNavigated   = "view_navigated"
	EventSearchPerformed = "search_performed"
	EventSettingsChanged = "settings_changed"
	EventErrorDisplayed  = "error_displayed"
)

// Event names - MCP
const (
	EventMCPToolCalled = "mcp_tool_called"
)

// baseProperties returns common properties for all events.
func baseProperties() map[string]interface{} {
	return map[string]interface{}{
		"os":         runtime.GOOS,
		"arch":       runtime.GOARCH,
		"version":    version.Short(),
		"prerelease": version.IsPrerelease(),
		"dev_build":  version.IsDevBuild(),
	}
}

// TrackAppStarted tracks application startup.
func (c *posthogClient) TrackAppStarted(mode string, characterCount int) {
	props := baseProperties()
	props["mode"] = mode
	props["character_count"] = characterCount
	c.Track(EventAppStarted, props)
}

// TrackAppExited tracks application exit.
func (c *posthogClient) TrackAppExited(mode string, sessionDurationMs int64) {
	props := baseProperties()
	props["mode"] = mode
	props["session_duration_ms"] = sessionDurationMs
	c.Track(EventAppExited, props)
}

// TrackCLICommandExecuted tracks CLI command execution.
func (c *posthogClient) TrackCLICommandExecuted(commandName string, hasFlags bool, durationMs int64) {
	props := baseProperties()
	props["command_name"] = commandName
	props["has_flags"] = hasFlags
	props["execution_duration_ms"] = durationMs
	c.Track(EventCLICommandExecuted, props)
}

// TrackCLIError tracks CLI command failures by error class, never the
// message itself.
func (c *posthogClient) TrackCLIError(commandName, errorType string) {
	props := baseProperties()
	props["command_name"] = commandName
	props["error_type"] = errorType
	c.Track(EventCLIErrorOccurred, props)
}

// TrackCharacterAdded tracks a character joining the collection.
func (c *posthogClient) TrackCharacterAdded(rarity string, level int) {
	props := baseProperties()
	props["rarity"] = rarity
	props["level"] = level
	c.Track(EventCharacterAdded, props)
}

// TrackCharacterRemoved tracks a character leaving the collection.
func (c *posthogClient) TrackCharacterRemoved(rarity string) {
	props := baseProperties()
	props["rarity"] = rarity
	c.Track(EventCharacterRemoved, props)
}

// TrackCatalogRefreshed tracks a catalog fetch and whether it fell
// back to a degraded source.
func (c *posthogClient) TrackCatalogRefreshed(entryCount int, degraded bool) {
	props := baseProperties()
	props["entry_count"] = entryCount
	props["degraded"] = degraded
	c.Track(EventCatalogRefreshed, props)
}

// TrackRosterSynced tracks a remote roster fetch.
func (c *posthogClient) TrackRosterSynced(entryCount int) {
	props := baseProperties()
	props["entry_count"] = entryCount
	c.Track(EventRosterSynced, props)
}

// TrackTaskMoved tracks a task changing lanes.
func (c *posthogClient) TrackTaskMoved(lane string) {
	props := baseProperties()
	props["lane"] = lane
	c.Track(EventTaskMoved, props)
}

// TrackMilestoneNudged tracks a milestone progress bump.
func (c *posthogClient) TrackMilestoneNudged(progress int) {
	props := baseProperties()
	props["progress"] = progress
	c.Track(EventMilestoneNudged, props)
}

// TrackDataExported tracks a data export.
func (c *posthogClient) TrackDataExported(characterCount int) {
	props := baseProperties()
	props["character_count"] = characterCount
	c.Track(EventDataExported, props)
}

// TrackDataImported tracks a data import.
func (c *posthogClient) TrackDataImported(characterCount int) {
	props := baseProperties()
	props["character_count"] = characterCount
	c.Track(EventDataImported, props)
}

// TrackViewNavigated tracks TUI view changes.
func (c *posthogClient) TrackViewNavigated(viewName, previousView string) {
	props := baseProperties()
	props["view_name"] = viewName
	props["previous_view"] = previousView
	c.Track(EventViewNavigated, props)
}

// TrackSearchPerformed tracks catalog searches. Only the query length
// is reported, not the query.
func (c *posthogClient) TrackSearchPerformed(query string, resultCount int) {
	props := baseProperties()
	props["query_length"] = len(query)
	props["result_count"] = resultCount
	c.Track(EventSearchPerformed, props)
}

// TrackSettingsChanged tracks settings toggles.
func (c *posthogClient) TrackSettingsChanged(settingName string) {
	props := baseProperties()
	props["setting_name"] = settingName
	c.Track(EventSettingsChanged, props)
}

// TrackErrorDisplayed tracks errors shown to the user.
func (c *posthogClient) TrackErrorDisplayed(errorType, contextView string) {
	props := baseProperties()
	props["error_type"] = errorType
	props["context_view"] = contextView
	c.Track(EventErrorDisplayed, props)
}

// TrackMCPToolCalled tracks MCP tool invocations.
func (c *posthogClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool) {
	props := baseProperties()
	props["tool_name"] = toolName
	props["duration_ms"] = durationMs
	props["success"] = success
	c.Track(EventMCPToolCalled, props)
}

// No-op implementations for disabled telemetry.

func (c *noopClient) TrackAppStarted(mode string, characterCount int)                      {}
func (c *noopClient) TrackAppExited(mode string, sessionDurationMs int64)                  {}
func (c *noopClient) TrackCLICommandExecuted(commandName string, hasFlags bool, d int64)   {}
func (c *noopClient) TrackCLIError(commandName, errorType string)                          {}
func (c *noopClient) TrackCharacterAdded(rarity string, level int)                         {}
func (c *noopClient) TrackCharacterRemoved(rarity string)                                  {}
func (c *noopClient) TrackCatalogRefreshed(entryCount int, degraded bool)                  {}
func (c *noopClient) TrackRosterSynced(entryCount int)                                     {}
func (c *noopClient) TrackTaskMoved(lane string)                                           {}
func (c *noopClient) TrackMilestoneNudged(progress int)                                    {}
func (c *noopClient) TrackDataExported(characterCount int)                                 {}
func (c *noopClient) TrackDataImported(characterCount int)                                 {}
func (c *noopClient) TrackViewNavigated(viewName, previousView string)                     {}
func (c *noopClient) TrackSearchPerformed(query string, resultCount int)                   {}
func (c *noopClient) TrackSettingsChanged(settingName string)                              {}
func (c *noopClient) TrackErrorDisplayed(errorType, contextView string)                    {}
func (c *noopClient) TrackMCPToolCalled(toolName string, durationMs int64, success bool)   {}

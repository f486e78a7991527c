package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledByEnvVar(t *testing.T) {
	t.Setenv("WARBAND_TELEMETRY_TRACKING_ENABLED", "false")

	client := New()
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient when disabled")
}

func TestNew_DisabledWithoutAPIKey(t *testing.T) {
	originalKey := PostHogAPIKey
	PostHogAPIKey = ""
	defer func() { PostHogAPIKey = originalKey }()

	client := New()
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient without API key")
}

func TestNoopClient_DoesNotPanic(t *testing.T) {
	client := &noopClient{}

	// CLI events
	client.Track("test_event", map[string]interface{}{"key": "value"})
	client.TrackAppStarted("cli", 3)
	client.TrackAppExited("cli", 5000)
	client.TrackCLICommandExecuted("add", true, 100)
	client.TrackCLIError("add", "network_error")
	client.TrackCharacterAdded("Legendary", 60)
	client.TrackCharacterRemoved("Rare")
	client.TrackCatalogRefreshed(300, false)
	client.TrackRosterSynced(12)
	client.TrackTaskMoved("in-progress")
	client.TrackMilestoneNudged(85)
	client.TrackDataExported(8)
	client.TrackDataImported(8)

	// TUI events
	client.TrackViewNavigated("roster", "dashboard")
	client.TrackSearchPerformed("kael", 1)
	client.TrackSettingsChanged("dark_mode")
	client.TrackErrorDisplayed("network", "roster")

	// MCP events
	client.TrackMCPToolCalled("warband_search_catalog", 100, true)

	client.Close()
	assert.Empty(t, client.GetTrackingID())
}

func TestBaseProperties(t *testing.T) {
	props := baseProperties()

	assert.Contains(t, props, "os")
	assert.Contains(t, props, "arch")
	assert.Contains(t, props, "version")
}

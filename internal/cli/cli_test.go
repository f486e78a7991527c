package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ember-forge/warband/internal/models"
)

func TestRootCmd_Structure(t *testing.T) {
	assert.Equal(t, "warband", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	var names []string
	for _, cmd := range commands {
		names = append(names, cmd.Name())
	}

	for _, expected := range []string{
		"add", "catalog", "darkmode", "export", "gear", "goals",
		"import", "list", "remove", "reset", "resources", "roster",
		"set", "stats", "tasks",
	} {
		assert.Contains(t, names, expected)
	}
}

func TestTasksCmd_HasSubcommands(t *testing.T) {
	var names []string
	for _, cmd := range tasksCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "add")
	assert.Contains(t, names, "move")
	assert.Contains(t, names, "remove")
}

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", errors.New("load config: boom"), "config_error"},
		{"database", errors.New("open database: boom"), "database_error"},
		{"network", errors.New("connection refused"), "network_error"},
		{"generic retry", errors.New("could not load your roster, please try again"), "network_error"},
		{"not found", errors.New("character \"x\" not found"), "not_found_error"},
		{"validation", errors.New("invalid lane \"done\""), "validation_error"},
		{"duplicate", errors.New("duplicate character: \"Kael\" is already tracked"), "validation_error"},
		{"unknown", errors.New("boom"), "unknown_error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyError(tt.err))
		})
	}
}

func TestNormalizeRarity(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", "", false},
		{"Epic", "Epic", false},
		{"epic", "Epic", false},
		{"LEGENDARY", "Legendary", false},
		{"Divine", "", true},
		{"Epicc", "", true},
	}
	for _, tt := range tests {
		got, err := normalizeRarity(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.in)
			continue
		}
		assert.NoError(t, err, "input %q", tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestSortByRarity(t *testing.T) {
	characters := []models.Character{
		{Name: "Beta", Rarity: models.RarityRare},
		{Name: "Alpha", Rarity: models.RarityRare},
		{Name: "Oddball", Rarity: "Homemade"},
		{Name: "Top", Rarity: models.RarityLegendary},
	}

	sortByRarity(characters)

	assert.Equal(t, "Top", characters[0].Name)
	assert.Equal(t, "Alpha", characters[1].Name)
	assert.Equal(t, "Beta", characters[2].Name)
	// Unknown rarities rank below every known tier.
	assert.Equal(t, "Oddball", characters[3].Name)
}

func TestParseCountArgs(t *testing.T) {
	partial, err := parseCountArgs([]string{"energy=130", "gems=abc", "silver=-5"})
	assert.NoError(t, err)
	assert.Equal(t, 130, partial["energy"])
	assert.Equal(t, 0, partial["gems"])
	assert.Equal(t, 0, partial["silver"])

	_, err = parseCountArgs([]string{"noequals"})
	assert.Error(t, err)

	_, err = parseCountArgs([]string{"=42"})
	assert.Error(t, err)
}

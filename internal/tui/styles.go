package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ember-forge/warband/internal/models"
)

// Theme holds the palette for one color mode.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
}

// DarkTheme is the default palette.
func DarkTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#D4A017"),
		Secondary: lipgloss.Color("#8B5CF6"),
		Text:      lipgloss.Color("#E8E3D3"),
		Muted:     lipgloss.Color("#7A7468"),
		Surface:   lipgloss.Color("#2A2620"),
		Warning:   lipgloss.Color("#E5A50A"),
		Error:     lipgloss.Color("#C01C28"),
		Success:   lipgloss.Color("#26A269"),
	}
}

// LightTheme is the alternate palette.
func LightTheme() Theme {
	return Theme{
		Primary:   lipgloss.Color("#9A6E00"),
		Secondary: lipgloss.Color("#6D28D9"),
		Text:      lipgloss.Color("#2E2A20"),
		Muted:     lipgloss.Color("#8C8578"),
		Surface:   lipgloss.Color("#EFE9DA"),
		Warning:   lipgloss.Color("#B07900"),
		Error:     lipgloss.Color("#A51D2D"),
		Success:   lipgloss.Color("#1B7F4D"),
	}
}

// rarityColors maps each rarity tier to its conventional color.
var rarityColors = map[string]lipgloss.Color{
	models.RarityCommon:    lipgloss.Color("#9A9996"),
	models.RarityUncommon:  lipgloss.Color("#26A269"),
	models.RarityRare:      lipgloss.Color("#1C71D8"),
	models.RarityEpic:      lipgloss.Color("#813D9C"),
	models.RarityLegendary: lipgloss.Color("#E5A50A"),
	models.RarityMythical:  lipgloss.Color("#C01C28"),
}

// Styles contains all reusable Lipgloss styles for the TUI.
type Styles struct {
	Header    lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style

	Box         lipgloss.Style
	SelectedBox lipgloss.Style

	Normal    lipgloss.Style
	Muted     lipgloss.Style
	Bold      lipgloss.Style
	Highlight lipgloss.Style

	StatusOK      lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style

	LaneHeading  lipgloss.Style
	ItemSelected lipgloss.Style

	Footer lipgloss.Style
}

// NewStyles builds the style set for the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		TabIdle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Muted).
			Padding(0, 1),

		SelectedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(0, 1),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Text),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Text).
			Bold(true),

		Highlight: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true),

		StatusOK: lipgloss.NewStyle().
			Foreground(theme.Success),

		StatusWarning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		StatusError: lipgloss.NewStyle().
			Foreground(theme.Error).
			Bold(true),

		LaneHeading: lipgloss.NewStyle().
			Foreground(theme.Secondary).
			Bold(true).
			Padding(0, 1),

		ItemSelected: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),
	}
}

// RarityStyle returns a style colored for the given rarity tier.
func RarityStyle(rarity string) lipgloss.Style {
	if color, ok := rarityColors[rarity]; ok {
		return lipgloss.NewStyle().Foreground(color)
	}
	return lipgloss.NewStyle()
}

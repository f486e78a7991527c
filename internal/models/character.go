// Package models defines the core data structures for Warband.
package models

// Level bounds for a tracked character.
const (
	MinLevel = 1
	MaxLevel = 60
)

// Star bounds for ascension and soul levels.
const (
	MinStars = 0
	MaxStars = 6
)

// Character is a locally tracked roster entry.
type Character struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Faction string `json:"faction,omitempty"`
	Type    string `json:"type,omitempty"`
	Rarity  string `json:"rarity,omitempty"`
	Level   int    `json:"level"`

	// Optional progression attributes tracked in star-based variants.
	AscensionLevel int `json:"ascensionLevel,omitempty"`
	SoulLevel      int `json:"soulLevel,omitempty"`

	GearSet string `json:"gearSet,omitempty"`
	Notes   string `json:"notes,omitempty"`
}

// Rarity tiers, ordered from lowest to highest.
const (
	RarityCommon    = "Common"
	RarityUncommon  = "Uncommon"
	RarityRare      = "Rare"
	RarityEpic      = "Epic"
	RarityLegendary = "Legendary"
	RarityMythical  = "Mythical"
)

// ValidRarities returns all rarity tiers in ascending order.
func ValidRarities() []string {
	return []string{
		RarityCommon,
		RarityUncommon,
		RarityRare,
		RarityEpic,
		RarityLegendary,
		RarityMythical,
	}
}

// RarityRank returns the ordinal position of a rarity tier.
// Unknown rarities rank below Common.
func RarityRank(rarity string) int {
	for i, r := range ValidRarities() {
		if r == rarity {
			return i
		}
	}
	return -1
}

// ClampLevel coerces a level into [MinLevel, MaxLevel].
func ClampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}

// ClampStars coerces a star count into [MinStars, MaxStars].
func ClampStars(stars int) int {
	if stars < MinStars {
		return MinStars
	}
	if stars > MaxStars {
		return MaxStars
	}
	return stars
}

package models

// ResourceLedger maps a resource kind to a non-negative count.
// Negative or non-numeric input is coerced to 0 before it reaches
// the ledger.
type ResourceLedger map[string]int

// GearInventory maps a gear kind to a non-negative count, with the
// same coercion rule as ResourceLedger.
type GearInventory map[string]int

// Resource kinds tracked on the dashboard.
const (
	ResourceEnergy        = "energy"
	ResourceGems          = "gems"
	ResourceSilver        = "silver"
	ResourceAncientShards = "ancientShards"
	ResourceVoidShards    = "voidShards"
	ResourceSacredShards  = "sacredShards"
	ResourceArcanePotions = "arcanePotions"
)

// Gear kinds tracked on the dashboard.
const (
	GearSpeedBoots    = "speedBoots"
	GearPerception    = "perceptionSets"
	GearLifesteal     = "lifestealSets"
	GearSavage        = "savageSets"
	GearResistanceAcc = "resistanceAccessories"
)

// Stats holds derived roster statistics shown on the dashboard.
type Stats struct {
	TotalCharacters int `json:"totalChampions"`
	TotalSixStar    int `json:"totalSixStar"`
}

// Settings holds user preferences persisted with the snapshot.
type Settings struct {
	DarkMode bool `json:"darkMode"`
}

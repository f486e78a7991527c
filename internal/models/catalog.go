package models

// CatalogEntry is one character from the external reference catalog,
// normalized into the canonical shape. Entries are immutable from the
// client's perspective.
type CatalogEntry struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Faction  string `json:"faction"`
	Type     string `json:"type"`
	Affinity string `json:"affinity,omitempty"`
	Rarity   string `json:"rarity"`
	ImageURL string `json:"imageUrl,omitempty"`
}

// TypeUnknown is the role assigned when the source record carries none.
const TypeUnknown = "Unknown"

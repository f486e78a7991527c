package models

import "time"

// CatalogRecord is a row in the remote character catalog table.
// Read-only from the client's perspective.
type CatalogRecord struct {
	ID       string `gorm:"primaryKey;size:64" json:"id"`
	Name     string `gorm:"size:255;index" json:"name"`
	Faction  string `gorm:"size:100" json:"faction"`
	Type     string `gorm:"size:100" json:"type"`
	Affinity string `gorm:"size:50" json:"affinity"`
	Rarity   string `gorm:"size:50" json:"rarity"`
	ImageURL string `gorm:"size:500" json:"image_url"`
}

// TableName specifies the table name for GORM.
func (CatalogRecord) TableName() string {
	return "champions"
}

// RosterRecord is a row in the per-user roster table, keyed by the
// catalog reference so re-adding a character overwrites its record.
type RosterRecord struct {
	ID             string    `gorm:"primaryKey;size:64" json:"id"`
	CharacterID    string    `gorm:"uniqueIndex;size:64" json:"champion_id"`
	Level          int       `gorm:"default:1" json:"level"`
	AscensionLevel int       `gorm:"default:0" json:"ascension_level"`
	SoulLevel      int       `gorm:"default:0" json:"soul_level"`
	Rarity         string    `gorm:"size:50" json:"rarity"`
	Timestamp      time.Time `json:"timestamp"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `gorm:"index" json:"updated_at"`
}

// TableName specifies the table name for GORM.
func (RosterRecord) TableName() string {
	return "user_champions"
}

// RosterEntry is a roster record joined at read time with its catalog
// entry, with numeric fields sanitized.
type RosterEntry struct {
	RecordID       string    `json:"recordId"`
	CharacterID    string    `json:"characterId"`
	Name           string    `json:"name"`
	Faction        string    `json:"faction"`
	Type           string    `json:"type"`
	Affinity       string    `json:"affinity,omitempty"`
	Rarity         string    `json:"rarity"`
	ImageURL       string    `json:"imageUrl,omitempty"`
	Level          int       `json:"level"`
	AscensionLevel int       `json:"ascensionLevel"`
	SoulLevel      int       `json:"soulLevel"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

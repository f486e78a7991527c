// Package remote defines the record-store contract for synced roster
// data and provides two implementations: a REST client for a hosted
// PostgREST backend and a local SQLite store for offline use.
package remote

import (
	"context"
	"errors"

	"github.com/ember-forge/warband/internal/models"
)

// ErrNotFound is returned when a catalog or roster record does not
// exist.
var ErrNotFound = errors.New("record not found")

// SearchLimit caps catalog search results.
const SearchLimit = 10

// RecordStore is the backend contract for catalog reads and roster
// writes. Both the hosted REST backend and the local SQLite store
// implement it.
type RecordStore interface {
	// SearchCatalog returns entries whose names contain the query,
	// case-insensitively, capped at SearchLimit.
	SearchCatalog(ctx context.Context, query string) ([]models.CatalogRecord, error)

	// GetCatalogByIDs batch-loads catalog records by id. Missing ids
	// are skipped, not errors.
	GetCatalogByIDs(ctx context.Context, ids []string) ([]models.CatalogRecord, error)

	// ListRoster returns all roster records, most recently updated
	// first.
	ListRoster(ctx context.Context) ([]models.RosterRecord, error)

	// UpsertRoster inserts the record, or overwrites the existing one
	// with the same CharacterID.
	UpsertRoster(ctx context.Context, record models.RosterRecord) error

	// UpdateRoster applies field changes to the record with the given
	// CharacterID.
	UpdateRoster(ctx context.Context, characterID string, changes RosterChanges) error

	// DeleteRoster removes the record with the given CharacterID.
	DeleteRoster(ctx context.Context, characterID string) error

	// Close releases backend resources.
	Close() error
}

// RosterChanges carries the mutable roster fields for a partial
// update. Nil fields are left untouched.
type RosterChanges struct {
	Level          *int    `json:"level,omitempty"`
	AscensionLevel *int    `json:"ascension_level,omitempty"`
	SoulLevel      *int    `json:"soul_level,omitempty"`
	Rarity         *string `json:"rarity,omitempty"`
}

// IsEmpty reports whether no field is set.
func (c RosterChanges) IsEmpty() bool {
	return c.Level == nil && c.AscensionLevel == nil && c.SoulLevel == nil && c.Rarity == nil
}

var (
	_ RecordStore = (*RESTStore)(nil)
	_ RecordStore = (*LocalStore)(nil)
)

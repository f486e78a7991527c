package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ember-forge/warband/internal/log"
	"github.com/ember-forge/warband/internal/models"
	"github.com/ember-forge/warband/pkg/version"
)

// Snapshot is the single JSON document the store persists. Its shape is
// the store's state shape; the schema field is checked on restore.
type Snapshot struct {
	Schema           string                `json:"schema,omitempty"`
	Stats            models.Stats          `json:"stats"`
	Characters       []models.Character    `json:"characters"`
	Resources        models.ResourceLedger `json:"resources"`
	Gear             models.GearInventory  `json:"gear"`
	Tasks            []models.Task         `json:"tasks"`
	Milestones       []models.Milestone    `json:"milestones"`
	Settings         models.Settings       `json:"settings"`
	Catalog          []models.CatalogEntry `json:"catalog,omitempty"`
	CatalogFetchedAt *time.Time            `json:"catalogFetchedAt"`
}

// save writes the full snapshot wholesale, via a temp file and rename
// so a crash mid-write cannot clobber the previous snapshot.
// Persistence failures are logged and swallowed so in-memory state
// stays usable even when durability fails. Callers must hold the store
// lock.
func (s *Store) save() {
	if s.path == "" {
		return
	}

	data, err := json.MarshalIndent(s.snapshotLocked(), "", "  ")
	if err != nil {
		log.Errorf("marshal snapshot: %v", err)
		return
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		log.Errorf("create snapshot directory: %v", err)
		return
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		log.Errorf("write snapshot: %v", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		log.Errorf("replace snapshot: %v", err)
		_ = os.Remove(tmp)
	}
}

// snapshotLocked assembles a Snapshot from current state. Callers must
// hold the store lock.
func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Schema:           version.SnapshotSchema,
		Stats:            s.stats,
		Characters:       s.characters,
		Resources:        s.resources,
		Gear:             s.gear,
		Tasks:            s.tasks,
		Milestones:       s.milestones,
		Settings:         s.settings,
		Catalog:          s.catalog,
		CatalogFetchedAt: s.catalogFetchedAt,
	}
}

// restore loads the snapshot from disk. A missing file, parse failure,
// or incompatible schema silently yields the sample dataset.
func restore(path string) (Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, fmt.Errorf("read snapshot: %w", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("parse snapshot: %w", err)
	}

	if !version.SnapshotCompatible(snap.Schema) {
		return Snapshot{}, fmt.Errorf("snapshot schema %q is incompatible with %s", snap.Schema, version.SnapshotSchema)
	}

	return snap, nil
}

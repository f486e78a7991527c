package store

import (
	"encoding/json"
	"fmt"

	"github.com/ember-forge/warband/internal/models"
)

// Export serializes the entire store snapshot as indented JSON, ready
// to be written to a backup file or copied to the clipboard.
func (s *Store) Export() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.snapshotLocked(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	return data, nil
}

// importPayload is the subset of keys Import will merge. Any other
// top-level key in the pasted JSON is silently ignored. The legacy
// "champions" key from older exports is accepted as an alias for
// "characters".
type importPayload struct {
	Stats      *models.Stats         `json:"stats"`
	Characters []models.Character    `json:"characters"`
	Champions  []models.Character    `json:"champions"`
	Resources  models.ResourceLedger `json:"resources"`
	Tasks      []models.Task         `json:"tasks"`
	Milestones []models.Milestone    `json:"milestones"`
	Settings   *models.Settings      `json:"settings"`
}

// Import parses pasted JSON text and merges the allow-listed
// collections into the live store. On parse failure the state is left
// untouched and a user-facing error is returned.
func (s *Store) Import(text string) error {
	var payload importPayload
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return fmt.Errorf("import failed: ensure the JSON is valid: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if payload.Stats != nil {
		s.stats = *payload.Stats
	}
	switch {
	case payload.Characters != nil:
		s.characters = payload.Characters
	case payload.Champions != nil:
		s.characters = payload.Champions
	}
	if payload.Resources != nil {
		s.resources = payload.Resources
	}
	if payload.Tasks != nil {
		s.tasks = payload.Tasks
	}
	if payload.Milestones != nil {
		s.milestones = payload.Milestones
	}
	if payload.Settings != nil {
		s.settings = *payload.Settings
	}

	s.save()
	return nil
}

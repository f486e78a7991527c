// Package store is the single source of truth for all locally tracked
// collections. Every mutation updates in-memory state and persists the
// full snapshot; restoration happens once at construction.
//
// Domain-rule violations (empty or duplicate names) are reported as
// structured results, never errors, so callers can render inline
// feedback. No operation returns an error under normal input; malformed
// numeric input is coerced rather than rejected.
package store

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ember-forge/warband/internal/ident"
	"github.com/ember-forge/warband/internal/log"
	"github.com/ember-forge/warband/internal/models"
)

// Failure reasons returned by AddCharacter.
const (
	ReasonInvalid   = "invalid"
	ReasonDuplicate = "duplicate"
)

// Store holds all domain collections. Construct with New; the zero
// value is not usable.
type Store struct {
	mu sync.RWMutex

	path     string
	fallback []models.CatalogEntry
	restored bool

	stats            models.Stats
	characters       []models.Character
	resources        models.ResourceLedger
	gear             models.GearInventory
	tasks            []models.Task
	milestones       []models.Milestone
	settings         models.Settings
	catalog          []models.CatalogEntry
	catalogFetchedAt *time.Time
}

// Options configures a Store.
type Options struct {
	// Path of the snapshot document. Empty disables persistence
	// (useful for tests).
	Path string

	// FallbackCatalog seeds the cached catalog and is restored by
	// ClearCatalog and ResetAll.
	FallbackCatalog []models.CatalogEntry
}

// New creates a store, restoring the snapshot at opts.Path when one
// exists. A missing, unparseable, or schema-incompatible snapshot
// silently yields the built-in sample dataset.
func New(opts Options) *Store {
	s := &Store{
		path:     opts.Path,
		fallback: opts.FallbackCatalog,
	}
	s.loadSamples()

	if opts.Path != "" {
		if snap, err := restore(opts.Path); err == nil {
			s.apply(snap)
			s.restored = true
		} else {
			log.Printf("store: starting from sample data (%v)\n", err)
		}
	}

	return s
}

// loadSamples resets every collection to the built-in sample dataset.
func (s *Store) loadSamples() {
	s.stats = sampleStats()
	s.characters = sampleCharacters()
	s.resources = sampleResources()
	s.gear = sampleGear()
	s.tasks = sampleTasks()
	s.milestones = sampleMilestones()
	s.settings = models.Settings{}
	s.catalog = append([]models.CatalogEntry(nil), s.fallback...)
	s.catalogFetchedAt = nil
}

// apply overwrites state from a restored snapshot. Missing collections
// keep their sample defaults.
func (s *Store) apply(snap Snapshot) {
	s.stats = snap.Stats
	if snap.Characters != nil {
		s.characters = snap.Characters
	}
	if snap.Resources != nil {
		s.resources = snap.Resources
	}
	if snap.Gear != nil {
		s.gear = snap.Gear
	}
	if snap.Tasks != nil {
		s.tasks = snap.Tasks
	}
	if snap.Milestones != nil {
		s.milestones = snap.Milestones
	}
	s.settings = snap.Settings
	if len(snap.Catalog) > 0 {
		s.catalog = snap.Catalog
		s.catalogFetchedAt = snap.CatalogFetchedAt
	}
}

// Restored reports whether a persisted snapshot was loaded at
// construction, as opposed to starting from the sample dataset.
func (s *Store) Restored() bool {
	return s.restored
}

// Snapshot returns a copy of the full current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshotLocked()
	snap.Characters = append([]models.Character(nil), snap.Characters...)
	snap.Tasks = append([]models.Task(nil), snap.Tasks...)
	snap.Milestones = append([]models.Milestone(nil), snap.Milestones...)
	snap.Catalog = append([]models.CatalogEntry(nil), snap.Catalog...)
	snap.Resources = copyCounts(snap.Resources)
	snap.Gear = copyCounts(snap.Gear)
	return snap
}

// AddCharacterInput is the payload for AddCharacter. Level is raw user
// input; non-numeric values default to level 1.
type AddCharacterInput struct {
	Name    string
	Faction string
	Type    string
	Rarity  string
	Level   string
}

// AddResult reports the outcome of AddCharacter.
type AddResult struct {
	Success   bool
	Reason    string
	Character *models.Character
}

// AddCharacter validates, clamps, and appends a new roster entry.
// Fails with ReasonInvalid on an empty name and ReasonDuplicate when an
// existing name matches case-insensitively.
func (s *Store) AddCharacter(input AddCharacterInput) AddResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return AddResult{Success: false, Reason: ReasonInvalid}
	}

	for _, existing := range s.characters {
		if strings.EqualFold(existing.Name, name) {
			return AddResult{Success: false, Reason: ReasonDuplicate}
		}
	}

	level, ok := coerceLevel(input.Level)
	if !ok {
		level = models.MinLevel
	}

	character := models.Character{
		ID:      ident.Default(),
		Name:    name,
		Faction: input.Faction,
		Type:    input.Type,
		Rarity:  input.Rarity,
		Level:   level,
	}
	s.characters = append(s.characters, character)
	s.save()

	return AddResult{Success: true, Character: &character}
}

// CharacterUpdate carries partial fields for UpdateCharacter. Nil
// fields are left untouched. Level is raw user input; a non-numeric
// value discards the level change.
type CharacterUpdate struct {
	Name    *string
	Faction *string
	Type    *string
	Rarity  *string
	Level   *string
	GearSet *string
	Notes   *string
}

// UpdateCharacter merges partial fields into the matching record,
// re-clamping the level. No-op when the id is unknown.
func (s *Store) UpdateCharacter(id string, update CharacterUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.characters {
		if s.characters[i].ID != id {
			continue
		}
		c := &s.characters[i]
		if update.Name != nil {
			c.Name = *update.Name
		}
		if update.Faction != nil {
			c.Faction = *update.Faction
		}
		if update.Type != nil {
			c.Type = *update.Type
		}
		if update.Rarity != nil {
			c.Rarity = *update.Rarity
		}
		if update.Level != nil {
			if level, ok := coerceLevel(*update.Level); ok {
				c.Level = level
			}
		}
		if update.GearSet != nil {
			c.GearSet = *update.GearSet
		}
		if update.Notes != nil {
			c.Notes = *update.Notes
		}
		s.save()
		return
	}
}

// DeleteCharacter removes the matching record. No-op when absent.
func (s *Store) DeleteCharacter(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.characters {
		if s.characters[i].ID == id {
			s.characters = append(s.characters[:i], s.characters[i+1:]...)
			s.save()
			return
		}
	}
}

// Characters returns a copy of the roster.
func (s *Store) Characters() []models.Character {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Character(nil), s.characters...)
}

// UpdateResources shallow-merges counts into the resource ledger.
// Negative counts clamp to 0 at this boundary regardless of caller
// discipline.
func (s *Store) UpdateResources(partial map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, count := range partial {
		s.resources[key] = clampCount(count)
	}
	s.save()
}

// UpdateGear shallow-merges counts into the gear inventory with the
// same clamping rule as UpdateResources.
func (s *Store) UpdateGear(partial map[string]int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, count := range partial {
		s.gear[key] = clampCount(count)
	}
	s.save()
}

// Resources returns a copy of the resource ledger.
func (s *Store) Resources() models.ResourceLedger {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCounts(s.resources)
}

// Gear returns a copy of the gear inventory.
func (s *Store) Gear() models.GearInventory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCounts(s.gear)
}

// TaskInput is the payload for AddTask.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	Status      string
}

// AddTask appends a new task. Status defaults to the todo lane when
// empty or unknown.
func (s *Store) AddTask(input TaskInput) models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if !models.IsValidStatus(status) {
		status = models.StatusTodo
	}

	task := models.Task{
		ID:          ident.Default(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		Status:      status,
	}
	s.tasks = append(s.tasks, task)
	s.save()
	return task
}

// TaskUpdate carries partial fields for UpdateTask.
type TaskUpdate struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *string
	Status      *string
}

// UpdateTask merges partial fields into the matching task. No-op when
// the id is unknown.
func (s *Store) UpdateTask(id string, update TaskUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		t := &s.tasks[i]
		if update.Title != nil {
			t.Title = *update.Title
		}
		if update.Description != nil {
			t.Description = *update.Description
		}
		if update.Priority != nil {
			t.Priority = *update.Priority
		}
		if update.DueDate != nil {
			t.DueDate = *update.DueDate
		}
		if update.Status != nil && models.IsValidStatus(*update.Status) {
			t.Status = *update.Status
		}
		s.save()
		return
	}
}

// DeleteTask removes the matching task. No-op when absent.
func (s *Store) DeleteTask(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			s.save()
			return
		}
	}
}

// MoveTask moves a task to another lane. No-op when the id is unknown
// or the status is not one of the board lanes.
func (s *Store) MoveTask(id, status string) {
	if !models.IsValidStatus(status) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Status = status
			s.save()
			return
		}
	}
}

// Tasks returns a copy of all tasks.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.tasks...)
}

// MilestoneInput is the payload for AddMilestone.
type MilestoneInput struct {
	Name        string
	Description string
	TargetDate  string
	Progress    int
}

// AddMilestone appends a new milestone with progress clamped to
// [0, 100].
func (s *Store) AddMilestone(input MilestoneInput) models.Milestone {
	s.mu.Lock()
	defer s.mu.Unlock()

	milestone := models.Milestone{
		ID:          ident.Default(),
		Name:        input.Name,
		Description: input.Description,
		TargetDate:  input.TargetDate,
		Progress:    models.ClampProgress(input.Progress),
	}
	s.milestones = append(s.milestones, milestone)
	s.save()
	return milestone
}

// MilestoneUpdate carries partial fields for UpdateMilestone.
type MilestoneUpdate struct {
	Name        *string
	Description *string
	TargetDate  *string
	Progress    *int
}

// UpdateMilestone merges partial fields into the matching milestone,
// clamping progress. No-op when the id is unknown.
func (s *Store) UpdateMilestone(id string, update MilestoneUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.milestones {
		if s.milestones[i].ID != id {
			continue
		}
		m := &s.milestones[i]
		if update.Name != nil {
			m.Name = *update.Name
		}
		if update.Description != nil {
			m.Description = *update.Description
		}
		if update.TargetDate != nil {
			m.TargetDate = *update.TargetDate
		}
		if update.Progress != nil {
			m.Progress = models.ClampProgress(*update.Progress)
		}
		s.save()
		return
	}
}

// DeleteMilestone removes the matching milestone. No-op when absent.
func (s *Store) DeleteMilestone(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.milestones {
		if s.milestones[i].ID == id {
			s.milestones = append(s.milestones[:i], s.milestones[i+1:]...)
			s.save()
			return
		}
	}
}

// NudgeMilestone advances a milestone's progress by the fixed step,
// capped at 100.
func (s *Store) NudgeMilestone(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.milestones {
		if s.milestones[i].ID == id {
			s.milestones[i].Progress = models.ClampProgress(s.milestones[i].Progress + models.ProgressStep)
			s.save()
			return
		}
	}
}

// Milestones returns a copy of all milestones.
func (s *Store) Milestones() []models.Milestone {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Milestone(nil), s.milestones...)
}

// SetCatalog replaces the cached external catalog. A nil fetchedAt
// defaults to the current time.
func (s *Store) SetCatalog(entries []models.CatalogEntry, fetchedAt *time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = append([]models.CatalogEntry(nil), entries...)
	if fetchedAt == nil {
		now := time.Now()
		s.catalogFetchedAt = &now
	} else {
		s.catalogFetchedAt = fetchedAt
	}
	s.save()
}

// ClearCatalog restores the bundled fallback catalog with a nil
// timestamp.
func (s *Store) ClearCatalog() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.catalog = append([]models.CatalogEntry(nil), s.fallback...)
	s.catalogFetchedAt = nil
	s.save()
}

// Catalog returns a copy of the cached catalog.
func (s *Store) Catalog() []models.CatalogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CatalogEntry(nil), s.catalog...)
}

// CatalogFetchedAt returns when the cached catalog was last fetched,
// or nil for the bundled fallback.
func (s *Store) CatalogFetchedAt() *time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalogFetchedAt
}

// StatsUpdate carries partial fields for UpdateStats.
type StatsUpdate struct {
	TotalCharacters *int
	TotalSixStar    *int
}

// UpdateStats merges partial fields into the stats block.
func (s *Store) UpdateStats(update StatsUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.TotalCharacters != nil {
		s.stats.TotalCharacters = *update.TotalCharacters
	}
	if update.TotalSixStar != nil {
		s.stats.TotalSixStar = *update.TotalSixStar
	}
	s.save()
}

// RecomputeStats derives the stats block from the current roster.
func (s *Store) RecomputeStats() models.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	sixStar := 0
	for _, c := range s.characters {
		if c.Level == models.MaxLevel {
			sixStar++
		}
	}
	s.stats = models.Stats{
		TotalCharacters: len(s.characters),
		TotalSixStar:    sixStar,
	}
	s.save()
	return s.stats
}

// Stats returns the current stats block.
func (s *Store) Stats() models.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// ToggleDarkMode flips the dark-mode setting and returns the new value.
func (s *Store) ToggleDarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.DarkMode = !s.settings.DarkMode
	s.save()
	return s.settings.DarkMode
}

// SetDarkMode sets the dark-mode setting explicitly. Used by the
// composition root when it observes the ambient color-scheme signal.
func (s *Store) SetDarkMode(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.settings.DarkMode == enabled {
		return
	}
	s.settings.DarkMode = enabled
	s.save()
}

// Settings returns the current settings.
func (s *Store) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// ResetAll restores every collection to the built-in sample dataset,
// discarding all user edits.
func (s *Store) ResetAll() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadSamples()
	s.save()
}

// coerceLevel parses raw numeric input, rounds it, and clamps it into
// the level bounds. Returns false for non-numeric input.
func coerceLevel(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return models.ClampLevel(int(math.Round(f))), true
}

// CoerceCount parses raw numeric input into a non-negative count.
// Non-numeric and negative input coerce to 0.
func CoerceCount(raw string) int {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return clampCount(int(math.Round(f)))
}

func clampCount(count int) int {
	if count < 0 {
		return 0
	}
	return count
}

func copyCounts(m map[string]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

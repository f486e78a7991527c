// Package roster adapts the remote record store into the synced
// roster surface: joined reads, clamped writes, and user-safe errors.
package roster

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ember-forge/warband/internal/catalog"
	"github.com/ember-forge/warband/internal/log"
	"github.com/ember-forge/warband/internal/models"
	"github.com/ember-forge/warband/internal/remote"
)

// Generic user-facing failure messages. Backend detail goes to the
// log, never to the user.
var (
	ErrFetchFailed  = errors.New("could not load your roster, please try again")
	ErrSaveFailed   = errors.New("could not save the character, please try again")
	ErrDeleteFailed = errors.New("could not remove the character, please try again")
	ErrNotInCatalog = errors.New("character not found in the catalog")
)

// Adapter mediates between the UI and a remote.RecordStore. It keeps
// the last fetched roster, an advisory processing flag for UI
// submission serialization, and a fetch generation counter so a stale
// fetch can never overwrite a newer one.
type Adapter struct {
	store remote.RecordStore

	mu      sync.RWMutex
	entries []models.RosterEntry

	processing atomic.Bool
	generation atomic.Uint64
}

// NewAdapter creates a roster adapter over the given record store.
func NewAdapter(store remote.RecordStore) *Adapter {
	return &Adapter{store: store}
}

// Processing reports whether a submission is in flight. Advisory: the
// UI uses it to disable inputs, the adapter itself stays safe either
// way.
func (a *Adapter) Processing() bool {
	return a.processing.Load()
}

// Entries returns the most recently fetched roster.
func (a *Adapter) Entries() []models.RosterEntry {
	a.mu.RLock()
	defer a.mu.RUnlock()

	out := make([]models.RosterEntry, len(a.entries))
	copy(out, a.entries)
	return out
}

// FetchRoster loads roster rows, joins them with their catalog
// entries, sanitizes numeric fields, and sorts by character name.
// Rows referencing a missing catalog entry are dropped. The last
// completed fetch wins: a fetch that finishes after a newer one
// started discards its result.
func (a *Adapter) FetchRoster(ctx context.Context) ([]models.RosterEntry, error) {
	gen := a.generation.Add(1)

	records, err := a.store.ListRoster(ctx)
	if err != nil {
		log.Errorf("list roster: %v", err)
		return nil, ErrFetchFailed
	}

	ids := make([]string, 0, len(records))
	for _, record := range records {
		ids = append(ids, record.CharacterID)
	}

	refs, err := a.store.GetCatalogByIDs(ctx, ids)
	if err != nil {
		log.Errorf("load catalog refs: %v", err)
		return nil, ErrFetchFailed
	}
	byID := make(map[string]models.CatalogRecord, len(refs))
	for _, ref := range refs {
		byID[ref.ID] = ref
	}

	entries := make([]models.RosterEntry, 0, len(records))
	for _, record := range records {
		ref, ok := byID[record.CharacterID]
		if !ok {
			log.Warnf("roster record %s references missing catalog entry %s", record.ID, record.CharacterID)
			continue
		}
		entries = append(entries, joinEntry(record, ref))
	}

	sort.Slice(entries, func(i, j int) bool {
		return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
	})

	// A newer fetch started while this one ran; keep its result out of
	// the cache but still hand it to the caller.
	if a.generation.Load() == gen {
		a.mu.Lock()
		if a.generation.Load() == gen {
			a.entries = entries
		}
		a.mu.Unlock()
	}

	return entries, nil
}

// AddInput carries the fields for adding a roster character.
type AddInput struct {
	CatalogID      string
	Level          int
	AscensionLevel int
	SoulLevel      int
}

// AddCharacter upserts a roster record for the given catalog entry and
// returns the refreshed roster. Re-adding an already rostered
// character overwrites its record.
func (a *Adapter) AddCharacter(ctx context.Context, input AddInput) ([]models.RosterEntry, error) {
	a.processing.Store(true)
	defer a.processing.Store(false)

	refs, err := a.store.GetCatalogByIDs(ctx, []string{input.CatalogID})
	if err != nil {
		log.Errorf("verify catalog entry %s: %v", input.CatalogID, err)
		return nil, ErrSaveFailed
	}
	if len(refs) == 0 {
		return nil, ErrNotInCatalog
	}
	ref := refs[0]

	record := models.RosterRecord{
		CharacterID:    ref.ID,
		Level:          models.ClampLevel(input.Level),
		AscensionLevel: models.ClampStars(input.AscensionLevel),
		SoulLevel:      models.ClampStars(input.SoulLevel),
		Rarity:         ref.Rarity,
		Timestamp:      time.Now().UTC(),
	}
	if err := a.store.UpsertRoster(ctx, record); err != nil {
		log.Errorf("upsert roster %s: %v", ref.ID, err)
		return nil, ErrSaveFailed
	}

	return a.FetchRoster(ctx)
}

// UpdateInput carries partial changes for a rostered character. Nil
// fields are left untouched.
type UpdateInput struct {
	Level          *int
	AscensionLevel *int
	SoulLevel      *int
}

// UpdateCharacter applies clamped changes to the roster record keyed
// by catalog id and returns the refreshed roster.
func (a *Adapter) UpdateCharacter(ctx context.Context, catalogID string, input UpdateInput) ([]models.RosterEntry, error) {
	a.processing.Store(true)
	defer a.processing.Store(false)

	changes := remote.RosterChanges{}
	if input.Level != nil {
		level := models.ClampLevel(*input.Level)
		changes.Level = &level
	}
	if input.AscensionLevel != nil {
		stars := models.ClampStars(*input.AscensionLevel)
		changes.AscensionLevel = &stars
	}
	if input.SoulLevel != nil {
		stars := models.ClampStars(*input.SoulLevel)
		changes.SoulLevel = &stars
	}

	if err := a.store.UpdateRoster(ctx, catalogID, changes); err != nil {
		if errors.Is(err, remote.ErrNotFound) {
			return nil, ErrNotInCatalog
		}
		log.Errorf("update roster %s: %v", catalogID, err)
		return nil, ErrSaveFailed
	}

	return a.FetchRoster(ctx)
}

// DeleteCharacter removes the roster record keyed by catalog id and
// returns the refreshed roster.
func (a *Adapter) DeleteCharacter(ctx context.Context, catalogID string) ([]models.RosterEntry, error) {
	a.processing.Store(true)
	defer a.processing.Store(false)

	if err := a.store.DeleteRoster(ctx, catalogID); err != nil && !errors.Is(err, remote.ErrNotFound) {
		log.Errorf("delete roster %s: %v", catalogID, err)
		return nil, ErrDeleteFailed
	}

	return a.FetchRoster(ctx)
}

// SearchCatalog runs a name-substring search against the remote
// catalog, with "did you mean" suggestions when nothing matches.
func (a *Adapter) SearchCatalog(ctx context.Context, query string) ([]models.CatalogRecord, []string, error) {
	records, err := a.store.SearchCatalog(ctx, query)
	if err != nil {
		log.Errorf("search catalog %q: %v", query, err)
		return nil, nil, ErrFetchFailed
	}
	if len(records) > 0 {
		return records, nil, nil
	}

	// No substring match; offer near-miss names from the bundled
	// catalog so a typo still gets a useful hint.
	return nil, catalog.Suggest(catalog.Fallback(), query, 3), nil
}

func joinEntry(record models.RosterRecord, ref models.CatalogRecord) models.RosterEntry {
	return models.RosterEntry{
		RecordID:       record.ID,
		CharacterID:    record.CharacterID,
		Name:           ref.Name,
		Faction:        ref.Faction,
		Type:           ref.Type,
		Affinity:       ref.Affinity,
		Rarity:         ref.Rarity,
		ImageURL:       ref.ImageURL,
		Level:          models.ClampLevel(record.Level),
		AscensionLevel: models.ClampStars(record.AscensionLevel),
		SoulLevel:      models.ClampStars(record.SoulLevel),
		UpdatedAt:      record.UpdatedAt,
	}
}

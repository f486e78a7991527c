package roster

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-forge/warband/internal/models"
	"github.com/ember-forge/warband/internal/remote"
)

func newTestAdapter(t *testing.T) *Adapter {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.db")
	store, err := remote.NewLocalStore(remote.DefaultLocalConfig(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.SeedCatalog(context.Background(), []models.CatalogEntry{
		{ID: "cat-1", Name: "Arbiter", Faction: "High Elves", Type: "Support", Rarity: "Legendary"},
		{ID: "cat-2", Name: "Kael", Faction: "Dark Elves", Type: "Attack", Rarity: "Rare"},
		{ID: "cat-3", Name: "Zargala", Faction: "Orcs", Type: "Attack", Rarity: "Epic"},
	}))

	return NewAdapter(store)
}

func TestAddCharacterJoinsCatalogFields(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	entries, err := adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-2", Level: 40, AscensionLevel: 4})
	require.NoError(t, err)
	require.Len(t, entries, 1)

	entry := entries[0]
	assert.Equal(t, "Kael", entry.Name)
	assert.Equal(t, "Dark Elves", entry.Faction)
	assert.Equal(t, "Rare", entry.Rarity)
	assert.Equal(t, 40, entry.Level)
	assert.Equal(t, 4, entry.AscensionLevel)
}

func TestAddCharacterClampsNumericFields(t *testing.T) {
	adapter := newTestAdapter(t)

	entries, err := adapter.AddCharacter(context.Background(), AddInput{
		CatalogID:      "cat-1",
		Level:          9999,
		AscensionLevel: 42,
		SoulLevel:      -3,
	})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.MaxLevel, entries[0].Level)
	assert.Equal(t, models.MaxStars, entries[0].AscensionLevel)
	assert.Equal(t, models.MinStars, entries[0].SoulLevel)
}

func TestAddCharacterUnknownCatalogID(t *testing.T) {
	adapter := newTestAdapter(t)

	_, err := adapter.AddCharacter(context.Background(), AddInput{CatalogID: "ghost", Level: 10})
	assert.ErrorIs(t, err, ErrNotInCatalog)
}

func TestReAddOverwritesExistingRecord(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-2", Level: 10})
	require.NoError(t, err)
	entries, err := adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-2", Level: 50})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, 50, entries[0].Level)
}

func TestFetchRosterSortsByName(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-3", Level: 1})
	require.NoError(t, err)
	_, err = adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-1", Level: 1})
	require.NoError(t, err)
	entries, err := adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-2", Level: 1})
	require.NoError(t, err)

	require.Len(t, entries, 3)
	assert.Equal(t, "Arbiter", entries[0].Name)
	assert.Equal(t, "Kael", entries[1].Name)
	assert.Equal(t, "Zargala", entries[2].Name)
}

func TestUpdateCharacterPartialChange(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-2", Level: 10, AscensionLevel: 2})
	require.NoError(t, err)

	level := 200
	entries, err := adapter.UpdateCharacter(ctx, "cat-2", UpdateInput{Level: &level})
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, models.MaxLevel, entries[0].Level)
	assert.Equal(t, 2, entries[0].AscensionLevel)
}

func TestUpdateCharacterMissing(t *testing.T) {
	adapter := newTestAdapter(t)

	level := 10
	_, err := adapter.UpdateCharacter(context.Background(), "ghost", UpdateInput{Level: &level})
	assert.ErrorIs(t, err, ErrNotInCatalog)
}

func TestDeleteCharacter(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-1", Level: 1})
	require.NoError(t, err)

	entries, err := adapter.DeleteCharacter(ctx, "cat-1")
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Deleting an absent record is not an error for the caller.
	entries, err = adapter.DeleteCharacter(ctx, "cat-1")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestEntriesReturnsCachedCopy(t *testing.T) {
	adapter := newTestAdapter(t)
	ctx := context.Background()

	_, err := adapter.AddCharacter(ctx, AddInput{CatalogID: "cat-1", Level: 1})
	require.NoError(t, err)

	cached := adapter.Entries()
	require.Len(t, cached, 1)
	cached[0].Name = "mutated"
	assert.Equal(t, "Arbiter", adapter.Entries()[0].Name)
}

func TestProcessingFlagClearsAfterCall(t *testing.T) {
	adapter := newTestAdapter(t)

	_, err := adapter.AddCharacter(context.Background(), AddInput{CatalogID: "cat-1", Level: 1})
	require.NoError(t, err)
	assert.False(t, adapter.Processing())
}

func TestSearchCatalogSuggestionsOnMiss(t *testing.T) {
	adapter := newTestAdapter(t)

	records, suggestions, err := adapter.SearchCatalog(context.Background(), "Kael")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, suggestions)

	records, suggestions, err = adapter.SearchCatalog(context.Background(), "Kaal")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Contains(t, suggestions, "Kael")
}

func TestDebouncedSearchDeliversLatestQuery(t *testing.T) {
	adapter := newTestAdapter(t)
	searcher := NewSearcher(adapter, 20*time.Millisecond)
	defer searcher.Stop()
	ctx := context.Background()

	searcher.Search(ctx, "arb")
	searcher.Search(ctx, "kael")

	select {
	case result := <-searcher.Results():
		require.NoError(t, result.Err)
		assert.Equal(t, "kael", result.Query)
		require.Len(t, result.Records, 1)
		assert.Equal(t, "Kael", result.Records[0].Name)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for search result")
	}
}

func TestDebouncedSearchEmptyQueryCancels(t *testing.T) {
	adapter := newTestAdapter(t)
	searcher := NewSearcher(adapter, 20*time.Millisecond)
	defer searcher.Stop()
	ctx := context.Background()

	searcher.Search(ctx, "kael")
	searcher.Search(ctx, "")

	select {
	case result := <-searcher.Results():
		t.Fatalf("unexpected result for cancelled search: %+v", result)
	case <-time.After(100 * time.Millisecond):
	}
}

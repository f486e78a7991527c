package remote

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-forge/warband/internal/models"
)

func newTestStore(t *testing.T) *LocalStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "records.db")
	store, err := NewLocalStore(DefaultLocalConfig(path))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func seedTestCatalog(t *testing.T, store *LocalStore) {
	t.Helper()

	err := store.SeedCatalog(context.Background(), []models.CatalogEntry{
		{ID: "cat-1", Name: "Arbiter", Faction: "High Elves", Type: "Support", Rarity: "Legendary"},
		{ID: "cat-2", Name: "Kael", Faction: "Dark Elves", Type: "Attack", Rarity: "Rare"},
		{ID: "cat-3", Name: "Kaelina", Faction: "Dark Elves", Type: "Support", Rarity: "Epic"},
	})
	require.NoError(t, err)
}

func TestSearchCatalog(t *testing.T) {
	store := newTestStore(t)
	seedTestCatalog(t, store)
	ctx := context.Background()

	records, err := store.SearchCatalog(ctx, "kael")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Kael", records[0].Name)
	assert.Equal(t, "Kaelina", records[1].Name)

	records, err = store.SearchCatalog(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = store.SearchCatalog(ctx, "   ")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestGetCatalogByIDs(t *testing.T) {
	store := newTestStore(t)
	seedTestCatalog(t, store)

	records, err := store.GetCatalogByIDs(context.Background(), []string{"cat-1", "cat-3", "missing"})
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = store.GetCatalogByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUpsertRosterOverwritesByCharacterID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertRoster(ctx, models.RosterRecord{
		CharacterID: "cat-2",
		Level:       10,
		Rarity:      "Rare",
	}))
	require.NoError(t, store.UpsertRoster(ctx, models.RosterRecord{
		CharacterID: "cat-2",
		Level:       25,
		Rarity:      "Rare",
	}))

	records, err := store.ListRoster(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 25, records[0].Level)
}

func TestListRosterOrdersByMostRecentUpdate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertRoster(ctx, models.RosterRecord{CharacterID: "cat-1", Level: 1}))
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, store.UpsertRoster(ctx, models.RosterRecord{CharacterID: "cat-2", Level: 1}))
	time.Sleep(10 * time.Millisecond)

	level := 40
	require.NoError(t, store.UpdateRoster(ctx, "cat-1", RosterChanges{Level: &level}))

	records, err := store.ListRoster(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "cat-1", records[0].CharacterID)
	assert.Equal(t, 40, records[0].Level)
}

func TestUpdateRosterPartialChanges(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertRoster(ctx, models.RosterRecord{
		CharacterID:    "cat-1",
		Level:          30,
		AscensionLevel: 4,
		Rarity:         "Legendary",
	}))

	ascension := 6
	require.NoError(t, store.UpdateRoster(ctx, "cat-1", RosterChanges{AscensionLevel: &ascension}))

	records, err := store.ListRoster(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 30, records[0].Level)
	assert.Equal(t, 6, records[0].AscensionLevel)
	assert.Equal(t, "Legendary", records[0].Rarity)
}

func TestUpdateRosterMissingRecord(t *testing.T) {
	store := newTestStore(t)

	level := 10
	err := store.UpdateRoster(context.Background(), "ghost", RosterChanges{Level: &level})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateRosterEmptyChangesIsNoOp(t *testing.T) {
	store := newTestStore(t)

	err := store.UpdateRoster(context.Background(), "ghost", RosterChanges{})
	assert.NoError(t, err)
}

func TestDeleteRoster(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.UpsertRoster(ctx, models.RosterRecord{CharacterID: "cat-1"}))
	require.NoError(t, store.DeleteRoster(ctx, "cat-1"))

	records, err := store.ListRoster(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	assert.ErrorIs(t, store.DeleteRoster(ctx, "cat-1"), ErrNotFound)
}

func TestSeedCatalogReplacesContents(t *testing.T) {
	store := newTestStore(t)
	seedTestCatalog(t, store)
	ctx := context.Background()

	require.NoError(t, store.SeedCatalog(ctx, []models.CatalogEntry{
		{Name: "Galek", Faction: "Orcs", Type: "Attack", Rarity: "Rare"},
	}))

	records, err := store.SearchCatalog(ctx, "kael")
	require.NoError(t, err)
	assert.Empty(t, records)

	records, err = store.SearchCatalog(ctx, "galek")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.NotEmpty(t, records[0].ID)
}

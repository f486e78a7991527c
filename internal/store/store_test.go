package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ember-forge/warband/internal/models"
)

// testStore creates an in-memory store pre-loaded with sample data.
func testStore(t *testing.T) *Store {
	t.Helper()
	return New(Options{})
}

func TestAddCharacter(t *testing.T) {
	s := testStore(t)

	result := s.AddCharacter(AddCharacterInput{
		Name:    "  Apothecary  ",
		Faction: "High Elves",
		Type:    "Support",
		Rarity:  models.RarityRare,
		Level:   "40",
	})

	if !result.Success {
		t.Fatalf("AddCharacter failed with reason %q", result.Reason)
	}
	if result.Character.Name != "Apothecary" {
		t.Errorf("name = %q, want trimmed %q", result.Character.Name, "Apothecary")
	}
	if result.Character.Level != 40 {
		t.Errorf("level = %d, want 40", result.Character.Level)
	}
	if result.Character.ID == "" {
		t.Error("expected a generated id")
	}
}

func TestAddCharacterLevelClamping(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  int
	}{
		{"above max clamps to 60", "9999", 60},
		{"below min clamps to 1", "-5", 1},
		{"non-numeric defaults to 1", "abc", 1},
		{"empty defaults to 1", "", 1},
		{"float rounds", "39.6", 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStore(t)
			result := s.AddCharacter(AddCharacterInput{Name: "Test " + tt.name, Level: tt.level})
			if !result.Success {
				t.Fatalf("AddCharacter failed: %q", result.Reason)
			}
			if result.Character.Level != tt.want {
				t.Errorf("level = %d, want %d", result.Character.Level, tt.want)
			}
		})
	}
}

func TestAddCharacterRejectsEmptyName(t *testing.T) {
	s := testStore(t)
	before := len(s.Characters())

	result := s.AddCharacter(AddCharacterInput{Name: "   "})

	if result.Success || result.Reason != ReasonInvalid {
		t.Errorf("result = %+v, want invalid failure", result)
	}
	if len(s.Characters()) != before {
		t.Error("roster should be unchanged after rejected add")
	}
}

func TestAddCharacterRejectsCaseInsensitiveDuplicate(t *testing.T) {
	s := testStore(t)
	before := s.Characters()

	// Sample data contains "Arbiter".
	result := s.AddCharacter(AddCharacterInput{Name: "arbiter", Level: "10"})

	if result.Success || result.Reason != ReasonDuplicate {
		t.Errorf("result = %+v, want duplicate failure", result)
	}
	after := s.Characters()
	if len(after) != len(before) {
		t.Errorf("roster length changed from %d to %d", len(before), len(after))
	}
}

func TestUpdateCharacterLevel(t *testing.T) {
	s := testStore(t)
	result := s.AddCharacter(AddCharacterInput{Name: "Coldheart", Level: "30"})
	id := result.Character.ID

	huge := "9999"
	s.UpdateCharacter(id, CharacterUpdate{Level: &huge})
	if got := findCharacter(t, s, id).Level; got != 60 {
		t.Errorf("level after 9999 update = %d, want 60", got)
	}

	bogus := "abc"
	s.UpdateCharacter(id, CharacterUpdate{Level: &bogus})
	if got := findCharacter(t, s, id).Level; got != 60 {
		t.Errorf("level after non-numeric update = %d, want unchanged 60", got)
	}
}

func TestUpdateCharacterUnknownIDIsNoop(t *testing.T) {
	s := testStore(t)
	before := s.Characters()

	name := "Ghost"
	s.UpdateCharacter("missing", CharacterUpdate{Name: &name})

	after := s.Characters()
	if len(after) != len(before) {
		t.Error("unknown id should not modify the roster")
	}
}

func TestDeleteCharacter(t *testing.T) {
	s := testStore(t)
	result := s.AddCharacter(AddCharacterInput{Name: "Doomed", Level: "1"})

	s.DeleteCharacter(result.Character.ID)

	for _, c := range s.Characters() {
		if c.ID == result.Character.ID {
			t.Error("character should have been deleted")
		}
	}

	// Deleting again is a no-op.
	s.DeleteCharacter(result.Character.ID)
}

func TestUpdateResourcesClampsNegatives(t *testing.T) {
	s := testStore(t)

	s.UpdateResources(map[string]int{
		models.ResourceEnergy: -50,
		models.ResourceGems:   200,
	})

	resources := s.Resources()
	if resources[models.ResourceEnergy] != 0 {
		t.Errorf("energy = %d, want clamped 0", resources[models.ResourceEnergy])
	}
	if resources[models.ResourceGems] != 200 {
		t.Errorf("gems = %d, want 200", resources[models.ResourceGems])
	}
	// Untouched keys survive the merge.
	if resources[models.ResourceSilver] != 2800000 {
		t.Errorf("silver = %d, want sample 2800000", resources[models.ResourceSilver])
	}
}

func TestUpdateGear(t *testing.T) {
	s := testStore(t)

	s.UpdateGear(map[string]int{models.GearSpeedBoots: 12})

	if got := s.Gear()[models.GearSpeedBoots]; got != 12 {
		t.Errorf("speedBoots = %d, want 12", got)
	}
}

func TestAddTaskDefaultsToTodo(t *testing.T) {
	s := testStore(t)
	before := len(s.Tasks())

	task := s.AddTask(TaskInput{Title: "Farm stage 1", Priority: models.PriorityLow})

	if task.Status != models.StatusTodo {
		t.Errorf("status = %q, want %q", task.Status, models.StatusTodo)
	}
	if got := len(s.Tasks()); got != before+1 {
		t.Errorf("task count = %d, want %d", got, before+1)
	}
}

func TestAddTaskKeepsValidStatus(t *testing.T) {
	s := testStore(t)

	task := s.AddTask(TaskInput{Title: "Already going", Status: models.StatusInProgress})

	if task.Status != models.StatusInProgress {
		t.Errorf("status = %q, want provided lane kept", task.Status)
	}
}

func TestMoveTaskChangesOnlyStatus(t *testing.T) {
	s := testStore(t)
	before := s.Tasks()
	target := before[0]

	s.MoveTask(target.ID, models.StatusComplete)

	after := s.Tasks()
	for i, task := range after {
		if task.ID == target.ID {
			if task.Status != models.StatusComplete {
				t.Errorf("status = %q, want complete", task.Status)
			}
			task.Status = before[i].Status
		}
		if task != before[i] {
			t.Errorf("task %q changed beyond status: %+v != %+v", task.ID, task, before[i])
		}
	}
}

func TestMoveTaskRejectsUnknownLane(t *testing.T) {
	s := testStore(t)
	target := s.Tasks()[0]

	s.MoveTask(target.ID, "archived")

	if got := s.Tasks()[0].Status; got != target.Status {
		t.Errorf("status = %q, want unchanged %q", got, target.Status)
	}
}

func TestMilestoneProgressClamping(t *testing.T) {
	s := testStore(t)

	m := s.AddMilestone(MilestoneInput{Name: "Overflow", Progress: 250})
	if m.Progress != 100 {
		t.Errorf("progress = %d, want clamped 100", m.Progress)
	}

	negative := -10
	s.UpdateMilestone(m.ID, MilestoneUpdate{Progress: &negative})
	if got := findMilestone(t, s, m.ID).Progress; got != 0 {
		t.Errorf("progress = %d, want clamped 0", got)
	}
}

func TestNudgeMilestone(t *testing.T) {
	s := testStore(t)
	m := s.AddMilestone(MilestoneInput{Name: "Creep", Progress: 97})

	s.NudgeMilestone(m.ID)

	if got := findMilestone(t, s, m.ID).Progress; got != 100 {
		t.Errorf("progress = %d, want capped 100", got)
	}
}

func TestSetCatalogDefaultsTimestamp(t *testing.T) {
	s := testStore(t)
	entries := []models.CatalogEntry{{Name: "Kael", Faction: "Dark Elves", Type: "Attack", Rarity: models.RarityRare}}

	before := time.Now()
	s.SetCatalog(entries, nil)

	fetchedAt := s.CatalogFetchedAt()
	if fetchedAt == nil || fetchedAt.Before(before) {
		t.Errorf("fetchedAt = %v, want defaulted to now", fetchedAt)
	}
	if len(s.Catalog()) != 1 {
		t.Errorf("catalog length = %d, want 1", len(s.Catalog()))
	}
}

func TestClearCatalogRestoresFallback(t *testing.T) {
	fallback := []models.CatalogEntry{{Name: "Athel", Faction: "Sacred Order", Type: "Attack", Rarity: models.RarityRare}}
	s := New(Options{FallbackCatalog: fallback})

	s.SetCatalog([]models.CatalogEntry{{Name: "Kael", Faction: "Dark Elves", Type: "Attack", Rarity: models.RarityRare}}, nil)
	s.ClearCatalog()

	catalog := s.Catalog()
	if len(catalog) != 1 || catalog[0].Name != "Athel" {
		t.Errorf("catalog = %+v, want fallback restored", catalog)
	}
	if s.CatalogFetchedAt() != nil {
		t.Error("fetchedAt should be nil after clear")
	}
}

func TestToggleDarkMode(t *testing.T) {
	s := testStore(t)

	if s.ToggleDarkMode() != true {
		t.Error("first toggle should enable dark mode")
	}
	if s.ToggleDarkMode() != false {
		t.Error("second toggle should disable dark mode")
	}
}

func TestSetDarkMode(t *testing.T) {
	s := testStore(t)

	s.SetDarkMode(true)
	if !s.Settings().DarkMode {
		t.Error("dark mode should be enabled")
	}

	// Setting the current value is a no-op.
	s.SetDarkMode(true)
	if !s.Settings().DarkMode {
		t.Error("dark mode should stay enabled")
	}

	s.SetDarkMode(false)
	if s.Settings().DarkMode {
		t.Error("dark mode should be disabled")
	}
}

func TestRestoredDistinguishesSnapshotFromSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companion-store.json")

	fresh := New(Options{Path: path})
	if fresh.Restored() {
		t.Error("first run should start from samples")
	}

	fresh.SetDarkMode(true)

	reopened := New(Options{Path: path})
	if !reopened.Restored() {
		t.Error("second run should restore the written snapshot")
	}
	if !reopened.Settings().DarkMode {
		t.Error("restored snapshot should keep the saved setting")
	}
}

func TestResetAll(t *testing.T) {
	s := testStore(t)
	s.AddCharacter(AddCharacterInput{Name: "Transient", Level: "5"})
	s.AddTask(TaskInput{Title: "Transient task"})
	s.ToggleDarkMode()

	s.ResetAll()

	if got := len(s.Characters()); got != 3 {
		t.Errorf("characters = %d, want sample 3", got)
	}
	if got := len(s.Tasks()); got != 3 {
		t.Errorf("tasks = %d, want sample 3", got)
	}
	if s.Settings().DarkMode {
		t.Error("dark mode should reset to false")
	}
}

func TestRecomputeStats(t *testing.T) {
	s := testStore(t)
	s.AddCharacter(AddCharacterInput{Name: "Rookie", Level: "12"})

	stats := s.RecomputeStats()

	if stats.TotalCharacters != 4 {
		t.Errorf("totalCharacters = %d, want 4", stats.TotalCharacters)
	}
	if stats.TotalSixStar != 3 {
		t.Errorf("totalSixStar = %d, want 3 (the sample max-level trio)", stats.TotalSixStar)
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companion-store.json")

	s := New(Options{Path: path})
	s.AddCharacter(AddCharacterInput{Name: "Venomage", Level: "45"})
	s.AddTask(TaskInput{Title: "Persisted task"})

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}

	restored := New(Options{Path: path})

	if len(restored.Characters()) != len(s.Characters()) {
		t.Errorf("restored %d characters, want %d", len(restored.Characters()), len(s.Characters()))
	}
	if len(restored.Tasks()) != len(s.Tasks()) {
		t.Errorf("restored %d tasks, want %d", len(restored.Tasks()), len(s.Tasks()))
	}
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companion-store.json")

	s := New(Options{Path: path})
	s.AddCharacter(AddCharacterInput{Name: "Durable", Level: "20"})

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file should have been renamed away")
	}
}

func TestCorruptSnapshotFallsBackToSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companion-store.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(Options{Path: path})

	if got := len(s.Characters()); got != 3 {
		t.Errorf("characters = %d, want sample 3", got)
	}
}

func TestFutureSchemaFallsBackToSamples(t *testing.T) {
	path := filepath.Join(t.TempDir(), "companion-store.json")
	if err := os.WriteFile(path, []byte(`{"schema":"9.0.0","characters":[{"id":"x","name":"Future","level":1}]}`), 0644); err != nil {
		t.Fatal(err)
	}

	s := New(Options{Path: path})

	for _, c := range s.Characters() {
		if c.Name == "Future" {
			t.Error("incompatible snapshot should not be restored")
		}
	}
}

func TestCoerceCount(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"42", 42},
		{"-3", 0},
		{"abc", 0},
		{"", 0},
		{"7.6", 8},
	}
	for _, tt := range tests {
		if got := CoerceCount(tt.raw); got != tt.want {
			t.Errorf("CoerceCount(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func findCharacter(t *testing.T, s *Store, id string) models.Character {
	t.Helper()
	for _, c := range s.Characters() {
		if c.ID == id {
			return c
		}
	}
	t.Fatalf("character %q not found", id)
	return models.Character{}
}

func findMilestone(t *testing.T, s *Store, id string) models.Milestone {
	t.Helper()
	for _, m := range s.Milestones() {
		if m.ID == id {
			return m
		}
	}
	t.Fatalf("milestone %q not found", id)
	return models.Milestone{}
}

package store

import (
	"reflect"
	"testing"
)

func TestExportImportRoundTrip(t *testing.T) {
	original := New(Options{})
	original.AddCharacter(AddCharacterInput{Name: "Venomage", Faction: "Dark Elves", Type: "Defense", Rarity: "Epic", Level: "50"})
	original.AddTask(TaskInput{Title: "Backup me", Priority: "High"})
	original.AddMilestone(MilestoneInput{Name: "Round trip", Progress: 40})

	exported, err := original.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	fresh := New(Options{})
	fresh.ResetAll()
	if err := fresh.Import(string(exported)); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if !reflect.DeepEqual(fresh.Characters(), original.Characters()) {
		t.Error("characters did not survive the round trip")
	}
	if !reflect.DeepEqual(fresh.Tasks(), original.Tasks()) {
		t.Error("tasks did not survive the round trip")
	}
	if !reflect.DeepEqual(fresh.Milestones(), original.Milestones()) {
		t.Error("milestones did not survive the round trip")
	}
}

func TestImportRejectsInvalidJSON(t *testing.T) {
	s := New(Options{})
	before := s.Characters()

	if err := s.Import("{definitely not json"); err == nil {
		t.Fatal("expected an error for invalid JSON")
	}

	if !reflect.DeepEqual(s.Characters(), before) {
		t.Error("state should be untouched after failed import")
	}
}

func TestImportIgnoresUnknownKeys(t *testing.T) {
	s := New(Options{})

	err := s.Import(`{"tasks": [], "evil": {"payload": true}, "gear": {"speedBoots": 99}}`)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	if len(s.Tasks()) != 0 {
		t.Errorf("tasks = %d, want imported empty list", len(s.Tasks()))
	}
	// gear is not on the allow-list; the sample value must survive.
	if got := s.Gear()["speedBoots"]; got != 8 {
		t.Errorf("speedBoots = %d, want untouched sample 8", got)
	}
}

func TestImportAcceptsLegacyChampionsKey(t *testing.T) {
	s := New(Options{})

	err := s.Import(`{"champions": [{"id": "c1", "name": "Legacy", "level": 10}]}`)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	chars := s.Characters()
	if len(chars) != 1 || chars[0].Name != "Legacy" {
		t.Errorf("characters = %+v, want the legacy import", chars)
	}
}

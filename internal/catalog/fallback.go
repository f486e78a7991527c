package catalog

import (
	_ "embed"
	"encoding/json"
	"sync"

	"github.com/ember-forge/warband/internal/models"
)

//go:embed fallback_catalog.json
var fallbackData []byte

var (
	fallbackOnce    sync.Once
	fallbackEntries []models.CatalogEntry
)

// Fallback returns the bundled offline catalog, used when no live
// source is reachable. The data ships inside the binary so the app
// always has a usable reference list.
func Fallback() []models.CatalogEntry {
	fallbackOnce.Do(func() {
		var entries []models.CatalogEntry
		if err := json.Unmarshal(fallbackData, &entries); err != nil {
			// The bundled file is validated by tests; an unmarshal
			// failure here means a broken build, not a runtime input.
			fallbackEntries = nil
			return
		}
		fallbackEntries = DedupeAndSort(entries)
	})

	out := make([]models.CatalogEntry, len(fallbackEntries))
	copy(out, fallbackEntries)
	return out
}

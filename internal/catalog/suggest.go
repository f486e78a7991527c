package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ember-forge/warband/internal/models"
)

// maxSuggestDistance is the largest edit distance still considered a
// plausible misspelling.
const maxSuggestDistance = 3

// FindByName returns the catalog entry matching name exactly,
// case-insensitively.
func FindByName(entries []models.CatalogEntry, name string) (models.CatalogEntry, bool) {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range entries {
		if strings.ToLower(entry.Name) == target {
			return entry, true
		}
	}
	return models.CatalogEntry{}, false
}

// SearchByName returns entries whose names contain the query,
// case-insensitively, up to limit results. Entries are assumed
// pre-sorted, so results come back in catalog order.
func SearchByName(entries []models.CatalogEntry, query string, limit int) []models.CatalogEntry {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var matches []models.CatalogEntry
	for _, entry := range entries {
		if strings.Contains(strings.ToLower(entry.Name), q) {
			matches = append(matches, entry)
			if limit > 0 && len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// Suggest returns up to max catalog names within edit distance of the
// given name, nearest first. Used for "did you mean" hints when a
// lookup misses.
func Suggest(entries []models.CatalogEntry, name string, max int) []string {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" || max <= 0 {
		return nil
	}

	type scored struct {
		name string
		dist int
	}
	var candidates []scored
	for _, entry := range entries {
		dist := levenshtein.ComputeDistance(target, strings.ToLower(entry.Name))
		if dist > 0 && dist <= maxSuggestDistance {
			candidates = append(candidates, scored{name: entry.Name, dist: dist})
		}
	}

	// Stable selection sort keeps catalog order among equal distances;
	// candidate lists are tiny.
	var out []string
	for len(out) < max && len(candidates) > 0 {
		best := 0
		for i := 1; i < len(candidates); i++ {
			if candidates[i].dist < candidates[best].dist {
				best = i
			}
		}
		out = append(out, candidates[best].name)
		candidates = append(candidates[:best], candidates[best+1:]...)
	}
	return out
}

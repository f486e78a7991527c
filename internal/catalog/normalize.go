// Package catalog fetches and normalizes the external character
// reference catalog. Source records arrive in heterogeneous shapes
// (plain API objects, WordPress listings with rendered titles and
// nested custom fields); normalization maps them all into the
// canonical CatalogEntry shape.
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ember-forge/warband/internal/models"
)

// RawEntry is one undecoded record from a catalog source.
type RawEntry map[string]interface{}

// fieldPath addresses a (possibly nested) string value inside a raw
// entry, e.g. {"title", "rendered"} or {"acf", "faction"}.
type fieldPath []string

// aliases lists the candidate source locations per canonical field,
// tried in order; the first non-empty value wins.
var aliases = struct {
	name     []fieldPath
	faction  []fieldPath
	typ      []fieldPath
	rarity   []fieldPath
	affinity []fieldPath
	image    []fieldPath
}{
	name: []fieldPath{
		{"name"},
		{"title", "rendered"},
		{"title"},
		{"acf", "full_name"},
		{"acf", "name"},
		{"acf", "champion_name"},
	},
	faction: []fieldPath{
		{"faction"},
		{"acf", "faction"},
	},
	typ: []fieldPath{
		{"type"},
		{"role"},
		{"acf", "type"},
		{"acf", "role"},
	},
	rarity: []fieldPath{
		{"rarity"},
		{"acf", "rarity"},
	},
	affinity: []fieldPath{
		{"affinity"},
		{"acf", "affinity"},
	},
	image: []fieldPath{
		{"image_url"},
		{"acf", "image_url"},
	},
}

// entityReplacer strips the HTML entity escapes that WordPress leaves
// in rendered titles and custom fields.
var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&#038;", "&",
	"&#8216;", "'",
	"&#8217;", "'",
	"&#039;", "'",
	"&quot;", "\"",
	"&#8220;", "\"",
	"&#8221;", "\"",
	"&#8211;", "-",
	"&#8212;", "-",
	"&nbsp;", " ",
)

// Normalize maps a raw source record into the canonical entry shape.
// Returns false when the record is unusable: name, faction, and rarity
// must all be present after extraction. Type defaults to "Unknown".
func Normalize(raw RawEntry) (models.CatalogEntry, bool) {
	entry := models.CatalogEntry{
		Name:     extract(raw, aliases.name),
		Faction:  extract(raw, aliases.faction),
		Type:     extract(raw, aliases.typ),
		Rarity:   extract(raw, aliases.rarity),
		Affinity: extract(raw, aliases.affinity),
		ImageURL: extract(raw, aliases.image),
	}

	if entry.Name == "" || entry.Faction == "" || entry.Rarity == "" {
		return models.CatalogEntry{}, false
	}
	if entry.Type == "" {
		entry.Type = models.TypeUnknown
	}

	if id, ok := raw["id"]; ok {
		entry.ID = stringify(id)
	}

	return entry, true
}

// NormalizeAll normalizes a batch, discarding unusable records.
func NormalizeAll(raws []RawEntry) []models.CatalogEntry {
	entries := make([]models.CatalogEntry, 0, len(raws))
	for _, raw := range raws {
		if entry, ok := Normalize(raw); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

// DedupeAndSort removes duplicate names (case-insensitive, first
// occurrence wins) and sorts ascending by name using locale-aware
// collation.
func DedupeAndSort(entries []models.CatalogEntry) []models.CatalogEntry {
	seen := make(map[string]bool, len(entries))
	unique := make([]models.CatalogEntry, 0, len(entries))
	for _, entry := range entries {
		key := strings.ToLower(entry.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, entry)
	}

	collator := collate.New(language.English)
	sort.SliceStable(unique, func(i, j int) bool {
		return collator.CompareString(unique[i].Name, unique[j].Name) < 0
	})

	return unique
}

// extract returns the first non-empty candidate value, entity-stripped
// and trimmed.
func extract(raw RawEntry, candidates []fieldPath) string {
	for _, path := range candidates {
		if value := lookup(raw, path); value != "" {
			return clean(value)
		}
	}
	return ""
}

// lookup walks a path of nested maps and returns the string at the
// end, or "" when any hop is missing or non-string.
func lookup(raw RawEntry, path fieldPath) string {
	var current interface{} = map[string]interface{}(raw)
	for _, key := range path {
		m, ok := current.(map[string]interface{})
		if !ok {
			return ""
		}
		current, ok = m[key]
		if !ok {
			return ""
		}
	}
	s, _ := current.(string)
	return s
}

// clean strips HTML entity escapes and trims whitespace.
func clean(s string) string {
	return strings.TrimSpace(entityReplacer.Replace(s))
}

// stringify renders a raw id value, which sources deliver as either a
// string or a JSON number.
func stringify(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}

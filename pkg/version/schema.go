package version

import (
	"github.com/Masterminds/semver/v3"
)

// SnapshotSchema is the schema version written into every store
// snapshot. Bump the major when the snapshot shape changes in a way an
// older reader cannot interpret.
const SnapshotSchema = "1.0.0"

// SnapshotCompatible reports whether a snapshot written with the given
// schema version can be restored by this build. Early snapshots carried
// no version field, so an empty string is treated as schema 1.
// Unparseable versions are rejected.
func SnapshotCompatible(schema string) bool {
	if schema == "" {
		return true
	}

	written, err := semver.NewVersion(schema)
	if err != nil {
		return false
	}
	current := semver.MustParse(SnapshotSchema)

	return written.Major() == current.Major()
}

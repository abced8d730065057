package store

import "strings"

// SnapshotSuffix is the canonical extension for snapshot files. User-supplied
// names with or without the suffix refer to the same snapshot.
const SnapshotSuffix = ".conf"

// Normalize appends the canonical suffix when it is missing. Normalizing an
// already-normalized name is a no-op.
func Normalize(name string) string {
	if strings.HasSuffix(name, SnapshotSuffix) {
		return name
	}
	return name + SnapshotSuffix
}

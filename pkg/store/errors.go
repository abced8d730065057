package store

import "errors"

var (
	// ErrNotFound is returned when an operation targets a snapshot that
	// does not exist.
	ErrNotFound = errors.New("snapshot not found")

	// ErrExists is returned by Save when the target snapshot already
	// exists. Use Update to overwrite.
	ErrExists = errors.New("snapshot already exists")
)

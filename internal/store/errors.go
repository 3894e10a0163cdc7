package store

import "errors"

// Sentinel errors returned by backup store methods to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrBackupNotFound is returned when Open targets a path that does not
	// exist in the store, or a file that belongs to a different application
	// than the one requesting it.
	ErrBackupNotFound = errors.New("backup file was not found")

	// ErrPathEscapesRoot is returned when Open is given a path that is not a
	// bare server-minted file name: absolute paths, paths with separators and
	// dot-dot segments are all rejected before touching the filesystem.
	ErrPathEscapesRoot = errors.New("backup path escapes the backup root")
)

package models

import "time"

// FileInfo describes one backup file as reported by the backup server.
// The server is the source of truth for naming and location; clients treat
// Path as an opaque handle to pass back into the import operation.
type FileInfo struct {
	// Filename is the bare file name, e.g. "pin-vault-20260825T101500Z-1a2b3c4d.json".
	Filename string `json:"filename"`

	// Path is the server-side handle of the file (relative to the backup
	// root on disk, or the object key on S3).
	Path string `json:"path"`

	// Bytes is the stored size of the backup document.
	Bytes int64 `json:"bytes"`

	// ModifiedAt is the last-modification timestamp of the stored file.
	ModifiedAt time.Time `json:"modifiedAt"`
}

package models

import (
	"encoding/json"
	"time"
)

// BackupDocument is the server-side persisted form of one backup: the
// export request stamped with the server receive time. It is written to
// the backup store as indented JSON and read back verbatim on import.
type BackupDocument struct {
	App           string          `json:"app"`
	SchemaVersion int             `json:"schemaVersion"`
	ExportedAt    time.Time       `json:"exportedAt"`
	Payload       json.RawMessage `json:"payload"`
	Meta          EnvelopeMeta    `json:"meta"`
}

// NewBackupDocument stamps an export request with the given receive time.
func NewBackupDocument(req ExportRequest, exportedAt time.Time) BackupDocument {
	return BackupDocument{
		App:           req.App,
		SchemaVersion: req.SchemaVersion,
		ExportedAt:    exportedAt.UTC(),
		Payload:       req.Payload,
		Meta:          req.Meta,
	}
}

// ImportResponse converts the stored document into the wire shape of the
// import operation (the meta block is not returned to clients).
func (d BackupDocument) ImportResponse() ImportResponse {
	return ImportResponse{
		App:           d.App,
		SchemaVersion: d.SchemaVersion,
		ExportedAt:    d.ExportedAt,
		Payload:       d.Payload,
	}
}

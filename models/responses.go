package models

import (
	"encoding/json"
	"time"
)

// ListBackupsResponse is the body of GET /api/backups/.
// Items are ordered by the server, newest first.
type ListBackupsResponse struct {
	Items []FileInfo `json:"items"`
}

// LatestBackupResponse is the body of GET /api/backups/latest/.
// Latest is null when the server holds no backups for the app.
type LatestBackupResponse struct {
	Latest *FileInfo `json:"latest"`
}

// ExportResponse is the body of POST /api/backups/export/.
type ExportResponse struct {
	// Message is a short human-readable confirmation.
	Message string `json:"message"`

	// File describes the stored backup; its Path feeds a later import.
	File FileInfo `json:"file"`
}

// ImportResponse is the body of POST /api/backups/import/: the stored
// backup document minus its meta block. Payload stays raw so the caller
// can run the shape check before adopting the items.
type ImportResponse struct {
	App           string          `json:"app"`
	SchemaVersion int             `json:"schemaVersion"`
	ExportedAt    time.Time       `json:"exportedAt"`
	Payload       json.RawMessage `json:"payload"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthStatusOK is the status value reported by a healthy server.
const HealthStatusOK = "ok"

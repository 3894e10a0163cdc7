package models

import (
	"encoding/json"
	"fmt"
)

// ExportRequest is the body of POST /api/backups/export/. The payload
// travels as raw JSON so that the server can shape-check and store it
// byte-for-byte without re-encoding.
type ExportRequest struct {
	// App identifies the exporting application; backups of different
	// apps never mix.
	App string `json:"app"`

	// SchemaVersion is the envelope schema carried by Payload.
	SchemaVersion int `json:"schemaVersion"`

	// Payload is the opaque envelope payload ({"items": [...]}).
	Payload json.RawMessage `json:"payload"`

	// Meta identifies the exporting device and client build.
	Meta EnvelopeMeta `json:"meta"`
}

// NewExportRequest builds an ExportRequest from a typed envelope.
func NewExportRequest(app string, envelope BackupEnvelope) (ExportRequest, error) {
	payload, err := json.Marshal(envelope.Payload)
	if err != nil {
		return ExportRequest{}, fmt.Errorf("encode envelope payload: %w", err)
	}

	return ExportRequest{
		App:           app,
		SchemaVersion: envelope.SchemaVersion,
		Payload:       payload,
		Meta:          envelope.Meta,
	}, nil
}

// ImportRequest is the body of POST /api/backups/import/: the app whose
// backup is requested plus the server-side path previously returned by
// list, latest or export.
type ImportRequest struct {
	App  string `json:"app"`
	Path string `json:"path"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// EnvelopeSchemaVersion is the schema version written into every exported
// backup envelope. Bump it when the payload layout changes; import keeps
// accepting older documents as long as the payload still parses.
const EnvelopeSchemaVersion = 1

// ErrPayloadNotArray is returned by ParseEnvelopePayload when the envelope
// payload exists but its "items" field is not a JSON array. Callers treat
// this as a rejected import (a user-visible notice), never as a crash.
var ErrPayloadNotArray = errors.New("envelope payload items is not an array")

// BackupEnvelope is the typed client-side view of one backup document:
// the full credential list wrapped with a schema version and device
// metadata. It exists only in memory and on the wire, never in local
// persisted state.
type BackupEnvelope struct {
	SchemaVersion int             `json:"schemaVersion"`
	Payload       EnvelopePayload `json:"payload"`
	Meta          EnvelopeMeta    `json:"meta"`
}

// EnvelopePayload carries the credential list itself.
type EnvelopePayload struct {
	Items []PinItem `json:"items"`
}

// EnvelopeMeta identifies the producer of a backup.
type EnvelopeMeta struct {
	// Device is the stable identifier of the exporting device.
	Device string `json:"device"`

	// AppVersion is the client build version at export time.
	AppVersion string `json:"appVersion"`
}

// ParseEnvelopePayload decodes the raw payload of a backup document and
// enforces the shape contract: the payload must be a JSON object whose
// "items" field is an array of PIN items.
//
// Returns ErrPayloadNotArray (wrapped) when "items" is present but not an
// array, and a plain decode error for anything that is not valid JSON.
// Both the client (on import responses) and the server (on export
// requests) run every payload through this check.
func ParseEnvelopePayload(raw json.RawMessage) (EnvelopePayload, error) {
	if len(raw) == 0 {
		return EnvelopePayload{}, fmt.Errorf("decode envelope payload: %w", ErrPayloadNotArray)
	}

	var shape struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(raw, &shape); err != nil {
		return EnvelopePayload{}, fmt.Errorf("decode envelope payload: %w", err)
	}

	trimmed := bytes.TrimSpace(shape.Items)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return EnvelopePayload{}, fmt.Errorf("%w: got %s", ErrPayloadNotArray, previewJSON(trimmed))
	}

	var items []PinItem
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return EnvelopePayload{}, fmt.Errorf("decode envelope items: %w", err)
	}

	return EnvelopePayload{Items: items}, nil
}

// previewJSON renders a short, log-safe preview of a malformed fragment.
func previewJSON(raw []byte) string {
	const maxPreview = 32
	if len(raw) == 0 {
		return "<empty>"
	}
	if len(raw) > maxPreview {
		return string(raw[:maxPreview]) + "..."
	}
	return string(raw)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the backup
// server.
//
// The primary abstraction is [BackupAPI], which decouples the service layer
// from the wire protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPBackupAPI]) that resolves the server base URL per call, so a
// connection configured mid-session takes effect without rebuilding the
// client.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pin-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backup_api_mock.go -package=mock

// BaseURLSource yields the active backup-server base URL. It fails with the
// connection store's unconfigured error until an endpoint has been set.
type BaseURLSource interface {
	BaseURL() (string, error)
}

// BackupAPI defines the five backup-server operations. Implementations are
// responsible for serialisation, the API-key header, and mapping
// transport-level failures to the sentinel values defined in this package.
// No operation is ever retried.
type BackupAPI interface {
	// List fetches the stored backups for app, ordered newest first by
	// the server.
	List(ctx context.Context, app string) ([]models.FileInfo, error)

	// Latest fetches the most recent backup for app, or nil when the
	// server holds none.
	Latest(ctx context.Context, app string) (*models.FileInfo, error)

	// Export uploads one backup document. The server owns storage
	// location and naming; the returned FileInfo describes the stored
	// file.
	Export(ctx context.Context, req models.ExportRequest) (models.FileInfo, error)

	// Import downloads the backup document stored under path. The
	// envelope payload shape is verified (payload.items must be an
	// array); a mismatch fails with [ErrMalformedPayload].
	Import(ctx context.Context, app string, path string) (models.BackupEnvelope, error)

	// Health performs one reachability check against the server.
	Health(ctx context.Context) (models.HealthResponse, error)
}

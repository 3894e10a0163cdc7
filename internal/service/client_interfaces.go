// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pin-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_services_mock.go -package=mock

// CredentialVault is the slice of the vault store the backup service needs.
type CredentialVault interface {
	// List returns every stored item in insertion order.
	List() []models.PinItem

	// ReplaceAll swaps the whole item list after validating it, used when
	// adopting an imported backup.
	ReplaceAll(ctx context.Context, items []models.PinItem) error
}

// BackupService runs the backup workflows against the configured server.
// All failures surface as the business sentinels in errors.go; no operation
// is retried automatically.
type BackupService interface {
	// ExportAll wraps the current credential list in an envelope (schema
	// version plus device metadata) and uploads it. Returns the stored
	// file's descriptor.
	ExportAll(ctx context.Context) (models.FileInfo, error)

	// ImportLatest fetches the newest backup and adopts its items,
	// replacing the local list. Fails with ErrNoBackups when the server
	// holds nothing. Returns the adopted item count.
	ImportLatest(ctx context.Context) (int, error)

	// ImportFrom adopts the backup stored under path. A payload failing
	// the shape check is reported with ErrMalformedBackup and the local
	// list stays untouched. Returns the adopted item count.
	ImportFrom(ctx context.Context, path string) (int, error)

	// List returns the server's backups for this app, newest first.
	// Display capping is the caller's concern.
	List(ctx context.Context) ([]models.FileInfo, error)

	// CheckHealth runs one bounded reachability probe. The probe's
	// timeout sentinel passes through; other failures map to the
	// business taxonomy.
	CheckHealth(ctx context.Context) error
}

// HealthWatchJob periodically checks server reachability in the background
// and reports transitions. The job is idle until Start is called.
type HealthWatchJob interface {
	// Start launches the background watcher, stopping any previous run
	// first. A non-positive interval falls back to 30 seconds.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the watcher and blocks until it has exited. Safe to
	// call when the job is not running.
	Stop()
}

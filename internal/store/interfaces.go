// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists backup documents on the server side. Two
// implementations exist behind the BackupStore interface: a disk store
// writing JSON files under a backup root directory, and an S3 store for
// object storage on the private network. The server selects one at
// startup based on configuration.
package store

import (
	"context"

	"github.com/MKhiriev/go-pin-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backup_store_mock.go -package=mock

// BackupStore stores and serves backup documents. The store owns file
// naming; callers never choose where a document lands. Paths returned in
// [models.FileInfo] are opaque handles valid for Open.
type BackupStore interface {
	// Save persists doc under a store-chosen name and returns its descriptor.
	Save(ctx context.Context, doc models.BackupDocument) (models.FileInfo, error)

	// List returns the stored backups of one application, newest first.
	// An application with no backups yields an empty slice, not an error.
	List(ctx context.Context, app string) ([]models.FileInfo, error)

	// Latest returns the newest backup of one application, or nil when the
	// store holds none.
	Latest(ctx context.Context, app string) (*models.FileInfo, error)

	// Open reads back the document stored under path. Paths that could
	// resolve outside the store yield ErrPathEscapesRoot; missing files and
	// files belonging to a different application yield ErrBackupNotFound.
	Open(ctx context.Context, app string, path string) (models.BackupDocument, error)
}

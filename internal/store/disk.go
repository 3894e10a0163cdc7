// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/utils"
	"github.com/MKhiriev/go-pin-vault/models"
)

// DiskStore keeps backup documents as indented JSON files in a flat
// directory. The application name is part of every file name, so one root
// can serve multiple applications without mixing their backups.
type DiskStore struct {
	root   string
	uuid   *utils.UUIDGenerator
	logger *logger.Logger
}

// NewDiskStore creates the backup root directory if needed and returns a
// store rooted there.
func NewDiskStore(cfg config.ServerBackups, uuid *utils.UUIDGenerator, log *logger.Logger) (*DiskStore, error) {
	root, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, fmt.Errorf("resolve backup root %q: %w", cfg.Dir, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create backup root %q: %w", root, err)
	}

	log.Info().Str("func", "NewDiskStore").Str("root", root).Msg("disk backup store ready")
	return &DiskStore{root: root, uuid: uuid, logger: log}, nil
}

// Save writes doc to a freshly minted file name and returns its descriptor.
func (s *DiskStore) Save(ctx context.Context, doc models.BackupDocument) (models.FileInfo, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("encode backup document: %w", err)
	}

	filename := backupFilename(doc.App, doc.ExportedAt, s.uuid.GenerateShort())
	full := filepath.Join(s.root, filename)
	if err := os.WriteFile(full, data, 0o600); err != nil {
		return models.FileInfo{}, fmt.Errorf("write backup file %q: %w", filename, err)
	}

	stat, err := os.Stat(full)
	if err != nil {
		return models.FileInfo{}, fmt.Errorf("stat backup file %q: %w", filename, err)
	}

	s.logger.Info().Str("func", "DiskStore.Save").
		Str("app", doc.App).Str("file", filename).Int("bytes", len(data)).
		Msg("backup stored")

	return models.FileInfo{
		Filename:   filename,
		Path:       filename,
		Bytes:      stat.Size(),
		ModifiedAt: stat.ModTime().UTC(),
	}, nil
}

// List returns app's backups newest first. Files not minted for app, stray
// non-JSON files and subdirectories are skipped.
func (s *DiskStore) List(ctx context.Context, app string) ([]models.FileInfo, error) {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		return nil, fmt.Errorf("read backup root: %w", err)
	}

	items := make([]models.FileInfo, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !mintedFor(app, name) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// the file disappeared between ReadDir and Info
			continue
		}
		items = append(items, models.FileInfo{
			Filename:   name,
			Path:       name,
			Bytes:      info.Size(),
			ModifiedAt: info.ModTime().UTC(),
		})
	}

	sortNewestFirst(items)
	return items, nil
}

// Latest returns app's newest backup, or nil when there is none.
func (s *DiskStore) Latest(ctx context.Context, app string) (*models.FileInfo, error) {
	items, err := s.List(ctx, app)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

// Open reads back the document stored under path after validating that the
// path is a bare minted file name and that the document belongs to app.
func (s *DiskStore) Open(ctx context.Context, app string, path string) (models.BackupDocument, error) {
	if err := validatePath(path); err != nil {
		return models.BackupDocument{}, err
	}

	data, err := os.ReadFile(filepath.Join(s.root, path))
	if err != nil {
		if os.IsNotExist(err) {
			return models.BackupDocument{}, fmt.Errorf("%w: %q", ErrBackupNotFound, path)
		}
		return models.BackupDocument{}, fmt.Errorf("read backup file %q: %w", path, err)
	}

	var doc models.BackupDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.BackupDocument{}, fmt.Errorf("decode backup file %q: %w", path, err)
	}
	if doc.App != app {
		// stored for another application; report it like a missing file so
		// the path leaks nothing about foreign backups
		return models.BackupDocument{}, fmt.Errorf("%w: %q", ErrBackupNotFound, path)
	}

	return doc, nil
}

// sortNewestFirst orders items by modification time descending. Minted names
// embed the export timestamp, so the name breaks ties from same-instant writes.
func sortNewestFirst(items []models.FileInfo) {
	sort.Slice(items, func(i, j int) bool {
		if !items[i].ModifiedAt.Equal(items[j].ModifiedAt) {
			return items[i].ModifiedAt.After(items[j].ModifiedAt)
		}
		return items[i].Filename > items[j].Filename
	})
}

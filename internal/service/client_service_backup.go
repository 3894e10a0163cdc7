// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client-side business workflows: building and
// adopting backup envelopes, bounded reachability checks, and the background
// health watcher. Transport errors never escape raw; client_errors_mapper.go
// folds them into the sentinels of errors.go.
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pin-vault/internal/adapter"
	"github.com/MKhiriev/go-pin-vault/internal/health"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/models"
)

type clientBackupService struct {
	vault    CredentialVault
	api      adapter.BackupAPI
	identity *DeviceIdentity

	appName      string
	appVersion   string
	probeTimeout time.Duration

	logger *logger.Logger
}

// NewClientBackupService wires the backup workflows over the vault, the
// transport adapter and the device identity. appName keys all server-side
// storage; appVersion is stamped into envelope metadata.
func NewClientBackupService(vault CredentialVault, api adapter.BackupAPI, identity *DeviceIdentity, appName, appVersion string, probeTimeout time.Duration, log *logger.Logger) BackupService {
	return &clientBackupService{
		vault:        vault,
		api:          api,
		identity:     identity,
		appName:      appName,
		appVersion:   appVersion,
		probeTimeout: probeTimeout,
		logger:       log,
	}
}

// ExportAll implements [BackupService].
func (s *clientBackupService) ExportAll(ctx context.Context) (models.FileInfo, error) {
	device, err := s.identity.DeviceID(ctx)
	if err != nil {
		return models.FileInfo{}, err
	}

	items := s.vault.List()
	if items == nil {
		// an empty vault still exports {"items":[]}; null fails the shape check
		items = []models.PinItem{}
	}

	envelope := models.BackupEnvelope{
		SchemaVersion: models.EnvelopeSchemaVersion,
		Payload:       models.EnvelopePayload{Items: items},
		Meta:          models.EnvelopeMeta{Device: device, AppVersion: s.appVersion},
	}

	req, err := models.NewExportRequest(s.appName, envelope)
	if err != nil {
		return models.FileInfo{}, err
	}

	file, err := s.api.Export(ctx, req)
	if err != nil {
		return models.FileInfo{}, mapAdapterError(err)
	}

	s.logger.Info().Str("func", "ExportAll").Str("file", file.Filename).Int("items", len(envelope.Payload.Items)).Msg("backup exported")
	return file, nil
}

// ImportLatest implements [BackupService].
func (s *clientBackupService) ImportLatest(ctx context.Context) (int, error) {
	latest, err := s.api.Latest(ctx, s.appName)
	if err != nil {
		return 0, mapAdapterError(err)
	}
	if latest == nil {
		return 0, ErrNoBackups
	}

	return s.ImportFrom(ctx, latest.Path)
}

// ImportFrom implements [BackupService]. The local list is replaced only
// after the downloaded payload passed the shape check and the vault accepted
// every item; any failure leaves it untouched.
func (s *clientBackupService) ImportFrom(ctx context.Context, path string) (int, error) {
	envelope, err := s.api.Import(ctx, s.appName, path)
	if err != nil {
		return 0, mapAdapterError(err)
	}

	if err = s.vault.ReplaceAll(ctx, envelope.Payload.Items); err != nil {
		return 0, fmt.Errorf("adopt imported items: %w", err)
	}

	s.logger.Info().Str("func", "ImportFrom").Str("path", path).Int("items", len(envelope.Payload.Items)).Msg("backup imported")
	return len(envelope.Payload.Items), nil
}

// List implements [BackupService].
func (s *clientBackupService) List(ctx context.Context) ([]models.FileInfo, error) {
	files, err := s.api.List(ctx, s.appName)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	return files, nil
}

// CheckHealth implements [BackupService].
func (s *clientBackupService) CheckHealth(ctx context.Context) error {
	err := health.Probe(ctx, s.api, s.probeTimeout)
	if err == nil {
		return nil
	}
	if errors.Is(err, health.ErrProbeTimeout) {
		return err
	}

	return mapAdapterError(err)
}

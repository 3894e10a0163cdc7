// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pin-vault/internal/config"
	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/internal/utils"
	"github.com/MKhiriev/go-pin-vault/models"
)

func newTestDiskStore(t *testing.T) *DiskStore {
	t.Helper()

	s, err := NewDiskStore(config.ServerBackups{Dir: t.TempDir()}, utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, err)
	return s
}

func testDocument(app string, exportedAt time.Time, payload string) models.BackupDocument {
	return models.BackupDocument{
		App:           app,
		SchemaVersion: models.EnvelopeSchemaVersion,
		ExportedAt:    exportedAt.UTC(),
		Payload:       json.RawMessage(payload),
		Meta:          models.EnvelopeMeta{Device: "device-1", AppVersion: "1.0.0"},
	}
}

// ── saving ──

func TestDiskStore_Save_MintsDescriptor(t *testing.T) {
	s := newTestDiskStore(t)

	exportedAt := time.Date(2026, 8, 25, 10, 15, 0, 0, time.UTC)
	info, err := s.Save(context.Background(), testDocument("pin-vault", exportedAt, `{"items":[]}`))
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^pin-vault-20260825T101500Z-[0-9a-f]{8}\.json$`), info.Filename)
	assert.Equal(t, info.Filename, info.Path)
	assert.Greater(t, info.Bytes, int64(0))
	assert.WithinDuration(t, time.Now(), info.ModifiedAt, 5*time.Second)
}

func TestDiskStore_Save_TwoExportsSameSecondDoNotCollide(t *testing.T) {
	s := newTestDiskStore(t)
	exportedAt := time.Date(2026, 8, 25, 10, 15, 0, 0, time.UTC)

	first, err := s.Save(context.Background(), testDocument("pin-vault", exportedAt, `{"items":[]}`))
	require.NoError(t, err)
	second, err := s.Save(context.Background(), testDocument("pin-vault", exportedAt, `{"items":[]}`))
	require.NoError(t, err)

	assert.NotEqual(t, first.Filename, second.Filename)

	items, err := s.List(context.Background(), "pin-vault")
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestNewDiskStore_CreatesNestedRoot(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "var", "backups")

	s, err := NewDiskStore(config.ServerBackups{Dir: dir}, utils.NewUUIDGenerator(), logger.Nop())
	require.NoError(t, err)

	_, err = s.Save(context.Background(), testDocument("pin-vault", time.Now(), `{"items":[]}`))
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

// ── listing ──

func TestDiskStore_List_NewestFirst(t *testing.T) {
	s := newTestDiskStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 25, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		_, err := s.Save(ctx, testDocument("pin-vault", base.Add(time.Duration(i)*time.Minute), `{"items":[]}`))
		require.NoError(t, err)
		time.Sleep(10 * time.Millisecond) // distinct mtimes
	}

	items, err := s.List(ctx, "pin-vault")
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i := 1; i < len(items); i++ {
		assert.False(t, items[i].ModifiedAt.After(items[i-1].ModifiedAt),
			"expected %s to be no newer than %s", items[i].Filename, items[i-1].Filename)
	}
	assert.Contains(t, items[0].Filename, "T100200Z")
}

func TestDiskStore_List_FiltersOtherApps(t *testing.T) {
	s := newTestDiskStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, testDocument("pin-vault", time.Now(), `{"items":[]}`))
	require.NoError(t, err)
	_, err = s.Save(ctx, testDocument("other-app", time.Now(), `{"items":[]}`))
	require.NoError(t, err)

	items, err := s.List(ctx, "pin-vault")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Contains(t, items[0].Filename, "pin-vault-")
}

func TestDiskStore_List_AppPrefixIsNotEnough(t *testing.T) {
	s := newTestDiskStore(t)
	ctx := context.Background()

	// "pin" is a prefix of "pin-vault", so its backups start with "pin-" too
	_, err := s.Save(ctx, testDocument("pin-vault", time.Now(), `{"items":[]}`))
	require.NoError(t, err)

	items, err := s.List(ctx, "pin")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestDiskStore_List_SkipsStrayFiles(t *testing.T) {
	s := newTestDiskStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, testDocument("pin-vault", time.Now(), `{"items":[]}`))
	require.NoError(t, err)

	// a stray text file with the right prefix and a subdirectory
	require.NoError(t, os.WriteFile(filepath.Join(s.root, "pin-vault-notes.txt"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(s.root, "pin-vault-dir.json"), 0o755))

	items, err := s.List(ctx, "pin-vault")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestDiskStore_List_EmptyIsNotNil(t *testing.T) {
	s := newTestDiskStore(t)

	items, err := s.List(context.Background(), "pin-vault")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

// ── latest ──

func TestDiskStore_Latest(t *testing.T) {
	s := newTestDiskStore(t)
	ctx := context.Background()

	_, err := s.Save(ctx, testDocument("pin-vault", time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC), `{"items":[]}`))
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	newest, err := s.Save(ctx, testDocument("pin-vault", time.Date(2026, 8, 25, 11, 0, 0, 0, time.UTC), `{"items":[]}`))
	require.NoError(t, err)

	latest, err := s.Latest(ctx, "pin-vault")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, newest.Filename, latest.Filename)
}

func TestDiskStore_Latest_NoBackups(t *testing.T) {
	s := newTestDiskStore(t)

	latest, err := s.Latest(context.Background(), "pin-vault")
	require.NoError(t, err)
	assert.Nil(t, latest)
}

// ── opening ──

func TestDiskStore_Open_RoundTrip(t *testing.T) {
	s := newTestDiskStore(t)
	ctx := context.Background()

	payload := `{"items":[{"name":"sim","pin":"1234"}]}`
	saved := testDocument("pin-vault", time.Date(2026, 8, 25, 10, 15, 0, 0, time.UTC), payload)
	info, err := s.Save(ctx, saved)
	require.NoError(t, err)

	doc, err := s.Open(ctx, "pin-vault", info.Path)
	require.NoError(t, err)

	assert.Equal(t, saved.App, doc.App)
	assert.Equal(t, saved.SchemaVersion, doc.SchemaVersion)
	assert.True(t, saved.ExportedAt.Equal(doc.ExportedAt))
	assert.JSONEq(t, payload, string(doc.Payload))
	assert.Equal(t, saved.Meta, doc.Meta)
}

func TestDiskStore_Open_RejectsTraversal(t *testing.T) {
	s := newTestDiskStore(t)

	tests := []struct {
		name string
		path string
	}{
		{name: "dot dot segment", path: "../escape.json"},
		{name: "absolute path", path: "/etc/passwd"},
		{name: "nested path", path: "sub/backup.json"},
		{name: "backslash path", path: `..\backup.json`},
		{name: "bare dot dot", path: ".."},
		{name: "empty path", path: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Open(context.Background(), "pin-vault", tt.path)
			assert.ErrorIs(t, err, ErrPathEscapesRoot)
		})
	}
}

func TestDiskStore_Open_Missing(t *testing.T) {
	s := newTestDiskStore(t)

	_, err := s.Open(context.Background(), "pin-vault", "pin-vault-20260825T000000Z-deadbeef.json")
	assert.ErrorIs(t, err, ErrBackupNotFound)
}

func TestDiskStore_Open_WrongApp(t *testing.T) {
	s := newTestDiskStore(t)
	ctx := context.Background()

	info, err := s.Save(ctx, testDocument("other-app", time.Now(), `{"items":[]}`))
	require.NoError(t, err)

	_, err = s.Open(ctx, "pin-vault", info.Path)
	assert.ErrorIs(t, err, ErrBackupNotFound)
}

func TestDiskStore_Open_CorruptFile(t *testing.T) {
	s := newTestDiskStore(t)

	name := "pin-vault-20260825T101500Z-deadbeef.json"
	require.NoError(t, os.WriteFile(filepath.Join(s.root, name), []byte("{not json"), 0o600))

	_, err := s.Open(context.Background(), "pin-vault", name)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrBackupNotFound)
	assert.NotErrorIs(t, err, ErrPathEscapesRoot)
}

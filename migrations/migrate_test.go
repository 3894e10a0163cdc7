// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestMigrate_CreatesVaultKVTable(t *testing.T) {
	db := openTestDB(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}

	// the table must accept the key/value shape the kvstore writes
	if _, err := db.Exec(`INSERT INTO vault_kv (key, value) VALUES ('device_pin', '1234')`); err != nil {
		t.Fatalf("insert into vault_kv failed: %v", err)
	}

	var value string
	if err := db.QueryRow(`SELECT value FROM vault_kv WHERE key = 'device_pin'`).Scan(&value); err != nil {
		t.Fatalf("select from vault_kv failed: %v", err)
	}
	if value != "1234" {
		t.Errorf("expected stored value %q, got %q", "1234", value)
	}
}

func TestMigrate_SecondRunIsNoOp(t *testing.T) {
	db := openTestDB(t)

	if err := Migrate(db); err != nil {
		t.Fatalf("first Migrate failed: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Errorf("second Migrate should be a no-op, got: %v", err)
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}
	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_BrokenDB(t *testing.T) {
	// a mock with no expectations rejects every query goose issues
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate against a broken db, got nil")
	}
	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

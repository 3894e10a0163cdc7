// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-pin-vault/internal/logger"
	"github.com/MKhiriev/go-pin-vault/migrations"
)

const kvTable = "vault_kv"

// SQLite is the file-backed [Store] implementation. The database file is
// created with owner-only permissions on first use and migrated to the
// current schema on every start.
type SQLite struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewSQLite opens (creating if necessary) the key-value database at dsn,
// verifies the connection and applies pending migrations.
func NewSQLite(ctx context.Context, dsn string, log *logger.Logger) (*SQLite, error) {
	if err := createLocalDBFileIfNotExists(dsn); err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error connecting database (ping)")
		return nil, err
	}

	if err = migrations.Migrate(conn); err != nil {
		log.Err(err).Str("func", "NewSQLite").Msg("error migrating database")
		return nil, err
	}
	log.Debug().Str("func", "NewSQLite").Msg("connected to database successfully")

	return &SQLite{
		db:     conn,
		logger: log,
	}, nil
}

// Get returns the stored value for key, or [ErrKeyNotFound].
func (s *SQLite) Get(ctx context.Context, key string) (string, error) {
	query, args, err := sq.Select("value").
		From(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("error building select query: %w", err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "Get").Str("key", key).Msg("error reading key")
		return "", fmt.Errorf("error reading key %q: %w", key, err)
	}

	return value, nil
}

// Set stores value under key, overwriting any previous value.
func (s *SQLite) Set(ctx context.Context, key string, value string) error {
	query, args, err := sq.Insert(kvTable).
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("error building upsert query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "Set").Str("key", key).Msg("error writing key")
		return fmt.Errorf("error writing key %q: %w", key, err)
	}

	return nil
}

// Delete removes key if present. Deleting a missing key is not an error.
func (s *SQLite) Delete(ctx context.Context, key string) error {
	query, args, err := sq.Delete(kvTable).
		Where(sq.Eq{"key": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("error building delete query: %w", err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "Delete").Str("key", key).Msg("error deleting key")
		return fmt.Errorf("error deleting key %q: %w", key, err)
	}

	return nil
}

// Close closes the underlying database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}

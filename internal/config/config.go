// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// pin-vault application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the application name
	// used in backup envelopes, the semantic version, and the shared API key.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for all persistence backends: the local
	// key-value database and the server-side backup document store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the backup
	// server's HTTP listener.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds configuration for the client's outbound HTTP transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Reveal holds timing settings for the credential reveal countdown.
	Reveal Reveal `envPrefix:"REVEAL_"`

	// Health holds timing settings for reachability probes.
	Health Health `envPrefix:"HEALTH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged behind the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Name is the application label carried in backup envelopes and used
	// as the `app` query parameter of every backup operation.
	// Env: APP_NAME
	Name string `env:"NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Carried in backup envelope metadata.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// APIKey is the static shared token sent (client) and required
	// (server) in the X-API-KEY header of every /api request.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`
}

// Storage groups the configuration for all persistence backends.
type Storage struct {
	// DB holds the local key-value database settings.
	DB DB `envPrefix:"DB_"`

	// Backups holds the server-side backup document store settings.
	Backups Backups `envPrefix:"BACKUPS_"`
}

// DB holds connection settings for the local key-value database.
type DB struct {
	// DSN is the SQLite Data Source Name used to open the database file
	// (e.g. "pin-vault.db" or "file:pin-vault.db?_busy_timeout=5000").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Backups holds settings for the backup server's document store.
type Backups struct {
	// Dir is the directory where backup documents are written and served
	// from when the disk store is selected.
	// Env: STORAGE_BACKUPS_DIR
	Dir string `env:"DIR"`

	// S3 holds object storage settings. When Bucket is non-empty the
	// server stores backup documents in S3 instead of the local disk.
	S3 S3 `envPrefix:"S3_"`
}

// S3 holds object storage settings for the S3-backed backup store.
type S3 struct {
	// Bucket is the S3 bucket name. Empty means the disk store is used.
	// Env: STORAGE_BACKUPS_S3_BUCKET
	Bucket string `env:"BUCKET"`

	// Region is the AWS region of the bucket.
	// Env: STORAGE_BACKUPS_S3_REGION
	Region string `env:"REGION"`

	// Endpoint optionally overrides the S3 endpoint URL, e.g. for MinIO
	// or another S3-compatible service on the private network.
	// Env: STORAGE_BACKUPS_S3_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKey and SecretKey are static credentials for the bucket.
	// When AccessKey is empty the AWS default credential chain is used.
	// Env: STORAGE_BACKUPS_S3_ACCESS_KEY / STORAGE_BACKUPS_S3_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for the client's outbound HTTP transport.
type Adapter struct {
	// RequestTimeout is the default timeout for outbound client requests
	// (e.g. "10s"). The health probe uses its own, shorter bound.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Reveal holds timing settings for the credential reveal countdown.
type Reveal struct {
	// VisibleFor is how long a revealed PIN stays visible before it is
	// re-masked (e.g. "3s").
	// Env: REVEAL_VISIBLE_FOR
	VisibleFor time.Duration `env:"VISIBLE_FOR"`

	// Tick is the progress recomputation interval during a reveal
	// (e.g. "50ms").
	// Env: REVEAL_TICK
	Tick time.Duration `env:"TICK"`
}

// Health holds timing settings for reachability probes.
type Health struct {
	// ProbeTimeout bounds a single health probe (e.g. "3s").
	// Env: HEALTH_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// WatchInterval is how often the background health watcher re-probes
	// a configured endpoint (e.g. "30s").
	// Env: HEALTH_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for fields they set; the JSON file fills the gaps):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

package config

import (
	"fmt"
	"time"
)

const (
	defaultServerAddress        = ":8080"
	defaultServerRequestTimeout = 30 * time.Second
	defaultBackupsDir           = "backups"
)

// ServerApp holds server-side application settings.
type ServerApp struct {
	// Version is the application version reported at startup.
	Version string
	// APIKey is the static token required in the X-API-KEY header of
	// every /api request.
	APIKey string
}

// ServerHTTP holds listener settings for the backup server.
type ServerHTTP struct {
	// Address is the TCP address the HTTP server listens on.
	Address string
	// RequestTimeout bounds a single inbound request.
	RequestTimeout time.Duration
}

// ServerBackups holds backup document store settings.
type ServerBackups struct {
	// Dir is the disk store directory.
	Dir string
	// S3Bucket, when non-empty, selects the S3 store over the disk store.
	S3Bucket string
	// S3Region is the bucket's region.
	S3Region string
	// S3Endpoint optionally overrides the S3 endpoint URL.
	S3Endpoint string
	// S3AccessKey and S3SecretKey are static bucket credentials. An empty
	// S3AccessKey defers to the AWS default credential chain.
	S3AccessKey string
	S3SecretKey string
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains application-level server settings.
	App ServerApp
	// HTTP contains listener settings.
	HTTP ServerHTTP
	// Backups contains document store settings.
	Backups ServerBackups
}

// UsesS3 reports whether the S3 backup store is selected.
func (cfg *ServerConfig) UsesS3() bool {
	return cfg.Backups.S3Bucket != ""
}

// GetServerConfig builds and validates a server-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the backup server, fills documented defaults for fields no
// source set, and validates the resulting [ServerConfig].
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		App: ServerApp{
			Version: cfg.App.Version,
			APIKey:  cfg.App.APIKey,
		},
		HTTP: ServerHTTP{
			Address:        cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Backups: ServerBackups{
			Dir:         cfg.Storage.Backups.Dir,
			S3Bucket:    cfg.Storage.Backups.S3.Bucket,
			S3Region:    cfg.Storage.Backups.S3.Region,
			S3Endpoint:  cfg.Storage.Backups.S3.Endpoint,
			S3AccessKey: cfg.Storage.Backups.S3.AccessKey,
			S3SecretKey: cfg.Storage.Backups.S3.SecretKey,
		},
	}

	if serverCfg.HTTP.Address == "" {
		serverCfg.HTTP.Address = defaultServerAddress
	}
	if serverCfg.HTTP.RequestTimeout == 0 {
		serverCfg.HTTP.RequestTimeout = defaultServerRequestTimeout
	}
	if serverCfg.Backups.Dir == "" {
		serverCfg.Backups.Dir = defaultBackupsDir
	}

	return serverCfg
}

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── client view ───────────────────────────────────────────────────────────────

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{Name: "pin-vault-test", Version: "1.2.3", APIKey: "secret"},
		Storage: Storage{
			DB: DB{DSN: "vault-test.db"},
		},
		Adapter: Adapter{RequestTimeout: 5 * time.Second},
		Reveal:  Reveal{VisibleFor: 2 * time.Second, Tick: 25 * time.Millisecond},
		Health:  Health{ProbeTimeout: time.Second, WatchInterval: time.Minute},
	}

	clientCfg := newClientConfig(cfg)

	assert.Equal(t, "pin-vault-test", clientCfg.App.Name)
	assert.Equal(t, "1.2.3", clientCfg.App.Version)
	assert.Equal(t, "secret", clientCfg.App.APIKey)
	assert.Equal(t, "vault-test.db", clientCfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Second, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, 2*time.Second, clientCfg.Reveal.VisibleFor)
	assert.Equal(t, 25*time.Millisecond, clientCfg.Reveal.Tick)
	assert.Equal(t, time.Second, clientCfg.Health.ProbeTimeout)
	assert.Equal(t, time.Minute, clientCfg.Health.WatchInterval)
}

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	clientCfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, defaultAppName, clientCfg.App.Name)
	assert.Equal(t, defaultClientDSN, clientCfg.Storage.DB.DSN)
	assert.Equal(t, defaultRequestTimeout, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, defaultRevealVisibleFor, clientCfg.Reveal.VisibleFor)
	assert.Equal(t, defaultRevealTick, clientCfg.Reveal.Tick)
	assert.Equal(t, defaultProbeTimeout, clientCfg.Health.ProbeTimeout)
	assert.Equal(t, defaultWatchInterval, clientCfg.Health.WatchInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig { return newClientConfig(&StructuredConfig{}) }

	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{
			name:   "defaults are valid",
			mutate: func(cfg *ClientConfig) {},
		},
		{
			name:    "empty DSN",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "in-memory DSN rejected",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = "file::memory:?cache=shared" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = 0 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "tick not shorter than visible duration",
			mutate:  func(cfg *ClientConfig) { cfg.Reveal.Tick = cfg.Reveal.VisibleFor },
			wantErr: ErrInvalidRevealConfigs,
		},
		{
			name:    "zero visible duration",
			mutate:  func(cfg *ClientConfig) { cfg.Reveal.VisibleFor = 0 },
			wantErr: ErrInvalidRevealConfigs,
		},
		{
			name:    "zero probe timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Health.ProbeTimeout = 0 },
			wantErr: ErrInvalidHealthConfigs,
		},
		{
			name:    "empty app name",
			mutate:  func(cfg *ClientConfig) { cfg.App.Name = "" },
			wantErr: ErrInvalidAppConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// ── server view ───────────────────────────────────────────────────────────────

func TestNewServerConfig_MapsFields(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{Version: "1.2.3", APIKey: "secret"},
		Server: Server{
			HTTPAddress:    "192.168.1.10:9090",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			Backups: Backups{
				Dir: "/var/backups",
				S3:  S3{Bucket: "vault-backups", Region: "eu-central-1", Endpoint: "http://192.168.1.20:9000"},
			},
		},
	}

	serverCfg := newServerConfig(cfg)

	assert.Equal(t, "1.2.3", serverCfg.App.Version)
	assert.Equal(t, "secret", serverCfg.App.APIKey)
	assert.Equal(t, "192.168.1.10:9090", serverCfg.HTTP.Address)
	assert.Equal(t, 15*time.Second, serverCfg.HTTP.RequestTimeout)
	assert.Equal(t, "/var/backups", serverCfg.Backups.Dir)
	assert.Equal(t, "vault-backups", serverCfg.Backups.S3Bucket)
	assert.Equal(t, "eu-central-1", serverCfg.Backups.S3Region)
	assert.Equal(t, "http://192.168.1.20:9000", serverCfg.Backups.S3Endpoint)
	assert.True(t, serverCfg.UsesS3())
}

func TestNewServerConfig_AppliesDefaults(t *testing.T) {
	serverCfg := newServerConfig(&StructuredConfig{})

	assert.Equal(t, defaultServerAddress, serverCfg.HTTP.Address)
	assert.Equal(t, defaultServerRequestTimeout, serverCfg.HTTP.RequestTimeout)
	assert.Equal(t, defaultBackupsDir, serverCfg.Backups.Dir)
	assert.False(t, serverCfg.UsesS3())
}

func TestServerConfig_Validate(t *testing.T) {
	valid := func() *ServerConfig {
		cfg := newServerConfig(&StructuredConfig{})
		cfg.App.APIKey = "secret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *ServerConfig)
		wantErr error
	}{
		{
			name:   "defaults plus api key are valid",
			mutate: func(cfg *ServerConfig) {},
		},
		{
			name:    "missing api key",
			mutate:  func(cfg *ServerConfig) { cfg.App.APIKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *ServerConfig) { cfg.HTTP.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "s3 bucket without region",
			mutate:  func(cfg *ServerConfig) { cfg.Backups.S3Bucket = "vault-backups" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "s3 bucket with region is valid",
			mutate: func(cfg *ServerConfig) {
				cfg.Backups.S3Bucket = "vault-backups"
				cfg.Backups.S3Region = "eu-central-1"
			},
		},
		{
			name:    "disk store without dir",
			mutate:  func(cfg *ServerConfig) { cfg.Backups.Dir = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

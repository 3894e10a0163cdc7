package config

import (
	"fmt"
	"time"
)

// Defaults applied by the per-role config views when a field has not been
// set by any source. Timing defaults match the documented behavior of the
// reveal countdown and the health probe.
const (
	defaultAppName          = "pin-vault"
	defaultClientDSN        = "pin-vault.db"
	defaultRequestTimeout   = 10 * time.Second
	defaultRevealVisibleFor = 3000 * time.Millisecond
	defaultRevealTick       = 50 * time.Millisecond
	defaultProbeTimeout     = 3 * time.Second
	defaultWatchInterval    = 30 * time.Second
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Name is the application label used in backup envelopes and as the
	// `app` parameter of backup operations.
	Name string
	// Version is the application version carried in envelope metadata.
	Version string
	// APIKey is the static token sent in the X-API-KEY header.
	APIKey string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// RequestTimeout is the default timeout for outbound client requests.
	// The backup server address itself is not configuration: it is set at
	// runtime through the connection store and persisted locally.
	RequestTimeout time.Duration
}

// ClientDB contains local key-value database settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientReveal holds reveal countdown timing for the client.
type ClientReveal struct {
	// VisibleFor is how long a revealed PIN stays visible.
	VisibleFor time.Duration
	// Tick is the progress recomputation interval.
	Tick time.Duration
}

// ClientHealth holds probe timing for the client.
type ClientHealth struct {
	// ProbeTimeout bounds a single health probe.
	ProbeTimeout time.Duration
	// WatchInterval is the background re-probe interval.
	WatchInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Reveal contains reveal countdown timing.
	Reveal ClientReveal
	// Health contains probe timing.
	Health ClientHealth
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, fills documented defaults for fields no
// source set, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Name:    cfg.App.Name,
			Version: cfg.App.Version,
			APIKey:  cfg.App.APIKey,
		},
		Adapter: ClientAdapter{
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Reveal: ClientReveal{
			VisibleFor: cfg.Reveal.VisibleFor,
			Tick:       cfg.Reveal.Tick,
		},
		Health: ClientHealth{
			ProbeTimeout:  cfg.Health.ProbeTimeout,
			WatchInterval: cfg.Health.WatchInterval,
		},
	}

	if clientCfg.App.Name == "" {
		clientCfg.App.Name = defaultAppName
	}
	if clientCfg.Storage.DB.DSN == "" {
		clientCfg.Storage.DB.DSN = defaultClientDSN
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if clientCfg.Reveal.VisibleFor == 0 {
		clientCfg.Reveal.VisibleFor = defaultRevealVisibleFor
	}
	if clientCfg.Reveal.Tick == 0 {
		clientCfg.Reveal.Tick = defaultRevealTick
	}
	if clientCfg.Health.ProbeTimeout == 0 {
		clientCfg.Health.ProbeTimeout = defaultProbeTimeout
	}
	if clientCfg.Health.WatchInterval == 0 {
		clientCfg.Health.WatchInterval = defaultWatchInterval
	}

	return clientCfg
}

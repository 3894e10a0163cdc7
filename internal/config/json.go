package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with snake_case JSON tags
// and string-friendly durations. It exists only as a decode target for the
// optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Name    string `json:"name"`
		Version string `json:"version"`
		APIKey  string `json:"api_key"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`

		Backups struct {
			Dir string `json:"dir"`
			S3  struct {
				Bucket   string `json:"bucket"`
				Region   string `json:"region"`
				Endpoint string `json:"endpoint"`
			} `json:"s3,omitempty"`
		} `json:"backups,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Reveal struct {
		VisibleFor Duration `json:"visible_for"`
		Tick       Duration `json:"tick"`
	} `json:"reveal,omitempty"`

	Health struct {
		ProbeTimeout  Duration `json:"probe_timeout"`
		WatchInterval Duration `json:"watch_interval"`
	} `json:"health,omitempty"`
}

// parseJSON loads the config file at path and converts it into a regular
// [StructuredConfig] layer. The returned layer never carries a JSONFilePath,
// so a config file cannot chain-load another one.
func parseJSON(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var jsonCfg StructuredJSONConfig
	if err := json.Unmarshal(data, &jsonCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	return jsonCfg.toConfig(), nil
}

func (j *StructuredJSONConfig) toConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name:    j.App.Name,
			Version: j.App.Version,
			APIKey:  j.App.APIKey,
		},
		Storage: Storage{
			DB: DB{
				DSN: j.Storage.DB.DSN,
			},
			Backups: Backups{
				Dir: j.Storage.Backups.Dir,
				S3: S3{
					Bucket:   j.Storage.Backups.S3.Bucket,
					Region:   j.Storage.Backups.S3.Region,
					Endpoint: j.Storage.Backups.S3.Endpoint,
				},
			},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Reveal: Reveal{
			VisibleFor: time.Duration(j.Reveal.VisibleFor),
			Tick:       time.Duration(j.Reveal.Tick),
		},
		Health: Health{
			ProbeTimeout:  time.Duration(j.Health.ProbeTimeout),
			WatchInterval: time.Duration(j.Health.WatchInterval),
		},
	}
}

// Duration decodes from either a time.ParseDuration string ("3s", "50ms")
// or a raw nanosecond number, so config files can use whichever reads better.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		parsed, err := time.ParseDuration(s)
		if err != nil {
			return err
		}

		*d = Duration(parsed)
		return nil
	}

	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}

	*d = Duration(time.Duration(n))
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder assembles the final config from layered sources.
// Layers are merged in the order they were added and earlier layers win:
// a field set by an earlier layer is never overwritten by a later one.
type configBuilder struct {
	layers []*StructuredConfig
	err    error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{}
}

func (b *configBuilder) layer(cfg *StructuredConfig) *configBuilder {
	b.layers = append(b.layers, cfg)
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := new(StructuredConfig)
	if err := parseEnv(cfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.layer(cfg)
}

func (b *configBuilder) withFlags() *configBuilder {
	return b.layer(ParseFlags())
}

// withJSON adds the optional file layer. The file path comes from the
// layers already added, so withJSON must run after withEnv and withFlags.
// No path means no file layer.
func (b *configBuilder) withJSON() *configBuilder {
	path := b.jsonPath()
	if path == "" {
		return b
	}

	cfg, err := parseJSON(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.layer(cfg)
}

// jsonPath returns the config file path carried by the latest layer that
// set one, or "" when no layer did.
func (b *configBuilder) jsonPath() string {
	var path string
	for _, cfg := range b.layers {
		if cfg.JSONFilePath != "" {
			path = cfg.JSONFilePath
		}
	}

	return path
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.layers {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging config layers: %w", err)
		}
	}

	return merged, merged.validate()
}

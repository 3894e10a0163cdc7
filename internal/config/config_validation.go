// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The merged config itself is permissive: role-specific requirements are
// enforced by the [ClientConfig] and [ServerConfig] views, which know which
// fields their runtime actually needs.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Reveal.VisibleFor <= 0 || cfg.Reveal.Tick <= 0 || cfg.Reveal.Tick >= cfg.Reveal.VisibleFor {
		return ErrInvalidRevealConfigs
	}

	if cfg.Health.ProbeTimeout <= 0 || cfg.Health.WatchInterval <= 0 {
		return ErrInvalidHealthConfigs
	}

	if cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.APIKey == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.HTTP.Address == "" || cfg.HTTP.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.UsesS3() {
		if cfg.Backups.S3Region == "" {
			return ErrInvalidStorageConfigs
		}
	} else if cfg.Backups.Dir == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

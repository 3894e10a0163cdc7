// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from process environment variables. Variable names
// come from the `env` and `envPrefix` tags on [StructuredConfig] and its
// nested sections, so APP_NAME lands in App.Name and so on.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error reading env configs: %w", err)
	}

	return nil
}

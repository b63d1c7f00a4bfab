// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environment variables. Fields are mapped via
// the `env` and `envPrefix` tags declared on [StructuredConfig] and its
// nested sections, so variables like AUTH_TOKEN_SIGN_KEY or
// STORAGE_DB_DATABASE_URI land in the matching fields.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Variable names are the
// concatenated envPrefix and env tags of [StructuredConfig], for example
// STORAGE_DB_DATABASE_URI or APP_BCRYPT_COST. Unset variables leave their
// fields zero so later sources and defaults can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}

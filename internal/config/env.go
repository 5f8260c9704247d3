// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from the process environment. Field names come from
// the `env` and `envPrefix` tags on [StructuredConfig]. Variables that are
// set to an empty string count as unset.
func parseEnv(cfg *StructuredConfig) error {
	err := env.ParseWithOptions(cfg, env.Options{
		Environment: nonEmptyEnvironment(),
	})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

var osEnviron = os.Environ

func nonEmptyEnvironment() map[string]string {
	vars := env.ToMap(osEnviron())
	for k, v := range vars {
		if v == "" {
			delete(vars, k)
		}
	}
	return vars
}

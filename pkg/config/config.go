/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config loads the netaudit run configuration from a local JSON
// file, with environment overrides for secrets.
package config

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/carverauto/netaudit/pkg/logger"
	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/reconciler"
)

// EnvAPIToken overrides dashboard.api_token when set, so tokens can stay
// out of config files.
const EnvAPIToken = "NETAUDIT_API_TOKEN"

var errMissingDesignFile = errors.New("design_file is required")

// Config is the top-level run configuration.
type Config struct {
	Dashboard  meraki.Config     `json:"dashboard"`
	Engine     reconciler.Config `json:"engine"`
	Logging    *logger.Config    `json:"logging,omitempty"`
	DesignFile string            `json:"design_file"`
}

// LoadFromFile reads, overrides, and validates the configuration at path.
func LoadFromFile(_ context.Context, path string, cfg *Config, log logger.Logger) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	if token := os.Getenv(EnvAPIToken); token != "" {
		cfg.Dashboard.APIToken = token
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if log != nil {
		log.Debug().
			Str("path", path).
			Str("design_file", cfg.DesignFile).
			Msg("Loaded configuration")
	}

	return nil
}

// Validate checks required fields and applies defaults section by
// section.
func (c *Config) Validate() error {
	if c.DesignFile == "" {
		return errMissingDesignFile
	}

	if err := c.Dashboard.Validate(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}

	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	if c.Logging == nil {
		c.Logging = logger.DefaultConfig()
	}

	return nil
}

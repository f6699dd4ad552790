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

package meraki

import (
	"time"

	"github.com/carverauto/netaudit/pkg/models"
)

const (
	defaultBaseURL      = "https://api.meraki.com/api/v1"
	defaultFetchTimeout = 30 * time.Second

	defaultMaxRetries      = 3
	defaultInitialInterval = 500 * time.Millisecond
	defaultMaxInterval     = 30 * time.Second
)

// RetryConfig bounds the retry budget for transient dashboard errors.
// MaxRetries counts retries after the first attempt.
type RetryConfig struct {
	MaxRetries      int             `json:"max_retries"`
	InitialInterval models.Duration `json:"initial_interval"`
	MaxInterval     models.Duration `json:"max_interval"`
}

type Config struct {
	BaseURL        string          `json:"base_url"`
	APIToken       string          `json:"api_token"`
	OrganizationID string          `json:"organization_id"`
	FetchTimeout   models.Duration `json:"fetch_timeout"`
	Retry          RetryConfig     `json:"retry"`
}

func (c *Config) Validate() error {
	if c.APIToken == "" {
		return errMissingAPIToken
	}

	if c.OrganizationID == "" {
		return errMissingOrgID
	}

	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}

	if time.Duration(c.FetchTimeout) == 0 {
		c.FetchTimeout = models.Duration(defaultFetchTimeout)
	}

	if c.Retry.MaxRetries == 0 {
		c.Retry.MaxRetries = defaultMaxRetries
	}

	if time.Duration(c.Retry.InitialInterval) == 0 {
		c.Retry.InitialInterval = models.Duration(defaultInitialInterval)
	}

	if time.Duration(c.Retry.MaxInterval) == 0 {
		c.Retry.MaxInterval = models.Duration(defaultMaxInterval)
	}

	return nil
}

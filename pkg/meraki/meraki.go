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

// Package meraki is a client for the Meraki Dashboard API, covering the
// read-only endpoints netaudit needs to observe device state. Transient
// faults (rate limiting, server errors, timeouts) are retried with
// exponential backoff inside a bounded budget; auth rejections and
// unknown resources surface immediately.
package meraki

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/carverauto/netaudit/pkg/logger"
)

// Client talks to one dashboard organization.
type Client struct {
	config     Config
	httpClient HTTPClient
	logger     logger.Logger
}

// NewClient validates the configuration and returns a ready client.
func NewClient(config Config, log logger.Logger) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{},
		logger:     log,
	}, nil
}

type response struct {
	body   []byte
	header http.Header
}

// get fetches an API path relative to the configured base URL.
func (c *Client) get(ctx context.Context, path string, query url.Values) (*response, error) {
	reqURL := c.config.BaseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	return c.getURL(ctx, reqURL)
}

// getURL fetches an absolute URL with the retry policy applied. Each
// attempt gets its own fetch timeout; the parent context cancels the
// whole budget.
func (c *Client) getURL(ctx context.Context, reqURL string) (*response, error) {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Duration(c.config.Retry.InitialInterval)
	bo.MaxInterval = time.Duration(c.config.Retry.MaxInterval)
	bo.Multiplier = 1.6
	bo.RandomizationFactor = 0.2

	operation := func() (*response, error) {
		resp, err := c.attempt(ctx, reqURL)
		if err == nil {
			return resp, nil
		}

		if ctx.Err() != nil {
			return nil, backoff.Permanent(ctx.Err())
		}

		var te *TransientError
		if errors.As(err, &te) {
			c.logger.Warn().Err(err).Str("url", reqURL).Msg("Transient dashboard error, retrying")

			if te.RetryAfter > 0 {
				// Keep the transient classification visible to callers
				// while letting the backoff honor the server's hint.
				return nil, errors.Join(te, &backoff.RetryAfterError{
					Duration: time.Duration(te.RetryAfter) * time.Second,
				})
			}

			return nil, err
		}

		return nil, backoff.Permanent(err)
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(bo),
		backoff.WithMaxTries(uint(c.config.Retry.MaxRetries)+1),
	)
}

func (c *Client) attempt(ctx context.Context, reqURL string) (*response, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.config.FetchTimeout))
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Cisco-Meraki-API-Key", c.config.APIToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransientError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransientError{Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return &response{body: body, header: resp.Header}, nil
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrAuth, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, reqURL)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, &TransientError{
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header),
		}
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, &TransientError{StatusCode: resp.StatusCode}
	default:
		return nil, fmt.Errorf("%w: %d, response: %s", errUnexpectedStatusCode,
			resp.StatusCode, string(body))
	}
}

func parseRetryAfter(header http.Header) int {
	value := header.Get("Retry-After")
	if value == "" {
		return 0
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}

	return seconds
}

// parseNextLink extracts the rel=next target from a Link header, or ""
// when there is no next page.
func parseNextLink(header string) string {
	for _, part := range strings.Split(header, ",") {
		sections := strings.Split(part, ";")
		if len(sections) < 2 {
			continue
		}

		rel := strings.TrimSpace(sections[1])
		if rel == "rel=next" || rel == `rel="next"` {
			return strings.Trim(strings.TrimSpace(sections[0]), "<>")
		}
	}

	return ""
}

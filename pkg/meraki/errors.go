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
	"errors"
	"fmt"
)

var (
	// ErrAuth marks a rejected or missing API token. Never retried; the
	// whole run stops on it.
	ErrAuth = errors.New("dashboard authentication failed")

	// ErrNotFound marks a 404 from the dashboard, including name lookups
	// that match no device in the organization.
	ErrNotFound = errors.New("not found")

	errUnexpectedStatusCode = errors.New("unexpected status code")
	errMissingAPIToken      = errors.New("api_token is required")
	errMissingOrgID         = errors.New("organization_id is required")
)

// TransientError marks a fault worth retrying: rate limiting, server
// errors, and request timeouts. RetryAfter carries the server's backoff
// hint when one was sent.
type TransientError struct {
	StatusCode int
	RetryAfter int // seconds, 0 when the server sent no hint
	Err        error
}

func (e *TransientError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transient dashboard error: status %d", e.StatusCode)
	}

	return fmt.Sprintf("transient dashboard error: %v", e.Err)
}

func (e *TransientError) Unwrap() error {
	return e.Err
}

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

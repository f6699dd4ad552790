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

package models

import "time"

// DeviceReport is the complete, ordered result set for one device.
// Status is FAIL when any result is FAIL; INFO and SKIP never affect it.
type DeviceReport struct {
	Device  string        `json:"device"`
	Family  string        `json:"family,omitempty"`
	Status  Status        `json:"status"`
	Results []CheckResult `json:"results"`
}

// IncompleteDevice records a device that could not be evaluated. Devices
// listed here have no results in the report.
type IncompleteDevice struct {
	Device string `json:"device"`
	Reason string `json:"reason"`
}

// RunReport is the aggregate outcome of one reconciliation run. Devices
// is sorted by device name and each device's results are in deterministic
// order, so two runs over identical inputs marshal to identical bytes
// apart from RunID and the timestamps.
type RunReport struct {
	RunID       string             `json:"run_id"`
	StartedAt   time.Time          `json:"started_at"`
	CompletedAt time.Time          `json:"completed_at"`
	Status      Status             `json:"status"`
	Devices     []DeviceReport     `json:"devices"`
	Incomplete  []IncompleteDevice `json:"incomplete,omitempty"`
}

// FailCount returns the number of FAIL results for the device.
func (r *DeviceReport) FailCount() int {
	n := 0

	for i := range r.Results {
		if r.Results[i].Status == StatusFail {
			n++
		}
	}

	return n
}

// Counts returns the number of results per status for the whole run.
func (r *RunReport) Counts() map[Status]int {
	counts := make(map[Status]int)

	for i := range r.Devices {
		for j := range r.Devices[i].Results {
			counts[r.Devices[i].Results[j].Status]++
		}
	}

	return counts
}

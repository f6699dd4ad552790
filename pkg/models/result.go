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

// Status is the outcome of a single field comparison.
type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
	StatusInfo Status = "INFO"
	StatusSkip Status = "SKIP"
)

// Check categories and kinds, in fixed execution order.
const (
	CategoryTopology = "topology"
	CategoryVLANs    = "vlans"

	CheckDevice      = "device"
	CheckInterfaces  = "interfaces"
	CheckCabling     = "cabling"
	CheckIPAddrs     = "ipaddrs"
	CheckVLANs       = "vlans"
	CheckSwitchports = "switchports"
)

// CheckResult is one field-level comparison outcome. Expected and Actual
// hold JSON-serializable values only; collection values are sorted slices
// so that serialized reports are byte-stable for identical inputs.
type CheckResult struct {
	Category string `json:"category"`
	Check    string `json:"check"`
	Device   string `json:"device"`

	// Object names the element under test: a port name, "Vlan10", a
	// VLAN id rendered as decimal, or "" for device-scope results.
	Object string `json:"object,omitempty"`

	// Field is the compared field path within the object, e.g. "used",
	// "oper_up", "trunk_allowed_vlans".
	Field string `json:"field"`

	Status   Status `json:"status"`
	Expected any    `json:"expected,omitempty"`
	Actual   any    `json:"actual,omitempty"`
	Message  string `json:"message,omitempty"`
}

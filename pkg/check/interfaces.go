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

package check

import (
	"github.com/carverauto/netaudit/pkg/models"
)

// Interfaces verifies each designed physical port against the reported
// port inventory. Reserved ports are reported as INFO without
// comparison. When the design marks a port unused, only the usage flag
// is checked; operational state on an unused port is not a fault.
func Interfaces(design *models.DeviceDesign, state *models.DeviceState) []models.CheckResult {
	if len(design.Interfaces) == 0 {
		return nil
	}

	if !state.Interfaces.Known {
		return categoryUnknown("interfaces", "device reported no interface status")
	}

	var results []models.CheckResult

	for _, want := range design.Interfaces {
		actual := state.Interfaces.Interface(want.Name)
		if actual == nil {
			results = append(results, failMissing(want.Name, "interface not reported"))
			continue
		}

		if want.Reserved {
			results = append(results, models.CheckResult{
				Object:  want.Name,
				Field:   "reserved",
				Status:  models.StatusInfo,
				Actual:  *actual,
				Message: "reserved interface, current state reported only",
			})

			continue
		}

		if want.Used == actual.Used {
			results = append(results, passed(want.Name, "used", want.Used, actual.Used))
		} else {
			results = append(results, failed(want.Name, "used", want.Used, actual.Used))
		}

		if !want.Used {
			continue
		}

		results = append(results, compareBoolField(want.Name, "oper_up", want.OperUp, actual.OperUp))
		results = append(results, compareIntField(want.Name, "speed", want.SpeedMbps, actual.SpeedMbps))
	}

	return results
}

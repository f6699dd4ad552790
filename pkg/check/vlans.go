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
	"slices"
	"strconv"
	"strings"

	"github.com/carverauto/netaudit/pkg/models"
)

// VLANs verifies the designed VLAN set is exactly the set in use on the
// device, then checks per-VLAN port membership where both the design
// pins members and the device can report them. A VLAN whose measured
// membership is nil was observed in use without port visibility, so a
// designed membership yields INFO rather than FAIL.
func VLANs(design *models.DeviceDesign, state *models.DeviceState) []models.CheckResult {
	if len(design.VLANs) == 0 {
		return nil
	}

	if !state.VLANs.Known {
		return categoryUnknown("vlans", "device reported no vlan usage")
	}

	expected := make([]int, 0, len(design.VLANs))
	for _, v := range design.VLANs {
		expected = append(expected, v.ID)
	}

	actual := make([]int, 0, len(state.VLANs.Items))
	for _, v := range state.VLANs.Items {
		actual = append(actual, v.ID)
	}

	results := CompareSets("", "exclusive_list", expected, actual)

	for _, want := range design.VLANs {
		measured := state.VLANs.VLAN(want.ID)
		if measured == nil {
			// Already reported as missing by the set comparison.
			continue
		}

		wantMembers := designedMembers(want)
		if len(wantMembers) == 0 {
			continue
		}

		object := strconv.Itoa(want.ID)

		if measured.Interfaces == nil {
			results = append(results, models.CheckResult{
				Object:   object,
				Field:    "interfaces",
				Status:   models.StatusInfo,
				Expected: wantMembers,
				Message:  "port membership not observable",
			})

			continue
		}

		gotMembers := slices.Clone(measured.Interfaces)
		models.SortPorts(gotMembers)

		if slices.Equal(wantMembers, gotMembers) {
			results = append(results, passed(object, "interfaces", wantMembers, gotMembers))
		} else {
			results = append(results, failed(object, "interfaces", wantMembers, gotMembers))
		}
	}

	return results
}

// designedMembers returns the sorted designed membership of a VLAN,
// excluding SVI names which belong to the ipaddrs check.
func designedMembers(v models.VLANDesign) []string {
	members := make([]string, 0, len(v.Interfaces))

	for _, name := range v.Interfaces {
		if strings.HasPrefix(name, "Vlan") {
			continue
		}

		members = append(members, name)
	}

	models.SortPorts(members)

	return members
}

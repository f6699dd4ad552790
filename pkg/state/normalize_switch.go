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

package state

import (
	"fmt"
	"sort"

	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/models"
)

type switchInput struct {
	ports         []meraki.SwitchPort
	portsKnown    bool
	statuses      []meraki.SwitchPortStatus
	statusesKnown bool
}

// normalizeSwitch reduces switch payloads to canonical state. Operational
// facts come from the port statuses; layer-2 configuration and the VLAN
// usage correlation come from the port configs. The design is consulted
// only where the vendor data is open-ended: expanding an allow-all trunk
// into concrete VLAN ids and naming the VLANs in use.
func normalizeSwitch(
	design *models.DeviceDesign, device *meraki.Device, in switchInput) (*models.DeviceState, error) {
	st := newDeviceState(device, models.FamilySwitch)

	st.Interfaces = switchInterfaces(in)
	st.Cabling = switchCabling(in)

	switchports, err := switchSwitchports(in)
	if err != nil {
		return nil, err
	}

	st.Switchports = switchports

	vlans, err := switchVLANs(design, in)
	if err != nil {
		return nil, err
	}

	st.VLANs = vlans

	// MS devices carry no routed interfaces of their own.
	st.IPInterfaces = models.IPInterfaceSet{Known: false}

	return st, nil
}

func switchInterfaces(in switchInput) models.InterfaceSet {
	set := models.InterfaceSet{Known: in.statusesKnown}
	if !in.statusesKnown {
		return set
	}

	for _, status := range in.statuses {
		up := status.Status == "Connected"

		set.Items = append(set.Items, models.InterfaceState{
			Name:      status.PortID,
			Used:      status.Enabled,
			OperUp:    &up,
			SpeedMbps: parseSpeed(status.Speed),
		})
	}

	sort.Slice(set.Items, func(i, j int) bool {
		return models.PortLess(set.Items[i].Name, set.Items[j].Name)
	})

	return set
}

func switchCabling(in switchInput) models.CablingSet {
	set := models.CablingSet{Known: in.statusesKnown}
	if !in.statusesKnown {
		return set
	}

	for _, status := range in.statuses {
		if nei := neighborState(status.PortID, status.LLDP, status.CDP); nei != nil {
			set.Items = append(set.Items, *nei)
		}
	}

	sort.Slice(set.Items, func(i, j int) bool {
		return models.PortLess(set.Items[i].Port, set.Items[j].Port)
	})

	return set
}

func switchSwitchports(in switchInput) (models.SwitchportSet, error) {
	set := models.SwitchportSet{Known: in.portsKnown}
	if !in.portsKnown {
		return set, nil
	}

	for _, port := range in.ports {
		sp := models.SwitchportState{
			Port:       port.PortID,
			Mode:       port.Type,
			Enabled:    port.Enabled,
			AccessVLAN: models.UnknownInt,
			NativeVLAN: models.UnknownInt,
		}

		switch port.Type {
		case models.SwitchportAccess:
			sp.AccessVLAN = port.VLAN

			// An access port parked on VLAN 1 and shut down is how an
			// unused MS port presents.
			sp.Unused = port.VLAN == 1 && !port.Enabled
		case models.SwitchportTrunk:
			sp.NativeVLAN = port.VLAN

			if port.AllowedVLANs == "all" {
				sp.AllowAll = true
			} else {
				ids, err := ParseVLANRange(port.AllowedVLANs)
				if err != nil {
					return set, fmt.Errorf("port %s: %w", port.PortID, err)
				}

				sp.AllowedVLANs = ids
			}
		}

		set.Items = append(set.Items, sp)
	}

	sort.Slice(set.Items, func(i, j int) bool {
		return models.PortLess(set.Items[i].Port, set.Items[j].Port)
	})

	return set, nil
}

// switchVLANs computes the VLAN usage correlation. The dashboard has no
// direct VLAN-to-port route for switches, so membership is derived from
// the port configs: access ports contribute their VLAN, trunks
// contribute their allowed list. A trunk native VLAN counts as in use on
// the device but not as a port membership. Allow-all trunks expand to
// the designed VLAN ids since "all" has no concrete bound of its own.
func switchVLANs(design *models.DeviceDesign, in switchInput) (models.VLANSet, error) {
	set := models.VLANSet{Known: in.portsKnown}
	if !in.portsKnown {
		return set, nil
	}

	designIDs := make([]int, 0, len(design.VLANs))
	for _, vlan := range design.VLANs {
		designIDs = append(designIDs, vlan.ID)
	}

	deviceVLANs := make(map[int]bool)
	membership := make(map[int]map[string]bool)

	member := func(id int, port string) {
		if membership[id] == nil {
			membership[id] = make(map[string]bool)
		}

		membership[id][port] = true
	}

	for _, port := range in.ports {
		if port.Type == models.SwitchportAccess {
			if port.VLAN == 1 && !port.Enabled {
				continue
			}

			deviceVLANs[port.VLAN] = true
			member(port.VLAN, port.PortID)

			continue
		}

		deviceVLANs[port.VLAN] = true

		var portVLANs []int

		if port.AllowedVLANs == "all" {
			portVLANs = designIDs
		} else {
			ids, err := ParseVLANRange(port.AllowedVLANs)
			if err != nil {
				return set, fmt.Errorf("port %s: %w", port.PortID, err)
			}

			portVLANs = ids
		}

		for _, id := range portVLANs {
			deviceVLANs[id] = true
			member(id, port.PortID)
		}
	}

	dropDefaultVLANIfIdle(deviceVLANs, membership, func(port string) bool {
		for _, cfg := range in.ports {
			if cfg.PortID == port {
				return !cfg.Enabled
			}
		}

		return false
	})

	set.Items = vlanStates(design, deviceVLANs, membership, false)

	return set, nil
}

// dropDefaultVLANIfIdle removes VLAN 1 when every port associated with
// it is disabled. The default VLAN shows up on factory-state ports and
// is not really in use in that case.
func dropDefaultVLANIfIdle(deviceVLANs map[int]bool, membership map[int]map[string]bool, disabled func(string) bool) {
	ports := membership[1]
	if len(ports) == 0 {
		return
	}

	for port := range ports {
		if !disabled(port) {
			return
		}
	}

	delete(membership, 1)
	delete(deviceVLANs, 1)
}

// vlanStates renders the correlation maps as a sorted VLAN list. Names
// come from the design when it declares the VLAN. When memberless is
// true, membership is reported as unobservable rather than empty.
func vlanStates(
	design *models.DeviceDesign, deviceVLANs map[int]bool,
	membership map[int]map[string]bool, memberless bool) []models.VLANState {
	ids := make([]int, 0, len(deviceVLANs))
	for id := range deviceVLANs {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	items := make([]models.VLANState, 0, len(ids))

	for _, id := range ids {
		item := models.VLANState{ID: id, Name: designVLANName(design, id)}

		if !memberless {
			ports := make([]string, 0, len(membership[id]))
			for port := range membership[id] {
				ports = append(ports, port)
			}

			models.SortPorts(ports)

			item.Interfaces = ports
		}

		items = append(items, item)
	}

	return items
}

func designVLANName(design *models.DeviceDesign, id int) string {
	for _, vlan := range design.VLANs {
		if vlan.ID == id {
			return vlan.Name
		}
	}

	return ""
}

// neighborState reduces the discovery protocol data for one port. LLDP
// is preferred; CDP fills in when LLDP is absent.
func neighborState(port string, lldp *meraki.LLDPSummary, cdp *meraki.CDPSummary) *models.CablingState {
	switch {
	case lldp != nil && lldp.SystemName != "":
		return &models.CablingState{Port: port, PeerName: lldp.SystemName, PeerPort: lldp.PortID}
	case cdp != nil && cdp.DeviceID != "":
		return &models.CablingState{Port: port, PeerName: cdp.DeviceID, PeerPort: cdp.PortID}
	default:
		return nil
	}
}

// newDeviceState seeds the canonical record with the device identity as
// reported by the inventory.
func newDeviceState(device *meraki.Device, family string) *models.DeviceState {
	return &models.DeviceState{
		Name:         device.Name,
		Serial:       device.Serial,
		ProductModel: device.Model,
		Family:       family,
		Raw:          deviceRaw(device),
	}
}

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
	"net/netip"
	"sort"
	"strconv"
	"strings"

	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/models"
)

type applianceInput struct {
	ports          []meraki.AppliancePort
	portsKnown     bool
	vlans          []meraki.ApplianceVLAN
	vlansKnown     bool
	neighbors      *meraki.LLDPCDP
	neighborsKnown bool
}

// normalizeAppliance reduces appliance payloads to canonical state. LAN
// ports are addressed by number, routed VLAN interfaces take the
// "Vlan<id>" naming convention, and cabling comes from the per-device
// discovery protocol view.
func normalizeAppliance(
	design *models.DeviceDesign, device *meraki.Device, in applianceInput) (*models.DeviceState, error) {
	st := newDeviceState(device, models.FamilyAppliance)

	st.Interfaces = applianceInterfaces(in)
	st.Cabling = applianceCabling(in)

	switchports, err := applianceSwitchports(in)
	if err != nil {
		return nil, err
	}

	st.Switchports = switchports

	vlans, err := applianceVLANs(design, in)
	if err != nil {
		return nil, err
	}

	st.VLANs = vlans

	ipInterfaces, err := applianceIPInterfaces(in)
	if err != nil {
		return nil, err
	}

	st.IPInterfaces = ipInterfaces

	return st, nil
}

// applianceInterfaces reports the LAN ports. The ports route carries
// only configuration, so operational status and speed stay unknown.
func applianceInterfaces(in applianceInput) models.InterfaceSet {
	set := models.InterfaceSet{Known: in.portsKnown}
	if !in.portsKnown {
		return set
	}

	for _, port := range in.ports {
		set.Items = append(set.Items, models.InterfaceState{
			Name:      strconv.Itoa(port.Number),
			Used:      port.Enabled,
			SpeedMbps: models.UnknownInt,
		})
	}

	sort.Slice(set.Items, func(i, j int) bool {
		return models.PortLess(set.Items[i].Name, set.Items[j].Name)
	})

	return set
}

// applianceCabling maps the discovery view onto the numbered LAN ports.
// The view keys ports as "port<N>"; wan uplinks are ignored here.
func applianceCabling(in applianceInput) models.CablingSet {
	set := models.CablingSet{Known: in.neighborsKnown && in.neighbors != nil}
	if !set.Known {
		return set
	}

	for name, data := range in.neighbors.Ports {
		local, ok := strings.CutPrefix(name, "port")
		if !ok {
			continue
		}

		if nei := neighborState(local, data.LLDP, data.CDP); nei != nil {
			set.Items = append(set.Items, *nei)
		}
	}

	sort.Slice(set.Items, func(i, j int) bool {
		return models.PortLess(set.Items[i].Port, set.Items[j].Port)
	})

	return set
}

func applianceSwitchports(in applianceInput) (models.SwitchportSet, error) {
	set := models.SwitchportSet{Known: in.portsKnown}
	if !in.portsKnown {
		return set, nil
	}

	for _, port := range in.ports {
		name := strconv.Itoa(port.Number)

		sp := models.SwitchportState{
			Port:         name,
			Mode:         port.Type,
			Enabled:      port.Enabled,
			AccessVLAN:   models.UnknownInt,
			NativeVLAN:   models.UnknownInt,
			DropUntagged: port.DropUntaggedTraffic,
			Unused:       applianceUnusedPort(port),
		}

		switch port.Type {
		case models.SwitchportAccess:
			sp.AccessVLAN = port.VLAN
		case models.SwitchportTrunk:
			sp.NativeVLAN = port.VLAN

			if port.AllowedVLANs == "all" {
				sp.AllowAll = true
			} else {
				ids, err := ParseVLANRange(port.AllowedVLANs)
				if err != nil {
					return set, fmt.Errorf("port %s: %w", name, err)
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

// applianceUnusedPort reports whether a LAN port is in the appliance
// equivalent of an unused state: disabled, trunking, and dropping
// untagged traffic.
func applianceUnusedPort(port meraki.AppliancePort) bool {
	return !port.Enabled && port.Type == models.SwitchportTrunk && port.DropUntaggedTraffic
}

// applianceVLANs computes VLAN usage from the LAN port configs. Unlike a
// switch, the configured VLAN of a port counts as a membership whether
// the port is access or trunk. Allow-all trunks expand to the designed
// VLANs that bind ports, and only while the port is enabled.
func applianceVLANs(design *models.DeviceDesign, in applianceInput) (models.VLANSet, error) {
	set := models.VLANSet{Known: in.portsKnown}
	if !in.portsKnown {
		return set, nil
	}

	var designIDs []int

	for _, vlan := range design.VLANs {
		if len(vlan.Interfaces) > 0 {
			designIDs = append(designIDs, vlan.ID)
		}
	}

	membership := make(map[int]map[string]bool)

	member := func(id int, port string) {
		if membership[id] == nil {
			membership[id] = make(map[string]bool)
		}

		membership[id][port] = true
	}

	for _, port := range in.ports {
		if applianceUnusedPort(port) {
			continue
		}

		name := strconv.Itoa(port.Number)

		if port.VLAN != 0 {
			member(port.VLAN, name)
		}

		if port.Type == models.SwitchportAccess {
			continue
		}

		var portVLANs []int

		if port.AllowedVLANs == "all" {
			if port.Enabled {
				portVLANs = designIDs
			}
		} else {
			ids, err := ParseVLANRange(port.AllowedVLANs)
			if err != nil {
				return set, fmt.Errorf("port %s: %w", name, err)
			}

			portVLANs = ids
		}

		for _, id := range portVLANs {
			member(id, name)
		}
	}

	deviceVLANs := make(map[int]bool, len(membership))
	for id := range membership {
		deviceVLANs[id] = true
	}

	dropDefaultVLANIfIdle(deviceVLANs, membership, func(port string) bool {
		for _, cfg := range in.ports {
			if strconv.Itoa(cfg.Number) == port {
				return !cfg.Enabled
			}
		}

		return false
	})

	set.Items = vlanStates(design, deviceVLANs, membership, false)

	return set, nil
}

// applianceIPInterfaces renders the routed VLANs as "Vlan<id>" layer-3
// interfaces carrying the appliance address at the subnet prefix length.
func applianceIPInterfaces(in applianceInput) (models.IPInterfaceSet, error) {
	set := models.IPInterfaceSet{Known: in.vlansKnown}
	if !in.vlansKnown {
		return set, nil
	}

	vlans := make([]meraki.ApplianceVLAN, len(in.vlans))
	copy(vlans, in.vlans)
	sort.Slice(vlans, func(i, j int) bool { return vlans[i].ID < vlans[j].ID })

	for _, vlan := range vlans {
		item := models.IPInterfaceState{Name: "Vlan" + strconv.Itoa(vlan.ID)}

		if vlan.ApplianceIP != "" && vlan.Subnet != "" {
			prefix, err := netip.ParsePrefix(vlan.Subnet)
			if err != nil {
				return set, fmt.Errorf("%w: vlan %d subnet %q", ErrNormalization, vlan.ID, vlan.Subnet)
			}

			item.CIDR = fmt.Sprintf("%s/%d", vlan.ApplianceIP, prefix.Bits())
		}

		set.Items = append(set.Items, item)
	}

	return set, nil
}

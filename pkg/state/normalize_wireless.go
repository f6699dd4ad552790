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
	"net"
	"sort"

	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/models"
)

// wiredUplink is the access point's wired port. SSID traffic and the
// management VLAN all ride it.
const wiredUplink = "wired0"

type wirelessInput struct {
	ssids          []meraki.SSID
	ssidsKnown     bool
	mgmt           *meraki.ManagementInterface
	mgmtKnown      bool
	neighbors      *meraki.LLDPCDP
	neighborsKnown bool
}

// normalizeWireless reduces access point payloads to canonical state.
// APs expose no port inventory, so a wired port is considered present
// and in use when discovery data is seen on it; the wan1 uplink always
// exists. VLAN usage is the union of tagged SSID VLANs and the
// management VLAN, and the wired uplink presents as an implicit trunk
// carrying exactly those VLANs.
func normalizeWireless(
	design *models.DeviceDesign, device *meraki.Device, in wirelessInput) (*models.DeviceState, error) {
	st := newDeviceState(device, models.FamilyWireless)

	st.Interfaces = wirelessInterfaces(in)
	st.Cabling = wirelessCabling(in)

	ipInterfaces, err := wirelessIPInterfaces(in)
	if err != nil {
		return nil, err
	}

	st.IPInterfaces = ipInterfaces

	vlanIDs := wirelessVLANIDs(in)

	deviceVLANs := make(map[int]bool, len(vlanIDs))
	for _, id := range vlanIDs {
		deviceVLANs[id] = true
	}

	// Both sources must have reported for the VLAN picture to be
	// complete; a partial union would manufacture missing VLANs.
	st.VLANs = models.VLANSet{Known: in.ssidsKnown && in.mgmtKnown}
	if st.VLANs.Known {
		st.VLANs.Items = vlanStates(design, deviceVLANs, nil, true)
	}

	st.Switchports = wirelessSwitchports(in, vlanIDs)

	return st, nil
}

// wirelessInterfaces infers the wired ports from the discovery data.
// Seeing a neighbor is the only operational signal the AP offers, so a
// port with one is both used and up.
func wirelessInterfaces(in wirelessInput) models.InterfaceSet {
	set := models.InterfaceSet{Known: in.neighborsKnown && in.neighbors != nil}

	up := true

	if set.Known {
		for name, data := range in.neighbors.Ports {
			if name == "wan1" {
				continue
			}

			if neighborState(name, data.LLDP, data.CDP) == nil {
				continue
			}

			set.Items = append(set.Items, models.InterfaceState{
				Name:      name,
				Used:      true,
				OperUp:    &up,
				SpeedMbps: models.UnknownInt,
			})
		}
	}

	// wan1 always exists on an AP even when nothing is heard on it.
	set.Known = true
	set.Items = append(set.Items, models.InterfaceState{
		Name:      "wan1",
		Used:      true,
		SpeedMbps: models.UnknownInt,
	})

	sort.Slice(set.Items, func(i, j int) bool {
		return models.PortLess(set.Items[i].Name, set.Items[j].Name)
	})

	return set
}

// wirelessCabling reports neighbors keyed exactly as the discovery view
// names them, wan1 included.
func wirelessCabling(in wirelessInput) models.CablingSet {
	set := models.CablingSet{Known: in.neighborsKnown && in.neighbors != nil}
	if !set.Known {
		return set
	}

	for name, data := range in.neighbors.Ports {
		if nei := neighborState(name, data.LLDP, data.CDP); nei != nil {
			set.Items = append(set.Items, *nei)
		}
	}

	sort.Slice(set.Items, func(i, j int) bool {
		return models.PortLess(set.Items[i].Port, set.Items[j].Port)
	})

	return set
}

// wirelessIPInterfaces reports the uplink addressing. Only statically
// configured uplinks have a determinable address; a DHCP uplink is
// present with its address unknown.
func wirelessIPInterfaces(in wirelessInput) (models.IPInterfaceSet, error) {
	set := models.IPInterfaceSet{Known: in.mgmtKnown && in.mgmt != nil}
	if !set.Known {
		return set, nil
	}

	wans := []struct {
		name string
		cfg  *meraki.WANConfig
	}{
		{"wan1", in.mgmt.WAN1},
		{"wan2", in.mgmt.WAN2},
	}

	for _, wan := range wans {
		if wan.cfg == nil {
			continue
		}

		item := models.IPInterfaceState{Name: wan.name}

		if wan.cfg.UsingStaticIP && wan.cfg.StaticIP != "" {
			bits, ok := maskBits(wan.cfg.StaticSubnetMask)
			if !ok {
				return set, fmt.Errorf("%w: %s subnet mask %q", ErrNormalization, wan.name, wan.cfg.StaticSubnetMask)
			}

			item.CIDR = fmt.Sprintf("%s/%d", wan.cfg.StaticIP, bits)
		}

		set.Items = append(set.Items, item)
	}

	return set, nil
}

// wirelessVLANIDs is the set of VLANs the AP puts on the wire: the
// default VLAN of every SSID that tags traffic, plus the management
// VLAN when the uplink has one.
func wirelessVLANIDs(in wirelessInput) []int {
	seen := make(map[int]bool)

	if in.ssidsKnown {
		for _, ssid := range in.ssids {
			if ssid.UseVLANTagging {
				seen[ssid.DefaultVLANID] = true
			}
		}
	}

	if in.mgmtKnown && in.mgmt != nil && in.mgmt.WAN1 != nil && in.mgmt.WAN1.VLAN != 0 {
		seen[in.mgmt.WAN1.VLAN] = true
	}

	ids := make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}

	sort.Ints(ids)

	return ids
}

// wirelessSwitchports presents the wired uplink as a trunk carrying the
// in-use VLANs. The AP API exposes no native VLAN setting, so that
// field stays unknown.
func wirelessSwitchports(in wirelessInput, vlanIDs []int) models.SwitchportSet {
	set := models.SwitchportSet{Known: in.ssidsKnown && in.mgmtKnown}
	if !set.Known {
		return set
	}

	set.Items = []models.SwitchportState{{
		Port:         wiredUplink,
		Mode:         models.SwitchportTrunk,
		Enabled:      true,
		AccessVLAN:   models.UnknownInt,
		NativeVLAN:   models.UnknownInt,
		AllowedVLANs: vlanIDs,
	}}

	return set
}

// maskBits converts a dotted subnet mask to its prefix length.
func maskBits(mask string) (int, bool) {
	addr := net.ParseIP(mask)
	if addr == nil {
		return 0, false
	}

	v4 := addr.To4()
	if v4 == nil {
		return 0, false
	}

	ones, bits := net.IPMask(v4).Size()
	if bits == 0 {
		return 0, false
	}

	return ones, true
}

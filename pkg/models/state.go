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

// Product families, derived from the product model prefix.
const (
	FamilySwitch    = "switch"
	FamilyAppliance = "appliance"
	FamilyWireless  = "wireless"
)

// UnknownInt marks an integer field the vendor API did not report.
// Distinct from zero so that "not reported" never compares equal to a
// real value.
const UnknownInt = -1

// DeviceState is the canonical actual state of one device after
// normalization. Each category set carries a Known flag: false means the
// vendor surface for this family does not report that category at all,
// which downgrades the corresponding checks to INFO.
type DeviceState struct {
	Name         string         `json:"name"`
	Serial       string         `json:"serial"`
	ProductModel string         `json:"product_model"`
	Family       string         `json:"family"`
	Raw          map[string]any `json:"raw,omitempty"`

	Interfaces   InterfaceSet   `json:"interfaces"`
	Cabling      CablingSet     `json:"cabling"`
	IPInterfaces IPInterfaceSet `json:"ip_interfaces"`
	VLANs        VLANSet        `json:"vlans"`
	Switchports  SwitchportSet  `json:"switchports"`
}

// InterfaceSet holds the reported physical ports, or Known=false when the
// device did not report any port inventory.
type InterfaceSet struct {
	Known bool             `json:"known"`
	Items []InterfaceState `json:"items,omitempty"`
}

// InterfaceState is the canonical state of one physical port. OperUp is
// nil when the operational status was not reported; SpeedMbps is
// UnknownInt when no speed was reported.
type InterfaceState struct {
	Name      string `json:"name"`
	Used      bool   `json:"used"`
	OperUp    *bool  `json:"oper_up,omitempty"`
	SpeedMbps int    `json:"speed_mbps"`
}

// CablingSet holds the neighbors learned from LLDP, keyed by local port.
type CablingSet struct {
	Known bool           `json:"known"`
	Items []CablingState `json:"items,omitempty"`
}

// CablingState is one observed adjacency. PeerName is the neighbor's
// advertised system name as reported, un-normalized; hostname matching
// rules are applied at comparison time.
type CablingState struct {
	Port     string `json:"port"`
	PeerName string `json:"peer_name"`
	PeerPort string `json:"peer_port"`
}

// IPInterfaceSet holds the reported layer-3 interfaces.
type IPInterfaceSet struct {
	Known bool               `json:"known"`
	Items []IPInterfaceState `json:"items,omitempty"`
}

// IPInterfaceState is one logical interface and its primary address.
type IPInterfaceState struct {
	Name string `json:"name"`
	CIDR string `json:"cidr"`
}

// VLANSet holds the VLANs in use on the device.
type VLANSet struct {
	Known bool        `json:"known"`
	Items []VLANState `json:"items,omitempty"`
}

// VLANState is one VLAN and the switchports observed carrying it.
// Interfaces is sorted.
type VLANState struct {
	ID         int      `json:"id"`
	Name       string   `json:"name,omitempty"`
	Interfaces []string `json:"interfaces,omitempty"`
}

// SwitchportSet holds the layer-2 port configuration.
type SwitchportSet struct {
	Known bool              `json:"known"`
	Items []SwitchportState `json:"items,omitempty"`
}

// SwitchportState is the canonical layer-2 configuration of one port.
// AllowedVLANs is sorted; AllowAll true means the trunk carries every
// VLAN and AllowedVLANs is empty. AccessVLAN and NativeVLAN are
// UnknownInt when the vendor did not report them. Unused is a
// family-specific derived fact computed during normalization.
type SwitchportState struct {
	Port         string `json:"port"`
	Mode         string `json:"mode"`
	Enabled      bool   `json:"enabled"`
	AccessVLAN   int    `json:"access_vlan"`
	NativeVLAN   int    `json:"native_vlan"`
	AllowedVLANs []int  `json:"allowed_vlans,omitempty"`
	AllowAll     bool   `json:"allow_all,omitempty"`
	DropUntagged bool   `json:"drop_untagged,omitempty"`
	Unused       bool   `json:"unused,omitempty"`
}

// Interface returns the port with the given name, or nil.
func (s *InterfaceSet) Interface(name string) *InterfaceState {
	for i := range s.Items {
		if s.Items[i].Name == name {
			return &s.Items[i]
		}
	}

	return nil
}

// Neighbor returns the adjacency observed on the given local port, or nil.
func (s *CablingSet) Neighbor(port string) *CablingState {
	for i := range s.Items {
		if s.Items[i].Port == port {
			return &s.Items[i]
		}
	}

	return nil
}

// Interface returns the IP interface with the given name, or nil.
func (s *IPInterfaceSet) Interface(name string) *IPInterfaceState {
	for i := range s.Items {
		if s.Items[i].Name == name {
			return &s.Items[i]
		}
	}

	return nil
}

// VLAN returns the VLAN with the given id, or nil.
func (s *VLANSet) VLAN(id int) *VLANState {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}

	return nil
}

// Port returns the switchport with the given name, or nil.
func (s *SwitchportSet) Port(name string) *SwitchportState {
	for i := range s.Items {
		if s.Items[i].Port == name {
			return &s.Items[i]
		}
	}

	return nil
}

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

// Package models defines the shared data model for netaudit: the design
// (expected) types loaded from the design document, the canonical device
// state produced by normalization, and the check result and report types
// emitted by the reconciliation engine.
package models

// DeviceDesign is the expected state for one device. Zero values on
// optional fields (AccessVLAN, NativeVLAN, SpeedMbps) and nil pointers
// mean "no expectation"; checks emit SKIP for those fields.
type DeviceDesign struct {
	Name         string              `json:"name" yaml:"name"`
	ProductModel string              `json:"product_model" yaml:"product-model"`
	Serial       string              `json:"serial,omitempty" yaml:"serial,omitempty"`
	Site         string              `json:"site,omitempty" yaml:"site,omitempty"`
	Interfaces   []InterfaceDesign   `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
	Cabling      []CablingDesign     `json:"cabling,omitempty" yaml:"cabling,omitempty"`
	IPAddrs      []IPInterfaceDesign `json:"ipaddrs,omitempty" yaml:"ipaddrs,omitempty"`
	VLANs        []VLANDesign        `json:"vlans,omitempty" yaml:"vlans,omitempty"`
	Switchports  []SwitchportDesign  `json:"switchports,omitempty" yaml:"switchports,omitempty"`
}

// InterfaceDesign is the expected state of a physical port.
type InterfaceDesign struct {
	Name      string `json:"name" yaml:"name"`
	Used      bool   `json:"used" yaml:"used"`
	OperUp    *bool  `json:"oper_up,omitempty" yaml:"oper-up,omitempty"`
	SpeedMbps int    `json:"speed_mbps,omitempty" yaml:"speed-mbps,omitempty"`
	Reserved  bool   `json:"reserved,omitempty" yaml:"reserved,omitempty"`
}

// CablingDesign declares one end of a designed link. Links are undirected:
// a design entry on either endpoint describes the same cable.
type CablingDesign struct {
	Port       string `json:"port" yaml:"port"`
	PeerDevice string `json:"peer_device" yaml:"peer-device"`
	PeerPort   string `json:"peer_port" yaml:"peer-port"`
}

// IPInterfaceDesign is the expected addressing of a logical interface,
// e.g. {Name: "Vlan10", CIDR: "10.0.10.1/24"}.
type IPInterfaceDesign struct {
	Name string `json:"name" yaml:"name"`
	CIDR string `json:"cidr" yaml:"cidr"`
}

// VLANDesign is the expected presence of a VLAN and, optionally, the set
// of switchports expected to carry it.
type VLANDesign struct {
	ID         int      `json:"id" yaml:"id"`
	Name       string   `json:"name,omitempty" yaml:"name,omitempty"`
	Interfaces []string `json:"interfaces,omitempty" yaml:"interfaces,omitempty"`
}

// Switchport modes.
const (
	SwitchportAccess = "access"
	SwitchportTrunk  = "trunk"
)

// SwitchportDesign is the expected layer-2 configuration of a port.
type SwitchportDesign struct {
	Port         string `json:"port" yaml:"port"`
	Mode         string `json:"mode" yaml:"mode"`
	AccessVLAN   int    `json:"access_vlan,omitempty" yaml:"access-vlan,omitempty"`
	NativeVLAN   int    `json:"native_vlan,omitempty" yaml:"native-vlan,omitempty"`
	AllowedVLANs []int  `json:"allowed_vlans,omitempty" yaml:"allowed-vlans,omitempty"`
	AllowAll     bool   `json:"allow_all,omitempty" yaml:"allow-all,omitempty"`
}

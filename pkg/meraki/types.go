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

// Device is one record from the organization device inventory.
type Device struct {
	Name      string   `json:"name"`
	Serial    string   `json:"serial"`
	MAC       string   `json:"mac"`
	NetworkID string   `json:"networkId"`
	Model     string   `json:"model"`
	Address   string   `json:"address,omitempty"`
	LANIP     string   `json:"lanIp,omitempty"`
	Firmware  string   `json:"firmware,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	URL       string   `json:"url,omitempty"`
}

// SwitchPort is the configured state of one switch port.
type SwitchPort struct {
	PortID          string `json:"portId"`
	Name            string `json:"name,omitempty"`
	Enabled         bool   `json:"enabled"`
	Type            string `json:"type"` // access or trunk
	VLAN            int    `json:"vlan"`
	VoiceVLAN       int    `json:"voiceVlan,omitempty"`
	AllowedVLANs    string `json:"allowedVlans,omitempty"` // "all" or a range list
	PoeEnabled      bool   `json:"poeEnabled,omitempty"`
	RstpEnabled     bool   `json:"rstpEnabled,omitempty"`
	LinkNegotiation string `json:"linkNegotiation,omitempty"`
}

// SwitchPortStatus is the operational state of one switch port, including
// the discovery-protocol neighbors seen on it.
type SwitchPortStatus struct {
	PortID      string       `json:"portId"`
	Enabled     bool         `json:"enabled"`
	Status      string       `json:"status"` // Connected or Disconnected
	IsUplink    bool         `json:"isUplink,omitempty"`
	Speed       string       `json:"speed,omitempty"` // e.g. "1 Gbps"
	Duplex      string       `json:"duplex,omitempty"`
	ClientCount int          `json:"clientCount,omitempty"`
	Errors      []string     `json:"errors,omitempty"`
	Warnings    []string     `json:"warnings,omitempty"`
	LLDP        *LLDPSummary `json:"lldp,omitempty"`
	CDP         *CDPSummary  `json:"cdp,omitempty"`
}

// LLDPSummary is the LLDP neighbor advertised on a port.
type LLDPSummary struct {
	SystemName        string `json:"systemName,omitempty"`
	PortID            string `json:"portId,omitempty"`
	ManagementAddress string `json:"managementAddress,omitempty"`
}

// CDPSummary is the CDP neighbor advertised on a port.
type CDPSummary struct {
	DeviceID string `json:"deviceId,omitempty"`
	PortID   string `json:"portId,omitempty"`
	Address  string `json:"address,omitempty"`
}

// AppliancePort is the configured state of one appliance LAN port.
type AppliancePort struct {
	Number              int    `json:"number"`
	Enabled             bool   `json:"enabled"`
	Type                string `json:"type"` // access or trunk
	VLAN                int    `json:"vlan"`
	AllowedVLANs        string `json:"allowedVlans,omitempty"`
	DropUntaggedTraffic bool   `json:"dropUntaggedTraffic,omitempty"`
	AccessPolicy        string `json:"accessPolicy,omitempty"`
}

// ApplianceVLAN is one routed VLAN on an appliance.
type ApplianceVLAN struct {
	ID          int    `json:"id"`
	Name        string `json:"name,omitempty"`
	ApplianceIP string `json:"applianceIp"`
	Subnet      string `json:"subnet"` // CIDR, e.g. "10.0.10.0/24"
}

// SSID is one wireless network definition.
type SSID struct {
	Number         int    `json:"number"`
	Name           string `json:"name,omitempty"`
	Enabled        bool   `json:"enabled"`
	UseVLANTagging bool   `json:"useVlanTagging,omitempty"`
	DefaultVLANID  int    `json:"defaultVlanId,omitempty"`
	AuthMode       string `json:"authMode,omitempty"`
}

// ManagementInterface is the uplink configuration of a device.
type ManagementInterface struct {
	WAN1 *WANConfig `json:"wan1,omitempty"`
	WAN2 *WANConfig `json:"wan2,omitempty"`
}

// WANConfig is one uplink's addressing.
type WANConfig struct {
	WANEnabled       string `json:"wanEnabled,omitempty"`
	UsingStaticIP    bool   `json:"usingStaticIp,omitempty"`
	StaticIP         string `json:"staticIp,omitempty"`
	StaticSubnetMask string `json:"staticSubnetMask,omitempty"`
	StaticGatewayIP  string `json:"staticGatewayIp,omitempty"`
	VLAN             int    `json:"vlan,omitempty"`
}

// LLDPCDP is the discovery-protocol view of a whole device, keyed by
// local port name.
type LLDPCDP struct {
	SourceMAC string                 `json:"sourceMac,omitempty"`
	Ports     map[string]LLDPCDPPort `json:"ports"`
}

// LLDPCDPPort is the neighbor data observed on one port.
type LLDPCDPPort struct {
	LLDP *LLDPSummary `json:"lldp,omitempty"`
	CDP  *CDPSummary  `json:"cdp,omitempty"`
}

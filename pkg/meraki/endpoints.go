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

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// OrganizationDevices returns the full device inventory for the
// configured organization, following pagination links.
func (c *Client) OrganizationDevices(ctx context.Context) ([]Device, error) {
	reqURL := fmt.Sprintf("%s/organizations/%s/devices",
		c.config.BaseURL, url.PathEscape(c.config.OrganizationID))

	var devices []Device

	for reqURL != "" {
		resp, err := c.getURL(ctx, reqURL)
		if err != nil {
			return nil, err
		}

		var page []Device
		if err := json.Unmarshal(resp.body, &page); err != nil {
			return nil, fmt.Errorf("failed to parse device inventory: %w", err)
		}

		devices = append(devices, page...)
		reqURL = parseNextLink(resp.header.Get("Link"))
	}

	return devices, nil
}

// DeviceByName looks up a device by its exact configured name. Returns
// ErrNotFound when no inventory record matches.
func (c *Client) DeviceByName(ctx context.Context, name string) (*Device, error) {
	query := url.Values{}
	query.Set("name", name)

	resp, err := c.get(ctx,
		fmt.Sprintf("/organizations/%s/devices", url.PathEscape(c.config.OrganizationID)), query)
	if err != nil {
		return nil, err
	}

	var devices []Device
	if err := json.Unmarshal(resp.body, &devices); err != nil {
		return nil, fmt.Errorf("failed to parse device inventory: %w", err)
	}

	// The name parameter is a prefix filter server-side; require an
	// exact match here.
	for i := range devices {
		if devices[i].Name == name {
			return &devices[i], nil
		}
	}

	return nil, fmt.Errorf("%w: device %q", ErrNotFound, name)
}

// SwitchPorts returns the configured ports of a switch.
func (c *Client) SwitchPorts(ctx context.Context, serial string) ([]SwitchPort, error) {
	var ports []SwitchPort

	if err := c.getJSON(ctx, fmt.Sprintf("/devices/%s/switch/ports", url.PathEscape(serial)), &ports); err != nil {
		return nil, err
	}

	return ports, nil
}

// SwitchPortStatuses returns the operational port state of a switch.
func (c *Client) SwitchPortStatuses(ctx context.Context, serial string) ([]SwitchPortStatus, error) {
	var statuses []SwitchPortStatus

	if err := c.getJSON(ctx, fmt.Sprintf("/devices/%s/switch/ports/statuses", url.PathEscape(serial)), &statuses); err != nil {
		return nil, err
	}

	return statuses, nil
}

// AppliancePorts returns the LAN port configuration of an appliance
// network.
func (c *Client) AppliancePorts(ctx context.Context, networkID string) ([]AppliancePort, error) {
	var ports []AppliancePort

	if err := c.getJSON(ctx, fmt.Sprintf("/networks/%s/appliance/ports", url.PathEscape(networkID)), &ports); err != nil {
		return nil, err
	}

	return ports, nil
}

// ApplianceVLANs returns the routed VLANs of an appliance network.
func (c *Client) ApplianceVLANs(ctx context.Context, networkID string) ([]ApplianceVLAN, error) {
	var vlans []ApplianceVLAN

	if err := c.getJSON(ctx, fmt.Sprintf("/networks/%s/appliance/vlans", url.PathEscape(networkID)), &vlans); err != nil {
		return nil, err
	}

	return vlans, nil
}

// WirelessSSIDs returns the SSID definitions of a wireless network.
func (c *Client) WirelessSSIDs(ctx context.Context, networkID string) ([]SSID, error) {
	var ssids []SSID

	if err := c.getJSON(ctx, fmt.Sprintf("/networks/%s/wireless/ssids", url.PathEscape(networkID)), &ssids); err != nil {
		return nil, err
	}

	return ssids, nil
}

// DeviceManagementInterface returns the uplink configuration of a device.
func (c *Client) DeviceManagementInterface(ctx context.Context, serial string) (*ManagementInterface, error) {
	var mgmt ManagementInterface

	if err := c.getJSON(ctx, fmt.Sprintf("/devices/%s/managementInterface", url.PathEscape(serial)), &mgmt); err != nil {
		return nil, err
	}

	return &mgmt, nil
}

// DeviceLLDPCDP returns the discovery-protocol neighbors of a device.
func (c *Client) DeviceLLDPCDP(ctx context.Context, serial string) (*LLDPCDP, error) {
	var neighbors LLDPCDP

	if err := c.getJSON(ctx, fmt.Sprintf("/devices/%s/lldpCdp", url.PathEscape(serial)), &neighbors); err != nil {
		return nil, err
	}

	return &neighbors, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.get(ctx, path, nil)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(resp.body, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", path, err)
	}

	return nil
}

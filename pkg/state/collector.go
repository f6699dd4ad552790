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

// Package state turns raw dashboard payloads into the canonical device
// model. The Collector owns the per-family fetch plan; the normalize
// functions are pure and deterministic. Data the vendor does not report
// becomes unknown sentinels, never errors.
package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/carverauto/netaudit/pkg/logger"
	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/models"
)

//go:generate mockgen -destination=mock_state.go -package=state github.com/carverauto/netaudit/pkg/state DashboardAPI

// DashboardAPI is the slice of the dashboard client the collector uses.
type DashboardAPI interface {
	DeviceByName(ctx context.Context, name string) (*meraki.Device, error)
	SwitchPorts(ctx context.Context, serial string) ([]meraki.SwitchPort, error)
	SwitchPortStatuses(ctx context.Context, serial string) ([]meraki.SwitchPortStatus, error)
	AppliancePorts(ctx context.Context, networkID string) ([]meraki.AppliancePort, error)
	ApplianceVLANs(ctx context.Context, networkID string) ([]meraki.ApplianceVLAN, error)
	WirelessSSIDs(ctx context.Context, networkID string) ([]meraki.SSID, error)
	DeviceManagementInterface(ctx context.Context, serial string) (*meraki.ManagementInterface, error)
	DeviceLLDPCDP(ctx context.Context, serial string) (*meraki.LLDPCDP, error)
}

// Collector fetches and normalizes actual state, one device at a time.
type Collector struct {
	api    DashboardAPI
	logger logger.Logger
}

func NewCollector(api DashboardAPI, log logger.Logger) *Collector {
	return &Collector{api: api, logger: log}
}

// Collect resolves the device in the organization inventory, runs the
// family-specific fetch plan, and returns canonical state. The product
// family comes from the designed model prefix; a family this tool cannot
// audit is a configuration fault.
func (c *Collector) Collect(ctx context.Context, design *models.DeviceDesign) (*models.DeviceState, error) {
	family, err := FamilyForModel(design.ProductModel)
	if err != nil {
		return nil, err
	}

	device, err := c.api.DeviceByName(ctx, design.Name)
	if err != nil {
		return nil, err
	}

	c.logger.Debug().
		Str("device", design.Name).
		Str("serial", device.Serial).
		Str("family", family).
		Msg("Collecting device state")

	switch family {
	case models.FamilySwitch:
		return c.collectSwitch(ctx, design, device)
	case models.FamilyAppliance:
		return c.collectAppliance(ctx, design, device)
	default:
		return c.collectWireless(ctx, design, device)
	}
}

func (c *Collector) collectSwitch(
	ctx context.Context, design *models.DeviceDesign, device *meraki.Device) (*models.DeviceState, error) {
	ports, portsKnown, err := optional(c, design.Name, "switch ports", func() ([]meraki.SwitchPort, error) {
		return c.api.SwitchPorts(ctx, device.Serial)
	})
	if err != nil {
		return nil, err
	}

	statuses, statusesKnown, err := optional(c, design.Name, "switch port statuses",
		func() ([]meraki.SwitchPortStatus, error) {
			return c.api.SwitchPortStatuses(ctx, device.Serial)
		})
	if err != nil {
		return nil, err
	}

	return normalizeSwitch(design, device, switchInput{
		ports:         ports,
		portsKnown:    portsKnown,
		statuses:      statuses,
		statusesKnown: statusesKnown,
	})
}

func (c *Collector) collectAppliance(
	ctx context.Context, design *models.DeviceDesign, device *meraki.Device) (*models.DeviceState, error) {
	ports, portsKnown, err := optional(c, design.Name, "appliance ports", func() ([]meraki.AppliancePort, error) {
		return c.api.AppliancePorts(ctx, device.NetworkID)
	})
	if err != nil {
		return nil, err
	}

	vlans, vlansKnown, err := optional(c, design.Name, "appliance vlans", func() ([]meraki.ApplianceVLAN, error) {
		return c.api.ApplianceVLANs(ctx, device.NetworkID)
	})
	if err != nil {
		return nil, err
	}

	neighbors, neighborsKnown, err := optional(c, design.Name, "lldp/cdp", func() (*meraki.LLDPCDP, error) {
		return c.api.DeviceLLDPCDP(ctx, device.Serial)
	})
	if err != nil {
		return nil, err
	}

	return normalizeAppliance(design, device, applianceInput{
		ports:          ports,
		portsKnown:     portsKnown,
		vlans:          vlans,
		vlansKnown:     vlansKnown,
		neighbors:      neighbors,
		neighborsKnown: neighborsKnown,
	})
}

func (c *Collector) collectWireless(
	ctx context.Context, design *models.DeviceDesign, device *meraki.Device) (*models.DeviceState, error) {
	ssids, ssidsKnown, err := optional(c, design.Name, "wireless ssids", func() ([]meraki.SSID, error) {
		return c.api.WirelessSSIDs(ctx, device.NetworkID)
	})
	if err != nil {
		return nil, err
	}

	mgmt, mgmtKnown, err := optional(c, design.Name, "management interface",
		func() (*meraki.ManagementInterface, error) {
			return c.api.DeviceManagementInterface(ctx, device.Serial)
		})
	if err != nil {
		return nil, err
	}

	neighbors, neighborsKnown, err := optional(c, design.Name, "lldp/cdp", func() (*meraki.LLDPCDP, error) {
		return c.api.DeviceLLDPCDP(ctx, device.Serial)
	})
	if err != nil {
		return nil, err
	}

	return normalizeWireless(design, device, wirelessInput{
		ssids:          ssids,
		ssidsKnown:     ssidsKnown,
		mgmt:           mgmt,
		mgmtKnown:      mgmtKnown,
		neighbors:      neighbors,
		neighborsKnown: neighborsKnown,
	})
}

// optional runs one sub-fetch. A 404 means the vendor surface does not
// expose that category for this device; callers mark it unknown instead
// of failing the device.
func optional[T any](c *Collector, device, what string, fetch func() (T, error)) (value T, known bool, err error) {
	value, err = fetch()
	if err != nil {
		if errors.Is(err, meraki.ErrNotFound) {
			c.logger.Debug().
				Str("device", device).
				Str("category", what).
				Msg("Category not reported for device")

			var zero T

			return zero, false, nil
		}

		var zero T

		return zero, false, err
	}

	return value, true, nil
}

// FamilyForModel maps a product model to its family by prefix.
func FamilyForModel(model string) (string, error) {
	switch {
	case strings.HasPrefix(model, "MS"):
		return models.FamilySwitch, nil
	case strings.HasPrefix(model, "MX"):
		return models.FamilyAppliance, nil
	case strings.HasPrefix(model, "MR"):
		return models.FamilyWireless, nil
	default:
		return "", fmt.Errorf("%w: unsupported product model %q", models.ErrConfig, model)
	}
}

// deviceRaw renders the inventory record as a generic map for the
// device-info result. Map keys serialize in sorted order, keeping
// reports byte-stable.
func deviceRaw(device *meraki.Device) map[string]any {
	data, err := json.Marshal(device)
	if err != nil {
		return nil
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}

	return raw
}

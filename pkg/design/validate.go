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

package design

import (
	"fmt"
	"net/netip"

	"github.com/carverauto/netaudit/pkg/models"
)

const (
	minVLANID = 1
	maxVLANID = 4094
)

func validate(devices []models.DeviceDesign) error {
	seen := make(map[string]bool, len(devices))

	for i := range devices {
		device := &devices[i]

		if device.Name == "" {
			return fmt.Errorf("%w: device %d has no name", models.ErrConfig, i)
		}

		if seen[device.Name] {
			return fmt.Errorf("%w: duplicate device %q", models.ErrConfig, device.Name)
		}

		seen[device.Name] = true

		if device.ProductModel == "" {
			return fmt.Errorf("%w: device %q has no product model", models.ErrConfig, device.Name)
		}

		if err := validateDevice(device); err != nil {
			return err
		}
	}

	return nil
}

func validateDevice(device *models.DeviceDesign) error {
	ports := make(map[string]bool, len(device.Interfaces))

	for i := range device.Interfaces {
		name := device.Interfaces[i].Name
		if name == "" {
			return fmt.Errorf("%w: device %q: interface with no name", models.ErrConfig, device.Name)
		}

		if ports[name] {
			return fmt.Errorf("%w: device %q: duplicate interface %q", models.ErrConfig, device.Name, name)
		}

		ports[name] = true
	}

	for i := range device.Cabling {
		link := &device.Cabling[i]
		if link.Port == "" || link.PeerDevice == "" || link.PeerPort == "" {
			return fmt.Errorf("%w: device %q: cabling entry %d is incomplete",
				models.ErrConfig, device.Name, i)
		}
	}

	for i := range device.IPAddrs {
		entry := &device.IPAddrs[i]
		if entry.Name == "" {
			return fmt.Errorf("%w: device %q: ipaddr entry %d has no interface name",
				models.ErrConfig, device.Name, i)
		}

		if _, err := netip.ParsePrefix(entry.CIDR); err != nil {
			return fmt.Errorf("%w: device %q: interface %q: bad cidr %q",
				models.ErrConfig, device.Name, entry.Name, entry.CIDR)
		}
	}

	for i := range device.VLANs {
		if err := validVLANID(device.Name, device.VLANs[i].ID); err != nil {
			return err
		}
	}

	return validateSwitchports(device)
}

func validateSwitchports(device *models.DeviceDesign) error {
	for i := range device.Switchports {
		port := &device.Switchports[i]

		if port.Port == "" {
			return fmt.Errorf("%w: device %q: switchport entry %d has no port",
				models.ErrConfig, device.Name, i)
		}

		if port.Mode != models.SwitchportAccess && port.Mode != models.SwitchportTrunk {
			return fmt.Errorf("%w: device %q: port %q: bad mode %q",
				models.ErrConfig, device.Name, port.Port, port.Mode)
		}

		for _, id := range []int{port.AccessVLAN, port.NativeVLAN} {
			if id == 0 {
				continue // no expectation
			}

			if err := validVLANID(device.Name, id); err != nil {
				return err
			}
		}

		for _, id := range port.AllowedVLANs {
			if err := validVLANID(device.Name, id); err != nil {
				return err
			}
		}
	}

	return nil
}

func validVLANID(device string, id int) error {
	if id < minVLANID || id > maxVLANID {
		return fmt.Errorf("%w: device %q: vlan id %d out of range", models.ErrConfig, device, id)
	}

	return nil
}

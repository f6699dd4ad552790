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

// Package design loads and validates the intended-state document that
// drives a reconciliation run. The document is YAML, one entry per
// device, in the shapes of pkg/models' design types.
package design

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/carverauto/netaudit/pkg/models"
)

// Provider serves per-device expected state to the engine.
type Provider interface {
	// Devices returns the designed device names, sorted.
	Devices() []string

	// Device returns the design for one device.
	Device(name string) (*models.DeviceDesign, bool)
}

// Document is the top-level design file layout.
type Document struct {
	Site    string                `yaml:"site,omitempty"`
	Devices []models.DeviceDesign `yaml:"devices"`
}

// Static is an immutable Provider over a loaded document.
type Static struct {
	names  []string
	byName map[string]*models.DeviceDesign
}

// Load reads and validates the design document at path. Validation
// failures wrap models.ErrConfig and abort the run before any fetch.
func Load(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read design '%s': %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: failed to parse design '%s': %v", models.ErrConfig, path, err)
	}

	return New(doc.Devices)
}

// New validates the given designs and returns a Provider over them.
func New(devices []models.DeviceDesign) (*Static, error) {
	if err := validate(devices); err != nil {
		return nil, err
	}

	s := &Static{
		names:  make([]string, 0, len(devices)),
		byName: make(map[string]*models.DeviceDesign, len(devices)),
	}

	for i := range devices {
		device := devices[i]
		s.names = append(s.names, device.Name)
		s.byName[device.Name] = &device
	}

	sort.Strings(s.names)

	return s, nil
}

func (s *Static) Devices() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)

	return names
}

func (s *Static) Device(name string) (*models.DeviceDesign, bool) {
	design, ok := s.byName[name]
	return design, ok
}

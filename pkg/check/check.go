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

// Package check holds the comparison functions that turn a designed and
// an actual device state into field-level results, and the registry that
// fixes their execution order. Checks are pure: they see canonical state
// only and report mismatches as FAIL results, never as errors.
package check

import (
	"fmt"

	"github.com/carverauto/netaudit/pkg/models"
)

var (
	// ErrDuplicateCheck rejects a second registration for the same
	// (category, kind) pair.
	ErrDuplicateCheck = fmt.Errorf("%w: duplicate check", models.ErrConfig)

	// ErrUnknownCheck rejects a registration outside the fixed
	// (category, kind) tables.
	ErrUnknownCheck = fmt.Errorf("%w: unknown check", models.ErrConfig)
)

// Func is one check. It receives the designed and the actual state of a
// single device and returns results carrying Object, Field, Status and
// values; the engine stamps Category, Check and Device afterwards.
type Func func(design *models.DeviceDesign, state *models.DeviceState) []models.CheckResult

// Registered is one (category, kind) slot with its function.
type Registered struct {
	Category string
	Kind     string
	Fn       Func
}

// executionOrder fixes the category and kind sequence. Device identity
// runs first so an identity failure is reported before the finer checks
// it would cascade into.
var executionOrder = []struct {
	category string
	kinds    []string
}{
	{models.CategoryTopology, []string{models.CheckDevice, models.CheckInterfaces, models.CheckCabling, models.CheckIPAddrs}},
	{models.CategoryVLANs, []string{models.CheckVLANs, models.CheckSwitchports}},
}

// Registry maps (category, kind) to a check function. Build it fully
// before handing it to the engine; it is shared read-only across device
// pipelines after that.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{funcs: make(map[string]Func)}
}

func slotKey(category, kind string) string {
	return category + "/" + kind
}

// Register binds a function to a (category, kind) slot. Registering a
// pair twice, or a pair outside the fixed tables, is a configuration
// fault surfaced at startup.
func (r *Registry) Register(category, kind string, fn Func) error {
	if !knownSlot(category, kind) {
		return fmt.Errorf("%w: %s/%s", ErrUnknownCheck, category, kind)
	}

	key := slotKey(category, kind)
	if _, ok := r.funcs[key]; ok {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateCheck, category, kind)
	}

	r.funcs[key] = fn

	return nil
}

func knownSlot(category, kind string) bool {
	for _, cat := range executionOrder {
		if cat.category != category {
			continue
		}

		for _, k := range cat.kinds {
			if k == kind {
				return true
			}
		}
	}

	return false
}

// Checks returns the registered checks in the fixed execution order,
// regardless of registration order. Unregistered slots are skipped.
func (r *Registry) Checks() []Registered {
	out := make([]Registered, 0, len(r.funcs))

	for _, cat := range executionOrder {
		for _, kind := range cat.kinds {
			if fn, ok := r.funcs[slotKey(cat.category, kind)]; ok {
				out = append(out, Registered{Category: cat.category, Kind: kind, Fn: fn})
			}
		}
	}

	return out
}

// Default builds the registry with the full standard check set.
func Default() (*Registry, error) {
	r := NewRegistry()

	checks := []struct {
		category string
		kind     string
		fn       Func
	}{
		{models.CategoryTopology, models.CheckDevice, DeviceInfo},
		{models.CategoryTopology, models.CheckInterfaces, Interfaces},
		{models.CategoryTopology, models.CheckCabling, Cabling},
		{models.CategoryTopology, models.CheckIPAddrs, IPAddrs},
		{models.CategoryVLANs, models.CheckVLANs, VLANs},
		{models.CategoryVLANs, models.CheckSwitchports, Switchports},
	}

	for _, c := range checks {
		if err := r.Register(c.category, c.kind, c.fn); err != nil {
			return nil, err
		}
	}

	return r, nil
}

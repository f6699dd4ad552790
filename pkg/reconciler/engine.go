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

// Package reconciler runs the audit: it fans designed devices out over a
// bounded worker pool, collects actual state for each, runs the
// registered checks sequentially per device, and aggregates the results
// into a deterministic run report.
package reconciler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/carverauto/netaudit/pkg/check"
	"github.com/carverauto/netaudit/pkg/logger"
	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/models"
	"github.com/carverauto/netaudit/pkg/state"
)

//go:generate mockgen -destination=mock_reconciler.go -package=reconciler github.com/carverauto/netaudit/pkg/reconciler StateProvider

// StateProvider collects the actual state of one designed device.
// Implementations own their retry policy; an error reaching the engine
// is already past its retry budget.
type StateProvider interface {
	Collect(ctx context.Context, design *models.DeviceDesign) (*models.DeviceState, error)
}

const defaultMaxConcurrency = 5

// Config tunes the engine.
type Config struct {
	// MaxConcurrency bounds the number of devices audited in parallel.
	// Checks within one device always run sequentially.
	MaxConcurrency int `json:"max_concurrency"`
}

// Validate applies defaults and rejects unusable values.
func (c *Config) Validate() error {
	if c.MaxConcurrency < 0 {
		return fmt.Errorf("%w: max_concurrency must not be negative", models.ErrConfig)
	}

	if c.MaxConcurrency == 0 {
		c.MaxConcurrency = defaultMaxConcurrency
	}

	return nil
}

// Engine is the reconciliation pipeline. It is safe for a single Run at
// a time; construct one per run or serialize calls.
type Engine struct {
	provider StateProvider
	registry *check.Registry
	config   Config
	logger   logger.Logger

	now      func() time.Time
	newRunID func() string
}

// NewEngine builds an engine over the given state provider and check
// registry.
func NewEngine(cfg Config, provider StateProvider, registry *check.Registry, log logger.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		provider: provider,
		registry: registry,
		config:   cfg,
		logger:   log,
		now:      time.Now,
		newRunID: uuid.NewString,
	}, nil
}

// Run audits every designed device and returns the aggregated report.
//
// Device-scoped faults (retry exhaustion, normalization failures) mark
// that device incomplete and the run continues. Authentication and
// configuration faults abort the whole run with an error. Cancellation
// lets in-flight devices finish or abandon, marks unstarted devices
// incomplete, and returns the partial report together with ctx.Err().
func (e *Engine) Run(ctx context.Context, designs []models.DeviceDesign) (*models.RunReport, error) {
	report := &models.RunReport{
		RunID:     e.newRunID(),
		StartedAt: e.now().UTC(),
	}

	runLog := e.logger.With().Str("run_id", report.RunID).Logger()

	runLog.Info().
		Int("devices", len(designs)).
		Int("max_concurrency", e.config.MaxConcurrency).
		Msg("Starting reconciliation run")

	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.config.MaxConcurrency)

	for i := range designs {
		design := designs[i]

		g.Go(func() error {
			if gctx.Err() != nil {
				mu.Lock()
				defer mu.Unlock()

				report.Incomplete = append(report.Incomplete, models.IncompleteDevice{
					Device: design.Name,
					Reason: "canceled",
				})

				return nil
			}

			deviceReport, incomplete, err := e.auditDevice(gctx, runLog, &design)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()

			if incomplete != nil {
				report.Incomplete = append(report.Incomplete, *incomplete)
				return nil
			}

			report.Devices = append(report.Devices, *deviceReport)

			return nil
		})
	}

	err := g.Wait()

	report.CompletedAt = e.now().UTC()
	finalize(report)

	if err != nil {
		runLog.Error().Err(err).Msg("Reconciliation run aborted")
		return nil, err
	}

	if cerr := ctx.Err(); cerr != nil {
		runLog.Warn().Msg("Reconciliation run canceled")
		return report, cerr
	}

	runLog.Info().
		Str("status", string(report.Status)).
		Int("devices", len(report.Devices)).
		Int("incomplete", len(report.Incomplete)).
		Msg("Reconciliation run complete")

	return report, nil
}

// auditDevice runs the full pipeline for one device. It returns either a
// report, an incomplete marker, or a run-fatal error.
func (e *Engine) auditDevice(ctx context.Context, log zerolog.Logger, design *models.DeviceDesign) (*models.DeviceReport, *models.IncompleteDevice, error) {
	log.Debug().Str("device", design.Name).Msg("Auditing device")

	deviceState, err := e.provider.Collect(ctx, design)
	if err != nil {
		return e.classifyCollectError(log, design, err)
	}

	results := e.runChecks(design, deviceState)

	status := deviceStatus(results)

	log.Debug().
		Str("device", design.Name).
		Str("serial", deviceState.Serial).
		Str("family", deviceState.Family).
		Str("status", string(status)).
		Int("results", len(results)).
		Msg("Device audit complete")

	return &models.DeviceReport{
		Device:  design.Name,
		Family:  deviceState.Family,
		Status:  status,
		Results: results,
	}, nil, nil
}

// classifyCollectError applies the fault taxonomy to a failed collect.
func (e *Engine) classifyCollectError(log zerolog.Logger, design *models.DeviceDesign, err error) (*models.DeviceReport, *models.IncompleteDevice, error) {
	switch {
	case errors.Is(err, meraki.ErrAuth), errors.Is(err, models.ErrConfig):
		return nil, nil, err

	case errors.Is(err, meraki.ErrNotFound):
		// The device itself is the mismatch: report it, don't fail the run.
		return e.notFoundReport(design), nil, nil

	case meraki.IsTransient(err):
		log.Warn().Err(err).Str("device", design.Name).Msg("Retry budget exhausted")
		return nil, &models.IncompleteDevice{Device: design.Name, Reason: err.Error()}, nil

	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return nil, &models.IncompleteDevice{Device: design.Name, Reason: "canceled"}, nil

	case errors.Is(err, state.ErrNormalization):
		log.Warn().Err(err).Str("device", design.Name).Msg("Normalization failed")
		return nil, &models.IncompleteDevice{Device: design.Name, Reason: err.Error()}, nil

	default:
		log.Warn().Err(err).Str("device", design.Name).Msg("Device collection failed")
		return nil, &models.IncompleteDevice{Device: design.Name, Reason: err.Error()}, nil
	}
}

// notFoundReport builds the report for a designed device the dashboard
// does not know: one existence FAIL, one SKIP per remaining check.
func (e *Engine) notFoundReport(design *models.DeviceDesign) *models.DeviceReport {
	family, _ := state.FamilyForModel(design.ProductModel)

	results := []models.CheckResult{{
		Category: models.CategoryTopology,
		Check:    models.CheckDevice,
		Device:   design.Name,
		Field:    "exists",
		Status:   models.StatusFail,
		Expected: true,
		Actual:   false,
		Message:  "device not found in dashboard",
	}}

	for _, reg := range e.registry.Checks() {
		if reg.Category == models.CategoryTopology && reg.Kind == models.CheckDevice {
			continue
		}

		results = append(results, models.CheckResult{
			Category: reg.Category,
			Check:    reg.Kind,
			Device:   design.Name,
			Status:   models.StatusSkip,
			Message:  "device not found",
		})
	}

	sortResults(results)

	return &models.DeviceReport{
		Device:  design.Name,
		Family:  family,
		Status:  models.StatusFail,
		Results: results,
	}
}

// runChecks executes the registered checks in their fixed order and
// stamps each result with its category, check and device.
func (e *Engine) runChecks(design *models.DeviceDesign, deviceState *models.DeviceState) []models.CheckResult {
	var results []models.CheckResult

	for _, reg := range e.registry.Checks() {
		for _, r := range reg.Fn(design, deviceState) {
			r.Category = reg.Category
			r.Check = reg.Kind
			r.Device = design.Name
			results = append(results, r)
		}
	}

	sortResults(results)

	return results
}

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

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/carverauto/netaudit/pkg/check"
	"github.com/carverauto/netaudit/pkg/config"
	"github.com/carverauto/netaudit/pkg/design"
	"github.com/carverauto/netaudit/pkg/logger"
	"github.com/carverauto/netaudit/pkg/meraki"
	"github.com/carverauto/netaudit/pkg/models"
	"github.com/carverauto/netaudit/pkg/reconciler"
	"github.com/carverauto/netaudit/pkg/state"
	"github.com/carverauto/netaudit/pkg/tui"
	"github.com/carverauto/netaudit/pkg/version"
)

// Exit codes. A FAIL report is a successful audit that found drift;
// anything that kept the audit from completing exits with exitIncomplete.
const (
	exitPass       = 0
	exitFail       = 1
	exitIncomplete = 2
)

type options struct {
	configPath  string
	designPath  string
	devices     string
	outputPath  string
	interactive bool
	jsonLog     bool
	debug       bool
}

func main() {
	var opts options

	flag.StringVar(&opts.configPath, "config", "/etc/netaudit/netaudit.json", "Path to netaudit config file")
	flag.StringVar(&opts.designPath, "design", "", "Design file (overrides design_file from config)")
	flag.StringVar(&opts.devices, "devices", "", "Comma-separated device names to audit (default: all designed devices)")
	flag.StringVar(&opts.outputPath, "o", "", "Write the JSON report to this file instead of stdout (\"-\" forces stdout)")
	flag.BoolVar(&opts.interactive, "tui", false, "Browse the report in an interactive terminal UI")
	flag.BoolVar(&opts.jsonLog, "json-log", false, "Emit JSON logs on stderr instead of console output")
	flag.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("netaudit " + version.GetFullVersion())
		os.Exit(exitPass)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code, err := run(ctx, &opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}

	stop()
	os.Exit(code)
}

func run(ctx context.Context, opts *options) (int, error) {
	var cfg config.Config

	if err := config.LoadFromFile(ctx, opts.configPath, &cfg, nil); err != nil {
		return exitIncomplete, err
	}

	if opts.designPath != "" {
		cfg.DesignFile = opts.designPath
	}

	cfg.Logging.Debug = cfg.Logging.Debug || opts.debug
	if !opts.jsonLog {
		cfg.Logging.Output = "console"
	}

	log, err := logger.New(cfg.Logging)
	if err != nil {
		return exitIncomplete, fmt.Errorf("failed to initialize logger: %w", err)
	}

	provider, err := design.Load(cfg.DesignFile)
	if err != nil {
		return exitIncomplete, err
	}

	designs, err := selectDevices(provider, opts.devices)
	if err != nil {
		return exitIncomplete, err
	}

	client, err := meraki.NewClient(cfg.Dashboard, log)
	if err != nil {
		return exitIncomplete, err
	}

	registry, err := check.Default()
	if err != nil {
		return exitIncomplete, err
	}

	engine, err := reconciler.NewEngine(cfg.Engine, state.NewCollector(client, log), registry, log)
	if err != nil {
		return exitIncomplete, err
	}

	report, runErr := engine.Run(ctx, designs)
	if report == nil {
		return exitIncomplete, runErr
	}

	if err := emitReport(report, opts); err != nil {
		return exitIncomplete, err
	}

	if runErr != nil {
		return exitIncomplete, runErr
	}

	if report.Status == models.StatusFail {
		return exitFail, nil
	}

	if len(report.Incomplete) > 0 {
		return exitIncomplete, nil
	}

	return exitPass, nil
}

// selectDevices resolves the designed device list, narrowed to the
// -devices flag when given. Asking for a device the design does not
// declare is a configuration error, not an empty audit.
func selectDevices(provider design.Provider, filter string) ([]models.DeviceDesign, error) {
	names := provider.Devices()

	if filter != "" {
		names = names[:0:0]

		for _, name := range strings.Split(filter, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}

			names = append(names, name)
		}
	}

	designs := make([]models.DeviceDesign, 0, len(names))

	for _, name := range names {
		d, ok := provider.Device(name)
		if !ok {
			return nil, fmt.Errorf("%w: device %q is not in the design", models.ErrConfig, name)
		}

		designs = append(designs, *d)
	}

	return designs, nil
}

// emitReport writes the serialized report to -o or stdout. With -tui the
// stdout copy is replaced by the interactive browser; an explicit -o file
// is still written first so the report survives the session.
func emitReport(report *models.RunReport, opts *options) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	data = append(data, '\n')

	toFile := opts.outputPath != "" && opts.outputPath != "-"
	if toFile {
		if err := os.WriteFile(opts.outputPath, data, 0o600); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	if opts.interactive {
		return tui.Run(report)
	}

	if !toFile {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

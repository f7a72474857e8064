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
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/carverauto/airradar/pkg/awair"
	"github.com/carverauto/airradar/pkg/cli"
	"github.com/carverauto/airradar/pkg/config"
	"github.com/carverauto/airradar/pkg/discovery"
	"github.com/carverauto/airradar/pkg/logger"
	"github.com/carverauto/airradar/pkg/report"
	"github.com/carverauto/airradar/pkg/telemetry"
	"github.com/carverauto/airradar/pkg/version"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("airradar: %v", err)
	}
}

// run returns an error only for startup failures; everything else is
// reported on stdout and the process exits 0.
func run() error {
	cmd, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		fmt.Println(err)

		return nil
	}

	if cmd.Help {
		fmt.Print(cmd.Usage)

		return nil
	}

	if cmd.Version {
		fmt.Println("airradar", version.GetFullVersion())

		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.New(&cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Debug().Str("version", version.GetFullVersion()).Msg("Starting airradar")

	var provider metric.MeterProvider

	if cfg.OTel.Enabled {
		mp, err := logger.InitializeMetrics(ctx, logger.MetricsConfig{
			ServiceVersion: version.GetVersion(),
			OTel:           &cfg.OTel,
		})
		if err != nil {
			appLogger.Warn().Err(err).Msg("OTel metrics export disabled")
		} else {
			provider = mp

			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()

				if err := logger.ShutdownMetrics(shutdownCtx); err != nil {
					appLogger.Warn().Err(err).Msg("Failed to shut down metrics provider")
				}
			}()
		}
	}

	sink, err := cli.BuildSink(ctx, cfg, cmd, provider, appLogger)
	if err != nil {
		appLogger.Error().Err(err).Msg("Telemetry disabled")
		fmt.Printf("Telemetry disabled: %v\n", err)

		sink = telemetry.Nop{}
	}

	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := sink.Close(closeCtx); err != nil {
			appLogger.Warn().Err(err).Msg("Failed to close telemetry")
		}
	}()

	client := awair.NewClient(cfg.HTTPTimeout, appLogger)
	scanner := discovery.NewExecScanner(cfg.Scan.Command, cfg.Scan.Args, appLogger)
	engine := discovery.NewEngine(scanner, client, os.Stdout, appLogger)

	runner := cli.NewRunner(engine, client, report.NewWriter(os.Stdout), sink, os.Stdout, appLogger)

	if err := runner.Run(ctx, cmd); err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println("Interrupted.")

			return nil
		}

		fmt.Println(err)
	}

	return nil
}

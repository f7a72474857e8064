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

package cli

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/metric"

	"github.com/carverauto/airradar/pkg/config"
	"github.com/carverauto/airradar/pkg/logger"
	"github.com/carverauto/airradar/pkg/telemetry"
)

// BuildSink opens every telemetry backend enabled by cfg and cmd. With
// nothing enabled it returns telemetry.Nop and makes no connection.
// provider may be nil when OTel export is disabled.
func BuildSink(ctx context.Context, cfg *config.Config, cmd *CmdConfig, provider metric.MeterProvider, log logger.Logger) (telemetry.Sink, error) {
	var sinks telemetry.Multi

	fail := func(err error) (telemetry.Sink, error) {
		_ = sinks.Close(ctx)

		return nil, err
	}

	if cmd.Statsd {
		s, err := telemetry.NewStatsdSink(cfg.Statsd, log)
		if err != nil {
			return fail(err)
		}

		sinks = append(sinks, s)
	}

	if cfg.OTel.Enabled && provider != nil {
		s, err := telemetry.NewOTelSink(provider)
		if err != nil {
			return fail(err)
		}

		sinks = append(sinks, s)
	}

	if cfg.NATS.Enabled {
		s, err := telemetry.ConnectNATSSink(ctx, cfg.NATS, log)
		if err != nil {
			return fail(fmt.Errorf("nats telemetry: %w", err))
		}

		sinks = append(sinks, s)
	}

	switch len(sinks) {
	case 0:
		return telemetry.Nop{}, nil
	case 1:
		return sinks[0], nil
	default:
		return sinks, nil
	}
}

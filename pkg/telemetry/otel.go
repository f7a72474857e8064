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

package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/carverauto/airradar/pkg/augment"
)

const meterName = "github.com/carverauto/airradar/pkg/telemetry"

type flusher interface {
	ForceFlush(ctx context.Context) error
}

// OTelSink records each metric as a Float64Gauge with a device attribute.
type OTelSink struct {
	provider metric.MeterProvider
	gauges   map[string]metric.Float64Gauge
}

// NewOTelSink registers one gauge per entry in Metrics on provider.
func NewOTelSink(provider metric.MeterProvider) (*OTelSink, error) {
	meter := provider.Meter(meterName)

	gauges := make(map[string]metric.Float64Gauge, len(Metrics))

	for _, m := range Metrics {
		name := MetricPrefix + m.Name

		g, err := meter.Float64Gauge(name, metric.WithDescription("Awair "+m.Field+" reading"))
		if err != nil {
			return nil, fmt.Errorf("failed to create gauge %s: %w", name, err)
		}

		gauges[name] = g
	}

	return &OTelSink{provider: provider, gauges: gauges}, nil
}

func (s *OTelSink) Publish(ctx context.Context, rec *augment.Record) error {
	attrs := metric.WithAttributes(attribute.String(deviceTagKey, DeviceName(rec)))

	for _, p := range Points(rec) {
		s.gauges[p.Name].Record(ctx, float64(p.Value), attrs)
	}

	return nil
}

// Close flushes pending measurements when the provider supports it. The
// provider itself is shut down by its owner.
func (s *OTelSink) Close(ctx context.Context) error {
	f, ok := s.provider.(flusher)
	if !ok {
		return nil
	}

	if err := f.ForceFlush(ctx); err != nil {
		return fmt.Errorf("failed to flush metrics: %w", err)
	}

	return nil
}

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
	"errors"

	"github.com/carverauto/airradar/pkg/augment"
)

//go:generate mockgen -destination=mock_telemetry.go -package=telemetry github.com/carverauto/airradar/pkg/telemetry Sink,GaugeClient

// Sink receives one augmented record per processed device.
type Sink interface {
	Publish(ctx context.Context, rec *augment.Record) error
	Close(ctx context.Context) error
}

// GaugeClient is the subset of the DogStatsD client used by StatsdSink.
type GaugeClient interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Close() error
}

// Multi fans a record out to several sinks. Every sink is tried; the
// failures are joined.
type Multi []Sink

func (m Multi) Publish(ctx context.Context, rec *augment.Record) error {
	var errs []error

	for _, s := range m {
		if err := s.Publish(ctx, rec); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (m Multi) Close(ctx context.Context) error {
	var errs []error

	for _, s := range m {
		if err := s.Close(ctx); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Nop discards every record.
type Nop struct{}

func (Nop) Publish(context.Context, *augment.Record) error { return nil }
func (Nop) Close(context.Context) error                    { return nil }

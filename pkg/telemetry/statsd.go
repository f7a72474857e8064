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

	"github.com/DataDog/datadog-go/v5/statsd"

	"github.com/carverauto/airradar/pkg/augment"
	"github.com/carverauto/airradar/pkg/logger"
)

const (
	DefaultStatsdAddress = "127.0.0.1:8125"

	sampleRate = 1
)

// StatsdConfig configures the DogStatsD backend.
type StatsdConfig struct {
	Address string `json:"address" yaml:"address" mapstructure:"address"`
}

// StatsdSink reports each record as a set of DogStatsD gauges.
type StatsdSink struct {
	client GaugeClient
	logger logger.Logger
}

// NewStatsdSink opens a DogStatsD client for cfg.Address.
func NewStatsdSink(cfg StatsdConfig, log logger.Logger) (*StatsdSink, error) {
	addr := cfg.Address
	if addr == "" {
		addr = DefaultStatsdAddress
	}

	client, err := statsd.New(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create statsd client for %s: %w", addr, err)
	}

	return NewStatsdSinkWithClient(client, log), nil
}

// NewStatsdSinkWithClient wraps an existing client.
func NewStatsdSinkWithClient(client GaugeClient, log logger.Logger) *StatsdSink {
	return &StatsdSink{client: client, logger: log}
}

func (s *StatsdSink) Publish(_ context.Context, rec *augment.Record) error {
	tags := []string{deviceTagKey + ":" + DeviceName(rec)}

	for _, p := range Points(rec) {
		if err := s.client.Gauge(p.Name, float64(p.Value), tags, sampleRate); err != nil {
			return fmt.Errorf("failed to send gauge %s: %w", p.Name, err)
		}
	}

	s.logger.Debug().Str("device", DeviceName(rec)).Msg("Sent statsd gauges")

	return nil
}

func (s *StatsdSink) Close(_ context.Context) error {
	return s.client.Close()
}

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
	"errors"
	"fmt"
	"io"

	"github.com/carverauto/airradar/pkg/augment"
	"github.com/carverauto/airradar/pkg/discovery"
	"github.com/carverauto/airradar/pkg/logger"
	"github.com/carverauto/airradar/pkg/telemetry"
)

const noDevicesMessage = "No Awair devices found on the network. Exiting."

// Runner performs one pass: discover, then fetch, augment, print and
// forward each device in discovery order.
type Runner struct {
	discoverer Discoverer
	client     DeviceClient
	writer     RecordWriter
	sink       telemetry.Sink
	out        io.Writer
	logger     logger.Logger
}

// NewRunner wires a Runner. A nil sink disables telemetry.
func NewRunner(d Discoverer, c DeviceClient, w RecordWriter, sink telemetry.Sink, out io.Writer, log logger.Logger) *Runner {
	if sink == nil {
		sink = telemetry.Nop{}
	}

	return &Runner{
		discoverer: d,
		client:     c,
		writer:     w,
		sink:       sink,
		out:        out,
		logger:     log,
	}
}

// Run executes the pass. Device failures are reported and skipped; only
// context cancellation is returned as an error.
func (r *Runner) Run(ctx context.Context, cmd *CmdConfig) error {
	addrs, err := r.discoverer.Discover(ctx, discovery.Options{IP: cmd.IP, MAC: cmd.MAC})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		r.reportDiscoveryError(err)
	}

	if len(addrs) == 0 {
		r.println(noDevicesMessage)

		return nil
	}

	for _, addr := range addrs {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.processDevice(ctx, addr); err != nil {
			r.logger.Warn().Err(err).Str("address", addr).Msg("Skipping device")
			r.println(fmt.Sprintf("Skipping %s: %v", addr, err))
		}
	}

	return nil
}

func (r *Runner) reportDiscoveryError(err error) {
	r.logger.Debug().Err(err).Msg("Discovery failed")

	switch {
	case errors.Is(err, discovery.ErrScanToolMissing):
		r.println("Please install arp-scan (https://github.com/royhills/arp-scan) and make sure it can run.")
	case errors.Is(err, discovery.ErrIPNotFound), errors.Is(err, discovery.ErrMACNotFound):
		r.println(err.Error())
	default:
		r.println(fmt.Sprintf("Discovery failed: %v", err))
	}
}

func (r *Runner) processDevice(ctx context.Context, addr string) error {
	cfg, err := r.client.FetchConfig(ctx, addr)
	if err != nil {
		return err
	}

	rd, err := r.client.FetchReading(ctx, addr)
	if err != nil {
		return err
	}

	rec, err := augment.Augment(cfg, rd)
	if err != nil {
		return err
	}

	if err := r.writer.Write(rec); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := r.sink.Publish(ctx, rec); err != nil {
		r.logger.Error().Err(err).Str("device", rec.DeviceUUID).Msg("Failed to publish telemetry")
	}

	return nil
}

func (r *Runner) println(msg string) {
	_, _ = fmt.Fprintln(r.out, msg)
}

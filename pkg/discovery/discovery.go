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

// Package discovery finds Awair devices on the local network by ARP scanning
// and verifying each candidate against the device configuration endpoint.
package discovery

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/carverauto/airradar/pkg/logger"
)

// Options restricts a discovery pass. Both fields are optional; IP bypasses
// the scan entirely.
type Options struct {
	IP  string
	MAC string
}

// Engine runs discovery passes.
type Engine struct {
	scanner  Scanner
	verifier Verifier
	progress io.Writer
	logger   logger.Logger
}

// NewEngine creates an Engine. Progress marks are written to progress,
// which may be nil.
func NewEngine(scanner Scanner, verifier Verifier, progress io.Writer, log logger.Logger) *Engine {
	if progress == nil {
		progress = io.Discard
	}

	return &Engine{
		scanner:  scanner,
		verifier: verifier,
		progress: progress,
		logger:   log,
	}
}

// Discover returns the verified device addresses in scan order. Expected
// failures return an empty result together with ErrIPNotFound,
// ErrScanToolMissing or ErrMACNotFound so the caller can explain them.
func (e *Engine) Discover(ctx context.Context, opts Options) ([]string, error) {
	passID := uuid.NewString()
	log := e.logger.With().Str("discovery_id", passID).Logger()

	_, _ = fmt.Fprint(e.progress, "Discovering Awair devices...")
	defer func() {
		_, _ = fmt.Fprintln(e.progress)
	}()

	if opts.IP != "" {
		log.Debug().Str("ip", opts.IP).Msg("Verifying single address")

		if !e.verify(ctx, opts.IP) {
			return nil, fmt.Errorf("%w: %s", ErrIPNotFound, opts.IP)
		}

		return []string{opts.IP}, nil
	}

	out, err := e.scanner.Scan(ctx)
	if err != nil {
		log.Debug().Err(err).Msg("Scan failed")

		return nil, err
	}

	hosts := ParseScanOutput(string(out))
	log.Debug().Int("hosts", len(hosts)).Msg("Scan complete")

	if opts.MAC != "" {
		hosts = filterByMAC(hosts, opts.MAC)
	}

	var found []string

	for _, host := range hosts {
		if e.verify(ctx, host.IP) {
			found = append(found, host.IP)
		}
	}

	log.Debug().Int("devices", len(found)).Msg("Discovery pass finished")

	if opts.MAC != "" && len(found) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrMACNotFound, opts.MAC)
	}

	return found, nil
}

func (e *Engine) verify(ctx context.Context, ip string) bool {
	_, _ = fmt.Fprint(e.progress, ".")

	if !e.verifier.Probe(ctx, ip) {
		return false
	}

	_, _ = fmt.Fprint(e.progress, "+")

	return true
}

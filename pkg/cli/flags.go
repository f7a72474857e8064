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

// Package cli parses the airradar command line and runs a discovery and
// reporting pass.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"
)

// CmdConfig holds parsed command-line configuration.
type CmdConfig struct {
	IP      string
	MAC     string
	Statsd  bool
	Help    bool
	Version bool
	Usage   string
}

// ParseFlags parses args (without the program name). Flags it does not
// know are ignored so wrappers can pass their own options through.
func ParseFlags(args []string) (*CmdConfig, error) {
	cfg := &CmdConfig{}

	fs := pflag.NewFlagSet("airradar", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVar(&cfg.IP, "ip", "", "query only the Awair device at this IP address")
	fs.StringVar(&cfg.MAC, "mac", "", "query only the Awair device with this MAC address")
	fs.BoolVar(&cfg.Statsd, "statsd", false, "send readings to DogStatsD")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "show help message")
	fs.BoolVar(&cfg.Version, "version", false, "print version and exit")

	cfg.Usage = "Usage: airradar [--ip <address>] [--mac <address>] [--statsd]\n\n" + fs.FlagUsages()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			cfg.Help = true

			return cfg, nil
		}

		return cfg, fmt.Errorf("parsing flags: %w", err)
	}

	return cfg, nil
}

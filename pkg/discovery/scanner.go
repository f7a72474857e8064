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

package discovery

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/carverauto/airradar/pkg/logger"
)

const DefaultScanCommand = "arp-scan"

// DefaultScanArgs scans the local segment once per host, without vendor lookups.
//
//nolint:gochecknoglobals // default command line
var DefaultScanArgs = []string{"--localnet", "--quiet", "--ignoredups"}

// ExecScanner runs an external scan utility as a subprocess.
type ExecScanner struct {
	command string
	args    []string
	logger  logger.Logger
}

// NewExecScanner returns a scanner running command with args.
func NewExecScanner(command string, args []string, log logger.Logger) *ExecScanner {
	if command == "" {
		command = DefaultScanCommand
	}

	if args == nil {
		args = DefaultScanArgs
	}

	return &ExecScanner{
		command: command,
		args:    args,
		logger:  log,
	}
}

// Scan blocks until the subprocess exits. A missing binary or a non-zero
// exit status is reported as ErrScanToolMissing.
func (s *ExecScanner) Scan(ctx context.Context) ([]byte, error) {
	path, err := exec.LookPath(s.command)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanToolMissing, err)
	}

	s.logger.Debug().Str("command", path).Strs("args", s.args).Msg("Running network scan")

	out, err := exec.CommandContext(ctx, path, s.args...).Output()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			s.logger.Warn().
				Int("exit_code", exitErr.ExitCode()).
				Str("stderr", strings.TrimSpace(string(exitErr.Stderr))).
				Msg("Network scan failed")
		}

		return nil, fmt.Errorf("%w: %s: %w", ErrScanToolMissing, s.command, err)
	}

	return out, nil
}

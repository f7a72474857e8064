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

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carverauto/airradar/pkg/logger"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvConfigFile, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 500*time.Millisecond, cfg.HTTPTimeout)
	assert.Equal(t, "arp-scan", cfg.Scan.Command)
	assert.Equal(t, []string{"--localnet", "--quiet", "--ignoredups"}, cfg.Scan.Args)
	assert.Equal(t, "127.0.0.1:8125", cfg.Statsd.Address)
	assert.False(t, cfg.OTel.Enabled)
	assert.Equal(t, "airradar", cfg.OTel.ServiceName)
	assert.False(t, cfg.NATS.Enabled)
	assert.Equal(t, "AIRRADAR", cfg.NATS.Stream)
	assert.Equal(t, "airradar.readings", cfg.NATS.SubjectPrefix)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(EnvConfigFile, "")
	t.Setenv("AIRRADAR_HTTP_TIMEOUT", "2s")
	t.Setenv("AIRRADAR_SCAN_COMMAND", "/usr/local/sbin/arp-scan")
	t.Setenv("AIRRADAR_STATSD_ADDRESS", "10.0.0.5:8125")
	t.Setenv("AIRRADAR_NATS_ENABLED", "true")
	t.Setenv("AIRRADAR_NATS_URL", "nats://10.0.0.6:4222")
	t.Setenv("AIRRADAR_LOGGING_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "/usr/local/sbin/arp-scan", cfg.Scan.Command)
	assert.Equal(t, "10.0.0.5:8125", cfg.Statsd.Address)
	assert.True(t, cfg.NATS.Enabled)
	assert.Equal(t, "nats://10.0.0.6:4222", cfg.NATS.URL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airradar.yaml")

	content := `
http_timeout: 1500ms
scan:
  command: sudo
  args: ["arp-scan", "--interface=eth1", "--localnet"]
otel:
  enabled: true
  endpoint: otel-collector:4317
  insecure: true
nats:
  subject_prefix: lab.air
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv(EnvConfigFile, path)
	t.Setenv("AIRRADAR_OTEL_ENDPOINT", "collector.internal:4317")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 1500*time.Millisecond, cfg.HTTPTimeout)
	assert.Equal(t, "sudo", cfg.Scan.Command)
	assert.Equal(t, []string{"arp-scan", "--interface=eth1", "--localnet"}, cfg.Scan.Args)
	assert.True(t, cfg.OTel.Enabled)
	assert.True(t, cfg.OTel.Insecure)
	assert.Equal(t, "collector.internal:4317", cfg.OTel.Endpoint)
	assert.Equal(t, "lab.air", cfg.NATS.SubjectPrefix)
	assert.Equal(t, "AIRRADAR", cfg.NATS.Stream)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "valid", mutate: func(*Config) {}},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTPTimeout = 0 }, wantErr: ErrInvalidHTTPTimeout},
		{name: "negative timeout", mutate: func(c *Config) { c.HTTPTimeout = -time.Second }, wantErr: ErrInvalidHTTPTimeout},
		{name: "blank scan command", mutate: func(c *Config) { c.Scan.Command = " " }, wantErr: ErrScanCommandRequired},
		{name: "empty statsd address", mutate: func(c *Config) { c.Statsd.Address = "" }, wantErr: ErrStatsdAddressMissing},
		{name: "otel without endpoint", mutate: func(c *Config) { c.OTel.Enabled = true }, wantErr: logger.ErrOTelEndpointRequired},
		{name: "nats without url", mutate: func(c *Config) { c.NATS.Enabled = true }, wantErr: ErrNATSURLRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{
				HTTPTimeout: time.Second,
				Scan:        ScanConfig{Command: "arp-scan"},
			}
			cfg.Statsd.Address = "127.0.0.1:8125"
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				require.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

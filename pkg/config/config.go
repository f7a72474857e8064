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

// Package config loads the airradar configuration from defaults, an optional
// file and AIRRADAR_* environment variables using Viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/carverauto/airradar/pkg/awair"
	"github.com/carverauto/airradar/pkg/discovery"
	"github.com/carverauto/airradar/pkg/logger"
	"github.com/carverauto/airradar/pkg/telemetry"
)

const (
	// EnvPrefix prefixes every environment override, e.g. AIRRADAR_HTTP_TIMEOUT.
	EnvPrefix = "AIRRADAR"
	// EnvConfigFile names the variable holding an optional config file path.
	EnvConfigFile = "AIRRADAR_CONFIG"
)

var (
	ErrInvalidHTTPTimeout   = errors.New("http_timeout must be positive")
	ErrScanCommandRequired  = errors.New("scan.command must be set")
	ErrStatsdAddressMissing = errors.New("statsd.address must be set")
	ErrNATSURLRequired      = errors.New("nats.url is required when nats is enabled")
)

// Config is the full runtime configuration.
type Config struct {
	HTTPTimeout time.Duration          `mapstructure:"http_timeout"`
	Scan        ScanConfig             `mapstructure:"scan"`
	Statsd      telemetry.StatsdConfig `mapstructure:"statsd"`
	OTel        logger.OTelConfig      `mapstructure:"otel"`
	NATS        telemetry.NATSConfig   `mapstructure:"nats"`
	Logging     logger.Config          `mapstructure:"logging"`
}

// ScanConfig selects the network scan command.
type ScanConfig struct {
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_timeout", awair.DefaultTimeout)
	v.SetDefault("scan.command", discovery.DefaultScanCommand)
	v.SetDefault("scan.args", discovery.DefaultScanArgs)
	v.SetDefault("statsd.address", telemetry.DefaultStatsdAddress)
	v.SetDefault("otel.enabled", false)
	v.SetDefault("otel.endpoint", "")
	v.SetDefault("otel.insecure", false)
	v.SetDefault("otel.service_name", "airradar")
	v.SetDefault("otel.export_interval", 15*time.Second)
	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", telemetry.DefaultNATSURL)
	v.SetDefault("nats.stream", telemetry.DefaultNATSStream)
	v.SetDefault("nats.subject_prefix", telemetry.DefaultSubjectPrefix)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.debug", false)
	v.SetDefault("logging.output", "stderr")
	v.SetDefault("logging.time_format", "")
}

// Load builds the configuration. The file named by AIRRADAR_CONFIG is read
// when set; environment variables override both file and defaults.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(EnvConfigFile))
}

// LoadFile is Load with an explicit file path; an empty path skips the file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects settings that cannot produce a working run.
func (c *Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidHTTPTimeout, c.HTTPTimeout)
	}

	if strings.TrimSpace(c.Scan.Command) == "" {
		return ErrScanCommandRequired
	}

	if c.Statsd.Address == "" {
		return ErrStatsdAddressMissing
	}

	if c.OTel.Enabled && c.OTel.Endpoint == "" {
		return logger.ErrOTelEndpointRequired
	}

	if c.NATS.Enabled && c.NATS.URL == "" {
		return ErrNATSURLRequired
	}

	return nil
}

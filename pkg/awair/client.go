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

package awair

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/carverauto/airradar/pkg/logger"
	"github.com/carverauto/airradar/pkg/version"
)

const (
	// DefaultTimeout bounds every request to a device.
	DefaultTimeout = 500 * time.Millisecond

	configPath      = "/settings/config/data"
	readingPath     = "/air-data/latest"
	timestampLayout = "2006-01-02T15:04:05"
	maxBodyBytes    = 1 << 20
)

// Client fetches configuration and readings from devices on the LAN.
// Requests are single attempts; any failure is reported as ErrDeviceUnavailable.
type Client struct {
	httpClient *http.Client
	logger     logger.Logger
	now        func() time.Time
}

// NewClient returns a Client whose requests time out after timeout.
func NewClient(timeout time.Duration, log logger.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		logger:     log,
		now:        time.Now,
	}
}

// FetchConfig retrieves the device configuration at address (host or host:port).
func (c *Client) FetchConfig(ctx context.Context, address string) (*Config, error) {
	u := &url.URL{Scheme: "http", Host: address, Path: configPath}

	fields, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	return NewConfig(fields), nil
}

// FetchReading retrieves the latest reading. The device expects the caller's
// local time with second precision.
func (c *Client) FetchReading(ctx context.Context, address string) (*Reading, error) {
	u := &url.URL{
		Scheme:   "http",
		Host:     address,
		Path:     readingPath,
		RawQuery: "current_time=" + c.now().Format(timestampLayout),
	}

	fields, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	reading, err := NewReading(fields)
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", address, err)
	}

	return reading, nil
}

// Probe reports whether address answers the configuration endpoint.
func (c *Client) Probe(ctx context.Context, address string) bool {
	_, err := c.FetchConfig(ctx, address)

	return err == nil
}

func (c *Client) get(ctx context.Context, u *url.URL) (Fields, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDeviceUnavailable, u.Host, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.UserAgent())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug().Err(err).Str("url", u.String()).Msg("Device request failed")

		return nil, fmt.Errorf("%w: %s: %w", ErrDeviceUnavailable, u.Host, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug().Int("status", resp.StatusCode).Str("url", u.String()).Msg("Device returned error status")

		return nil, fmt.Errorf("%w: %s: HTTP %d", ErrDeviceUnavailable, u.Host, resp.StatusCode)
	}

	var fields Fields
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&fields); err != nil {
		c.logger.Debug().Err(err).Str("url", u.String()).Msg("Device returned unparsable body")

		return nil, fmt.Errorf("%w: %s: %w", ErrDeviceUnavailable, u.Host, err)
	}

	if fields == nil {
		return nil, fmt.Errorf("%w: %s: empty body", ErrDeviceUnavailable, u.Host)
	}

	return fields, nil
}

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

	"github.com/carverauto/airradar/pkg/augment"
	"github.com/carverauto/airradar/pkg/awair"
	"github.com/carverauto/airradar/pkg/discovery"
)

//go:generate mockgen -destination=mock_cli.go -package=cli github.com/carverauto/airradar/pkg/cli Discoverer,DeviceClient,RecordWriter

// Discoverer finds device addresses.
type Discoverer interface {
	Discover(ctx context.Context, opts discovery.Options) ([]string, error)
}

// DeviceClient fetches configuration and readings from a device.
type DeviceClient interface {
	FetchConfig(ctx context.Context, address string) (*awair.Config, error)
	FetchReading(ctx context.Context, address string) (*awair.Reading, error)
}

// RecordWriter renders a record for the user.
type RecordWriter interface {
	Write(rec *augment.Record) error
}

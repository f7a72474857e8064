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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carverauto/airradar/pkg/augment"
	"github.com/carverauto/airradar/pkg/awair"
)

func testRecord(t *testing.T) *augment.Record {
	t.Helper()

	cfg := awair.NewConfig(awair.Fields{
		"device_uuid": awair.StringValue("awair-r2_1234"),
		"display":     awair.StringValue("pm25"),
	})

	rd, err := awair.NewReading(awair.Fields{
		"timestamp":       awair.StringValue("2024-05-01T10:00:00.000Z"),
		"score":           awair.IntValue(85),
		"dew_point":       awair.FloatValue(16.9),
		"temp":            awair.FloatValue(25),
		"humid":           awair.FloatValue(60.4),
		"co2":             awair.IntValue(450),
		"voc":             awair.IntValue(120),
		"voc_baseline":    awair.IntValue(2515),
		"voc_h2_raw":      awair.IntValue(26),
		"voc_ethanol_raw": awair.IntValue(38),
		"pm25":            awair.FloatValue(10.7),
		"pm10_est":        awair.IntValue(12),
	})
	require.NoError(t, err)

	rec, err := augment.Augment(cfg, rd)
	require.NoError(t, err)

	return rec
}

func wantPoints() []Point {
	return []Point{
		{Name: "awair.aqi", Value: 45},
		{Name: "awair.co2", Value: 450},
		{Name: "awair.dew_point", Value: 16},
		{Name: "awair.temperature", Value: 77},
		{Name: "awair.humidity", Value: 60},
		{Name: "awair.pm10", Value: 12},
		{Name: "awair.pm25", Value: 10},
		{Name: "awair.awair_score", Value: 85},
		{Name: "awair.voc", Value: 120},
		{Name: "awair.voc_raw", Value: 26},
		{Name: "awair.voc_baseline", Value: 2515},
		{Name: "awair.voc_ethanol", Value: 38},
	}
}

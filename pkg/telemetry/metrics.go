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

// Package telemetry forwards augmented device records to metric and event backends.
package telemetry

import (
	"strings"

	"github.com/carverauto/airradar/pkg/augment"
	"github.com/carverauto/airradar/pkg/awair"
)

const (
	// MetricPrefix namespaces every gauge name.
	MetricPrefix = "awair."

	deviceTagKey = "device"
	devicePrefix = "awair-"
)

// Metric binds a gauge name (without MetricPrefix) to the record field it reports.
type Metric struct {
	Name  string
	Field string
}

// Metrics lists the gauges emitted for every record.
//
//nolint:gochecknoglobals // fixed metric table
var Metrics = []Metric{
	{Name: "aqi", Field: augment.FieldAQI},
	{Name: "co2", Field: awair.FieldCO2},
	{Name: "dew_point", Field: awair.FieldDewPoint},
	{Name: "temperature", Field: augment.FieldFahrenheit},
	{Name: "humidity", Field: awair.FieldHumid},
	{Name: "pm10", Field: awair.FieldPM10Est},
	{Name: "pm25", Field: awair.FieldPM25},
	{Name: "awair_score", Field: awair.FieldScore},
	{Name: "voc", Field: awair.FieldVOC},
	{Name: "voc_raw", Field: awair.FieldVOCH2Raw},
	{Name: "voc_baseline", Field: awair.FieldVOCBaseline},
	{Name: "voc_ethanol", Field: awair.FieldVOCEthanolRaw},
}

// Point is a single gauge sample.
type Point struct {
	Name  string
	Value int64
}

// Points extracts the gauge samples of rec in Metrics order. Fields the
// device did not send, or that are not numeric, are skipped. Values are
// truncated toward zero.
func Points(rec *augment.Record) []Point {
	points := make([]Point, 0, len(Metrics))

	for _, m := range Metrics {
		v, err := rec.Fields.Number(m.Field)
		if err != nil {
			continue
		}

		points = append(points, Point{Name: MetricPrefix + m.Name, Value: int64(v)})
	}

	return points
}

// DeviceName returns the device identifier used in tags and subjects.
func DeviceName(rec *augment.Record) string {
	return strings.TrimPrefix(rec.DeviceUUID, devicePrefix)
}

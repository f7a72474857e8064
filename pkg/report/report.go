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

// Package report renders augmented device records for the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/airradar/pkg/aqi"
	"github.com/carverauto/airradar/pkg/augment"
	"github.com/carverauto/airradar/pkg/awair"
)

const (
	labelWidth = 16
	missing    = "-"
)

type row struct {
	label string
	field string
	band  func(*augment.Record) aqi.Band
}

// rows is the report layout, top to bottom.
//
//nolint:gochecknoglobals // fixed layout
var rows = []row{
	{label: "AQI", field: augment.FieldAQIFormatted, band: func(r *augment.Record) aqi.Band { return r.AQIGrade }},
	{label: "Awair score", field: augment.FieldScoreFormatted, band: func(r *augment.Record) aqi.Band { return r.ScoreGrade }},
	{label: "PM 2.5", field: awair.FieldPM25},
	{label: "PM 10", field: awair.FieldPM10Est},
	{label: "Temperature (F)", field: augment.FieldFahrenheitFormatted},
	{label: "Humidity", field: augment.FieldHumidityFormatted},
	{label: "Carbon Dioxide", field: awair.FieldCO2},
	{label: "VOC", field: awair.FieldVOC},
	{label: "VOC Raw", field: awair.FieldVOCH2Raw},
	{label: "VOC Baseline", field: awair.FieldVOCBaseline},
	{label: "VOC Ethanol", field: awair.FieldVOCEthanolRaw},
	{label: "Current display", field: augment.FieldCurrentlyDisplaying},
	{label: "Device name", field: awair.FieldDeviceUUID},
}

// Writer prints one block per record. Colour is only emitted when the
// underlying writer is a terminal that supports it.
type Writer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewWriter returns a Writer bound to out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
	}
}

// Write renders rec framed by blank lines.
func (w *Writer) Write(rec *augment.Record) error {
	var b strings.Builder

	b.WriteString("\n")

	for _, r := range rows {
		value := missing

		if v, ok := rec.Fields[r.field]; ok && v.Kind() != awair.KindNull {
			value = v.String()

			if r.band != nil {
				value = w.renderer.NewStyle().
					Foreground(lipgloss.Color(r.band(rec).Color)).
					Render(value)
			}
		}

		fmt.Fprintf(&b, "%-*s %s\n", labelWidth, r.label+":", value)
	}

	b.WriteString("\n")

	_, err := io.WriteString(w.out, b.String())

	return err
}

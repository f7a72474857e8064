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

// Package awair talks to the local HTTP API of Awair air quality monitors.
package awair

// Field names used by the local API.
const (
	FieldDeviceUUID    = "device_uuid"
	FieldDisplay       = "display"
	FieldTimestamp     = "timestamp"
	FieldScore         = "score"
	FieldDewPoint      = "dew_point"
	FieldTemp          = "temp"
	FieldHumid         = "humid"
	FieldAbsHumid      = "abs_humid"
	FieldCO2           = "co2"
	FieldCO2Est        = "co2_est"
	FieldVOC           = "voc"
	FieldVOCBaseline   = "voc_baseline"
	FieldVOCH2Raw      = "voc_h2_raw"
	FieldVOCEthanolRaw = "voc_ethanol_raw"
	FieldPM25          = "pm25"
	FieldPM10Est       = "pm10_est"
)

// Config is the device configuration served at /settings/config/data.
type Config struct {
	DeviceUUID string
	// Display names the reading field currently shown on the device screen.
	Display string
	Fields  Fields
}

// NewConfig builds a Config from raw fields. Unknown fields are kept in Fields.
func NewConfig(fields Fields) *Config {
	cfg := &Config{Fields: fields}

	if v, err := fields.Text(FieldDeviceUUID); err == nil {
		cfg.DeviceUUID = v
	}

	if v, err := fields.Text(FieldDisplay); err == nil {
		cfg.Display = v
	}

	return cfg
}

// Reading is the latest sensor sample served at /air-data/latest.
type Reading struct {
	Timestamp     string
	Score         float64
	DewPoint      float64
	Temp          float64
	Humid         float64
	AbsHumid      float64
	CO2           float64
	CO2Est        float64
	VOC           float64
	VOCBaseline   float64
	VOCH2Raw      float64
	VOCEthanolRaw float64
	PM25          float64
	PM10Est       float64
	Fields        Fields
}

// NewReading builds a Reading from raw fields. Temperature, humidity, both
// particulate channels and the score are required; the remaining channels
// depend on the device model and default to zero.
func NewReading(fields Fields) (*Reading, error) {
	r := &Reading{Fields: fields}

	required := []struct {
		key string
		dst *float64
	}{
		{FieldTemp, &r.Temp},
		{FieldHumid, &r.Humid},
		{FieldPM25, &r.PM25},
		{FieldPM10Est, &r.PM10Est},
		{FieldScore, &r.Score},
	}

	for _, f := range required {
		n, err := fields.Number(f.key)
		if err != nil {
			return nil, err
		}

		*f.dst = n
	}

	optional := []struct {
		key string
		dst *float64
	}{
		{FieldDewPoint, &r.DewPoint},
		{FieldAbsHumid, &r.AbsHumid},
		{FieldCO2, &r.CO2},
		{FieldCO2Est, &r.CO2Est},
		{FieldVOC, &r.VOC},
		{FieldVOCBaseline, &r.VOCBaseline},
		{FieldVOCH2Raw, &r.VOCH2Raw},
		{FieldVOCEthanolRaw, &r.VOCEthanolRaw},
	}

	for _, f := range optional {
		if n, err := fields.Number(f.key); err == nil {
			*f.dst = n
		}
	}

	if v, ok := fields[FieldTimestamp]; ok {
		r.Timestamp = v.String()
	}

	return r, nil
}

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

// Package augment merges a device configuration and reading into a single
// record and adds the display fields derived from them.
package augment

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/carverauto/airradar/pkg/aqi"
	"github.com/carverauto/airradar/pkg/awair"
)

// Derived field names. None of them collide with a field sent by a device.
const (
	FieldFahrenheit          = "fahrenheit"
	FieldFahrenheitFormatted = "fahrenheit_formatted"
	FieldHumidityFormatted   = "humidity_formatted"
	FieldCurrentlyDisplaying = "currently_displaying"
	FieldAQI                 = "aqi"
	FieldAQIFormatted        = "aqi_formatted"
	FieldScoreFormatted      = "score_formatted"
)

// ErrUnknownDisplay is returned when a device reports a display selector
// that does not name a reading channel.
var ErrUnknownDisplay = errors.New("unknown display selector")

// displaySelectors maps the display setting of a device to the field it shows.
//
//nolint:gochecknoglobals // fixed lookup table
var displaySelectors = map[string]string{
	"score":     awair.FieldScore,
	"temp":      awair.FieldTemp,
	"humid":     awair.FieldHumid,
	"co2":       awair.FieldCO2,
	"voc":       awair.FieldVOC,
	"pm25":      awair.FieldPM25,
	"pm10_est":  awair.FieldPM10Est,
	"dew_point": awair.FieldDewPoint,
	"abs_humid": awair.FieldAbsHumid,
	"co2_est":   awair.FieldCO2Est,
}

// Record is a device configuration and reading merged together with the
// derived display fields.
type Record struct {
	DeviceUUID          string
	Fahrenheit          int
	FahrenheitFormatted string
	HumidityFormatted   string
	CurrentlyDisplaying awair.Value
	AQI                 int
	AQIGrade            aqi.Band
	AQIFormatted        string
	Score               int
	ScoreGrade          aqi.Band
	ScoreFormatted      string

	// Fields holds every merged source field plus the derived ones.
	Fields awair.Fields
}

// Augment merges cfg and rd (reading fields win on collision) and computes
// the derived fields. It fails only when the device violates the API
// contract, for example with an unknown display selector.
func Augment(cfg *awair.Config, rd *awair.Reading) (*Record, error) {
	merged := cfg.Fields.Clone()

	for k, v := range rd.Fields {
		merged[k] = v
	}

	current, err := resolveDisplay(cfg.Display, merged)
	if err != nil {
		return nil, err
	}

	rec := &Record{
		DeviceUUID:          cfg.DeviceUUID,
		Fahrenheit:          int(math.RoundToEven(rd.Temp*1.8 + 32)),
		HumidityFormatted:   strconv.Itoa(int(math.RoundToEven(rd.Humid))) + "%",
		CurrentlyDisplaying: current,
		AQI:                 aqi.Compute(rd.PM25, rd.PM10Est),
		Score:               int(math.RoundToEven(rd.Score)),
		Fields:              merged,
	}

	if v, ok := merged[awair.FieldDeviceUUID]; ok {
		rec.DeviceUUID = v.String()
	}

	rec.FahrenheitFormatted = fmt.Sprintf("%d°", rec.Fahrenheit)
	rec.AQIGrade = aqi.IndexGrade(rec.AQI)
	rec.AQIFormatted = rec.AQIGrade.Format(rec.AQI)
	rec.ScoreGrade = aqi.ScoreGrade(rec.Score)
	rec.ScoreFormatted = rec.ScoreGrade.Format(rec.Score)

	merged[FieldFahrenheit] = awair.IntValue(int64(rec.Fahrenheit))
	merged[FieldFahrenheitFormatted] = awair.StringValue(rec.FahrenheitFormatted)
	merged[FieldHumidityFormatted] = awair.StringValue(rec.HumidityFormatted)
	merged[FieldCurrentlyDisplaying] = current
	merged[FieldAQI] = awair.IntValue(int64(rec.AQI))
	merged[FieldAQIFormatted] = awair.StringValue(rec.AQIFormatted)
	merged[FieldScoreFormatted] = awair.StringValue(rec.ScoreFormatted)

	return rec, nil
}

func resolveDisplay(selector string, fields awair.Fields) (awair.Value, error) {
	key, ok := displaySelectors[selector]
	if !ok {
		return awair.Value{}, fmt.Errorf("%w: %q", ErrUnknownDisplay, selector)
	}

	v, ok := fields[key]
	if !ok {
		return awair.Value{}, fmt.Errorf("%w: %s (display=%s)", awair.ErrMissingField, key, selector)
	}

	return v, nil
}

// MarshalJSON encodes the record as its flat field map.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Fields)
}

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

// Package aqi converts particulate concentrations into the US EPA air quality
// index and grades scores into descriptive bands.
package aqi

import "math"

// truncation guard for concentrations like 12.1 that are not exact in binary
const epsilon = 1e-9

type breakpoint struct {
	cLow, cHigh float64
	iLow, iHigh float64
}

type pollutant struct {
	// precision is the number of decimals kept before the bracket lookup
	precision   float64
	breakpoints []breakpoint
}

//nolint:gochecknoglobals // fixed published tables
var (
	pm25 = pollutant{
		precision: 10,
		breakpoints: []breakpoint{
			{0.0, 12.0, 0, 50},
			{12.1, 35.4, 51, 100},
			{35.5, 55.4, 101, 150},
			{55.5, 150.4, 151, 200},
			{150.5, 250.4, 201, 300},
			{250.5, 350.4, 301, 400},
			{350.5, 500.4, 401, 500},
		},
	}

	pm10 = pollutant{
		precision: 1,
		breakpoints: []breakpoint{
			{0, 54, 0, 50},
			{55, 154, 51, 100},
			{155, 254, 101, 150},
			{255, 354, 151, 200},
			{355, 424, 201, 300},
			{425, 504, 301, 400},
			{505, 604, 401, 500},
		},
	}
)

// Compute returns the air quality index for the given PM2.5 and PM10
// concentrations (µg/m³). The result is the larger of the two sub-indices.
// Negative or NaN concentrations count as zero; values above the top
// breakpoint saturate at 500.
func Compute(pm25Concentration, pm10Concentration float64) int {
	a := pm25.index(pm25Concentration)
	b := pm10.index(pm10Concentration)

	if a > b {
		return a
	}

	return b
}

func (p pollutant) index(concentration float64) int {
	if math.IsNaN(concentration) || concentration < 0 {
		concentration = 0
	}

	c := math.Floor(concentration*p.precision+epsilon) / p.precision

	top := p.breakpoints[len(p.breakpoints)-1]
	if c > top.cHigh {
		return int(top.iHigh)
	}

	for _, bp := range p.breakpoints {
		if c < bp.cLow || c > bp.cHigh {
			continue
		}

		value := (bp.iHigh-bp.iLow)/(bp.cHigh-bp.cLow)*(c-bp.cLow) + bp.iLow

		return int(math.RoundToEven(value))
	}

	// unreachable once truncated, brackets are contiguous at this precision
	return int(top.iHigh)
}

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

package aqi

import (
	"fmt"
	"sort"
)

// Band is one grade of a threshold table. A score belongs to the band with
// the greatest Min not exceeding it.
type Band struct {
	Min   int
	Label string
	Color string
}

//nolint:gochecknoglobals // fixed grading tables
var (
	// IndexGrades grades an EPA air quality index.
	IndexGrades = []Band{
		{Min: -1, Label: "Good", Color: "#50FA7B"},
		{Min: 50, Label: "Moderate", Color: "#F1FA8C"},
		{Min: 100, Label: "Unhealthy for sensitive groups", Color: "#FFB86C"},
		{Min: 200, Label: "Unhealthy", Color: "#FF5555"},
		{Min: 300, Label: "Very unhealthy", Color: "#BD93F9"},
		{Min: 1000, Label: "Hazardous", Color: "#8B0000"},
	}

	// ScoreGrades grades the 0-100 score reported by the device itself.
	ScoreGrades = []Band{
		{Min: -1, Label: "Poor", Color: "#FF5555"},
		{Min: 60, Label: "Fair", Color: "#F1FA8C"},
		{Min: 80, Label: "Good", Color: "#50FA7B"},
	}
)

// Classify returns the band of table containing score. table must be sorted
// by Min in ascending order. Scores below the first band map to it.
func Classify(score int, table []Band) Band {
	if len(table) == 0 {
		return Band{}
	}

	// first band whose Min is above the score
	i := sort.Search(len(table), func(i int) bool {
		return table[i].Min > score
	})
	if i == 0 {
		return table[0]
	}

	return table[i-1]
}

// IndexGrade classifies an air quality index.
func IndexGrade(index int) Band {
	return Classify(index, IndexGrades)
}

// ScoreGrade classifies a device score.
func ScoreGrade(score int) Band {
	return Classify(score, ScoreGrades)
}

// Format renders a value with its grade, e.g. "42, Good".
func (b Band) Format(value int) string {
	return fmt.Sprintf("%d, %s", value, b.Label)
}

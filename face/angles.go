// Copyright 2021 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Hand angle calculations

package face

import (
	"math"
)

// HandAngles holds the rotation of each hand in radians, measured
// clockwise from the top of the face, each in [0, 2*pi).
// Angles are always recomputed from a full time sample, never
// accumulated, so the hands cannot drift from the displayed time.
type HandAngles struct {
	Hour   float64
	Minute float64
	Second float64
}

// Angles computes the hand angles for the given sample.
// The minute hand creeps with the seconds, and the hour hand creeps
// with the minutes, rather than jumping at each boundary.
// Hours are reduced modulo 12, so midnight and noon both place the
// hour hand at the top of the face.
func Angles(s TimeSample) HandAngles {
	sp := secondPercent(s)
	mp := minutePercent(s)
	return HandAngles{
		Hour:   hourPercent(s) * 2 * math.Pi,
		Minute: mp * 2 * math.Pi,
		Second: sp * 2 * math.Pi,
	}
}

// Each percent is the fraction of a full revolution, in [0, 1).

func secondPercent(s TimeSample) float64 {
	return float64(s.Second) / 60
}

func minutePercent(s TimeSample) float64 {
	return (float64(s.Minute) + secondPercent(s)) / 60
}

func hourPercent(s TimeSample) float64 {
	return (float64(s.Hour%12) + minutePercent(s)) / 12
}

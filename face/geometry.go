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

package face

// Geometry fixes the proportions of the clock face. All values are
// in the same abstract units as the configured radius. A Geometry is
// derived once at construction and never changes afterwards.
type Geometry struct {
	Radius       float64
	Border       float64 // Width of the face border
	HourLength   float64
	MinuteLength float64
	SecondLength float64
	HourWidth    float64
	MinuteWidth  float64
	SecondWidth  float64
	TickInner    float64 // Tick marks run from TickInner to TickOuter
	TickOuter    float64
	TickWidth    float64
}

// NewGeometry derives the face geometry from the radius.
func NewGeometry(radius float64) Geometry {
	return Geometry{
		Radius:       radius,
		Border:       radius / 20,
		HourLength:   radius * 0.5,
		MinuteLength: radius * 0.8,
		SecondLength: radius * 0.9,
		HourWidth:    radius / 15,
		MinuteWidth:  radius / 20,
		SecondWidth:  radius / 45,
		TickInner:    radius * 0.9,
		TickOuter:    radius,
		TickWidth:    radius / 30,
	}
}

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

// HandID names a hand element in the drawing model.
type HandID string

const (
	HourHand   HandID = "hour_hand"
	MinuteHand HandID = "minute_hand"
	SecondHand HandID = "second_hand"
)

// Rotation sets the absolute rotation of a named hand.
type Rotation struct {
	Hand    HandID
	Radians float64
}

// Patch is the ordered set of hand rotations needed to bring the
// displayed drawing in sync with the current time. The order is
// always hour, minute, then second; the second entry is only present
// when the second hand is displayed. A patch is produced fresh for
// each update and has no lifecycle beyond being applied.
type Patch []Rotation

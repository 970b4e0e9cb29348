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

// Clock state engine

package face

import (
	"log"
)

// Engine computes incremental updates for the clock face.
// On each tick it samples the time source, reduces the sample to the
// granularity the face displays, and compares it against the sample
// last applied to the drawing. Only when the displayed time has
// actually changed is a patch of hand rotations produced, so ticks
// that would redraw an identical face cost nothing.
// The last applied sample is only advanced once a patch has been
// accepted, so it always reflects exactly what the drawing shows.
// The engine is not safe for concurrent use; it is owned by the
// scheduler's actor goroutine and must only be driven from there.
type Engine struct {
	src     TimeSource
	seconds bool     // Second hand displayed
	geom    Geometry // Immutable after construction
	last    *TimeSample
	Updates int // Number of patches emitted
	Skipped int // Ticks that produced no visual change
}

// NewEngine creates an engine reading from the given time source.
func NewEngine(src TimeSource, seconds bool, geom Geometry) *Engine {
	return &Engine{src: src, seconds: seconds, geom: geom}
}

// Geometry returns the face geometry the engine was built with.
func (e *Engine) Geometry() Geometry {
	return e.geom
}

// Update performs a single tick: sample, diff, and - when the
// displayed time changed - build a patch and hand it to apply.
// It returns true if a patch was applied.
// A time source read failure is fatal to this tick only; the state is
// preserved and the next tick recomputes from scratch, so the engine
// heals without intervention. An apply failure likewise leaves the
// cached sample untouched, so the update is retried on the next tick.
func (e *Engine) Update(apply func(Patch) error) (bool, error) {
	t, err := e.src.Now()
	if err != nil {
		log.Printf("time source: %v", err)
		e.Skipped++
		return false, nil
	}
	s := Sample(t)
	resolved := s.Resolve(e.seconds)
	if e.last != nil && *e.last == resolved {
		e.Skipped++
		return false, nil
	}
	// The minute and hour angles interpolate using the full sample,
	// including seconds that the resolved sample may have dropped.
	a := Angles(s)
	patch := Patch{
		{Hand: HourHand, Radians: a.Hour},
		{Hand: MinuteHand, Radians: a.Minute},
	}
	if e.seconds {
		patch = append(patch, Rotation{Hand: SecondHand, Radians: a.Second})
	}
	if apply != nil {
		if err := apply(patch); err != nil {
			return false, err
		}
	}
	e.last = &resolved
	e.Updates++
	return true, nil
}

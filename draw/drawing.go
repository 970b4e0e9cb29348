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

// Clock face drawing model

package draw

import (
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/aamcrae/clockface/face"
)

// Kind selects the primitive a shape is drawn with.
type Kind int

const (
	Disc Kind = iota // Filled circle, centred on the face
	Ring             // Circle outline, centred on the face
	Line             // Radial line from Inner to Outer at Rotation
)

// Shape is a single named vector element of the clock drawing.
// Radial distances are in the same units as the face geometry.
type Shape struct {
	ID       string
	Kind     Kind
	Inner    float64 // Radial start of a line
	Outer    float64 // Radial end of a line, or circle radius
	Width    float64 // Stroke width
	Rotation float64 // Radians clockwise from the top of the face
	Colour   color.RGBA
}

// Drawing is the set of named shapes making up the clock face.
// Hands are rotated in place via Apply; every other shape is static
// after construction. The mutex guards the rotations because the
// image server renders concurrently with the scheduler applying
// patches.
type Drawing struct {
	mu     sync.Mutex
	geom   face.Geometry
	theme  face.Theme
	shapes []*Shape
	byID   map[string]*Shape
}

// New builds the initial drawing: face disc, border, optional tick
// marks, and the hands. This happens exactly once; afterwards the
// only mutation is hand rotation via Apply.
func New(geom face.Geometry, theme face.Theme, seconds, ticks bool) *Drawing {
	d := &Drawing{geom: geom, theme: theme, byID: make(map[string]*Shape)}
	d.add(&Shape{ID: "face", Kind: Disc, Outer: geom.Radius, Colour: theme.Background})
	d.add(&Shape{ID: "border", Kind: Ring, Outer: geom.Radius, Width: geom.Border, Colour: theme.Border})
	if ticks {
		for i := 0; i < 12; i++ {
			d.add(&Shape{
				ID:       fmt.Sprintf("tick_%d", i),
				Kind:     Line,
				Inner:    geom.TickInner,
				Outer:    geom.TickOuter,
				Width:    geom.TickWidth,
				Rotation: float64(i) * 2 * math.Pi / 12,
				Colour:   theme.Border,
			})
		}
	}
	d.add(&Shape{ID: string(face.HourHand), Kind: Line, Outer: geom.HourLength, Width: geom.HourWidth, Colour: theme.Hours})
	d.add(&Shape{ID: string(face.MinuteHand), Kind: Line, Outer: geom.MinuteLength, Width: geom.MinuteWidth, Colour: theme.Minutes})
	if seconds {
		d.add(&Shape{ID: string(face.SecondHand), Kind: Line, Outer: geom.SecondLength, Width: geom.SecondWidth, Colour: theme.Second})
	}
	return d
}

func (d *Drawing) add(s *Shape) {
	d.shapes = append(d.shapes, s)
	d.byID[s.ID] = s
}

// Apply replaces the rotation of each hand named in the patch,
// leaving all other attributes untouched. An unknown hand id is an
// error, and in that case no part of the patch is applied.
func (d *Drawing) Apply(p face.Patch) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, r := range p {
		if _, ok := d.byID[string(r.Hand)]; !ok {
			return fmt.Errorf("apply: unknown hand %q", r.Hand)
		}
	}
	for _, r := range p {
		d.byID[string(r.Hand)].Rotation = r.Radians
	}
	return nil
}

// Rotation returns the current rotation of the named shape.
func (d *Drawing) Rotation(id string) (float64, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.byID[id]
	if !ok {
		return 0, false
	}
	return s.Rotation, true
}

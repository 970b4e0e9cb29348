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

package draw

import (
	"image"
	"math"

	"github.com/fogleman/gg"
)

// Render rasterises the current drawing into a square image of the
// given pixel size. The shapes are snapshotted under the lock so the
// render sees a consistent set of rotations.
func (d *Drawing) Render(size int) image.Image {
	d.mu.Lock()
	shapes := make([]Shape, len(d.shapes))
	for i, s := range d.shapes {
		shapes[i] = *s
	}
	d.mu.Unlock()
	c := gg.NewContext(size, size)
	c.SetColor(d.theme.Background)
	c.Clear()
	centre := float64(size) / 2
	// Scale so the border stroke is not clipped at the edges.
	scale := centre / (d.geom.Radius + d.geom.Border)
	for _, s := range shapes {
		c.SetColor(s.Colour)
		switch s.Kind {
		case Disc:
			c.DrawCircle(centre, centre, s.Outer*scale)
			c.Fill()
		case Ring:
			c.SetLineWidth(s.Width * scale)
			c.DrawCircle(centre, centre, s.Outer*scale)
			c.Stroke()
		case Line:
			// Rotation zero is the top of the face, increasing clockwise.
			sin, cos := math.Sincos(s.Rotation)
			c.SetLineWidth(s.Width * scale)
			c.DrawLine(centre+s.Inner*scale*sin, centre-s.Inner*scale*cos,
				centre+s.Outer*scale*sin, centre-s.Outer*scale*cos)
			c.Stroke()
		}
	}
	return c.Image()
}

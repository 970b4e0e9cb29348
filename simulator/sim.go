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

// Simulator clock program
//
// Runs the engine at full speed over a simulated time range, applies
// every patch to a real drawing, and verifies that the drawn hand
// angles always match the simulated time. Also reports how many ticks
// were skipped as no-ops, which is the bulk of them when the second
// hand is off.

package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/aamcrae/clockface/draw"
	"github.com/aamcrae/clockface/face"
)

var start = flag.String("time", "3:04:05", "Starting time on clock face")
var ticks = flag.Int("ticks", 3600, "Number of ticks to simulate")
var seconds = flag.Bool("seconds", false, "Display second hand")

const threshold = 1e-9

// simClock advances the simulated time by one second per reading.
type simClock struct {
	current time.Time
}

func (s *simClock) Now() (time.Time, error) {
	t := s.current
	s.current = t.Add(time.Second)
	return t, nil
}

func main() {
	flag.Parse()
	t0, err := time.Parse("3:04:05", *start)
	if err != nil {
		log.Fatalf("%s: %v", *start, err)
	}
	src := &simClock{current: t0}
	cfg := face.DefaultConfig()
	geom := face.NewGeometry(40)
	drawing := draw.New(geom, cfg.Theme, *seconds, true)
	engine := face.NewEngine(src, *seconds, geom)
	applied := 0
	for i := 0; i < *ticks; i++ {
		sampled := src.current
		ok, err := engine.Update(drawing.Apply)
		if err != nil {
			log.Fatalf("tick %d: %v", i, err)
		}
		if !ok {
			continue
		}
		applied++
		want := face.Angles(face.Sample(sampled))
		check(drawing, string(face.HourHand), want.Hour)
		check(drawing, string(face.MinuteHand), want.Minute)
		if *seconds {
			check(drawing, string(face.SecondHand), want.Second)
		}
	}
	fmt.Printf("%d ticks, %d patches, %d skipped\n", *ticks, applied, engine.Skipped)
}

func check(d *draw.Drawing, id string, want float64) {
	got, ok := d.Rotation(id)
	if !ok {
		log.Fatalf("%s: no such shape", id)
	}
	if diff := got - want; diff > threshold || diff < -threshold {
		log.Fatalf("%s: angle %g, expected %g", id, got, want)
	}
}

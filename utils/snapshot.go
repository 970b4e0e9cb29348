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

// Snapshot utility - render the clock face at a fixed time to a PNG.

package main

import (
	"flag"
	"log"
	"time"

	"github.com/aamcrae/config"
	"github.com/fogleman/gg"

	"github.com/aamcrae/clockface/draw"
	"github.com/aamcrae/clockface/face"
)

var configFile = flag.String("config", "", "Configuration file")
var section = flag.String("section", "clock", "Configuration file section")
var at = flag.String("time", "10:09:30", "Time to display on the face")
var out = flag.String("out", "clock.png", "Output PNG file")
var size = flag.Int("size", 512, "Image size in pixels")

// fixedTime is a TimeSource pinned to a single instant.
type fixedTime struct {
	t time.Time
}

func (f fixedTime) Now() (time.Time, error) {
	return f.t, nil
}

func main() {
	flag.Parse()
	t, err := time.Parse("3:04:05", *at)
	if err != nil {
		log.Fatalf("%s: %v", *at, err)
	}
	cfg := face.DefaultConfig()
	if *configFile != "" {
		conf, err := config.ParseFile(*configFile)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
		cfg, err = face.Load(conf, *section)
		if err != nil {
			log.Fatalf("%s: %v", *configFile, err)
		}
	}
	geom := face.NewGeometry(cfg.Radius)
	drawing := draw.New(geom, cfg.Theme, cfg.Seconds, cfg.Ticks)
	engine := face.NewEngine(fixedTime{t}, cfg.Seconds, geom)
	if _, err := engine.Update(drawing.Apply); err != nil {
		log.Fatalf("update: %v", err)
	}
	if err := gg.SavePNG(*out, drawing.Render(*size)); err != nil {
		log.Fatalf("%s: %v", *out, err)
	}
	log.Printf("Wrote %s", *out)
}

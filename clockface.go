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

// Clock program

package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aamcrae/config"

	"github.com/aamcrae/clockface/draw"
	"github.com/aamcrae/clockface/face"
)

var configFile = flag.String("config", "", "Configuration file")
var section = flag.String("section", "clock", "Configuration file section")
var port = flag.Int("port", 8080, "Web server port number")
var size = flag.Int("size", 512, "Rendered image size in pixels")
var refresh = flag.Int("refresh", 1, "Browser refresh rate in seconds")

func main() {
	flag.Parse()
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
	engine := face.NewEngine(face.SystemTime{}, cfg.Seconds, geom)
	sched := face.NewScheduler(engine, face.SystemTimers{}, drawing.Apply)
	if err := sched.Start(); err != nil {
		log.Fatalf("scheduler: %v", err)
	}
	go func() {
		log.Fatal(draw.ClockServer(*port, *size, *refresh, drawing))
	}()
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		sched.Stop()
	}()
	if err := sched.Wait(); err != nil {
		log.Fatalf("clock: %v", err)
	}
}

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

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/aamcrae/config"
	"golang.org/x/image/colornames"
)

// Theme holds the resolved colours for the face elements.
type Theme struct {
	Background color.RGBA
	Border     color.RGBA
	Hours      color.RGBA
	Minutes    color.RGBA
	Second     color.RGBA
}

// ClockConfig is the validated construction input for a clock face.
// Every field has a default, and the configuration is merged and
// validated exactly once, before anything is started, so the clock
// never runs half-configured.
type ClockConfig struct {
	Radius  float64 // Face radius (default 10)
	Seconds bool    // Display the second hand (default false)
	Ticks   bool    // Display tick marks (default: radius >= 30)
	Theme   Theme
}

const defaultRadius = 10

// Tick marks default to on for faces at least this large.
const autoTickRadius = 30

// DefaultConfig returns the configuration used when no settings are
// provided.
func DefaultConfig() *ClockConfig {
	c, _ := merge(func(string) (string, bool) { return "", false })
	return c
}

// Load reads and validates a clock configuration from a config file
// section. A missing section or key falls back to the defaults; any
// malformed value other than the radius is a construction error.
// Sample config:
//  [clock]
//  radius=40                # face radius
//  seconds=on               # display the second hand
//  ticks=auto               # tick marks: on, off or auto
//  background=white         # face colours, by SVG colour name
//  border=black
//  hours=darkslategray
//  minutes=darkslategray
//  second=firebrick
func Load(conf *config.Config, name string) (*ClockConfig, error) {
	s := conf.GetSection(name)
	if s == nil {
		return DefaultConfig(), nil
	}
	return merge(func(key string) (string, bool) {
		v, err := s.GetArg(key)
		if err != nil {
			return "", false
		}
		return v, true
	})
}

// merge resolves the configuration from a key lookup, applying the
// documented default for every absent key.
func merge(get func(string) (string, bool)) (*ClockConfig, error) {
	c := &ClockConfig{
		Radius: defaultRadius,
		Theme: Theme{
			Background: colornames.White,
			Border:     colornames.Black,
			Hours:      colornames.Black,
			Minutes:    colornames.Black,
			Second:     colornames.Red,
		},
	}
	if v, ok := get("radius"); ok {
		// An unusable radius falls back to the default rather than
		// failing construction.
		if r, err := strconv.ParseFloat(v, 64); err == nil && r > 0 {
			c.Radius = r
		}
	}
	if v, ok := get("seconds"); ok {
		b, err := parseBool(v)
		if err != nil {
			return nil, fmt.Errorf("seconds: %v", err)
		}
		c.Seconds = b
	}
	c.Ticks = c.Radius >= autoTickRadius
	if v, ok := get("ticks"); ok && !strings.EqualFold(v, "auto") {
		b, err := parseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ticks: %v", err)
		}
		c.Ticks = b
	}
	colours := []struct {
		key string
		dst *color.RGBA
	}{
		{"background", &c.Theme.Background},
		{"border", &c.Theme.Border},
		{"hours", &c.Theme.Hours},
		{"minutes", &c.Theme.Minutes},
		{"second", &c.Theme.Second},
	}
	for _, f := range colours {
		v, ok := get(f.key)
		if !ok {
			continue
		}
		col, ok := colornames.Map[strings.ToLower(v)]
		if !ok {
			return nil, fmt.Errorf("%s: unknown colour %q", f.key, v)
		}
		*f.dst = col
	}
	return c, nil
}

func parseBool(v string) (bool, error) {
	switch strings.ToLower(v) {
	case "on", "yes":
		return true, nil
	case "off", "no":
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid boolean %q", v)
	}
	return b, nil
}

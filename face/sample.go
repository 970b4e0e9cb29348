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

// Wall clock sampling

package face

import (
	"time"
)

// TimeSource supplies wall clock readings to the engine.
// The system implementation reads the local clock; tests and the
// simulator substitute their own.
type TimeSource interface {
	Now() (time.Time, error)
}

// SystemTime is the TimeSource backed by the local wall clock.
type SystemTime struct{}

func (SystemTime) Now() (time.Time, error) {
	return time.Now(), nil
}

// TimeSample is an immutable snapshot of the local wall clock,
// reduced to the fields a clock face can display. Year and Day
// identify the date so that a sample is a point in time rather
// than a time of day that repeats daily.
type TimeSample struct {
	Hour   int // 0-23
	Minute int // 0-59
	Second int // 0-59
	Year   int
	Day    int // Day of year
}

// Sample captures a snapshot of the given time.
func Sample(t time.Time) TimeSample {
	hour, minute, sec := t.Clock()
	return TimeSample{
		Hour:   hour,
		Minute: minute,
		Second: sec,
		Year:   t.Year(),
		Day:    t.YearDay(),
	}
}

// Resolve reduces the sample to the granularity the clock actually
// displays. When the second hand is not shown, the seconds are
// dropped so that samples within the same minute compare equal and
// do not trigger redundant redraws.
func (s TimeSample) Resolve(seconds bool) TimeSample {
	if !seconds {
		s.Second = 0
	}
	return s
}

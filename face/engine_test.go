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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock is a manually advanced TimeSource.
type fakeClock struct {
	current time.Time
	err     error
}

func (f *fakeClock) Now() (time.Time, error) {
	if f.err != nil {
		return time.Time{}, f.err
	}
	return f.current, nil
}

func (f *fakeClock) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}

// recorder collects applied patches.
type recorder struct {
	patches []Patch
	err     error
}

func (r *recorder) apply(p Patch) error {
	if r.err != nil {
		return r.err
	}
	r.patches = append(r.patches, p)
	return nil
}

func at(hour, minute, sec int) time.Time {
	return time.Date(2021, time.June, 8, hour, minute, sec, 0, time.UTC)
}

func TestFirstUpdateEmitsFullPatch(t *testing.T) {
	fc := &fakeClock{current: at(6, 30, 30)}
	rec := &recorder{}
	e := NewEngine(fc, true, NewGeometry(10))
	applied, err := e.Update(rec.apply)
	require.NoError(t, err)
	assert.True(t, applied)
	require.Len(t, rec.patches, 1)
	p := rec.patches[0]
	require.Len(t, p, 3)
	want := Angles(Sample(fc.current))
	assert.Equal(t, Rotation{Hand: HourHand, Radians: want.Hour}, p[0])
	assert.Equal(t, Rotation{Hand: MinuteHand, Radians: want.Minute}, p[1])
	assert.Equal(t, Rotation{Hand: SecondHand, Radians: want.Second}, p[2])
}

func TestUpdateIdempotent(t *testing.T) {
	fc := &fakeClock{current: at(10, 15, 1)}
	rec := &recorder{}
	e := NewEngine(fc, true, NewGeometry(10))
	applied, err := e.Update(rec.apply)
	require.NoError(t, err)
	assert.True(t, applied)
	// No wall clock change, so the second call must be a no-op.
	applied, err = e.Update(rec.apply)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Len(t, rec.patches, 1)
	assert.Equal(t, 1, e.Updates)
	assert.Equal(t, 1, e.Skipped)
}

func TestSecondTicksSkippedWithoutSecondHand(t *testing.T) {
	fc := &fakeClock{current: at(10, 15, 1)}
	rec := &recorder{}
	e := NewEngine(fc, false, NewGeometry(10))
	applied, err := e.Update(rec.apply)
	require.NoError(t, err)
	assert.True(t, applied)
	require.Len(t, rec.patches, 1)
	// Only two hands when the second hand is off.
	assert.Len(t, rec.patches[0], 2)
	// Ticks within the same minute change nothing that is displayed.
	for i := 0; i < 58; i++ {
		fc.Advance(time.Second)
		applied, err = e.Update(rec.apply)
		require.NoError(t, err)
		assert.False(t, applied)
	}
	assert.Len(t, rec.patches, 1)
	// The first tick of the next minute redraws.
	fc.Advance(time.Second)
	applied, err = e.Update(rec.apply)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Len(t, rec.patches, 2)
}

func TestMinuteHandCreepsWithSeconds(t *testing.T) {
	// Even with the second hand off, the minute angle uses the
	// seconds for interpolation at the tick that is rendered.
	fc := &fakeClock{current: at(10, 15, 30)}
	rec := &recorder{}
	e := NewEngine(fc, false, NewGeometry(10))
	_, err := e.Update(rec.apply)
	require.NoError(t, err)
	require.Len(t, rec.patches, 1)
	want := Angles(TimeSample{Hour: 10, Minute: 15, Second: 30})
	assert.Equal(t, want.Minute, rec.patches[0][1].Radians)
	assert.Equal(t, want.Hour, rec.patches[0][0].Radians)
}

func TestSourceFailureSkipsTick(t *testing.T) {
	fc := &fakeClock{current: at(10, 15, 1)}
	rec := &recorder{}
	e := NewEngine(fc, true, NewGeometry(10))
	_, err := e.Update(rec.apply)
	require.NoError(t, err)
	// A read failure is fatal to that tick only.
	fc.err = fmt.Errorf("no clock")
	applied, err := e.Update(rec.apply)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Len(t, rec.patches, 1)
	// The next good tick recovers by recomputing from scratch.
	fc.err = nil
	fc.Advance(time.Second)
	applied, err = e.Update(rec.apply)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Len(t, rec.patches, 2)
}

func TestApplyFailureRetriesNextTick(t *testing.T) {
	fc := &fakeClock{current: at(10, 15, 1)}
	rec := &recorder{err: fmt.Errorf("sink down")}
	e := NewEngine(fc, true, NewGeometry(10))
	applied, err := e.Update(rec.apply)
	assert.Error(t, err)
	assert.False(t, applied)
	// The cached sample was not advanced, so the same time still
	// produces a patch once the sink recovers.
	rec.err = nil
	applied, err = e.Update(rec.apply)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.Len(t, rec.patches, 1)
}

func TestGeometryImmutable(t *testing.T) {
	geom := NewGeometry(25)
	e := NewEngine(&fakeClock{current: at(1, 2, 3)}, false, geom)
	_, err := e.Update(nil)
	require.NoError(t, err)
	assert.Equal(t, geom, e.Geometry())
}

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

// Timer service

package face

import (
	"fmt"
	"sync"
	"time"
)

// TimerHandle identifies a repeating timer so it can be cancelled.
type TimerHandle interface{}

// TimerService abstracts the timers the scheduler runs on, so that
// tests and the simulator can fire ticks by hand.
type TimerService interface {
	// ScheduleOnce runs fn once after the given delay.
	ScheduleOnce(delay time.Duration, fn func()) error
	// ScheduleRepeating runs fn every period until cancelled.
	ScheduleRepeating(period time.Duration, fn func()) (TimerHandle, error)
	// Cancel stops a repeating timer. No callback runs after Cancel
	// returns. Cancelling twice is harmless.
	Cancel(h TimerHandle)
}

// SystemTimers is the TimerService backed by the runtime timers.
type SystemTimers struct{}

func (SystemTimers) ScheduleOnce(delay time.Duration, fn func()) error {
	if fn == nil {
		return fmt.Errorf("one-shot timer: nil callback")
	}
	if delay < 0 {
		delay = 0
	}
	time.AfterFunc(delay, fn)
	return nil
}

func (SystemTimers) ScheduleRepeating(period time.Duration, fn func()) (TimerHandle, error) {
	if fn == nil {
		return nil, fmt.Errorf("repeating timer: nil callback")
	}
	if period <= 0 {
		return nil, fmt.Errorf("repeating timer: period %s not positive", period)
	}
	st := &systemTicker{ticker: time.NewTicker(period), done: make(chan struct{})}
	go func() {
		for {
			select {
			case <-st.done:
				return
			case <-st.ticker.C:
				fn()
			}
		}
	}()
	return st, nil
}

func (SystemTimers) Cancel(h TimerHandle) {
	if st, ok := h.(*systemTicker); ok {
		st.once.Do(func() {
			st.ticker.Stop()
			close(st.done)
		})
	}
}

type systemTicker struct {
	ticker *time.Ticker
	done   chan struct{}
	once   sync.Once
}

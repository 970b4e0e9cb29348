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

// Tick scheduling

package face

import (
	"fmt"
	"log"
	"sync"
	"time"

	"go.uber.org/atomic"
)

// tickPeriod is the heartbeat interval once the phase lock is done.
const tickPeriod = time.Second

// Messages processed by the scheduler actor, in arrival order.
type message int

const (
	startHeartbeat message = iota
	tick
)

// Scheduler drives the engine with a once-per-second heartbeat.
// At startup a single one-shot timer is scheduled so that it fires
// just after the next second boundary; when it does, the repeating
// heartbeat is started and runs at a fixed period from then on.
// No re-alignment is attempted after the initial phase lock; long
// run drift is bounded by the accuracy of the interval timer.
// Timer callbacks never touch the engine directly. They post
// messages to an inbox drained by a single goroutine, so the engine
// state has exactly one mutator and ticks are handled strictly in
// arrival order.
type Scheduler struct {
	engine   *Engine
	timers   TimerService
	apply    func(Patch) error
	inbox    chan message
	shutdown chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	handle   TimerHandle // Owned by the actor goroutine
	err      error       // Set by the actor before done is closed
	Ticks    atomic.Int64
	Patches  atomic.Int64
}

// NewScheduler creates a scheduler that runs the engine on each tick
// and sends any resulting patch to apply.
func NewScheduler(engine *Engine, timers TimerService, apply func(Patch) error) *Scheduler {
	return &Scheduler{
		engine:   engine,
		timers:   timers,
		apply:    apply,
		inbox:    make(chan message, 4),
		shutdown: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// alignmentDelay computes the one-shot delay that lands the first
// tick 1ms past the next second boundary. The first tick must never
// fire early, as it would sample the previous, stale second.
func alignmentDelay(t time.Time) time.Duration {
	ms := t.Nanosecond() / int(time.Millisecond)
	return time.Duration(1001-ms) * time.Millisecond
}

// Start schedules the phase alignment and starts the actor.
// A timer failure here is fatal; the clock cannot run without its
// heartbeat.
func (s *Scheduler) Start() error {
	t, err := s.engine.src.Now()
	if err != nil {
		return fmt.Errorf("time source: %v", err)
	}
	if err := s.timers.ScheduleOnce(alignmentDelay(t), func() { s.post(startHeartbeat) }); err != nil {
		return fmt.Errorf("alignment timer: %v", err)
	}
	go s.run()
	return nil
}

// Stop begins teardown. Messages already queued are discarded and no
// tick is processed once Stop has been called.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		close(s.shutdown)
	})
}

// Wait blocks until the scheduler has shut down, and reports the
// error that stopped it, if any.
func (s *Scheduler) Wait() error {
	<-s.done
	return s.err
}

// post queues a message for the actor. Never blocks past teardown.
func (s *Scheduler) post(m message) {
	select {
	case <-s.shutdown:
	case s.inbox <- m:
	}
}

// run is the actor goroutine, the sole owner of the engine state.
func (s *Scheduler) run() {
	defer close(s.done)
	defer func() {
		if s.handle != nil {
			s.timers.Cancel(s.handle)
		}
	}()
	for {
		select {
		case <-s.shutdown:
			return
		case m := <-s.inbox:
			// Teardown wins over queued messages.
			select {
			case <-s.shutdown:
				return
			default:
			}
			switch m {
			case startHeartbeat:
				h, err := s.timers.ScheduleRepeating(tickPeriod, func() { s.post(tick) })
				if err != nil {
					s.err = fmt.Errorf("heartbeat: %v", err)
					s.Stop()
					return
				}
				s.handle = h
				s.step()
			case tick:
				s.step()
			}
		}
	}
}

// step runs one engine update. The engine only advances its cached
// sample once the patch has been applied, so a failed apply is
// retried naturally on the next tick.
func (s *Scheduler) step() {
	s.Ticks.Inc()
	applied, err := s.engine.Update(s.apply)
	if err != nil {
		log.Printf("update: %v", err)
		return
	}
	if applied {
		s.Patches.Inc()
	}
}

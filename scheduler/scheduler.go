// Package scheduler drives the game's recurring tasks from one simulation clock.
//
// The scheduler owns two kinds of task: periodic tasks (the income timer)
// that fire once per elapsed period, and frame tasks (the render loop) that
// fire once per Advance. Everything runs on the caller's goroutine, so tasks
// never overlap and need no locking.
package scheduler

import (
	"context"
	"sync/atomic"
	"time"
)

// Task is invoked with the simulation time at which it fires.
type Task func(now time.Duration)

// DefaultMaxCatchUp bounds how many missed periods a task replays in one Advance.
const DefaultMaxCatchUp = 5

type entry struct {
	name      string
	period    time.Duration // 0 = every frame
	next      time.Duration
	fn        Task
	cancelled bool
}

// Handle cancels a single registered task.
type Handle struct {
	e *entry
}

// Cancel stops the task from firing again. Safe to call more than once.
func (h *Handle) Cancel() {
	if h != nil && h.e != nil {
		h.e.cancelled = true
	}
}

// Name returns the task name.
func (h *Handle) Name() string {
	return h.e.name
}

// Scheduler runs periodic and per-frame tasks against a simulation clock.
type Scheduler struct {
	now        time.Duration
	periodic   []*entry
	frame      []*entry
	maxCatchUp int
	stopped    atomic.Bool
}

// New creates a scheduler at time zero.
func New() *Scheduler {
	return &Scheduler{maxCatchUp: DefaultMaxCatchUp}
}

// SetMaxCatchUp changes how many missed periods may fire in one Advance.
// Periods beyond the limit are dropped rather than replayed.
func (s *Scheduler) SetMaxCatchUp(n int) {
	if n < 1 {
		n = 1
	}
	s.maxCatchUp = n
}

// Every registers fn to run once per period of simulation time, first
// firing one period from now. A non-positive period registers a frame task.
func (s *Scheduler) Every(name string, period time.Duration, fn Task) *Handle {
	if period <= 0 {
		return s.EachFrame(name, fn)
	}
	e := &entry{name: name, period: period, next: s.now + period, fn: fn}
	s.periodic = append(s.periodic, e)
	return &Handle{e: e}
}

// EachFrame registers fn to run once per Advance, after periodic tasks.
func (s *Scheduler) EachFrame(name string, fn Task) *Handle {
	e := &entry{name: name, fn: fn}
	s.frame = append(s.frame, e)
	return &Handle{e: e}
}

// Now returns the current simulation time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Advance moves simulation time forward by dt and fires due tasks.
// Periodic tasks fire first, in registration order, once per elapsed period
// (bounded by the catch-up limit); frame tasks then fire once each.
// Returns the number of task invocations. Does nothing once stopped.
func (s *Scheduler) Advance(dt time.Duration) int {
	if s.stopped.Load() {
		return 0
	}
	if dt > 0 {
		s.now += dt
	}

	runs := 0
	for _, e := range s.periodic {
		fired := 0
		for !e.cancelled && e.next <= s.now {
			if fired == s.maxCatchUp {
				// Drop the backlog; resume on the next boundary after now.
				missed := (s.now-e.next)/e.period + 1
				e.next += missed * e.period
				break
			}
			e.fn(e.next)
			e.next += e.period
			fired++
			runs++
			if s.stopped.Load() {
				return runs
			}
		}
	}
	for _, e := range s.frame {
		if e.cancelled {
			continue
		}
		e.fn(s.now)
		runs++
		if s.stopped.Load() {
			return runs
		}
	}

	s.periodic = compact(s.periodic)
	s.frame = compact(s.frame)
	return runs
}

// Stop permanently halts the scheduler. It may be called from any goroutine.
func (s *Scheduler) Stop() {
	s.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (s *Scheduler) Stopped() bool {
	return s.stopped.Load()
}

// Len returns the number of live tasks.
func (s *Scheduler) Len() int {
	n := 0
	for _, e := range s.periodic {
		if !e.cancelled {
			n++
		}
	}
	for _, e := range s.frame {
		if !e.cancelled {
			n++
		}
	}
	return n
}

// Run advances the scheduler in real time, once per frame interval, until
// ctx is cancelled or Stop is called. It returns ctx.Err() on cancellation
// and nil after Stop.
func (s *Scheduler) Run(ctx context.Context, clk Clock, frame time.Duration) error {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := clk.Now()
	for {
		select {
		case <-ctx.Done():
			s.Stop()
			return ctx.Err()
		case <-ticker.C:
			now := clk.Now()
			s.Advance(now.Sub(last))
			last = now
			if s.Stopped() {
				return nil
			}
		}
	}
}

// compact drops cancelled entries in place.
func compact(entries []*entry) []*entry {
	out := entries[:0]
	for _, e := range entries {
		if !e.cancelled {
			out = append(out, e)
		}
	}
	for i := len(out); i < len(entries); i++ {
		entries[i] = nil
	}
	return out
}

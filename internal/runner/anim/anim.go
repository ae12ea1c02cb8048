// Package anim sequences transient animation clips. The player has one
// implicit idle clip ("run") that is never enqueued; transient clips (jump,
// roll) queue up FIFO and play one at a time to completion, each reverting
// to the idle clip when its timer expires.
//
// Completion is tick-driven: the orchestrator advances the sequencer by the
// frame delta, so there are no background timers and a reset can clear the
// queue, the busy flag, and any pending completion in one call.
package anim

import "time"

// Entry is one queued clip request.
type Entry struct {
	Name       string
	Duration   time.Duration
	OnComplete func()
}

// PlayFunc is the side effect that actually starts a clip on the rendering
// collaborator. It receives the clip name; a nil PlayFunc is allowed (the
// sequencer then only tracks names and timing).
type PlayFunc func(name string)

// Sequencer plays queued clips one at a time.
type Sequencer struct {
	idleName  string
	play      PlayFunc
	queue     []Entry
	busy      bool
	current   Entry
	remaining float64 // seconds left on the current clip
}

// NewSequencer creates a sequencer idling on idleName.
func NewSequencer(idleName string, play PlayFunc) *Sequencer {
	return &Sequencer{idleName: idleName, play: play}
}

// Enqueue appends a clip request and starts it immediately if nothing is
// playing.
func (s *Sequencer) Enqueue(name string, duration time.Duration, onComplete func()) {
	s.queue = append(s.queue, Entry{Name: name, Duration: duration, OnComplete: onComplete})
	if !s.busy {
		s.processNext()
	}
}

// processNext dequeues and starts the head clip. No-op while busy or when
// the queue is empty.
func (s *Sequencer) processNext() {
	if s.busy || len(s.queue) == 0 {
		return
	}
	s.current = s.queue[0]
	s.queue = s.queue[1:]
	s.busy = true
	s.remaining = s.current.Duration.Seconds()
	if s.play != nil {
		s.play(s.current.Name)
	}
}

// Update advances the current clip's timer by delta seconds. When a clip
// completes it invokes its OnComplete, reverts to the idle clip, and starts
// the next queued clip if any.
func (s *Sequencer) Update(delta float64) {
	if !s.busy {
		return
	}
	s.remaining -= delta
	if s.remaining > 0 {
		return
	}
	done := s.current
	s.busy = false
	s.current = Entry{}
	if done.OnComplete != nil {
		done.OnComplete()
	}
	if s.play != nil {
		s.play(s.idleName)
	}
	s.processNext()
}

// Current returns the name of the playing clip, or the idle name when no
// transient clip is active.
func (s *Sequencer) Current() string {
	if s.busy {
		return s.current.Name
	}
	return s.idleName
}

// Busy reports whether a transient clip is playing.
func (s *Sequencer) Busy() bool {
	return s.busy
}

// Reset drops the queue, the busy flag, and any pending completion. Queued
// OnComplete callbacks are discarded, never invoked: a restart must not run
// stale completions against the new run's state.
func (s *Sequencer) Reset() {
	s.queue = nil
	s.busy = false
	s.current = Entry{}
	s.remaining = 0
}

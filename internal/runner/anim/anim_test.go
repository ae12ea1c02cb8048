package anim

import (
	"reflect"
	"testing"
	"time"
)

const tick = 1.0 / 60.0

// advance runs the sequencer for the given wall duration in 60 Hz ticks.
func advance(s *Sequencer, d time.Duration) {
	ticks := int(d.Seconds()/tick) + 1
	for i := 0; i < ticks; i++ {
		s.Update(tick)
	}
}

func TestEnqueuePlaysImmediatelyWhenIdle(t *testing.T) {
	var played []string
	s := NewSequencer("run", func(name string) { played = append(played, name) })

	s.Enqueue("jump", 800*time.Millisecond, nil)

	if !reflect.DeepEqual(played, []string{"jump"}) {
		t.Errorf("Expected [jump] played, got %v", played)
	}
	if s.Current() != "jump" {
		t.Errorf("Expected current jump, got %s", s.Current())
	}
}

func TestQueuedClipWaitsForCompletion(t *testing.T) {
	var played []string
	s := NewSequencer("run", func(name string) { played = append(played, name) })

	s.Enqueue("jump", 800*time.Millisecond, nil)
	s.Enqueue("roll", 1190*time.Millisecond, nil)

	// Roll must not start while jump is still playing.
	if !reflect.DeepEqual(played, []string{"jump"}) {
		t.Fatalf("Expected only jump started, got %v", played)
	}

	advance(s, 800*time.Millisecond)
	if !reflect.DeepEqual(played, []string{"jump", "run", "roll"}) {
		t.Fatalf("Expected jump completion to resume run then start roll, got %v", played)
	}

	advance(s, 1190*time.Millisecond)
	if !reflect.DeepEqual(played, []string{"jump", "run", "roll", "run"}) {
		t.Errorf("Expected run resumed after roll, got %v", played)
	}
	if s.Current() != "run" {
		t.Errorf("Expected idle after both clips, got %s", s.Current())
	}
}

func TestOnCompleteFiresOnce(t *testing.T) {
	completions := 0
	s := NewSequencer("run", nil)
	s.Enqueue("roll", 100*time.Millisecond, func() { completions++ })

	advance(s, 500*time.Millisecond)
	if completions != 1 {
		t.Errorf("Expected 1 completion, got %d", completions)
	}
}

func TestCurrentDefaultsToIdle(t *testing.T) {
	s := NewSequencer("run", nil)
	if s.Current() != "run" {
		t.Errorf("Expected run when idle, got %s", s.Current())
	}
	if s.Busy() {
		t.Error("Expected not busy initially")
	}
}

func TestResetDiscardsPendingCompletions(t *testing.T) {
	completions := 0
	var played []string
	s := NewSequencer("run", func(name string) { played = append(played, name) })

	s.Enqueue("jump", 800*time.Millisecond, func() { completions++ })
	s.Enqueue("roll", 1190*time.Millisecond, func() { completions++ })
	s.Reset()

	if s.Busy() {
		t.Error("Expected idle after reset")
	}
	advance(s, 3*time.Second)
	if completions != 0 {
		t.Errorf("Expected no stale completions after reset, got %d", completions)
	}
	if s.Current() != "run" {
		t.Errorf("Expected run after reset, got %s", s.Current())
	}
	// Only the original jump start should have been played; reset must not
	// trigger the idle revert or the queued roll.
	if !reflect.DeepEqual(played, []string{"jump"}) {
		t.Errorf("Expected no plays after reset, got %v", played)
	}
}

func TestEnqueueAfterResetStartsFresh(t *testing.T) {
	s := NewSequencer("run", nil)
	s.Enqueue("jump", 800*time.Millisecond, nil)
	s.Reset()
	s.Enqueue("roll", 100*time.Millisecond, nil)
	if s.Current() != "roll" {
		t.Errorf("Expected roll playing after reset+enqueue, got %s", s.Current())
	}
}

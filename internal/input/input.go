// Package input maps raw keyboard and touch events to the discrete intents
// the game understands. The simulation never sees keys or gestures, only
// intents, so swipe and arrow-key control behave identically.
package input

import (
	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/render"
)

// Intent is one discrete player command.
type Intent int

const (
	IntentLaneLeft Intent = iota
	IntentLaneRight
	IntentJump
	IntentSlide
)

// Mapper polls an InputManager and emits intents once per trigger.
type Mapper struct {
	input render.InputManager

	// swipe origin per touch ID, recorded when the touch begins
	starts map[int]render.Touch
}

// NewMapper creates a mapper over the given input source.
func NewMapper(in render.InputManager) *Mapper {
	return &Mapper{
		input:  in,
		starts: make(map[int]render.Touch),
	}
}

// Poll returns the intents triggered this frame, keyboard first. Keys fire
// on the press edge only so holding an arrow does not repeat the intent.
func (m *Mapper) Poll() []Intent {
	var intents []Intent

	if m.justPressed(render.KeyLeft, render.KeyA) {
		intents = append(intents, IntentLaneLeft)
	}
	if m.justPressed(render.KeyRight, render.KeyD) {
		intents = append(intents, IntentLaneRight)
	}
	if m.justPressed(render.KeyUp, render.KeyW, render.KeySpace) {
		intents = append(intents, IntentJump)
	}
	if m.justPressed(render.KeyDown, render.KeyS) {
		intents = append(intents, IntentSlide)
	}

	return append(intents, m.pollSwipes()...)
}

func (m *Mapper) justPressed(keys ...render.Key) bool {
	for _, k := range keys {
		if m.input.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// pollSwipes tracks touches from press to release and classifies each
// release as a swipe. The displacement must exceed the threshold, and the
// dominant axis decides between horizontal (lane) and vertical (jump/slide)
// gestures.
func (m *Mapper) pollSwipes() []Intent {
	for _, t := range m.input.JustPressedTouches() {
		m.starts[t.ID] = t
	}
	// Touch positions update while held; releases report the last one.
	m.input.ActiveTouches()

	var intents []Intent
	for _, end := range m.input.JustReleasedTouches() {
		start, ok := m.starts[end.ID]
		if !ok {
			continue
		}
		delete(m.starts, end.ID)

		if intent, ok := classifySwipe(end.X-start.X, end.Y-start.Y); ok {
			intents = append(intents, intent)
		}
	}
	return intents
}

// classifySwipe turns a displacement in screen pixels into an intent.
// Screen Y grows downward, so a negative dy is an upward swipe.
func classifySwipe(dx, dy int) (Intent, bool) {
	adx, ady := abs(dx), abs(dy)
	if adx < config.SwipeThreshold && ady < config.SwipeThreshold {
		return 0, false
	}
	if adx >= ady {
		if dx < 0 {
			return IntentLaneLeft, true
		}
		return IntentLaneRight, true
	}
	if dy < 0 {
		return IntentJump, true
	}
	return IntentSlide, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

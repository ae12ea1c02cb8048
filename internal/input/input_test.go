package input

import (
	"reflect"
	"testing"

	"chosenoffset.com/streetrun/internal/render"
)

// fakeInput is a scriptable InputManager for tests.
type fakeInput struct {
	justPressed map[render.Key]bool
	pressed     []render.Touch
	active      []render.Touch
	released    []render.Touch
}

func (f *fakeInput) IsKeyPressed(render.Key) bool { return false }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool {
	return f.justPressed[k]
}
func (f *fakeInput) GetCursorPosition() (int, int)                 { return 0, 0 }
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool  { return false }
func (f *fakeInput) JustPressedTouches() []render.Touch            { return f.pressed }
func (f *fakeInput) ActiveTouches() []render.Touch                 { return f.active }
func (f *fakeInput) JustReleasedTouches() []render.Touch           { return f.released }

func TestKeyboardIntents(t *testing.T) {
	tests := []struct {
		name string
		keys []render.Key
		want []Intent
	}{
		{"arrow left", []render.Key{render.KeyLeft}, []Intent{IntentLaneLeft}},
		{"A maps left", []render.Key{render.KeyA}, []Intent{IntentLaneLeft}},
		{"arrow right", []render.Key{render.KeyRight}, []Intent{IntentLaneRight}},
		{"up jumps", []render.Key{render.KeyUp}, []Intent{IntentJump}},
		{"space jumps", []render.Key{render.KeySpace}, []Intent{IntentJump}},
		{"down slides", []render.Key{render.KeyDown}, []Intent{IntentSlide}},
		{"left and jump together", []render.Key{render.KeyLeft, render.KeyW}, []Intent{IntentLaneLeft, IntentJump}},
		{"nothing", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeInput{justPressed: make(map[render.Key]bool)}
			for _, k := range tt.keys {
				f.justPressed[k] = true
			}
			got := NewMapper(f).Poll()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSwipeClassification(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   Intent
		fires  bool
	}{
		{"right swipe", 40, 3, IntentLaneRight, true},
		{"left swipe", -25, -4, IntentLaneLeft, true},
		{"up swipe", 2, -30, IntentJump, true},
		{"down swipe", -5, 50, IntentSlide, true},
		{"below threshold", 6, 6, 0, false},
		{"exactly threshold horizontal", 10, 0, IntentLaneRight, true},
		{"diagonal favors horizontal", 30, 29, IntentLaneRight, true},
		{"diagonal favors vertical", 12, -33, IntentJump, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, fired := classifySwipe(tt.dx, tt.dy)
			if fired != tt.fires {
				t.Fatalf("Expected fires=%v, got %v", tt.fires, fired)
			}
			if fired && got != tt.want {
				t.Errorf("Expected intent %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSwipeAcrossFrames(t *testing.T) {
	f := &fakeInput{justPressed: make(map[render.Key]bool)}
	m := NewMapper(f)

	// Frame 1: touch begins.
	f.pressed = []render.Touch{{ID: 7, X: 100, Y: 200}}
	if got := m.Poll(); got != nil {
		t.Fatalf("Expected no intent on press, got %v", got)
	}

	// Frame 2: touch released after moving up past the threshold.
	f.pressed = nil
	f.released = []render.Touch{{ID: 7, X: 103, Y: 150}}
	got := m.Poll()
	if !reflect.DeepEqual(got, []Intent{IntentJump}) {
		t.Errorf("Expected [IntentJump], got %v", got)
	}

	// Frame 3: the release is consumed; nothing repeats.
	got = m.Poll()
	if got != nil {
		t.Errorf("Expected no repeat intent, got %v", got)
	}
}

func TestReleaseWithoutTrackedStartIsIgnored(t *testing.T) {
	f := &fakeInput{justPressed: make(map[render.Key]bool)}
	f.released = []render.Touch{{ID: 3, X: 500, Y: 0}}
	if got := NewMapper(f).Poll(); got != nil {
		t.Errorf("Expected untracked release ignored, got %v", got)
	}
}

package game

import (
	"errors"
	"testing"

	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/render"
	"chosenoffset.com/streetrun/internal/ui/menu"
)

// fakeInput scripts keyboard state per frame.
type fakeInput struct {
	justPressed map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{justPressed: make(map[render.Key]bool)}
}

func (f *fakeInput) press(k render.Key) {
	f.justPressed = map[render.Key]bool{k: true}
}

func (f *fakeInput) release() {
	f.justPressed = map[render.Key]bool{}
}

func (f *fakeInput) IsKeyPressed(render.Key) bool              { return false }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool        { return f.justPressed[k] }
func (f *fakeInput) GetCursorPosition() (int, int)             { return 0, 0 }
func (f *fakeInput) IsMouseButtonPressed(render.MouseButton) bool { return false }
func (f *fakeInput) JustPressedTouches() []render.Touch        { return nil }
func (f *fakeInput) ActiveTouches() []render.Touch             { return nil }
func (f *fakeInput) JustReleasedTouches() []render.Touch       { return nil }

func newManager(in *fakeInput) *Manager {
	return NewManager(nil, in, nil, nil, config.Default(), 640, 480)
}

func TestStartsOnTitleScreen(t *testing.T) {
	m := newManager(newFakeInput())
	if m.Screen != menu.ScreenTitle {
		t.Errorf("Expected title screen, got %v", m.Screen)
	}
}

func TestEnterStartsRun(t *testing.T) {
	in := newFakeInput()
	m := newManager(in)

	in.press(render.KeyEnter)
	if err := m.Update(); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if m.Screen != menu.ScreenPlaying {
		t.Errorf("Expected playing screen, got %v", m.Screen)
	}
}

func TestEscapeOnTitleTerminates(t *testing.T) {
	in := newFakeInput()
	m := newManager(in)

	in.press(render.KeyEscape)
	err := m.Update()
	if !errors.Is(err, render.Terminated) {
		t.Errorf("Expected Terminated, got %v", err)
	}
}

func TestCollisionFlipsToGameOver(t *testing.T) {
	in := newFakeInput()
	m := newManager(in)

	in.press(render.KeyEnter)
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	in.release()

	// End the run through the orchestrator's own collision path.
	m.forceCollision()

	if m.Screen != menu.ScreenGameOver {
		t.Errorf("Expected game-over screen, got %v", m.Screen)
	}
}

// forceCollision parks a barrier on the player and ticks once.
func (m *Manager) forceCollision() {
	for i := range m.run.Barriers() {
		m.run.Barriers()[i].Pos.X = 0
		m.run.Barriers()[i].Pos.Z = 0
	}
	m.Update()
}

func TestRestartFromGameOver(t *testing.T) {
	in := newFakeInput()
	m := newManager(in)

	in.press(render.KeyEnter)
	m.Update()
	in.release()
	m.forceCollision()
	if m.Screen != menu.ScreenGameOver {
		t.Fatalf("Expected game over, got %v", m.Screen)
	}

	in.press(render.KeyEnter)
	if err := m.Update(); err != nil {
		t.Fatal(err)
	}
	if m.Screen != menu.ScreenPlaying {
		t.Errorf("Expected playing after restart, got %v", m.Screen)
	}
	if !m.run.State.Active {
		t.Error("Expected active run after restart")
	}
	if m.run.State.Score != 0 {
		t.Errorf("Expected fresh score, got %v", m.run.State.Score)
	}
}

func TestEscapeDuringPlayReturnsToTitle(t *testing.T) {
	in := newFakeInput()
	m := newManager(in)

	in.press(render.KeyEnter)
	m.Update()
	in.press(render.KeyEscape)
	if err := m.Update(); err != nil {
		t.Fatalf("Expected no termination on escape to title, got %v", err)
	}
	if m.Screen != menu.ScreenTitle {
		t.Errorf("Expected title screen, got %v", m.Screen)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	m := newManager(newFakeInput())
	m.Close()
	m.Close()
}

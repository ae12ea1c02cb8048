// Package menu provides the title and game-over screens and the commands
// they accept from the player: start, restart, exit.
package menu

import (
	"fmt"
	"image/color"

	"chosenoffset.com/streetrun/internal/render"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
)

// Screen identifies which outer screen is showing.
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// Command is an action selected on a menu screen.
type Command int

const (
	CommandNone Command = iota
	CommandStart
	CommandRestart
	CommandExit
)

var (
	colorBackdrop = color.RGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xd0}
	colorAccent   = color.RGBA{R: 0xf0, G: 0xc4, B: 0x20, A: 0xff}
)

// TitleScreen is the entry menu.
type TitleScreen struct {
	renderer     render.Renderer
	input        render.InputManager
	screenWidth  int
	screenHeight int
}

// NewTitleScreen creates the title menu.
func NewTitleScreen(r render.Renderer, in render.InputManager, width, height int) *TitleScreen {
	return &TitleScreen{renderer: r, input: in, screenWidth: width, screenHeight: height}
}

// Update polls for a selection. Enter or Space starts, Escape exits.
func (t *TitleScreen) Update() Command {
	if t.input.IsKeyJustPressed(render.KeyEnter) || t.input.IsKeyJustPressed(render.KeySpace) {
		return CommandStart
	}
	if t.input.IsKeyJustPressed(render.KeyEscape) {
		return CommandExit
	}
	// A tap anywhere also starts, for touch devices.
	if len(t.input.JustPressedTouches()) > 0 {
		return CommandStart
	}
	return CommandNone
}

// Draw paints the title screen.
func (t *TitleScreen) Draw(screen render.Image) {
	screen.Fill(colorBackdrop)
	t.centerText(screen, "STREET RUN", t.screenHeight/3, colorAccent, 2)
	t.centerText(screen, "Press Enter to run", t.screenHeight/2, color.White, 1)
	t.centerText(screen, "Arrows / WASD or swipe to steer", t.screenHeight/2+24, color.White, 1)
}

func (t *TitleScreen) centerText(screen render.Image, str string, y int, clr color.Color, scale float64) {
	w, _ := t.renderer.MeasureText(str, scale)
	t.renderer.DrawText(screen, str, (t.screenWidth-w)/2, y, clr, scale)
}

// GameOverScreen shows the run result and offers restart or exit.
type GameOverScreen struct {
	renderer     render.Renderer
	input        render.InputManager
	screenWidth  int
	screenHeight int

	result gamestate.Snapshot
}

// NewGameOverScreen creates the game-over menu.
func NewGameOverScreen(r render.Renderer, in render.InputManager, width, height int) *GameOverScreen {
	return &GameOverScreen{renderer: r, input: in, screenWidth: width, screenHeight: height}
}

// SetResult stores the final snapshot to display.
func (g *GameOverScreen) SetResult(s gamestate.Snapshot) {
	g.result = s
}

// Update polls for a selection. Enter restarts, Escape exits.
func (g *GameOverScreen) Update() Command {
	if g.input.IsKeyJustPressed(render.KeyEnter) || g.input.IsKeyJustPressed(render.KeySpace) {
		return CommandRestart
	}
	if g.input.IsKeyJustPressed(render.KeyEscape) {
		return CommandExit
	}
	if len(g.input.JustPressedTouches()) > 0 {
		return CommandRestart
	}
	return CommandNone
}

// Draw paints the game-over overlay on top of the frozen scene.
func (g *GameOverScreen) Draw(screen render.Image) {
	w, h := screen.Size()
	g.renderer.FillRect(screen, 0, float32(h/4), float32(w), float32(h/2), colorBackdrop)

	g.centerText(screen, "GAME OVER", h/3, colorAccent, 2)
	g.centerText(screen, fmt.Sprintf("Score %d   Coins %d", g.result.Score, g.result.CoinCount), h/2, color.White, 1)
	g.centerText(screen, "Enter to retry, Esc to quit", h/2+24, color.White, 1)
}

func (g *GameOverScreen) centerText(screen render.Image, str string, y int, clr color.Color, scale float64) {
	w, _ := g.renderer.MeasureText(str, scale)
	g.renderer.DrawText(screen, str, (g.screenWidth-w)/2, y, clr, scale)
}

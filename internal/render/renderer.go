// Package render defines the narrow interfaces the game consumes from the
// rendering collaborator. Game logic never imports the graphics engine
// directly, so the backend can be swapped without touching the simulation.
package render

import (
	"errors"
	"image"
	"image/color"
)

// Terminated is returned from Game.Update to end the run loop cleanly.
// Backends translate it into their own shutdown signal.
var Terminated = errors.New("game terminated")

// Renderer is the drawing surface factory and shape/text painter.
type Renderer interface {
	// NewImage creates a new image with the given dimensions.
	NewImage(width, height int) Image

	// FillCircle draws a filled circle on the destination image.
	FillCircle(dst Image, x, y, radius float32, clr color.Color)

	// FillRect draws a filled axis-aligned rectangle on the destination image.
	FillRect(dst Image, x, y, width, height float32, clr color.Color)

	// DrawText draws text on the destination image.
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)

	// MeasureText measures the width and height of text at the given scale.
	MeasureText(text string, scale float64) (width, height int)
}

// Image represents a renderable surface that can be drawn to or drawn from.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)
	SubImage(r image.Rectangle) Image

	Fill(clr color.Color)
	Clear()

	DrawImage(src Image, opts *DrawImageOptions)

	Dispose()
}

// DrawImageOptions contains options for drawing an image.
type DrawImageOptions struct {
	GeoM GeoM
}

// GeoM represents a geometric transformation matrix.
type GeoM interface {
	// Translate shifts the image by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the image by (sx, sy).
	Scale(sx, sy float64)

	// Rotate rotates the image by the given angle in radians.
	Rotate(angle float64)

	// Reset resets the matrix to identity.
	Reset()
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Touch is the position of one active or just-ended touch.
type Touch struct {
	ID int
	X  int
	Y  int
}

// InputManager handles input from the user (keyboard, mouse, touch).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool

	// JustPressedTouches returns touches that began this frame.
	JustPressedTouches() []Touch
	// ActiveTouches returns all touches currently held, with positions.
	ActiveTouches() []Touch
	// JustReleasedTouches returns touches that ended this frame, with
	// their last known positions.
	JustReleasedTouches() []Touch
}

// Key represents a keyboard key.
type Key int

// Key constants for the runner's controls.
const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
	KeyA
	KeyD
	KeyW
	KeyS
	KeySpace
	KeyEnter
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// ResourceLoader handles loading resources like images from disk.
type ResourceLoader interface {
	LoadImage(path string) (Image, error)
}

// Game represents the game interface that the engine will call.
type Game interface {
	// Update updates the game logic. It is called every tick (typically 60
	// times per second). Returning Terminated ends the loop.
	Update() error

	// Draw draws the game screen. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the
	// logical screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game. This is a
	// blocking call that returns nil after a clean Terminated shutdown.
	RunGame(game Game) error
}

// Package hud draws the in-run overlay: score, coin count, and multiplier.
// It consumes only the read-only snapshot, refreshed by the orchestrator on
// coin collection and state changes.
package hud

import (
	"fmt"
	"image/color"

	"chosenoffset.com/streetrun/internal/render"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
)

// Config defines what the HUD shows and where.
type Config struct {
	ShowScore      bool    `json:"show_score"`
	ShowCoins      bool    `json:"show_coins"`
	ShowMultiplier bool    `json:"show_multiplier"`
	Position       string  `json:"position"` // "top-left" or "top-right"
	Opacity        float64 `json:"opacity"`  // panel background opacity (0-1)
}

// DefaultConfig returns a sensible default HUD configuration.
func DefaultConfig() *Config {
	return &Config{
		ShowScore:      true,
		ShowCoins:      true,
		ShowMultiplier: true,
		Position:       "top-left",
		Opacity:        0.6,
	}
}

// HUD manages the overlay.
type HUD struct {
	config       *Config
	renderer     render.Renderer
	screenWidth  int
	screenHeight int

	snapshot gamestate.Snapshot
}

// New creates a HUD with the given configuration.
func New(config *Config, r render.Renderer, screenWidth, screenHeight int) *HUD {
	if config == nil {
		config = DefaultConfig()
	}
	return &HUD{
		config:       config,
		renderer:     r,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}
}

// SetSnapshot stores the latest UI view. Called from the orchestrator's
// snapshot callback, not every frame.
func (h *HUD) SetSnapshot(s gamestate.Snapshot) {
	h.snapshot = s
}

// Lines builds the display rows for the current snapshot.
func (h *HUD) Lines() []string {
	var lines []string
	if h.config.ShowScore {
		lines = append(lines, fmt.Sprintf("Score: %d", h.snapshot.Score))
	}
	if h.config.ShowCoins {
		lines = append(lines, fmt.Sprintf("Coins: %d", h.snapshot.CoinCount))
	}
	if h.config.ShowMultiplier && h.snapshot.Multiplier > 1 {
		lines = append(lines, fmt.Sprintf("x%d", h.snapshot.Multiplier))
	}
	return lines
}

// Draw paints the overlay panel onto the screen.
func (h *HUD) Draw(screen render.Image) {
	lines := h.Lines()
	if len(lines) == 0 {
		return
	}

	const pad = 8
	lineHeight := 16
	panelW := 0
	for _, line := range lines {
		if w, _ := h.renderer.MeasureText(line, 1); w > panelW {
			panelW = w
		}
	}
	panelW += 2 * pad
	panelH := len(lines)*lineHeight + 2*pad

	x := pad
	if h.config.Position == "top-right" {
		x = h.screenWidth - panelW - pad
	}

	alpha := uint8(h.config.Opacity * 255)
	h.renderer.FillRect(screen, float32(x), pad, float32(panelW), float32(panelH), color.RGBA{A: alpha})

	for i, line := range lines {
		h.renderer.DrawText(screen, line, x+pad, pad+pad+i*lineHeight, color.White, 1)
	}
}

// Package game wires the runner core, the menus, the HUD, and the audio
// port into the engine's frame loop. Manager is the render.Game handed to
// Engine.RunGame.
package game

import (
	"math/rand"
	"time"

	"chosenoffset.com/streetrun/internal/assets"
	"chosenoffset.com/streetrun/internal/audio"
	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/input"
	"chosenoffset.com/streetrun/internal/render"
	"chosenoffset.com/streetrun/internal/runner"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
	"chosenoffset.com/streetrun/internal/ui/hud"
	"chosenoffset.com/streetrun/internal/ui/menu"
)

// tickDelta is the fixed simulation step; the engine ticks at 60 Hz.
const tickDelta = 1.0 / 60.0

// Manager handles the overall game state, including menus and gameplay.
type Manager struct {
	ScreenWidth  int
	ScreenHeight int

	Screen   menu.Screen
	Renderer render.Renderer
	InputMgr render.InputManager

	run      *runner.Game
	mapper   *input.Mapper
	gameHUD  *hud.HUD
	title    *menu.TitleScreen
	gameOver *menu.GameOverScreen
	sound    audio.Player
	art      *assets.Store

	closed bool
}

// NewManager builds the full game around the given backend pieces. sound
// may be nil; a silent player is substituted.
func NewManager(r render.Renderer, in render.InputManager, loader render.ResourceLoader, sound audio.Player, cfg *config.Config, width, height int) *Manager {
	if sound == nil {
		sound = audio.NopPlayer{}
	}

	m := &Manager{
		ScreenWidth:  width,
		ScreenHeight: height,
		Screen:       menu.ScreenTitle,
		Renderer:     r,
		InputMgr:     in,
		mapper:       input.NewMapper(in),
		gameHUD:      hud.New(nil, r, width, height),
		title:        menu.NewTitleScreen(r, in, width, height),
		gameOver:     menu.NewGameOverScreen(r, in, width, height),
		sound:        sound,
	}

	if loader != nil {
		m.art = assets.NewStore(loader)
		m.art.LoadAsync("player", "data/player.png")
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	m.run = runner.New(cfg, sound, m.art, rng, m.onSnapshot)
	return m
}

// onSnapshot feeds the HUD and flips to the game-over screen when the run
// ends.
func (m *Manager) onSnapshot(s gamestate.Snapshot) {
	m.gameHUD.SetSnapshot(s)
	if !s.Active && m.Screen == menu.ScreenPlaying {
		m.gameOver.SetResult(s)
		m.Screen = menu.ScreenGameOver
	}
}

// Update advances one frame of whichever screen is active.
func (m *Manager) Update() error {
	switch m.Screen {
	case menu.ScreenTitle:
		switch m.title.Update() {
		case menu.CommandStart:
			m.Screen = menu.ScreenPlaying
			m.run.Start()
		case menu.CommandExit:
			m.Close()
			return render.Terminated
		}

	case menu.ScreenPlaying:
		if m.InputMgr.IsKeyJustPressed(render.KeyEscape) {
			m.run.Reset()
			m.sound.Stop(audio.SoundMusic)
			m.Screen = menu.ScreenTitle
			return nil
		}
		for _, intent := range m.mapper.Poll() {
			m.run.Apply(intent)
		}
		m.run.Tick(tickDelta)

	case menu.ScreenGameOver:
		switch m.gameOver.Update() {
		case menu.CommandRestart:
			m.run.Reset()
			m.Screen = menu.ScreenPlaying
		case menu.CommandExit:
			m.Close()
			return render.Terminated
		}
	}
	return nil
}

// Draw renders the active screen.
func (m *Manager) Draw(screen render.Image) {
	switch m.Screen {
	case menu.ScreenTitle:
		m.title.Draw(screen)
	case menu.ScreenPlaying:
		m.run.Draw(m.Renderer, screen)
		m.gameHUD.Draw(screen)
	case menu.ScreenGameOver:
		m.run.Draw(m.Renderer, screen)
		m.gameHUD.Draw(screen)
		m.gameOver.Draw(screen)
	}
}

// Layout reports the logical screen size.
func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	return m.ScreenWidth, m.ScreenHeight
}

// Close releases the audio backend. Idempotent, and safe even when
// initialization only partially completed.
func (m *Manager) Close() {
	if m.closed {
		return
	}
	m.closed = true
	if m.sound != nil {
		m.sound.Close()
	}
}

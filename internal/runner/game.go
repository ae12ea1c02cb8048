// Package runner is the core of the endless runner: it owns the
// authoritative per-frame tick order, maps input intents onto the player,
// wires collision and collection callbacks into game state, and drives the
// reset protocol that recycles every pool for a new run.
package runner

import (
	"math/rand"

	"chosenoffset.com/streetrun/internal/assets"
	"chosenoffset.com/streetrun/internal/audio"
	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/input"
	"chosenoffset.com/streetrun/internal/runner/anim"
	"chosenoffset.com/streetrun/internal/runner/coin"
	"chosenoffset.com/streetrun/internal/runner/environment"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
	"chosenoffset.com/streetrun/internal/runner/obstacle"
	"chosenoffset.com/streetrun/internal/runner/player"
	"chosenoffset.com/streetrun/internal/runner/pool"
)

// SnapshotFunc receives the read-only UI snapshot. Called once per coin
// collection and once per state change.
type SnapshotFunc func(gamestate.Snapshot)

// Game is the orchestrator. All pools and the game state are owned here;
// nothing in the simulation is package-global, so independent Games never
// share state and reset cannot leak between runs.
type Game struct {
	cfg   *config.Config
	State *gamestate.State

	seq       *anim.Sequencer
	Player    *player.Player
	obstacles *obstacle.Manager
	coins     *coin.Manager
	env       *environment.Scroller

	sound      audio.Player
	art        *assets.Store
	onSnapshot SnapshotFunc
}

// New builds a game from the tuning config. sound must not be nil (use
// audio.NopPlayer{} to run silent); art may be nil when no assets are used;
// onSnapshot may be nil.
func New(cfg *config.Config, sound audio.Player, art *assets.Store, rng *rand.Rand, onSnapshot SnapshotFunc) *Game {
	g := &Game{
		cfg:        cfg,
		State:      gamestate.New(cfg),
		seq:        anim.NewSequencer(player.AnimRun, nil),
		sound:      sound,
		art:        art,
		onSnapshot: onSnapshot,
	}
	g.Player = player.New(g.seq)
	g.obstacles = obstacle.NewManager(cfg.MaxBarriers, rng)
	g.coins = coin.NewManager(cfg.MaxCoins, rng)
	g.env = environment.NewScroller(rng)
	return g
}

// Start begins the music bed and pushes the initial snapshot.
func (g *Game) Start() {
	g.sound.PlayLoop(audio.SoundMusic)
	g.pushSnapshot()
}

// Ready reports whether asset loading has settled. The tick is gated on
// this so late-bound art can never be half-initialized mid-frame; failed
// assets count as settled and simply never draw.
func (g *Game) Ready() bool {
	return g.art == nil || g.art.Settled()
}

// Tick advances one frame. The order is fixed: player kinematics first, so
// every collision test in the same frame sees the player's latest position,
// then environment, obstacles, coins, animation timers, and scoring.
func (g *Game) Tick(delta float64) {
	if !g.State.Active || !g.Ready() {
		return
	}

	g.State.RampSpeed()
	g.Player.Update(g.State, delta)
	g.env.Tick(g.State)
	g.obstacles.Tick(g.Player, g.State, g.onCollision)
	g.coins.Tick(g.Player, g.State, delta, g.onCollect)
	g.seq.Update(delta)

	g.State.Score += g.State.Speed * float64(g.State.Multiplier)
}

// Apply maps one input intent onto the simulation. Intents arriving after
// the run ended are dropped.
func (g *Game) Apply(intent input.Intent) {
	if !g.State.Active {
		return
	}
	switch intent {
	case input.IntentLaneLeft:
		g.State.ShiftLane(-1)
	case input.IntentLaneRight:
		g.State.ShiftLane(1)
	case input.IntentJump:
		if g.Player.Jump() {
			g.sound.PlayOneShot(audio.SoundJump)
		}
	case input.IntentSlide:
		g.Player.Slide()
	}
}

// onCollision ends the run. Several barriers can fire this in one tick, so
// the Active latch makes it idempotent.
func (g *Game) onCollision() {
	if !g.State.Active {
		return
	}
	g.State.Active = false
	g.sound.Stop(audio.SoundMusic)
	g.sound.PlayOneShot(audio.SoundCrash)
	g.pushSnapshot()
}

// onCollect books one coin. The coin manager already recycled the coin.
func (g *Game) onCollect() {
	g.State.CoinCount++
	g.sound.PlayOneShot(audio.SoundCoin)
	g.pushSnapshot()
}

// Reset synchronously restores every pool, the cursors, the state record,
// and the animation queue, then re-enters the active state. Safe to call
// mid-animation: the sequencer drop happens in the same call, so no stale
// completion can touch the new run.
func (g *Game) Reset() {
	g.State.Reset(g.cfg)
	g.Player.Reset()
	g.obstacles.Reset()
	g.coins.Reset()
	g.env.Reset()
	g.sound.Stop(audio.SoundMusic)
	g.sound.PlayLoop(audio.SoundMusic)
	g.pushSnapshot()
}

func (g *Game) pushSnapshot() {
	if g.onSnapshot != nil {
		g.onSnapshot(g.State.Snapshot())
	}
}

// Snapshot returns the current UI view directly.
func (g *Game) Snapshot() gamestate.Snapshot {
	return g.State.Snapshot()
}

// Barriers exposes the obstacle pool, for rendering and for scenario tests.
func (g *Game) Barriers() []pool.Entity {
	return g.obstacles.Barriers()
}

// Coins exposes the coin pool.
func (g *Game) Coins() []pool.Entity {
	return g.coins.Coins()
}

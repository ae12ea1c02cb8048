// Package player owns the runner's kinematic state: lane-interpolated
// lateral position, the jump arc, and the slide timer. Animation names are
// resolved through the sequencer so transient clips play out in order.
package player

import (
	"time"

	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/geom"
	"chosenoffset.com/streetrun/internal/runner/anim"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
)

// Animation clip names. AnimRun is the idle clip the sequencer reverts to.
const (
	AnimRun  = "run"
	AnimJump = "jump"
	AnimRoll = "roll"
)

// Hitbox extents. The player box is symmetric: width 1, height 1.5,
// depth 1, anchored at the feet. Sliding does not shrink it.
var (
	hitboxMin = geom.Vector3{X: -0.5, Y: 0, Z: -0.5}
	hitboxMax = geom.Vector3{X: 0.5, Y: 1.5, Z: 0.5}
)

// Player is the runner's kinematic state.
type Player struct {
	Pos       geom.Vector3
	VelocityY float64
	IsJumping bool
	IsSliding bool

	seq *anim.Sequencer
}

// New creates a player at the track origin using seq for clip sequencing.
func New(seq *anim.Sequencer) *Player {
	return &Player{seq: seq}
}

// Update advances lane smoothing and the jump arc by delta seconds. Lane
// convergence is exponential: each tick closes a fixed fraction of the
// remaining distance to the target lane, so it never overshoots.
func (p *Player) Update(gs *gamestate.State, delta float64) {
	p.Pos.X += (gs.TargetX() - p.Pos.X) * config.LaneSmoothing

	if p.IsJumping {
		p.VelocityY += gs.Gravity * delta
		p.Pos.Y += p.VelocityY * delta
		if p.Pos.Y <= 0 {
			p.Pos.Y = 0
			p.VelocityY = 0
			p.IsJumping = false
		}
	}

	gs.IsSliding = p.IsSliding
}

// Jump starts the jump arc and enqueues the jump clip. Ignored while
// already jumping or sliding; returns whether the jump started.
func (p *Player) Jump() bool {
	if p.IsJumping || p.IsSliding {
		return false
	}
	p.IsJumping = true
	p.VelocityY = config.JumpVelocity
	p.seq.Enqueue(AnimJump, config.JumpAnimMillis*time.Millisecond, nil)
	return true
}

// Slide starts the timed slide state. It is purely an animation state: the
// hitbox stays full height, so sliding does not duck under obstacles.
// Ignored while jumping or sliding; returns whether the slide started.
func (p *Player) Slide() bool {
	if p.IsJumping || p.IsSliding {
		return false
	}
	p.IsSliding = true
	p.seq.Enqueue(AnimRoll, config.RollAnimMillis*time.Millisecond, func() {
		p.IsSliding = false
	})
	return true
}

// Bounds returns the player's collision box at its current position.
func (p *Player) Bounds() geom.Box {
	return geom.NewBox(p.Pos, hitboxMin, hitboxMax)
}

// AnimationName resolves the clip the renderer should be showing.
func (p *Player) AnimationName() string {
	return p.seq.Current()
}

// Reset snaps the player back to the start of a run. The sequencer is
// cleared in the same call so no stale clip completion can fire afterward.
func (p *Player) Reset() {
	p.Pos = geom.Vector3{}
	p.VelocityY = 0
	p.IsJumping = false
	p.IsSliding = false
	p.seq.Reset()
}

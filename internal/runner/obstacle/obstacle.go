// Package obstacle manages the pooled street barriers: lane assignment,
// spacing-cursor placement, and collision tests against the player.
package obstacle

import (
	"log"
	"math/rand"

	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/geom"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
	"chosenoffset.com/streetrun/internal/runner/player"
	"chosenoffset.com/streetrun/internal/runner/pool"
)

// Barrier hitbox offsets. Asymmetric on purpose: the box extends further
// behind the barrier's anchor than ahead of it.
var (
	hitboxMin = geom.Vector3{X: -1, Y: 0, Z: -1}
	hitboxMax = geom.Vector3{X: 0.5, Y: 0.5, Z: 0.7}
)

// Manager owns the barrier pool and the shared spacing cursor.
type Manager struct {
	pool   *pool.Pool
	cursor *pool.Cursor
	rng    *rand.Rand

	warned bool
}

// NewManager creates count barriers, each in a uniformly random lane, with
// Z positions stepping back by the minimum spacing from the first slot.
func NewManager(count int, rng *rand.Rand) *Manager {
	m := &Manager{
		cursor: pool.NewCursor(config.FirstBarrierZ, config.MinBarrierSpacing),
		rng:    rng,
	}
	m.pool = pool.New(count, config.NearRecycleZ, m.spawn, m.recycle)
	return m
}

func (m *Manager) spawn(i int) pool.Entity {
	lane := m.randomLane()
	return pool.Entity{
		Pos:  geom.Vector3{X: laneX(lane), Z: m.cursor.Place()},
		Slot: lane,
	}
}

// recycle reassigns a random lane and places the barrier at the cursor,
// preserving the spacing invariant across the whole life of the run.
func (m *Manager) recycle(e *pool.Entity) {
	lane := m.randomLane()
	e.Slot = lane
	e.Pos.X = laneX(lane)
	e.Pos.Z = m.cursor.Place()
}

func (m *Manager) randomLane() int {
	return m.rng.Intn(config.LaneCount) - 1
}

func laneX(lane int) float64 {
	return float64(lane) * config.LaneDistance
}

// Tick shifts every barrier forward by twice the run speed, recycles the
// ones past the near threshold, and tests each against the player's box.
// onCollision fires once per intersecting barrier per tick; it is the
// orchestrator's callback that ends the run, so it must be idempotent.
func (m *Manager) Tick(p *player.Player, gs *gamestate.State, onCollision func()) {
	if p == nil {
		if !m.warned {
			log.Printf("obstacle: update called before player exists, skipping")
			m.warned = true
		}
		return
	}

	m.pool.Advance(gs.Speed * 2)

	playerBox := p.Bounds()
	for i := range m.pool.Entities {
		b := geom.NewBox(m.pool.Entities[i].Pos, hitboxMin, hitboxMax)
		if playerBox.Intersects(b) {
			onCollision()
		}
	}
}

// Barriers exposes the pooled entities for rendering.
func (m *Manager) Barriers() []pool.Entity {
	return m.pool.Entities
}

// Reset rewinds the spacing cursor and re-seeds every barrier for a new run.
func (m *Manager) Reset() {
	m.cursor.Reset()
	m.pool.Reset(m.spawn)
}

// Package coin manages the pooled collectibles. Coins share the barrier
// pool's recycling shape but respawn at independent random positions: there
// is no spacing invariant for coins, only the fixed pool size. A collected
// coin is never removed; it teleports to a fresh spot in the same tick.
package coin

import (
	"log"
	"math/rand"

	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/geom"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
	"chosenoffset.com/streetrun/internal/runner/player"
	"chosenoffset.com/streetrun/internal/runner/pool"
)

// Coin hitbox offsets, hovering slightly above the road.
var (
	hitboxMin = geom.Vector3{X: -0.5, Y: 0, Z: -0.5}
	hitboxMax = geom.Vector3{X: 0.5, Y: 1, Z: 0.5}
)

// Manager owns the coin pool.
type Manager struct {
	pool *pool.Pool
	rng  *rand.Rand

	warned bool
}

// NewManager creates count coins scattered at random far positions.
func NewManager(count int, rng *rand.Rand) *Manager {
	m := &Manager{rng: rng}
	m.pool = pool.New(count, config.NearRecycleZ, m.spawn, m.respawn)
	return m
}

func (m *Manager) spawn(i int) pool.Entity {
	e := pool.Entity{}
	m.respawn(&e)
	return e
}

// respawn teleports a coin to a random lane at a random Z in the respawn
// band. Spin phase is left alone so the looping spin never stutters.
func (m *Manager) respawn(e *pool.Entity) {
	lane := m.rng.Intn(config.LaneCount) - 1
	e.Slot = lane
	e.Pos.X = float64(lane) * config.LaneDistance
	e.Pos.Y = 0.5
	e.Pos.Z = config.CoinRespawnMinZ + m.rng.Float64()*(config.CoinRespawnMaxZ-config.CoinRespawnMinZ)
}

// Tick shifts coins forward, advances their spin, recycles the ones behind
// the viewer, and collects any coin overlapping the player. Collection
// fires onCollect and immediately respawns the coin, so a single pass can
// only count once.
func (m *Manager) Tick(p *player.Player, gs *gamestate.State, delta float64, onCollect func()) {
	if p == nil {
		if !m.warned {
			log.Printf("coin: update called before player exists, skipping")
			m.warned = true
		}
		return
	}

	m.pool.Advance(gs.Speed * 2)

	playerBox := p.Bounds()
	for i := range m.pool.Entities {
		c := &m.pool.Entities[i]
		c.Phase += config.CoinSpinRate * delta

		box := geom.NewBox(c.Pos, hitboxMin, hitboxMax)
		if playerBox.Intersects(box) {
			onCollect()
			m.respawn(c)
		}
	}
}

// Coins exposes the pooled entities for rendering.
func (m *Manager) Coins() []pool.Entity {
	return m.pool.Entities
}

// Reset re-scatters every coin for a new run.
func (m *Manager) Reset() {
	m.pool.Reset(m.spawn)
}

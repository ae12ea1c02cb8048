// Package environment scrolls the three background layers: road segments,
// side buildings, and clouds. All three share the forward-recycle pattern
// but run at different speed factors for parallax, and each recycles on its
// own rule rather than through the obstacle spacing cursor.
package environment

import (
	"math/rand"

	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/geom"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
	"chosenoffset.com/streetrun/internal/runner/pool"
)

// Building slots: Slot 0 is the left side of the street, 1 the right.
const (
	SideLeft  = 0
	SideRight = 1
)

// Scroller owns the three environment pools.
type Scroller struct {
	road      *pool.Pool
	buildings *pool.Pool
	clouds    *pool.Pool
	rng       *rand.Rand
}

// NewScroller lays out the street and sky around the track origin.
func NewScroller(rng *rand.Rand) *Scroller {
	s := &Scroller{rng: rng}

	s.road = pool.New(config.RoadSegmentCount, config.FarRecycleZ, roadSpawn, roadRecycle)
	s.buildings = pool.New(config.BuildingCount*2, config.FarRecycleZ, buildingSpawn, buildingRecycle)
	s.clouds = pool.New(config.CloudCount, config.FarRecycleZ, s.cloudSpawn, s.cloudRecycle)
	return s
}

func roadSpawn(i int) pool.Entity {
	return pool.Entity{Pos: geom.Vector3{Z: -float64(i) * config.RoadSegmentSpacing}}
}

// roadRecycle rewinds a segment by the full track span, keeping the ring of
// segments contiguous.
func roadRecycle(e *pool.Entity) {
	e.Pos.Z -= config.RoadSegmentSpacing * config.RoadSegmentCount
}

func buildingSpawn(i int) pool.Entity {
	side := i % 2
	x := -config.BuildingOffsetX
	if side == SideRight {
		x = config.BuildingOffsetX
	}
	return pool.Entity{
		Pos:  geom.Vector3{X: x, Z: -float64(i/2) * config.BuildingSpacing},
		Slot: side,
	}
}

// buildingRecycle rewinds one building independently by its side's span;
// buildings are not tied to a shared cursor.
func buildingRecycle(e *pool.Entity) {
	e.Pos.Z -= config.BuildingSpacing * config.BuildingCount
}

func (s *Scroller) cloudSpawn(i int) pool.Entity {
	return pool.Entity{
		Pos: geom.Vector3{
			X: (s.rng.Float64() - 0.5) * config.CloudSpreadX,
			Y: config.CloudHeightY,
			Z: -float64(i) * config.CloudSpacing,
		},
	}
}

// cloudRecycle rewinds the cloud and re-rolls its lateral position for
// visual variety.
func (s *Scroller) cloudRecycle(e *pool.Entity) {
	e.Pos.X = (s.rng.Float64() - 0.5) * config.CloudSpreadX
	e.Pos.Z -= config.CloudSpacing * config.CloudCount
}

// Tick scrolls all three layers by their speed factors. Road and buildings
// move with the track; clouds drift at a quarter speed in the background.
func (s *Scroller) Tick(gs *gamestate.State) {
	s.road.Advance(gs.Speed * 2)
	s.buildings.Advance(gs.Speed * 2)
	s.clouds.Advance(gs.Speed / config.CloudSpeedDivisor)
}

// Road exposes the road segments for rendering.
func (s *Scroller) Road() []pool.Entity { return s.road.Entities }

// Buildings exposes the side buildings for rendering.
func (s *Scroller) Buildings() []pool.Entity { return s.buildings.Entities }

// Clouds exposes the cloud layer for rendering.
func (s *Scroller) Clouds() []pool.Entity { return s.clouds.Entities }

// Reset restores the initial layout for a new run.
func (s *Scroller) Reset() {
	s.road.Reset(roadSpawn)
	s.buildings.Reset(buildingSpawn)
	s.clouds.Reset(s.cloudSpawn)
}

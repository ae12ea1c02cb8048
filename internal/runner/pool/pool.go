// Package pool implements the position-recycling primitive shared by every
// entity set on the track: barriers, coins, road segments, buildings, clouds.
//
// A pool holds a fixed number of entities created once at initialization.
// Each tick the pool shifts every entity forward; entities that cross the
// pool's recycle threshold are repositioned in place rather than destroyed,
// so the "infinite" track is really a ring buffer indexed by world position.
package pool

import "chosenoffset.com/streetrun/internal/geom"

// Entity is the positional state of one pooled object. Slot carries the
// client's lane index or layer slot; Phase carries visual sub-state (spin
// angle, bob offset) that survives recycling untouched.
type Entity struct {
	Pos   geom.Vector3
	Slot  int
	Phase float64
}

// SpawnFunc positions the i-th entity at pool initialization or reset.
type SpawnFunc func(i int) Entity

// RecycleFunc repositions an entity that crossed the recycle threshold.
// It must rewrite Pos (at least Z); it may reassign Slot.
type RecycleFunc func(e *Entity)

// Pool is a fixed-size set of entities recycled by position.
type Pool struct {
	Entities  []Entity
	threshold float64
	recycle   RecycleFunc
}

// New creates a pool of count entities placed by spawn. Entities whose Z
// exceeds threshold during Advance are handed to recycle.
func New(count int, threshold float64, spawn SpawnFunc, recycle RecycleFunc) *Pool {
	p := &Pool{
		Entities:  make([]Entity, count),
		threshold: threshold,
		recycle:   recycle,
	}
	for i := range p.Entities {
		p.Entities[i] = spawn(i)
	}
	return p
}

// Advance shifts every entity forward by dz and recycles any entity that
// ends up past the threshold. Position-only: no allocation happens here.
func (p *Pool) Advance(dz float64) {
	for i := range p.Entities {
		e := &p.Entities[i]
		e.Pos.Z += dz
		if e.Pos.Z > p.threshold {
			p.recycle(e)
		}
	}
}

// Reset re-seeds every entity from spawn, discarding current positions.
// Used by the restart protocol; the backing array is reused.
func (p *Pool) Reset(spawn SpawnFunc) {
	for i := range p.Entities {
		p.Entities[i] = spawn(i)
	}
}

// Len returns the fixed entity count.
func (p *Pool) Len() int {
	return len(p.Entities)
}

// Cursor is the shared spawn bookkeeping for pools that enforce a minimum
// spacing between consecutive placements. Successive Place calls return
// Z values that decrease by exactly the spacing, so no two placements can
// share a Z slot by construction.
type Cursor struct {
	next    float64
	first   float64
	spacing float64
}

// NewCursor creates a cursor whose first Place returns first and whose
// subsequent placements step back by spacing.
func NewCursor(first, spacing float64) *Cursor {
	return &Cursor{next: first, first: first, spacing: spacing}
}

// Place returns the next spawn Z and advances the cursor.
func (c *Cursor) Place() float64 {
	z := c.next
	c.next -= c.spacing
	return z
}

// Reset rewinds the cursor to its initial position.
func (c *Cursor) Reset() {
	c.next = c.first
}

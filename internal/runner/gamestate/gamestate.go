// Package gamestate holds the single authoritative record of a run. It is
// owned by the orchestrator and passed by reference into every subsystem's
// update call; subsystems read it, and only the orchestrator's callbacks
// commit writes back.
package gamestate

import "chosenoffset.com/streetrun/internal/config"

// State is the mutable per-run record.
type State struct {
	Speed        float64
	MaxSpeed     float64
	Gravity      float64
	Score        float64
	CoinCount    int
	Multiplier   int
	CurrentLane  int // always within [-1, 1]
	LaneDistance float64
	Active       bool
	IsSliding    bool
}

// New creates a run state from the tuning config, ready to play.
func New(cfg *config.Config) *State {
	s := &State{}
	s.init(cfg)
	return s
}

func (s *State) init(cfg *config.Config) {
	s.Speed = cfg.BaseSpeed
	s.MaxSpeed = cfg.MaxSpeed
	s.Gravity = config.Gravity
	s.Score = 0
	s.CoinCount = 0
	s.Multiplier = config.BaseMultiplier
	s.CurrentLane = 0
	s.LaneDistance = config.LaneDistance
	s.Active = true
	s.IsSliding = false
}

// Reset restores the state for a fresh run. This is the only way out of
// Active=false.
func (s *State) Reset(cfg *config.Config) {
	s.init(cfg)
}

// ShiftLane moves the current lane by dir (-1 left, +1 right), clamped to
// the three-lane range.
func (s *State) ShiftLane(dir int) {
	s.CurrentLane += dir
	if s.CurrentLane < -1 {
		s.CurrentLane = -1
	}
	if s.CurrentLane > 1 {
		s.CurrentLane = 1
	}
}

// TargetX returns the lateral position the player is converging toward.
func (s *State) TargetX() float64 {
	return float64(s.CurrentLane) * s.LaneDistance
}

// RampSpeed eases speed toward MaxSpeed. Called once per tick while active.
func (s *State) RampSpeed() {
	if s.Speed < s.MaxSpeed {
		s.Speed += config.SpeedRamp
		if s.Speed > s.MaxSpeed {
			s.Speed = s.MaxSpeed
		}
	}
}

// Snapshot is the read-only view handed to the UI. Refreshed once per coin
// collection and once per state change.
type Snapshot struct {
	Score      int
	CoinCount  int
	Multiplier int
	Active     bool
}

// Snapshot captures the current UI-visible values.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Score:      int(s.Score),
		CoinCount:  s.CoinCount,
		Multiplier: s.Multiplier,
		Active:     s.Active,
	}
}

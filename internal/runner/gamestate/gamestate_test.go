package gamestate

import (
	"testing"

	"chosenoffset.com/streetrun/internal/config"
)

func TestShiftLaneClamps(t *testing.T) {
	s := New(config.Default())

	tests := []struct {
		name  string
		moves []int
		want  int
	}{
		{"left from center", []int{-1}, -1},
		{"left twice clamps", []int{-1, -1}, -1},
		{"right twice clamps", []int{1, 1}, 1},
		{"far left then right", []int{-1, -1, -1, 1}, 0},
		{"alternating", []int{1, -1, 1, -1}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Reset(config.Default())
			for _, d := range tt.moves {
				s.ShiftLane(d)
				if s.CurrentLane < -1 || s.CurrentLane > 1 {
					t.Fatalf("Lane %d escaped [-1,1]", s.CurrentLane)
				}
			}
			if s.CurrentLane != tt.want {
				t.Errorf("Expected lane %d, got %d", tt.want, s.CurrentLane)
			}
		})
	}
}

func TestTargetX(t *testing.T) {
	s := New(config.Default())
	s.ShiftLane(1)
	if s.TargetX() != config.LaneDistance {
		t.Errorf("Expected targetX %v, got %v", config.LaneDistance, s.TargetX())
	}
	s.ShiftLane(-1)
	s.ShiftLane(-1)
	if s.TargetX() != -config.LaneDistance {
		t.Errorf("Expected targetX %v, got %v", -config.LaneDistance, s.TargetX())
	}
}

func TestRampSpeedCapsAtMax(t *testing.T) {
	cfg := config.Default()
	s := New(cfg)
	for i := 0; i < 20_000_000; i++ {
		s.RampSpeed()
		if s.Speed == cfg.MaxSpeed {
			break
		}
	}
	if s.Speed != cfg.MaxSpeed {
		t.Fatalf("Expected speed to reach max %v, got %v", cfg.MaxSpeed, s.Speed)
	}
	s.RampSpeed()
	if s.Speed > cfg.MaxSpeed {
		t.Errorf("Expected speed capped at %v, got %v", cfg.MaxSpeed, s.Speed)
	}
}

func TestResetRestoresFreshRun(t *testing.T) {
	cfg := config.Default()
	s := New(cfg)
	s.Active = false
	s.Score = 1234
	s.CoinCount = 9
	s.ShiftLane(1)
	s.Speed = cfg.MaxSpeed

	s.Reset(cfg)

	if !s.Active {
		t.Error("Expected Active after reset")
	}
	if s.Score != 0 || s.CoinCount != 0 {
		t.Errorf("Expected zeroed score/coins, got %v/%d", s.Score, s.CoinCount)
	}
	if s.CurrentLane != 0 {
		t.Errorf("Expected center lane, got %d", s.CurrentLane)
	}
	if s.Speed != cfg.BaseSpeed {
		t.Errorf("Expected base speed %v, got %v", cfg.BaseSpeed, s.Speed)
	}
}

func TestSnapshotTruncatesScore(t *testing.T) {
	s := New(config.Default())
	s.Score = 41.9
	s.CoinCount = 3
	snap := s.Snapshot()
	if snap.Score != 41 {
		t.Errorf("Expected snapshot score 41, got %d", snap.Score)
	}
	if snap.CoinCount != 3 {
		t.Errorf("Expected snapshot coins 3, got %d", snap.CoinCount)
	}
	if !snap.Active {
		t.Error("Expected snapshot active")
	}
}

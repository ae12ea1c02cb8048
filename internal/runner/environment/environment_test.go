package environment

import (
	"math/rand"
	"testing"

	"chosenoffset.com/streetrun/internal/config"
	"chosenoffset.com/streetrun/internal/runner/gamestate"
)

func newFixture(seed int64) (*Scroller, *gamestate.State) {
	return NewScroller(rand.New(rand.NewSource(seed))), gamestate.New(config.Default())
}

func TestParallaxSpeedFactors(t *testing.T) {
	s, gs := newFixture(1)

	roadBefore := s.Road()[0].Pos.Z
	cloudBefore := s.Clouds()[0].Pos.Z
	buildingBefore := s.Buildings()[0].Pos.Z

	s.Tick(gs)

	if got := s.Road()[0].Pos.Z - roadBefore; got != gs.Speed*2 {
		t.Errorf("Expected road advance %v, got %v", gs.Speed*2, got)
	}
	if got := s.Buildings()[0].Pos.Z - buildingBefore; got != gs.Speed*2 {
		t.Errorf("Expected building advance %v, got %v", gs.Speed*2, got)
	}
	if got := s.Clouds()[0].Pos.Z - cloudBefore; got != gs.Speed/config.CloudSpeedDivisor {
		t.Errorf("Expected cloud advance %v, got %v", gs.Speed/config.CloudSpeedDivisor, got)
	}
}

func TestRoadRingStaysContiguous(t *testing.T) {
	s, gs := newFixture(2)
	span := config.RoadSegmentSpacing * config.RoadSegmentCount

	for i := 0; i < 20000; i++ {
		s.Tick(gs)
	}

	// After any number of recycles the segments still tile one full span:
	// sorted Z positions remain spaced by exactly one segment length.
	zs := make(map[float64]bool)
	var min, max float64
	for i, seg := range s.Road() {
		if seg.Pos.Z > config.FarRecycleZ {
			t.Errorf("Segment %d left behind at Z %v", i, seg.Pos.Z)
		}
		if i == 0 || seg.Pos.Z < min {
			min = seg.Pos.Z
		}
		if i == 0 || seg.Pos.Z > max {
			max = seg.Pos.Z
		}
		zs[seg.Pos.Z] = true
	}
	if len(zs) != config.RoadSegmentCount {
		t.Errorf("Expected %d distinct segment positions, got %d", config.RoadSegmentCount, len(zs))
	}
	if got := max - min; got != span-config.RoadSegmentSpacing {
		t.Errorf("Expected segment spread %v, got %v", span-config.RoadSegmentSpacing, got)
	}
}

func TestBuildingsRecycleIndependently(t *testing.T) {
	s, gs := newFixture(3)

	// Push one building past the threshold by hand; only it should rewind.
	bs := s.Buildings()
	others := make([]float64, len(bs))
	for i := range bs {
		others[i] = bs[i].Pos.Z
	}
	bs[0].Pos.Z = config.FarRecycleZ

	s.Tick(gs)

	want := config.FarRecycleZ + gs.Speed*2 - config.BuildingSpacing*config.BuildingCount
	if bs[0].Pos.Z != want {
		t.Errorf("Expected building 0 rewound to %v, got %v", want, bs[0].Pos.Z)
	}
	for i := 1; i < len(bs); i++ {
		if bs[i].Pos.Z != others[i]+gs.Speed*2 {
			t.Errorf("Building %d: expected plain advance, got %v", i, bs[i].Pos.Z)
		}
	}
}

func TestBuildingsKeepTheirSide(t *testing.T) {
	s, gs := newFixture(4)
	for i := 0; i < 20000; i++ {
		s.Tick(gs)
	}
	for i, b := range s.Buildings() {
		switch b.Slot {
		case SideLeft:
			if b.Pos.X != -config.BuildingOffsetX {
				t.Errorf("Building %d drifted off the left side: X %v", i, b.Pos.X)
			}
		case SideRight:
			if b.Pos.X != config.BuildingOffsetX {
				t.Errorf("Building %d drifted off the right side: X %v", i, b.Pos.X)
			}
		default:
			t.Errorf("Building %d has unknown side %d", i, b.Slot)
		}
	}
}

func TestCloudRecycleRandomizesLateralPosition(t *testing.T) {
	s, gs := newFixture(5)

	c := &s.Clouds()[0]
	c.Pos.X = 999 // sentinel outside the spread range
	c.Pos.Z = config.FarRecycleZ

	s.Tick(gs)

	if c.Pos.X == 999 {
		t.Error("Expected cloud X re-rolled on recycle")
	}
	if c.Pos.X < -config.CloudSpreadX/2 || c.Pos.X > config.CloudSpreadX/2 {
		t.Errorf("Expected cloud X within spread, got %v", c.Pos.X)
	}
}

func TestResetRestoresLayout(t *testing.T) {
	s, gs := newFixture(6)
	for i := 0; i < 5000; i++ {
		s.Tick(gs)
	}

	s.Reset()

	for i, seg := range s.Road() {
		if want := -float64(i) * config.RoadSegmentSpacing; seg.Pos.Z != want {
			t.Errorf("Segment %d: expected Z %v after reset, got %v", i, want, seg.Pos.Z)
		}
	}
}

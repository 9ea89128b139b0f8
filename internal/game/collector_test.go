package game

import (
	"testing"
	"time"

	"github.com/verte-zerg/tuiarcade/internal/scoring"
)

func startCollector(t *testing.T, rnd Random) (*Controller, *collectorEngine) {
	t.Helper()
	c := NewController(testRules(), rnd)
	if !c.SelectMode(ModeCollector) {
		t.Fatalf("expected collector to start")
	}
	return c, c.engine.(*collectorEngine)
}

func TestCatchAwardsKindValue(t *testing.T) {
	cases := []struct {
		kind scoring.Kind
		want int
	}{
		{scoring.Standard, 20},
		{scoring.Bonus, 50},
	}
	for _, tc := range cases {
		c, eng := startCollector(t, &fixedRandom{})
		eng.items = []FallingItem{{
			ID:       1,
			Position: Point{X: 210, Y: CatchTop - fallStep + 1},
			Velocity: Point{Y: fallStep},
			Kind:     tc.kind,
		}}
		c.Tick(physicsInterval)
		s := c.Snapshot()
		if s.Score != tc.want {
			t.Fatalf("%s: expected %d, got %d", tc.kind, tc.want, s.Score)
		}
		if s.Combo != 1 || s.Collector.Caught != 1 || len(s.Collector.Items) != 0 {
			t.Fatalf("%s: unexpected collector state: %+v", tc.kind, s.Collector)
		}
	}
}

func TestUncaughtItemNeverScores(t *testing.T) {
	c, eng := startCollector(t, &fixedRandom{})
	eng.items = []FallingItem{
		{ID: 1, Position: Point{X: 50, Y: FieldHeight - 2}, Velocity: Point{Y: fallStep}, Kind: scoring.Bonus},
		{ID: 2, Position: Point{X: 300, Y: CatchTop}, Velocity: Point{Y: fallStep}, Kind: scoring.Standard},
	}
	c.Tick(physicsInterval)
	s := c.Snapshot()
	if s.Score != 0 || s.Combo != 0 {
		t.Fatalf("expected no score, got %d combo %d", s.Score, s.Combo)
	}
	if s.Collector.Missed != 1 {
		t.Fatalf("expected 1 miss, got %d", s.Collector.Missed)
	}
	if len(s.Collector.Items) != 1 || s.Collector.Items[0].ID != 2 {
		t.Fatalf("expected the out-of-range item to keep falling: %+v", s.Collector.Items)
	}
	for i := 0; i < 20; i++ {
		c.Tick(physicsInterval)
	}
	s = c.Snapshot()
	if s.Score != 0 {
		t.Fatalf("expected misses to leave score at 0, got %d", s.Score)
	}
}

func TestMissKeepsCombo(t *testing.T) {
	c, eng := startCollector(t, &fixedRandom{})
	eng.items = []FallingItem{
		{ID: 1, Position: Point{X: 200, Y: CatchTop}, Velocity: Point{Y: fallStep}},
		{ID: 2, Position: Point{X: 40, Y: FieldHeight}, Velocity: Point{Y: fallStep}},
	}
	c.Tick(physicsInterval)
	s := c.Snapshot()
	if s.Combo != 1 || s.Collector.Missed != 1 {
		t.Fatalf("expected combo 1 and one miss, got %d and %d", s.Combo, s.Collector.Missed)
	}
}

func TestSpawnRespectsCap(t *testing.T) {
	_, eng := startCollector(t, &fixedRandom{floats: []float64{0.5, 0.9}})
	for i := 0; i < 10; i++ {
		eng.spawn()
	}
	if len(eng.items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(eng.items))
	}
	first := eng.items[0]
	if first.Position.Y != 0 {
		t.Fatalf("expected spawn at the top, got y=%v", first.Position.Y)
	}
	if first.Position.X != 200 {
		t.Fatalf("unexpected spawn x %v", first.Position.X)
	}
	if first.Kind != scoring.Standard {
		t.Fatalf("expected standard kind for roll 0.9, got %s", first.Kind)
	}
}

func TestSpawnKindSplit(t *testing.T) {
	_, eng := startCollector(t, &fixedRandom{floats: []float64{0.5, 0.29}})
	eng.spawn()
	if eng.items[0].Kind != scoring.Bonus {
		t.Fatalf("expected bonus for roll 0.29, got %s", eng.items[0].Kind)
	}
}

func TestItemCountBoundedOverSession(t *testing.T) {
	rnd := &fixedRandom{floats: []float64{0.05, 0.2, 0.95, 0.7, 0.4, 0.1}}
	c, _ := startCollector(t, rnd)
	for c.Status() == StatusRunning {
		c.Tick(16 * time.Millisecond)
		if n := len(c.Snapshot().Collector.Items); n > 5 {
			t.Fatalf("item count %d exceeds cap", n)
		}
	}
}

func TestPlayerMovementClamped(t *testing.T) {
	c, eng := startCollector(t, &fixedRandom{})
	for i := 0; i < 20; i++ {
		c.HandleInput(Left())
	}
	if eng.playerX != PlayerMinX {
		t.Fatalf("expected clamp at %v, got %v", PlayerMinX, eng.playerX)
	}
	if c.HandleInput(Left()) {
		t.Fatalf("expected move past the edge to be rejected")
	}
	for i := 0; i < 40; i++ {
		c.HandleInput(Right())
	}
	if eng.playerX != PlayerMaxX {
		t.Fatalf("expected clamp at %v, got %v", PlayerMaxX, eng.playerX)
	}
	if c.HandleInput(Throw()) {
		t.Fatalf("expected throw to be ignored in collector mode")
	}
}

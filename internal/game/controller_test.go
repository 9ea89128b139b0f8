package game

import (
	"testing"
	"time"
)

type fixedRandom struct {
	ints   []int
	floats []float64
	i, f   int
}

func (r *fixedRandom) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.i%len(r.ints)]
	r.i++
	return v % n
}

func (r *fixedRandom) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.f%len(r.floats)]
	r.f++
	return v
}

func testRules() Rules {
	rules := DefaultRules()
	rules.ThrowCooldown = 0
	rules.Vocabulary = []string{"flutter", "dart", "widget"}
	return rules
}

func TestSelectModeInitializesSession(t *testing.T) {
	c := NewController(testRules(), &fixedRandom{})
	cases := map[Mode]int{ModeSwing: 30, ModeCollector: 30, ModeTyping: 60}
	for mode, seconds := range cases {
		c.Reset()
		if !c.SelectMode(mode) {
			t.Fatalf("expected %s to start", mode)
		}
		s := c.Snapshot()
		if s.Status != StatusRunning || s.Mode != mode {
			t.Fatalf("unexpected state after select: %+v", s)
		}
		if s.TimeRemaining != seconds {
			t.Fatalf("%s: expected %ds, got %d", mode, seconds, s.TimeRemaining)
		}
		if s.Score != 0 || s.Combo != 0 {
			t.Fatalf("expected zeroed score and combo, got %d/%d", s.Score, s.Combo)
		}
	}
}

func TestSelectModeRejectedWhileRunning(t *testing.T) {
	c := NewController(testRules(), &fixedRandom{})
	if !c.SelectMode(ModeSwing) {
		t.Fatalf("expected swing to start")
	}
	c.HandleInput(Throw())
	if c.SelectMode(ModeTyping) {
		t.Fatalf("expected select to be rejected while running")
	}
	s := c.Snapshot()
	if s.Mode != ModeSwing || s.Score != 100 {
		t.Fatalf("rejected select changed state: %+v", s)
	}
	if c.SelectMode(ModeNone) {
		t.Fatalf("expected ModeNone to be rejected")
	}
}

func TestSelectTypingWithoutVocabulary(t *testing.T) {
	rules := testRules()
	rules.Vocabulary = nil
	c := NewController(rules, &fixedRandom{})
	if c.SelectMode(ModeTyping) {
		t.Fatalf("expected typing without vocabulary to be rejected")
	}
	if c.Status() != StatusIdle {
		t.Fatalf("expected idle, got %s", c.Status())
	}
}

func TestCountdownEndsSessionOnce(t *testing.T) {
	c := NewController(testRules(), &fixedRandom{})
	var results []Result
	c.SetObserver(func(r Result) { results = append(results, r) })

	c.SelectMode(ModeTyping)
	// fixedRandom always draws index 0
	for _, r := range "dart" {
		c.HandleInput(Char(r))
	}
	if c.Snapshot().Score != 0 {
		t.Fatalf("expected no score for a non-target word")
	}
	for i := 0; i < 4; i++ {
		c.HandleInput(Backspace())
	}
	for _, r := range "flutter" {
		c.HandleInput(Char(r))
	}
	for i := 0; i < 59; i++ {
		c.Tick(time.Second)
	}
	if c.Status() != StatusRunning {
		t.Fatalf("expected running with 1s left")
	}
	if got := c.Snapshot().TimeRemaining; got != 1 {
		t.Fatalf("expected 1s remaining, got %d", got)
	}
	c.Tick(500 * time.Millisecond)
	c.Tick(500 * time.Millisecond)
	if c.Status() != StatusOver {
		t.Fatalf("expected over after countdown, got %s", c.Status())
	}
	for i := 0; i < 5; i++ {
		c.Tick(time.Second)
	}
	if len(results) != 1 {
		t.Fatalf("expected one result, got %d", len(results))
	}
	if results[0].Score != 70 || results[0].BestScore != 70 || results[0].WordsCompleted != 1 {
		t.Fatalf("unexpected result: %+v", results[0])
	}
	if c.BestScore() != 70 {
		t.Fatalf("expected best 70, got %d", c.BestScore())
	}
}

func TestOverIgnoresTicksAndInput(t *testing.T) {
	c := NewController(testRules(), &fixedRandom{floats: []float64{0.5}})
	c.SelectMode(ModeCollector)
	c.Tick(time.Hour)
	if c.Status() != StatusOver {
		t.Fatalf("expected over, got %s", c.Status())
	}
	before := c.Snapshot()
	c.Tick(time.Second)
	c.Tick(time.Minute)
	if c.HandleInput(Left()) || c.HandleInput(Throw()) || c.HandleInput(Char('a')) {
		t.Fatalf("expected input to be rejected after over")
	}
	after := c.Snapshot()
	if before.Score != after.Score || before.Combo != after.Combo || before.BestScore != after.BestScore {
		t.Fatalf("state changed after over: %+v -> %+v", before, after)
	}
	if after.Collector.PlayerX != before.Collector.PlayerX || len(after.Collector.Items) != len(before.Collector.Items) {
		t.Fatalf("collector state changed after over")
	}
}

func TestLargeTickDoesNotRunPastTimeout(t *testing.T) {
	c := NewController(testRules(), &fixedRandom{floats: []float64{0.5}})
	c.SelectMode(ModeSwing)
	c.Tick(10 * time.Minute)
	s := c.Snapshot()
	if s.Status != StatusOver || s.TimeRemaining != 0 {
		t.Fatalf("expected over at zero, got %+v", s)
	}
	if s.Result == nil || s.Result.Played != 30*time.Second {
		t.Fatalf("expected 30s played, got %+v", s.Result)
	}
}

func TestResetPreservesBestScore(t *testing.T) {
	c := NewController(testRules(), &fixedRandom{})
	c.SelectMode(ModeSwing)
	for i := 0; i < 5; i++ {
		c.HandleInput(Throw())
	}
	if c.Status() != StatusOver {
		t.Fatalf("expected over after dart budget")
	}
	c.Reset()
	s := c.Snapshot()
	if s.Status != StatusIdle || s.Mode != ModeNone {
		t.Fatalf("expected idle/none, got %s/%s", s.Status, s.Mode)
	}
	if s.Score != 0 || s.Combo != 0 || s.TimeRemaining != 0 {
		t.Fatalf("expected cleared fields, got %+v", s)
	}
	if s.Swing != nil || s.Collector != nil || s.Typing != nil || s.Result != nil {
		t.Fatalf("expected no mode sub-state after reset")
	}
	if s.BestScore != 700 {
		t.Fatalf("expected best 700 preserved, got %d", s.BestScore)
	}

	c.SelectMode(ModeSwing)
	c.Reset()
	if c.Snapshot().BestScore != 700 {
		t.Fatalf("expected best preserved after resetting a running session")
	}
}

func TestBestScoreKeepsMaximum(t *testing.T) {
	c := NewController(testRules(), &fixedRandom{})
	c.SelectMode(ModeSwing)
	for i := 0; i < 5; i++ {
		c.HandleInput(Throw())
	}
	if !c.SelectMode(ModeSwing) {
		t.Fatalf("expected select from over to start a new session")
	}
	if c.Snapshot().Score != 0 {
		t.Fatalf("expected score reset on new session")
	}
	eng := c.engine.(*swingEngine)
	eng.angle = pendulumLimit
	for i := 0; i < 5; i++ {
		c.HandleInput(Throw())
	}
	if c.Snapshot().Score != 0 {
		t.Fatalf("expected all misses at the bound")
	}
	if c.BestScore() != 700 {
		t.Fatalf("expected best 700 kept, got %d", c.BestScore())
	}
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{ModeSwing, ModeCollector, ModeTyping} {
		got, ok := ParseMode(m.String())
		if !ok || got != m {
			t.Fatalf("ParseMode(%q) = %v, %v", m.String(), got, ok)
		}
	}
	if _, ok := ParseMode("darts"); ok {
		t.Fatalf("expected unknown mode to fail")
	}
}

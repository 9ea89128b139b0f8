package game

import (
	"time"

	"github.com/verte-zerg/tuiarcade/internal/scoring"
)

type scoreboard struct {
	score     int
	combo     int
	peakCombo int
}

func (b *scoreboard) add(points int) {
	if points > 0 {
		b.score += points
	}
}

func (b *scoreboard) hit() {
	b.combo++
	if b.combo > b.peakCombo {
		b.peakCombo = b.combo
	}
}

func (b *scoreboard) miss() {
	b.combo = 0
}

// engine is the rule set of one mode. Engines never outlive their session:
// stop is called on the transition that ends it.
type engine interface {
	handleInput(in Input, b *scoreboard) bool
	tick(dt time.Duration, b *scoreboard)
	isOver() bool
	stop()
	fill(s *Snapshot)
	fillResult(r *Result)
}

// Controller owns one play-through at a time and the best score of the
// process.
type Controller struct {
	rules  Rules
	rnd    Random
	now    func() time.Time
	onOver func(Result)

	mode      Mode
	status    Status
	board     scoreboard
	best      int
	remaining int
	elapsed   time.Duration
	played    time.Duration
	engine    engine
	startedAt time.Time
	result    *Result
}

// NewController returns an idle controller.
func NewController(rules Rules, rnd Random) *Controller {
	return &Controller{
		rules: rules,
		rnd:   rnd,
		now:   time.Now,
	}
}

// SetObserver registers a callback invoked once per finished session.
func (c *Controller) SetObserver(fn func(Result)) {
	c.onOver = fn
}

// SelectMode starts a session. It is rejected while a session is running.
func (c *Controller) SelectMode(mode Mode) bool {
	if c.status == StatusRunning {
		return false
	}
	seconds := c.rules.seconds(mode)
	if seconds <= 0 {
		return false
	}
	var eng engine
	switch mode {
	case ModeSwing:
		eng = newSwingEngine(c.rules.DartBudget, c.rules.ThrowCooldown)
	case ModeCollector:
		eng = newCollectorEngine(c.rnd, c.rules.ItemCap)
	case ModeTyping:
		if len(c.rules.Vocabulary) == 0 {
			return false
		}
		eng = newTypingEngine(c.rnd, c.rules.Vocabulary)
	default:
		return false
	}
	c.clear()
	c.mode = mode
	c.engine = eng
	c.status = StatusRunning
	c.remaining = seconds
	c.startedAt = c.now()
	return true
}

// Tick advances the running session by dt.
func (c *Controller) Tick(dt time.Duration) {
	if c.status != StatusRunning || dt <= 0 {
		return
	}
	if left := c.timeLeft(); dt > left {
		dt = left
	}
	c.engine.tick(dt, &c.board)
	c.played += dt
	c.elapsed += dt
	for c.elapsed >= time.Second && c.remaining > 0 {
		c.remaining--
		c.elapsed -= time.Second
	}
	if c.remaining == 0 || c.engine.isOver() {
		c.finish()
	}
}

// HandleInput forwards an input to the active engine and reports whether it
// was accepted.
func (c *Controller) HandleInput(in Input) bool {
	if c.status != StatusRunning {
		return false
	}
	accepted := c.engine.handleInput(in, &c.board)
	if c.engine.isOver() {
		c.finish()
	}
	return accepted
}

// Reset returns to idle, keeping the best score.
func (c *Controller) Reset() {
	if c.engine != nil {
		c.engine.stop()
	}
	c.clear()
}

// Status returns the current lifecycle state.
func (c *Controller) Status() Status {
	return c.status
}

// Mode returns the active mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// BestScore returns the best finished score of the process.
func (c *Controller) BestScore() int {
	return c.best
}

// Snapshot returns a copy of the session state.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Mode:          c.mode,
		Status:        c.status,
		Score:         c.board.score,
		Combo:         c.board.combo,
		BestScore:     c.best,
		TimeRemaining: c.remaining,
	}
	if c.engine != nil {
		c.engine.fill(&s)
	}
	if c.result != nil {
		r := *c.result
		s.Result = &r
	}
	return s
}

func (c *Controller) timeLeft() time.Duration {
	return time.Duration(c.remaining)*time.Second - c.elapsed
}

func (c *Controller) clear() {
	c.mode = ModeNone
	c.status = StatusIdle
	c.board = scoreboard{}
	c.remaining = 0
	c.elapsed = 0
	c.played = 0
	c.engine = nil
	c.startedAt = time.Time{}
	c.result = nil
}

// finish is the only place the best score changes.
func (c *Controller) finish() {
	if c.status != StatusRunning {
		return
	}
	c.status = StatusOver
	c.engine.stop()
	if c.board.score > c.best {
		c.best = c.board.score
	}
	r := Result{
		Mode:      c.mode,
		Score:     c.board.score,
		BestScore: c.best,
		PeakCombo: c.board.peakCombo,
		Rating:    scoring.Rating(c.board.score),
		Played:    c.played,
		StartedAt: c.startedAt,
		EndedAt:   c.now(),
	}
	c.engine.fillResult(&r)
	c.result = &r
	if c.onOver != nil {
		c.onOver(r)
	}
}

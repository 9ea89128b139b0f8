package game

import (
	"math"
	"time"

	"github.com/verte-zerg/tuiarcade/internal/scoring"
)

const (
	pendulumLimit    = 45.0
	pendulumStep     = 2.0
	pendulumInterval = 20 * time.Millisecond
	armLength        = 150.0
)

// BoardCenter is the bullseye in field coordinates.
var BoardCenter = Point{X: 200, Y: 200}

// pivot hangs one arm length above the bullseye so the swing crosses it.
var pivot = Point{X: BoardCenter.X, Y: BoardCenter.Y - armLength}

// ReleasePosition returns where a dart released at angle (degrees) lands.
func ReleasePosition(angle float64) Point {
	rad := angle * math.Pi / 180
	return Point{
		X: pivot.X + armLength*math.Sin(rad),
		Y: pivot.Y + armLength*math.Cos(rad),
	}
}

type swingEngine struct {
	angle  float64
	dir    float64
	active bool
	budget int
	thrown int
	hits   []Hit

	stepAcc    time.Duration
	cooldown   time.Duration
	sinceThrow time.Duration
}

func newSwingEngine(budget int, cooldown time.Duration) *swingEngine {
	return &swingEngine{
		dir:      1,
		active:   budget > 0,
		budget:   budget,
		cooldown: cooldown,
		hits:     make([]Hit, 0, budget),
	}
}

func (e *swingEngine) tick(dt time.Duration, _ *scoreboard) {
	e.sinceThrow += dt
	if !e.active {
		return
	}
	e.stepAcc += dt
	for e.stepAcc >= pendulumInterval {
		e.stepAcc -= pendulumInterval
		e.swing()
	}
}

func (e *swingEngine) swing() {
	e.angle += e.dir * pendulumStep
	if e.angle >= pendulumLimit {
		e.angle = pendulumLimit
		e.dir = -1
	} else if e.angle <= -pendulumLimit {
		e.angle = -pendulumLimit
		e.dir = 1
	}
}

func (e *swingEngine) handleInput(in Input, b *scoreboard) bool {
	switch in.Action {
	case ActionThrow, ActionPointer:
		return e.throwDart(b)
	default:
		return false
	}
}

func (e *swingEngine) throwDart(b *scoreboard) bool {
	if !e.active || e.thrown >= e.budget {
		return false
	}
	if e.thrown > 0 && e.sinceThrow < e.cooldown {
		return false
	}
	pos := ReleasePosition(e.angle)
	distance := pos.Dist(BoardCenter)
	base := scoring.Score(distance)
	mult := b.combo/3 + 1
	hit := Hit{
		Position:   pos,
		Angle:      e.angle,
		Distance:   distance,
		Base:       base,
		Multiplier: mult,
		Score:      base * mult,
	}
	b.add(hit.Score)
	e.hits = append(e.hits, hit)
	if base > 0 {
		b.hit()
	} else {
		b.miss()
	}
	e.thrown++
	e.sinceThrow = 0
	if e.thrown >= e.budget {
		e.active = false
	}
	return true
}

func (e *swingEngine) isOver() bool {
	return e.thrown >= e.budget
}

func (e *swingEngine) stop() {
	e.active = false
	e.stepAcc = 0
}

func (e *swingEngine) fill(s *Snapshot) {
	s.Swing = &SwingState{
		Angle:       e.angle,
		Active:      e.active,
		DartsThrown: e.thrown,
		Budget:      e.budget,
		Hits:        append([]Hit(nil), e.hits...),
	}
}

func (e *swingEngine) fillResult(r *Result) {
	r.DartsThrown = e.thrown
}

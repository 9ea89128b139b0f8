package game

import (
	"time"

	"github.com/verte-zerg/tuiarcade/internal/scoring"
)

// Collector field geometry.
const (
	FieldWidth  = 400.0
	FieldHeight = 400.0
	PlayerMinX  = 20.0
	PlayerMaxX  = 380.0
	CatchTop    = 350.0
	CatchBottom = 390.0
	CatchRange  = 30.0
)

const (
	playerStep      = 20.0
	fallStep        = 8.0
	bonusChance     = 0.3
	spawnInterval   = 800 * time.Millisecond
	physicsInterval = 50 * time.Millisecond
)

type collectorEngine struct {
	rnd     Random
	itemCap int
	playerX float64
	items   []FallingItem
	nextID  int
	caught  int
	missed  int

	spawnAcc   time.Duration
	physicsAcc time.Duration
	stopped    bool
}

func newCollectorEngine(rnd Random, itemCap int) *collectorEngine {
	return &collectorEngine{
		rnd:     rnd,
		itemCap: itemCap,
		playerX: FieldWidth / 2,
	}
}

func (e *collectorEngine) handleInput(in Input, _ *scoreboard) bool {
	switch in.Action {
	case ActionLeft:
		return e.move(-playerStep)
	case ActionRight:
		return e.move(playerStep)
	default:
		return false
	}
}

func (e *collectorEngine) move(delta float64) bool {
	x := clamp(e.playerX+delta, PlayerMinX, PlayerMaxX)
	if x == e.playerX {
		return false
	}
	e.playerX = x
	return true
}

func (e *collectorEngine) tick(dt time.Duration, b *scoreboard) {
	if e.stopped {
		return
	}
	e.spawnAcc += dt
	for e.spawnAcc >= spawnInterval {
		e.spawnAcc -= spawnInterval
		e.spawn()
	}
	e.physicsAcc += dt
	for e.physicsAcc >= physicsInterval {
		e.physicsAcc -= physicsInterval
		e.step(b)
	}
}

// spawn adds one item unless the field already holds itemCap of them.
func (e *collectorEngine) spawn() bool {
	if len(e.items) >= e.itemCap {
		return false
	}
	x := PlayerMinX + e.rnd.Float64()*(PlayerMaxX-PlayerMinX)
	kind := scoring.Standard
	if e.rnd.Float64() < bonusChance {
		kind = scoring.Bonus
	}
	e.nextID++
	e.items = append(e.items, FallingItem{
		ID:       e.nextID,
		Position: Point{X: x, Y: 0},
		Velocity: Point{X: 0, Y: fallStep},
		Kind:     kind,
	})
	return true
}

func (e *collectorEngine) step(b *scoreboard) {
	kept := e.items[:0]
	for _, item := range e.items {
		item.Position.X += item.Velocity.X
		item.Position.Y += item.Velocity.Y
		switch {
		case e.catches(item):
			b.add(scoring.KindValue(item.Kind))
			b.hit()
			e.caught++
		case item.Position.Y > FieldHeight:
			e.missed++
		default:
			kept = append(kept, item)
		}
	}
	e.items = kept
}

func (e *collectorEngine) catches(item FallingItem) bool {
	y := item.Position.Y
	if y < CatchTop || y > CatchBottom {
		return false
	}
	dx := item.Position.X - e.playerX
	return dx >= -CatchRange && dx <= CatchRange
}

func (e *collectorEngine) isOver() bool {
	return false
}

func (e *collectorEngine) stop() {
	e.stopped = true
	e.spawnAcc = 0
	e.physicsAcc = 0
}

func (e *collectorEngine) fill(s *Snapshot) {
	s.Collector = &CollectorState{
		PlayerX: e.playerX,
		Items:   append([]FallingItem(nil), e.items...),
		Caught:  e.caught,
		Missed:  e.missed,
	}
}

func (e *collectorEngine) fillResult(r *Result) {
	r.Caught = e.caught
	r.Missed = e.missed
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

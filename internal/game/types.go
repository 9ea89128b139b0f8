// Package game implements the mini-game session controller and its three
// mode engines. Nothing here owns a goroutine or a timer: the host calls Tick
// and HandleInput from a single goroutine.
package game

import (
	"math"
	"time"

	"github.com/verte-zerg/tuiarcade/internal/scoring"
)

// Mode selects which engine runs a session.
type Mode int

const (
	ModeNone Mode = iota
	ModeSwing
	ModeCollector
	ModeTyping
)

// String returns the display name of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSwing:
		return "swing"
	case ModeCollector:
		return "collector"
	case ModeTyping:
		return "typing"
	default:
		return "none"
	}
}

// ParseMode maps a mode name back to a Mode.
func ParseMode(name string) (Mode, bool) {
	for _, m := range []Mode{ModeSwing, ModeCollector, ModeTyping} {
		if m.String() == name {
			return m, true
		}
	}
	return ModeNone, false
}

// Status is the session lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusOver
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusOver:
		return "over"
	default:
		return "idle"
	}
}

// Point is a field-relative coordinate.
type Point struct {
	X float64
	Y float64
}

// Dist returns the euclidean distance between two points.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Action identifies a discrete input command.
type Action int

const (
	ActionThrow Action = iota
	ActionPointer
	ActionLeft
	ActionRight
	ActionChar
	ActionBackspace
)

// Input is one event from the host.
type Input struct {
	Action Action
	Rune   rune
	Point  Point
}

// Throw is the designated throw action.
func Throw() Input { return Input{Action: ActionThrow} }

// Pointer is a click at a field-relative coordinate.
func Pointer(x, y float64) Input { return Input{Action: ActionPointer, Point: Point{X: x, Y: y}} }

// Left moves the collector player left.
func Left() Input { return Input{Action: ActionLeft} }

// Right moves the collector player right.
func Right() Input { return Input{Action: ActionRight} }

// Char types a single character.
func Char(r rune) Input { return Input{Action: ActionChar, Rune: r} }

// Backspace removes the last typed character.
func Backspace() Input { return Input{Action: ActionBackspace} }

// Random is the only source of randomness used by the engines.
type Random interface {
	Intn(n int) int
	Float64() float64
}

// Rules configures session durations and mode limits.
type Rules struct {
	SwingSeconds     int
	CollectorSeconds int
	TypingSeconds    int
	DartBudget       int
	ItemCap          int
	ThrowCooldown    time.Duration
	Vocabulary       []string
}

// DefaultRules returns the standard game rules with an empty vocabulary.
func DefaultRules() Rules {
	return Rules{
		SwingSeconds:     30,
		CollectorSeconds: 30,
		TypingSeconds:    60,
		DartBudget:       5,
		ItemCap:          5,
		ThrowCooldown:    150 * time.Millisecond,
	}
}

func (r Rules) seconds(mode Mode) int {
	switch mode {
	case ModeSwing:
		return r.SwingSeconds
	case ModeCollector:
		return r.CollectorSeconds
	case ModeTyping:
		return r.TypingSeconds
	default:
		return 0
	}
}

// Hit is one thrown dart.
type Hit struct {
	Position   Point
	Angle      float64
	Distance   float64
	Base       int
	Multiplier int
	Score      int
}

// FallingItem is a Collector drop.
type FallingItem struct {
	ID       int
	Position Point
	Velocity Point
	Kind     scoring.Kind
}

// SwingState is the Swing engine part of a snapshot.
type SwingState struct {
	Angle       float64
	Active      bool
	DartsThrown int
	Budget      int
	Hits        []Hit
}

// CollectorState is the Collector engine part of a snapshot.
type CollectorState struct {
	PlayerX float64
	Items   []FallingItem
	Caught  int
	Missed  int
}

// TypingState is the Typing engine part of a snapshot.
type TypingState struct {
	Target         string
	Typed          string
	WordsCompleted int
	// MismatchAt is the rune index of the first wrong character, or -1.
	MismatchAt int
}

// Snapshot is a copy of the session for rendering.
type Snapshot struct {
	Mode          Mode
	Status        Status
	Score         int
	Combo         int
	BestScore     int
	TimeRemaining int

	Swing     *SwingState
	Collector *CollectorState
	Typing    *TypingState
	Result    *Result
}

// Result summarizes a finished session.
type Result struct {
	Mode           Mode
	Score          int
	BestScore      int
	PeakCombo      int
	DartsThrown    int
	Caught         int
	Missed         int
	WordsCompleted int
	Rating         string
	Played         time.Duration
	StartedAt      time.Time
	EndedAt        time.Time
}

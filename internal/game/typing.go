package game

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const pointsPerRune = 10

type typingEngine struct {
	rnd       Random
	vocab     []string
	target    string
	typed     []rune
	completed int
}

func newTypingEngine(rnd Random, vocab []string) *typingEngine {
	e := &typingEngine{rnd: rnd, vocab: vocab}
	e.draw()
	return e
}

func (e *typingEngine) draw() {
	e.target = e.vocab[e.rnd.Intn(len(e.vocab))]
	e.typed = e.typed[:0]
}

func (e *typingEngine) handleInput(in Input, b *scoreboard) bool {
	switch in.Action {
	case ActionChar:
		if !unicode.IsPrint(in.Rune) {
			return false
		}
		e.typed = append(e.typed, in.Rune)
	case ActionBackspace:
		if len(e.typed) == 0 {
			return false
		}
		e.typed = e.typed[:len(e.typed)-1]
	default:
		return false
	}
	if strings.EqualFold(string(e.typed), e.target) {
		b.add(utf8.RuneCountInString(e.target) * pointsPerRune)
		b.hit()
		e.completed++
		e.draw()
	}
	return true
}

func (e *typingEngine) tick(time.Duration, *scoreboard) {}

func (e *typingEngine) isOver() bool {
	return false
}

func (e *typingEngine) stop() {}

func (e *typingEngine) fill(s *Snapshot) {
	s.Typing = &TypingState{
		Target:         e.target,
		Typed:          string(e.typed),
		WordsCompleted: e.completed,
		MismatchAt:     mismatchAt(e.target, e.typed),
	}
}

func (e *typingEngine) fillResult(r *Result) {
	r.WordsCompleted = e.completed
}

// mismatchAt returns the index of the first typed rune that does not match
// the target case-insensitively, or -1 when typed is a prefix of target.
func mismatchAt(target string, typed []rune) int {
	want := []rune(target)
	for i, r := range typed {
		if i >= len(want) || unicode.ToLower(r) != unicode.ToLower(want[i]) {
			return i
		}
	}
	return -1
}

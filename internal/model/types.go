// Package model defines shared data structures.
package model

import "time"

// Config defines play settings after flags, config file and environment are
// merged.
type Config struct {
	Mode             string
	Seed             int64
	WordsFile        string
	FPS              int
	ThrowCooldownMs  int
	SwingSeconds     int
	CollectorSeconds int
	TypingSeconds    int
	Summary          string
}

// RoundResult captures a finished round.
type RoundResult struct {
	ID             int64     `yaml:"id"`
	Mode           string    `yaml:"mode"`
	Score          int       `yaml:"score"`
	PeakCombo      int       `yaml:"peak_combo"`
	DartsThrown    int       `yaml:"darts_thrown,omitempty"`
	Caught         int       `yaml:"caught,omitempty"`
	Missed         int       `yaml:"missed,omitempty"`
	WordsCompleted int       `yaml:"words_completed,omitempty"`
	Rating         string    `yaml:"rating"`
	PlayedMs       int64     `yaml:"played_ms"`
	StartedAt      time.Time `yaml:"started_at"`
	EndedAt        time.Time `yaml:"ended_at"`
}

// ModeAggregate summarizes the rounds of one mode.
type ModeAggregate struct {
	Mode     string  `yaml:"mode"`
	Rounds   int     `yaml:"rounds"`
	Best     int     `yaml:"best"`
	AvgScore float64 `yaml:"avg_score"`
}

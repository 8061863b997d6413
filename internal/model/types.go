// Package model defines shared data structures.
package model

import "github.com/verte-zerg/bwordible/internal/calendar"

// MaxDistributionBucket is the largest guess count shown by default.
const MaxDistributionBucket = 7

// MaxGuessCount is the guess budget of the longest playable word, six letters
// plus two. No win can take more guesses.
const MaxGuessCount = 8

// Save is the persisted document: per-date progress plus lifetime stats.
type Save struct {
	Puzzles map[calendar.Key]*PuzzleProgress `json:"puzzles"`
	Stats   Stats                            `json:"stats"`
}

// PuzzleProgress records play on one date.
type PuzzleProgress struct {
	Completed     bool     `json:"completed"`
	CurrentGuess  string   `json:"currentGuess"`
	Guesses       []string `json:"guesses"`
	StatsRecorded bool     `json:"statsRecorded"`
	Won           bool     `json:"won"`
}

// Stats aggregates ranked results.
type Stats struct {
	CurrentStreak       int          `json:"currentStreak"`
	Distribution        map[int]int  `json:"distribution"`
	LastCompletedDate   calendar.Key `json:"lastCompletedDate,omitempty"`
	MaxStreak           int          `json:"maxStreak"`
	Played              int          `json:"played"`
	TotalWinningGuesses int          `json:"totalWinningGuesses"`
	Wins                int          `json:"wins"`
}

// Config holds settings resolved from defaults, the config file, the
// environment and flags.
type Config struct {
	TimeZone    string
	StartDate   string
	Seed        string
	AnswersPath string
	GuessesPath string
	DBPath      string
	StorageKey  string
	LogLevel    string
	LogPath     string
	Today       string
	Date        string
}

// NewSave returns an empty save with every distribution bucket present.
func NewSave() Save {
	return Save{
		Puzzles: map[calendar.Key]*PuzzleProgress{},
		Stats:   NewStats(),
	}
}

// NewStats returns zeroed stats.
func NewStats() Stats {
	dist := make(map[int]int, MaxDistributionBucket)
	for i := 1; i <= MaxDistributionBucket; i++ {
		dist[i] = 0
	}
	return Stats{Distribution: dist}
}

// NewPuzzleProgress returns an unstarted progress record.
func NewPuzzleProgress() *PuzzleProgress {
	return &PuzzleProgress{Guesses: []string{}}
}

// Started reports whether any input has been recorded.
func (p *PuzzleProgress) Started() bool {
	return p.CurrentGuess != "" || len(p.Guesses) > 0
}

// WinRate returns wins/played as a percentage rounded to the nearest integer.
func (s Stats) WinRate() int {
	if s.Played == 0 {
		return 0
	}
	return int(float64(s.Wins)/float64(s.Played)*100 + 0.5)
}

// AverageGuesses returns the mean winning guess count and whether any win exists.
func (s Stats) AverageGuesses() (float64, bool) {
	if s.Wins == 0 {
		return 0, false
	}
	return float64(s.TotalWinningGuesses) / float64(s.Wins), true
}

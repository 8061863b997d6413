package schedule

import (
	"errors"
	"fmt"
	"sync"

	"github.com/verte-zerg/bwordible/internal/calendar"
)

const (
	// DefaultStartDate is the first live daily puzzle.
	DefaultStartDate calendar.Key = "2026-03-01"
	// DefaultSeed prefixes every cycle's permutation seed.
	DefaultSeed = "bwordible-v1"
)

// ErrOutOfAnswers means the corpus cannot cover the requested cycle position.
var ErrOutOfAnswers = errors.New("not enough answers")

// Plan is the puzzle selected for a date.
type Plan struct {
	Answer      string
	AnswerIndex int
	Length      int
	MaxGuesses  int
	CycleYear   int
	CycleStart  calendar.Key
	Position    int
}

// Scheduler maps dates to answers for a fixed corpus.
type Scheduler struct {
	answers []string
	start   calendar.Key
	seed    string

	mu    sync.Mutex
	cache map[int][]int
}

// New returns a Scheduler over answers. Empty start or seed fall back to the
// defaults. answers must already be normalized to uppercase.
func New(answers []string, start calendar.Key, seed string) *Scheduler {
	if start == "" {
		start = DefaultStartDate
	}
	if seed == "" {
		seed = DefaultSeed
	}
	return &Scheduler{
		answers: answers,
		start:   start,
		seed:    seed,
		cache:   map[int][]int{},
	}
}

// StartDate returns the program start date.
func (s *Scheduler) StartDate() calendar.Key {
	return s.start
}

// CycleYear returns the scheduling cycle of key. Cycles start on March 1;
// dates before the start date belong to the start date's cycle.
func (s *Scheduler) CycleYear(key calendar.Key) int {
	if calendar.Compare(key, s.start) < 0 {
		key = s.start
	}
	return cycleYear(key)
}

// Select returns the puzzle plan for key. Dates before the start date resolve
// to the opening puzzle.
func (s *Scheduler) Select(key calendar.Key) (Plan, error) {
	effective := key
	if calendar.Compare(effective, s.start) < 0 {
		effective = s.start
	}
	year := cycleYear(effective)
	cycleStart := calendar.FromCivil(year, 3, 1)
	position := calendar.DayDistance(effective, cycleStart)
	if position < 0 {
		position = 0
	}

	order := s.permutation(year)
	if position >= len(order) {
		return Plan{}, fmt.Errorf("%w: %d-cycle position %d with %d answers", ErrOutOfAnswers, year, position, len(order))
	}
	index := order[position]
	answer := s.answers[index]
	length := len(answer)
	return Plan{
		Answer:      answer,
		AnswerIndex: index,
		Length:      length,
		MaxGuesses:  length + 2,
		CycleYear:   year,
		CycleStart:  cycleStart,
		Position:    position,
	}, nil
}

func (s *Scheduler) permutation(year int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order, ok := s.cache[year]; ok {
		return order
	}
	order := BuildPermutation(len(s.answers), fmt.Sprintf("%s:%d", s.seed, year))
	s.cache[year] = order
	return order
}

func cycleYear(key calendar.Key) int {
	year := key.Year()
	if calendar.Compare(key, calendar.FromCivil(year, 3, 1)) >= 0 {
		return year
	}
	return year - 1
}

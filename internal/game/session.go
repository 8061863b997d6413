// Package game resolves which puzzle is being played and drives it through
// the ledger.
package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/guess"
	"github.com/verte-zerg/bwordible/internal/ledger"
	"github.com/verte-zerg/bwordible/internal/model"
	"github.com/verte-zerg/bwordible/internal/schedule"
)

// DefaultTimeZone anchors "today" when no zone is configured.
const DefaultTimeZone = "America/New_York"

// Mode is how the open puzzle relates to today.
type Mode string

const (
	ModeDaily   Mode = "daily"
	ModeArchive Mode = "archive"
	ModePreview Mode = "preview"
)

// Puzzle is the currently open board.
type Puzzle struct {
	ledger.Puzzle
	Mode        Mode
	DisplayDate string
	Today       calendar.Key
}

// Options configures a Session.
type Options struct {
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
	// SimulatedToday replaces the clock's date when it is a valid key.
	SimulatedToday string
	Logger         *zap.Logger
}

// Session holds one open puzzle at a time.
type Session struct {
	scheduler *schedule.Scheduler
	ledger    *ledger.Ledger
	dict      ledger.Dictionary
	loc       *time.Location
	now       func() time.Time
	simulated calendar.Key
	logger    *zap.Logger

	puzzle Puzzle
	opened bool
}

// New returns a Session. dict may be nil to accept any word of the right length.
func New(sched *schedule.Scheduler, led *ledger.Ledger, dict ledger.Dictionary, opts Options) *Session {
	s := &Session{
		scheduler: sched,
		ledger:    led,
		dict:      dict,
		loc:       opts.Location,
		now:       opts.Now,
		logger:    opts.Logger,
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if calendar.IsValid(opts.SimulatedToday) {
		s.simulated = calendar.Key(opts.SimulatedToday)
	} else if opts.SimulatedToday != "" {
		s.logger.Warn("ignoring invalid simulated today", zap.String("today", opts.SimulatedToday))
	}
	return s
}

// Today returns the simulated date when set, otherwise the clock's civil date.
func (s *Session) Today() calendar.Key {
	if s.simulated != "" {
		return s.simulated
	}
	return calendar.KeyFor(s.now(), s.loc)
}

// Simulated reports whether today is pinned.
func (s *Session) Simulated() bool {
	return s.simulated != ""
}

// Location returns the reference time zone.
func (s *Session) Location() *time.Location {
	return s.loc
}

// StartDate returns the program start date.
func (s *Session) StartDate() calendar.Key {
	return s.scheduler.StartDate()
}

// Ledger exposes the progress and statistics ledger.
func (s *Session) Ledger() *ledger.Ledger {
	return s.ledger
}

// MaxArchiveDate is the latest released date, or false before launch.
func (s *Session) MaxArchiveDate() (calendar.Key, bool) {
	today := s.Today()
	if calendar.Compare(today, s.StartDate()) < 0 {
		return "", false
	}
	return today, true
}

// ResolveMode classifies an already normalized date.
func (s *Session) ResolveMode(key calendar.Key) Mode {
	today := s.Today()
	if key != today {
		return ModeArchive
	}
	if calendar.Compare(today, s.StartDate()) < 0 {
		return ModePreview
	}
	return ModeDaily
}

// NormalizeDate maps a requested date to a playable one. Anything invalid,
// unreleased or before the start falls back to today.
func (s *Session) NormalizeDate(raw string) calendar.Key {
	today := s.Today()
	if !calendar.IsValid(raw) {
		return today
	}
	key := calendar.Key(raw)
	if key == today {
		return key
	}
	maxKey, ok := s.MaxArchiveDate()
	if !ok {
		return today
	}
	if calendar.Compare(key, s.StartDate()) < 0 || calendar.Compare(key, maxKey) > 0 {
		return today
	}
	return key
}

// Open selects the puzzle for raw (empty means today) and creates its
// progress record on first visit. Records that no longer fit the board are
// reset.
func (s *Session) Open(ctx context.Context, raw string) (Puzzle, error) {
	key := s.NormalizeDate(raw)
	mode := s.ResolveMode(key)
	selection := key
	if mode == ModePreview {
		selection = s.Today()
	}
	plan, err := s.scheduler.Select(selection)
	if err != nil {
		return Puzzle{}, fmt.Errorf("failed to select puzzle for %s: %w", key, err)
	}
	p := Puzzle{
		Puzzle: ledger.Puzzle{
			Key:    key,
			Plan:   plan,
			Ranked: mode == ModeDaily,
		},
		Mode:        mode,
		DisplayDate: calendar.Format(key, s.loc),
		Today:       s.Today(),
	}
	if _, err := s.ledger.Resume(ctx, p.Puzzle); err != nil {
		return Puzzle{}, err
	}
	if p.Ranked {
		if _, err := s.ledger.Record(ctx, key); err != nil {
			return Puzzle{}, err
		}
	}
	s.puzzle = p
	s.opened = true
	s.logger.Debug("opened puzzle",
		zap.String("date", key.String()),
		zap.String("mode", string(mode)),
		zap.Int("length", plan.Length))
	return p, nil
}

// Puzzle returns the open puzzle.
func (s *Session) Puzzle() Puzzle {
	return s.puzzle
}

// Progress returns the open puzzle's record.
func (s *Session) Progress() *model.PuzzleProgress {
	if !s.opened {
		return model.NewPuzzleProgress()
	}
	if progress := s.ledger.Progress(s.puzzle.Key); progress != nil {
		return progress
	}
	return model.NewPuzzleProgress()
}

// Type adds a letter to the current row.
func (s *Session) Type(ctx context.Context, letter rune) (bool, error) {
	if !s.opened {
		return false, nil
	}
	return s.ledger.TypeLetter(ctx, s.puzzle.Puzzle, letter)
}

// Backspace removes the last letter of the current row.
func (s *Session) Backspace(ctx context.Context) (bool, error) {
	if !s.opened {
		return false, nil
	}
	return s.ledger.Backspace(ctx, s.puzzle.Puzzle)
}

// SubmitResult reports how a submission went. Rejected submissions carry a
// Toast and leave the board unchanged.
type SubmitResult struct {
	Accepted bool
	Toast    string
	Outcome  ledger.Outcome
}

// Submit scores the current row.
func (s *Session) Submit(ctx context.Context) (SubmitResult, error) {
	if !s.opened {
		return SubmitResult{}, nil
	}
	outcome, err := s.ledger.Submit(ctx, s.puzzle.Puzzle, s.dict)
	switch {
	case errors.Is(err, ledger.ErrPuzzleComplete):
		return SubmitResult{Toast: "This puzzle is already finished."}, nil
	case errors.Is(err, ledger.ErrGuessLength):
		return SubmitResult{Toast: fmt.Sprintf("Enter a %d-letter word.", s.puzzle.Plan.Length)}, nil
	case errors.Is(err, ledger.ErrGuessNotAllowed):
		return SubmitResult{Toast: "Word not in the allowed list."}, nil
	case err != nil:
		return SubmitResult{Accepted: true, Outcome: outcome}, err
	}
	return SubmitResult{Accepted: true, Outcome: outcome}, nil
}

// Evaluations scores every submitted guess of the open puzzle.
func (s *Session) Evaluations() [][]guess.Status {
	progress := s.Progress()
	rows := make([][]guess.Status, 0, len(progress.Guesses))
	for _, g := range progress.Guesses {
		rows = append(rows, guess.Evaluate(g, s.puzzle.Plan.Answer))
	}
	return rows
}

// KeyboardStatuses returns the best status seen for each guessed letter.
func (s *Session) KeyboardStatuses() map[byte]guess.Status {
	return guess.KeyboardStatuses(s.Progress().Guesses, s.puzzle.Plan.Answer)
}

// DisplayedStreak returns the streak shown to the player as of today.
func (s *Session) DisplayedStreak() int {
	return s.ledger.DisplayedStreak(s.Today())
}

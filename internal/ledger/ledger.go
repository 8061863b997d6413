// Package ledger owns per-date puzzle progress and lifetime statistics.
//
// The ledger is the only writer of the save document. Every mutation is
// written through to the DocumentStore as a whole document; callers are
// expected to hold the only session writing a given storage key.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/guess"
	"github.com/verte-zerg/bwordible/internal/model"
	"github.com/verte-zerg/bwordible/internal/schedule"
)

// DefaultStorageKey names the save document.
const DefaultStorageKey = "bwordible-state-v2"

// Submission failures. The board is unchanged when any of these is returned.
var (
	ErrPuzzleComplete  = errors.New("puzzle already finished")
	ErrGuessLength     = errors.New("guess length mismatch")
	ErrGuessNotAllowed = errors.New("guess not allowed")
)

// DocumentStore persists the save document as text.
type DocumentStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
}

// Dictionary reports whether a word is an acceptable guess.
type Dictionary interface {
	Allows(word string) bool
}

// Puzzle identifies the board a mutation applies to.
type Puzzle struct {
	Key    calendar.Key
	Plan   schedule.Plan
	Ranked bool
}

// Outcome describes an accepted submission.
type Outcome struct {
	Guess     string
	Statuses  []guess.Status
	Completed bool
	Won       bool
	Recorded  bool
}

// Ledger holds the loaded save document.
type Ledger struct {
	store  DocumentStore
	key    string
	start  calendar.Key
	logger *zap.Logger
	save   model.Save
}

// Options configures Open.
type Options struct {
	StorageKey string
	StartDate  calendar.Key
	Logger     *zap.Logger
}

// Open loads the save document. A corrupt document is discarded and replaced
// with an empty save; only store I/O failures are returned.
func Open(ctx context.Context, st DocumentStore, opts Options) (*Ledger, error) {
	if opts.StorageKey == "" {
		opts.StorageKey = DefaultStorageKey
	}
	if opts.StartDate == "" {
		opts.StartDate = schedule.DefaultStartDate
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	l := &Ledger{
		store:  st,
		key:    opts.StorageKey,
		start:  opts.StartDate,
		logger: opts.Logger,
		save:   model.NewSave(),
	}
	raw, ok, err := st.Get(ctx, l.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load save: %w", err)
	}
	if !ok {
		return l, nil
	}
	save, err := Decode(raw)
	if err != nil {
		l.logger.Warn("discarding unreadable save", zap.String("key", l.key), zap.Error(err))
		return l, nil
	}
	l.save = save
	return l, nil
}

// Stats returns the lifetime statistics.
func (l *Ledger) Stats() model.Stats {
	return l.save.Stats
}

// Progress returns the record for key, or nil when the date was never visited.
func (l *Ledger) Progress(key calendar.Key) *model.PuzzleProgress {
	return l.save.Puzzles[key]
}

// Visit returns the record for key, creating and persisting it on first visit.
func (l *Ledger) Visit(ctx context.Context, key calendar.Key) (*model.PuzzleProgress, error) {
	if progress, ok := l.save.Puzzles[key]; ok {
		return progress, nil
	}
	progress := model.NewPuzzleProgress()
	l.save.Puzzles[key] = progress
	return progress, l.persist(ctx)
}

// Resume returns the record for p, creating it on first visit. A record whose
// rows do not fit p's board was written under another corpus or schedule; it
// is replaced with an empty one that keeps the StatsRecorded flag, so a
// result is never counted twice.
func (l *Ledger) Resume(ctx context.Context, p Puzzle) (*model.PuzzleProgress, error) {
	progress, err := l.Visit(ctx, p.Key)
	if err != nil {
		return nil, err
	}
	if fitsBoard(progress, p.Plan) {
		return progress, nil
	}
	l.logger.Warn("resetting progress that does not fit the board",
		zap.String("date", p.Key.String()),
		zap.Int("length", p.Plan.Length),
		zap.Strings("guesses", progress.Guesses),
		zap.String("current", progress.CurrentGuess))
	fresh := model.NewPuzzleProgress()
	fresh.StatsRecorded = progress.StatsRecorded
	l.save.Puzzles[p.Key] = fresh
	return fresh, l.persist(ctx)
}

func fitsBoard(progress *model.PuzzleProgress, plan schedule.Plan) bool {
	if len(progress.CurrentGuess) > plan.Length || len(progress.Guesses) > plan.MaxGuesses {
		return false
	}
	for _, g := range progress.Guesses {
		if len(g) != plan.Length {
			return false
		}
	}
	return true
}

// TypeLetter appends letter to the in-progress guess. It reports false when
// the input is ignored: the puzzle is finished, the row is full, or letter is
// not A-Z.
func (l *Ledger) TypeLetter(ctx context.Context, p Puzzle, letter rune) (bool, error) {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	if letter < 'A' || letter > 'Z' {
		return false, nil
	}
	progress, err := l.Visit(ctx, p.Key)
	if err != nil {
		return false, err
	}
	if progress.Completed || len(progress.CurrentGuess) >= p.Plan.Length {
		return false, nil
	}
	progress.CurrentGuess += string(letter)
	return true, l.persist(ctx)
}

// Backspace removes the last in-progress letter.
func (l *Ledger) Backspace(ctx context.Context, p Puzzle) (bool, error) {
	progress, err := l.Visit(ctx, p.Key)
	if err != nil {
		return false, err
	}
	if progress.Completed || progress.CurrentGuess == "" {
		return false, nil
	}
	progress.CurrentGuess = progress.CurrentGuess[:len(progress.CurrentGuess)-1]
	return true, l.persist(ctx)
}

// Submit scores the in-progress guess. The answer is always accepted; other
// words must be allowed by dict (a nil dict accepts any word). Ranked puzzles
// update statistics on completion.
func (l *Ledger) Submit(ctx context.Context, p Puzzle, dict Dictionary) (Outcome, error) {
	progress, err := l.Visit(ctx, p.Key)
	if err != nil {
		return Outcome{}, err
	}
	if progress.Completed {
		return Outcome{}, ErrPuzzleComplete
	}
	if len(progress.CurrentGuess) != p.Plan.Length {
		return Outcome{}, fmt.Errorf("%w: enter a %d-letter word", ErrGuessLength, p.Plan.Length)
	}
	word := strings.ToUpper(progress.CurrentGuess)
	if word != p.Plan.Answer && dict != nil && !dict.Allows(word) {
		return Outcome{}, fmt.Errorf("%w: %s", ErrGuessNotAllowed, word)
	}

	progress.Guesses = append(progress.Guesses, word)
	progress.CurrentGuess = ""
	outcome := Outcome{
		Guess:    word,
		Statuses: guess.Evaluate(word, p.Plan.Answer),
	}

	switch {
	case guess.Solved(outcome.Statuses):
		progress.Completed = true
		progress.Won = true
	case len(progress.Guesses) >= p.Plan.MaxGuesses:
		progress.Completed = true
		progress.Won = false
	}
	outcome.Completed = progress.Completed
	outcome.Won = progress.Won

	if progress.Completed && p.Ranked {
		outcome.Recorded = l.record(p.Key, progress)
	}
	return outcome, l.persist(ctx)
}

// Record applies a completed ranked result for key to the statistics. It is a
// no-op returning false when key was already recorded or is not complete.
// Sessions call it when reopening today's board so a completion whose stats
// write was lost still counts once.
func (l *Ledger) Record(ctx context.Context, key calendar.Key) (bool, error) {
	progress := l.save.Puzzles[key]
	if progress == nil {
		return false, nil
	}
	if !l.record(key, progress) {
		return false, nil
	}
	return true, l.persist(ctx)
}

func (l *Ledger) record(key calendar.Key, progress *model.PuzzleProgress) bool {
	if progress.StatsRecorded || !progress.Completed {
		return false
	}
	stats := &l.save.Stats
	stats.Played++
	if progress.Won {
		count := len(progress.Guesses)
		stats.Wins++
		stats.TotalWinningGuesses += count
		if stats.Distribution == nil {
			stats.Distribution = map[int]int{}
		}
		stats.Distribution[count]++
		if stats.LastCompletedDate != "" && calendar.DayDistance(key, stats.LastCompletedDate) == 1 {
			stats.CurrentStreak++
		} else {
			stats.CurrentStreak = 1
		}
		if stats.CurrentStreak > stats.MaxStreak {
			stats.MaxStreak = stats.CurrentStreak
		}
	} else {
		stats.CurrentStreak = 0
	}
	stats.LastCompletedDate = key
	progress.StatsRecorded = true
	l.logger.Info("recorded result",
		zap.String("date", key.String()),
		zap.Bool("won", progress.Won),
		zap.Int("guesses", len(progress.Guesses)),
		zap.Int("streak", stats.CurrentStreak))
	return true
}

func (l *Ledger) persist(ctx context.Context) error {
	raw, err := Encode(l.save)
	if err != nil {
		return err
	}
	if err := l.store.Put(ctx, l.key, raw); err != nil {
		l.logger.Error("failed to persist save", zap.String("key", l.key), zap.Error(err))
		return fmt.Errorf("failed to persist save: %w", err)
	}
	return nil
}

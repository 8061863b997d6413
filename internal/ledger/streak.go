package ledger

import (
	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/model"
)

// State is the lifecycle of one date's puzzle.
type State int

const (
	Unstarted State = iota
	InProgress
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unstarted"
	}
}

// StateOf classifies a progress record; nil is unstarted.
func StateOf(progress *model.PuzzleProgress) State {
	switch {
	case progress == nil:
		return Unstarted
	case progress.Completed && progress.Won:
		return Won
	case progress.Completed:
		return Lost
	case progress.Started():
		return InProgress
	default:
		return Unstarted
	}
}

// DayStatus is the calendar classification of a date.
type DayStatus string

const (
	DayEmpty  DayStatus = "empty"
	DayWon    DayStatus = "won"
	DayLost   DayStatus = "lost"
	DayMissed DayStatus = "missed"
	DayToday  DayStatus = "today"
)

// State returns the lifecycle state of key.
func (l *Ledger) State(key calendar.Key) State {
	return StateOf(l.save.Puzzles[key])
}

// DisplayedStreak counts consecutive won days ending today, or ending
// yesterday when today is not yet won. It is recomputed from progress records
// and may differ from the stored CurrentStreak.
func (l *Ledger) DisplayedStreak(today calendar.Key) int {
	if calendar.Compare(today, l.start) < 0 {
		return 0
	}
	cursor := today
	if l.State(cursor) != Won {
		cursor = calendar.Shift(cursor, -1)
	}
	streak := 0
	for calendar.Compare(cursor, l.start) >= 0 {
		if l.State(cursor) != Won {
			break
		}
		streak++
		cursor = calendar.Shift(cursor, -1)
	}
	return streak
}

// DayStatus classifies key relative to today for calendar views.
func (l *Ledger) DayStatus(key, today calendar.Key) DayStatus {
	if calendar.Compare(key, l.start) < 0 {
		return DayEmpty
	}
	if calendar.Compare(today, l.start) < 0 || calendar.Compare(key, today) > 0 {
		return DayEmpty
	}
	switch l.State(key) {
	case Won:
		return DayWon
	case Lost:
		return DayLost
	}
	if key == today {
		return DayToday
	}
	return DayMissed
}

// StartDate returns the first date that counts toward streaks.
func (l *Ledger) StartDate() calendar.Key {
	return l.start
}

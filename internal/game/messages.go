package game

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/guess"
	"github.com/verte-zerg/bwordible/internal/wordlist"
)

// ErrNotFinished is returned when sharing an unfinished puzzle.
var ErrNotFinished = errors.New("finish the puzzle before sharing")

// CalendarWindowDays is the length of the activity calendar.
const CalendarWindowDays = 35

const (
	tileBlocked = "⬛"
	tileCorrect = "🟩"
	tilePresent = "🟨"
	tileAbsent  = "⬜"
)

// ModeLabel names the open puzzle's mode.
func (p Puzzle) ModeLabel() string {
	switch p.Mode {
	case ModeDaily:
		return "Ranked daily"
	case ModeArchive:
		return "Archive"
	default:
		return "Preview"
	}
}

// Title is the heading shown above the board.
func (p Puzzle) Title() string {
	switch p.Mode {
	case ModeDaily:
		return "Today's puzzle"
	case ModeArchive:
		return "Archive puzzle"
	default:
		return "Preview puzzle"
	}
}

// Meta describes the board size.
func (p Puzzle) Meta() string {
	return fmt.Sprintf("%d letters • %d guesses", p.Plan.Length, p.Plan.MaxGuesses)
}

// StatusMessage describes the open puzzle's progress.
func (s *Session) StatusMessage() string {
	progress := s.Progress()
	p := s.puzzle
	if !progress.Completed {
		if p.Mode == ModeArchive {
			return "Replay the released Bible-themed puzzle."
		}
		return "Guess the Bible-themed word."
	}
	if progress.Won {
		score := fmt.Sprintf("%d/%d", len(progress.Guesses), p.Plan.MaxGuesses)
		switch p.Mode {
		case ModeArchive:
			return "Archive solved in " + score + "."
		case ModePreview:
			return "Preview solved in " + score + "."
		default:
			return "Solved in " + score + "."
		}
	}
	switch p.Mode {
	case ModeArchive:
		return "Archive complete. The answer was " + p.Plan.Answer + "."
	case ModePreview:
		return "Preview complete. The answer was " + p.Plan.Answer + "."
	default:
		return "No more guesses. The answer was " + p.Plan.Answer + "."
	}
}

// Notice is the banner explaining non-ranked modes. It is empty for a
// released daily puzzle.
func (s *Session) Notice() string {
	switch s.puzzle.Mode {
	case ModePreview:
		return fmt.Sprintf("Preview mode: the live daily rotation begins on %s in %s. This puzzle uses the opening answer and does not affect stats.",
			calendar.Format(s.StartDate(), s.loc), s.loc.String())
	case ModeArchive:
		return "Archive mode: progress is saved for this date, but stats and streaks are unchanged."
	}
	if _, ok := s.MaxArchiveDate(); !ok {
		return "Archive browsing unlocks after the first live daily puzzle is released."
	}
	return ""
}

// ShareText renders the spoiler-free result grid of a finished puzzle.
func (s *Session) ShareText() (string, error) {
	progress := s.Progress()
	if !progress.Completed {
		return "", ErrNotFinished
	}
	p := s.puzzle
	result := fmt.Sprintf("X/%d", p.Plan.MaxGuesses)
	if progress.Won {
		result = fmt.Sprintf("%d/%d", len(progress.Guesses), p.Plan.MaxGuesses)
	}
	label := ""
	switch p.Mode {
	case ModeArchive:
		label = " Archive"
	case ModePreview:
		label = " Preview"
	}

	lines := make([]string, 0, len(progress.Guesses)+1)
	lines = append(lines, fmt.Sprintf("bWORDibLE%s %s %s", label, p.DisplayDate, result))
	blocked := strings.Repeat(tileBlocked, max(0, wordlist.MaxLength-p.Plan.Length))
	for _, g := range progress.Guesses {
		var b strings.Builder
		b.WriteString(blocked)
		for _, st := range guess.Evaluate(g, p.Plan.Answer) {
			switch st {
			case guess.Correct:
				b.WriteString(tileCorrect)
			case guess.Present:
				b.WriteString(tilePresent)
			default:
				b.WriteString(tileAbsent)
			}
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n"), nil
}

// Countdown shows the time left until the next daily puzzle, or "Static" when
// the open puzzle is not today's ranked one.
func (s *Session) Countdown(now time.Time) string {
	if s.puzzle.Mode != ModeDaily {
		return "Static"
	}
	hours, minutes := calendar.Until(now, s.loc)
	return fmt.Sprintf("%dh %02dm", hours, minutes)
}

// ArchiveSummary describes how many puzzles have been released.
func (s *Session) ArchiveSummary() string {
	maxKey, ok := s.MaxArchiveDate()
	if !ok {
		return "Archive browsing unlocks once the live daily schedule starts."
	}
	released := calendar.DayDistance(maxKey, s.StartDate()) + 1
	summary := fmt.Sprintf("%d released puzzles are available from %s onward.", released, calendar.Format(s.StartDate(), s.loc))
	if s.opened && s.puzzle.Mode == ModeArchive {
		summary += " Viewing " + s.puzzle.DisplayDate + "."
	}
	return summary
}

// CalendarRange returns the first and last day of the activity calendar.
func (s *Session) CalendarRange() (calendar.Key, calendar.Key) {
	today := s.Today()
	return calendar.Shift(today, -(CalendarWindowDays - 1)), today
}

// CalendarRangeLabel describes the activity calendar window.
func (s *Session) CalendarRangeLabel() string {
	first, last := s.CalendarRange()
	return calendar.Format(first, s.loc) + " to " + calendar.Format(last, s.loc)
}

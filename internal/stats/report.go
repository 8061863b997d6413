package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/bwordible/internal/game"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Today          string
	Summary        Summary
	Distribution   []DistributionRow
	Highlight      int
	Activity       []Day
	RangeLabel     string
	ArchiveSummary string
	Answers        int
	Guesses        int
}

// BuildReport collects everything the stats views show for the session's
// today. Highlight is the guess count of today's ranked win, or zero.
func BuildReport(s *game.Session, answers, guesses int) Report {
	led := s.Ledger()
	today := s.Today()
	report := Report{
		Today:          today.String(),
		Summary:        Summarize(led.Stats(), led.DisplayedStreak(today)),
		Distribution:   Distribution(led.Stats().Distribution),
		Activity:       Activity(led, today, game.CalendarWindowDays),
		RangeLabel:     s.CalendarRangeLabel(),
		ArchiveSummary: s.ArchiveSummary(),
		Answers:        answers,
		Guesses:        guesses,
	}
	if progress := led.Progress(today); progress != nil && progress.Completed && progress.Won && progress.StatsRecorded {
		report.Highlight = len(progress.Guesses)
	}
	return report
}

// RenderReport prints the full plain-text stats report.
func RenderReport(w io.Writer, r Report, totalWidth int, forceColor bool) error {
	if err := RenderSummary(w, r.Summary); err != nil {
		return err
	}
	if err := RenderDistribution(w, r.Distribution, totalWidth, r.Highlight, forceColor); err != nil {
		return err
	}
	if err := RenderCalendar(w, r.RangeLabel, r.Activity); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "Archive"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, r.ArchiveSummary); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Answers: %s  Allowed guesses: %s\n", FormatCount(r.Answers), FormatCount(r.Guesses))
	return err
}

// Package stats derives the player-facing statistics views.
package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/bwordible/internal/model"
)

// Summary holds the headline numbers of the stats screen.
type Summary struct {
	Played        int
	Wins          int
	WinRate       int
	CurrentStreak int
	MaxStreak     int
	Average       string
}

// Summarize combines stored stats with the streak recomputed from progress.
func Summarize(s model.Stats, displayedStreak int) Summary {
	average := "-"
	if avg, ok := s.AverageGuesses(); ok {
		average = strconv.FormatFloat(avg, 'f', 1, 64)
	}
	return Summary{
		Played:        s.Played,
		Wins:          s.Wins,
		WinRate:       s.WinRate(),
		CurrentStreak: displayedStreak,
		MaxStreak:     s.MaxStreak,
		Average:       average,
	}
}

// RenderSummary prints the summary as a two-line table.
func RenderSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintln(w, "Statistics"); err != nil {
		return err
	}
	labels := []string{"Played", "Win %", "Current", "Max", "Average"}
	values := []string{
		strconv.Itoa(s.Played),
		fmt.Sprintf("%d%%", s.WinRate),
		strconv.Itoa(s.CurrentStreak),
		strconv.Itoa(s.MaxStreak),
		s.Average,
	}
	for _, line := range summaryLines(labels, values) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if s.Played == 0 {
		if _, err := fmt.Fprintln(w, "No ranked puzzles finished yet."); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// summaryLines lays labels over values, each column right-aligned to its
// widest cell in display cells.
func summaryLines(labels, values []string) [2]string {
	var top, bottom strings.Builder
	for i, label := range labels {
		value := ""
		if i < len(values) {
			value = values[i]
		}
		width := max(runewidth.StringWidth(label), runewidth.StringWidth(value))
		if i > 0 {
			top.WriteByte(' ')
			bottom.WriteByte(' ')
		}
		top.WriteString(runewidth.FillLeft(label, width))
		bottom.WriteString(runewidth.FillLeft(value, width))
	}
	return [2]string{top.String(), bottom.String()}
}

package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/bwordible/internal/model"
)

const (
	minBarWidth         = 10
	barGlyph            = "█"
	colorGreen          = "\x1b[32m"
	colorReset          = "\x1b[0m"
	terminalWidthBackup = 80
)

// DistributionRow is one bar of the guess distribution.
type DistributionRow struct {
	Guesses  int
	Count    int
	Fraction float64
}

// Distribution returns rows 1..7, extended to the largest recorded bucket up
// to model.MaxGuessCount. Buckets outside that range are ignored. Fractions are
// relative to the largest count.
func Distribution(dist map[int]int) []DistributionRow {
	last := model.MaxDistributionBucket
	peak := 1
	for guesses, count := range dist {
		if guesses < 1 || guesses > model.MaxGuessCount {
			continue
		}
		if count > 0 && guesses > last {
			last = guesses
		}
		if count > peak {
			peak = count
		}
	}
	rows := make([]DistributionRow, 0, last)
	for g := 1; g <= last; g++ {
		count := dist[g]
		rows = append(rows, DistributionRow{
			Guesses:  g,
			Count:    count,
			Fraction: float64(count) / float64(peak),
		})
	}
	return rows
}

// RenderDistribution prints horizontal bars sized to totalWidth. The row for
// highlight guesses is colored when the writer is a terminal.
func RenderDistribution(w io.Writer, rows []DistributionRow, totalWidth, highlight int, forceColor bool) error {
	if _, err := fmt.Fprintln(w, "Guess Distribution"); err != nil {
		return err
	}
	useColor := shouldUseColor(w, forceColor)
	barWidth := BarWidthFor(totalWidth)
	for _, row := range rows {
		n := int(math.Round(row.Fraction * float64(barWidth)))
		if row.Count > 0 && n == 0 {
			n = 1
		}
		bar := strings.Repeat(barGlyph, n)
		if useColor && row.Guesses == highlight {
			bar = colorGreen + bar + colorReset
		}
		if _, err := fmt.Fprintf(w, "%d %s %d\n", row.Guesses, bar, row.Count); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// BarWidthFor computes the widest bar that fits in totalWidth next to the
// label and count columns.
func BarWidthFor(totalWidth int) int {
	if totalWidth <= 0 {
		totalWidth = terminalWidthBackup
	}
	width := totalWidth - len("8 ") - len(" 9999")
	if width < minBarWidth {
		width = minBarWidth
	}
	return width
}

// TerminalWidth returns the width of stdout, or 80 when it is not a terminal.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func shouldUseColor(w io.Writer, force bool) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if force {
		return true
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

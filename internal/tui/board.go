package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bwordible/internal/guess"
	"github.com/verte-zerg/bwordible/internal/wordlist"
)

var (
	tileBase     = lipgloss.NewStyle().Width(3).Align(lipgloss.Center).Bold(true)
	blockedStyle = tileBase.Foreground(lipgloss.Color("#3A3A3A")).Background(lipgloss.Color("#1C1C1C"))
	emptyStyle   = tileBase.Foreground(lipgloss.Color("#4A4A4A"))
	typedStyle   = tileBase.Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#3A3A3A"))
	correctStyle = tileBase.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#538D4E"))
	presentStyle = tileBase.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#B59F3B"))
	absentStyle  = tileBase.Foreground(lipgloss.Color("#B0B0B0")).Background(lipgloss.Color("#2A2A2A"))

	keyBase        = lipgloss.NewStyle().Padding(0, 1)
	keyUnusedStyle = keyBase.Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#4A4A4A"))
)

var keyboardRows = []string{"QWERTYUIOP", "ASDFGHJKL", "ZXCVBNM"}

func tileStyle(st guess.Status) lipgloss.Style {
	switch st {
	case guess.Correct:
		return correctStyle
	case guess.Present:
		return presentStyle
	default:
		return absentStyle
	}
}

// boardRows renders one line per allowed guess. Each line has
// wordlist.MaxLength cells, the leading ones blocked for shorter words.
func boardRows(guesses []string, evaluations [][]guess.Status, current string, length, maxGuesses int) []string {
	blocked := wordlist.MaxLength - length
	if blocked < 0 {
		blocked = 0
	}
	rows := make([]string, 0, maxGuesses)
	for r := 0; r < maxGuesses; r++ {
		cells := make([]string, 0, blocked+length)
		for i := 0; i < blocked; i++ {
			cells = append(cells, blockedStyle.Render("·"))
		}
		for i := 0; i < length; i++ {
			cells = append(cells, boardCell(r, i, guesses, evaluations, current))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return rows
}

func boardCell(row, col int, guesses []string, evaluations [][]guess.Status, current string) string {
	switch {
	case row < len(guesses) && col < len(guesses[row]):
		word := guesses[row]
		st := guess.Absent
		if row < len(evaluations) && col < len(evaluations[row]) {
			st = evaluations[row][col]
		}
		return tileStyle(st).Render(string(word[col]))
	case row < len(guesses):
		return emptyStyle.Render("_")
	case row == len(guesses) && col < len(current):
		return typedStyle.Render(string(current[col]))
	default:
		return emptyStyle.Render("_")
	}
}

// keyboardLines renders the on-screen keyboard colored by best status.
func keyboardLines(statuses map[byte]guess.Status) []string {
	lines := make([]string, 0, len(keyboardRows))
	for _, row := range keyboardRows {
		keys := make([]string, 0, len(row))
		for i := 0; i < len(row); i++ {
			keys = append(keys, keyStyle(statuses, row[i]).Render(string(row[i])))
		}
		lines = append(lines, strings.Join(keys, " "))
	}
	return lines
}

func keyStyle(statuses map[byte]guess.Status, letter byte) lipgloss.Style {
	st, ok := statuses[letter]
	if !ok {
		return keyUnusedStyle
	}
	switch st {
	case guess.Correct:
		return keyBase.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#538D4E"))
	case guess.Present:
		return keyBase.Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#B59F3B"))
	default:
		return keyBase.Foreground(lipgloss.Color("#6E6E6E")).Background(lipgloss.Color("#1C1C1C"))
	}
}

// Package tui provides the Bubble Tea puzzle interface.
package tui

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// wrapText breaks s into lines no wider than width, splitting at spaces.
// Words wider than width are split by display cells.
func wrapText(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	var lines []string
	for _, para := range strings.Split(s, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		var line strings.Builder
		lineWidth := 0
		for _, word := range words {
			wordWidth := runewidth.StringWidth(word)
			for wordWidth > width {
				if lineWidth > 0 {
					lines = append(lines, line.String())
					line.Reset()
					lineWidth = 0
				}
				head := runewidth.Truncate(word, width, "")
				if head == "" {
					_, size := utf8.DecodeRuneInString(word)
					head = word[:size]
				}
				lines = append(lines, head)
				word = word[len(head):]
				wordWidth = runewidth.StringWidth(word)
			}
			if word == "" {
				continue
			}
			switch {
			case lineWidth == 0:
				line.WriteString(word)
				lineWidth = wordWidth
			case lineWidth+1+wordWidth <= width:
				line.WriteByte(' ')
				line.WriteString(word)
				lineWidth += 1 + wordWidth
			default:
				lines = append(lines, line.String())
				line.Reset()
				line.WriteString(word)
				lineWidth = wordWidth
			}
		}
		if lineWidth > 0 {
			lines = append(lines, line.String())
		}
	}
	return lines
}

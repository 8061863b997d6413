// Package wordlist provides word normalization helpers.
package wordlist

import "strings"

const (
	// MinLength is the shortest playable word.
	MinLength = 4
	// MaxLength is the longest playable word and the board width.
	MaxLength = 6
)

// Normalize trims and uppercases a word.
func Normalize(word string) string {
	return strings.ToUpper(strings.TrimSpace(word))
}

// IsPlayable reports whether word is MinLength-MaxLength uppercase ASCII letters.
func IsPlayable(word string) bool {
	if len(word) < MinLength || len(word) > MaxLength {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i]
		if ch < 'A' || ch > 'Z' {
			return false
		}
	}
	return true
}

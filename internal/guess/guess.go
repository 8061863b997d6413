// Package guess scores guesses against an answer.
package guess

// Status classifies one letter of a guess.
type Status string

const (
	Absent  Status = "absent"
	Present Status = "present"
	Correct Status = "correct"
)

// Rank orders statuses for keyboard aggregation; unknown statuses rank 0.
func (s Status) Rank() int {
	switch s {
	case Absent:
		return 1
	case Present:
		return 2
	case Correct:
		return 3
	default:
		return 0
	}
}

// Evaluate classifies each letter of word against answer. Both are expected to
// be uppercase ASCII of equal length; extra guess letters are marked absent.
//
// Exact matches are resolved first so that a repeated guess letter can never
// claim more present/correct marks than the answer holds.
func Evaluate(word, answer string) []Status {
	statuses := make([]Status, len(word))
	remaining := map[byte]int{}

	for i := range statuses {
		statuses[i] = Absent
	}
	for i := 0; i < len(answer); i++ {
		if i < len(word) && word[i] == answer[i] {
			statuses[i] = Correct
			continue
		}
		remaining[answer[i]]++
	}
	for i := 0; i < len(word) && i < len(answer); i++ {
		if statuses[i] == Correct {
			continue
		}
		if remaining[word[i]] > 0 {
			statuses[i] = Present
			remaining[word[i]]--
		}
	}
	return statuses
}

// KeyboardStatuses returns the best status observed for every letter across
// guesses, with correct > present > absent.
func KeyboardStatuses(guesses []string, answer string) map[byte]Status {
	out := map[byte]Status{}
	for _, word := range guesses {
		for i, status := range Evaluate(word, answer) {
			letter := word[i]
			if status.Rank() > out[letter].Rank() {
				out[letter] = status
			}
		}
	}
	return out
}

// Solved reports whether every status is correct.
func Solved(statuses []Status) bool {
	if len(statuses) == 0 {
		return false
	}
	for _, s := range statuses {
		if s != Correct {
			return false
		}
	}
	return true
}

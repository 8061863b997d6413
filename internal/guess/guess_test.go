package guess

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func statuses(code string) []Status {
	out := make([]Status, 0, len(code))
	for _, c := range code {
		switch c {
		case 'C':
			out = append(out, Correct)
		case 'P':
			out = append(out, Present)
		default:
			out = append(out, Absent)
		}
	}
	return out
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		guess  string
		answer string
		want   string
	}{
		{"RIVER", "RIVER", "CCCCC"},
		{"TORAH", "RIVER", "--P--"},
		{"EERIE", "LEVEL", "PC---"},
		{"LLAMA", "LEVEL", "CP---"},
		{"SPEED", "ABIDE", "--P-P"},
		{"ABBA", "BABE", "PPC-"},
		{"EXODUS", "EXODUS", "CCCCCC"},
		{"AAAA", "ABBA", "C--C"},
	}
	for _, tc := range cases {
		got := Evaluate(tc.guess, tc.answer)
		assert.Equal(t, statuses(tc.want), got, "%s vs %s", tc.guess, tc.answer)
	}
}

func TestEvaluateNeverOvercountsLetters(t *testing.T) {
	pairs := [][2]string{
		{"EERIE", "LEVEL"},
		{"EEEEE", "LEVEL"},
		{"LLLLL", "LEVEL"},
		{"SASSY", "ASSET"},
		{"ALLOT", "LOYAL"},
	}
	for _, p := range pairs {
		word, answer := p[0], p[1]
		result := Evaluate(word, answer)
		marked := map[byte]int{}
		for i, s := range result {
			if s != Absent {
				marked[word[i]]++
			}
		}
		for letter, count := range marked {
			assert.LessOrEqual(t, count, strings.Count(answer, string(letter)), "%s vs %s letter %c", word, answer, letter)
		}
	}
}

func TestEvaluateExactMatchIsAllCorrect(t *testing.T) {
	for _, w := range []string{"ABBA", "RIVER", "LEVEL", "EXODUS"} {
		assert.True(t, Solved(Evaluate(w, w)), w)
	}
	assert.False(t, Solved(Evaluate("TORAH", "RIVER")))
	assert.False(t, Solved(nil))
}

func TestKeyboardStatusesKeepBestStatus(t *testing.T) {
	// E is present in the first guess and correct in the second.
	keys := KeyboardStatuses([]string{"EERIE", "LEVEL"}, "LEVEL")
	assert.Equal(t, Correct, keys['E'])
	assert.Equal(t, Correct, keys['L'])
	assert.Equal(t, Absent, keys['R'])

	// A later absent mark must not downgrade an earlier correct one.
	keys = KeyboardStatuses([]string{"RIVER", "TORAH"}, "RAVEN")
	assert.Equal(t, Correct, keys['R'])
	assert.Equal(t, Absent, keys['T'])
	_, seen := keys['Z']
	assert.False(t, seen)
}

func TestStatusRank(t *testing.T) {
	assert.Less(t, Absent.Rank(), Present.Rank())
	assert.Less(t, Present.Rank(), Correct.Rank())
	assert.Zero(t, Status("").Rank())
}

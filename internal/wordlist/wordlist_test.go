package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadAnswersJSONMixedEntries(t *testing.T) {
	path := writeFile(t, "answers.json", `["river", {"word": "Torah", "ref": "Gen 1"}, "ABBA"]`)
	words, err := LoadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"RIVER", "TORAH", "ABBA"}, words)
}

func TestLoadAnswersTextLines(t *testing.T) {
	path := writeFile(t, "answers.txt", "# biblical words\nmanna\n\n exodus \n")
	words, err := LoadAnswers(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"MANNA", "EXODUS"}, words)
}

func TestLoadAnswersRejectsBadCorpus(t *testing.T) {
	_, err := ParseAnswers([]byte(`[]`))
	assert.True(t, errors.Is(err, ErrEmptyCorpus))

	_, err = ParseAnswers([]byte(`["RIVER", "river"]`))
	assert.ErrorContains(t, err, "duplicate")

	_, err = ParseAnswers([]byte(`["AXE"]`))
	assert.ErrorContains(t, err, "4-6 letter")

	_, err = ParseAnswers([]byte(`{"word": "RIVER"}`))
	assert.Error(t, err)
}

func TestLoadAnswersMissingFile(t *testing.T) {
	_, err := LoadAnswers(filepath.Join(t.TempDir(), "missing.json"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParseGuesses(t *testing.T) {
	g, err := ParseGuesses([]byte(`{"by_length": {"5": ["crane", "SLATE"], "4": ["abel"]}, "metadata": {"count_total": 12000}}`))
	require.NoError(t, err)
	assert.True(t, g.Allows("CRANE"))
	assert.True(t, g.Allows("slate"))
	assert.True(t, g.Allows("ABEL"))
	assert.False(t, g.Allows("ABELS"))
	assert.False(t, g.Allows("PSALM"))
	assert.Equal(t, 12000, g.Total())
}

func TestParseGuessesCountsWithoutMetadata(t *testing.T) {
	g, err := ParseGuesses([]byte(`{"by_length": {"5": ["crane", "slate"]}}`))
	require.NoError(t, err)
	assert.Equal(t, 2, g.Total())

	_, err = ParseGuesses([]byte(`{"by_length": {"five": ["crane"]}}`))
	assert.Error(t, err)
}

func TestLoadGuessesEmptyPath(t *testing.T) {
	g, err := LoadGuesses("")
	require.NoError(t, err)
	assert.False(t, g.Allows("CRANE"))
	assert.Equal(t, 0, g.Total())

	var nilGuesses *Guesses
	assert.False(t, nilGuesses.Allows("CRANE"))
}

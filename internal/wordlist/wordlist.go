// Package wordlist loads the answer corpus and the allowed-guess list.
package wordlist

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ErrEmptyCorpus reports an answer file with no words.
var ErrEmptyCorpus = errors.New("word list is empty")

// Guesses holds additionally accepted guess words grouped by length.
type Guesses struct {
	byLength map[int]map[string]struct{}
	total    int
}

type answerEntry struct {
	Word string `json:"word"`
}

type guessFile struct {
	ByLength map[string][]string `json:"by_length"`
	Metadata struct {
		CountTotal int `json:"count_total"`
	} `json:"metadata"`
}

// LoadAnswers reads the answer corpus. JSON files hold an array of bare
// strings or objects with a "word" field; any other file is read one word per
// line. Words are uppercased and must be unique 4-6 letter A-Z words.
func LoadAnswers(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isJSON(path, data) {
		return ParseAnswers(data)
	}
	raw, err := readLines(data)
	if err != nil {
		return nil, err
	}
	return normalizeAnswers(raw)
}

// ParseAnswers decodes a JSON answer array.
func ParseAnswers(data []byte) ([]string, error) {
	raw, err := decodeAnswers(data)
	if err != nil {
		return nil, err
	}
	return normalizeAnswers(raw)
}

func decodeAnswers(data []byte) ([]string, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode answers: %w", err)
	}
	words := make([]string, 0, len(entries))
	for i, entry := range entries {
		var word string
		if err := json.Unmarshal(entry, &word); err == nil {
			words = append(words, word)
			continue
		}
		var obj answerEntry
		if err := json.Unmarshal(entry, &obj); err != nil {
			return nil, fmt.Errorf("failed to decode answer %d: %w", i, err)
		}
		words = append(words, obj.Word)
	}
	return words, nil
}

func normalizeAnswers(raw []string) ([]string, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyCorpus
	}
	seen := make(map[string]struct{}, len(raw))
	words := make([]string, 0, len(raw))
	for i, w := range raw {
		word := Normalize(w)
		if !IsPlayable(word) {
			return nil, fmt.Errorf("answer %d %q is not a 4-6 letter word", i, w)
		}
		if _, dup := seen[word]; dup {
			return nil, fmt.Errorf("duplicate answer %q", word)
		}
		seen[word] = struct{}{}
		words = append(words, word)
	}
	return words, nil
}

// LoadGuesses reads the allowed-guess JSON file. A missing path yields an
// empty list, in which case only answers are accepted.
func LoadGuesses(path string) (*Guesses, error) {
	if path == "" {
		return &Guesses{byLength: map[int]map[string]struct{}{}}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseGuesses(data)
}

// ParseGuesses decodes {"by_length": {"5": [...]}, "metadata": {"count_total": n}}.
func ParseGuesses(data []byte) (*Guesses, error) {
	var file guessFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode guesses: %w", err)
	}
	g := &Guesses{byLength: make(map[int]map[string]struct{}, len(file.ByLength))}
	count := 0
	for lengthKey, words := range file.ByLength {
		length, err := strconv.Atoi(lengthKey)
		if err != nil {
			return nil, fmt.Errorf("invalid guess length %q: %w", lengthKey, err)
		}
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[Normalize(w)] = struct{}{}
		}
		g.byLength[length] = set
		count += len(set)
	}
	g.total = file.Metadata.CountTotal
	if g.total == 0 {
		g.total = count
	}
	return g, nil
}

// Allows reports whether word is in the list for its length.
func (g *Guesses) Allows(word string) bool {
	if g == nil {
		return false
	}
	_, ok := g.byLength[len(word)][Normalize(word)]
	return ok
}

// Total returns the advertised number of allowed guesses.
func (g *Guesses) Total() int {
	if g == nil {
		return 0
	}
	return g.total
}

func isJSON(path string, data []byte) bool {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return true
	}
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func readLines(data []byte) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

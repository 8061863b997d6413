package ledger

import (
	"encoding/json"
	"fmt"

	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/model"
)

// Decode parses a save document. Missing fields are backfilled with defaults
// and distribution buckets no win can reach are dropped; malformed input is an
// error.
func Decode(raw string) (model.Save, error) {
	save := model.NewSave()
	if err := json.Unmarshal([]byte(raw), &save); err != nil {
		return model.NewSave(), fmt.Errorf("failed to decode save: %w", err)
	}
	normalize(&save)
	return save, nil
}

// Encode serializes a save document.
func Encode(save model.Save) (string, error) {
	data, err := json.Marshal(save)
	if err != nil {
		return "", fmt.Errorf("failed to encode save: %w", err)
	}
	return string(data), nil
}

func normalize(save *model.Save) {
	if save.Puzzles == nil {
		save.Puzzles = map[calendar.Key]*model.PuzzleProgress{}
	}
	for key, progress := range save.Puzzles {
		if progress == nil {
			delete(save.Puzzles, key)
			continue
		}
		if progress.Guesses == nil {
			progress.Guesses = []string{}
		}
	}
	if save.Stats.Distribution == nil {
		save.Stats.Distribution = map[int]int{}
	}
	for guesses := range save.Stats.Distribution {
		if guesses < 1 || guesses > model.MaxGuessCount {
			delete(save.Stats.Distribution, guesses)
		}
	}
	for i := 1; i <= model.MaxDistributionBucket; i++ {
		if _, ok := save.Stats.Distribution[i]; !ok {
			save.Stats.Distribution[i] = 0
		}
	}
}

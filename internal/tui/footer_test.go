package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/bwordible/internal/game"
	"github.com/verte-zerg/bwordible/internal/ledger"
	"github.com/verte-zerg/bwordible/internal/schedule"
	"github.com/verte-zerg/bwordible/internal/store"
)

func newTestModel(t *testing.T, today string, copyFn func(string) error) *Model {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "bwordible.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()
	led, err := ledger.Open(ctx, st, ledger.Options{})
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	loc, err := time.LoadLocation(game.DefaultTimeZone)
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	sched := schedule.New([]string{"RIVER", "TORAH", "MANNA", "ANGEL", "PSALM"}, "", "")
	session := game.New(sched, led, nil, game.Options{Location: loc, SimulatedToday: today})
	if _, err := session.Open(ctx, ""); err != nil {
		t.Fatalf("open puzzle: %v", err)
	}
	now := time.Date(2026, time.March, 2, 20, 30, 0, 0, loc)
	return NewModel(session, Options{
		Now:       func() time.Time { return now },
		Clipboard: copyFn,
	})
}

func TestViewResetsStaleSavedBoard(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(filepath.Join(t.TempDir(), "bwordible.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	if err := st.Put(ctx, ledger.DefaultStorageKey, `{"puzzles":{"2026-03-02":{"guesses":["ABBA"],"currentGuess":"ABBAB"}}}`); err != nil {
		t.Fatalf("seed save: %v", err)
	}
	led, err := ledger.Open(ctx, st, ledger.Options{})
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	loc, err := time.LoadLocation(game.DefaultTimeZone)
	if err != nil {
		t.Fatalf("load zone: %v", err)
	}
	sched := schedule.New([]string{"RIVER", "TORAH", "MANNA", "ANGEL", "PSALM"}, "", "")
	session := game.New(sched, led, nil, game.Options{Location: loc, SimulatedToday: "2026-03-02"})
	if _, err := session.Open(ctx, ""); err != nil {
		t.Fatalf("open puzzle: %v", err)
	}
	m := NewModel(session, Options{})

	view := m.View()
	if !strings.Contains(view, "Guess the Bible-themed word.") {
		t.Fatalf("expected a fresh board: %q", view)
	}
	progress := session.Progress()
	if len(progress.Guesses) != 0 || progress.CurrentGuess != "" {
		t.Fatalf("expected stale progress to be reset, got %+v", progress)
	}
}

func typeKeys(m *Model, word string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(word)})
}

func pressEnter(m *Model) {
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
}

func TestRenderFooterFormats(t *testing.T) {
	m := newTestModel(t, "2026-03-02", nil)
	out := m.renderFooter()
	if !containsAll(out, []string{"Streak 0", "Next 3h 30m", "Today 2026-03-02", "ctrl+s share"}) {
		t.Fatalf("footer missing expected segments: %s", out)
	}
}

func TestKeysDrivePuzzle(t *testing.T) {
	m := newTestModel(t, "2026-03-02", nil)
	typeKeys(m, "tor")
	pressEnter(m)
	if m.toast != "Enter a 5-letter word." {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := m.session.Progress().CurrentGuess; got != "TO" {
		t.Fatalf("unexpected current guess: %q", got)
	}
	typeKeys(m, "rah")
	pressEnter(m)
	progress := m.session.Progress()
	if !progress.Completed || !progress.Won {
		t.Fatalf("expected a win, got %+v", progress)
	}
	if !strings.Contains(m.View(), "Solved in 1/7.") {
		t.Fatalf("expected solved status in view")
	}
	pressEnter(m)
	if m.toast != "This puzzle is already finished." {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
}

func TestShareCopiesResult(t *testing.T) {
	var copied string
	m := newTestModel(t, "2026-03-02", func(text string) error {
		copied = text
		return nil
	})
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.toast != "Finish the puzzle before sharing." {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
	typeKeys(m, "TORAH")
	pressEnter(m)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if m.toast != "Result copied to clipboard." {
		t.Fatalf("unexpected toast: %q", m.toast)
	}
	if !strings.HasPrefix(copied, "bWORDibLE Mar 2, 2026 1/7") {
		t.Fatalf("unexpected share text: %q", copied)
	}
}

func TestShareFallsBackToToast(t *testing.T) {
	m := newTestModel(t, "2026-03-02", func(string) error {
		return errors.New("no clipboard")
	})
	typeKeys(m, "TORAH")
	pressEnter(m)
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	if !strings.HasPrefix(m.toast, "bWORDibLE Mar 2, 2026 1/7\n") {
		t.Fatalf("expected share text in toast, got %q", m.toast)
	}
}

func TestTickExpiresToast(t *testing.T) {
	m := newTestModel(t, "2026-03-02", nil)
	pressEnter(m)
	if m.toast == "" {
		t.Fatalf("expected a toast")
	}
	m.toastUntil = m.now().Add(-time.Second)
	_, cmd := m.Update(tickMsg(m.now()))
	if m.toast != "" {
		t.Fatalf("expected toast to expire")
	}
	if cmd == nil {
		t.Fatalf("expected next tick")
	}
}

func containsAll(haystack string, needles []string) bool {
	for _, needle := range needles {
		if !strings.Contains(haystack, needle) {
			return false
		}
	}
	return true
}

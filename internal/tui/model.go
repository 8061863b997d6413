package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/bwordible/internal/game"
)

const (
	toastDuration      = 2200 * time.Millisecond
	shareToastDuration = 5 * time.Second
	tickInterval       = time.Second
	maxTextWidth       = 60
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Italic(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	toastStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#1C1C1C")).Background(lipgloss.Color("#F0F0F0")).Padding(0, 1)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

type tickMsg time.Time

// Options configures the puzzle UI.
type Options struct {
	Logger *zap.Logger
	// Now defaults to time.Now.
	Now func() time.Time
	// Clipboard defaults to the system clipboard.
	Clipboard func(string) error
}

// Model implements the Bubble Tea puzzle UI over an opened game session.
type Model struct {
	session *game.Session
	logger  *zap.Logger
	now     func() time.Time
	copy    func(string) error

	width  int
	height int

	toast      string
	toastUntil time.Time
	countdown  string
	errMsg     string
}

// NewModel constructs a puzzle UI model. The session must already have a
// puzzle open.
func NewModel(session *game.Session, opts Options) *Model {
	m := &Model{
		session: session,
		logger:  opts.Logger,
		now:     opts.Now,
		copy:    opts.Clipboard,
	}
	if m.logger == nil {
		m.logger = zap.NewNop()
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.copy == nil {
		m.copy = clipboard.WriteAll
	}
	m.countdown = session.Countdown(m.now())
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		now := m.now()
		m.countdown = m.session.Countdown(now)
		if m.toast != "" && !now.Before(m.toastUntil) {
			m.toast = ""
		}
		return m, tick()
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlS:
			m.share()
			return m, nil
		case tea.KeyEnter:
			m.submit()
			return m, nil
		case tea.KeyBackspace, tea.KeyDelete:
			if _, err := m.session.Backspace(context.Background()); err != nil {
				m.reportErr(err)
			}
			return m, nil
		case tea.KeyRunes:
			m.handleRunes(msg.Runes)
			return m, nil
		default:
			return m, nil
		}
	default:
		return m, nil
	}
}

func (m *Model) handleRunes(runes []rune) {
	for _, r := range runes {
		if _, err := m.session.Type(context.Background(), r); err != nil {
			m.reportErr(err)
			return
		}
	}
}

func (m *Model) submit() {
	res, err := m.session.Submit(context.Background())
	if err != nil {
		m.reportErr(err)
	}
	if res.Toast != "" {
		m.showToast(res.Toast, toastDuration)
	}
}

func (m *Model) share() {
	text, err := m.session.ShareText()
	if errors.Is(err, game.ErrNotFinished) {
		m.showToast("Finish the puzzle before sharing.", toastDuration)
		return
	}
	if err := m.copy(text); err != nil {
		m.logger.Warn("clipboard unavailable", zap.Error(err))
		m.showToast(text, shareToastDuration)
		return
	}
	m.showToast("Result copied to clipboard.", toastDuration)
}

func (m *Model) showToast(text string, d time.Duration) {
	m.toast = text
	m.toastUntil = m.now().Add(d)
}

func (m *Model) reportErr(err error) {
	m.errMsg = err.Error()
	m.logger.Error("puzzle action failed", zap.Error(err))
}

// View implements tea.Model.
func (m *Model) View() string {
	p := m.session.Puzzle()
	progress := m.session.Progress()
	textWidth := maxTextWidth
	if m.width > 0 && m.width < textWidth {
		textWidth = m.width
	}

	lines := []string{
		titleStyle.Render("bWORDibLE"),
		headerStyle.Render(fmt.Sprintf("%s · %s", p.Title(), p.DisplayDate)),
		headerStyle.Render(fmt.Sprintf("%s · %s", p.ModeLabel(), p.Meta())),
	}
	if notice := m.session.Notice(); notice != "" {
		for _, line := range wrapText(notice, textWidth) {
			lines = append(lines, noticeStyle.Render(line))
		}
	}
	lines = append(lines, "")
	lines = append(lines, boardRows(progress.Guesses, m.session.Evaluations(), progress.CurrentGuess, p.Plan.Length, p.Plan.MaxGuesses)...)
	lines = append(lines, "")
	for _, line := range wrapText(m.session.StatusMessage(), textWidth) {
		lines = append(lines, statusStyle.Render(line))
	}
	if m.toast != "" {
		for _, line := range strings.Split(m.toast, "\n") {
			lines = append(lines, toastStyle.Render(line))
		}
	}
	if m.errMsg != "" {
		lines = append(lines, errorStyle.Render(m.errMsg))
	}
	lines = append(lines, "")
	lines = append(lines, keyboardLines(m.session.KeyboardStatuses())...)
	lines = append(lines, "", m.renderFooter())

	content := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderFooter() string {
	segments := []string{
		fmt.Sprintf("Streak %d", m.session.DisplayedStreak()),
		"Next " + m.countdown,
	}
	if m.session.Simulated() {
		segments = append(segments, "Today "+m.session.Today().String())
	}
	segments = append(segments, "enter submit · ctrl+s share · esc quit")
	return footerStyle.Render(strings.Join(segments, "  "))
}

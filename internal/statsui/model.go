// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/game"
	"github.com/verte-zerg/bwordible/internal/stats"
)

// Tabs, in display order.
const (
	TabOverview = iota
	TabCalendar
	TabArchive
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	monthStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	session *game.Session
	answers int
	guesses int

	report stats.Report

	tabs      []string
	activeTab int
	viewports []viewport.Model

	month        calendar.Key
	page         stats.ArchiveMonth
	archiveTable table.Model
	archiveKeys  []calendar.Key
	selected     calendar.Key

	width  int
	height int
}

// NewModel constructs a stats UI model. answers and guesses are the corpus
// sizes shown on the overview.
func NewModel(session *game.Session, answers, guesses, startTab int) *Model {
	m := &Model{
		session: session,
		answers: answers,
		guesses: guesses,
		tabs:    []string{"Overview", "Calendar", "Archive"},
	}
	if startTab >= 0 && startTab < len(m.tabs) {
		m.activeTab = startTab
	}
	m.viewports = make([]viewport.Model, TabArchive)
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.archiveTable = buildArchiveTable(nil, 0, 1)
	m.month = m.archiveMonthSeed()
	m.refreshReport()
	return m
}

// Selected returns the archive date picked with enter.
func (m *Model) Selected() (calendar.Key, bool) {
	return m.selected, m.selected != ""
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			return m, tea.Quit
		}
		if m.activeTab == TabArchive {
			m.archiveTable.Focus()
		} else {
			m.archiveTable.Blur()
		}
		switch msg.String() {
		case "left", "h":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "[":
			m.changeMonth(-1)
			return m, nil
		case "]":
			m.changeMonth(1)
			return m, nil
		case "enter":
			if m.activeTab == TabArchive {
				if key, ok := m.selectedRow(); ok {
					m.selected = key
					return m, tea.Quit
				}
			}
			return m, nil
		case "g", "home":
			if m.activeTab == TabArchive {
				m.archiveTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == TabArchive {
				m.archiveTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == TabArchive {
				var cmd tea.Cmd
				m.archiveTable, cmd = m.archiveTable.Update(msg)
				return m, cmd
			}
			vp := m.viewports[m.activeTab]
			var cmd tea.Cmd
			vp, cmd = vp.Update(msg)
			m.viewports[m.activeTab] = vp
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderHelp(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) archiveMonthSeed() calendar.Key {
	if p := m.session.Puzzle(); p.Mode == game.ModeArchive {
		return p.Key
	}
	if maxKey, ok := m.session.MaxArchiveDate(); ok {
		return maxKey
	}
	return m.session.StartDate()
}

func (m *Model) changeMonth(delta int) {
	if m.activeTab != TabArchive {
		return
	}
	next := stats.ClampArchiveMonth(calendar.ShiftMonth(m.month, delta), m.session.StartDate(), m.session.Today())
	if next == calendar.ShiftMonth(m.month, 0) {
		return
	}
	m.month = next
	m.refreshArchive()
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := lipgloss.Height(activeNavStyle.Render("X"))
	if tabsHeight < 1 {
		tabsHeight = 1
	}
	headerHeight = tabsHeight + 1
	footerHeight = 1
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, vpHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = vpHeight
	}
	m.archiveTable.SetWidth(m.width)
	m.archiveTable.SetHeight(maxInt(1, vpHeight-len(m.archiveGridLines())-1))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == TabArchive {
		m.archiveTable.Focus()
	} else {
		m.archiveTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	tabs := padLines(m.renderTabs(), m.width)
	summary := fmt.Sprintf("Today: %s  Time zone: %s", calendar.Format(m.session.Today(), m.session.Location()), m.session.Location())
	return tabs + "\n" + padLines(headerStyle.Render(truncateLine(summary, m.width)), m.width)
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Quit: q"
	if m.activeTab == TabArchive {
		help = "Nav: left/right  Month: [ ]  Select: up/down  Play: enter  Quit: q"
	}
	return headerStyle.Render(truncateLine(help, m.width))
}

func (m *Model) renderBody(height int) string {
	if m.activeTab == TabArchive {
		lines := m.archiveGridLines()
		if m.page.Locked {
			lines = append(lines, "", m.session.ArchiveSummary())
			return fitLines(strings.Join(lines, "\n"), m.width, height)
		}
		lines = append(lines, tableMutedStyle.Render(m.archiveTable.View()))
		return fitLines(strings.Join(lines, "\n"), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) refreshReport() {
	m.report = stats.BuildReport(m.session, m.answers, m.guesses)
	m.refreshArchive()
	m.renderTabContents()
}

func (m *Model) refreshArchive() {
	m.page = stats.BuildArchiveMonth(m.session.Ledger(), m.month, m.session.StartDate(), m.session.Today())
	rows := make([]table.Row, 0, len(m.page.Days))
	m.archiveKeys = m.archiveKeys[:0]
	for i := len(m.page.Days) - 1; i >= 0; i-- {
		day := m.page.Days[i]
		if !day.Playable {
			continue
		}
		guesses := "-"
		if progress := m.session.Ledger().Progress(day.Key); progress != nil && len(progress.Guesses) > 0 {
			guesses = strconv.Itoa(len(progress.Guesses))
		}
		rows = append(rows, table.Row{
			calendar.Format(day.Key, m.session.Location()),
			stats.DescribeDay(day),
			guesses,
		})
		m.archiveKeys = append(m.archiveKeys, day.Key)
	}
	m.archiveTable.SetRows(rows)
	m.archiveTable.GotoTop()
	m.updateLayout()
}

func (m *Model) selectedRow() (calendar.Key, bool) {
	idx := m.archiveTable.Cursor()
	if idx < 0 || idx >= len(m.archiveKeys) {
		return "", false
	}
	return m.archiveKeys[idx], true
}

func (m *Model) archiveGridLines() []string {
	nav := m.page.Label
	if m.page.HasPrev {
		nav = "< " + nav
	}
	if m.page.HasNext {
		nav += " >"
	}
	lines := []string{monthStyle.Render(nav), " " + strings.Join(stats.WeekdayLabels, "  ")}
	var row strings.Builder
	row.WriteString(strings.Repeat("    ", m.page.Leading))
	col := m.page.Leading
	for _, day := range m.page.Days {
		mark := " "
		if day.Playable {
			mark = stats.StatusMark(day.Status)
		}
		fmt.Fprintf(&row, "%3d%s", day.Key.Day(), mark)
		col++
		if col == 7 {
			lines = append(lines, strings.TrimRight(row.String(), " "))
			row.Reset()
			col = 0
		}
	}
	if row.Len() > 0 {
		lines = append(lines, strings.TrimRight(row.String(), " "))
	}
	return lines
}

func (m *Model) renderTabContents() {
	if len(m.viewports) == 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.viewports[TabOverview].SetContent(renderOverview(m.report, width))
	m.viewports[TabCalendar].SetContent(renderCalendar(m.report))
}

func renderOverview(report stats.Report, width int) string {
	cards := renderSummaryCards(report.Summary, width)
	var buf bytes.Buffer
	if err := stats.RenderDistribution(&buf, report.Distribution, width, report.Highlight, true); err != nil {
		return fmt.Sprintf("Failed to render distribution: %v", err)
	}
	lines := []string{
		cards,
		"",
		strings.TrimRight(buf.String(), "\n"),
		"",
		report.ArchiveSummary,
		fmt.Sprintf("Answers: %s  Allowed guesses: %s", stats.FormatCount(report.Answers), stats.FormatCount(report.Guesses)),
	}
	return strings.Join(lines, "\n")
}

func renderSummaryCards(s stats.Summary, width int) string {
	cards := []string{
		metricCard("Played", strconv.Itoa(s.Played)),
		metricCard("Win %", fmt.Sprintf("%d%%", s.WinRate)),
		metricCard("Streak", strconv.Itoa(s.CurrentStreak)),
		metricCard("Max Streak", strconv.Itoa(s.MaxStreak)),
		metricCard("Avg Guesses", s.Average),
	}
	if width < 80 {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderCalendar(report stats.Report) string {
	var buf bytes.Buffer
	if err := stats.RenderCalendar(&buf, report.RangeLabel, report.Activity); err != nil {
		return fmt.Sprintf("Failed to render calendar: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func buildArchiveTable(rows []table.Row, width, height int) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 14},
		{Title: "Result", Width: 8},
		{Title: "Guesses", Width: 7},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(maxInt(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(tableStyles())
	return t
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

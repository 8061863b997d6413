package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/bwordible/internal/calendar"
	"github.com/verte-zerg/bwordible/internal/ledger"
)

// WeekdayLabels heads calendar grids, Sunday first.
var WeekdayLabels = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}

// DayClassifier reports the calendar status of a date.
type DayClassifier interface {
	DayStatus(key, today calendar.Key) ledger.DayStatus
}

// Day is one cell of the activity calendar.
type Day struct {
	Key    calendar.Key
	Status ledger.DayStatus
}

// Activity returns the total days ending today, oldest first.
func Activity(c DayClassifier, today calendar.Key, total int) []Day {
	if total <= 0 {
		return nil
	}
	first := calendar.Shift(today, -(total - 1))
	days := make([]Day, 0, total)
	for i := 0; i < total; i++ {
		key := calendar.Shift(first, i)
		days = append(days, Day{Key: key, Status: c.DayStatus(key, today)})
	}
	return days
}

// ArchiveDay is one cell of the archive month browser.
type ArchiveDay struct {
	Key      calendar.Key
	Playable bool
	Status   ledger.DayStatus
	Today    bool
}

// ArchiveMonth is a month page of the archive browser.
type ArchiveMonth struct {
	Month   calendar.Key
	Label   string
	Leading int
	Days    []ArchiveDay
	HasPrev bool
	HasNext bool
	Locked  bool
}

// BuildArchiveMonth lays out the month containing month. Days between start
// and today are playable; nothing is playable before launch.
func BuildArchiveMonth(c DayClassifier, month, start, today calendar.Key) ArchiveMonth {
	first := calendar.ShiftMonth(month, 0)
	locked := calendar.Compare(today, start) < 0
	maxMonth := start.Month()
	if !locked {
		maxMonth = today.Month()
	}
	page := ArchiveMonth{
		Month:   first,
		Label:   calendar.MonthLabel(first),
		Leading: int(calendar.FirstWeekday(first)),
		HasPrev: first.Month() > start.Month(),
		HasNext: first.Month() < maxMonth,
		Locked:  locked,
	}
	for _, key := range calendar.MonthDays(first) {
		playable := !locked && calendar.Compare(key, start) >= 0 && calendar.Compare(key, today) <= 0
		day := ArchiveDay{Key: key, Playable: playable, Today: key == today}
		if playable {
			day.Status = c.DayStatus(key, today)
		}
		page.Days = append(page.Days, day)
	}
	return page
}

// ClampArchiveMonth keeps month within the browsable range.
func ClampArchiveMonth(month, start, today calendar.Key) calendar.Key {
	month = calendar.ShiftMonth(month, 0)
	minMonth := calendar.ShiftMonth(start, 0)
	maxMonth := minMonth
	if calendar.Compare(today, start) >= 0 {
		maxMonth = calendar.ShiftMonth(today, 0)
	}
	if calendar.Compare(month, minMonth) < 0 {
		return minMonth
	}
	if calendar.Compare(month, maxMonth) > 0 {
		return maxMonth
	}
	return month
}

// DescribeDay labels an archive cell.
func DescribeDay(day ArchiveDay) string {
	if !day.Playable {
		return "Locked"
	}
	return DescribeStatus(day.Status)
}

// DescribeStatus labels a day status.
func DescribeStatus(status ledger.DayStatus) string {
	switch status {
	case ledger.DayWon:
		return "Won"
	case ledger.DayLost:
		return "Lost"
	case ledger.DayMissed:
		return "Missed"
	case ledger.DayToday:
		return "Today"
	default:
		return "Locked"
	}
}

// StatusMark is the one-character marker used in text calendars.
func StatusMark(status ledger.DayStatus) string {
	switch status {
	case ledger.DayWon:
		return "+"
	case ledger.DayLost:
		return "x"
	case ledger.DayMissed:
		return "-"
	case ledger.DayToday:
		return "*"
	default:
		return " "
	}
}

// CalendarLines lays days out in week rows under weekday labels.
func CalendarLines(days []Day) []string {
	if len(days) == 0 {
		return nil
	}
	lines := []string{" " + strings.Join(WeekdayLabels, "  ")}
	var row strings.Builder
	lead := int(calendar.Weekday(days[0].Key))
	row.WriteString(strings.Repeat("    ", lead))
	col := lead
	for _, d := range days {
		fmt.Fprintf(&row, "%3d%s", d.Key.Day(), StatusMark(d.Status))
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

// RenderCalendar prints the activity calendar with a legend.
func RenderCalendar(w io.Writer, rangeLabel string, days []Day) error {
	if _, err := fmt.Fprintf(w, "Activity (%s)\n", rangeLabel); err != nil {
		return err
	}
	for _, line := range CalendarLines(days) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "+ won  x lost  - missed  * today"); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

package calendar

import (
	"fmt"
	"time"
)

// MonthDays returns every key of the month containing k, in order.
func MonthDays(k Key) []Key {
	y, m, _ := k.civil()
	first := time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC)
	count := first.AddDate(0, 1, -1).Day()
	days := make([]Key, 0, count)
	for d := 1; d <= count; d++ {
		days = append(days, FromCivil(y, time.Month(m), d))
	}
	return days
}

// FirstWeekday returns the weekday of the first day of k's month.
func FirstWeekday(k Key) time.Weekday {
	y, m, _ := k.civil()
	return time.Date(y, time.Month(m), 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// ShiftMonth returns the first day of the month delta months from k's month.
func ShiftMonth(k Key, delta int) Key {
	y, m, _ := k.civil()
	return FromCivil(y, time.Month(m+delta), 1)
}

// MonthLabel renders the month of k, e.g. "March 2026".
func MonthLabel(k Key) string {
	y, m, _ := k.civil()
	return fmt.Sprintf("%s %d", time.Month(m), y)
}

// Weekday returns the day of the week of k.
func Weekday(k Key) time.Weekday {
	return k.utc().Weekday()
}

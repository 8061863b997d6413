// Package calendar provides date-key helpers for the daily puzzle schedule.
//
// A Key is resolved from an instant once, in the configured zone, and is then
// treated as a zone-free civil date. All arithmetic runs on UTC midnights so
// daylight-saving transitions never shift a day.
package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Layout is the canonical YYYY-MM-DD date-key format.
const Layout = "2006-01-02"

// minYear is the first accepted year; two-digit years are ambiguous.
const minYear = 100

const secondsPerDay = 24 * 60 * 60

// ErrInvalidDateKey reports a malformed or non-existent calendar date.
var ErrInvalidDateKey = errors.New("invalid date key")

var keyPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// Key is a calendar day in canonical YYYY-MM-DD form.
type Key string

// String implements fmt.Stringer.
func (k Key) String() string {
	return string(k)
}

// Year returns the civil year of the key.
func (k Key) Year() int {
	y, _, _ := k.civil()
	return y
}

// Month returns the YYYY-MM prefix of the key.
func (k Key) Month() string {
	if len(k) < 7 {
		return string(k)
	}
	return string(k[:7])
}

// Day returns the day of month.
func (k Key) Day() int {
	_, _, d := k.civil()
	return d
}

// KeyFor reads the civil date of t as observed in loc.
func KeyFor(t time.Time, loc *time.Location) Key {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return FromCivil(y, m, d)
}

// FromCivil builds a key from civil components. Out-of-range components are
// normalized the way time.Date normalizes them.
func FromCivil(year int, month time.Month, dayOfMonth int) Key {
	t := time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
	return Key(fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day()))
}

// IsValid reports whether value is a zero-padded YYYY-MM-DD string naming a
// real calendar date in years 0100 through 9999.
func IsValid(value string) bool {
	if !keyPattern.MatchString(value) {
		return false
	}
	t, err := time.Parse(Layout, value)
	return err == nil && t.Year() >= minYear
}

// Parse validates value and returns it as a Key.
func Parse(value string) (Key, error) {
	value = strings.TrimSpace(value)
	if !IsValid(value) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, value)
	}
	return Key(value), nil
}

// Compare orders keys chronologically. The zero-padded format makes this a
// plain string comparison.
func Compare(a, b Key) int {
	return strings.Compare(string(a), string(b))
}

// Shift returns the key deltaDays later (earlier when negative).
func Shift(k Key, deltaDays int) Key {
	y, m, d := k.civil()
	return FromCivil(y, time.Month(m), d+deltaDays)
}

// DayDistance returns the number of calendar days from b to a; positive when a
// is later.
func DayDistance(a, b Key) int {
	return int((a.utc().Unix() - b.utc().Unix()) / secondsPerDay)
}

// Format renders the key for display, e.g. "Mar 1, 2026". The date is anchored
// at noon UTC before conversion so that any zone within twelve hours of UTC
// shows the same civil day.
func Format(k Key, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return k.utc().Add(12 * time.Hour).In(loc).Format("Jan 2, 2006")
}

// NextMidnight returns the first instant of the day after now, in loc.
func NextMidnight(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := now.In(loc).Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, loc)
}

// Until returns the whole hours and minutes remaining until the next midnight
// in loc.
func Until(now time.Time, loc *time.Location) (hours, minutes int) {
	diff := NextMidnight(now, loc).Sub(now)
	if diff < 0 {
		diff = 0
	}
	total := int(diff / time.Minute)
	return total / 60, total % 60
}

func (k Key) civil() (int, int, int) {
	t, err := time.Parse(Layout, string(k))
	if err != nil {
		return 0, 0, 0
	}
	return t.Year(), int(t.Month()), t.Day()
}

func (k Key) utc() time.Time {
	y, m, d := k.civil()
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

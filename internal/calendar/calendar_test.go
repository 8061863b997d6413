package calendar

import (
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestKeyForReadsZoneCivilDate(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	// 03:30 UTC on March 2 is still March 1 in New York.
	instant := time.Date(2026, time.March, 2, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, Key("2026-03-01"), KeyFor(instant, ny))
	assert.Equal(t, Key("2026-03-02"), KeyFor(instant, time.UTC))

	tokyo := mustLoad(t, "Asia/Tokyo")
	assert.Equal(t, Key("2026-03-02"), KeyFor(time.Date(2026, time.March, 1, 16, 0, 0, 0, time.UTC), tokyo))
}

func TestKeyForAroundDaylightSavingTransitions(t *testing.T) {
	ny := mustLoad(t, "America/New_York")

	// Spring forward: 2026-03-08 02:00 EST jumps to 03:00 EDT.
	beforeMidnight := time.Date(2026, time.March, 8, 3, 59, 0, 0, time.UTC) // 22:59 EST on Mar 7
	afterMidnight := time.Date(2026, time.March, 8, 5, 0, 0, 0, time.UTC)   // 00:00 EST on Mar 8
	assert.Equal(t, Key("2026-03-07"), KeyFor(beforeMidnight, ny))
	assert.Equal(t, Key("2026-03-08"), KeyFor(afterMidnight, ny))

	// Fall back: 2026-11-01 01:59 EDT repeats as EST. Midnight Nov 2 is 05:00 UTC.
	assert.Equal(t, Key("2026-11-01"), KeyFor(time.Date(2026, time.November, 2, 4, 59, 0, 0, time.UTC), ny))
	assert.Equal(t, Key("2026-11-02"), KeyFor(time.Date(2026, time.November, 2, 5, 0, 0, 0, time.UTC), ny))
}

func TestIsValid(t *testing.T) {
	valid := []string{"2026-03-01", "2028-02-29", "1999-12-31", "0100-01-01", "9999-12-31"}
	for _, v := range valid {
		assert.True(t, IsValid(v), v)
	}
	invalid := []string{"", "2026-3-01", "2026-02-30", "2026-04-31", "2027-02-29", "2026-13-01", "2026-00-10", "20260301", " 2026-03-01", "2026-03-01T00:00", "0000-01-01", "0099-12-31"}
	for _, v := range invalid {
		assert.False(t, IsValid(v), v)
	}
}

func TestParse(t *testing.T) {
	k, err := Parse(" 2026-03-05 ")
	require.NoError(t, err)
	assert.Equal(t, Key("2026-03-05"), k)

	_, err = Parse("2026-02-31")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDateKey))
}

func TestCompare(t *testing.T) {
	assert.Negative(t, Compare("2026-02-28", "2026-03-01"))
	assert.Zero(t, Compare("2026-03-01", "2026-03-01"))
	assert.Positive(t, Compare("2027-01-01", "2026-12-31"))
}

func TestShift(t *testing.T) {
	cases := []struct {
		key   Key
		delta int
		want  Key
	}{
		{"2026-03-01", -1, "2026-02-28"},
		{"2028-02-28", 1, "2028-02-29"},
		{"2026-12-31", 1, "2027-01-01"},
		{"2026-03-07", 1, "2026-03-08"},
		{"2026-11-01", 1, "2026-11-02"},
		{"2026-03-01", 365, "2027-03-01"},
		{"2026-03-01", 0, "2026-03-01"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Shift(tc.key, tc.delta), "%s%+d", tc.key, tc.delta)
	}
}

func TestDayDistance(t *testing.T) {
	assert.Equal(t, 1, DayDistance("2026-03-02", "2026-03-01"))
	assert.Equal(t, -1, DayDistance("2026-02-28", "2026-03-01"))
	assert.Equal(t, 364, DayDistance("2027-02-28", "2026-03-01"))
	assert.Equal(t, 365, DayDistance("2028-02-29", "2027-03-01"))
	// Both daylight-saving transitions are whole days apart.
	assert.Equal(t, 1, DayDistance("2026-03-09", "2026-03-08"))
	assert.Equal(t, 1, DayDistance("2026-11-02", "2026-11-01"))
	// Spans wider than time.Duration can hold.
	assert.Equal(t, 136601, DayDistance("2400-03-01", "2026-03-01"))
	assert.Equal(t, -136601, DayDistance("2026-03-01", "2400-03-01"))
	assert.Equal(t, 703516, DayDistance("2026-03-01", "0100-01-01"))
}

func TestShiftAndDistanceAgree(t *testing.T) {
	start := Key("2026-01-15")
	for delta := -400; delta <= 400; delta += 7 {
		assert.Equal(t, delta, DayDistance(Shift(start, delta), start))
	}
}

func TestFormat(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	assert.Equal(t, "Mar 1, 2026", Format("2026-03-01", ny))
	assert.Equal(t, "Dec 31, 2026", Format("2026-12-31", nil))
}

func TestNextMidnightAcrossSpringForward(t *testing.T) {
	ny := mustLoad(t, "America/New_York")
	now := time.Date(2026, time.March, 7, 12, 0, 0, 0, ny)
	next := NextMidnight(now, ny)
	assert.Equal(t, Key("2026-03-08"), KeyFor(next, ny))
	assert.Equal(t, 12*time.Hour, next.Sub(now))

	// The day of the transition has only 23 hours.
	now = time.Date(2026, time.March, 8, 0, 0, 0, 0, ny)
	assert.Equal(t, 23*time.Hour, NextMidnight(now, ny).Sub(now))

	h, m := Until(time.Date(2026, time.March, 7, 22, 30, 0, 0, ny), ny)
	assert.Equal(t, 1, h)
	assert.Equal(t, 30, m)
}

func TestMonthHelpers(t *testing.T) {
	days := MonthDays("2028-02-10")
	require.Len(t, days, 29)
	assert.Equal(t, Key("2028-02-01"), days[0])
	assert.Equal(t, Key("2028-02-29"), days[28])

	assert.Equal(t, time.Sunday, FirstWeekday("2026-03-15"))
	assert.Equal(t, Key("2027-01-01"), ShiftMonth("2026-12-20", 1))
	assert.Equal(t, Key("2026-02-01"), ShiftMonth("2026-03-31", -1))
	assert.Equal(t, "March 2026", MonthLabel("2026-03-01"))
	assert.Equal(t, "2026-03", Key("2026-03-01").Month())
	assert.Equal(t, time.Sunday, Weekday("2026-03-01"))
	assert.Equal(t, time.Saturday, Weekday("2026-04-04"))
	assert.Equal(t, 2026, Key("2026-03-01").Year())
}

package schedule

import (
	"fmt"
	"time"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// Periods run 1-10 per day: 1-5 in the morning block, 6-10 in the
// afternoon block.
const (
	FirstPeriod = 1
	LastPeriod  = 10
)

// ParseLocalDate parses a YYYY-MM-DD string into local midnight. The date
// must never be routed through UTC or a stored "2024-05-01" can render as
// April 30 in positive-offset timezones.
func ParseLocalDate(dateStr string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", dateStr, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", dateStr)
	}
	return t, nil
}

// FormatDate renders t as the YYYY-MM-DD form used everywhere in the store.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// SessionFromPeriod maps a start period to the block of the day it sits in.
func SessionFromPeriod(startPeriod int) models.DaySession {
	if startPeriod <= 5 {
		return models.SessionMorning
	}
	if startPeriod <= 10 {
		return models.SessionAfternoon
	}
	return models.SessionEvening
}

// PeriodStartHour approximates the wall-clock hour a period begins at:
// period 1 is 07:00 and the afternoon block starts at 13:00.
func PeriodStartHour(period int) int {
	if period > 5 {
		return 13 + (period - 6)
	}
	return 7 + (period - 1)
}

// SameDay reports whether a and b fall on the same local calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// StartOfWeek returns local midnight of the Monday of t's week. Sunday
// counts as the tail of the preceding week.
func StartOfWeek(t time.Time) time.Time {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	diff := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		diff = 6
	}
	return day.AddDate(0, 0, -diff)
}

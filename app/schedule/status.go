package schedule

import (
	"time"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// ResolveStatus derives the display status of a session from its date
// relative to the local wall clock. It never persists anything: callers
// recompute it on every read, so a stored status stays pending until an
// operator explicitly changes it.
func ResolveStatus(dateStr string, startPeriod int, stored models.ScheduleStatus) models.ScheduleStatus {
	return ResolveStatusAt(dateStr, startPeriod, stored, time.Now())
}

// ResolveStatusAt is ResolveStatus with an explicit "now".
//
// Off and makeup are sticky manual overrides and are returned unchanged.
// Otherwise the comparison is date-only: a session dated before today is
// completed, after today pending, today ongoing. Time of day within today
// is deliberately ignored; startPeriod is accepted for signature stability
// with the period-clock variant this replaced.
func ResolveStatusAt(dateStr string, startPeriod int, stored models.ScheduleStatus, now time.Time) models.ScheduleStatus {
	if stored == models.StatusOff || stored == models.StatusMakeup {
		return stored
	}

	d, err := ParseLocalDate(dateStr)
	if err != nil {
		return stored
	}

	if SameDay(d, now) {
		return models.StatusOngoing
	}
	if d.Before(now) {
		return models.StatusCompleted
	}
	return models.StatusPending
}

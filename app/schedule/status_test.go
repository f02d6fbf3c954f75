package schedule

import (
	"testing"
	"time"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

func TestResolveStatusAt(t *testing.T) {
	now := time.Date(2024, 1, 2, 9, 30, 0, 0, time.Local)

	tests := []struct {
		name   string
		date   string
		stored models.ScheduleStatus
		want   models.ScheduleStatus
	}{
		{"past date completes", "2024-01-01", models.StatusPending, models.StatusCompleted},
		{"today is ongoing", "2024-01-02", models.StatusPending, models.StatusOngoing},
		{"future stays pending", "2024-01-03", models.StatusPending, models.StatusPending},
		{"off is sticky", "2024-01-01", models.StatusOff, models.StatusOff},
		{"makeup is sticky", "2024-01-01", models.StatusMakeup, models.StatusMakeup},
		{"stored completed on future date reverts to pending", "2024-01-03", models.StatusCompleted, models.StatusPending},
		{"malformed date returns stored", "01/02/2024", models.StatusPending, models.StatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveStatusAt(tt.date, 1, tt.stored, now); got != tt.want {
				t.Errorf("ResolveStatusAt(%q, %q) = %q, want %q", tt.date, tt.stored, got, tt.want)
			}
		})
	}
}

func TestResolveStatusAtIgnoresTimeOfDay(t *testing.T) {
	// the comparison is date-only; even 23:59 today every session is ongoing
	late := time.Date(2024, 1, 2, 23, 59, 0, 0, time.Local)
	if got := ResolveStatusAt("2024-01-02", 1, models.StatusPending, late); got != models.StatusOngoing {
		t.Errorf("got %q, want ongoing regardless of wall clock", got)
	}
}

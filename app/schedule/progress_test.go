package schedule

import (
	"testing"
	"time"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

func TestCalculateProgress(t *testing.T) {
	schedules := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 5),
		session("s2", "c1", "sub1", "t1", "A101", "2024-05-07", 1, 5),
		session("s3", "c1", "sub1", "t1", "A101", "2024-05-08", 1, 5),
		// off sessions contribute nothing
		func() models.ScheduleItem {
			s := session("s4", "c1", "sub1", "t1", "A101", "2024-05-09", 1, 5)
			s.Status = models.StatusOff
			return s
		}(),
		// other pair, ignored
		session("s5", "c2", "sub1", "t1", "A101", "2024-05-06", 6, 5),
	}

	p := CalculateProgress("sub1", "c1", 30, schedules)
	if p.Learned != 15 {
		t.Errorf("learned = %d, want 15", p.Learned)
	}
	if p.Percentage != 50 {
		t.Errorf("percentage = %d, want 50", p.Percentage)
	}
	if p.Remaining != 15 {
		t.Errorf("remaining = %d, want 15", p.Remaining)
	}
	if p.Complete() {
		t.Error("15/30 should not be complete")
	}
}

func TestCalculateProgressExactCompletion(t *testing.T) {
	var schedules []models.ScheduleItem
	for i := 0; i < 6; i++ {
		schedules = append(schedules,
			session("s", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 5))
	}

	p := CalculateProgress("sub1", "c1", 30, schedules)
	if p.Learned != 30 || p.Percentage != 100 || p.Remaining != 0 {
		t.Errorf("got learned=%d pct=%d remaining=%d, want 30/100/0",
			p.Learned, p.Percentage, p.Remaining)
	}
	if !p.Complete() {
		t.Error("30/30 should be complete")
	}
}

func TestCalculateProgressOvershootClamps(t *testing.T) {
	schedules := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 10),
		session("s2", "c1", "sub1", "t1", "A101", "2024-05-07", 1, 10),
		session("s3", "c1", "sub1", "t1", "A101", "2024-05-08", 1, 10),
		session("s4", "c1", "sub1", "t1", "A101", "2024-05-09", 1, 10),
	}

	p := CalculateProgress("sub1", "c1", 30, schedules)
	if p.Learned != 40 {
		t.Errorf("learned = %d, want 40 (raw sum is preserved)", p.Learned)
	}
	if p.Percentage != 100 {
		t.Errorf("percentage = %d, want clamped 100", p.Percentage)
	}
	if p.Remaining != 0 {
		t.Errorf("remaining = %d, want floored 0", p.Remaining)
	}
}

func TestCalculateProgressZeroTotal(t *testing.T) {
	p := CalculateProgress("sub1", "c1", 0, nil)
	if p.Percentage != 0 || p.Remaining != 0 {
		t.Errorf("zero total should yield zero percentage and remaining, got %+v", p)
	}
	if p.Complete() {
		t.Error("a pair with no recorded periods is never complete")
	}
}

func TestRealizedPeriods(t *testing.T) {
	now := time.Date(2024, 5, 7, 10, 0, 0, 0, time.Local)
	schedules := []models.ScheduleItem{
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 5), // past
		session("s2", "c1", "sub1", "t1", "A101", "2024-05-07", 1, 5), // today
		session("s3", "c1", "sub1", "t1", "A101", "2024-05-08", 1, 5), // future
	}

	if got := RealizedPeriods("sub1", "c1", schedules, now); got != 10 {
		t.Errorf("realized = %d, want 10 (past and today only)", got)
	}
}

func TestGetSequenceInfo(t *testing.T) {
	schedules := []models.ScheduleItem{
		// deliberately out of order
		session("s3", "c1", "sub1", "t1", "A101", "2024-05-08", 1, 5),
		session("s1", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 5),
		session("s2", "c1", "sub1", "t1", "A101", "2024-05-07", 1, 5),
	}

	first := GetSequenceInfo(schedules[1], schedules, 15)
	if first.Cumulative != 5 || !first.IsFirst || first.IsLast {
		t.Errorf("first session: got %+v, want cumulative=5 first=true last=false", first)
	}

	middle := GetSequenceInfo(schedules[2], schedules, 15)
	if middle.Cumulative != 10 || middle.IsFirst || middle.IsLast {
		t.Errorf("middle session: got %+v, want cumulative=10", middle)
	}

	last := GetSequenceInfo(schedules[0], schedules, 15)
	if last.Cumulative != 15 || last.IsFirst || !last.IsLast {
		t.Errorf("last session: got %+v, want cumulative=15 last=true", last)
	}
}

func TestGetSequenceInfoSameDayOrdering(t *testing.T) {
	morning := session("m", "c1", "sub1", "t1", "A101", "2024-05-06", 1, 3)
	afternoon := session("a", "c1", "sub1", "t1", "A101", "2024-05-06", 6, 3)
	schedules := []models.ScheduleItem{afternoon, morning}

	if got := GetSequenceInfo(morning, schedules, 0); got.Cumulative != 3 {
		t.Errorf("morning cumulative = %d, want 3", got.Cumulative)
	}
	if got := GetSequenceInfo(afternoon, schedules, 0); got.Cumulative != 6 {
		t.Errorf("afternoon cumulative = %d, want 6", got.Cumulative)
	}
}

func TestGetSequenceInfoExcludesExamsAndOff(t *testing.T) {
	exam := session("e", "c1", "sub1", "t1", "A101", "2024-05-07", 1, 2)
	exam.Type = models.TypeExam
	off := session("o", "c1", "sub1", "t1", "A101", "2024-05-08", 1, 5)
	off.Status = models.StatusOff
	class := session("s", "c1", "sub1", "t1", "A101", "2024-05-09", 1, 5)

	schedules := []models.ScheduleItem{exam, off, class}

	if got := GetSequenceInfo(class, schedules, 30); got.Cumulative != 5 || !got.IsFirst {
		t.Errorf("got %+v, want the class session to be first with cumulative 5", got)
	}
	if got := GetSequenceInfo(exam, schedules, 30); got != (SequenceInfo{}) {
		t.Errorf("exam should not be part of the sequence, got %+v", got)
	}
}

func TestClampCumulative(t *testing.T) {
	if got := ClampCumulative(35, 30); got != 30 {
		t.Errorf("got %d, want 30", got)
	}
	if got := ClampCumulative(20, 30); got != 20 {
		t.Errorf("got %d, want 20", got)
	}
	if got := ClampCumulative(20, 0); got != 20 {
		t.Errorf("zero total should not clamp, got %d", got)
	}
}

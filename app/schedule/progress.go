package schedule

import (
	"math"
	"sort"
	"time"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// Progress is the cumulative teaching progress of one subject within one
// class, relative to the subject's curriculum total.
type Progress struct {
	Learned    int `json:"learned"`
	Total      int `json:"total"`
	Percentage int `json:"percentage"`
	Remaining  int `json:"remaining"`
}

// Complete reports whether the pair has finished its curriculum. A pair
// with zero recorded periods is never complete, even if the total is
// misconfigured to zero.
func (p Progress) Complete() bool {
	return p.Learned >= p.Total && p.Learned > 0
}

// CalculateProgress sums periodCount over the non-off sessions of the
// (subject, class) pair. Percentage is clamped to 100 and Remaining floored
// at 0 so overshooting sessions never produce a negative remainder.
func CalculateProgress(subjectID, classID string, totalPeriods int, schedules []models.ScheduleItem) Progress {
	learned := 0
	for _, s := range schedules {
		if s.SubjectID == subjectID && s.ClassID == classID && s.Status != models.StatusOff {
			learned += s.PeriodCount
		}
	}

	percentage := 0
	if totalPeriods > 0 {
		percentage = int(math.Round(float64(learned) / float64(totalPeriods) * 100))
		if percentage > 100 {
			percentage = 100
		}
	}

	remaining := totalPeriods - learned
	if remaining < 0 {
		remaining = 0
	}

	return Progress{
		Learned:    learned,
		Total:      totalPeriods,
		Percentage: percentage,
		Remaining:  remaining,
	}
}

// RealizedPeriods counts the pair's non-off periods dated today or earlier,
// i.e. teaching that has actually happened as opposed to merely being on
// the books. The progress screen uses this; CalculateProgress counts the
// whole plan.
func RealizedPeriods(subjectID, classID string, schedules []models.ScheduleItem, now time.Time) int {
	realized := 0
	for _, s := range schedules {
		if s.SubjectID != subjectID || s.ClassID != classID || s.Status == models.StatusOff {
			continue
		}
		d, err := ParseLocalDate(s.Date)
		if err != nil {
			continue
		}
		if d.Before(now) || SameDay(d, now) {
			realized += s.PeriodCount
		}
	}
	return realized
}

// SequenceInfo places one session inside its pair's chronological order.
// Cumulative is the running period count through this session; IsFirst and
// IsLast flag the opening and closing sessions of the curriculum.
type SequenceInfo struct {
	Cumulative int  `json:"cumulative"`
	IsFirst    bool `json:"is_first"`
	IsLast     bool `json:"is_last"`
}

// GetSequenceInfo orders the pair's non-off class-type sessions by (date,
// startPeriod) and accumulates period counts up to and including item.
// Exams are excluded from the sequence. The item is located by id; if it is
// not part of the sequence (an exam, an off session, or a foreign id) the
// zero SequenceInfo is returned.
func GetSequenceInfo(item models.ScheduleItem, schedules []models.ScheduleItem, totalPeriods int) SequenceInfo {
	var pair []models.ScheduleItem
	for _, s := range schedules {
		if s.SubjectID == item.SubjectID && s.ClassID == item.ClassID &&
			s.Type == models.TypeClass && s.Status != models.StatusOff {
			pair = append(pair, s)
		}
	}

	sort.SliceStable(pair, func(i, j int) bool {
		if pair[i].Date != pair[j].Date {
			di, erri := ParseLocalDate(pair[i].Date)
			dj, errj := ParseLocalDate(pair[j].Date)
			if erri == nil && errj == nil {
				return di.Before(dj)
			}
			return pair[i].Date < pair[j].Date
		}
		return pair[i].StartPeriod < pair[j].StartPeriod
	})

	cumulative := 0
	for _, s := range pair {
		before := cumulative
		cumulative += s.PeriodCount
		if s.ID == item.ID {
			return SequenceInfo{
				Cumulative: cumulative,
				IsFirst:    before == 0,
				IsLast:     totalPeriods > 0 && cumulative >= totalPeriods,
			}
		}
	}

	return SequenceInfo{}
}

// ClampCumulative caps a sequence cumulative at the curriculum total for
// "period X of Y" display.
func ClampCumulative(cumulative, totalPeriods int) int {
	if totalPeriods > 0 && cumulative > totalPeriods {
		return totalPeriods
	}
	return cumulative
}

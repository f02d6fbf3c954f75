package schedule

import (
	"fmt"
	"sort"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// ContinuationResult reports the outcome of a continue-to-next-week run.
// Added holds the fully-built new sessions in scheduling order; callers own
// persisting them. Warnings lists subjects close to finishing their
// curriculum, deduplicated by message.
type ContinuationResult struct {
	Added    []models.ScheduleItem `json:"added"`
	Warnings []string              `json:"warnings"`
}

// AddedCount is the number of sessions the run produced.
func (r ContinuationResult) AddedCount() int {
	return len(r.Added)
}

// nearCompletionThreshold: a subject with this many periods or fewer left
// after the batch gets a warning.
const nearCompletionThreshold = 4

// ContinueToNextWeek copies a week's unfinished class sessions for one
// class into the following week.
//
// It selects the class's class-type sessions (exams are never continued)
// dated within [weekStart, weekStart+6d], in (date, startPeriod) order, and
// for each one clones it seven days later with status pending. The clone's
// period count is capped at the subject's remaining periods, where
// "remaining" shrinks as the batch proceeds: periods virtually scheduled
// earlier in this same run count against later clones of the same
// subject-class pair.
//
// A clone is skipped silently when the target (date, startPeriod) slot is
// already taken for the class (idempotency) or when the conflict checker -
// run against the existing list plus this batch's prior additions -
// rejects it. Individual skips never abort the batch.
//
// The function is pure; persistence of the returned additions is the
// caller's side effect.
func ContinueToNextWeek(weekStartStr, classID string, schedules []models.ScheduleItem, subjects []models.Subject) (ContinuationResult, error) {
	weekStart, err := ParseLocalDate(weekStartStr)
	if err != nil {
		return ContinuationResult{}, err
	}
	weekEnd := weekStart.AddDate(0, 0, 6)

	subjectByID := make(map[string]models.Subject, len(subjects))
	for _, s := range subjects {
		subjectByID[s.ID] = s
	}

	var week []models.ScheduleItem
	for _, s := range schedules {
		if s.ClassID != classID || s.Type != models.TypeClass {
			continue
		}
		d, err := ParseLocalDate(s.Date)
		if err != nil {
			continue
		}
		if !d.Before(weekStart) && d.Before(weekEnd.AddDate(0, 0, 1)) {
			week = append(week, s)
		}
	}

	sort.SliceStable(week, func(i, j int) bool {
		if week[i].Date != week[j].Date {
			return week[i].Date < week[j].Date
		}
		return week[i].StartPeriod < week[j].StartPeriod
	})

	current := make([]models.ScheduleItem, len(schedules))
	copy(current, schedules)

	result := ContinuationResult{}
	addedPeriods := map[string]int{}
	warned := map[string]bool{}

	for _, item := range week {
		subject, ok := subjectByID[item.SubjectID]
		if !ok {
			continue
		}

		key := models.PairKey(item.SubjectID, item.ClassID)
		previouslyAdded := addedPeriods[key]

		progress := CalculateProgress(item.SubjectID, item.ClassID, subject.TotalPeriods, schedules)
		currentRemaining := progress.Remaining - previouslyAdded

		if currentRemaining > 0 {
			origDate, err := ParseLocalDate(item.Date)
			if err != nil {
				continue
			}
			newDate := FormatDate(origDate.AddDate(0, 0, 7))

			if !slotTaken(current, item.ClassID, newDate, item.StartPeriod) {
				periodsToTeach := item.PeriodCount
				if currentRemaining < periodsToTeach {
					periodsToTeach = currentRemaining
				}

				clone := item
				clone.ID = ""
				clone.Date = newDate
				clone.PeriodCount = periodsToTeach
				clone.Status = models.StatusPending

				if conflict := CheckConflict(clone, current, subjects, ""); !conflict.HasConflict {
					result.Added = append(result.Added, clone)
					current = append(current, clone)
					addedPeriods[key] = previouslyAdded + periodsToTeach
				}
			}
		}

		finalRemaining := progress.Remaining - addedPeriods[key]
		if finalRemaining > 0 && finalRemaining <= nearCompletionThreshold {
			msg := fmt.Sprintf("subject %s is almost finished (%d periods left)", subject.Name, finalRemaining)
			if !warned[msg] {
				warned[msg] = true
				result.Warnings = append(result.Warnings, msg)
			}
		}
	}

	return result, nil
}

// slotTaken reports whether the class already has any session at the exact
// (date, startPeriod) slot.
func slotTaken(schedules []models.ScheduleItem, classID, date string, startPeriod int) bool {
	for _, s := range schedules {
		if s.ClassID == classID && s.Date == date && s.StartPeriod == startPeriod {
			return true
		}
	}
	return false
}

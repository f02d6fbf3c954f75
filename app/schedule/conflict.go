package schedule

import (
	"fmt"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// ConflictResult is the verdict of a placement check. Message is a
// user-facing explanation of the first rule that rejected the candidate.
type ConflictResult struct {
	HasConflict bool   `json:"has_conflict"`
	Message     string `json:"message"`
}

// CheckConflict decides whether candidate can be placed given the existing
// schedule list. It is pure: same inputs, same verdict, no I/O.
//
// Sessions with status off are ignored, as is the item identified by
// excludeID (in-place edits). Only items on the same local calendar date
// are compared, with the half-open overlap test
// start < otherEnd && end > otherStart, so a session ending at period p
// and one starting at period p never collide.
//
// Rule order per overlapping item, first match wins:
//  1. shared-subject exemption - both subjects flagged shared with the same
//     name may share room and teacher (two classes merged into one lecture)
//  2. room collision
//  3. teacher collision
//  4. class collision - never exempted, a class cannot be in two places
//  5. exam/class cross-type collision for the same class
func CheckConflict(candidate models.ScheduleItem, existing []models.ScheduleItem, subjects []models.Subject, excludeID string) ConflictResult {
	candDate, err := ParseLocalDate(candidate.Date)
	if err != nil {
		return ConflictResult{HasConflict: true, Message: err.Error()}
	}

	subjectByID := make(map[string]models.Subject, len(subjects))
	for _, s := range subjects {
		subjectByID[s.ID] = s
	}

	for _, item := range existing {
		if excludeID != "" && item.ID == excludeID {
			continue
		}
		if item.Status == models.StatusOff {
			continue
		}

		itemDate, err := ParseLocalDate(item.Date)
		if err != nil {
			continue
		}
		if !SameDay(candDate, itemDate) {
			continue
		}

		overlap := candidate.StartPeriod < item.End() && candidate.End() > item.StartPeriod
		if !overlap {
			continue
		}

		// Shared-subject exemption must be computed before the room and
		// teacher rules below.
		exempt := sharedExemption(subjectByID, candidate.SubjectID, item.SubjectID)

		if item.RoomID == candidate.RoomID && !exempt {
			return ConflictResult{
				HasConflict: true,
				Message:     fmt.Sprintf("room %s is already occupied at this time", item.RoomID),
			}
		}
		if item.TeacherID == candidate.TeacherID && !exempt {
			return ConflictResult{
				HasConflict: true,
				Message:     "teacher is already teaching another class at this time",
			}
		}
		if item.ClassID == candidate.ClassID {
			return ConflictResult{
				HasConflict: true,
				Message:     "this class already has a session at this time",
			}
		}
		if item.Type == models.TypeExam && candidate.Type == models.TypeClass && item.ClassID == candidate.ClassID {
			return ConflictResult{
				HasConflict: true,
				Message:     "this class has an exam scheduled at this time",
			}
		}
		if item.Type == models.TypeClass && candidate.Type == models.TypeExam && item.ClassID == candidate.ClassID {
			return ConflictResult{
				HasConflict: true,
				Message:     "this class has a class session scheduled at this time",
			}
		}
	}

	return ConflictResult{}
}

// sharedExemption reports whether two subject ids refer to shared subjects
// with identical names, which models two classes sitting one merged
// lecture. Unknown (deleted) subjects never qualify.
func sharedExemption(subjects map[string]models.Subject, aID, bID string) bool {
	a, okA := subjects[aID]
	b, okB := subjects[bID]
	if !okA || !okB {
		return false
	}
	return a.IsShared && b.IsShared && a.Name == b.Name
}

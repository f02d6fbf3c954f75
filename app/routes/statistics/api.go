package statistics

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

// teacherStat aggregates one teacher's scheduled load and the resulting
// pay at their per-period rate. Off and makeup sessions do not count
// toward pay.
type teacherStat struct {
	TeacherID string `json:"teacher_id"`
	Name      string `json:"name"`
	Periods   int    `json:"periods"`
	Income    int    `json:"income"`
}

// missedSession is an off session still waiting for a makeup slot.
type missedSession struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	TeacherName string `json:"teacher_name"`
	SubjectName string `json:"subject_name"`
	ClassName   string `json:"class_name"`
}

// subjectStat is one in-flight subject-class pair for the progress chart:
// started (learned > 0) but not yet finished.
type subjectStat struct {
	SubjectName string `json:"subject_name"`
	ClassName   string `json:"class_name"`
	Total       int    `json:"total"`
	Learned     int    `json:"learned"`
	Remaining   int    `json:"remaining"`
}

// GetStatisticsAPI builds the reporting screen: per-teacher period/income
// totals, off sessions needing makeup, and every currently-running
// subject-class pair.
func GetStatisticsAPI(c *fiber.Ctx) error {
	state := dataStore.Snapshot()

	teacherByID := make(map[string]models.Teacher, len(state.Teachers))
	for _, t := range state.Teachers {
		teacherByID[t.ID] = t
	}
	subjectByID := make(map[string]models.Subject, len(state.Subjects))
	for _, s := range state.Subjects {
		subjectByID[s.ID] = s
	}
	classByID := make(map[string]models.ClassEntity, len(state.Classes))
	for _, cl := range state.Classes {
		classByID[cl.ID] = cl
	}

	// Teacher load: every stored non-off, non-makeup session counts.
	teacherStats := []teacherStat{}
	for _, t := range state.Teachers {
		periods := 0
		for _, s := range state.Schedules {
			if s.TeacherID == t.ID && s.Status != models.StatusOff && s.Status != models.StatusMakeup {
				periods += s.PeriodCount
			}
		}
		if periods > 0 {
			teacherStats = append(teacherStats, teacherStat{
				TeacherID: t.ID,
				Name:      t.Name,
				Periods:   periods,
				Income:    periods * t.RatePerPeriod,
			})
		}
	}

	// Off sessions waiting for a makeup slot.
	missed := []missedSession{}
	for _, s := range state.Schedules {
		if s.Status != models.StatusOff {
			continue
		}
		missed = append(missed, missedSession{
			ID:          s.ID,
			Date:        s.Date,
			TeacherName: teacherName(teacherByID, s.TeacherID),
			SubjectName: subjectName(subjectByID, s.SubjectID),
			ClassName:   className(classByID, s.ClassID),
		})
	}

	// In-flight pairs across every class's implicit curriculum.
	subjectStats := []subjectStat{}
	for _, cl := range state.Classes {
		for _, sub := range state.SubjectsForClass(cl.ID) {
			prog := schedule.CalculateProgress(sub.ID, cl.ID, sub.TotalPeriods, state.Schedules)
			if prog.Learned > 0 && prog.Remaining > 0 {
				subjectStats = append(subjectStats, subjectStat{
					SubjectName: sub.Name,
					ClassName:   cl.Name,
					Total:       prog.Total,
					Learned:     prog.Learned,
					Remaining:   prog.Remaining,
				})
			}
		}
	}

	return c.JSON(fiber.Map{
		"teachers":        teacherStats,
		"missed_sessions": missed,
		"subjects":        subjectStats,
	})
}

func teacherName(m map[string]models.Teacher, id string) string {
	if t, ok := m[id]; ok {
		return t.Name
	}
	return "(deleted teacher)"
}

func subjectName(m map[string]models.Subject, id string) string {
	if s, ok := m[id]; ok {
		return s.Name
	}
	return "(deleted subject)"
}

func className(m map[string]models.ClassEntity, id string) string {
	if c, ok := m[id]; ok {
		return c.Name
	}
	return "(deleted class)"
}

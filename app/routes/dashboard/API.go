package dashboard

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

// todayRow is one of today's class sessions on the overview screen.
type todayRow struct {
	ID          string                `json:"id"`
	StartPeriod int                   `json:"start_period"`
	StartHour   int                   `json:"start_hour"`
	PeriodCount int                   `json:"period_count"`
	RoomID      string                `json:"room_id"`
	SubjectName string                `json:"subject_name"`
	TeacherName string                `json:"teacher_name"`
	ClassName   string                `json:"class_name"`
	Status      models.ScheduleStatus `json:"status"`
}

// examRow is an upcoming exam sitting (today onward).
type examRow struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartPeriod int    `json:"start_period"`
	SubjectName string `json:"subject_name"`
	ClassName   string `json:"class_name"`
}

// nearRow flags a subject-class pair close to finishing its curriculum.
type nearRow struct {
	SubjectName string `json:"subject_name"`
	ClassName   string `json:"class_name"`
	Remaining   int    `json:"remaining"`
}

// GetDashboardAPI builds the overview: entity counts, today's class
// sessions in period order, the next few upcoming exams and the subjects
// about to finish their curriculum.
func GetDashboardAPI(c *fiber.Ctx) error {
	state := dataStore.Snapshot()
	now := time.Now()

	subjectByID := make(map[string]models.Subject, len(state.Subjects))
	for _, s := range state.Subjects {
		subjectByID[s.ID] = s
	}
	teacherByID := make(map[string]models.Teacher, len(state.Teachers))
	for _, t := range state.Teachers {
		teacherByID[t.ID] = t
	}
	classByID := make(map[string]models.ClassEntity, len(state.Classes))
	for _, cl := range state.Classes {
		classByID[cl.ID] = cl
	}

	today := []todayRow{}
	exams := []examRow{}
	for _, s := range state.Schedules {
		d, err := schedule.ParseLocalDate(s.Date)
		if err != nil {
			continue
		}

		switch s.Type {
		case models.TypeClass:
			if schedule.SameDay(d, now) {
				today = append(today, todayRow{
					ID:          s.ID,
					StartPeriod: s.StartPeriod,
					StartHour:   schedule.PeriodStartHour(s.StartPeriod),
					PeriodCount: s.PeriodCount,
					RoomID:      s.RoomID,
					SubjectName: label(subjectByID, s.SubjectID),
					TeacherName: labelTeacher(teacherByID, s.TeacherID),
					ClassName:   labelClass(classByID, s.ClassID),
					Status:      schedule.ResolveStatus(s.Date, s.StartPeriod, s.Status),
				})
			}
		case models.TypeExam:
			if schedule.SameDay(d, now) || d.After(now) {
				exams = append(exams, examRow{
					ID:          s.ID,
					Date:        s.Date,
					StartPeriod: s.StartPeriod,
					SubjectName: label(subjectByID, s.SubjectID),
					ClassName:   labelClass(classByID, s.ClassID),
				})
			}
		}
	}

	sort.SliceStable(today, func(i, j int) bool { return today[i].StartPeriod < today[j].StartPeriod })
	sort.SliceStable(exams, func(i, j int) bool {
		if exams[i].Date != exams[j].Date {
			return exams[i].Date < exams[j].Date
		}
		return exams[i].StartPeriod < exams[j].StartPeriod
	})
	if len(exams) > 5 {
		exams = exams[:5]
	}

	// subjects with 1-4 curriculum periods left, started pairs only
	near := []nearRow{}
	for _, cl := range state.Classes {
		for _, sub := range state.SubjectsForClass(cl.ID) {
			p := schedule.CalculateProgress(sub.ID, cl.ID, sub.TotalPeriods, state.Schedules)
			if p.Learned > 0 && p.Remaining > 0 && p.Remaining <= 4 {
				near = append(near, nearRow{
					SubjectName: sub.Name,
					ClassName:   cl.Name,
					Remaining:   p.Remaining,
				})
			}
		}
	}

	return c.JSON(fiber.Map{
		"counts": fiber.Map{
			"teachers": len(state.Teachers),
			"subjects": len(state.Subjects),
			"classes":  len(state.Classes),
			"students": len(state.Students),
		},
		"today_sessions":  today,
		"upcoming_exams":  exams,
		"near_completion": near,
	})
}

func label(m map[string]models.Subject, id string) string {
	if s, ok := m[id]; ok {
		return s.Name
	}
	return "(deleted subject)"
}

func labelTeacher(m map[string]models.Teacher, id string) string {
	if t, ok := m[id]; ok {
		return t.Name
	}
	return "(deleted teacher)"
}

func labelClass(m map[string]models.ClassEntity, id string) string {
	if c, ok := m[id]; ok {
		return c.Name
	}
	return "(deleted class)"
}

package schedules

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

// weekCell is one session enriched with everything the timetable grid
// displays: the derived status, the subject/teacher labels (placeholders
// for dangling references), the running "period X of Y" counter and the
// first/last-session highlights.
type weekCell struct {
	models.ScheduleItem
	EffectiveStatus models.ScheduleStatus `json:"effective_status"`
	SubjectName     string                `json:"subject_name"`
	TeacherName     string                `json:"teacher_name"`
	Cumulative      int                   `json:"cumulative"`
	TotalPeriods    int                   `json:"total_periods"`
	IsFirst         bool                  `json:"is_first"`
	IsLast          bool                  `json:"is_last"`
}

// GetWeekAPI returns a class's timetable for the week containing ?date=
// (default: this week), Monday through Sunday, fully derived per render -
// nothing here is cached or persisted.
func GetWeekAPI(c *fiber.Ctx) error {
	classID := c.Query("class_id")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class_id is required"})
	}

	anchor := time.Now()
	if dateStr := c.Query("date"); dateStr != "" {
		d, err := schedule.ParseLocalDate(dateStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		anchor = d
	}
	weekStart := schedule.StartOfWeek(anchor)
	weekEnd := weekStart.AddDate(0, 0, 7)

	state := dataStore.Snapshot()

	subjectByID := make(map[string]models.Subject, len(state.Subjects))
	for _, s := range state.Subjects {
		subjectByID[s.ID] = s
	}
	teacherByID := make(map[string]models.Teacher, len(state.Teachers))
	for _, t := range state.Teachers {
		teacherByID[t.ID] = t
	}

	days := make([][]weekCell, 7)
	for i := range days {
		days[i] = []weekCell{}
	}

	for _, item := range state.Schedules {
		if item.ClassID != classID {
			continue
		}
		d, err := schedule.ParseLocalDate(item.Date)
		if err != nil {
			continue
		}
		if d.Before(weekStart) || !d.Before(weekEnd) {
			continue
		}

		// Slot by calendar date; days are not always 24 hours long.
		dayIdx := -1
		for i := 0; i < 7; i++ {
			if schedule.SameDay(d, weekStart.AddDate(0, 0, i)) {
				dayIdx = i
				break
			}
		}
		if dayIdx < 0 {
			continue
		}

		cell := weekCell{
			ScheduleItem:    item,
			EffectiveStatus: schedule.ResolveStatus(item.Date, item.StartPeriod, item.Status),
			SubjectName:     "(deleted subject)",
			TeacherName:     "(deleted teacher)",
		}
		if sub, ok := subjectByID[item.SubjectID]; ok {
			cell.SubjectName = sub.Name
			cell.TotalPeriods = sub.TotalPeriods
			seq := schedule.GetSequenceInfo(item, state.Schedules, sub.TotalPeriods)
			cell.Cumulative = schedule.ClampCumulative(seq.Cumulative, sub.TotalPeriods)
			cell.IsFirst = seq.IsFirst
			cell.IsLast = seq.IsLast
		}
		if t, ok := teacherByID[item.TeacherID]; ok {
			cell.TeacherName = t.Name
		}

		days[dayIdx] = append(days[dayIdx], cell)
	}

	for i := range days {
		sort.SliceStable(days[i], func(a, b int) bool {
			return days[i][a].StartPeriod < days[i][b].StartPeriod
		})
	}

	return c.JSON(fiber.Map{
		"week_start": schedule.FormatDate(weekStart),
		"week_end":   schedule.FormatDate(weekStart.AddDate(0, 0, 6)),
		"days":       days,
	})
}

package exports

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

// cellText renders one timetable cell: subject, the OFF/exam marker,
// teacher, room and the running "Tiết: X/Y" progress counter.
func cellText(item models.ScheduleItem, subjects map[string]models.Subject, teachers map[string]models.Teacher, all []models.ScheduleItem) string {
	subjectName := "(deleted subject)"
	totalPeriods := 0
	cumulative := 0
	if sub, ok := subjects[item.SubjectID]; ok {
		subjectName = sub.Name
		totalPeriods = sub.TotalPeriods
		seq := schedule.GetSequenceInfo(item, all, sub.TotalPeriods)
		cumulative = schedule.ClampCumulative(seq.Cumulative, sub.TotalPeriods)
	}
	teacherName := "(deleted teacher)"
	if t, ok := teachers[item.TeacherID]; ok {
		teacherName = t.Name
	}

	text := subjectName
	if item.Status == models.StatusOff {
		text += " (NGHỈ)"
	} else if item.Type == models.TypeExam {
		text = "THI: " + subjectName
	}
	text += "\nGV: " + teacherName
	text += "\nPH: " + item.RoomID
	if item.Type == models.TypeClass && totalPeriods > 0 {
		text += fmt.Sprintf("\nTiết: %d/%d", cumulative, totalPeriods)
	}
	return text
}

// sendWorkbook streams the workbook as an attachment download.
func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to write Excel file"})
	}
	c.Set("Content-Type", contentTypeXLSX)
	c.Set("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", url.PathEscape(filename)))
	return c.Send(buf.Bytes())
}

// displayDate converts the stored YYYY-MM-DD form into the dd/mm/yyyy the
// printed reports use; malformed dates pass through unchanged.
func displayDate(dateStr string) string {
	d, err := schedule.ParseLocalDate(dateStr)
	if err != nil {
		return dateStr
	}
	return d.Format("02/01/2006")
}

func sortByDatePeriod(items []models.ScheduleItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Date != items[j].Date {
			return items[i].Date < items[j].Date
		}
		return items[i].StartPeriod < items[j].StartPeriod
	})
}

func lookupName(teachers map[string]models.Teacher, id string) string {
	if t, ok := teachers[id]; ok {
		return t.Name
	}
	return "(deleted teacher)"
}

func lookupSubject(subjects map[string]models.Subject, id string) string {
	if s, ok := subjects[id]; ok {
		return s.Name
	}
	return "(deleted subject)"
}

func lookupClass(classes map[string]models.ClassEntity, id string) string {
	if c, ok := classes[id]; ok {
		return c.Name
	}
	return "(deleted class)"
}

func findClass(classes []models.ClassEntity, id string) (models.ClassEntity, bool) {
	for _, c := range classes {
		if c.ID == id {
			return c, true
		}
	}
	return models.ClassEntity{}, false
}

func findSubject(subjects []models.Subject, id string) (models.Subject, bool) {
	for _, s := range subjects {
		if s.ID == id {
			return s, true
		}
	}
	return models.Subject{}, false
}

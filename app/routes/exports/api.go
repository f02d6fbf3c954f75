package exports

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

// The school prints its paperwork in Vietnamese; sheet names, headers and
// the legend keep the wording of the official forms.
var dayHeaders = []string{"THỨ HAI", "THỨ BA", "THỨ TƯ", "THỨ NĂM", "THỨ SÁU", "THỨ BẢY"}

const contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportTimetableAPI renders one class's weekly timetable as a spreadsheet:
// periods 1-10 down, Monday-Saturday across, multi-period sessions merged
// vertically, with the period-clock legend at the bottom.
func ExportTimetableAPI(c *fiber.Ctx) error {
	classID := c.Query("class_id")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class_id is required"})
	}

	anchor := time.Now()
	if dateStr := c.Query("week"); dateStr != "" {
		d, err := schedule.ParseLocalDate(dateStr)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		anchor = d
	}
	weekStart := schedule.StartOfWeek(anchor)

	state := dataStore.Snapshot()

	cls, _ := findClass(state.Classes, classID)
	className := cls.Name
	if className == "" {
		className = classID
	}

	subjectByID := make(map[string]models.Subject, len(state.Subjects))
	for _, s := range state.Subjects {
		subjectByID[s.ID] = s
	}
	teacherByID := make(map[string]models.Teacher, len(state.Teachers))
	for _, t := range state.Teachers {
		teacherByID[t.ID] = t
	}

	// itemAt finds the class's session starting exactly at (date, period).
	itemAt := func(date string, period int) (models.ScheduleItem, bool) {
		for _, s := range state.Schedules {
			if s.ClassID == classID && s.Date == date && s.StartPeriod == period {
				return s, true
			}
		}
		return models.ScheduleItem{}, false
	}

	f := excelize.NewFile()
	sheet := "Lịch Học"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build spreadsheet"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	// Header row: Buổi | Tiết | the six teaching days.
	f.SetCellValue(sheet, "A1", "Buổi")
	f.SetCellValue(sheet, "B1", "Tiết")
	for i := 0; i < 6; i++ {
		day := weekStart.AddDate(0, 0, i)
		cell, _ := excelize.CoordinatesToCellName(3+i, 1)
		f.SetCellValue(sheet, cell, fmt.Sprintf("%s - %s", dayHeaders[i], day.Format("02/01")))
	}

	for p := schedule.FirstPeriod; p <= schedule.LastPeriod; p++ {
		row := p + 1
		if p == 1 {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Sáng")
		}
		if p == 6 {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Chiều")
		}
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), p)

		for i := 0; i < 6; i++ {
			date := schedule.FormatDate(weekStart.AddDate(0, 0, i))
			item, ok := itemAt(date, p)
			if !ok {
				continue
			}

			col := 3 + i
			cell, _ := excelize.CoordinatesToCellName(col, row)

			text := cellText(item, subjectByID, teacherByID, state.Schedules)
			f.SetCellValue(sheet, cell, text)

			if item.PeriodCount > 1 {
				endRow := row + item.PeriodCount - 1
				if endRow > schedule.LastPeriod+1 {
					endRow = schedule.LastPeriod + 1
				}
				bottom, _ := excelize.CoordinatesToCellName(col, endRow)
				f.MergeCell(sheet, cell, bottom)
			}
		}
	}

	// Session column merges: morning rows 2-6, afternoon rows 7-11.
	f.MergeCell(sheet, "A2", "A6")
	f.MergeCell(sheet, "A7", "A11")

	// Period-clock legend.
	f.SetCellValue(sheet, "A13", "Sáng:")
	f.SetCellValue(sheet, "C13", "Tiết 1: 7h30 - 8h15   Tiết 2: 8h15 - 9h00   Ra chơi: 30 phút   Tiết 3: 9h30 - 10h15   Tiết 4: 10h15 - 11h00")
	f.SetCellValue(sheet, "A14", "Chiều:")
	f.SetCellValue(sheet, "C14", "Tiết 1: 13h15 - 14h00   Tiết 2: 14h00 - 14h45   Ra chơi: 15 phút   Tiết 3: 15h00 - 15h45   Tiết 4: 15h45 - 16h30")
	f.MergeCell(sheet, "C13", "H13")
	f.MergeCell(sheet, "C14", "H14")

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 5)
	f.SetColWidth(sheet, "C", "H", 25)

	return sendWorkbook(c, f, fmt.Sprintf("Lich_Hoc_%s_%s.xlsx", className, schedule.FormatDate(weekStart)))
}

// ExportTeacherReportAPI dumps every already-taught session (derived
// status completed or ongoing) for the teaching statistics report.
func ExportTeacherReportAPI(c *fiber.Ctx) error {
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

	var rows []models.ScheduleItem
	for _, s := range state.Schedules {
		status := schedule.ResolveStatus(s.Date, s.StartPeriod, s.Status)
		if status == models.StatusCompleted || status == models.StatusOngoing {
			rows = append(rows, s)
		}
	}
	sortByDatePeriod(rows)

	f := excelize.NewFile()
	sheet := "ThongKeGiangDay"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build spreadsheet"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Ngày dạy", "Giáo viên", "Môn học", "Số tiết", "Lớp"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, s := range rows {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), displayDate(s.Date))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), lookupName(teacherByID, s.TeacherID))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), lookupSubject(subjectByID, s.SubjectID))
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), s.PeriodCount)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), lookupClass(classByID, s.ClassID))
	}

	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "C", 25)
	f.SetColWidth(sheet, "D", "D", 8)
	f.SetColWidth(sheet, "E", "E", 25)

	return sendWorkbook(c, f, "Thong_Ke_Giang_Vien.xlsx")
}

// ExportSubjectReportAPI produces the payout detail sheet for one finished
// subject-class pair: who taught, when, how many periods.
func ExportSubjectReportAPI(c *fiber.Ctx) error {
	subjectID := c.Query("subject_id")
	classID := c.Query("class_id")
	if subjectID == "" || classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "subject_id and class_id are required"})
	}

	state := dataStore.Snapshot()

	teacherByID := make(map[string]models.Teacher, len(state.Teachers))
	for _, t := range state.Teachers {
		teacherByID[t.ID] = t
	}

	subjectName := subjectID
	if sub, ok := findSubject(state.Subjects, subjectID); ok {
		subjectName = sub.Name
	}
	className := classID
	if cls, ok := findClass(state.Classes, classID); ok {
		className = cls.Name
	}

	var rows []models.ScheduleItem
	for _, s := range state.Schedules {
		if s.SubjectID == subjectID && s.ClassID == classID && s.Status != models.StatusOff {
			rows = append(rows, s)
		}
	}
	sortByDatePeriod(rows)

	f := excelize.NewFile()
	sheet := "ChiTietMonHoc"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build spreadsheet"})
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headers := []string{"Giáo viên giảng dạy", "Ngày dạy", "Số tiết dạy", "Lớp"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	for i, s := range rows {
		row := i + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), lookupName(teacherByID, s.TeacherID))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), displayDate(s.Date))
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), s.PeriodCount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), className)
	}

	f.SetColWidth(sheet, "A", "A", 25)
	f.SetColWidth(sheet, "B", "B", 15)
	f.SetColWidth(sheet, "C", "C", 12)
	f.SetColWidth(sheet, "D", "D", 20)

	return sendWorkbook(c, f, fmt.Sprintf("ThongKe_%s_%s.xlsx", subjectName, className))
}

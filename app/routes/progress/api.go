package progress

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

// subjectProgress is one curriculum row on the teaching-progress screen.
// Learned counts realized periods (dated today or earlier), not the whole
// plan, so a fully scheduled but untaught subject still reads 0%.
type subjectProgress struct {
	SubjectID    string `json:"subject_id"`
	SubjectName  string `json:"subject_name"`
	Teacher      string `json:"teacher,omitempty"`
	Learned      int    `json:"learned"`
	TotalPeriods int    `json:"total_periods"`
	Percentage   int    `json:"percentage"`
	Status       string `json:"status"`
	AutoComplete bool   `json:"auto_completed"`
	ManualDone   bool   `json:"manually_completed"`
}

const (
	progressUpcoming   = "upcoming"
	progressInProgress = "in-progress"
	progressCompleted  = "completed"
)

// GetProgressAPI computes the per-subject teaching progress of one class.
// Status ranking: completed (auto by realized periods, or manual flag),
// then in-progress (any session today or in the past), then upcoming.
// Rows sort in-progress first, completed last.
func GetProgressAPI(c *fiber.Ctx) error {
	classID := c.Query("class_id")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class_id is required"})
	}

	state := dataStore.Snapshot()

	if _, ok := findClass(state.Classes, classID); !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}

	manual := make(map[string]bool, len(state.ManualCompleted))
	for _, k := range state.ManualCompleted {
		manual[k] = true
	}

	now := time.Now()
	rows := []subjectProgress{}

	for _, sub := range state.SubjectsForClass(classID) {
		realized := schedule.RealizedPeriods(sub.ID, classID, state.Schedules, now)

		percentage := 0
		if sub.TotalPeriods > 0 {
			percentage = realized * 100 / sub.TotalPeriods
			if percentage > 100 {
				percentage = 100
			}
		}

		hasPastOrToday := hasSessionUpTo(sub.ID, classID, state.Schedules, now)
		autoDone := realized >= sub.TotalPeriods && realized > 0
		manualDone := manual[models.PairKey(sub.ID, classID)]

		status := progressUpcoming
		switch {
		case autoDone || manualDone:
			status = progressCompleted
		case hasPastOrToday:
			status = progressInProgress
		}

		rows = append(rows, subjectProgress{
			SubjectID:    sub.ID,
			SubjectName:  sub.Name,
			Teacher:      sub.Teacher1,
			Learned:      realized,
			TotalPeriods: sub.TotalPeriods,
			Percentage:   percentage,
			Status:       status,
			AutoComplete: autoDone,
			ManualDone:   manualDone,
		})
	}

	order := map[string]int{progressInProgress: 1, progressUpcoming: 2, progressCompleted: 3}
	sort.SliceStable(rows, func(i, j int) bool {
		return order[rows[i].Status] < order[rows[j].Status]
	})

	summary := fiber.Map{
		"total":       len(rows),
		"completed":   countStatus(rows, progressCompleted),
		"in_progress": countStatus(rows, progressInProgress),
		"upcoming":    countStatus(rows, progressUpcoming),
	}

	return c.JSON(fiber.Map{
		"class_id": classID,
		"subjects": rows,
		"summary":  summary,
	})
}

type toggleRequest struct {
	SubjectID string `json:"subject_id"`
	ClassID   string `json:"class_id"`
}

// ToggleManualAPI flips the manual-completion flag of a subject-class
// pair. The flag survives restarts; it lives in the persisted snapshot.
func ToggleManualAPI(c *fiber.Ctx) error {
	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.SubjectID == "" || req.ClassID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "subject_id and class_id are required"})
	}

	on, err := dataStore.ToggleManualCompleted(req.SubjectID, req.ClassID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save completion flag"})
	}

	return c.JSON(fiber.Map{
		"message":   "Completion flag updated",
		"completed": on,
	})
}

func findClass(classes []models.ClassEntity, id string) (models.ClassEntity, bool) {
	for _, c := range classes {
		if c.ID == id {
			return c, true
		}
	}
	return models.ClassEntity{}, false
}

func hasSessionUpTo(subjectID, classID string, schedules []models.ScheduleItem, now time.Time) bool {
	for _, s := range schedules {
		if s.SubjectID != subjectID || s.ClassID != classID || s.Status == models.StatusOff {
			continue
		}
		d, err := schedule.ParseLocalDate(s.Date)
		if err != nil {
			continue
		}
		if d.Before(now) || schedule.SameDay(d, now) {
			return true
		}
	}
	return false
}

func countStatus(rows []subjectProgress, status string) int {
	n := 0
	for _, r := range rows {
		if r.Status == status {
			n++
		}
	}
	return n
}

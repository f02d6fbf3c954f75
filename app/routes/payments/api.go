package payments

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

// completedPair is a finished subject-class pairing awaiting teacher
// payout. Teachers lists everyone who taught a session of the pair.
type completedPair struct {
	SubjectID    string `json:"subject_id"`
	ClassID      string `json:"class_id"`
	SubjectName  string `json:"subject_name"`
	ClassName    string `json:"class_name"`
	Teachers     string `json:"teachers"`
	TotalPeriods int    `json:"total_periods"`
}

// GetPaymentsAPI lists every subject-class pair whose curriculum is
// finished (learned >= total, learned > 0) and not yet settled.
func GetPaymentsAPI(c *fiber.Ctx) error {
	state := dataStore.Snapshot()

	paid := make(map[string]bool, len(state.PaidSubjects))
	for _, k := range state.PaidSubjects {
		paid[k] = true
	}
	teacherByID := make(map[string]models.Teacher, len(state.Teachers))
	for _, t := range state.Teachers {
		teacherByID[t.ID] = t
	}

	pairs := []completedPair{}
	for _, cl := range state.Classes {
		for _, sub := range state.SubjectsForClass(cl.ID) {
			if paid[models.PairKey(sub.ID, cl.ID)] {
				continue
			}

			prog := schedule.CalculateProgress(sub.ID, cl.ID, sub.TotalPeriods, state.Schedules)
			if !prog.Complete() {
				continue
			}

			pairs = append(pairs, completedPair{
				SubjectID:    sub.ID,
				ClassID:      cl.ID,
				SubjectName:  sub.Name,
				ClassName:    cl.Name,
				Teachers:     pairTeachers(sub.ID, cl.ID, state.Schedules, teacherByID),
				TotalPeriods: sub.TotalPeriods,
			})
		}
	}

	return c.JSON(fiber.Map{
		"completed": pairs,
		"count":     len(pairs),
	})
}

type settleRequest struct {
	SubjectID string `json:"subject_id"`
	ClassID   string `json:"class_id"`
}

// SettlePaymentAPI marks a finished pair as paid so it drops off the
// payout list. Idempotent.
func SettlePaymentAPI(c *fiber.Ctx) error {
	var req settleRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.SubjectID == "" || req.ClassID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "subject_id and class_id are required"})
	}

	if err := dataStore.SettlePaid(req.SubjectID, req.ClassID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save payment flag"})
	}

	return c.JSON(fiber.Map{"message": "Payment settled"})
}

// pairTeachers joins the distinct names of everyone who taught the pair,
// in first-seen order, with placeholders for deleted teachers.
func pairTeachers(subjectID, classID string, schedules []models.ScheduleItem, teacherByID map[string]models.Teacher) string {
	seen := map[string]bool{}
	var names []string
	for _, s := range schedules {
		if s.SubjectID != subjectID || s.ClassID != classID || s.Status == models.StatusOff {
			continue
		}
		if seen[s.TeacherID] {
			continue
		}
		seen[s.TeacherID] = true
		if t, ok := teacherByID[s.TeacherID]; ok {
			names = append(names, t.Name)
		} else {
			names = append(names, "(deleted teacher)")
		}
	}
	return strings.Join(names, ", ")
}

package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
)

type continueRequest struct {
	ClassID   string `json:"class_id"`
	WeekStart string `json:"week_start"`
}

// ContinueWeekAPI copies the given week's unfinished class sessions into
// the following week. The planner itself is pure; the additions it returns
// are persisted here in one batch. Per-item conflicts are swallowed by the
// planner and only reflected in the added count, so the batch never fails
// halfway.
func ContinueWeekAPI(c *fiber.Ctx) error {
	var req continueRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.ClassID == "" || req.WeekStart == "" {
		return c.Status(400).JSON(fiber.Map{"error": "class_id and week_start are required"})
	}

	state := dataStore.Snapshot()

	result, err := schedule.ContinueToNextWeek(req.WeekStart, req.ClassID, state.Schedules, state.Subjects)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if len(result.Added) > 0 {
		if _, err := dataStore.CreateSchedules(result.Added); err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to save continued schedules", "details": err.Error()})
		}
	}

	warnings := result.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return c.JSON(fiber.Map{
		"message":     "Week continued",
		"added_count": result.AddedCount(),
		"warnings":    warnings,
	})
}

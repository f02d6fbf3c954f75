package schedules

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/schedule"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/validation"
)

// GetSchedulesAPI lists sessions, optionally filtered by class and/or the
// week containing the given date.
func GetSchedulesAPI(c *fiber.Ctx) error {
	items := dataStore.Schedules(c.Query("class_id"))

	if week := c.Query("week"); week != "" {
		anchor, err := schedule.ParseLocalDate(week)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		weekStart := schedule.StartOfWeek(anchor)
		weekEnd := weekStart.AddDate(0, 0, 7)

		var filtered []models.ScheduleItem
		for _, item := range items {
			d, err := schedule.ParseLocalDate(item.Date)
			if err != nil {
				continue
			}
			if !d.Before(weekStart) && d.Before(weekEnd) {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	if items == nil {
		items = []models.ScheduleItem{}
	}
	return c.JSON(fiber.Map{
		"schedules": items,
		"count":     len(items),
	})
}

// CreateScheduleAPI validates a candidate session and places it if the
// conflict checker accepts. Conflicts come back as 409 with the checker's
// message; nothing is persisted on rejection.
func CreateScheduleAPI(c *fiber.Ctx) error {
	var item models.ScheduleItem
	if err := c.BodyParser(&item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(item); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	state := dataStore.Snapshot()
	if conflict := schedule.CheckConflict(item, state.Schedules, state.Subjects, ""); conflict.HasConflict {
		return c.Status(409).JSON(fiber.Map{"error": conflict.Message})
	}

	created, err := dataStore.CreateSchedule(item)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save schedule", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{
		"message":  "Schedule created successfully",
		"schedule": created,
	})
}

// UpdateScheduleAPI applies a partial update. Placement edits (date,
// periods, room, teacher) are re-validated against the conflict rules with
// the item itself excluded; status or note changes go through untouched so
// an operator can always mark a session off or makeup.
func UpdateScheduleAPI(c *fiber.Ctx) error {
	id := c.Params("id")

	existing, ok := dataStore.Schedule(id)
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "Schedule not found"})
	}

	var upd models.ScheduleUpdate
	if err := c.BodyParser(&upd); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validation.Struct(upd); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if upd.Status != nil && !models.ValidStatus(*upd.Status) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown schedule status"})
	}

	if touchesPlacement(upd) {
		candidate := merged(existing, upd)
		state := dataStore.Snapshot()
		if conflict := schedule.CheckConflict(candidate, state.Schedules, state.Subjects, id); conflict.HasConflict {
			return c.Status(409).JSON(fiber.Map{"error": conflict.Message})
		}
	}

	updated, err := dataStore.UpdateSchedule(id, upd)
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Schedule not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update schedule"})
	}

	return c.JSON(fiber.Map{
		"message":  "Schedule updated successfully",
		"schedule": updated,
	})
}

func DeleteScheduleAPI(c *fiber.Ctx) error {
	err := dataStore.DeleteSchedule(c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(404).JSON(fiber.Map{"error": "Schedule not found"})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete schedule"})
	}
	return c.JSON(fiber.Map{"message": "Schedule deleted successfully"})
}

// touchesPlacement reports whether the update changes any field the
// conflict rules look at.
func touchesPlacement(upd models.ScheduleUpdate) bool {
	return upd.Date != nil || upd.StartPeriod != nil || upd.PeriodCount != nil ||
		upd.RoomID != nil || upd.TeacherID != nil || upd.SubjectID != nil
}

// merged builds the candidate the item would become after the update.
func merged(item models.ScheduleItem, upd models.ScheduleUpdate) models.ScheduleItem {
	if upd.TeacherID != nil {
		item.TeacherID = *upd.TeacherID
	}
	if upd.SubjectID != nil {
		item.SubjectID = *upd.SubjectID
	}
	if upd.RoomID != nil {
		item.RoomID = *upd.RoomID
	}
	if upd.Date != nil {
		item.Date = *upd.Date
	}
	if upd.StartPeriod != nil {
		item.StartPeriod = *upd.StartPeriod
	}
	if upd.PeriodCount != nil {
		item.PeriodCount = *upd.PeriodCount
	}
	return item
}

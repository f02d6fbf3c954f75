package backup

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/models"
)

// DownloadBackupAPI returns the full data snapshot as a JSON attachment.
func DownloadBackupAPI(c *fiber.Ctx) error {
	state := dataStore.Snapshot()
	filename := "quanlydaotao_backup_" + time.Now().Format("20060102_150405") + ".json"
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.JSON(state)
}

// RestoreBackupAPI replaces the whole dataset with an uploaded snapshot.
// The snapshot is validated before anything is touched; on a bad file the
// in-memory state and the data file stay exactly as they were.
func RestoreBackupAPI(c *fiber.Ctx) error {
	var state models.AppState
	if err := c.BodyParser(&state); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid backup file"})
	}

	if err := dataStore.Replace(state); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Data restored successfully"})
}

// ResetDataAPI wipes everything back to the default dataset.
func ResetDataAPI(c *fiber.Ctx) error {
	if err := dataStore.Reset(); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to reset data"})
	}
	return c.JSON(fiber.Map{"message": "Data reset to defaults"})
}

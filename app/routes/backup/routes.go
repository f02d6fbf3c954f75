package backup

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupBackupRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/backup")
	api.Get("/", DownloadBackupAPI)
	api.Post("/restore", RestoreBackupAPI)
	api.Post("/reset", ResetDataAPI)
}

package progress

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupProgressRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/progress")
	api.Get("/", GetProgressAPI)
	api.Post("/toggle", ToggleManualAPI)
}

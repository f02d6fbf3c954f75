package schedules

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupSchedulesRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/schedules")
	api.Get("/", GetSchedulesAPI)
	api.Get("/week", GetWeekAPI)
	api.Post("/", CreateScheduleAPI)
	api.Post("/continue", ContinueWeekAPI)
	api.Put("/:id", UpdateScheduleAPI)
	api.Delete("/:id", DeleteScheduleAPI)
}

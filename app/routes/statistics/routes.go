package statistics

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupStatisticsRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	app.Get("/api/statistics", GetStatisticsAPI)
}

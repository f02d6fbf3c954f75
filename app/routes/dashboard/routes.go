package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupDashboardRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/dashboard")
	api.Get("/", GetDashboardAPI)
}

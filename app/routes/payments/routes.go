package payments

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupPaymentsRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/payments")
	api.Get("/", GetPaymentsAPI)
	api.Post("/settle", SettlePaymentAPI)
}

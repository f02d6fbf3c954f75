package majors

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupMajorsRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/majors")
	api.Get("/", GetMajorsAPI)
	api.Get("/:id", GetMajorAPI)
	api.Post("/", CreateMajorAPI)
	api.Post("/import", ImportMajorsAPI)
	api.Put("/:id", UpdateMajorAPI)
	api.Delete("/:id", DeleteMajorAPI)
}

package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupTeachersRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/teachers")
	api.Get("/", GetTeachersAPI)
	api.Get("/:id", GetTeacherAPI)
	api.Post("/", CreateTeacherAPI)
	api.Post("/import", ImportTeachersAPI)
	api.Put("/:id", UpdateTeacherAPI)
	api.Delete("/:id", DeleteTeacherAPI)
}

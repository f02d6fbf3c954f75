package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupStudentsRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/students")
	api.Get("/", GetStudentsAPI)
	api.Get("/:id", GetStudentAPI)
	api.Post("/", CreateStudentAPI)
	api.Post("/import", ImportStudentsAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", DeleteStudentAPI)
}

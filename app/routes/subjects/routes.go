package subjects

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupSubjectsRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/subjects")
	api.Get("/", GetSubjectsAPI)
	api.Get("/:id", GetSubjectAPI)
	api.Post("/", CreateSubjectAPI)
	api.Post("/import", ImportSubjectsAPI)
	api.Put("/:id", UpdateSubjectAPI)
	api.Delete("/:id", DeleteSubjectAPI)
}

package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupClassesRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/classes")
	api.Get("/", GetClassesAPI)
	api.Get("/:id", GetClassAPI)
	api.Get("/:id/subjects", GetClassSubjectsAPI)
	api.Post("/", CreateClassAPI)
	api.Post("/import", ImportClassesAPI)
	api.Put("/:id", UpdateClassAPI)
	api.Delete("/:id", DeleteClassAPI)
}

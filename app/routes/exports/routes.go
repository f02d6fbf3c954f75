package exports

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

var dataStore *store.Store

func SetupExportsRoutes(app *fiber.App, s *store.Store) {
	dataStore = s

	api := app.Group("/api/exports")
	api.Get("/timetable", ExportTimetableAPI)
	api.Get("/teacher-report", ExportTeacherReportAPI)
	api.Get("/subject-report", ExportSubjectReportAPI)
}

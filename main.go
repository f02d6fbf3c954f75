package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tccnbinhduong/QuanLyDaoTao/app/config"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/backup"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/classes"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/dashboard"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/exports"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/majors"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/payments"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/progress"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/schedules"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/statistics"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/students"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/subjects"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/routes/teachers"
	"github.com/tccnbinhduong/QuanLyDaoTao/app/store"
)

// apiErrorHandler keeps error responses in the same envelope the
// handlers use.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Initialize config
	config.Init()

	// Open the data store
	dataStore, err := store.Open(config.AppConfig.DataFile)
	if err != nil {
		log.Fatal("Failed to open data store:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup teachers routes
	teachers.SetupTeachersRoutes(app, dataStore)

	// Setup subjects routes
	subjects.SetupSubjectsRoutes(app, dataStore)

	// Setup classes routes
	classes.SetupClassesRoutes(app, dataStore)

	// Setup students routes
	students.SetupStudentsRoutes(app, dataStore)

	// Setup majors routes
	majors.SetupMajorsRoutes(app, dataStore)

	// Setup schedules routes
	schedules.SetupSchedulesRoutes(app, dataStore)

	// Setup progress routes
	progress.SetupProgressRoutes(app, dataStore)

	// Setup statistics routes
	statistics.SetupStatisticsRoutes(app, dataStore)

	// Setup payments routes
	payments.SetupPaymentsRoutes(app, dataStore)

	// Setup exports routes
	exports.SetupExportsRoutes(app, dataStore)

	// Setup backup routes
	backup.SetupBackupRoutes(app, dataStore)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app, dataStore)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Println("Server starting on :" + config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

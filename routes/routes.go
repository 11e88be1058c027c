package routes

import (
	"halaqa_go/controllers"
	"halaqa_go/services"
	"halaqa_go/services/websocket"

	"github.com/gofiber/fiber/v2"
	fiberws "github.com/gofiber/websocket/v2"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, store *services.AttendanceStore, sharer *services.ReportSharer, wsHub *websocket.Hub) {
	studentController := controllers.NewStudentController(store)
	attendanceController := controllers.NewAttendanceController(store)
	statsController := controllers.NewStatsController(store)
	reportController := controllers.NewReportController(store, sharer)
	settingsController := controllers.NewSettingsController(store)
	snapshotController := controllers.NewSnapshotController(store)
	wsController := controllers.NewWebSocketController(wsHub)

	api := app.Group("/api")

	// Roster management
	students := api.Group("/students")
	students.Get("/", studentController.GetStudents)
	students.Post("/", studentController.CreateStudent)
	students.Put("/:id", studentController.UpdateStudent)
	students.Delete("/:id", studentController.DeleteStudent)
	students.Put("/:id/suspension", studentController.SetSuspension)
	students.Delete("/:id/suspension", studentController.ClearSuspension)

	// Daily attendance
	attendance := api.Group("/attendance")
	attendance.Get("/:date", attendanceController.GetDay)
	attendance.Patch("/:date/status", attendanceController.SetStatus)

	// Statistics
	stats := api.Group("/stats")
	stats.Get("/", statsController.GetStats)
	stats.Get("/export", statsController.ExportStats)

	// Daily report
	reports := api.Group("/reports")
	reports.Get("/:date", reportController.GetReport)
	reports.Post("/:date/share", reportController.ShareReport)

	// Circle identity
	settings := api.Group("/settings")
	settings.Get("/", settingsController.GetSettings)
	settings.Put("/", settingsController.UpdateSettings)

	// Backup
	snapshot := api.Group("/snapshot")
	snapshot.Get("/", snapshotController.ExportSnapshot)
	snapshot.Put("/", snapshotController.ImportSnapshot)

	// WebSocket stats
	ws := api.Group("/ws")
	ws.Get("/stats", wsController.GetWebSocketStats)

	// WebSocket connection endpoint - use websocket upgrade middleware
	app.Use("/ws", func(c *fiber.Ctx) error {
		if fiberws.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", wsController.WebSocketHandler())
}

// SetupStaticRoutes serves the single-page front end.
func SetupStaticRoutes(app *fiber.App) {
	app.Static("/", "./public")
}

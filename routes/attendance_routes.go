package routes

import (
	"github.com/bkirwa/engagehub/handlers"
	"github.com/bkirwa/engagehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func AttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin/attendance", middleware.Protected(), middleware.AdminRequired())
	admin.Post("/sessions", handlers.CreateAttendanceSession)
	admin.Get("/sessions", handlers.ListAttendanceSessions)
	admin.Post("/sessions/:sessionId/close", handlers.CloseAttendanceSession)

	attendance := api.Group("/attendance", middleware.Protected())
	attendance.Post("/check-in", handlers.CheckIn)
	attendance.Get("/sessions/:sessionId/records", handlers.GetSessionRecords)
}

package routes

import (
	"github.com/bkirwa/engagehub/handlers"
	"github.com/bkirwa/engagehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func KpiRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin/kpi", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.RecordKpiMetric)

	kpi := api.Group("/kpi", middleware.Protected())
	kpi.Get("/user/:userId", handlers.GetUserKpiMetrics)
	kpi.Get("/user/:userId/summary", handlers.GetUserKpiSummary)
}

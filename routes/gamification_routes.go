package routes

import (
	"github.com/bkirwa/engagehub/handlers"
	"github.com/bkirwa/engagehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func GamificationRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	gamification := api.Group("/gamification")
	gamification.Get("/xp-leaderboard", handlers.GetXPLeaderboard)

	adminGamification := api.Group("/admin/gamification", middleware.Protected(), middleware.AdminRequired())

	badges := adminGamification.Group("/badges")
	badges.Post("", handlers.CreateBadge)
	badges.Get("", handlers.ListBadges)
	badges.Put("/:badgeId", handlers.UpdateBadge)
	badges.Delete("/:badgeId", handlers.DeleteBadge)

	userGamification := api.Group("/gamification", middleware.Protected())
	userGamification.Get("/badges/me", handlers.GetMyBadges)
}

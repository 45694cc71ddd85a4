package routes

import (
	"github.com/bkirwa/engagehub/handlers"
	"github.com/gofiber/fiber/v2"
)

func LeaderboardRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	leaderboard := api.Group("/leaderboard")
	leaderboard.Get("", handlers.GetLeaderboard)
	leaderboard.Get("/user/:userId/quiz/:quizId", handlers.GetUserQuizRank)
}

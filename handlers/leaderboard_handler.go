package handlers

import (
	"errors"

	"github.com/bkirwa/engagehub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const leaderboardCacheKey = "/api/v1/leaderboard"

func GetLeaderboard(c *fiber.Ctx) error {
	if cached, ok := services.LeaderboardCache.Get(leaderboardCacheKey); ok {
		return c.JSON(cached)
	}

	rows, err := services.QuizLeaderboard()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute leaderboard"})
	}
	if rows == nil {
		rows = []services.LeaderboardRow{}
	}

	services.LeaderboardCache.Set(leaderboardCacheKey, rows)
	return c.JSON(rows)
}

func GetUserQuizRank(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("userId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user id"})
	}
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz id"})
	}

	row, err := services.UserQuizRank(userID, quizID)
	if err != nil {
		if errors.Is(err, services.ErrNoCompletedAttempt) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute rank"})
	}

	return c.JSON(row)
}

package routes

import (
	"github.com/bkirwa/engagehub/handlers"
	"github.com/bkirwa/engagehub/middleware"
	"github.com/gofiber/fiber/v2"
)

func QuizRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admin := api.Group("/admin/quizzes", middleware.Protected(), middleware.AdminRequired())
	admin.Post("", handlers.CreateQuiz)
	admin.Get("", handlers.ListQuizzes)
	admin.Put("/:quizId", handlers.UpdateQuiz)
	admin.Delete("/:quizId", handlers.DeleteQuiz)
	admin.Post("/:quizId/questions", handlers.CreateQuestion)
	admin.Delete("/questions/:questionId", handlers.DeleteQuestion)

	quizzes := api.Group("/quizzes", middleware.Protected())
	quizzes.Get("/:quizId", handlers.GetQuiz)
	quizzes.Post("/:quizId/start", handlers.StartQuizAttempt)
	quizzes.Post("/:quizId/attempt", handlers.SubmitQuizAttempt)
	quizzes.Post("/:quizId/attempts/:attemptId/complete-empty", handlers.CompleteEmptyAttempt)

	attempts := api.Group("/quiz-attempts", middleware.Protected())
	attempts.Post("/:attemptId/progress", handlers.SaveAttemptProgress)
}

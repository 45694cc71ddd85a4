package handlers

import (
	"errors"
	"log"

	"github.com/bkirwa/engagehub/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func StartQuizAttempt(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz id"})
	}
	userID := currentUserID(c)

	result, err := services.StartAttempt(quizID, userID)
	if err != nil {
		return attemptError(c, err)
	}

	if result.Resumed {
		return c.JSON(fiber.Map{
			"message":    "Resuming existing attempt",
			"attempt_id": result.AttemptID,
			"started_at": result.StartedAt,
		})
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"attempt_id": result.AttemptID,
		"started_at": result.StartedAt,
	})
}

type ProgressRequest struct {
	QuestionID     uuid.UUID  `json:"question_id" validate:"required"`
	SelectedOption *uuid.UUID `json:"selected_option"`
	WrittenAnswer  string     `json:"written_answer"`
	HintsUsed      int        `json:"hints_used" validate:"gte=0"`
	Attempts       int        `json:"attempts" validate:"gte=0"`
}

func SaveAttemptProgress(c *fiber.Ctx) error {
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attempt id"})
	}

	var req ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	payload := services.AnswerPayload{
		QuestionID:     req.QuestionID,
		SelectedOption: req.SelectedOption,
		WrittenAnswer:  req.WrittenAnswer,
		HintsUsed:      req.HintsUsed,
		Attempts:       req.Attempts,
	}
	if err := services.RecordAnswer(attemptID, payload); err != nil {
		return attemptError(c, err)
	}

	return c.JSON(fiber.Map{"success": true})
}

type SubmitRequest struct {
	AttemptID      uuid.UUID                `json:"attempt_id" validate:"required"`
	Answers        []services.AnswerPayload `json:"answers" validate:"required,min=1"`
	TotalHintsUsed int                      `json:"total_hints_used" validate:"gte=0"`
}

func SubmitQuizAttempt(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz id"})
	}
	userID := currentUserID(c)

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := services.SubmitAttempt(req.AttemptID, userID, quizID, req.Answers, req.TotalHintsUsed)
	if err != nil {
		return attemptError(c, err)
	}

	services.AwardRewardsForQuizCompletion(userID)
	services.LeaderboardCache.Clear()

	return c.JSON(fiber.Map{
		"score":               result.Score,
		"correctAnswers":      result.CorrectAnswers,
		"totalQuestions":      result.TotalQuestions,
		"unansweredQuestions": result.UnansweredQuestions,
		"time_taken":          result.TimeTakenSeconds,
	})
}

func CompleteEmptyAttempt(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz id"})
	}
	attemptID, err := uuid.Parse(c.Params("attemptId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attempt id"})
	}
	userID := currentUserID(c)

	if err := services.CompleteEmpty(attemptID, userID, quizID); err != nil {
		return attemptError(c, err)
	}

	services.LeaderboardCache.Clear()
	return c.JSON(fiber.Map{"success": true, "score": 0})
}

// attemptError maps attempt lifecycle errors onto the HTTP taxonomy:
// missing things are 404, window/completion/time violations are 403,
// empty submissions 400, everything else a generic 500.
func attemptError(c *fiber.Ctx, err error) error {
	var notYet *services.NotYetAvailableError
	if errors.As(err, &notYet) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":             notYet.Error(),
			"available_at":      notYet.AvailableAt,
			"time_until_active": int(notYet.Wait.Seconds()),
		})
	}

	switch {
	case errors.Is(err, services.ErrQuizNotFound), errors.Is(err, services.ErrAttemptNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrQuizExpired):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error(), "expired": true})
	case errors.Is(err, services.ErrAlreadyCompleted), errors.Is(err, services.ErrTimeLimitExceeded):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, services.ErrNoAnswers):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		log.Printf("[ERROR] attempt operation failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Something went wrong"})
	}
}

package handlers

import (
	"encoding/json"
	"math/rand"
	"time"

	"github.com/bkirwa/engagehub/database"
	"github.com/bkirwa/engagehub/models"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuizRequest struct {
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description"`
	DurationMinutes *int       `json:"duration_minutes" validate:"omitempty,gt=0"`
	ActiveFrom      *time.Time `json:"active_from"`
	ActiveTo        *time.Time `json:"active_to"`
	IsActive        *bool      `json:"is_active"`
}

func CreateQuiz(c *fiber.Ctx) error {
	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quiz := models.Quiz{
		ID:              uuid.New(),
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		ActiveFrom:      req.ActiveFrom,
		ActiveTo:        req.ActiveTo,
		IsActive:        true,
	}
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}

	if err := database.DB.Create(&quiz).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create quiz"})
	}

	return c.Status(fiber.StatusCreated).JSON(quiz)
}

func ListQuizzes(c *fiber.Ctx) error {
	var quizzes []models.Quiz
	database.DB.Find(&quizzes)
	return c.JSON(quizzes)
}

func UpdateQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")
	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var req QuizRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	quiz.Title = req.Title
	quiz.Description = req.Description
	quiz.DurationMinutes = req.DurationMinutes
	quiz.ActiveFrom = req.ActiveFrom
	quiz.ActiveTo = req.ActiveTo
	if req.IsActive != nil {
		quiz.IsActive = *req.IsActive
	}
	database.DB.Save(&quiz)

	return c.JSON(quiz)
}

func DeleteQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var quiz models.Quiz
		if err := tx.First(&quiz, "id = ?", quizID).Error; err != nil {
			return err
		}
		if err := tx.Where("quiz_id = ?", quiz.ID).Delete(&models.Question{}).Error; err != nil {
			return err
		}
		return tx.Delete(&quiz).Error
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete quiz"})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

type QuestionRequest struct {
	QuestionText      string          `json:"question_text" validate:"required"`
	QuestionType      string          `json:"question_type" validate:"required,oneof=multiple_choice true_false short_answer matching"`
	CorrectAnswer     string          `json:"correct_answer"`
	Points            int             `json:"points" validate:"omitempty,gt=0"`
	DisplayOrder      int             `json:"display_order"`
	MaxAttempts       int             `json:"max_attempts" validate:"omitempty,gt=0"`
	FeedbackCorrect   string          `json:"feedback_correct"`
	FeedbackIncorrect string          `json:"feedback_incorrect"`
	Metadata          json.RawMessage `json:"metadata"`

	Options []struct {
		OptionText string `json:"option_text" validate:"required"`
		IsCorrect  bool   `json:"is_correct"`
	} `json:"options" validate:"omitempty,dive"`

	Pairs []struct {
		LeftValue  string `json:"left_value" validate:"required"`
		RightValue string `json:"right_value" validate:"required"`
	} `json:"pairs" validate:"omitempty,dive"`
}

func CreateQuestion(c *fiber.Ctx) error {
	quizID, err := uuid.Parse(c.Params("quizId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid quiz id"})
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	var req QuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	question := models.Question{
		ID:                uuid.New(),
		QuizID:            quizID,
		QuestionText:      req.QuestionText,
		QuestionType:      req.QuestionType,
		CorrectAnswer:     req.CorrectAnswer,
		Points:            req.Points,
		DisplayOrder:      req.DisplayOrder,
		MaxAttempts:       req.MaxAttempts,
		FeedbackCorrect:   req.FeedbackCorrect,
		FeedbackIncorrect: req.FeedbackIncorrect,
		Metadata:          datatypes.JSON(req.Metadata),
	}
	if question.Points == 0 {
		question.Points = 1
	}
	if question.MaxAttempts == 0 {
		question.MaxAttempts = 1
	}
	for _, o := range req.Options {
		question.Options = append(question.Options, models.QuestionOption{
			ID:         uuid.New(),
			QuestionID: question.ID,
			OptionText: o.OptionText,
			IsCorrect:  o.IsCorrect,
		})
	}
	for _, p := range req.Pairs {
		question.Pairs = append(question.Pairs, models.QuestionPair{
			ID:         uuid.New(),
			QuestionID: question.ID,
			LeftValue:  p.LeftValue,
			RightValue: p.RightValue,
		})
	}

	if err := database.DB.Create(&question).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create question"})
	}

	return c.Status(fiber.StatusCreated).JSON(question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Params("questionId")

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionOption{}).Error; err != nil {
			return err
		}
		if err := tx.Where("question_id = ?", questionID).Delete(&models.QuestionPair{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Question{}, "id = ?", questionID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Question not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete question"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetQuiz is the player-facing view: the quiz with its ordered questions,
// options for multiple choice and pair values for matching, correct answers
// stripped. Availability-window violations come back as 403.
func GetQuiz(c *fiber.Ctx) error {
	quizID := c.Params("quizId")

	var quiz models.Quiz
	err := database.DB.Where("id = ? AND is_active = ?", quizID, true).
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("display_order ASC")
		}).
		Preload("Questions.Options").
		Preload("Questions.Pairs").
		First(&quiz).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Quiz not found"})
	}

	now := time.Now()
	if quiz.ActiveFrom != nil && now.Before(*quiz.ActiveFrom) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":             "Quiz is not yet available",
			"available_at":      quiz.ActiveFrom,
			"time_until_active": int(quiz.ActiveFrom.Sub(now).Seconds()),
		})
	}
	if quiz.ActiveTo != nil && now.After(*quiz.ActiveTo) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "Quiz is no longer available",
			"expired": true,
		})
	}

	// matching questions expose both columns, but never which right value
	// belongs to which left value
	for i := range quiz.Questions {
		q := &quiz.Questions[i]
		if q.QuestionType != models.QuestionTypeMatching {
			continue
		}
		for _, pair := range q.Pairs {
			q.RightValues = append(q.RightValues, pair.RightValue)
		}
		rand.Shuffle(len(q.RightValues), func(a, b int) {
			q.RightValues[a], q.RightValues[b] = q.RightValues[b], q.RightValues[a]
		})
	}

	return c.JSON(quiz)
}

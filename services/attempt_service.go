package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/bkirwa/engagehub/database"
	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// submissions arriving up to this long after the nominal duration are
// still accepted
const submitGracePeriod = 30 * time.Second

type StartResult struct {
	AttemptID uuid.UUID `json:"attempt_id"`
	StartedAt time.Time `json:"started_at"`
	Resumed   bool      `json:"resumed"`
}

type SubmitResult struct {
	Score               int `json:"score"`
	CorrectAnswers      int `json:"correct_answers"`
	TotalQuestions      int `json:"total_questions"`
	UnansweredQuestions int `json:"unanswered_questions"`
	TimeTakenSeconds    int `json:"time_taken_seconds"`
}

// StartAttempt opens a new attempt for the user, or resumes the existing
// in-progress one. A stale in-progress attempt that overran the quiz
// duration is force-completed with score 0 before a fresh one is created;
// there is no background sweep doing this.
func StartAttempt(quizID, userID uuid.UUID) (*StartResult, error) {
	var quiz models.Quiz
	if err := database.DB.Where("id = ? AND is_active = ?", quizID, true).First(&quiz).Error; err != nil {
		return nil, ErrQuizNotFound
	}

	now := time.Now()
	if quiz.ActiveFrom != nil && now.Before(*quiz.ActiveFrom) {
		return nil, &NotYetAvailableError{AvailableAt: *quiz.ActiveFrom, Wait: quiz.ActiveFrom.Sub(now)}
	}
	if quiz.ActiveTo != nil && now.After(*quiz.ActiveTo) {
		return nil, ErrQuizExpired
	}

	var completedCount int64
	if err := database.DB.Model(&models.QuizAttempt{}).
		Where("quiz_id = ? AND user_id = ? AND completed_at IS NOT NULL", quizID, userID).
		Count(&completedCount).Error; err != nil {
		return nil, err
	}
	if completedCount > 0 {
		return nil, ErrAlreadyCompleted
	}

	var existing models.QuizAttempt
	err := database.DB.Where("quiz_id = ? AND user_id = ? AND completed_at IS NULL", quizID, userID).
		First(&existing).Error
	if err == nil {
		if !attemptOverran(quiz, existing, now) {
			return &StartResult{AttemptID: existing.ID, StartedAt: existing.StartedAt, Resumed: true}, nil
		}

		// lazy expiry: close the stale attempt with score 0 and start over
		fresh := models.QuizAttempt{
			ID:             uuid.New(),
			QuizID:         quizID,
			UserID:         userID,
			StartedAt:      now,
			LastActivityAt: now,
		}
		txErr := database.DB.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&models.QuizAttempt{}).
				Where("id = ? AND completed_at IS NULL", existing.ID).
				Updates(map[string]interface{}{
					"completed_at":     now,
					"score":            0,
					"last_activity_at": now,
				})
			if res.Error != nil {
				return res.Error
			}
			return tx.Create(&fresh).Error
		})
		if txErr != nil {
			return nil, txErr
		}
		return &StartResult{AttemptID: fresh.ID, StartedAt: fresh.StartedAt}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attempt := models.QuizAttempt{
		ID:             uuid.New(),
		QuizID:         quizID,
		UserID:         userID,
		StartedAt:      now,
		LastActivityAt: now,
	}
	if err := database.DB.Create(&attempt).Error; err != nil {
		return nil, err
	}
	return &StartResult{AttemptID: attempt.ID, StartedAt: attempt.StartedAt}, nil
}

// RecordAnswer saves incremental progress for one question. The answer is
// not graded here; grading happens at submission.
func RecordAnswer(attemptID uuid.UUID, payload AnswerPayload) error {
	var attempt models.QuizAttempt
	err := database.DB.Where("id = ? AND completed_at IS NULL", attemptID).First(&attempt).Error
	if err != nil {
		return ErrAttemptNotFound
	}

	now := time.Now()
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var answer models.AttemptAnswer
		err := tx.Where("attempt_id = ? AND question_id = ?", attemptID, payload.QuestionID).
			First(&answer).Error
		if err == nil {
			answer.SelectedOption = payload.SelectedOption
			answer.WrittenAnswer = payload.WrittenAnswer
			answer.Attempts = payload.Attempts
			answer.HintsUsed = payload.HintsUsed
			if err := tx.Save(&answer).Error; err != nil {
				return err
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			answer = models.AttemptAnswer{
				ID:             uuid.New(),
				AttemptID:      attemptID,
				QuestionID:     payload.QuestionID,
				SelectedOption: payload.SelectedOption,
				WrittenAnswer:  payload.WrittenAnswer,
				Attempts:       payload.Attempts,
				HintsUsed:      payload.HintsUsed,
			}
			if err := tx.Create(&answer).Error; err != nil {
				return err
			}
		} else {
			return err
		}

		return tx.Model(&models.QuizAttempt{}).Where("id = ?", attemptID).
			Update("last_activity_at", now).Error
	})
}

// SubmitAttempt grades and persists a one-shot submission and completes the
// attempt. Everything is written in a single transaction; a failure leaves
// no answer rows behind.
func SubmitAttempt(attemptID, userID, quizID uuid.UUID, answers []AnswerPayload, totalHintsUsed int) (*SubmitResult, error) {
	var attempt models.QuizAttempt
	err := database.DB.
		Where("id = ? AND user_id = ? AND quiz_id = ? AND completed_at IS NULL", attemptID, userID, quizID).
		First(&attempt).Error
	if err != nil {
		return nil, ErrAttemptNotFound
	}

	var quiz models.Quiz
	err = database.DB.Preload("Questions.Options").Preload("Questions.Pairs").
		First(&quiz, "id = ?", quizID).Error
	if err != nil {
		return nil, ErrQuizNotFound
	}

	now := time.Now()
	if quiz.DurationMinutes != nil {
		limit := time.Duration(*quiz.DurationMinutes)*time.Minute + submitGracePeriod
		if now.Sub(attempt.StartedAt) > limit {
			return nil, ErrTimeLimitExceeded
		}
	}

	allBlank := true
	for _, a := range answers {
		if !a.IsBlank() {
			allBlank = false
			break
		}
	}
	if allBlank {
		return nil, ErrNoAnswers
	}

	questionsByID := make(map[uuid.UUID]models.Question, len(quiz.Questions))
	for _, q := range quiz.Questions {
		questionsByID[q.ID] = q
	}

	correctCount := 0
	answered := make(map[uuid.UUID]bool)
	rows := make([]models.AttemptAnswer, 0, len(answers))
	for _, a := range answers {
		question, ok := questionsByID[a.QuestionID]
		if !ok {
			continue
		}
		isCorrect := GradeAnswer(question, a)
		if isCorrect {
			correctCount++
		}
		if !a.IsBlank() {
			answered[a.QuestionID] = true
		}
		rows = append(rows, models.AttemptAnswer{
			ID:             uuid.New(),
			AttemptID:      attemptID,
			QuestionID:     a.QuestionID,
			SelectedOption: a.SelectedOption,
			WrittenAnswer:  strings.TrimSpace(a.WrittenAnswer),
			IsCorrect:      isCorrect,
			Attempts:       a.Attempts,
			HintsUsed:      a.HintsUsed,
		})
	}

	total := len(quiz.Questions)
	score := 0
	if total > 0 {
		score = int(math.Round(float64(correctCount) / float64(total) * 100))
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		// conditional completion closes the double-submit race: whoever
		// flips completed_at first wins, everyone else rolls back
		res := tx.Model(&models.QuizAttempt{}).
			Where("id = ? AND completed_at IS NULL", attemptID).
			Updates(map[string]interface{}{
				"completed_at":     now,
				"score":            score,
				"total_hints_used": totalHintsUsed,
				"last_activity_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrAlreadyCompleted
		}

		// progress saves for this attempt are superseded by the final rows
		if err := tx.Where("attempt_id = ?", attemptID).
			Delete(&models.AttemptAnswer{}).Error; err != nil {
			return err
		}
		if len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &SubmitResult{
		Score:               score,
		CorrectAnswers:      correctCount,
		TotalQuestions:      total,
		UnansweredQuestions: total - len(answered),
		TimeTakenSeconds:    int(now.Sub(attempt.StartedAt).Seconds()),
	}, nil
}

// CompleteEmpty force-completes an attempt with score 0 without grading
// anything, subject to the same time-limit check as a normal submission.
func CompleteEmpty(attemptID, userID, quizID uuid.UUID) error {
	var attempt models.QuizAttempt
	err := database.DB.
		Where("id = ? AND user_id = ? AND quiz_id = ? AND completed_at IS NULL", attemptID, userID, quizID).
		First(&attempt).Error
	if err != nil {
		return ErrAttemptNotFound
	}

	var quiz models.Quiz
	if err := database.DB.First(&quiz, "id = ?", quizID).Error; err != nil {
		return ErrQuizNotFound
	}

	now := time.Now()
	if quiz.DurationMinutes != nil {
		limit := time.Duration(*quiz.DurationMinutes)*time.Minute + submitGracePeriod
		if now.Sub(attempt.StartedAt) > limit {
			return ErrTimeLimitExceeded
		}
	}

	res := database.DB.Model(&models.QuizAttempt{}).
		Where("id = ? AND completed_at IS NULL", attemptID).
		Updates(map[string]interface{}{
			"completed_at":     now,
			"score":            0,
			"last_activity_at": now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return ErrAlreadyCompleted
	}
	return nil
}

func attemptOverran(quiz models.Quiz, attempt models.QuizAttempt, now time.Time) bool {
	if quiz.DurationMinutes == nil {
		return false
	}
	return now.Sub(attempt.StartedAt) > time.Duration(*quiz.DurationMinutes)*time.Minute
}

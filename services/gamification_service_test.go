package services

import (
	"testing"
	"time"

	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAwardRewardsForQuizCompletion(t *testing.T) {
	t.Run("first completion grants XP and the badge", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(db, "alice")
		quiz := createTestQuiz(db, nil)
		badge := models.Badge{
			ID: uuid.New(), Name: "First Quiz", Description: "Completed a first quiz", IconURL: "https://cdn.example.com/first.png",
		}
		db.Create(&badge)

		now := time.Now()
		score := 100
		db.Create(&models.QuizAttempt{
			ID: uuid.New(), QuizID: quiz.ID, UserID: user.ID,
			StartedAt: now.Add(-time.Minute), CompletedAt: &now, Score: &score,
			LastActivityAt: now,
		})

		AwardRewardsForQuizCompletion(user.ID)

		var updated models.User
		db.Preload("Badges").First(&updated, "id = ?", user.ID)
		assert.Equal(t, 10, updated.XP)
		assert.Len(t, updated.Badges, 1)
		assert.Equal(t, "First Quiz", updated.Badges[0].Name)
	})

	t.Run("later completions only add XP", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(db, "alice")
		quiz := createTestQuiz(db, nil)
		quiz2 := createTestQuiz(db, nil)

		now := time.Now()
		score := 80
		for _, q := range []models.Quiz{quiz, quiz2} {
			db.Create(&models.QuizAttempt{
				ID: uuid.New(), QuizID: q.ID, UserID: user.ID,
				StartedAt: now.Add(-time.Minute), CompletedAt: &now, Score: &score,
				LastActivityAt: now,
			})
		}

		AwardRewardsForQuizCompletion(user.ID)

		var updated models.User
		db.Preload("Badges").First(&updated, "id = ?", user.ID)
		assert.Equal(t, 10, updated.XP)
		assert.Empty(t, updated.Badges)
	})

	t.Run("missing badge row is tolerated", func(t *testing.T) {
		db := setupTestDB(t)
		user := createTestUser(db, "alice")
		quiz := createTestQuiz(db, nil)

		now := time.Now()
		score := 100
		db.Create(&models.QuizAttempt{
			ID: uuid.New(), QuizID: quiz.ID, UserID: user.ID,
			StartedAt: now.Add(-time.Minute), CompletedAt: &now, Score: &score,
			LastActivityAt: now,
		})

		AwardRewardsForQuizCompletion(user.ID)

		var updated models.User
		db.First(&updated, "id = ?", user.ID)
		assert.Equal(t, 10, updated.XP)
	})
}

package services

import (
	"testing"
	"time"

	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func completedAttempt(db *gorm.DB, quiz models.Quiz, user models.User, score, elapsedSeconds, hints int) models.QuizAttempt {
	started := time.Now().Add(-time.Hour)
	completed := started.Add(time.Duration(elapsedSeconds) * time.Second)
	attempt := models.QuizAttempt{
		ID:             uuid.New(),
		QuizID:         quiz.ID,
		UserID:         user.ID,
		StartedAt:      started,
		CompletedAt:    &completed,
		Score:          &score,
		TotalHintsUsed: hints,
		LastActivityAt: completed,
	}
	db.Create(&attempt)
	return attempt
}

func TestQuizLeaderboardOrdering(t *testing.T) {
	db := setupTestDB(t)
	quiz := createTestQuiz(db, intPtr(10))
	createTrueFalseQuestion(db, quiz.ID, "true")
	createTrueFalseQuestion(db, quiz.ID, "true")

	fast := createTestUser(db, "fast")
	slow := createTestUser(db, "slow")
	top := createTestUser(db, "top")
	overrun := createTestUser(db, "overrun")

	completedAttempt(db, quiz, top, 100, 400, 0)
	completedAttempt(db, quiz, slow, 50, 300, 0)
	completedAttempt(db, quiz, fast, 50, 200, 0)
	// took longer than the 10 minute limit, sinks below same-score peers
	completedAttempt(db, quiz, overrun, 50, 700, 0)

	rows, err := QuizLeaderboard()
	assert.NoError(t, err)
	assert.Len(t, rows, 4)

	assert.Equal(t, top.ID, rows[0].UserID)
	assert.Equal(t, fast.ID, rows[1].UserID)
	assert.Equal(t, slow.ID, rows[2].UserID)
	assert.Equal(t, overrun.ID, rows[3].UserID)

	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
	}

	// reported elapsed time is the real one, not the sentinel
	assert.Equal(t, 700, rows[3].TimeTakenSeconds)
}

func TestQuizLeaderboardHintTieBreak(t *testing.T) {
	db := setupTestDB(t)
	quiz := createTestQuiz(db, intPtr(10))
	createTrueFalseQuestion(db, quiz.ID, "true")
	createTrueFalseQuestion(db, quiz.ID, "true")

	hintHeavy := createTestUser(db, "hint-heavy")
	hintLight := createTestUser(db, "hint-light")

	completedAttempt(db, quiz, hintHeavy, 100, 300, 4)
	completedAttempt(db, quiz, hintLight, 100, 300, 1)

	rows, err := QuizLeaderboard()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, hintLight.ID, rows[0].UserID)
	assert.InDelta(t, 0.5, rows[0].AvgHintsPerQuestion, 0.001)
	assert.Equal(t, hintHeavy.ID, rows[1].UserID)
	assert.InDelta(t, 2.0, rows[1].AvgHintsPerQuestion, 0.001)
}

func TestQuizLeaderboardPartitionsByQuiz(t *testing.T) {
	db := setupTestDB(t)
	quizA := createTestQuiz(db, nil)
	quizB := createTestQuiz(db, nil)
	createTrueFalseQuestion(db, quizA.ID, "true")
	createTrueFalseQuestion(db, quizB.ID, "true")

	alice := createTestUser(db, "alice")
	bob := createTestUser(db, "bob")

	completedAttempt(db, quizA, alice, 90, 100, 0)
	completedAttempt(db, quizA, bob, 70, 100, 0)
	completedAttempt(db, quizB, bob, 60, 100, 0)

	rows, err := QuizLeaderboard()
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	// ranks restart per quiz
	ranksByQuiz := make(map[uuid.UUID][]int)
	for _, row := range rows {
		ranksByQuiz[row.QuizID] = append(ranksByQuiz[row.QuizID], row.Rank)
	}
	assert.ElementsMatch(t, []int{1, 2}, ranksByQuiz[quizA.ID])
	assert.ElementsMatch(t, []int{1}, ranksByQuiz[quizB.ID])
}

func TestQuizLeaderboardIgnoresIncomplete(t *testing.T) {
	db := setupTestDB(t)
	quiz := createTestQuiz(db, nil)
	createTrueFalseQuestion(db, quiz.ID, "true")
	alice := createTestUser(db, "alice")

	_, err := StartAttempt(quiz.ID, alice.ID)
	assert.NoError(t, err)

	rows, err := QuizLeaderboard()
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestUserQuizRank(t *testing.T) {
	db := setupTestDB(t)
	quiz := createTestQuiz(db, intPtr(10))
	createTrueFalseQuestion(db, quiz.ID, "true")

	alice := createTestUser(db, "alice")
	bob := createTestUser(db, "bob")
	carol := createTestUser(db, "carol")

	completedAttempt(db, quiz, alice, 100, 200, 0)
	completedAttempt(db, quiz, bob, 50, 200, 0)

	t.Run("rank of each finisher", func(t *testing.T) {
		row, err := UserQuizRank(bob.ID, quiz.ID)
		assert.NoError(t, err)
		assert.Equal(t, 2, row.Rank)
		assert.Equal(t, 50, row.Score)
	})

	t.Run("user with no completed attempt", func(t *testing.T) {
		_, err := UserQuizRank(carol.ID, quiz.ID)
		assert.ErrorIs(t, err, ErrNoCompletedAttempt)
	})

	t.Run("unknown quiz", func(t *testing.T) {
		_, err := UserQuizRank(alice.ID, uuid.New())
		assert.ErrorIs(t, err, ErrNoCompletedAttempt)
	})
}

package services

import (
	"testing"

	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func multipleChoiceQuestion() (models.Question, uuid.UUID, uuid.UUID) {
	wrongID := uuid.New()
	rightID := uuid.New()
	q := models.Question{
		ID:           uuid.New(),
		QuestionType: models.QuestionTypeMultipleChoice,
		Options: []models.QuestionOption{
			{ID: wrongID, OptionText: "Mars", IsCorrect: false},
			{ID: rightID, OptionText: "Jupiter", IsCorrect: true},
		},
	}
	return q, rightID, wrongID
}

func TestGradeMultipleChoice(t *testing.T) {
	q, rightID, wrongID := multipleChoiceQuestion()

	t.Run("correct option scores", func(t *testing.T) {
		assert.True(t, GradeAnswer(q, AnswerPayload{SelectedOption: &rightID}))
	})

	t.Run("wrong option does not score", func(t *testing.T) {
		assert.False(t, GradeAnswer(q, AnswerPayload{SelectedOption: &wrongID}))
	})

	t.Run("unknown option id is incorrect, not an error", func(t *testing.T) {
		stray := uuid.New()
		assert.False(t, GradeAnswer(q, AnswerPayload{SelectedOption: &stray}))
	})

	t.Run("no selection is incorrect", func(t *testing.T) {
		assert.False(t, GradeAnswer(q, AnswerPayload{}))
	})
}

func TestGradeTrueFalse(t *testing.T) {
	q := models.Question{
		ID:            uuid.New(),
		QuestionType:  models.QuestionTypeTrueFalse,
		CorrectAnswer: "true",
	}

	assert.True(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "true"}))
	assert.True(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "TRUE"}))
	assert.True(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "  True "}))
	assert.False(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "false"}))
	assert.False(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: ""}))
}

func TestGradeShortAnswer(t *testing.T) {
	q := models.Question{
		ID:            uuid.New(),
		QuestionType:  models.QuestionTypeShortAnswer,
		CorrectAnswer: "Photosynthesis",
	}

	assert.True(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "photosynthesis"}))
	assert.True(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: " PHOTOSYNTHESIS  "}))

	// exact match only, no fuzzy credit
	assert.False(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "photo synthesis"}))
	assert.False(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "photosynthesi"}))
}

func TestGradeMatching(t *testing.T) {
	q := models.Question{
		ID:           uuid.New(),
		QuestionType: models.QuestionTypeMatching,
		Pairs: []models.QuestionPair{
			{ID: uuid.New(), LeftValue: "Kenya", RightValue: "Nairobi"},
			{ID: uuid.New(), LeftValue: "Uganda", RightValue: "Kampala"},
		},
	}

	t.Run("all pairs matched", func(t *testing.T) {
		answer := `{"Kenya":"Nairobi","Uganda":"Kampala"}`
		assert.True(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: answer}))
	})

	t.Run("one pair swapped", func(t *testing.T) {
		answer := `{"Kenya":"Kampala","Uganda":"Nairobi"}`
		assert.False(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: answer}))
	})

	t.Run("missing pair", func(t *testing.T) {
		answer := `{"Kenya":"Nairobi"}`
		assert.False(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: answer}))
	})

	t.Run("malformed payload", func(t *testing.T) {
		assert.False(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "not json"}))
	})

	t.Run("whitespace and casing on either side are ignored", func(t *testing.T) {
		messy := models.Question{
			ID:           uuid.New(),
			QuestionType: models.QuestionTypeMatching,
			Pairs: []models.QuestionPair{
				{ID: uuid.New(), LeftValue: " Kenya", RightValue: "Nairobi "},
				{ID: uuid.New(), LeftValue: "UGANDA", RightValue: "kampala"},
			},
		}
		answer := `{"kenya ":"NAIROBI","Uganda":" Kampala"}`
		assert.True(t, GradeAnswer(messy, AnswerPayload{WrittenAnswer: answer}))
	})

	t.Run("question without pairs never scores", func(t *testing.T) {
		empty := models.Question{ID: uuid.New(), QuestionType: models.QuestionTypeMatching}
		assert.False(t, GradeAnswer(empty, AnswerPayload{WrittenAnswer: `{}`}))
	})
}

func TestGradeUnknownType(t *testing.T) {
	q := models.Question{ID: uuid.New(), QuestionType: "essay"}
	assert.False(t, GradeAnswer(q, AnswerPayload{WrittenAnswer: "anything"}))
}

func TestAnswerPayloadIsBlank(t *testing.T) {
	optID := uuid.New()

	assert.True(t, AnswerPayload{}.IsBlank())
	assert.True(t, AnswerPayload{WrittenAnswer: "   "}.IsBlank())
	assert.False(t, AnswerPayload{WrittenAnswer: "x"}.IsBlank())
	assert.False(t, AnswerPayload{SelectedOption: &optID}.IsBlank())
}

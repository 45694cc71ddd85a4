package services

import (
	"encoding/json"
	"strings"

	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
)

// AnswerPayload is one submitted answer as received from the client.
// SelectedOption is set for multiple_choice, WrittenAnswer for everything
// else; matching answers carry a JSON object of left->right values.
type AnswerPayload struct {
	QuestionID     uuid.UUID  `json:"question_id"`
	SelectedOption *uuid.UUID `json:"selected_option"`
	WrittenAnswer  string     `json:"written_answer"`
	HintsUsed      int        `json:"hints_used"`
	Attempts       int        `json:"attempts"`
}

// IsBlank reports whether the payload carries no answer value at all.
func (p AnswerPayload) IsBlank() bool {
	return p.SelectedOption == nil && strings.TrimSpace(p.WrittenAnswer) == ""
}

// GradeAnswer decides correctness of a submitted answer from the stored
// question data alone. It has no side effects.
func GradeAnswer(question models.Question, payload AnswerPayload) bool {
	switch question.QuestionType {
	case models.QuestionTypeMultipleChoice:
		if payload.SelectedOption == nil {
			return false
		}
		for _, opt := range question.Options {
			if opt.ID == *payload.SelectedOption {
				return opt.IsCorrect
			}
		}
		// option id does not belong to this question
		return false

	case models.QuestionTypeTrueFalse:
		return strings.EqualFold(strings.TrimSpace(payload.WrittenAnswer), strings.TrimSpace(question.CorrectAnswer))

	case models.QuestionTypeShortAnswer:
		return strings.EqualFold(strings.TrimSpace(payload.WrittenAnswer), strings.TrimSpace(question.CorrectAnswer))

	case models.QuestionTypeMatching:
		return gradeMatching(question.Pairs, payload.WrittenAnswer)

	default:
		return false
	}
}

// gradeMatching checks that the submitted left->right object matches every
// stored pair exactly, with no extra pairings.
func gradeMatching(pairs []models.QuestionPair, submitted string) bool {
	if len(pairs) == 0 {
		return false
	}

	var matches map[string]string
	if err := json.Unmarshal([]byte(submitted), &matches); err != nil {
		return false
	}
	if len(matches) != len(pairs) {
		return false
	}

	// stored pairs and submitted values get the same treatment, so
	// whitespace or casing on either side never decides correctness
	normalized := make(map[string]string, len(matches))
	for left, right := range matches {
		normalized[normalizeMatchValue(left)] = normalizeMatchValue(right)
	}

	for _, pair := range pairs {
		right, ok := normalized[normalizeMatchValue(pair.LeftValue)]
		if !ok || right != normalizeMatchValue(pair.RightValue) {
			return false
		}
	}
	return true
}

func normalizeMatchValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

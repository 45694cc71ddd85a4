package models

import (
	"time"

	"github.com/google/uuid"
)

// AttemptAnswer is the single answer row per (attempt, question); a second
// submission for the same question updates the row instead of duplicating it.
type AttemptAnswer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	AttemptID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_question" json:"attempt_id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_attempt_question" json:"question_id"`

	SelectedOption *uuid.UUID `gorm:"type:uuid" json:"selected_option"`
	WrittenAnswer  string     `gorm:"type:text" json:"written_answer"`
	IsCorrect      bool       `gorm:"not null;default:false" json:"is_correct"`

	Attempts  int `gorm:"not null;default:1" json:"attempts"`
	HintsUsed int `gorm:"not null;default:0" json:"hints_used"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

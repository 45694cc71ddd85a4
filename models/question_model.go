package models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	QuestionTypeMultipleChoice = "multiple_choice"
	QuestionTypeTrueFalse      = "true_false"
	QuestionTypeShortAnswer    = "short_answer"
	QuestionTypeMatching       = "matching"
)

type Question struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`

	QuestionText string `gorm:"type:text;not null" json:"question_text"`
	QuestionType string `gorm:"size:50;not null;default:'multiple_choice'" json:"question_type"`

	// used for true_false and short_answer grading
	CorrectAnswer string `gorm:"type:text" json:"-"`

	Points            int    `gorm:"not null;default:1" json:"points"`
	DisplayOrder      int    `gorm:"not null;default:0" json:"display_order"`
	MaxAttempts       int    `gorm:"not null;default:1" json:"max_attempts"`
	FeedbackCorrect   string `gorm:"type:text" json:"feedback_correct"`
	FeedbackIncorrect string `gorm:"type:text" json:"feedback_incorrect"`

	// opaque client payload, never interpreted server-side
	Metadata datatypes.JSON `json:"metadata"`

	Options []QuestionOption `gorm:"foreignKey:QuestionID" json:"options,omitempty"`
	Pairs   []QuestionPair   `gorm:"foreignKey:QuestionID" json:"pairs,omitempty"`

	// right sides of a matching question, shuffled for the player view
	RightValues []string `gorm:"-" json:"right_values,omitempty"`
}

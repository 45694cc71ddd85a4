package models

import "github.com/google/uuid"

// QuestionPair holds one left/right pairing of a matching question.
type QuestionPair struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	LeftValue  string    `gorm:"type:text;not null" json:"left_value"`

	// the pairing is the answer key, so it never leaves the server
	RightValue string `gorm:"type:text;not null" json:"-"`
}

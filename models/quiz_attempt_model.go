package models

import (
	"time"

	"github.com/google/uuid"
)

type QuizAttempt struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuizID uuid.UUID `gorm:"type:uuid;not null;index" json:"quiz_id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	StartedAt time.Time `gorm:"not null" json:"started_at"`
	// nil while the attempt is in progress; once set the row is immutable
	CompletedAt *time.Time `json:"completed_at"`
	// 0-100, nil until completed
	Score *int `json:"score"`

	TotalHintsUsed int       `gorm:"not null;default:0" json:"total_hints_used"`
	LastActivityAt time.Time `gorm:"not null" json:"last_activity_at"`

	Quiz Quiz `gorm:"foreignKey:QuizID" json:"quiz,omitempty"`
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

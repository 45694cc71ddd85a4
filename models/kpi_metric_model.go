package models

import (
	"time"

	"github.com/google/uuid"
)

type KpiMetric struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Metric     string    `gorm:"size:100;not null" json:"metric"`
	Points     int       `gorm:"not null" json:"points"`
	RecordedAt time.Time `gorm:"not null" json:"recorded_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

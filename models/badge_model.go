package models

import (
	"time"

	"github.com/google/uuid"
)

type Badge struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"size:255;not null;unique" json:"name"`
	Description string    `gorm:"type:text;not null" json:"description"`
	IconURL     string    `gorm:"size:255;not null" json:"icon_url"`
	CreatedAt   time.Time `json:"created_at"`
}

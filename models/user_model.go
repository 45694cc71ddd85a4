package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'member'" json:"role"`

	XP     int      `gorm:"default:0" json:"xp"`
	Badges []*Badge `gorm:"many2many:user_badges;" json:"badges,omitempty"`

	ProfilePictureURL *string `gorm:"size:255" json:"profile_picture_url"`
	Department        *string `gorm:"size:100" json:"department"`
	IsActive          bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

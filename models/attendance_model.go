package models

import (
	"time"

	"github.com/google/uuid"
)

// AttendanceSession is an event users check in to with a short code
// (rendered as a QR code by the frontend).
type AttendanceSession struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title    string    `gorm:"size:255;not null" json:"title"`
	Code     string    `gorm:"size:10;not null;unique" json:"code"`
	OpensAt  time.Time `gorm:"not null" json:"opens_at"`
	ClosesAt time.Time `gorm:"not null" json:"closes_at"`
	IsOpen   bool      `gorm:"default:true" json:"is_open"`

	CreatedAt time.Time `json:"created_at"`
}

type AttendanceRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_user" json:"session_id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_session_user" json:"user_id"`

	CheckedInAt time.Time `gorm:"not null" json:"checked_in_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

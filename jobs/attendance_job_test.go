package jobs

import (
	"testing"
	"time"

	"github.com/bkirwa/engagehub/database"
	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestCloseExpiredSessions(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	if err := db.AutoMigrate(&models.AttendanceSession{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	database.DB = db

	now := time.Now()
	expired := models.AttendanceSession{
		ID: uuid.New(), Title: "Morning standup", Code: "AAAA1111",
		OpensAt: now.Add(-2 * time.Hour), ClosesAt: now.Add(-time.Hour), IsOpen: true,
	}
	running := models.AttendanceSession{
		ID: uuid.New(), Title: "All hands", Code: "BBBB2222",
		OpensAt: now.Add(-time.Hour), ClosesAt: now.Add(time.Hour), IsOpen: true,
	}
	db.Create(&expired)
	db.Create(&running)

	CloseExpiredSessions()

	var reloadedExpired, reloadedRunning models.AttendanceSession
	db.First(&reloadedExpired, "id = ?", expired.ID)
	db.First(&reloadedRunning, "id = ?", running.ID)

	assert.False(t, reloadedExpired.IsOpen)
	assert.True(t, reloadedRunning.IsOpen)
}

package jobs

import (
	"log"
	"time"

	"github.com/bkirwa/engagehub/database"
	"github.com/bkirwa/engagehub/models"
)

// CloseExpiredSessions flips attendance sessions past their closing time to
// closed so late check-ins are rejected.
func CloseExpiredSessions() {
	log.Println("Running job: CloseExpiredSessions...")

	now := time.Now()

	var expired []models.AttendanceSession
	err := database.DB.
		Where("is_open = ? AND closes_at < ?", true, now).
		Find(&expired).Error
	if err != nil {
		log.Printf("Error checking for expired attendance sessions: %v", err)
		return
	}

	if len(expired) == 0 {
		log.Println("No expired attendance sessions found.")
		return
	}

	for _, session := range expired {
		session.IsOpen = false
		database.DB.Save(&session)
	}

	log.Printf("Closed %d attendance session(s).", len(expired))
}

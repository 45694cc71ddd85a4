package services

import (
	"log"

	"github.com/bkirwa/engagehub/database"
	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	xpForQuizCompletion = 10
	badgeNameFirstQuiz  = "First Quiz"
)

// AwardRewardsForQuizCompletion grants completion XP and, on the user's
// first completed quiz, the "First Quiz" badge.
func AwardRewardsForQuizCompletion(userID uuid.UUID) {
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Preload("Badges").First(&user, "id = ?", userID).Error; err != nil {
			return err
		}

		user.XP += xpForQuizCompletion
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		var completedCount int64
		tx.Model(&models.QuizAttempt{}).
			Where("user_id = ? AND completed_at IS NOT NULL", userID).
			Count(&completedCount)

		if completedCount == 1 {
			for _, badge := range user.Badges {
				if badge.Name == badgeNameFirstQuiz {
					return nil
				}
			}

			var firstQuizBadge models.Badge
			if err := tx.Where("name = ?", badgeNameFirstQuiz).First(&firstQuizBadge).Error; err == nil {
				if err := tx.Model(&user).Association("Badges").Append(&firstQuizBadge); err != nil {
					return err
				}
			} else {
				log.Printf("Warning: Badge '%s' not found in database. Cannot award.", badgeNameFirstQuiz)
			}
		}

		return nil
	})

	if err != nil {
		log.Printf("🔥 Failed to award rewards to user %s: %v", userID, err)
	}
}

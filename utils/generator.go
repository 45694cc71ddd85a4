package utils

import (
	"math/rand"
	"time"

	"github.com/bkirwa/engagehub/models"
	"gorm.io/gorm"
)

const sessionCodeLength = 8
const letterBytes = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateUniqueSessionCode produces the short code users scan to check in
// to an attendance session.
func GenerateUniqueSessionCode(tx *gorm.DB) (string, error) {
	seededRand := rand.New(rand.NewSource(time.Now().UnixNano()))

	for {
		b := make([]byte, sessionCodeLength)
		for i := range b {
			b[i] = letterBytes[seededRand.Intn(len(letterBytes))]
		}
		code := string(b)

		var session models.AttendanceSession
		err := tx.Where("code = ?", code).First(&session).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return code, nil
			}
			return "", err
		}
	}
}

package handlers

import (
	"time"

	"github.com/bkirwa/engagehub/database"
	"github.com/bkirwa/engagehub/models"
	"github.com/bkirwa/engagehub/utils"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttendanceSessionRequest struct {
	Title    string    `json:"title" validate:"required"`
	OpensAt  time.Time `json:"opens_at" validate:"required"`
	ClosesAt time.Time `json:"closes_at" validate:"required,gtfield=OpensAt"`
}

func CreateAttendanceSession(c *fiber.Ctx) error {
	var req AttendanceSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var session models.AttendanceSession
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code, err := utils.GenerateUniqueSessionCode(tx)
		if err != nil {
			return err
		}
		session = models.AttendanceSession{
			ID:       uuid.New(),
			Title:    req.Title,
			Code:     code,
			OpensAt:  req.OpensAt,
			ClosesAt: req.ClosesAt,
			IsOpen:   true,
		}
		return tx.Create(&session).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create session"})
	}

	return c.Status(fiber.StatusCreated).JSON(session)
}

func ListAttendanceSessions(c *fiber.Ctx) error {
	var sessions []models.AttendanceSession
	database.DB.Order("opens_at DESC").Find(&sessions)
	return c.JSON(sessions)
}

func CloseAttendanceSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")
	var session models.AttendanceSession
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	session.IsOpen = false
	database.DB.Save(&session)
	return c.JSON(session)
}

type CheckInRequest struct {
	Code string `json:"code" validate:"required"`
}

// CheckIn records attendance against the session code a user scanned.
func CheckIn(c *fiber.Ctx) error {
	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var session models.AttendanceSession
	if err := database.DB.Where("code = ?", req.Code).First(&session).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	now := time.Now()
	if !session.IsOpen || now.Before(session.OpensAt) || now.After(session.ClosesAt) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Session is not open for check-in"})
	}

	userID := currentUserID(c)

	var existing models.AttendanceRecord
	err := database.DB.Where("session_id = ? AND user_id = ?", session.ID, userID).
		First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{"message": "Already checked in", "checked_in_at": existing.CheckedInAt})
	}

	record := models.AttendanceRecord{
		ID:          uuid.New(),
		SessionID:   session.ID,
		UserID:      userID,
		CheckedInAt: now,
	}
	if err := database.DB.Create(&record).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check in"})
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

func GetSessionRecords(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var session models.AttendanceSession
	if err := database.DB.First(&session, "id = ?", sessionID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Session not found"})
	}

	var records []models.AttendanceRecord
	database.DB.Preload("User").
		Where("session_id = ?", session.ID).
		Order("checked_in_at ASC").
		Find(&records)

	return c.JSON(fiber.Map{"session": session, "records": records})
}

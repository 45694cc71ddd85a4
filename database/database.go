package database

import (
	"fmt"
	"log"

	config "github.com/bkirwa/engagehub/configs"
	"github.com/bkirwa/engagehub/models"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	dsn := config.Config("DATABASE_URL")

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}

	fmt.Println("✅ Database connected successfully")
}

func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Badge{},
		&models.Quiz{},
		&models.Question{},
		&models.QuestionOption{},
		&models.QuestionPair{},
		&models.QuizAttempt{},
		&models.AttemptAnswer{},
		&models.Post{},
		&models.AttendanceSession{},
		&models.AttendanceRecord{},
		&models.KpiMetric{},
	)
	if err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}

	// One in-progress attempt per user per quiz; backs up the
	// delete-then-insert discipline in the attempt service.
	if DB.Dialector.Name() == "postgres" {
		err = DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_one_open_attempt
			ON quiz_attempts (quiz_id, user_id) WHERE completed_at IS NULL`).Error
		if err != nil {
			log.Fatalf("🔥 Failed to create open-attempt index: %v", err)
		}
	}

	fmt.Println("✅ Database migration successful")
}

func SeedAdmin() {
	adminEmail := config.Config("ADMIN_EMAIL")
	adminPassword := config.Config("ADMIN_PASSWORD")

	var count int64
	err := DB.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count).Error
	if err != nil {
		log.Fatalf("🔥 Failed to check for admin user: %v", err)
		return
	}

	if count > 0 {
		log.Println("Admin user already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash admin password: %v", err)
		return
	}

	adminUser := models.User{
		ID:       uuid.New(),
		FullName: config.Config("ADMIN_FULL_NAME"),
		Email:    adminEmail,
		Password: string(hashedPassword),
		Role:     "admin",
	}

	if err := DB.Create(&adminUser).Error; err != nil {
		log.Fatalf("🔥 Failed to seed admin user: %v", err)
		return
	}

	log.Println("✅ Admin user seeded successfully")
}

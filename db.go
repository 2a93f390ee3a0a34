package main

import (
	"os"
	"strings"

	"eglise/models"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var db *gorm.DB

func initDB() {
	var err error
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN.")
	}
	db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect postgres database: %v", err)
	}
	// Control schema migrations with env DB_AUTO_MIGRATE (default true).
	shouldMigrate := true
	if v := os.Getenv("DB_AUTO_MIGRATE"); v != "" {
		lv := strings.ToLower(v)
		if lv == "false" || lv == "0" || lv == "no" {
			shouldMigrate = false
		}
	}
	if shouldMigrate {
		// Migrate models individually so a failure on one doesn't block others
		if err := db.AutoMigrate(&models.User{}); err != nil {
			log.Warnf("migration warning (users): %v", err)
		}
		if err := db.AutoMigrate(&models.Member{}); err != nil {
			log.Warnf("migration warning (members): %v", err)
		}
		if err := db.AutoMigrate(&models.Transaction{}); err != nil {
			log.Warnf("migration warning (transactions): %v", err)
		}
		if err := db.AutoMigrate(&models.Event{}); err != nil {
			log.Warnf("migration warning (events): %v", err)
		}
		if err := db.AutoMigrate(&models.WorshipSchedule{}); err != nil {
			log.Warnf("migration warning (worship_schedules): %v", err)
		}
		if err := db.AutoMigrate(&models.ChurchConfig{}); err != nil {
			log.Warnf("migration warning (church_config): %v", err)
		}
		if err := db.AutoMigrate(&models.Notification{}); err != nil {
			log.Warnf("migration warning (notifications): %v", err)
		}
	}
	seedDB()
}

func seedDB() {
	// Seed the admin account once; never touch it if it already exists.
	const adminEmail = "admin@eglisemanager.com"
	var count int64
	db.Model(&models.User{}).Where("email = ?", adminEmail).Count(&count)
	if count == 0 {
		hashed, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		admin := models.User{
			Email:              adminEmail,
			FullName:           "Administrateur",
			Password:           string(hashed),
			Role:               models.RoleAdmin,
			NotifyNewMembers:   true,
			NotifyTransactions: true,
			NotifyEvents:       true,
		}
		if err := db.Create(&admin).Error; err != nil {
			log.Warnf("failed to seed admin user: %v", err)
		} else {
			log.Infof("seeded admin user %s", adminEmail)
		}
	}
	ensureUploadBase()
}

// ensureUploadBase creates the base directory for event photo uploads.
func ensureUploadBase() {
	base := uploadBaseDir()
	if err := os.MkdirAll(base, 0755); err != nil {
		log.Warnf("failed to create upload base dir %s: %v", base, err)
	}
}

// uploadBaseDir returns the base directory for local uploads (configurable via UPLOAD_BASE env)
func uploadBaseDir() string {
	if v := os.Getenv("UPLOAD_BASE"); v != "" {
		return v
	}
	return "uploads"
}

package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"eglise/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Println("usage: go run ./cmd/create_user <email> <full name> <password> [role]")
		os.Exit(2)
	}
	email := os.Args[1]
	fullName := os.Args[2]
	password := os.Args[3]
	role := models.RoleUser
	if len(os.Args) > 4 {
		role = strings.ToUpper(os.Args[4])
	}
	switch role {
	case models.RoleAdmin, models.RoleUser, models.RoleSuperMember:
	default:
		log.Fatalf("unknown role %q (want ADMIN, USER or SUPER_MEMBER)", role)
	}

	_ = godotenv.Load()
	dsn := os.Getenv("DB_DSN")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("DB_DSN not set in environment")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}

	var existing models.User
	if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
		fmt.Printf("user %s already exists (id=%d)\n", email, existing.ID)
		os.Exit(0)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("bcrypt failed: %v", err)
	}
	user := models.User{
		Email:              email,
		FullName:           fullName,
		Password:           string(hashed),
		Role:               role,
		NotifyNewMembers:   true,
		NotifyTransactions: true,
		NotifyEvents:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("failed to create user: %v", err)
	}
	fmt.Printf("created user %s id=%d role=%s\n", email, user.ID, user.Role)
}

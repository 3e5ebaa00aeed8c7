// Bootstrap script to create or promote an administrator account.
// cmd/create-admin/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"lostfound-api/config"
	"lostfound-api/models"
	"lostfound-api/utils"
)

func main() {
	email := flag.String("email", "", "admin email address")
	name := flag.String("name", "Administrator", "display name for a new account")
	password := flag.String("password", "", "password for a new account")
	flag.Parse()

	if strings.TrimSpace(*email) == "" {
		log.Fatal("Usage: create-admin -email admin@campus.edu [-name ...] [-password ...]")
	}

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	config.InitDB()

	addr := strings.ToLower(strings.TrimSpace(*email))

	var user models.User
	err := config.DB.Where("email = ?", addr).First(&user).Error
	switch {
	case err == nil:
		if user.Role == models.RoleAdmin {
			log.Printf("User %s is already an admin, nothing to do", addr)
			return
		}
		if err := config.DB.Model(&user).Update("role", models.RoleAdmin).Error; err != nil {
			log.Fatal("Failed to promote user:", err)
		}
		log.Printf("Promoted %s to admin", addr)

	case errors.Is(err, gorm.ErrRecordNotFound):
		if *password == "" {
			log.Fatal("User does not exist; provide -password to create the account")
		}
		if ok, msg := utils.ValidatePassword(*password); !ok {
			log.Fatal(msg)
		}

		hash, err := utils.HashPassword(*password)
		if err != nil {
			log.Fatal("Failed to hash password:", err)
		}

		admin := models.User{
			Name:      strings.TrimSpace(*name),
			Email:     addr,
			Password:  hash,
			Role:      models.RoleAdmin,
			IsActive:  true,
			CreatedAt: time.Now(),
		}
		if err := config.DB.Create(&admin).Error; err != nil {
			log.Fatal("Failed to create admin:", err)
		}
		log.Printf("Admin created: %s", addr)

	default:
		log.Fatal("Failed to look up user:", err)
	}
}

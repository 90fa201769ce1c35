package main

import (
	"flag"
	"log"
	"time"

	"offer-management-api/config"
	"offer-management-api/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Creates an admin account, or promotes the account to admin when the email
// already exists.
func main() {
	email := flag.String("email", "", "admin email address")
	password := flag.String("password", "", "admin password (min 8 chars)")
	name := flag.String("name", "Administrator", "display name")
	flag.Parse()

	if *email == "" || len(*password) < 8 {
		log.Fatal("Usage: create-admin -email you@example.com -password <min 8 chars> [-name Name]")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	now := time.Now()

	var user models.User
	err = config.DB.Where("email = ?", *email).First(&user).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		user = models.User{
			Email:        *email,
			PasswordHash: string(hash),
			DisplayName:  *name,
			Role:         models.RoleAdmin,
			IsActive:     true,
			CreateAt:     now,
			UpdateAt:     now,
		}
		if err := config.DB.Create(&user).Error; err != nil {
			log.Fatalf("Failed to create admin: %v", err)
		}
		log.Printf("Admin account created: %s", *email)
	case err != nil:
		log.Fatalf("Failed to look up user: %v", err)
	default:
		user.Role = models.RoleAdmin
		user.PasswordHash = string(hash)
		user.IsActive = true
		user.DeleteAt = nil
		user.UpdateAt = now
		if err := config.DB.Save(&user).Error; err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		log.Printf("Existing account promoted to admin: %s", *email)
	}
}

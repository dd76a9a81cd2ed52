package main

import (
	"log"

	"go-components-inventory/internal/config"
	"go-components-inventory/internal/model"
	"go-components-inventory/pkg/database"

	"golang.org/x/crypto/bcrypt"
)

// Resets the admin password back to the configured default. Handy when the
// only account gets locked out of a single-user install.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := database.ConnectDB(cfg.Database)

	var user model.User
	if err := db.Where("email = ?", cfg.Auth.AdminEmail).First(&user).Error; err != nil {
		log.Fatalf("user %s not found in database: %v", cfg.Auth.AdminEmail, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	if err := db.Model(&user).Update("password", string(hashedPassword)).Error; err != nil {
		log.Fatalf("failed to update password in DB: %v", err)
	}

	log.Printf("password for %s has been reset", cfg.Auth.AdminEmail)
}

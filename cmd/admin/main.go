// Package main provides admin management utilities for Inkwell.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"inkwell/internal/config"
	"inkwell/internal/database"
	"inkwell/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage:")
		fmt.Println("  go run ./cmd/admin create <name> <email> <password>  - Create an admin account")
		fmt.Println("  go run ./cmd/admin promote <email>                   - Promote user to admin")
		fmt.Println("  go run ./cmd/admin demote <email>                    - Demote user from admin")
		fmt.Println("  go run ./cmd/admin list                              - List all admins")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	switch os.Args[1] {
	case "create":
		if len(os.Args) < 5 {
			fmt.Println("Usage: go run ./cmd/admin create <name> <email> <password>")
			os.Exit(1)
		}
		createAdmin(db, os.Args[2], os.Args[3], os.Args[4])

	case "promote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin promote <email>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.RoleAdmin)

	case "demote":
		if len(os.Args) < 3 {
			fmt.Println("Usage: go run ./cmd/admin demote <email>")
			os.Exit(1)
		}
		setRole(db, os.Args[2], models.RoleUser)

	case "list":
		listAdmins(db)

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}

func createAdmin(db *gorm.DB, name, email, password string) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		fmt.Printf("User with email %s already exists\n", email)
		os.Exit(1)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Database error: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	user := models.User{
		Name:     name,
		Email:    email,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	fmt.Printf("Admin %s (%s) created with ID %s\n", user.Name, user.Email, user.ID)
}

func setRole(db *gorm.DB, email, role string) {
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fmt.Printf("User with email %s not found\n", email)
		} else {
			log.Fatalf("Database error: %v", err)
		}
		os.Exit(1)
	}

	if user.Role == role {
		fmt.Printf("User %s already has role %s\n", user.Email, role)
		return
	}

	user.Role = role
	if err := db.Save(&user).Error; err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}
	fmt.Printf("User %s is now %s\n", user.Email, role)
}

func listAdmins(db *gorm.DB) {
	var admins []models.User
	if err := db.Where("role = ?", models.RoleAdmin).Order("created_at ASC").Find(&admins).Error; err != nil {
		log.Fatalf("Database error: %v", err)
	}

	if len(admins) == 0 {
		fmt.Println("No admins found")
		return
	}
	for _, admin := range admins {
		fmt.Printf("%s  %s  %s\n", admin.ID, admin.Name, admin.Email)
	}
}

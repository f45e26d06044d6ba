// File: cmd/seedadmin/main.go
// Seeds the initial administrator account. Safe to run repeatedly.
package main

import (
	"context"
	"log"

	"excelviz/internal/config"
	"excelviz/internal/database"
	"excelviz/internal/model"
	"excelviz/internal/service"
	"excelviz/internal/store"
)

const (
	adminName     = "Admin User"
	adminEmail    = "admin@example.com"
	adminPassword = "admin123"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer db.Close()

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if _, err := store.GetUserByEmail(context.Background(), db, adminEmail); err == nil {
		log.Println("Admin user already exists")
		return
	}

	hash, err := service.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	admin, err := store.CreateUser(context.Background(), db, &model.User{
		Name:         adminName,
		Email:        adminEmail,
		PasswordHash: hash,
		IsAdmin:      true,
	})
	if err != nil {
		log.Fatalf("failed to create admin: %v", err)
	}

	log.Printf("Admin user created: %s <%s>", admin.Name, admin.Email)
}

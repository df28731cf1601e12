package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/devtrack-dev/devtrack/db"
	"github.com/devtrack-dev/devtrack/internal/auth"
	"github.com/devtrack-dev/devtrack/internal/config"
	"github.com/devtrack-dev/devtrack/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	conn, err := db.Connect(cfg.DatabaseURL)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.SeedRoles(conn); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	r := router.NewRouter(conn, tokens, cfg.FallbackAdminEmail)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

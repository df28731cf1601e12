// Command seed prepares a database for the API: built-in roles, the
// fallback admin account, and optionally a handful of demo records.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/gorm"

	"github.com/devtrack-dev/devtrack/db"
	"github.com/devtrack-dev/devtrack/internal/auth"
	"github.com/devtrack-dev/devtrack/internal/models"
)

func main() {
	demo := flag.Bool("demo", false, "also create demo users, cohorts, classes and projects")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from the environment")
	}

	viper.SetDefault("DATABASE_URL", "tracker.db")
	viper.SetDefault("FALLBACK_ADMIN_EMAIL", "admin@devtrack.local")
	viper.SetDefault("SEED_ADMIN_PASSWORD", "changeme")
	viper.AutomaticEnv()

	conn, err := db.Connect(viper.GetString("DATABASE_URL"))

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(conn); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := db.SeedRoles(conn); err != nil {
		log.Fatalf("Failed to seed roles: %v", err)
	}

	adminEmail := viper.GetString("FALLBACK_ADMIN_EMAIL")

	if err := ensureUser(conn, "fallback-admin", adminEmail, viper.GetString("SEED_ADMIN_PASSWORD"), models.RoleAdmin); err != nil {
		log.Fatalf("Failed to create fallback admin: %v", err)
	}

	log.Printf("Fallback admin ready: %s", adminEmail)

	if *demo {
		if err := seedDemo(conn); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		log.Println("Demo data seeded")
	}
}

func ensureUser(conn *gorm.DB, username, email, password, roleName string) error {
	var existing models.User

	if err := conn.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil
	}

	var role models.Role

	if err := conn.Where("name = ?", roleName).First(&role).Error; err != nil {
		return err
	}

	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		return err
	}

	return conn.Create(&models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		RoleID:       role.ID,
	}).Error
}

func seedDemo(conn *gorm.DB) error {
	students := []struct {
		username string
		email    string
	}{
		{"ada.l", "ada@student.devtrack.local"},
		{"grace.h", "grace@student.devtrack.local"},
		{"alan.t", "alan@student.devtrack.local"},
	}

	for _, s := range students {
		if err := ensureUser(conn, s.username, s.email, "student-pass", models.RoleStudent); err != nil {
			return err
		}
	}

	cohort := models.Cohort{Name: "cohort-2026", Description: "Spring 2026 intake"}

	if err := conn.Where("name = ?", cohort.Name).FirstOrCreate(&cohort).Error; err != nil {
		return err
	}

	class := models.Class{Name: "backend-101", Description: "Backend fundamentals", CohortID: cohort.ID}

	if err := conn.Where("name = ?", class.Name).FirstOrCreate(&class).Error; err != nil {
		return err
	}

	var owner models.User

	if err := conn.Where("email = ?", students[0].email).First(&owner).Error; err != nil {
		return err
	}

	project := models.Project{
		Name:        "Demo Tracker",
		Description: "A demonstration project seeded for local development",
		GithubLink:  "https://github.com/devtrack-dev/demo-tracker",
		OwnerID:     owner.ID,
		ClassID:     &class.ID,
	}

	if err := conn.Where("name = ?", project.Name).FirstOrCreate(&project).Error; err != nil {
		return err
	}

	member := models.ProjectMember{ProjectID: project.ID, UserID: owner.ID}

	return conn.Where("project_id = ? AND user_id = ?", project.ID, owner.ID).FirstOrCreate(&member).Error
}

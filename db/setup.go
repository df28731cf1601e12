package db

import (
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/devtrack-dev/devtrack/internal/models"
)

// Connect opens the store named by databaseURL. Postgres DSNs are detected
// by scheme or key=value form; anything else is treated as a sqlite path.
func Connect(databaseURL string) (*gorm.DB, error) {
	if strings.HasPrefix(databaseURL, "postgres://") ||
		strings.HasPrefix(databaseURL, "postgresql://") ||
		strings.Contains(databaseURL, "host=") {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}

	return gorm.Open(sqlite.Open(databaseURL), &gorm.Config{})
}

func Migrate(conn *gorm.DB) error {
	tables := []interface{}{
		&models.Role{},
		&models.Cohort{},
		&models.Class{},
		&models.User{},
		&models.Project{},
		&models.ProjectMember{},
		&models.ProjectCohort{},
	}

	migrator := conn.Migrator()

	for _, table := range tables {
		if !migrator.HasTable(table) {
			if err := conn.AutoMigrate(table); err != nil {
				return err
			}
		}
	}

	return nil
}

// SeedRoles makes sure the two built-in roles exist.
func SeedRoles(conn *gorm.DB) error {
	for _, name := range []string{models.RoleAdmin, models.RoleStudent} {
		role := models.Role{Name: name}

		if err := conn.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	return nil
}

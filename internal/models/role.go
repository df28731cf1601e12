package models

import "gorm.io/gorm"

// Role names form a closed set. Authorization compares by name, never by
// numeric id.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

type Role struct {
	gorm.Model

	Name string `gorm:"uniqueIndex;not null"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID"`
}

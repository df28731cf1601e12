package models

import "gorm.io/gorm"

type Class struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string
	CohortID    uint `gorm:"not null;index"`

	// Relationships
	Cohort   Cohort    `gorm:"foreignKey:CohortID"`
	Users    []User    `gorm:"foreignKey:ClassID"`
	Projects []Project `gorm:"foreignKey:ClassID"`
}

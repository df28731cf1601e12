package models

import "gorm.io/gorm"

type Cohort struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string

	// Relationships
	Classes        []Class         `gorm:"foreignKey:CohortID"`
	ProjectCohorts []ProjectCohort `gorm:"foreignKey:CohortID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

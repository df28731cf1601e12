package models

import "gorm.io/gorm"

type ProjectCohort struct {
	gorm.Model

	ProjectID uint `gorm:"not null;uniqueIndex:idx_project_cohort"`
	CohortID  uint `gorm:"not null;uniqueIndex:idx_project_cohort"`

	// Relationships
	Project Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	Cohort  Cohort  `gorm:"foreignKey:CohortID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model

	Name        string `gorm:"not null"`
	Description string `gorm:"not null"`
	GithubLink  string `gorm:"not null"`
	ImageURL    string
	OwnerID     uint  `gorm:"not null;index"`
	ClassID     *uint `gorm:"index"`

	// Relationships
	Owner          User            `gorm:"foreignKey:OwnerID"`
	Class          *Class          `gorm:"foreignKey:ClassID"`
	ProjectMembers []ProjectMember `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
	ProjectCohorts []ProjectCohort `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

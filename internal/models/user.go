package models

import "gorm.io/gorm"

type User struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	RoleID       uint   `gorm:"not null;index"`
	ClassID      *uint  `gorm:"index"`

	// Relationships
	Role               Role            `gorm:"foreignKey:RoleID"`
	Class              *Class          `gorm:"foreignKey:ClassID"`
	OwnedProjects      []Project       `gorm:"foreignKey:OwnerID"`
	ProjectMemberships []ProjectMember `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE"`
}

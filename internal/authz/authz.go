// Package authz holds the role and ownership rules. Every mutating handler
// consults it before touching the database; decisions are made from the
// verified token identity, never from request-body fields.
package authz

import (
	"github.com/devtrack-dev/devtrack/internal/auth"
	"github.com/devtrack-dev/devtrack/internal/models"
)

type Action string

const (
	ActionDeleteProject       Action = "project:delete"
	ActionCreateCohort        Action = "cohort:create"
	ActionCreateClass         Action = "class:create"
	ActionCreateProjectCohort Action = "project_cohort:create"
	ActionListUsers           Action = "user:list"
	ActionDeleteUser          Action = "user:delete"
)

// adminOnly lists the actions reserved for admins. Anything not listed is
// open to any authenticated user.
var adminOnly = map[Action]bool{
	ActionDeleteProject:       true,
	ActionCreateCohort:        true,
	ActionCreateClass:         true,
	ActionCreateProjectCohort: true,
	ActionListUsers:           true,
	ActionDeleteUser:          true,
}

func Can(identity auth.Identity, action Action) bool {
	if adminOnly[action] {
		return identity.Role == models.RoleAdmin
	}

	return true
}

// CanModifyProject allows admins and the project owner.
func CanModifyProject(identity auth.Identity, ownerID uint) bool {
	return identity.Role == models.RoleAdmin || identity.UserID == ownerID
}

// CanAssignMember allows self-assignment for anyone; assigning someone else
// requires admin.
func CanAssignMember(identity auth.Identity, targetUserID uint) bool {
	return identity.Role == models.RoleAdmin || identity.UserID == targetUserID
}

// CanSetProjectOwner allows admins to create projects on behalf of another
// user; everyone else owns what they create.
func CanSetProjectOwner(identity auth.Identity, ownerID uint) bool {
	return identity.Role == models.RoleAdmin || identity.UserID == ownerID
}

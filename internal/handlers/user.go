package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtrack-dev/devtrack/internal/authz"
	"github.com/devtrack-dev/devtrack/internal/models"
	"github.com/devtrack-dev/devtrack/internal/utils"
)

type UserHandler struct {
	DB *gorm.DB

	// FallbackAdminEmail names the account that inherits a deleted user's
	// projects. Deletion is refused outright when it cannot be resolved.
	FallbackAdminEmail string
}

func NewUserHandler(conn *gorm.DB, fallbackAdminEmail string) *UserHandler {
	return &UserHandler{DB: conn, FallbackAdminEmail: fallbackAdminEmail}
}

func (h *UserHandler) ListUsers(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !authz.Can(identity, authz.ActionListUsers) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only admins can list users"})
		return
	}

	var users []models.User

	if err := h.DB.Preload("Role").Find(&users).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}

	response := make([]UserResponse, 0, len(users))

	for _, user := range users {
		response = append(response, UserResponse{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
			Role:     user.Role.Name,
			ClassID:  user.ClassID,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

// DeleteUser removes a user after reassigning their projects to the fallback
// admin and dropping their memberships. The three writes are one
// transaction; a concurrent reader never sees a half-deleted user.
func (h *UserHandler) DeleteUser(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !authz.Can(identity, authz.ActionDeleteUser) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only admins can delete users"})
		return
	}

	var user models.User

	if err := h.DB.First(&user, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	var fallback models.User

	if err := h.DB.Where("email = ?", h.FallbackAdminEmail).First(&fallback).Error; err != nil {
		log.Printf("Fallback admin %q not found, refusing user deletion: %v", h.FallbackAdminEmail, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Server is misconfigured: fallback admin account is missing"})
		return
	}

	if user.ID == fallback.ID {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "The fallback admin account cannot be deleted"})
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Project{}).
			Where("owner_id = ?", user.ID).
			Update("owner_id", fallback.ID).Error; err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", user.ID).
			Delete(&models.ProjectMember{}).Error; err != nil {
			return err
		}

		return tx.Delete(&user).Error
	})

	if err != nil {
		log.Printf("Failed to delete user %d: %v", user.ID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func (h *UserHandler) GetUserProjects(ctx *gin.Context) {
	var user models.User

	if err := h.DB.First(&user, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	var projects []models.Project

	if err := h.DB.Where("owner_id = ?", user.ID).Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, newProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

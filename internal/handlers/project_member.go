package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtrack-dev/devtrack/internal/authz"
	"github.com/devtrack-dev/devtrack/internal/models"
	"github.com/devtrack-dev/devtrack/internal/utils"
)

type ProjectMemberHandler struct {
	DB *gorm.DB
}

func NewProjectMemberHandler(conn *gorm.DB) *ProjectMemberHandler {
	return &ProjectMemberHandler{DB: conn}
}

type CreateProjectMemberRequest struct {
	ProjectID uint `json:"project_id" binding:"required"`
	UserID    uint `json:"user_id"`
}

type ProjectMemberResponse struct {
	ID        uint `json:"id"`
	ProjectID uint `json:"project_id"`
	UserID    uint `json:"user_id"`
}

func (h *ProjectMemberHandler) ListProjectMembers(ctx *gin.Context) {
	var members []models.ProjectMember

	if err := h.DB.Find(&members).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project members"})
		return
	}

	response := make([]ProjectMemberResponse, 0, len(members))

	for _, member := range members {
		response = append(response, ProjectMemberResponse{
			ID:        member.ID,
			ProjectID: member.ProjectID,
			UserID:    member.UserID,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectMemberHandler) CreateProjectMember(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateProjectMemberRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// Omitted user_id means self-assignment.
	userID := body.UserID

	if userID == 0 {
		userID = identity.UserID
	}

	if !authz.CanAssignMember(identity, userID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Students can only assign themselves"})
		return
	}

	var project models.Project

	if err := h.DB.First(&project, "id = ?", body.ProjectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	var user models.User

	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve user"})
		}
		return
	}

	var existing models.ProjectMember

	err = h.DB.Where("project_id = ? AND user_id = ?", project.ID, user.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User is already a member of this project"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing membership"})
		return
	}

	member := models.ProjectMember{
		ProjectID: project.ID,
		UserID:    user.ID,
	}

	if err := h.DB.Create(&member).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project member"})
		return
	}

	ctx.JSON(http.StatusCreated, ProjectMemberResponse{
		ID:        member.ID,
		ProjectID: member.ProjectID,
		UserID:    member.UserID,
	})
}

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

type ProjectHandler struct {
	DB *gorm.DB
}

func NewProjectHandler(conn *gorm.DB) *ProjectHandler {
	return &ProjectHandler{DB: conn}
}

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,min=7"`
	Description string `json:"description" binding:"required,min=20"`
	GithubLink  string `json:"github_link" binding:"required,startswith=https://github.com/"`
	ImageURL    string `json:"image_url"`
	OwnerID     uint   `json:"owner_id"`
	ClassID     *uint  `json:"class_id"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=7"`
	Description *string `json:"description" binding:"omitempty,min=20"`
	GithubLink  *string `json:"github_link" binding:"omitempty,startswith=https://github.com/"`
	ImageURL    *string `json:"image_url"`
	ClassID     *uint   `json:"class_id"`
}

type ProjectResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	GithubLink  string `json:"github_link"`
	ImageURL    string `json:"image_url"`
	OwnerID     uint   `json:"owner_id"`
	ClassID     *uint  `json:"class_id"`
}

func newProjectResponse(project models.Project) ProjectResponse {
	return ProjectResponse{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		GithubLink:  project.GithubLink,
		ImageURL:    project.ImageURL,
		OwnerID:     project.OwnerID,
		ClassID:     project.ClassID,
	}
}

func (h *ProjectHandler) ListProjects(ctx *gin.Context) {
	var projects []models.Project

	if err := h.DB.Find(&projects).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve projects"})
		return
	}

	response := make([]ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, newProjectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectHandler) GetProject(ctx *gin.Context) {
	var project models.Project

	if err := h.DB.First(&project, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	ctx.JSON(http.StatusOK, newProjectResponse(project))
}

func (h *ProjectHandler) CreateProject(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body CreateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	// Owner is forced to the caller; only admins may create on another
	// user's behalf.
	ownerID := identity.UserID

	if body.OwnerID != 0 && authz.CanSetProjectOwner(identity, body.OwnerID) {
		ownerID = body.OwnerID
	}

	project := models.Project{
		Name:        body.Name,
		Description: body.Description,
		GithubLink:  body.GithubLink,
		ImageURL:    body.ImageURL,
		OwnerID:     ownerID,
		ClassID:     body.ClassID,
	}

	if err := h.DB.Create(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		return
	}

	ctx.JSON(http.StatusCreated, newProjectResponse(project))
}

func (h *ProjectHandler) UpdateProject(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var body UpdateProjectRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	var project models.Project

	if err := h.DB.First(&project, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	if !authz.CanModifyProject(identity, project.OwnerID) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "You can only update your own projects"})
		return
	}

	// Partial update: absent fields keep their stored value.
	if body.Name != nil {
		project.Name = *body.Name
	}

	if body.Description != nil {
		project.Description = *body.Description
	}

	if body.GithubLink != nil {
		project.GithubLink = *body.GithubLink
	}

	if body.ImageURL != nil {
		project.ImageURL = *body.ImageURL
	}

	if body.ClassID != nil {
		project.ClassID = body.ClassID
	}

	if err := h.DB.Save(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update project"})
		return
	}

	ctx.JSON(http.StatusOK, newProjectResponse(project))
}

func (h *ProjectHandler) DeleteProject(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !authz.Can(identity, authz.ActionDeleteProject) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only admins can delete projects"})
		return
	}

	var project models.Project

	if err := h.DB.First(&project, "id = ?", ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project"})
		}
		return
	}

	if err := h.DB.Delete(&project).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete project"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}

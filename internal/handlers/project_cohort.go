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

type ProjectCohortHandler struct {
	DB *gorm.DB
}

func NewProjectCohortHandler(conn *gorm.DB) *ProjectCohortHandler {
	return &ProjectCohortHandler{DB: conn}
}

type CreateProjectCohortRequest struct {
	ProjectID uint `json:"project_id" binding:"required"`
	CohortID  uint `json:"cohort_id" binding:"required"`
}

type ProjectCohortResponse struct {
	ID        uint `json:"id"`
	ProjectID uint `json:"project_id"`
	CohortID  uint `json:"cohort_id"`
}

func (h *ProjectCohortHandler) ListProjectCohorts(ctx *gin.Context) {
	var assignments []models.ProjectCohort

	if err := h.DB.Find(&assignments).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve project cohorts"})
		return
	}

	response := make([]ProjectCohortResponse, 0, len(assignments))

	for _, assignment := range assignments {
		response = append(response, ProjectCohortResponse{
			ID:        assignment.ID,
			ProjectID: assignment.ProjectID,
			CohortID:  assignment.CohortID,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ProjectCohortHandler) CreateProjectCohort(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !authz.Can(identity, authz.ActionCreateProjectCohort) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only admins can assign projects to cohorts"})
		return
	}

	var body CreateProjectCohortRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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

	var cohort models.Cohort

	if err := h.DB.First(&cohort, "id = ?", body.CohortID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Cohort not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cohort"})
		}
		return
	}

	var existing models.ProjectCohort

	err = h.DB.Where("project_id = ? AND cohort_id = ?", project.ID, cohort.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Project is already assigned to this cohort"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing assignment"})
		return
	}

	assignment := models.ProjectCohort{
		ProjectID: project.ID,
		CohortID:  cohort.ID,
	}

	if err := h.DB.Create(&assignment).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign project to cohort"})
		return
	}

	ctx.JSON(http.StatusCreated, ProjectCohortResponse{
		ID:        assignment.ID,
		ProjectID: assignment.ProjectID,
		CohortID:  assignment.CohortID,
	})
}

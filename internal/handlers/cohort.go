package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devtrack-dev/devtrack/internal/authz"
	"github.com/devtrack-dev/devtrack/internal/models"
	"github.com/devtrack-dev/devtrack/internal/utils"
)

type CohortHandler struct {
	DB *gorm.DB
}

func NewCohortHandler(conn *gorm.DB) *CohortHandler {
	return &CohortHandler{DB: conn}
}

type CreateCohortRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CohortResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (h *CohortHandler) ListCohorts(ctx *gin.Context) {
	var cohorts []models.Cohort

	if err := h.DB.Find(&cohorts).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve cohorts"})
		return
	}

	response := make([]CohortResponse, 0, len(cohorts))

	for _, cohort := range cohorts {
		response = append(response, CohortResponse{
			ID:          cohort.ID,
			Name:        cohort.Name,
			Description: cohort.Description,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *CohortHandler) CreateCohort(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !authz.Can(identity, authz.ActionCreateCohort) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only admins can create cohorts"})
		return
	}

	var body CreateCohortRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	cohort := models.Cohort{
		Name:        body.Name,
		Description: body.Description,
	}

	if err := h.DB.Create(&cohort).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create cohort"})
		return
	}

	ctx.JSON(http.StatusCreated, CohortResponse{
		ID:          cohort.ID,
		Name:        cohort.Name,
		Description: cohort.Description,
	})
}

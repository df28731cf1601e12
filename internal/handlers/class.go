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

type ClassHandler struct {
	DB *gorm.DB
}

func NewClassHandler(conn *gorm.DB) *ClassHandler {
	return &ClassHandler{DB: conn}
}

type CreateClassRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	CohortID    uint   `json:"cohort_id" binding:"required"`
}

type ClassResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CohortID    uint   `json:"cohort_id"`
}

func (h *ClassHandler) ListClasses(ctx *gin.Context) {
	var classes []models.Class

	if err := h.DB.Find(&classes).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve classes"})
		return
	}

	response := make([]ClassResponse, 0, len(classes))

	for _, class := range classes {
		response = append(response, ClassResponse{
			ID:          class.ID,
			Name:        class.Name,
			Description: class.Description,
			CohortID:    class.CohortID,
		})
	}

	ctx.JSON(http.StatusOK, response)
}

func (h *ClassHandler) CreateClass(ctx *gin.Context) {
	identity, err := utils.CurrentIdentity(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	if !authz.Can(identity, authz.ActionCreateClass) {
		ctx.JSON(http.StatusForbidden, gin.H{"error": "Only admins can create classes"})
		return
	}

	var body CreateClassRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
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

	class := models.Class{
		Name:        body.Name,
		Description: body.Description,
		CohortID:    cohort.ID,
	}

	if err := h.DB.Create(&class).Error; err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create class"})
		return
	}

	ctx.JSON(http.StatusCreated, ClassResponse{
		ID:          class.ID,
		Name:        class.Name,
		Description: class.Description,
		CohortID:    class.CohortID,
	})
}

// controllers/template.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"rentpro-backend/config"
	"rentpro-backend/models"
	"rentpro-backend/utils"
)

// CreateTemplateInput defines the expected JSON structure
type CreateTemplateInput struct {
	Category       string `json:"category" binding:"required,oneof=payment contract display_payment display_contract"`
	Variant        string `json:"variant" binding:"required,oneof=approaching passed"`
	MessageEnglish string `json:"messageEnglish" binding:"required"`
	MessageAmharic string `json:"messageAmharic" binding:"required"`
}

// UpdateTemplateInput defines the expected JSON structure
type UpdateTemplateInput struct {
	MessageEnglish *string `json:"messageEnglish"`
	MessageAmharic *string `json:"messageAmharic"`
	IsActive       *bool   `json:"isActive"`
}

// CreateTemplate creates a new SMS template
func CreateTemplate(c *gin.Context) {
	var input CreateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// One template per category/variant pair
	var existing models.SmsTemplate
	if err := config.DB.Where("category = ? AND variant = ?", input.Category, input.Variant).
		First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "Template for this category and variant already exists")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	template := models.SmsTemplate{
		Category:       input.Category,
		Variant:        input.Variant,
		MessageEnglish: input.MessageEnglish,
		MessageAmharic: input.MessageAmharic,
		IsActive:       true,
	}

	if err := config.DB.Create(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create template")
		return
	}

	c.JSON(http.StatusCreated, template)
}

// GetTemplates retrieves all SMS templates
func GetTemplates(c *gin.Context) {
	query := config.DB.Model(&models.SmsTemplate{})
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var templates []models.SmsTemplate
	if err := query.Order("category, variant").Find(&templates).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve templates")
		return
	}

	c.JSON(http.StatusOK, templates)
}

// GetTemplate retrieves a specific template by ID
func GetTemplate(c *gin.Context) {
	templateUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID format")
		return
	}

	var template models.SmsTemplate
	if err := config.DB.Where("id = ?", templateUUID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	c.JSON(http.StatusOK, template)
}

// UpdateTemplate updates an existing template's text or active flag
func UpdateTemplate(c *gin.Context) {
	templateUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID format")
		return
	}

	var input UpdateTemplateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var template models.SmsTemplate
	if err := config.DB.Where("id = ?", templateUUID).First(&template).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if input.MessageEnglish != nil {
		template.MessageEnglish = *input.MessageEnglish
	}
	if input.MessageAmharic != nil {
		template.MessageAmharic = *input.MessageAmharic
	}
	if input.IsActive != nil {
		template.IsActive = *input.IsActive
	}

	if err := config.DB.Save(&template).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update template")
		return
	}

	c.JSON(http.StatusOK, template)
}

// DeleteTemplate deletes a template
func DeleteTemplate(c *gin.Context) {
	templateUUID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid template ID format")
		return
	}

	result := config.DB.Where("id = ?", templateUUID).Delete(&models.SmsTemplate{})
	if result.Error != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to delete template")
		return
	}
	if result.RowsAffected == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Template not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

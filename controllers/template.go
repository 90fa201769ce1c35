package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"offer-management-api/config"
	"offer-management-api/models"
	"offer-management-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListTemplates returns caption templates
func ListTemplates(c *gin.Context) {
	var templates []models.Template
	if err := config.DB.Preload("SocialNetworks").
		Where("delete_at IS NULL").
		Order("name ASC").
		Find(&templates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch templates"})
		return
	}

	responses := make([]models.TemplateResponse, 0, len(templates))
	for i := range templates {
		responses = append(responses, templates[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"templates": responses,
		"total":     len(responses),
	})
}

// GetTemplate returns a template with its per-network overrides
func GetTemplate(c *gin.Context) {
	templateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}

	var template models.Template
	if err := config.DB.Preload("SocialNetworks").
		Where("template_id = ? AND delete_at IS NULL", templateID).
		First(&template).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	var overrides []models.TemplateSocialNetwork
	config.DB.Where("template_id = ?", templateID).Find(&overrides)

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"template":  template.ToResponse(),
		"overrides": overrides,
	})
}

// CreateTemplate creates a template
func CreateTemplate(c *gin.Context) {
	var req models.TemplateCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := utils.Slugify(req.Slug)

	var count int64
	config.DB.Model(&models.Template{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Template slug already exists"})
		return
	}

	now := time.Now()
	template := models.Template{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Body:        req.Body,
		CreateAt:    now,
		UpdateAt:    now,
	}
	if len(req.Channels) > 0 {
		template.Channels = strings.Join(req.Channels, ",")
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&template).Error; err != nil {
			return err
		}
		return replaceTemplateNetworks(tx, &template, req.SocialNetworks)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create template"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"template": template.ToResponse(),
		"message":  "Template created successfully",
	})
}

// UpdateTemplate applies partial updates to a template
func UpdateTemplate(c *gin.Context) {
	templateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}

	var req models.TemplateUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var template models.Template
	if err := config.DB.Where("template_id = ? AND delete_at IS NULL", templateID).
		First(&template).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	if req.Name != nil {
		template.Name = *req.Name
	}
	if req.Slug != nil {
		template.Slug = utils.Slugify(*req.Slug)
	}
	if req.Description != nil {
		template.Description = req.Description
	}
	if req.Body != nil {
		template.Body = *req.Body
	}
	if len(req.Channels) > 0 {
		template.Channels = strings.Join(req.Channels, ",")
	}
	template.UpdateAt = time.Now()

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&template).Error; err != nil {
			return err
		}
		if req.SocialNetworks != nil {
			return replaceTemplateNetworks(tx, &template, req.SocialNetworks)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update template"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"template": template.ToResponse(),
		"message":  "Template updated successfully",
	})
}

// DeleteTemplate soft deletes a template
func DeleteTemplate(c *gin.Context) {
	templateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}

	result := config.DB.Model(&models.Template{}).
		Where("template_id = ? AND delete_at IS NULL", templateID).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete template"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Template deleted successfully"})
}

type TemplateOverrideRequest struct {
	CustomBody string `json:"custom_body" binding:"required"`
}

// SetTemplateOverride upserts the custom body used when rendering this
// template for one network.
func SetTemplateOverride(c *gin.Context) {
	templateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}
	network := strings.ToLower(strings.TrimSpace(c.Param("network")))
	if network == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Network is required"})
		return
	}

	var req TemplateOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var template models.Template
	if err := config.DB.Where("template_id = ? AND delete_at IS NULL", templateID).
		First(&template).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Template not found"})
		return
	}

	now := time.Now()
	var override models.TemplateSocialNetwork
	err = config.DB.Where("template_id = ? AND social_network = ?", templateID, network).
		First(&override).Error
	if err == gorm.ErrRecordNotFound {
		override = models.TemplateSocialNetwork{
			TemplateID:    templateID,
			SocialNetwork: network,
			CustomBody:    req.CustomBody,
			CreateAt:      now,
			UpdateAt:      now,
		}
		err = config.DB.Create(&override).Error
	} else if err == nil {
		override.CustomBody = req.CustomBody
		override.UpdateAt = now
		err = config.DB.Save(&override).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save override"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"override": override,
	})
}

// GetTemplateOverride returns the custom body for one (template, network)
// pair, 404 when none is saved.
func GetTemplateOverride(c *gin.Context) {
	templateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}
	network := strings.ToLower(strings.TrimSpace(c.Param("network")))

	var override models.TemplateSocialNetwork
	if err := config.DB.Where("template_id = ? AND social_network = ?", templateID, network).
		First(&override).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Override not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"override": override,
	})
}

// DeleteTemplateOverride removes the per-network custom body; rendering
// falls back to the template's default body.
func DeleteTemplateOverride(c *gin.Context) {
	templateID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid template ID"})
		return
	}
	network := strings.ToLower(strings.TrimSpace(c.Param("network")))

	result := config.DB.Where("template_id = ? AND social_network = ?", templateID, network).
		Delete(&models.TemplateSocialNetwork{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete override"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Override not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Override removed"})
}

// replaceTemplateNetworks resets the template's social network associations
func replaceTemplateNetworks(tx *gorm.DB, template *models.Template, configIDs []int) error {
	if configIDs == nil {
		return nil
	}
	var configs []models.SocialNetworkConfig
	if len(configIDs) > 0 {
		if err := tx.Where("config_id IN ?", configIDs).Find(&configs).Error; err != nil {
			return err
		}
	}
	return tx.Model(template).Association("SocialNetworks").Replace(configs)
}

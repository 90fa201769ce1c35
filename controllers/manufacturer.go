package controllers

import (
	"net/http"
	"strconv"
	"time"

	"offer-management-api/config"
	"offer-management-api/models"
	"offer-management-api/utils"

	"github.com/gin-gonic/gin"
)

// ListManufacturers returns manufacturers/brands
func ListManufacturers(c *gin.Context) {
	query := config.DB.Model(&models.Manufacturer{}).Where("delete_at IS NULL")

	if c.Query("active") == "true" {
		query = query.Where("active = true")
	}

	var manufacturers []models.Manufacturer
	if err := query.Order("name ASC").Find(&manufacturers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch manufacturers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"manufacturers": manufacturers,
		"total":         len(manufacturers),
	})
}

// GetManufacturer returns a single manufacturer
func GetManufacturer(c *gin.Context) {
	manufacturerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
		return
	}

	var manufacturer models.Manufacturer
	if err := config.DB.Where("manufacturer_id = ? AND delete_at IS NULL", manufacturerID).
		First(&manufacturer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"manufacturer": manufacturer,
	})
}

// CreateManufacturer creates a manufacturer
func CreateManufacturer(c *gin.Context) {
	var req models.ManufacturerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := utils.Slugify(req.Slug)

	var count int64
	config.DB.Model(&models.Manufacturer{}).Where("slug = ? OR name = ?", slug, req.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Manufacturer already exists"})
		return
	}

	now := time.Now()
	manufacturer := models.Manufacturer{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Website:     req.Website,
		Logo:        req.Logo,
		Active:      true,
		CreateAt:    now,
		UpdateAt:    now,
	}
	if req.Active != nil {
		manufacturer.Active = *req.Active
	}

	if err := config.DB.Create(&manufacturer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create manufacturer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":      true,
		"manufacturer": manufacturer,
		"message":      "Manufacturer created successfully",
	})
}

// UpdateManufacturer applies partial updates to a manufacturer
func UpdateManufacturer(c *gin.Context) {
	manufacturerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
		return
	}

	var req models.ManufacturerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var manufacturer models.Manufacturer
	if err := config.DB.Where("manufacturer_id = ? AND delete_at IS NULL", manufacturerID).
		First(&manufacturer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer not found"})
		return
	}

	if req.Name != nil {
		manufacturer.Name = *req.Name
	}
	if req.Slug != nil {
		manufacturer.Slug = utils.Slugify(*req.Slug)
	}
	if req.Description != nil {
		manufacturer.Description = req.Description
	}
	if req.Website != nil {
		manufacturer.Website = req.Website
	}
	if req.Logo != nil {
		manufacturer.Logo = req.Logo
	}
	if req.Active != nil {
		manufacturer.Active = *req.Active
	}
	manufacturer.UpdateAt = time.Now()

	if err := config.DB.Save(&manufacturer).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update manufacturer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"manufacturer": manufacturer,
		"message":      "Manufacturer updated successfully",
	})
}

// DeleteManufacturer soft deletes a manufacturer and detaches its offers
func DeleteManufacturer(c *gin.Context) {
	manufacturerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid manufacturer ID"})
		return
	}

	result := config.DB.Model(&models.Manufacturer{}).
		Where("manufacturer_id = ? AND delete_at IS NULL", manufacturerID).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete manufacturer"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Manufacturer not found"})
		return
	}

	config.DB.Model(&models.Offer{}).
		Where("manufacturer_id = ?", manufacturerID).
		Update("manufacturer_id", nil)

	c.JSON(http.StatusOK, gin.H{"message": "Manufacturer deleted successfully"})
}

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

// ListSellers returns sellers. Inactive sellers are included so the admin
// UI can re-enable them.
func ListSellers(c *gin.Context) {
	query := config.DB.Model(&models.Seller{}).Where("delete_at IS NULL")

	if c.Query("active") == "true" {
		query = query.Where("active = true")
	}

	var sellers []models.Seller
	if err := query.Order("name ASC").Find(&sellers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sellers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"sellers": sellers,
		"total":   len(sellers),
	})
}

// GetSeller returns a single seller
func GetSeller(c *gin.Context) {
	sellerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller ID"})
		return
	}

	var seller models.Seller
	if err := config.DB.Where("seller_id = ? AND delete_at IS NULL", sellerID).
		First(&seller).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"seller":  seller,
	})
}

// CreateSeller creates a seller
func CreateSeller(c *gin.Context) {
	var req models.SellerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := utils.Slugify(req.Slug)

	var count int64
	config.DB.Model(&models.Seller{}).Where("slug = ? OR name = ?", slug, req.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Seller already exists"})
		return
	}

	now := time.Now()
	seller := models.Seller{
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		Website:     req.Website,
		Color:       req.Color,
		Active:      true,
		CreateAt:    now,
		UpdateAt:    now,
	}
	if req.Active != nil {
		seller.Active = *req.Active
	}

	if err := config.DB.Create(&seller).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create seller"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"seller":  seller,
		"message": "Seller created successfully",
	})
}

// UpdateSeller applies partial updates to a seller
func UpdateSeller(c *gin.Context) {
	sellerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller ID"})
		return
	}

	var req models.SellerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var seller models.Seller
	if err := config.DB.Where("seller_id = ? AND delete_at IS NULL", sellerID).
		First(&seller).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
		return
	}

	if req.Name != nil {
		seller.Name = *req.Name
	}
	if req.Slug != nil {
		seller.Slug = utils.Slugify(*req.Slug)
	}
	if req.Description != nil {
		seller.Description = req.Description
	}
	if req.Website != nil {
		seller.Website = req.Website
	}
	if req.Color != nil {
		seller.Color = req.Color
	}
	if req.Active != nil {
		seller.Active = *req.Active
	}
	seller.UpdateAt = time.Now()

	if err := config.DB.Save(&seller).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update seller"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"seller":  seller,
		"message": "Seller updated successfully",
	})
}

// DeleteSeller soft deletes a seller. Its offers stay but drop out of
// listings until the seller is restored.
func DeleteSeller(c *gin.Context) {
	sellerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid seller ID"})
		return
	}

	result := config.DB.Model(&models.Seller{}).
		Where("seller_id = ? AND delete_at IS NULL", sellerID).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete seller"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Seller not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Seller deleted successfully"})
}

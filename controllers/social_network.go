package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"offer-management-api/config"
	"offer-management-api/models"

	"github.com/gin-gonic/gin"
)

// ListSocialNetworks returns network decoration configs
func ListSocialNetworks(c *gin.Context) {
	query := config.DB.Model(&models.SocialNetworkConfig{})

	if c.Query("active") == "true" {
		query = query.Where("active = true")
	}

	var configs []models.SocialNetworkConfig
	if err := query.Order("network ASC").Find(&configs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch social networks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"networks": configs,
		"total":    len(configs),
	})
}

// CreateSocialNetwork registers a network. Network names are lowercase.
func CreateSocialNetwork(c *gin.Context) {
	var req models.SocialNetworkCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	network := strings.ToLower(strings.TrimSpace(req.Network))

	var count int64
	config.DB.Model(&models.SocialNetworkConfig{}).Where("network = ?", network).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Network already configured"})
		return
	}

	cfg := models.SocialNetworkConfig{
		Network:    network,
		Color:      req.Color,
		PrefixText: req.PrefixText,
		SuffixText: req.SuffixText,
		Active:     true,
	}
	if req.Active != nil {
		cfg.Active = *req.Active
	}

	if err := config.DB.Create(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create network config"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"network": cfg,
	})
}

// UpdateSocialNetwork updates decoration and the active flag. The network
// name itself never changes.
func UpdateSocialNetwork(c *gin.Context) {
	configID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid network ID"})
		return
	}

	var req models.SocialNetworkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var cfg models.SocialNetworkConfig
	if err := config.DB.Where("config_id = ?", configID).First(&cfg).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Network not found"})
		return
	}

	if req.Color != nil {
		cfg.Color = req.Color
	}
	if req.PrefixText != nil {
		cfg.PrefixText = req.PrefixText
	}
	if req.SuffixText != nil {
		cfg.SuffixText = req.SuffixText
	}
	if req.Active != nil {
		cfg.Active = *req.Active
	}

	if err := config.DB.Save(&cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update network config"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"network": cfg,
	})
}

// DeleteSocialNetwork removes a network config. Existing publications keep
// their rendered captions.
func DeleteSocialNetwork(c *gin.Context) {
	configID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid network ID"})
		return
	}

	result := config.DB.Where("config_id = ?", configID).Delete(&models.SocialNetworkConfig{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete network config"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Network not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Network removed"})
}

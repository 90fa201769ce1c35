package controllers

import (
	"net/http"
	"strings"
	"time"

	"offer-management-api/config"
	"offer-management-api/models"
	"offer-management-api/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetSettings returns all app settings plus the supported currency codes
func GetSettings(c *gin.Context) {
	var settings []models.AppSetting
	if err := config.DB.Order("setting_key ASC").Find(&settings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"settings":   settings,
		"currencies": utils.CurrencyCodes(),
	})
}

type SettingUpdateRequest struct {
	Value string `json:"value" binding:"required"`
}

// UpdateSetting upserts a setting by key. The default currency value is
// validated against the known codes.
func UpdateSetting(c *gin.Context) {
	key := c.Param("key")

	var req SettingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	value := req.Value
	if key == models.SettingDefaultCurrency {
		value = strings.ToUpper(strings.TrimSpace(value))
		known := false
		for _, code := range utils.CurrencyCodes() {
			if code == value {
				known = true
				break
			}
		}
		if !known {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown currency code"})
			return
		}
	}

	var setting models.AppSetting
	err := config.DB.Where("setting_key = ?", key).First(&setting).Error
	if err == gorm.ErrRecordNotFound {
		setting = models.AppSetting{Key: key, Value: &value}
		err = config.DB.Create(&setting).Error
	} else if err == nil {
		setting.Value = &value
		err = config.DB.Save(&setting).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"setting": setting,
	})
}

// Dashboard returns entity counts for the admin home screen
func Dashboard(c *gin.Context) {
	now := time.Now()

	var totalOffers, activeOffers, totalCoupons, activeCoupons int64
	var totalTemplates, totalProducts, totalSellers, totalUsers, totalPublications int64

	config.DB.Model(&models.Offer{}).Where("delete_at IS NULL").Count(&totalOffers)
	config.DB.Model(&models.Offer{}).
		Where("delete_at IS NULL").
		Where("expires_at IS NULL OR expires_at > ?", now).
		Count(&activeOffers)
	config.DB.Model(&models.Coupon{}).Where("delete_at IS NULL").Count(&totalCoupons)
	config.DB.Model(&models.Coupon{}).
		Where("delete_at IS NULL AND active = true").
		Where("expires_at IS NULL OR expires_at > ?", now).
		Count(&activeCoupons)
	config.DB.Model(&models.Template{}).Where("delete_at IS NULL").Count(&totalTemplates)
	config.DB.Model(&models.Product{}).Where("delete_at IS NULL").Count(&totalProducts)
	config.DB.Model(&models.Seller{}).Where("delete_at IS NULL AND active = true").Count(&totalSellers)
	config.DB.Model(&models.User{}).Where("delete_at IS NULL AND is_active = true").Count(&totalUsers)
	config.DB.Model(&models.Publication{}).Count(&totalPublications)

	var recent []models.Publication
	config.DB.Order("create_at DESC").Limit(10).Find(&recent)

	recentResponses := make([]models.PublicationResponse, 0, len(recent))
	for i := range recent {
		recentResponses = append(recentResponses, recent[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats": gin.H{
			"offers": gin.H{
				"total":  totalOffers,
				"active": activeOffers,
			},
			"coupons": gin.H{
				"total":  totalCoupons,
				"active": activeCoupons,
			},
			"templates":    totalTemplates,
			"products":     totalProducts,
			"sellers":      totalSellers,
			"users":        totalUsers,
			"publications": totalPublications,
		},
		"recent_publications": recentResponses,
	})
}

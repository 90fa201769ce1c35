package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"offer-management-api/config"
	"offer-management-api/models"

	"github.com/gin-gonic/gin"
)

// ListCoupons returns coupons, optionally filtered by seller and active state
func ListCoupons(c *gin.Context) {
	query := config.DB.Model(&models.Coupon{}).
		Preload("Seller").
		Where("coupons.delete_at IS NULL")

	if sellerID := c.Query("seller_id"); sellerID != "" {
		if v, err := strconv.Atoi(sellerID); err == nil {
			query = query.Where("coupons.seller_id = ?", v)
		}
	}
	if c.Query("active") == "true" {
		query = query.Where("coupons.active = true").
			Where("coupons.expires_at IS NULL OR coupons.expires_at > ?", time.Now())
	}
	if code := c.Query("code"); code != "" {
		query = query.Where("coupons.code = ?", strings.ToUpper(code))
	}

	var coupons []models.Coupon
	if err := query.Order("coupons.create_at DESC").Find(&coupons).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch coupons"})
		return
	}

	responses := make([]models.CouponResponse, 0, len(coupons))
	for i := range coupons {
		responses = append(responses, coupons[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"coupons": responses,
		"total":   len(responses),
	})
}

// GetCoupon returns a single coupon
func GetCoupon(c *gin.Context) {
	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}

	var coupon models.Coupon
	if err := config.DB.Preload("Seller").
		Where("coupon_id = ? AND delete_at IS NULL", couponID).
		First(&coupon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"coupon":  coupon.ToResponse(),
		"expired": coupon.IsExpired(time.Now()),
	})
}

// CreateCoupon creates a coupon. Codes are stored uppercase.
func CreateCoupon(c *gin.Context) {
	var req models.CouponCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var seller models.Seller
	if err := config.DB.Where("seller_id = ? AND delete_at IS NULL", req.SellerID).
		First(&seller).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Seller not found"})
		return
	}

	userID, _ := c.Get("userID")
	uid := userID.(int)
	now := time.Now()

	discountType := req.DiscountType
	if discountType == "" {
		discountType = models.DiscountPercentage
	}

	coupon := models.Coupon{
		SellerID:         req.SellerID,
		Code:             strings.ToUpper(strings.TrimSpace(req.Code)),
		Active:           true,
		ExpiresAt:        req.ExpiresAt,
		DiscountType:     discountType,
		DiscountValue:    req.DiscountValue,
		MinPurchaseValue: req.MinPurchaseValue,
		MaxDiscountValue: req.MaxDiscountValue,
		CreatedBy:        &uid,
		CreateAt:         now,
		UpdateAt:         now,
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}

	if err := config.DB.Create(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coupon"})
		return
	}
	coupon.Seller = seller

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"coupon":  coupon.ToResponse(),
		"message": "Coupon created successfully",
	})
}

// UpdateCoupon applies partial updates to a coupon
func UpdateCoupon(c *gin.Context) {
	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}

	var req models.CouponUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var coupon models.Coupon
	if err := config.DB.Where("coupon_id = ? AND delete_at IS NULL", couponID).
		First(&coupon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	if req.SellerID != nil {
		var seller models.Seller
		if err := config.DB.Where("seller_id = ? AND delete_at IS NULL", *req.SellerID).
			First(&seller).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Seller not found"})
			return
		}
		coupon.SellerID = *req.SellerID
	}
	if req.Code != nil {
		coupon.Code = strings.ToUpper(strings.TrimSpace(*req.Code))
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = req.ExpiresAt
	}
	if req.DiscountType != nil {
		coupon.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		coupon.DiscountValue = req.DiscountValue
	}
	if req.MinPurchaseValue != nil {
		coupon.MinPurchaseValue = req.MinPurchaseValue
	}
	if req.MaxDiscountValue != nil {
		coupon.MaxDiscountValue = req.MaxDiscountValue
	}
	coupon.UpdateAt = time.Now()

	if err := config.DB.Save(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"coupon":  coupon.ToResponse(),
		"message": "Coupon updated successfully",
	})
}

// ToggleCoupon flips the active flag
func ToggleCoupon(c *gin.Context) {
	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}

	var coupon models.Coupon
	if err := config.DB.Where("coupon_id = ? AND delete_at IS NULL", couponID).
		First(&coupon).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	coupon.Active = !coupon.Active
	coupon.UpdateAt = time.Now()

	if err := config.DB.Save(&coupon).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update coupon"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"active":  coupon.Active,
	})
}

// DeleteCoupon soft deletes a coupon
func DeleteCoupon(c *gin.Context) {
	couponID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon ID"})
		return
	}

	result := config.DB.Model(&models.Coupon{}).
		Where("coupon_id = ? AND delete_at IS NULL", couponID).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coupon"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Coupon not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Coupon deleted successfully"})
}

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

// ListMyWishlists returns the current user's wishlists
func ListMyWishlists(c *gin.Context) {
	userID, _ := c.Get("userID")

	var wishlists []models.Wishlist
	if err := config.DB.Preload("Items.Offer.Product").
		Where("owner_id = ?", userID).
		Order("create_at DESC").
		Find(&wishlists).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlists"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"wishlists": wishlists,
		"total":     len(wishlists),
	})
}

// GetWishlist returns a wishlist the caller may see: the owner always,
// anyone for public lists, any logged-in user for shared lists.
func GetWishlist(c *gin.Context) {
	wishlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist ID"})
		return
	}

	var wishlist models.Wishlist
	if err := config.DB.Preload("Items.Offer.Product").
		Where("wishlist_id = ?", wishlistID).
		First(&wishlist).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return
	}

	userID, _ := c.Get("userID")
	uid := userID.(int)

	if wishlist.OwnerID != uid && wishlist.Visibility == models.VisibilityPrivate {
		c.JSON(http.StatusForbidden, gin.H{"error": "This wishlist is private"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"wishlist": wishlist,
	})
}

// CreateWishlist creates a wishlist for the current user
func CreateWishlist(c *gin.Context) {
	var req models.WishlistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	uid := userID.(int)

	name := utils.DefaultString(req.Name, "My wishlist")
	visibility := utils.DefaultString(req.Visibility, models.VisibilityPrivate)

	now := time.Now()
	wishlist := models.Wishlist{
		OwnerID:    uid,
		Name:       name,
		Visibility: visibility,
		Notes:      req.Notes,
		CreateAt:   now,
		UpdateAt:   now,
	}

	if err := config.DB.Create(&wishlist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wishlist"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"wishlist": wishlist,
	})
}

// UpdateWishlist updates name, visibility and notes. Owner only.
func UpdateWishlist(c *gin.Context) {
	wishlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist ID"})
		return
	}

	var req models.WishlistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	wishlist, ok := ownedWishlist(c, wishlistID)
	if !ok {
		return
	}

	if req.Name != "" {
		wishlist.Name = req.Name
	}
	if req.Visibility != "" {
		wishlist.Visibility = req.Visibility
	}
	if req.Notes != nil {
		wishlist.Notes = req.Notes
	}
	wishlist.UpdateAt = time.Now()

	if err := config.DB.Save(wishlist).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"wishlist": wishlist,
	})
}

// DeleteWishlist removes a wishlist and its items. Owner only.
func DeleteWishlist(c *gin.Context) {
	wishlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist ID"})
		return
	}

	if _, ok := ownedWishlist(c, wishlistID); !ok {
		return
	}

	config.DB.Where("wishlist_id = ?", wishlistID).Delete(&models.WishlistItem{})
	if err := config.DB.Where("wishlist_id = ?", wishlistID).
		Delete(&models.Wishlist{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete wishlist"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wishlist deleted"})
}

// AddWishlistItem adds an offer to a wishlist. Duplicate offers update the
// existing item instead of failing.
func AddWishlistItem(c *gin.Context) {
	wishlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist ID"})
		return
	}

	var req models.WishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, ok := ownedWishlist(c, wishlistID); !ok {
		return
	}

	var offerCount int64
	config.DB.Model(&models.Offer{}).
		Where("offer_id = ? AND delete_at IS NULL", req.OfferID).
		Count(&offerCount)
	if offerCount == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Offer not found"})
		return
	}

	now := time.Now()
	var item models.WishlistItem
	err = config.DB.Where("wishlist_id = ? AND offer_id = ?", wishlistID, req.OfferID).
		First(&item).Error
	if err == nil {
		item.DesiredPrice = req.DesiredPrice
		item.Notes = req.Notes
		item.UpdateAt = now
		err = config.DB.Save(&item).Error
	} else {
		item = models.WishlistItem{
			WishlistID:   wishlistID,
			OfferID:      req.OfferID,
			DesiredPrice: req.DesiredPrice,
			Notes:        req.Notes,
			CreateAt:     now,
			UpdateAt:     now,
		}
		err = config.DB.Create(&item).Error
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"item":    item,
	})
}

// RemoveWishlistItem removes an offer from a wishlist
func RemoveWishlistItem(c *gin.Context) {
	wishlistID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid wishlist ID"})
		return
	}
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item ID"})
		return
	}

	if _, ok := ownedWishlist(c, wishlistID); !ok {
		return
	}

	result := config.DB.Where("item_id = ? AND wishlist_id = ?", itemID, wishlistID).
		Delete(&models.WishlistItem{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// ownedWishlist loads a wishlist and enforces ownership, writing the error
// response itself when the check fails.
func ownedWishlist(c *gin.Context, wishlistID int) (*models.Wishlist, bool) {
	var wishlist models.Wishlist
	if err := config.DB.Where("wishlist_id = ?", wishlistID).First(&wishlist).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
		return nil, false
	}

	userID, _ := c.Get("userID")
	if wishlist.OwnerID != userID.(int) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your wishlist"})
		return nil, false
	}
	return &wishlist, true
}

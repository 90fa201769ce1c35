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

// ListOffers returns offers with optional filters. By default expired offers
// and offers from inactive sellers are hidden; staff can opt in to see them.
func ListOffers(c *gin.Context) {
	query := config.DB.Model(&models.Offer{}).
		Preload("Product").
		Preload("Seller").
		Preload("Category").
		Preload("Manufacturer").
		Where("offers.delete_at IS NULL")

	if vendor := c.Query("vendor"); vendor != "" {
		query = query.Where("offers.vendor_name LIKE ?", "%"+vendor+"%")
	}
	if productSlug := c.Query("product"); productSlug != "" {
		query = query.Joins("JOIN products ON products.product_id = offers.product_id").
			Where("products.slug = ?", productSlug)
	}
	if minPrice := c.Query("min_price"); minPrice != "" {
		if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
			query = query.Where("offers.price >= ?", v)
		}
	}
	if maxPrice := c.Query("max_price"); maxPrice != "" {
		if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
			query = query.Where("offers.price <= ?", v)
		}
	}
	if sellerID := c.Query("seller_id"); sellerID != "" {
		if v, err := strconv.Atoi(sellerID); err == nil {
			query = query.Where("offers.seller_id = ?", v)
		}
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		if v, err := strconv.Atoi(categoryID); err == nil {
			query = query.Where("offers.category_id = ?", v)
		}
	}

	if c.Query("include_expired") != "true" {
		query = query.Where("offers.expires_at IS NULL OR offers.expires_at > ?", time.Now())
	}

	// Offers tied to a deactivated seller disappear from listings but are
	// still reachable by id.
	query = query.Where(
		"offers.seller_id IS NULL OR offers.seller_id IN (?)",
		config.DB.Model(&models.Seller{}).Select("seller_id").
			Where("active = true AND delete_at IS NULL"),
	)

	var offers []models.Offer
	if err := query.Order("offers.create_at DESC").Find(&offers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch offers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"offers":  offers,
		"total":   len(offers),
	})
}

// GetOffer returns a single offer with its relations and namespace values
func GetOffer(c *gin.Context) {
	offerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	var offer models.Offer
	if err := config.DB.
		Preload("Product").
		Preload("Seller").
		Preload("Category").
		Preload("Manufacturer").
		Preload("Namespaces.Namespace").
		Where("offer_id = ? AND delete_at IS NULL", offerID).
		First(&offer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"offer":   offer,
		"expired": offer.IsExpired(time.Now()),
	})
}

// CreateOffer creates an offer, creating the product on the fly when the
// slug is new.
func CreateOffer(c *gin.Context) {
	var req models.OfferCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	uid := userID.(int)
	now := time.Now()

	var offer models.Offer
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		slug := utils.Slugify(req.ProductSlug)

		var product models.Product
		err := tx.Where("slug = ? AND delete_at IS NULL", slug).First(&product).Error
		if err == gorm.ErrRecordNotFound {
			name := req.ProductName
			if name == "" {
				name = req.ProductSlug
			}
			product = models.Product{
				Name:        name,
				Slug:        slug,
				Description: req.ProductDescription,
				CreateAt:    now,
				UpdateAt:    now,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		currency := strings.ToUpper(req.Currency)
		if currency == "" {
			currency = defaultCurrency(tx)
		}

		offer = models.Offer{
			ProductID:               product.ProductID,
			VendorName:              req.VendorName,
			Price:                   *req.Price,
			OldPrice:                req.OldPrice,
			Currency:                currency,
			OfferURL:                req.OfferURL,
			ExpiresAt:               req.ExpiresAt,
			InstallmentCount:        req.InstallmentCount,
			InstallmentValue:        req.InstallmentValue,
			InstallmentInterestFree: req.InstallmentInterestFree,
			SellerID:                req.SellerID,
			CategoryID:              req.CategoryID,
			ManufacturerID:          req.ManufacturerID,
			CreatedBy:               &uid,
			CreateAt:                now,
			UpdateAt:                now,
		}
		if err := tx.Create(&offer).Error; err != nil {
			return err
		}

		return syncOfferNamespaces(tx, offer.OfferID, req.Namespaces, now)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create offer"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"offer":   offer,
		"message": "Offer created successfully",
	})
}

// UpdateOffer applies partial updates to an offer
func UpdateOffer(c *gin.Context) {
	offerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	var req models.OfferUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var offer models.Offer
	if err := config.DB.Where("offer_id = ? AND delete_at IS NULL", offerID).
		First(&offer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}

	if req.VendorName != nil {
		offer.VendorName = *req.VendorName
	}
	if req.Price != nil {
		offer.Price = *req.Price
	}
	if req.OldPrice != nil {
		offer.OldPrice = req.OldPrice
	}
	if req.Currency != nil {
		offer.Currency = strings.ToUpper(*req.Currency)
	}
	if req.OfferURL != nil {
		offer.OfferURL = req.OfferURL
	}
	if req.ExpiresAt != nil {
		offer.ExpiresAt = req.ExpiresAt
	}
	if req.InstallmentCount != nil {
		offer.InstallmentCount = req.InstallmentCount
	}
	if req.InstallmentValue != nil {
		offer.InstallmentValue = req.InstallmentValue
	}
	if req.InstallmentInterestFree != nil {
		offer.InstallmentInterestFree = req.InstallmentInterestFree
	}
	if req.SellerID != nil {
		offer.SellerID = req.SellerID
	}
	if req.CategoryID != nil {
		offer.CategoryID = req.CategoryID
	}
	if req.ManufacturerID != nil {
		offer.ManufacturerID = req.ManufacturerID
	}
	offer.UpdateAt = time.Now()

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&offer).Error; err != nil {
			return err
		}
		return syncOfferNamespaces(tx, offer.OfferID, req.Namespaces, offer.UpdateAt)
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update offer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"offer":   offer,
		"message": "Offer updated successfully",
	})
}

// DeleteOffer soft deletes an offer
func DeleteOffer(c *gin.Context) {
	offerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	result := config.DB.Model(&models.Offer{}).
		Where("offer_id = ? AND delete_at IS NULL", offerID).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete offer"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Offer not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Offer deleted successfully"})
}

// syncOfferNamespaces upserts per-offer placeholder values. Unknown
// placeholder names are skipped rather than rejected, so a client sending a
// stale catalogue never fails the whole save.
func syncOfferNamespaces(tx *gorm.DB, offerID int, values map[string]string, now time.Time) error {
	for name, value := range values {
		var namespace models.Namespace
		if err := tx.Where("name = ?", name).First(&namespace).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				continue
			}
			return err
		}

		var existing models.OfferNamespaceValue
		err := tx.Where("offer_id = ? AND namespace_id = ?", offerID, namespace.NamespaceID).
			First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			record := models.OfferNamespaceValue{
				OfferID:     offerID,
				NamespaceID: namespace.NamespaceID,
				Value:       value,
				CreateAt:    now,
				UpdateAt:    now,
			}
			if err := tx.Create(&record).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}

		existing.Value = value
		existing.UpdateAt = now
		if err := tx.Save(&existing).Error; err != nil {
			return err
		}
	}
	return nil
}

// defaultCurrency reads the configured default, falling back to BRL.
func defaultCurrency(tx *gorm.DB) string {
	var setting models.AppSetting
	if err := tx.Where("setting_key = ?", models.SettingDefaultCurrency).
		First(&setting).Error; err == nil && setting.Value != nil && *setting.Value != "" {
		return strings.ToUpper(*setting.Value)
	}
	return "BRL"
}

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

// ListProducts returns products, optionally filtered by name search
func ListProducts(c *gin.Context) {
	query := config.DB.Model(&models.Product{}).Where("delete_at IS NULL")

	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}

	var products []models.Product
	if err := query.Order("name ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"products": products,
		"total":    len(products),
	})
}

// GetProduct returns a product by id or slug
func GetProduct(c *gin.Context) {
	param := c.Param("id")

	var product models.Product
	var err error
	if id, convErr := strconv.Atoi(param); convErr == nil {
		err = config.DB.Where("product_id = ? AND delete_at IS NULL", id).First(&product).Error
	} else {
		err = config.DB.Where("slug = ? AND delete_at IS NULL", param).First(&product).Error
	}
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
	})
}

// CreateProduct creates a product
func CreateProduct(c *gin.Context) {
	var req models.ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	slug := utils.Slugify(req.Slug)

	var count int64
	config.DB.Model(&models.Product{}).Where("slug = ?", slug).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Product slug already exists"})
		return
	}

	now := time.Now()
	product := models.Product{
		Name:         req.Name,
		Slug:         slug,
		Description:  req.Description,
		Category:     req.Category,
		Manufacturer: req.Manufacturer,
		CreateAt:     now,
		UpdateAt:     now,
	}

	if err := config.DB.Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"product": product,
		"message": "Product created successfully",
	})
}

// UpdateProduct applies partial updates to a product
func UpdateProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req models.ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var product models.Product
	if err := config.DB.Where("product_id = ? AND delete_at IS NULL", productID).
		First(&product).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = utils.Slugify(*req.Slug)
	}
	if req.Description != nil {
		product.Description = req.Description
	}
	if req.Category != nil {
		product.Category = req.Category
	}
	if req.Manufacturer != nil {
		product.Manufacturer = req.Manufacturer
	}
	product.UpdateAt = time.Now()

	if err := config.DB.Save(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": product,
		"message": "Product updated successfully",
	})
}

// DeleteProduct soft deletes a product. Blocked while live offers still
// reference it.
func DeleteProduct(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var offerCount int64
	config.DB.Model(&models.Offer{}).
		Where("product_id = ? AND delete_at IS NULL", productID).
		Count(&offerCount)
	if offerCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Product still has active offers"})
		return
	}

	result := config.DB.Model(&models.Product{}).
		Where("product_id = ? AND delete_at IS NULL", productID).
		Update("delete_at", time.Now())
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

package controllers

import (
	"net/http"
	"regexp"
	"strconv"
	"time"

	"offer-management-api/config"
	"offer-management-api/models"
	"offer-management-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

var namespaceNamePattern = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// ListNamespaces returns the placeholder catalogue, optionally by scope
func ListNamespaces(c *gin.Context) {
	query := config.DB.Model(&models.Namespace{})

	if scope := c.Query("scope"); scope != "" {
		if !models.ValidScope(scope) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid scope"})
			return
		}
		query = query.Where("scope = ?", scope)
	}

	var namespaces []models.Namespace
	if err := query.Order("name ASC").Find(&namespaces).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch namespaces"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"namespaces": namespaces,
		"total":      len(namespaces),
	})
}

// ListBuiltinPlaceholders returns the placeholder names resolved from entity
// fields without needing a namespace row.
func ListBuiltinPlaceholders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"placeholders": services.RegisteredPlaceholders(),
	})
}

// CreateNamespace registers a new placeholder name
func CreateNamespace(c *gin.Context) {
	var req models.NamespaceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !namespaceNamePattern.MatchString(req.Name) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name must be lowercase letters, digits and underscores"})
		return
	}

	scope := req.Scope
	if scope == "" {
		scope = models.ScopeGlobal
	}

	var count int64
	config.DB.Model(&models.Namespace{}).Where("name = ?", req.Name).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Namespace already exists"})
		return
	}

	label := req.Label
	if label == "" {
		label = req.Name
	}

	now := time.Now()
	namespace := models.Namespace{
		Name:        req.Name,
		Label:       label,
		Scope:       scope,
		Description: req.Description,
		Example:     req.Example,
		CreateAt:    now,
		UpdateAt:    now,
	}

	if err := config.DB.Create(&namespace).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create namespace"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"namespace": namespace,
		"message":   "Namespace created successfully",
	})
}

// UpdateNamespace updates display fields. Name and scope are immutable so
// existing template bodies keep resolving the same way.
func UpdateNamespace(c *gin.Context) {
	namespaceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid namespace ID"})
		return
	}

	var req models.NamespaceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var namespace models.Namespace
	if err := config.DB.Where("namespace_id = ?", namespaceID).First(&namespace).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Namespace not found"})
		return
	}

	if req.Label != nil {
		namespace.Label = *req.Label
	}
	if req.Description != nil {
		namespace.Description = req.Description
	}
	if req.Example != nil {
		namespace.Example = req.Example
	}
	namespace.UpdateAt = time.Now()

	if err := config.DB.Save(&namespace).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update namespace"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"namespace": namespace,
	})
}

// DeleteNamespace removes a placeholder name and its stored values
func DeleteNamespace(c *gin.Context) {
	namespaceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid namespace ID"})
		return
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("namespace_id = ?", namespaceID).
			Delete(&models.OfferNamespaceValue{}).Error; err != nil {
			return err
		}
		if err := tx.Where("namespace_id = ?", namespaceID).
			Delete(&models.UserNamespaceValue{}).Error; err != nil {
			return err
		}
		result := tx.Where("namespace_id = ?", namespaceID).Delete(&models.Namespace{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
	if err == gorm.ErrRecordNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Namespace not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete namespace"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Namespace deleted successfully"})
}

// GetMyNamespaceValues returns the current user's profile placeholder values
func GetMyNamespaceValues(c *gin.Context) {
	userID, _ := c.Get("userID")

	var values []models.UserNamespaceValue
	if err := config.DB.Preload("Namespace").
		Where("user_id = ?", userID).
		Find(&values).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch values"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"values":  values,
	})
}

// SetMyNamespaceValues upserts the current user's placeholder values.
// Unknown names are skipped.
func SetMyNamespaceValues(c *gin.Context) {
	var req map[string]string
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	uid := userID.(int)
	now := time.Now()

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		for name, value := range req {
			var namespace models.Namespace
			if err := tx.Where("name = ?", name).First(&namespace).Error; err != nil {
				if err == gorm.ErrRecordNotFound {
					continue
				}
				return err
			}

			var existing models.UserNamespaceValue
			err := tx.Where("user_id = ? AND namespace_id = ?", uid, namespace.NamespaceID).
				First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				record := models.UserNamespaceValue{
					UserID:      uid,
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
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save values"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Values saved",
	})
}

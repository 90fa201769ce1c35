package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"offer-management-api/config"
	"offer-management-api/models"
	"offer-management-api/services"

	"github.com/gin-gonic/gin"
)

type CaptionPreviewRequest struct {
	TemplateID int    `json:"template_id" binding:"required"`
	CouponID   *int   `json:"coupon_id"`
	Network    string `json:"network"`
}

// PreviewCaption renders a caption for an offer without recording anything
func PreviewCaption(c *gin.Context) {
	offerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	var req CaptionPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	uid := userID.(int)

	svc := services.NewShareService(config.DB)
	breakdown, err := svc.BuildCaption(services.BuildCaptionInput{
		OfferID:    offerID,
		TemplateID: req.TemplateID,
		CouponID:   req.CouponID,
		Network:    req.Network,
		UserID:     &uid,
	}, time.Now())
	if err != nil {
		status, message := shareErrorStatus(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"preview": breakdown,
	})
}

// CreatePublication records a caption that was actually sent. The row is
// write-once; there is no update endpoint.
func CreatePublication(c *gin.Context) {
	var req models.PublicationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := c.Get("userID")
	uid := userID.(int)
	now := time.Now()

	caption := req.Caption
	if caption == "" {
		svc := services.NewShareService(config.DB)
		breakdown, err := svc.BuildCaption(services.BuildCaptionInput{
			OfferID:    req.OfferID,
			TemplateID: req.TemplateID,
			CouponID:   req.CouponID,
			Network:    req.Network,
			UserID:     &uid,
		}, now)
		if err != nil {
			status, message := shareErrorStatus(err)
			c.JSON(status, gin.H{"error": message})
			return
		}
		caption = breakdown.Caption
	}

	channels := req.Channels
	if len(channels) == 0 && req.Network != "" {
		channels = []string{strings.ToLower(req.Network)}
	}

	publication := models.Publication{
		OfferID:     req.OfferID,
		TemplateID:  req.TemplateID,
		Caption:     caption,
		Channels:    strings.Join(channels, ","),
		PublishedAt: &now,
		PublishedBy: &uid,
		CreateAt:    now,
	}

	if err := config.DB.Create(&publication).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record publication"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"publication": publication.ToResponse(),
	})
}

// ListPublications returns the publication history, newest first
func ListPublications(c *gin.Context) {
	query := config.DB.Model(&models.Publication{})

	if offerID := c.Query("offer_id"); offerID != "" {
		if v, err := strconv.Atoi(offerID); err == nil {
			query = query.Where("offer_id = ?", v)
		}
	}
	if templateID := c.Query("template_id"); templateID != "" {
		if v, err := strconv.Atoi(templateID); err == nil {
			query = query.Where("template_id = ?", v)
		}
	}

	var publications []models.Publication
	if err := query.Order("create_at DESC").Limit(200).Find(&publications).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch publications"})
		return
	}

	responses := make([]models.PublicationResponse, 0, len(publications))
	for i := range publications {
		responses = append(responses, publications[i].ToResponse())
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"publications": responses,
		"total":        len(responses),
	})
}

// shareErrorStatus maps caption build errors onto HTTP statuses
func shareErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrOfferNotFound):
		return http.StatusNotFound, "Offer not found"
	case errors.Is(err, services.ErrTemplateNotFound):
		return http.StatusNotFound, "Template not found"
	case errors.Is(err, services.ErrCouponNotFound):
		return http.StatusNotFound, "Coupon not found"
	case errors.Is(err, services.ErrCouponUnavailable):
		return http.StatusBadRequest, "Coupon is inactive or expired"
	}
	return http.StatusInternalServerError, "Failed to build caption"
}

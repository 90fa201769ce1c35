package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"offer-management-api/config"
	"offer-management-api/services"
	"offer-management-api/utils"

	"github.com/gin-gonic/gin"
)

type ShareEmailRequest struct {
	Recipients []string `json:"recipients" binding:"required,min=1,dive,email"`
	TemplateID int      `json:"template_id" binding:"required"`
	CouponID   *int     `json:"coupon_id"`
	Subject    string   `json:"subject"`
}

// ShareOfferByEmail renders the caption for an offer and mails it to the
// given recipients.
func ShareOfferByEmail(c *gin.Context) {
	offerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid offer ID"})
		return
	}

	var req ShareEmailRequest
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
		UserID:     &uid,
	}, time.Now())
	if err != nil {
		status, message := shareErrorStatus(err)
		c.JSON(status, gin.H{"error": message})
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("Offer: %s", breakdown.FormattedPrice)
	}

	body := breakdown.Caption
	if breakdown.DiscountAmount > 0 {
		body += fmt.Sprintf("\n\n%s -> %s", breakdown.FormattedPrice, breakdown.FormattedFinal)
	}

	if err := config.SendMail(req.Recipients, utils.SanitizeInput(subject), body); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"recipients": len(req.Recipients),
		"caption":    breakdown.Caption,
	})
}

package models

import (
	"strings"
	"time"
)

// Publication is a write-once record of a caption actually sent. Rows are
// never edited after creation.
type Publication struct {
	PublicationID int        `gorm:"primaryKey;column:publication_id" json:"publication_id"`
	OfferID       int        `gorm:"column:offer_id" json:"offer_id"`
	TemplateID    int        `gorm:"column:template_id" json:"template_id"`
	Caption       string     `gorm:"column:caption" json:"caption"`
	Channels      string     `gorm:"column:channels" json:"channels"`
	PublishedAt   *time.Time `gorm:"column:published_at" json:"published_at,omitempty"`
	PublishedBy   *int       `gorm:"column:published_by" json:"published_by,omitempty"`
	CreateAt      time.Time  `gorm:"column:create_at" json:"create_at"`

	Offer     Offer    `gorm:"foreignKey:OfferID" json:"offer,omitempty"`
	Template  Template `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
	Publisher User     `gorm:"foreignKey:PublishedBy" json:"publisher,omitempty"`
}

type PublicationCreateRequest struct {
	OfferID    int      `json:"offer_id" binding:"required"`
	TemplateID int      `json:"template_id" binding:"required"`
	CouponID   *int     `json:"coupon_id"`
	Caption    string   `json:"caption"`
	Network    string   `json:"network"`
	Channels   []string `json:"channels"`
}

type PublicationResponse struct {
	PublicationID int      `json:"publication_id"`
	OfferID       int      `json:"offer_id"`
	TemplateID    int      `json:"template_id"`
	Caption       string   `json:"caption"`
	Channels      []string `json:"channels"`
	PublishedAt   *string  `json:"published_at,omitempty"`
	PublishedBy   *int     `json:"published_by,omitempty"`
}

func (p *Publication) ToResponse() PublicationResponse {
	resp := PublicationResponse{
		PublicationID: p.PublicationID,
		OfferID:       p.OfferID,
		TemplateID:    p.TemplateID,
		Caption:       p.Caption,
		PublishedBy:   p.PublishedBy,
	}
	if p.Channels != "" {
		resp.Channels = strings.Split(p.Channels, ",")
	} else {
		resp.Channels = []string{}
	}
	if p.PublishedAt != nil {
		s := p.PublishedAt.Format(time.RFC3339)
		resp.PublishedAt = &s
	}
	return resp
}

func (Publication) TableName() string {
	return "publications"
}

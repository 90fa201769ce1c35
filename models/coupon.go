package models

import (
	"time"
)

// Discount types stored in coupons.discount_type
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Coupon represents the coupons table.
// Discount fields are all optional: a coupon with no discount value still
// renders its code into captions, it just never changes the price.
type Coupon struct {
	CouponID         int        `gorm:"primaryKey;column:coupon_id" json:"coupon_id"`
	SellerID         int        `gorm:"column:seller_id" json:"seller_id"`
	Code             string     `gorm:"column:code" json:"code"`
	Active           bool       `gorm:"column:active;default:true" json:"active"`
	ExpiresAt        *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`
	DiscountType     string     `gorm:"column:discount_type;type:enum('percentage','fixed');default:'percentage'" json:"discount_type"`
	DiscountValue    *float64   `gorm:"column:discount_value" json:"discount_value,omitempty"`
	MinPurchaseValue *float64   `gorm:"column:min_purchase_value" json:"min_purchase_value,omitempty"`
	MaxDiscountValue *float64   `gorm:"column:max_discount_value" json:"max_discount_value,omitempty"`
	CreatedBy        *int       `gorm:"column:created_by" json:"created_by,omitempty"`
	CreateAt         time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt         time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt         *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Seller  Seller `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Creator User   `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

// IsExpired reports whether the coupon is past its expiration.
func (c *Coupon) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(*c.ExpiresAt)
}

type CouponCreateRequest struct {
	SellerID         int        `json:"seller_id" binding:"required"`
	Code             string     `json:"code" binding:"required,max=120"`
	Active           *bool      `json:"active"`
	ExpiresAt        *time.Time `json:"expires_at"`
	DiscountType     string     `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue    *float64   `json:"discount_value" binding:"omitempty,gte=0"`
	MinPurchaseValue *float64   `json:"min_purchase_value" binding:"omitempty,gte=0"`
	MaxDiscountValue *float64   `json:"max_discount_value" binding:"omitempty,gte=0"`
}

type CouponUpdateRequest struct {
	SellerID         *int       `json:"seller_id"`
	Code             *string    `json:"code"`
	Active           *bool      `json:"active"`
	ExpiresAt        *time.Time `json:"expires_at"`
	DiscountType     *string    `json:"discount_type" binding:"omitempty,oneof=percentage fixed"`
	DiscountValue    *float64   `json:"discount_value" binding:"omitempty,gte=0"`
	MinPurchaseValue *float64   `json:"min_purchase_value" binding:"omitempty,gte=0"`
	MaxDiscountValue *float64   `json:"max_discount_value" binding:"omitempty,gte=0"`
}

type CouponResponse struct {
	CouponID         int      `json:"coupon_id"`
	SellerID         int      `json:"seller_id"`
	SellerName       string   `json:"seller_name,omitempty"`
	Code             string   `json:"code"`
	Active           bool     `json:"active"`
	ExpiresAt        *string  `json:"expires_at,omitempty"`
	DiscountType     string   `json:"discount_type"`
	DiscountValue    *float64 `json:"discount_value,omitempty"`
	MinPurchaseValue *float64 `json:"min_purchase_value,omitempty"`
	MaxDiscountValue *float64 `json:"max_discount_value,omitempty"`
	CreateAt         string   `json:"create_at"`
	UpdateAt         string   `json:"update_at"`
}

func (c *Coupon) ToResponse() CouponResponse {
	resp := CouponResponse{
		CouponID:         c.CouponID,
		SellerID:         c.SellerID,
		SellerName:       c.Seller.Name,
		Code:             c.Code,
		Active:           c.Active,
		DiscountType:     c.DiscountType,
		DiscountValue:    c.DiscountValue,
		MinPurchaseValue: c.MinPurchaseValue,
		MaxDiscountValue: c.MaxDiscountValue,
		CreateAt:         c.CreateAt.Format(time.RFC3339),
		UpdateAt:         c.UpdateAt.Format(time.RFC3339),
	}
	if c.ExpiresAt != nil {
		s := c.ExpiresAt.Format(time.RFC3339)
		resp.ExpiresAt = &s
	}
	return resp
}

func (Coupon) TableName() string {
	return "coupons"
}

package models

import (
	"time"
)

// Offer represents the offers table
type Offer struct {
	OfferID   int        `gorm:"primaryKey;column:offer_id" json:"offer_id"`
	ProductID int        `gorm:"column:product_id" json:"product_id"`
	VendorName string    `gorm:"column:vendor_name" json:"vendor_name"`
	Price     float64    `gorm:"column:price;type:decimal(10,2)" json:"price"`
	OldPrice  *float64   `gorm:"column:old_price;type:decimal(10,2)" json:"old_price,omitempty"`
	Currency  string     `gorm:"column:currency;default:'BRL'" json:"currency"`
	OfferURL  *string    `gorm:"column:offer_url" json:"offer_url,omitempty"`
	ExpiresAt *time.Time `gorm:"column:expires_at" json:"expires_at,omitempty"`

	// Installment info (optional, informational)
	InstallmentCount        *int     `gorm:"column:installment_count" json:"installment_count,omitempty"`
	InstallmentValue        *float64 `gorm:"column:installment_value;type:decimal(10,2)" json:"installment_value,omitempty"`
	InstallmentInterestFree *bool    `gorm:"column:installment_interest_free" json:"installment_interest_free,omitempty"`

	SellerID       *int `gorm:"column:seller_id" json:"seller_id,omitempty"`
	CategoryID     *int `gorm:"column:category_id" json:"category_id,omitempty"`
	ManufacturerID *int `gorm:"column:manufacturer_id" json:"manufacturer_id,omitempty"`

	CreatedBy *int       `gorm:"column:created_by" json:"created_by,omitempty"`
	CreateAt  time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt  *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	Product      Product              `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Seller       *Seller              `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Category     *Category            `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Manufacturer *Manufacturer        `gorm:"foreignKey:ManufacturerID" json:"manufacturer,omitempty"`
	Creator      User                 `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
	Namespaces   []OfferNamespaceValue `gorm:"foreignKey:OfferID" json:"namespaces,omitempty"`
}

// IsExpired reports whether the offer is past its expiration. Expired offers
// stay in the database and are only excluded from active listings.
func (o *Offer) IsExpired(now time.Time) bool {
	return o.ExpiresAt != nil && now.After(*o.ExpiresAt)
}

// OfferNamespaceValue stores per-offer values for template placeholders
type OfferNamespaceValue struct {
	ValueID     int       `gorm:"primaryKey;column:value_id" json:"value_id"`
	OfferID     int       `gorm:"column:offer_id;uniqueIndex:uq_offer_namespace" json:"offer_id"`
	NamespaceID int       `gorm:"column:namespace_id;uniqueIndex:uq_offer_namespace" json:"namespace_id"`
	Value       string    `gorm:"column:value" json:"value"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time `gorm:"column:update_at" json:"update_at"`

	Namespace Namespace `gorm:"foreignKey:NamespaceID" json:"namespace,omitempty"`
}

type OfferCreateRequest struct {
	ProductSlug        string     `json:"product_slug" binding:"required"`
	ProductName        string     `json:"product_name"`
	ProductDescription *string    `json:"product_description"`
	VendorName         string     `json:"vendor_name" binding:"required,max=120"`
	Price              *float64   `json:"price" binding:"required,gte=0"`
	OldPrice           *float64   `json:"old_price" binding:"omitempty,gte=0"`
	Currency           string     `json:"currency" binding:"omitempty,len=3"`
	OfferURL           *string    `json:"offer_url"`
	ExpiresAt          *time.Time `json:"expires_at"`

	InstallmentCount        *int     `json:"installment_count" binding:"omitempty,gte=1"`
	InstallmentValue        *float64 `json:"installment_value" binding:"omitempty,gte=0"`
	InstallmentInterestFree *bool    `json:"installment_interest_free"`

	SellerID       *int `json:"seller_id"`
	CategoryID     *int `json:"category_id"`
	ManufacturerID *int `json:"manufacturer_id"`

	// Placeholder name -> value pairs saved alongside the offer
	Namespaces map[string]string `json:"namespaces"`
}

type OfferUpdateRequest struct {
	VendorName *string    `json:"vendor_name"`
	Price      *float64   `json:"price" binding:"omitempty,gte=0"`
	OldPrice   *float64   `json:"old_price" binding:"omitempty,gte=0"`
	Currency   *string    `json:"currency" binding:"omitempty,len=3"`
	OfferURL   *string    `json:"offer_url"`
	ExpiresAt  *time.Time `json:"expires_at"`

	InstallmentCount        *int     `json:"installment_count" binding:"omitempty,gte=1"`
	InstallmentValue        *float64 `json:"installment_value" binding:"omitempty,gte=0"`
	InstallmentInterestFree *bool    `json:"installment_interest_free"`

	SellerID       *int `json:"seller_id"`
	CategoryID     *int `json:"category_id"`
	ManufacturerID *int `json:"manufacturer_id"`

	Namespaces map[string]string `json:"namespaces"`
}

// TableName overrides
func (Offer) TableName() string {
	return "offers"
}

func (OfferNamespaceValue) TableName() string {
	return "offer_namespace_values"
}

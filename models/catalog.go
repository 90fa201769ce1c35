package models

import (
	"time"
)

// Seller represents marketplace sellers/vendors
type Seller struct {
	SellerID    int        `gorm:"primaryKey;column:seller_id" json:"seller_id"`
	Name        string     `gorm:"column:name;unique" json:"name"`
	Slug        string     `gorm:"column:slug;unique" json:"slug"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	Website     *string    `gorm:"column:website" json:"website,omitempty"`
	Color       *string    `gorm:"column:color" json:"color,omitempty"`
	Active      bool       `gorm:"column:active;default:true" json:"active"`
	CreateAt    time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// Category represents product categories
type Category struct {
	CategoryID  int        `gorm:"primaryKey;column:category_id" json:"category_id"`
	Name        string     `gorm:"column:name;unique" json:"name"`
	Slug        string     `gorm:"column:slug;unique" json:"slug"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	Icon        *string    `gorm:"column:icon" json:"icon,omitempty"`
	Active      bool       `gorm:"column:active;default:true" json:"active"`
	CreateAt    time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt    *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

// Manufacturer represents product manufacturers/brands
type Manufacturer struct {
	ManufacturerID int        `gorm:"primaryKey;column:manufacturer_id" json:"manufacturer_id"`
	Name           string     `gorm:"column:name;unique" json:"name"`
	Slug           string     `gorm:"column:slug;unique" json:"slug"`
	Description    *string    `gorm:"column:description" json:"description,omitempty"`
	Website        *string    `gorm:"column:website" json:"website,omitempty"`
	Logo           *string    `gorm:"column:logo" json:"logo,omitempty"`
	Active         bool       `gorm:"column:active;default:true" json:"active"`
	CreateAt       time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt       time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt       *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type SellerCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Slug        string  `json:"slug" binding:"required,max=120"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Color       *string `json:"color"`
	Active      *bool   `json:"active"`
}

type SellerUpdateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Color       *string `json:"color"`
	Active      *bool   `json:"active"`
}

type CategoryCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Slug        string  `json:"slug" binding:"required,max=120"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Active      *bool   `json:"active"`
}

type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Active      *bool   `json:"active"`
}

type ManufacturerCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Slug        string  `json:"slug" binding:"required,max=120"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Logo        *string `json:"logo"`
	Active      *bool   `json:"active"`
}

type ManufacturerUpdateRequest struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Website     *string `json:"website"`
	Logo        *string `json:"logo"`
	Active      *bool   `json:"active"`
}

// TableName overrides
func (Seller) TableName() string {
	return "sellers"
}

func (Category) TableName() string {
	return "categories"
}

func (Manufacturer) TableName() string {
	return "manufacturers"
}

package models

import (
	"time"
)

// Product represents the products table
type Product struct {
	ProductID    int        `gorm:"primaryKey;column:product_id" json:"product_id"`
	Name         string     `gorm:"column:name" json:"name"`
	Slug         string     `gorm:"column:slug;unique" json:"slug"`
	Description  *string    `gorm:"column:description" json:"description,omitempty"`
	Category     *string    `gorm:"column:category" json:"category,omitempty"`
	Manufacturer *string    `gorm:"column:manufacturer" json:"manufacturer,omitempty"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`
}

type ProductCreateRequest struct {
	Name         string  `json:"name" binding:"required,max=200"`
	Slug         string  `json:"slug" binding:"required,max=200"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Manufacturer *string `json:"manufacturer"`
}

type ProductUpdateRequest struct {
	Name         *string `json:"name"`
	Slug         *string `json:"slug"`
	Description  *string `json:"description"`
	Category     *string `json:"category"`
	Manufacturer *string `json:"manufacturer"`
}

func (Product) TableName() string {
	return "products"
}

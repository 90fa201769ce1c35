package models

import (
	"time"
)

// Wishlist visibility values
const (
	VisibilityPrivate = "private"
	VisibilityShared  = "shared"
	VisibilityPublic  = "public"
)

// ValidVisibility reports whether v is a known wishlist visibility.
func ValidVisibility(v string) bool {
	switch v {
	case VisibilityPrivate, VisibilityShared, VisibilityPublic:
		return true
	}
	return false
}

type Wishlist struct {
	WishlistID int       `gorm:"primaryKey;column:wishlist_id" json:"wishlist_id"`
	OwnerID    int       `gorm:"column:owner_id" json:"owner_id"`
	Name       string    `gorm:"column:name" json:"name"`
	Visibility string    `gorm:"column:visibility;type:enum('private','shared','public');default:'private'" json:"visibility"`
	Notes      *string   `gorm:"column:notes" json:"notes,omitempty"`
	CreateAt   time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt   time.Time `gorm:"column:update_at" json:"update_at"`

	Owner User           `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Items []WishlistItem `gorm:"foreignKey:WishlistID" json:"items,omitempty"`
}

type WishlistItem struct {
	ItemID       int       `gorm:"primaryKey;column:item_id" json:"item_id"`
	WishlistID   int       `gorm:"column:wishlist_id;uniqueIndex:uq_wishlist_offer" json:"wishlist_id"`
	OfferID      int       `gorm:"column:offer_id;uniqueIndex:uq_wishlist_offer" json:"offer_id"`
	DesiredPrice *float64  `gorm:"column:desired_price;type:decimal(10,2)" json:"desired_price,omitempty"`
	Notes        *string   `gorm:"column:notes" json:"notes,omitempty"`
	CreateAt     time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time `gorm:"column:update_at" json:"update_at"`

	Offer Offer `gorm:"foreignKey:OfferID" json:"offer,omitempty"`
}

// Group represents the groups table
type Group struct {
	GroupID     int       `gorm:"primaryKey;column:group_id" json:"group_id"`
	Name        string    `gorm:"column:name;unique" json:"name"`
	Slug        string    `gorm:"column:slug;unique" json:"slug"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	IsFeatured  bool      `gorm:"column:is_featured;default:false" json:"is_featured"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time `gorm:"column:update_at" json:"update_at"`

	Members []User `gorm:"many2many:user_groups;foreignKey:GroupID;joinForeignKey:group_id;References:UserID;joinReferences:user_id" json:"members,omitempty"`
}

type WishlistCreateRequest struct {
	Name       string  `json:"name"`
	Visibility string  `json:"visibility" binding:"omitempty,oneof=private shared public"`
	Notes      *string `json:"notes"`
}

type WishlistItemRequest struct {
	OfferID      int      `json:"offer_id" binding:"required"`
	DesiredPrice *float64 `json:"desired_price" binding:"omitempty,gte=0"`
	Notes        *string  `json:"notes"`
}

type GroupCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=120"`
	Slug        string  `json:"slug" binding:"required,max=120"`
	Description *string `json:"description"`
	IsFeatured  *bool   `json:"is_featured"`
}

// TableName overrides
func (Wishlist) TableName() string {
	return "wishlists"
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

func (Group) TableName() string {
	return "groups"
}

package models

import (
	"time"
)

// Namespace scopes: the kind of context object that fills the placeholder.
const (
	ScopeOffer   = "OFFER"
	ScopeCoupon  = "COUPON"
	ScopeGlobal  = "GLOBAL"
	ScopeProfile = "PROFILE"
)

// ValidScope reports whether s is a known namespace scope.
func ValidScope(s string) bool {
	switch s {
	case ScopeOffer, ScopeCoupon, ScopeGlobal, ScopeProfile:
		return true
	}
	return false
}

// Namespace represents the namespaces table: the catalogue of placeholder
// names usable inside template bodies.
type Namespace struct {
	NamespaceID int       `gorm:"primaryKey;column:namespace_id" json:"namespace_id"`
	Name        string    `gorm:"column:name;unique" json:"name"`
	Label       string    `gorm:"column:label" json:"label"`
	Scope       string    `gorm:"column:scope;type:enum('OFFER','COUPON','GLOBAL','PROFILE');default:'GLOBAL'" json:"scope"`
	Description *string   `gorm:"column:description" json:"description,omitempty"`
	Example     *string   `gorm:"column:example" json:"example,omitempty"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time `gorm:"column:update_at" json:"update_at"`
}

// UserNamespaceValue stores per-user values for profile placeholders
type UserNamespaceValue struct {
	ValueID     int       `gorm:"primaryKey;column:value_id" json:"value_id"`
	UserID      int       `gorm:"column:user_id;uniqueIndex:uq_user_namespace" json:"user_id"`
	NamespaceID int       `gorm:"column:namespace_id;uniqueIndex:uq_user_namespace" json:"namespace_id"`
	Value       string    `gorm:"column:value" json:"value"`
	CreateAt    time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt    time.Time `gorm:"column:update_at" json:"update_at"`

	Namespace Namespace `gorm:"foreignKey:NamespaceID" json:"namespace,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

type NamespaceCreateRequest struct {
	Name        string  `json:"name" binding:"required,max=80"`
	Label       string  `json:"label" binding:"omitempty,max=120"`
	Scope       string  `json:"scope" binding:"omitempty,oneof=OFFER COUPON GLOBAL PROFILE"`
	Description *string `json:"description"`
	Example     *string `json:"example"`
}

type NamespaceUpdateRequest struct {
	// Name and scope are fixed after creation; only display fields mutate.
	Label       *string `json:"label"`
	Description *string `json:"description"`
	Example     *string `json:"example"`
}

// TableName overrides
func (Namespace) TableName() string {
	return "namespaces"
}

func (UserNamespaceValue) TableName() string {
	return "user_namespace_values"
}

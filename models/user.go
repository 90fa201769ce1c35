package models

import (
	"time"
)

// Role values stored in users.role
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleMember = "member"
)

type User struct {
	UserID       int        `gorm:"primaryKey;column:user_id" json:"user_id"`
	Email        string     `gorm:"column:email;unique" json:"email"`
	PasswordHash string     `gorm:"column:password_hash" json:"-"`
	DisplayName  string     `gorm:"column:display_name" json:"display_name"`
	Role         string     `gorm:"column:role;type:enum('admin','editor','member');default:'member'" json:"role"`
	Bio          *string    `gorm:"column:bio" json:"bio,omitempty"`
	AvatarURL    *string    `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	IsActive     bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreateAt     time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt     time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt     *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	// Contact info (fills profile placeholders)
	Phone   *string `gorm:"column:phone" json:"phone,omitempty"`
	Address *string `gorm:"column:address" json:"address,omitempty"`
	Website *string `gorm:"column:website" json:"website,omitempty"`

	// Social media handles
	Instagram *string `gorm:"column:instagram" json:"instagram,omitempty"`
	Facebook  *string `gorm:"column:facebook" json:"facebook,omitempty"`
	Twitter   *string `gorm:"column:twitter" json:"twitter,omitempty"`
	LinkedIn  *string `gorm:"column:linkedin" json:"linkedin,omitempty"`
	YouTube   *string `gorm:"column:youtube" json:"youtube,omitempty"`
	TikTok    *string `gorm:"column:tiktok" json:"tiktok,omitempty"`
}

// UserToken represents the user_tokens table (revocable API tokens)
type UserToken struct {
	TokenID   int       `gorm:"primaryKey;column:token_id" json:"token_id"`
	Token     string    `gorm:"column:token;unique" json:"-"`
	UserID    int       `gorm:"column:user_id" json:"user_id"`
	ExpiresAt time.Time `gorm:"column:expires_at" json:"expires_at"`
	Revoked   bool      `gorm:"column:revoked;default:false" json:"revoked"`
	CreateAt  time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt  time.Time `gorm:"column:update_at" json:"update_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// IsValid reports whether the token can still authenticate requests.
func (t *UserToken) IsValid(now time.Time) bool {
	return !t.Revoked && now.Before(t.ExpiresAt)
}

// IsStaff reports whether the user can manage offers, coupons and templates.
func (u *User) IsStaff() bool {
	return u.Role == RoleAdmin || u.Role == RoleEditor
}

type UserResponse struct {
	UserID      int     `json:"user_id"`
	Email       string  `json:"email"`
	DisplayName string  `json:"display_name"`
	Role        string  `json:"role"`
	Bio         *string `json:"bio,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Website     *string `json:"website,omitempty"`
	Instagram   *string `json:"instagram,omitempty"`
	Facebook    *string `json:"facebook,omitempty"`
	Twitter     *string `json:"twitter,omitempty"`
	LinkedIn    *string `json:"linkedin,omitempty"`
	YouTube     *string `json:"youtube,omitempty"`
	TikTok      *string `json:"tiktok,omitempty"`
	CreateAt    string  `json:"create_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Phone:       u.Phone,
		Address:     u.Address,
		Website:     u.Website,
		Instagram:   u.Instagram,
		Facebook:    u.Facebook,
		Twitter:     u.Twitter,
		LinkedIn:    u.LinkedIn,
		YouTube:     u.YouTube,
		TikTok:      u.TikTok,
		CreateAt:    u.CreateAt.Format(time.RFC3339),
	}
}

// TableName overrides
func (User) TableName() string {
	return "users"
}

func (UserToken) TableName() string {
	return "user_tokens"
}

package models

import (
	"strings"
	"time"
)

// Template represents the templates table. The body holds {placeholder}
// tokens resolved at render time.
type Template struct {
	TemplateID  int        `gorm:"primaryKey;column:template_id" json:"template_id"`
	Name        string     `gorm:"column:name" json:"name"`
	Slug        string     `gorm:"column:slug;unique" json:"slug"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	Body        string     `gorm:"column:body" json:"body"`
	// Legacy comma-separated channel list, kept for backwards compatibility
	// with rows created before social network configs existed.
	Channels string     `gorm:"column:channels;default:'instagram,facebook,whatsapp,telegram'" json:"channels"`
	CreateAt time.Time  `gorm:"column:create_at" json:"create_at"`
	UpdateAt time.Time  `gorm:"column:update_at" json:"update_at"`
	DeleteAt *time.Time `gorm:"column:delete_at" json:"delete_at,omitempty"`

	SocialNetworks []SocialNetworkConfig `gorm:"many2many:template_social_networks;foreignKey:TemplateID;joinForeignKey:template_id;References:ConfigID;joinReferences:social_network_id" json:"social_networks,omitempty"`
}

// ChannelList returns the networks this template targets: the associated
// social network configs when present, otherwise the legacy channels field.
func (t *Template) ChannelList() []string {
	if len(t.SocialNetworks) > 0 {
		channels := make([]string, 0, len(t.SocialNetworks))
		for _, sn := range t.SocialNetworks {
			channels = append(channels, sn.Network)
		}
		return channels
	}
	var channels []string
	for _, channel := range strings.Split(t.Channels, ",") {
		if trimmed := strings.TrimSpace(channel); trimmed != "" {
			channels = append(channels, trimmed)
		}
	}
	return channels
}

// TemplateSocialNetwork stores a per-(template, network) custom body that
// replaces the template's default body when rendering for that network.
type TemplateSocialNetwork struct {
	ID            int       `gorm:"primaryKey;column:id" json:"id"`
	TemplateID    int       `gorm:"column:template_id;uniqueIndex:uq_template_social_network" json:"template_id"`
	SocialNetwork string    `gorm:"column:social_network;uniqueIndex:uq_template_social_network" json:"social_network"`
	CustomBody    string    `gorm:"column:custom_body" json:"custom_body"`
	CreateAt      time.Time `gorm:"column:create_at" json:"create_at"`
	UpdateAt      time.Time `gorm:"column:update_at" json:"update_at"`

	Template Template `gorm:"foreignKey:TemplateID" json:"template,omitempty"`
}

type TemplateCreateRequest struct {
	Name           string   `json:"name" binding:"required,max=120"`
	Slug           string   `json:"slug" binding:"required,max=120"`
	Description    *string  `json:"description"`
	Body           string   `json:"body" binding:"required"`
	Channels       []string `json:"channels"`
	SocialNetworks []int    `json:"social_network_ids"`
}

type TemplateUpdateRequest struct {
	Name           *string  `json:"name"`
	Slug           *string  `json:"slug"`
	Description    *string  `json:"description"`
	Body           *string  `json:"body"`
	Channels       []string `json:"channels"`
	SocialNetworks []int    `json:"social_network_ids"`
}

type TemplateResponse struct {
	TemplateID     int      `json:"template_id"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	Description    *string  `json:"description,omitempty"`
	Body           string   `json:"body"`
	Channels       []string `json:"channels"`
	SocialNetworks []string `json:"social_networks"`
	CreateAt       string   `json:"create_at"`
	UpdateAt       string   `json:"update_at"`
}

func (t *Template) ToResponse() TemplateResponse {
	networks := make([]string, 0, len(t.SocialNetworks))
	for _, sn := range t.SocialNetworks {
		networks = append(networks, sn.Network)
	}
	return TemplateResponse{
		TemplateID:     t.TemplateID,
		Name:           t.Name,
		Slug:           t.Slug,
		Description:    t.Description,
		Body:           t.Body,
		Channels:       t.ChannelList(),
		SocialNetworks: networks,
		CreateAt:       t.CreateAt.Format(time.RFC3339),
		UpdateAt:       t.UpdateAt.Format(time.RFC3339),
	}
}

// TableName overrides
func (Template) TableName() string {
	return "templates"
}

func (TemplateSocialNetwork) TableName() string {
	return "template_social_network_custom"
}

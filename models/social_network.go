package models

// SocialNetworkConfig represents per-network decoration applied around every
// rendered caption for that network.
type SocialNetworkConfig struct {
	ConfigID   int     `gorm:"primaryKey;column:config_id" json:"config_id"`
	Network    string  `gorm:"column:network;unique" json:"network"`
	Color      *string `gorm:"column:color" json:"color,omitempty"`
	PrefixText *string `gorm:"column:prefix_text" json:"prefix_text,omitempty"`
	SuffixText *string `gorm:"column:suffix_text" json:"suffix_text,omitempty"`
	Active     bool    `gorm:"column:active;default:true" json:"active"`
}

// Prefix returns the prefix text, empty when unset.
func (c *SocialNetworkConfig) Prefix() string {
	if c.PrefixText == nil {
		return ""
	}
	return *c.PrefixText
}

// Suffix returns the suffix text, empty when unset.
func (c *SocialNetworkConfig) Suffix() string {
	if c.SuffixText == nil {
		return ""
	}
	return *c.SuffixText
}

type SocialNetworkCreateRequest struct {
	Network    string  `json:"network" binding:"required,max=50"`
	Color      *string `json:"color"`
	PrefixText *string `json:"prefix_text"`
	SuffixText *string `json:"suffix_text"`
	Active     *bool   `json:"active"`
}

type SocialNetworkUpdateRequest struct {
	Color      *string `json:"color"`
	PrefixText *string `json:"prefix_text"`
	SuffixText *string `json:"suffix_text"`
	Active     *bool   `json:"active"`
}

func (SocialNetworkConfig) TableName() string {
	return "social_network_configs"
}

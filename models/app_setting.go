package models

// AppSetting represents the app_settings key/value table
type AppSetting struct {
	SettingID   int     `gorm:"primaryKey;column:setting_id" json:"setting_id"`
	Key         string  `gorm:"column:setting_key;unique" json:"key"`
	Value       *string `gorm:"column:setting_value" json:"value,omitempty"`
	Description *string `gorm:"column:description" json:"description,omitempty"`
}

// Setting keys
const (
	SettingDefaultCurrency = "default_currency"
)

func (AppSetting) TableName() string {
	return "app_settings"
}

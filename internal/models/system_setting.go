package models

import "gorm.io/datatypes"

// SystemSetting is a key/value bag for feature flags and service state,
// e.g. {"service_status": "green"}.
type SystemSetting struct {
	Key   string         `gorm:"primaryKey"`
	Value datatypes.JSON `gorm:"type:jsonb"`
}

package models

import "time"

// BaseModel is like gorm.Model but without the soft-delete column: deletes
// must be hard so the ON DELETE CASCADE / SET NULL constraints actually fire.
type BaseModel struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

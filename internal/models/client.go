package models

import (
	"time"

	"github.com/freecrm-dev/freecrm/internal/types"
)

type Client struct {
	BaseModel

	UserID      uint               `gorm:"not null;index"`
	Name        string             `gorm:"not null"`
	Email       string             `gorm:"index"`
	Contact     string
	Status      types.ClientStatus `gorm:"not null;default:active"`
	LastContact *time.Time         `gorm:"type:date"` // stamped server-side, never caller-supplied
	Notes       string

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Projects []Project `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}

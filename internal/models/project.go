package models

import (
	"time"

	"github.com/freecrm-dev/freecrm/internal/types"
	"github.com/shopspring/decimal"
)

type Project struct {
	BaseModel

	UserID      uint                `gorm:"not null;index"`
	ClientID    *uint               `gorm:"index"`
	Title       string              `gorm:"not null"`
	Status      types.ProjectStatus `gorm:"not null;default:discussion"`
	Budget      decimal.NullDecimal `gorm:"type:decimal(12,2)"`
	Deadline    *time.Time          `gorm:"type:date"`
	Description string

	// Relationships
	User     User      `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Client   *Client   `gorm:"foreignKey:ClientID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
	Payments []Payment `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}

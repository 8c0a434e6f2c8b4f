package models

import (
	"time"

	"github.com/freecrm-dev/freecrm/internal/types"
	"github.com/shopspring/decimal"
)

type Payment struct {
	BaseModel

	UserID    uint                `gorm:"not null;index"`
	ProjectID *uint               `gorm:"index"`
	Amount    decimal.Decimal     `gorm:"type:decimal(12,2);not null"`
	Status    types.PaymentStatus `gorm:"not null;default:pending"`
	DueDate   *time.Time          `gorm:"type:date"`
	Comment   string

	// Relationships
	User    User     `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:CASCADE" json:"-"`
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnUpdate:Cascade,OnDelete:SET NULL"`
}

package models

type Feedback struct {
	BaseModel

	UserID  *uint  `gorm:"index"`
	Name    string
	Message string `gorm:"not null"`
	Type    string `gorm:"not null;default:feedback"`
	IsRead  bool   `gorm:"not null;default:false"`

	// Relationships
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:Cascade,OnDelete:SET NULL" json:"-"`
}

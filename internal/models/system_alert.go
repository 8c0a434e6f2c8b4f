package models

type SystemAlert struct {
	BaseModel

	Title    string `gorm:"not null"`
	Message  string `gorm:"not null"`
	IsActive bool   `gorm:"not null;default:true"`
}

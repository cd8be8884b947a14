package model

type City struct {
	DTO
	Name     string `gorm:"size:100;uniqueIndex;not null" validate:"required" json:"name"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}

package model

import "time"

type Promotion struct {
	DTO
	Title           string    `gorm:"size:255;not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	DiscountPercent int       `gorm:"default:0" json:"discountPercent"`
	StartDate       time.Time `gorm:"not null" json:"startDate"`
	EndDate         time.Time `gorm:"not null" json:"endDate"`
	ImageURL        string    `json:"imageUrl"`
	IsActive        bool      `gorm:"default:true" json:"isActive"`
}

// IsValid reports whether the promotion is currently running.
func (p *Promotion) IsValid(now time.Time) bool {
	return p.IsActive && !now.Before(p.StartDate) && !now.After(p.EndDate)
}

type CreatePromotionInput struct {
	Title           string    `validate:"required" json:"title"`
	Description     string    `json:"description"`
	DiscountPercent int       `validate:"gte=0,lte=100" json:"discountPercent"`
	StartDate       time.Time `validate:"required" json:"startDate"`
	EndDate         time.Time `validate:"required" json:"endDate"`
	ImageURL        string    `validate:"omitempty,url" json:"imageUrl"`
	IsActive        *bool     `json:"isActive"`
}

type UpdatePromotionInput struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	DiscountPercent *int       `validate:"omitempty,gte=0,lte=100" json:"discountPercent"`
	StartDate       *time.Time `json:"startDate"`
	EndDate         *time.Time `json:"endDate"`
	ImageURL        *string    `validate:"omitempty,url" json:"imageUrl"`
	IsActive        *bool      `json:"isActive"`
}

package model

import "time"

type ShowTime struct {
	DTO
	MovieId   uint      `gorm:"not null" json:"movieId"`
	HallId    uint      `gorm:"not null" json:"hallId"`
	StartTime time.Time `gorm:"not null" json:"startTime"`
	Price     float64   `gorm:"not null" json:"price"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`

	Movie   Movie    `gorm:"foreignKey:MovieId;constraint:OnDelete:CASCADE" json:"movie"`
	Hall    Hall     `gorm:"foreignKey:HallId;constraint:OnDelete:CASCADE" json:"hall"`
	Tickets []Ticket `gorm:"foreignKey:ShowtimeId;constraint:OnDelete:CASCADE" json:"-"`
}

type CreateShowTimeInput struct {
	MovieId   uint      `validate:"required,gt=0" json:"movieId"`
	HallId    uint      `validate:"required,gt=0" json:"hallId"`
	StartTime time.Time `validate:"required" json:"startTime"`
	Price     float64   `validate:"gte=0" json:"price"`
	IsActive  *bool     `json:"isActive"`
}

type UpdateShowTimeInput struct {
	MovieId   *uint      `validate:"omitempty,gt=0" json:"movieId"`
	HallId    *uint      `validate:"omitempty,gt=0" json:"hallId"`
	StartTime *time.Time `json:"startTime"`
	Price     *float64   `validate:"omitempty,gte=0" json:"price"`
	IsActive  *bool      `json:"isActive"`
}

type FilterShowTimeInput struct {
	Pagination
	MovieId  uint   `query:"movie" json:"movie"`
	CinemaId uint   `query:"cinema" json:"cinema"`
	Date     string `query:"date" json:"date"` // YYYY-MM-DD
	Status   string `query:"status" validate:"omitempty,oneof=active inactive" json:"status"`
}

package model

type Hall struct {
	DTO
	CinemaId    uint   `gorm:"not null" json:"cinemaId"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Rows        int    `gorm:"not null" json:"rows"`
	SeatsPerRow int    `gorm:"not null" json:"seatsPerRow"`

	Cinema Cinema `gorm:"foreignKey:CinemaId;constraint:OnDelete:CASCADE" json:"cinema"`
}

// TotalSeats is derived from the hall dimensions.
func (h *Hall) TotalSeats() int {
	return h.Rows * h.SeatsPerRow
}

type CreateHallInput struct {
	CinemaId    uint   `validate:"required,gt=0" json:"cinemaId"`
	Name        string `validate:"required" json:"name"`
	Rows        int    `validate:"required,gt=0" json:"rows"`
	SeatsPerRow int    `validate:"required,gt=0" json:"seatsPerRow"`
}

type UpdateHallInput struct {
	CinemaId    *uint   `validate:"omitempty,gt=0" json:"cinemaId"`
	Name        *string `json:"name"`
	Rows        *int    `validate:"omitempty,gt=0" json:"rows"`
	SeatsPerRow *int    `validate:"omitempty,gt=0" json:"seatsPerRow"`
}

package model

import "time"

type Ticket struct {
	DTO
	Code        string    `gorm:"size:36;uniqueIndex;not null" json:"code"`
	ShowtimeId  uint      `gorm:"not null;index" json:"showtimeId"`
	UserId      uint      `gorm:"not null;index" json:"userId"`
	Row         int       `gorm:"column:seat_row;not null" json:"row"`
	Seat        int       `gorm:"column:seat_number;not null" json:"seat"`
	Price       float64   `gorm:"not null" json:"price"` // snapshot of the showtime price at booking time
	Status      string    `gorm:"size:10;not null;default:'booked'" json:"status"`
	BookingDate time.Time `gorm:"not null" json:"bookingDate"`

	Showtime ShowTime `gorm:"foreignKey:ShowtimeId;constraint:OnDelete:CASCADE" json:"showtime"`
	User     User     `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"user"`
}

type BookTicketInput struct {
	Row  int `validate:"required,gt=0" json:"row"`
	Seat int `validate:"required,gt=0" json:"seat"`
}

type FilterTicketInput struct {
	Pagination
	User    string `query:"user" json:"user"` // username or email substring
	MovieId uint   `query:"movie" json:"movie"`
	Status  string `query:"status" validate:"omitempty,oneof=booked paid cancelled" json:"status"`
	Date    string `query:"date" json:"date"` // booking date, YYYY-MM-DD
}

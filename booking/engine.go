package booking

import (
	"errors"
	"time"

	"github.com/Taulan23/kino-system/constants"
	"github.com/Taulan23/kino-system/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CancelWindow is the minimum lead time before the session start within
// which a regular user may still cancel a ticket.
const CancelWindow = time.Hour

// AvailableSeatCount returns hall capacity minus the seats held by
// non-cancelled tickets.
func AvailableSeatCount(db *gorm.DB, showtime *model.ShowTime) (int, error) {
	var occupied int64
	err := db.Model(&model.Ticket{}).
		Where("showtime_id = ? AND status IN ?", showtime.ID, constants.ActiveTicketStatuses).
		Count(&occupied).Error
	if err != nil {
		return 0, err
	}
	return showtime.Hall.TotalSeats() - int(occupied), nil
}

// IsSeatAvailable reports whether no active ticket holds the seat.
func IsSeatAvailable(db *gorm.DB, showtimeId uint, row, seat int) (bool, error) {
	var occupied int64
	err := db.Model(&model.Ticket{}).
		Where("showtime_id = ? AND seat_row = ? AND seat_number = ? AND status IN ?",
			showtimeId, row, seat, constants.ActiveTicketStatuses).
		Count(&occupied).Error
	if err != nil {
		return false, err
	}
	return occupied == 0, nil
}

// BookSeat creates a paid ticket for the seat. The availability check and
// the insert run in one transaction, and the partial unique index on
// active seats backstops concurrent bookings that slip past the check.
func BookSeat(db *gorm.DB, showtime *model.ShowTime, userId uint, row, seat int) (*model.Ticket, error) {
	if !showtime.StartTime.After(time.Now()) {
		return nil, ErrShowtimeExpired
	}

	ticket := &model.Ticket{
		Code:        uuid.NewString(),
		ShowtimeId:  showtime.ID,
		UserId:      userId,
		Row:         row,
		Seat:        seat,
		Price:       showtime.Price,
		Status:      constants.TICKET_PAID,
		BookingDate: time.Now(),
	}
	err := db.Transaction(func(tx *gorm.DB) error {
		free, err := IsSeatAvailable(tx, showtime.ID, row, seat)
		if err != nil {
			return err
		}
		if !free {
			return ErrSeatUnavailable
		}
		return tx.Create(ticket).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSeatUnavailable
		}
		return nil, err
	}
	return ticket, nil
}

// CancelTicket flips the ticket to cancelled, freeing its seat. Regular
// users must cancel at least CancelWindow before the session; admins may
// cancel at any time.
func CancelTicket(db *gorm.DB, ticket *model.Ticket, isAdmin bool) error {
	if ticket.Status == constants.TICKET_CANCELLED {
		return ErrAlreadyCancelled
	}
	if !isAdmin && time.Until(ticket.Showtime.StartTime) < CancelWindow {
		return ErrTooLateToCancel
	}
	return db.Model(ticket).Update("status", constants.TICKET_CANCELLED).Error
}

package booking

import "errors"

var (
	ErrShowtimeExpired  = errors.New("showtime has already started")
	ErrSeatUnavailable  = errors.New("seat is already taken")
	ErrTooLateToCancel  = errors.New("tickets can be cancelled no later than one hour before the session")
	ErrAlreadyCancelled = errors.New("ticket is already cancelled")
)

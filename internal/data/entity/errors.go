package entity

import "errors"

// Domain errors surfaced by the reservation engine and its collaborators.
// The HTTP boundary maps these to status codes with errors.Is; messages are
// stable and machine-friendly.
var (
	ErrNotFound            = errors.New("not found")
	ErrSeatAlreadyBooked   = errors.New("seat already booked")
	ErrScheduleFull        = errors.New("schedule full")
	ErrScheduleNotBookable = errors.New("schedule not bookable")
	ErrInvalidSeat         = errors.New("invalid seat number")
	ErrAlreadyCancelled    = errors.New("booking already cancelled")
	ErrBookingNotCancelled = errors.New("booking is not cancelled")
	ErrBookingCompleted    = errors.New("booking already completed")
	ErrScheduleHasBookings = errors.New("schedule has confirmed bookings")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrInvalidInput        = errors.New("invalid input")
)

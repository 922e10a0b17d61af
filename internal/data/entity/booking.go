package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
)

type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Booking struct {
	Base
	BookingUUID        uuid.UUID     `db:"booking_uuid"` // public, unguessable reference
	ScheduleID         uuid.UUID     `db:"schedule_id"`
	UserID             *uuid.UUID    `db:"user_id"` // nil for guest bookings
	SeatNumber         string        `db:"seat_number"`
	PassengerName      string        `db:"passenger_name"`
	PassengerPhone     string        `db:"passenger_phone"`
	PassengerEmail     *string       `db:"passenger_email"`
	Status             BookingStatus `db:"booking_status"`
	AmountPaid         float64       `db:"amount_paid"`
	PaymentStatus      PaymentStatus `db:"payment_status"`
	CancellationReason *string       `db:"cancellation_reason"`
	BookedAt           time.Time     `db:"booked_at"`
}

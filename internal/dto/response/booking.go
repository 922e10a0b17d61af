package response

import (
	"bus-booking/internal/data/entity"
	"time"
)

type BookingResponse struct {
	ID                 string               `json:"id"`
	BookingUUID        string               `json:"booking_uuid"`
	ScheduleID         string               `json:"schedule_id"`
	UserID             *string              `json:"user_id,omitempty"`
	SeatNumber         string               `json:"seat_number"`
	PassengerName      string               `json:"passenger_name"`
	PassengerPhone     string               `json:"passenger_phone"`
	PassengerEmail     *string              `json:"passenger_email,omitempty"`
	Status             entity.BookingStatus `json:"status"`
	AmountPaid         float64              `json:"amount_paid"`
	PaymentStatus      entity.PaymentStatus `json:"payment_status"`
	CancellationReason *string              `json:"cancellation_reason,omitempty"`
	BookedAt           time.Time            `json:"booked_at"`
	Schedule           *ScheduleResponse    `json:"schedule,omitempty"`
}

func BookingToResponse(booking *entity.Booking) BookingResponse {
	resp := BookingResponse{
		ID:                 booking.ID.String(),
		BookingUUID:        booking.BookingUUID.String(),
		ScheduleID:         booking.ScheduleID.String(),
		SeatNumber:         booking.SeatNumber,
		PassengerName:      booking.PassengerName,
		PassengerPhone:     booking.PassengerPhone,
		PassengerEmail:     booking.PassengerEmail,
		Status:             booking.Status,
		AmountPaid:         booking.AmountPaid,
		PaymentStatus:      booking.PaymentStatus,
		CancellationReason: booking.CancellationReason,
		BookedAt:           booking.BookedAt,
	}
	if booking.UserID != nil {
		id := booking.UserID.String()
		resp.UserID = &id
	}
	return resp
}

func BookingsToResponse(bookings []*entity.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		out = append(out, BookingToResponse(booking))
	}
	return out
}

type BulkItemError struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason"`
}

// BulkResultResponse distinguishes skipped items (the booking exists but its
// state refuses the operation) from errored ones (unknown reference or an
// unexpected failure).
type BulkResultResponse struct {
	Succeeded int             `json:"succeeded"`
	Skipped   int             `json:"skipped"`
	Errored   int             `json:"errored"`
	Errors    []BulkItemError `json:"errors"`
}

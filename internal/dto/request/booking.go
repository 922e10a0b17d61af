package request

type CreateBookingRequest struct {
	ScheduleID     string  `json:"schedule_id" validate:"required,uuid4"`
	SeatNumber     string  `json:"seat_number" validate:"required,seatnumber"`
	PassengerName  string  `json:"passenger_name" validate:"required,min=2,max=100"`
	PassengerPhone string  `json:"passenger_phone" validate:"required,min=8,max=20"`
	PassengerEmail *string `json:"passenger_email,omitempty" validate:"omitempty,email"`
}

type CancelBookingRequest struct {
	Reason *string `json:"reason,omitempty" validate:"omitempty,max=255"`
}

type BulkBookingRequest struct {
	BookingIDs []string `json:"booking_ids" validate:"required,min=1,max=100,dive,uuid4"`
	Reason     *string  `json:"reason,omitempty" validate:"omitempty,max=255"`
}

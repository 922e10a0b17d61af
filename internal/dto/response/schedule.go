package response

import (
	"bus-booking/internal/data/entity"
	"time"
)

type ScheduleResponse struct {
	ID             string                `json:"id"`
	RouteID        string                `json:"route_id"`
	BusID          string                `json:"bus_id"`
	Origin         string                `json:"origin,omitempty"`
	Destination    string                `json:"destination,omitempty"`
	BusName        string                `json:"bus_name,omitempty"`
	TravelDate     string                `json:"travel_date"`
	DepartureTime  string                `json:"departure_time"`
	ArrivalTime    string                `json:"arrival_time"`
	AvailableSeats int                   `json:"available_seats"`
	BasePrice      float64               `json:"base_price,omitempty"`
	Status         entity.ScheduleStatus `json:"status"`
	CreatedAt      time.Time             `json:"created_at"`
}

func ScheduleToResponse(schedule *entity.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:             schedule.ID.String(),
		RouteID:        schedule.RouteID.String(),
		BusID:          schedule.BusID.String(),
		TravelDate:     schedule.TravelDate.Format("2006-01-02"),
		DepartureTime:  schedule.DepartureTime,
		ArrivalTime:    schedule.ArrivalTime,
		AvailableSeats: schedule.AvailableSeats,
		Status:         schedule.Status,
		CreatedAt:      schedule.CreatedAt,
	}
}

type SeatResponse struct {
	Number string `json:"number"`
	Row    int    `json:"row"`
	Column int    `json:"column"`
	Booked bool   `json:"booked"`
}

type RecountResponse struct {
	ScheduleID string `json:"schedule_id"`
	Stored     int    `json:"stored"`
	Actual     int    `json:"actual"`
	Corrected  bool   `json:"corrected"`
}

type SeatMapResponse struct {
	ScheduleID     string         `json:"schedule_id"`
	LayoutType     string         `json:"layout_type"`
	TotalSeats     int            `json:"total_seats"`
	AvailableSeats int            `json:"available_seats"`
	Seats          []SeatResponse `json:"seats"`
}

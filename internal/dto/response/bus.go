package response

import (
	"bus-booking/internal/data/entity"
	"time"
)

type BusResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	PlateNumber string    `json:"plate_number"`
	TotalSeats  int       `json:"total_seats"`
	LayoutType  string    `json:"layout_type"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func BusToResponse(bus *entity.Bus) BusResponse {
	return BusResponse{
		ID:          bus.ID.String(),
		Name:        bus.Name,
		PlateNumber: bus.PlateNumber,
		TotalSeats:  bus.TotalSeats,
		LayoutType:  string(bus.LayoutType),
		IsActive:    bus.IsActive,
		CreatedAt:   bus.CreatedAt,
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type ScheduleStatus string

const (
	ScheduleStatusScheduled ScheduleStatus = "scheduled"
	ScheduleStatusCancelled ScheduleStatus = "cancelled"
	ScheduleStatusCompleted ScheduleStatus = "completed"
)

type Schedule struct {
	Base
	RouteID        uuid.UUID      `db:"route_id"`
	BusID          uuid.UUID      `db:"bus_id"`
	TravelDate     time.Time      `db:"travel_date"`
	DepartureTime  string         `db:"departure_time"` // HH:MM
	ArrivalTime    string         `db:"arrival_time"`   // HH:MM
	AvailableSeats int            `db:"available_seats"`
	Status         ScheduleStatus `db:"status"`
}

// ScheduleUpdate is a typed partial update: nil fields are left untouched.
// available_seats is deliberately absent; the counter is only ever mutated by
// the reservation engine, and a bus change recomputes it from the ledger.
type ScheduleUpdate struct {
	RouteID       *uuid.UUID
	BusID         *uuid.UUID
	TravelDate    *time.Time
	DepartureTime *string
	ArrivalTime   *string
}

// IsEmpty reports whether the update would change nothing.
func (u *ScheduleUpdate) IsEmpty() bool {
	return u.RouteID == nil && u.BusID == nil && u.TravelDate == nil &&
		u.DepartureTime == nil && u.ArrivalTime == nil
}

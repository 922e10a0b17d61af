package repository

import (
	"bus-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User          UserRepository
	PasswordReset PasswordResetRepository
	Route         RouteRepository
	Bus           BusRepository
	Schedule      ScheduleRepository
	Booking       BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:          NewUserRepository(db, log),
		PasswordReset: NewPasswordResetRepository(db, log),
		Route:         NewRouteRepository(db, log),
		Bus:           NewBusRepository(db, log),
		Schedule:      NewScheduleRepository(db, log),
		Booking:       NewBookingRepository(db, log),
	}
}

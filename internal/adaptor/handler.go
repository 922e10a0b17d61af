package adaptor

import (
	"bus-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Route    *RouteHandler
	Bus      *BusHandler
	Schedule *ScheduleHandler
	Booking  *BookingHandler
	Report   *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		User:     NewUserHandler(service.User, log),
		Route:    NewRouteHandler(service.Route, log),
		Bus:      NewBusHandler(service.Bus, log),
		Schedule: NewScheduleHandler(service.Schedule, log),
		Booking:  NewBookingHandler(service.Booking, log),
		Report:   NewReportHandler(service.Report, log),
	}
}

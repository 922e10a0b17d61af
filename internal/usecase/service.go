package usecase

import (
	"bus-booking/internal/data/repository"
	"bus-booking/pkg/notify"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Route    RouteService
	Bus      BusService
	Schedule ScheduleService
	Booking  BookingService
	Report   ReportService
}

func NewService(repo *repository.Repository, cfg *utils.Config, notifier notify.Notifier, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, cfg, notifier, log),
		User:     NewUserService(repo, log),
		Route:    NewRouteService(repo, log),
		Bus:      NewBusService(repo, log),
		Schedule: NewScheduleService(repo, log),
		Booking:  NewBookingService(repo, notifier, log),
		Report:   NewReportService(repo, log),
	}
}

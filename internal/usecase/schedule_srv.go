package usecase

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ScheduleService interface {
	// Public endpoints
	GetScheduleByID(ctx context.Context, scheduleID string) (*response.ScheduleResponse, error)
	GetUpcomingSchedules(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ScheduleResponse], error)
	GetSchedulesByRoute(ctx context.Context, routeID string) ([]response.ScheduleResponse, error)
	GetSeatMap(ctx context.Context, scheduleID string) (*response.SeatMapResponse, error)

	// Admin endpoints
	CreateSchedule(ctx context.Context, req *request.CreateScheduleRequest) (*response.ScheduleResponse, error)
	UpdateSchedule(ctx context.Context, scheduleID string, req *request.UpdateScheduleRequest) (*response.ScheduleResponse, error)
	CancelSchedule(ctx context.Context, scheduleID string) (int64, error)
	DeleteSchedule(ctx context.Context, scheduleID string) error
	RecountSchedule(ctx context.Context, scheduleID string) (*response.RecountResponse, error)
}

type scheduleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewScheduleService(repo *repository.Repository, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo: repo,
		log:  log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) CreateSchedule(ctx context.Context, req *request.CreateScheduleRequest) (*response.ScheduleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create schedule validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	routeID, err := uuid.Parse(req.RouteID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", req.RouteID, entity.ErrInvalidInput)
	}
	busID, err := uuid.Parse(req.BusID)
	if err != nil {
		return nil, fmt.Errorf("invalid bus ID format %s: %w", req.BusID, entity.ErrInvalidInput)
	}

	route, err := s.repo.Route.FindByID(ctx, routeID)
	if err != nil {
		return nil, err
	}
	if route == nil || !route.IsActive {
		return nil, fmt.Errorf("active route %s: %w", req.RouteID, entity.ErrNotFound)
	}

	bus, err := s.repo.Bus.FindByID(ctx, busID)
	if err != nil {
		return nil, err
	}
	if bus == nil || !bus.IsActive {
		return nil, fmt.Errorf("active bus %s: %w", req.BusID, entity.ErrNotFound)
	}

	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return nil, fmt.Errorf("invalid travel date %s: %w", req.TravelDate, entity.ErrInvalidInput)
	}

	now := time.Now()
	schedule := &entity.Schedule{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RouteID:        routeID,
		BusID:          busID,
		TravelDate:     travelDate,
		DepartureTime:  req.DepartureTime,
		ArrivalTime:    req.ArrivalTime,
		AvailableSeats: bus.TotalSeats,
		Status:         entity.ScheduleStatusScheduled,
	}

	if err := s.repo.Schedule.Create(ctx, schedule); err != nil {
		return nil, err
	}

	s.log.Info("Schedule created",
		zap.String("schedule_id", schedule.ID.String()),
		zap.String("route_id", req.RouteID),
		zap.String("travel_date", req.TravelDate),
	)

	resp := response.ScheduleToResponse(schedule)
	s.enrich(&resp, route, bus)
	return &resp, nil
}

func (s *scheduleService) GetScheduleByID(ctx context.Context, scheduleID string) (*response.ScheduleResponse, error) {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, entity.ErrInvalidInput)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, entity.ErrNotFound)
	}

	resp := response.ScheduleToResponse(schedule)

	if route, err := s.repo.Route.FindByID(ctx, schedule.RouteID); err == nil && route != nil {
		resp.Origin = route.Origin
		resp.Destination = route.Destination
		resp.BasePrice = route.BasePrice
	}
	if bus, err := s.repo.Bus.FindByID(ctx, schedule.BusID); err == nil && bus != nil {
		resp.BusName = bus.Name
	}

	return &resp, nil
}

func (s *scheduleService) GetUpcomingSchedules(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ScheduleResponse], error) {
	today := utils.StartOfDay(time.Now())

	schedules, err := s.repo.Schedule.FindUpcoming(ctx, today, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Schedule.CountUpcoming(ctx, today)
	if err != nil {
		return nil, err
	}

	out := make([]response.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		out = append(out, response.ScheduleToResponse(schedule))
	}

	return response.NewPaginatedResponse(out, req.Page, req.Limit(), total), nil
}

func (s *scheduleService) GetSchedulesByRoute(ctx context.Context, routeID string) ([]response.ScheduleResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, entity.ErrInvalidInput)
	}

	schedules, err := s.repo.Schedule.FindByRouteID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]response.ScheduleResponse, 0, len(schedules))
	for _, schedule := range schedules {
		out = append(out, response.ScheduleToResponse(schedule))
	}
	return out, nil
}

// GetSeatMap derives the seat grid from the bus layout and overlays the
// confirmed bookings for this schedule.
func (s *scheduleService) GetSeatMap(ctx context.Context, scheduleID string) (*response.SeatMapResponse, error) {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, entity.ErrInvalidInput)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s: %w", scheduleID, entity.ErrNotFound)
	}

	bus, err := s.repo.Bus.FindByID(ctx, schedule.BusID)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, fmt.Errorf("bus for schedule %s: %w", scheduleID, entity.ErrNotFound)
	}

	bookedNumbers, err := s.repo.Booking.FindBookedSeatNumbers(ctx, id)
	if err != nil {
		return nil, err
	}
	booked := make(map[string]bool, len(bookedNumbers))
	for _, n := range bookedNumbers {
		booked[n] = true
	}

	layout := entity.BuildSeatLayout(bus.TotalSeats, bus.LayoutType)
	seats := make([]response.SeatResponse, 0, len(layout))
	for _, seat := range layout {
		seats = append(seats, response.SeatResponse{
			Number: seat.Number,
			Row:    seat.Row,
			Column: seat.Column,
			Booked: booked[seat.Number],
		})
	}

	// Derived live from the booked overlay, not the cached counter, so the
	// map stays self-consistent even when the counter has drifted.
	return &response.SeatMapResponse{
		ScheduleID:     scheduleID,
		LayoutType:     string(bus.LayoutType),
		TotalSeats:     bus.TotalSeats,
		AvailableSeats: bus.TotalSeats - len(booked),
		Seats:          seats,
	}, nil
}

func (s *scheduleService) UpdateSchedule(ctx context.Context, scheduleID string, req *request.UpdateScheduleRequest) (*response.ScheduleResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, entity.ErrInvalidInput)
	}

	upd := &entity.ScheduleUpdate{
		DepartureTime: req.DepartureTime,
		ArrivalTime:   req.ArrivalTime,
	}

	if req.RouteID != nil {
		routeID, err := uuid.Parse(*req.RouteID)
		if err != nil {
			return nil, fmt.Errorf("invalid route ID format %s: %w", *req.RouteID, entity.ErrInvalidInput)
		}
		route, err := s.repo.Route.FindByID(ctx, routeID)
		if err != nil {
			return nil, err
		}
		if route == nil {
			return nil, fmt.Errorf("route %s: %w", *req.RouteID, entity.ErrNotFound)
		}
		upd.RouteID = &routeID
	}

	if req.BusID != nil {
		busID, err := uuid.Parse(*req.BusID)
		if err != nil {
			return nil, fmt.Errorf("invalid bus ID format %s: %w", *req.BusID, entity.ErrInvalidInput)
		}
		bus, err := s.repo.Bus.FindByID(ctx, busID)
		if err != nil {
			return nil, err
		}
		if bus == nil {
			return nil, fmt.Errorf("bus %s: %w", *req.BusID, entity.ErrNotFound)
		}
		upd.BusID = &busID
	}

	if req.TravelDate != nil {
		travelDate, err := time.Parse("2006-01-02", *req.TravelDate)
		if err != nil {
			return nil, fmt.Errorf("invalid travel date %s: %w", *req.TravelDate, entity.ErrInvalidInput)
		}
		upd.TravelDate = &travelDate
	}

	if upd.IsEmpty() {
		return s.GetScheduleByID(ctx, scheduleID)
	}

	if err := s.repo.Schedule.UpdatePartial(ctx, id, upd); err != nil {
		return nil, err
	}

	s.log.Info("Schedule updated", zap.String("schedule_id", scheduleID))
	return s.GetScheduleByID(ctx, scheduleID)
}

func (s *scheduleService) CancelSchedule(ctx context.Context, scheduleID string) (int64, error) {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return 0, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, entity.ErrInvalidInput)
	}

	cancelled, err := s.repo.Schedule.Cancel(ctx, id)
	if err != nil {
		return 0, err
	}

	s.log.Info("Schedule cancelled",
		zap.String("schedule_id", scheduleID),
		zap.Int64("bookings_cancelled", cancelled),
	)
	return cancelled, nil
}

func (s *scheduleService) DeleteSchedule(ctx context.Context, scheduleID string) error {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, entity.ErrInvalidInput)
	}

	if err := s.repo.Schedule.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info("Schedule deleted", zap.String("schedule_id", scheduleID))
	return nil
}

func (s *scheduleService) RecountSchedule(ctx context.Context, scheduleID string) (*response.RecountResponse, error) {
	id, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", scheduleID, entity.ErrInvalidInput)
	}

	stored, actual, err := s.repo.Schedule.Recount(ctx, id)
	if err != nil {
		return nil, err
	}

	return &response.RecountResponse{
		ScheduleID: scheduleID,
		Stored:     stored,
		Actual:     actual,
		Corrected:  stored != actual,
	}, nil
}

func (s *scheduleService) enrich(resp *response.ScheduleResponse, route *entity.Route, bus *entity.Bus) {
	resp.Origin = route.Origin
	resp.Destination = route.Destination
	resp.BasePrice = route.BasePrice
	resp.BusName = bus.Name
}

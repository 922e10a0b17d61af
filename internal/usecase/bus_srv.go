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

type BusService interface {
	GetBusByID(ctx context.Context, busID string) (*response.BusResponse, error)
	GetAllBuses(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BusResponse], error)

	CreateBus(ctx context.Context, req *request.CreateBusRequest) (*response.BusResponse, error)
	UpdateBus(ctx context.Context, busID string, req *request.UpdateBusRequest) (*response.BusResponse, error)
	DeleteBus(ctx context.Context, busID string) error
}

type busService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBusService(repo *repository.Repository, log *zap.Logger) BusService {
	return &busService{
		repo: repo,
		log:  log.With(zap.String("service", "bus")),
	}
}

func (s *busService) CreateBus(ctx context.Context, req *request.CreateBusRequest) (*response.BusResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create bus validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	now := time.Now()
	bus := &entity.Bus{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		PlateNumber: req.PlateNumber,
		TotalSeats:  req.TotalSeats,
		LayoutType:  entity.BusLayout(req.LayoutType),
		IsActive:    true,
	}

	if err := s.repo.Bus.Create(ctx, bus); err != nil {
		return nil, err
	}

	s.log.Info("Bus created",
		zap.String("bus_id", bus.ID.String()),
		zap.String("plate_number", bus.PlateNumber),
	)

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) GetBusByID(ctx context.Context, busID string) (*response.BusResponse, error) {
	id, err := uuid.Parse(busID)
	if err != nil {
		return nil, fmt.Errorf("invalid bus ID format %s: %w", busID, entity.ErrInvalidInput)
	}

	bus, err := s.repo.Bus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, fmt.Errorf("bus %s: %w", busID, entity.ErrNotFound)
	}

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) GetAllBuses(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BusResponse], error) {
	buses, err := s.repo.Bus.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Bus.Count(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.BusResponse, 0, len(buses))
	for _, bus := range buses {
		out = append(out, response.BusToResponse(bus))
	}

	return response.NewPaginatedResponse(out, req.Page, req.Limit(), total), nil
}

func (s *busService) UpdateBus(ctx context.Context, busID string, req *request.UpdateBusRequest) (*response.BusResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	id, err := uuid.Parse(busID)
	if err != nil {
		return nil, fmt.Errorf("invalid bus ID format %s: %w", busID, entity.ErrInvalidInput)
	}

	bus, err := s.repo.Bus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, fmt.Errorf("bus %s: %w", busID, entity.ErrNotFound)
	}

	if req.Name != nil {
		bus.Name = *req.Name
	}
	if req.PlateNumber != nil {
		bus.PlateNumber = *req.PlateNumber
	}
	if req.TotalSeats != nil {
		bus.TotalSeats = *req.TotalSeats
	}
	if req.LayoutType != nil {
		bus.LayoutType = entity.BusLayout(*req.LayoutType)
	}
	if req.IsActive != nil {
		bus.IsActive = *req.IsActive
	}
	bus.UpdatedAt = time.Now()

	if err := s.repo.Bus.Update(ctx, bus); err != nil {
		return nil, err
	}

	s.log.Info("Bus updated", zap.String("bus_id", busID))

	resp := response.BusToResponse(bus)
	return &resp, nil
}

func (s *busService) DeleteBus(ctx context.Context, busID string) error {
	id, err := uuid.Parse(busID)
	if err != nil {
		return fmt.Errorf("invalid bus ID format %s: %w", busID, entity.ErrInvalidInput)
	}

	return s.repo.Bus.Delete(ctx, id)
}

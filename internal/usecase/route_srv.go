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

type RouteService interface {
	GetRouteByID(ctx context.Context, routeID string) (*response.RouteResponse, error)
	GetAllRoutes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RouteResponse], error)
	SearchRoutes(ctx context.Context, origin, destination string) ([]response.RouteResponse, error)

	CreateRoute(ctx context.Context, req *request.CreateRouteRequest) (*response.RouteResponse, error)
	UpdateRoute(ctx context.Context, routeID string, req *request.UpdateRouteRequest) (*response.RouteResponse, error)
	DeleteRoute(ctx context.Context, routeID string) error
	BulkDeleteRoutes(ctx context.Context, req *request.BulkRouteDeleteRequest) (*response.RouteBulkDeleteResponse, error)
}

type routeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRouteService(repo *repository.Repository, log *zap.Logger) RouteService {
	return &routeService{
		repo: repo,
		log:  log.With(zap.String("service", "route")),
	}
}

func (s *routeService) CreateRoute(ctx context.Context, req *request.CreateRouteRequest) (*response.RouteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create route validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	now := time.Now()
	route := &entity.Route{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Origin:          req.Origin,
		Destination:     req.Destination,
		DistanceKM:      req.DistanceKM,
		DurationMinutes: req.DurationMinutes,
		BasePrice:       req.BasePrice,
		IsActive:        true,
	}

	if err := s.repo.Route.Create(ctx, route); err != nil {
		return nil, err
	}

	s.log.Info("Route created",
		zap.String("route_id", route.ID.String()),
		zap.String("origin", route.Origin),
		zap.String("destination", route.Destination),
	)

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) GetRouteByID(ctx context.Context, routeID string) (*response.RouteResponse, error) {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, entity.ErrInvalidInput)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("route %s: %w", routeID, entity.ErrNotFound)
	}

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) GetAllRoutes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RouteResponse], error) {
	routes, err := s.repo.Route.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Route.Count(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]response.RouteResponse, 0, len(routes))
	for _, route := range routes {
		out = append(out, response.RouteToResponse(route))
	}

	return response.NewPaginatedResponse(out, req.Page, req.Limit(), total), nil
}

func (s *routeService) SearchRoutes(ctx context.Context, origin, destination string) ([]response.RouteResponse, error) {
	routes, err := s.repo.Route.Search(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	out := make([]response.RouteResponse, 0, len(routes))
	for _, route := range routes {
		out = append(out, response.RouteToResponse(route))
	}
	return out, nil
}

func (s *routeService) UpdateRoute(ctx context.Context, routeID string, req *request.UpdateRouteRequest) (*response.RouteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	id, err := uuid.Parse(routeID)
	if err != nil {
		return nil, fmt.Errorf("invalid route ID format %s: %w", routeID, entity.ErrInvalidInput)
	}

	route, err := s.repo.Route.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("route %s: %w", routeID, entity.ErrNotFound)
	}

	if req.Origin != nil {
		route.Origin = *req.Origin
	}
	if req.Destination != nil {
		route.Destination = *req.Destination
	}
	if req.DistanceKM != nil {
		route.DistanceKM = *req.DistanceKM
	}
	if req.DurationMinutes != nil {
		route.DurationMinutes = *req.DurationMinutes
	}
	if req.BasePrice != nil {
		route.BasePrice = *req.BasePrice
	}
	if req.IsActive != nil {
		route.IsActive = *req.IsActive
	}
	route.UpdatedAt = time.Now()

	if err := s.repo.Route.Update(ctx, route); err != nil {
		return nil, err
	}

	s.log.Info("Route updated", zap.String("route_id", routeID))

	resp := response.RouteToResponse(route)
	return &resp, nil
}

func (s *routeService) DeleteRoute(ctx context.Context, routeID string) error {
	id, err := uuid.Parse(routeID)
	if err != nil {
		return fmt.Errorf("invalid route ID format %s: %w", routeID, entity.ErrInvalidInput)
	}

	return s.repo.Route.Delete(ctx, id)
}

// BulkDeleteRoutes soft-deletes each route independently; one missing route
// never aborts the batch.
func (s *routeService) BulkDeleteRoutes(ctx context.Context, req *request.BulkRouteDeleteRequest) (*response.RouteBulkDeleteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	result := &response.RouteBulkDeleteResponse{}
	for _, idStr := range req.RouteIDs {
		id, err := uuid.Parse(idStr)
		if err != nil {
			result.Skipped++
			result.Failed = append(result.Failed, idStr)
			continue
		}
		if err := s.repo.Route.Delete(ctx, id); err != nil {
			result.Skipped++
			result.Failed = append(result.Failed, idStr)
			continue
		}
		result.Deleted++
	}

	s.log.Info("Bulk route delete finished",
		zap.Int("deleted", result.Deleted),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

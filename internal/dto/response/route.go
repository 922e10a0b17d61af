package response

import (
	"bus-booking/internal/data/entity"
	"time"
)

type RouteResponse struct {
	ID              string    `json:"id"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	DistanceKM      float64   `json:"distance_km"`
	DurationMinutes int       `json:"duration_minutes"`
	BasePrice       float64   `json:"base_price"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
}

type RouteBulkDeleteResponse struct {
	Deleted int      `json:"deleted"`
	Skipped int      `json:"skipped"`
	Failed  []string `json:"failed,omitempty"`
}

func RouteToResponse(route *entity.Route) RouteResponse {
	return RouteResponse{
		ID:              route.ID.String(),
		Origin:          route.Origin,
		Destination:     route.Destination,
		DistanceKM:      route.DistanceKM,
		DurationMinutes: route.DurationMinutes,
		BasePrice:       route.BasePrice,
		IsActive:        route.IsActive,
		CreatedAt:       route.CreatedAt,
	}
}

package request

type CreateRouteRequest struct {
	Origin          string  `json:"origin" validate:"required,min=2,max=100"`
	Destination     string  `json:"destination" validate:"required,min=2,max=100"`
	DistanceKM      float64 `json:"distance_km" validate:"required,gt=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"required,gt=0"`
	BasePrice       float64 `json:"base_price" validate:"required,gt=0"`
}

type UpdateRouteRequest struct {
	Origin          *string  `json:"origin,omitempty" validate:"omitempty,min=2,max=100"`
	Destination     *string  `json:"destination,omitempty" validate:"omitempty,min=2,max=100"`
	DistanceKM      *float64 `json:"distance_km,omitempty" validate:"omitempty,gt=0"`
	DurationMinutes *int     `json:"duration_minutes,omitempty" validate:"omitempty,gt=0"`
	BasePrice       *float64 `json:"base_price,omitempty" validate:"omitempty,gt=0"`
	IsActive        *bool    `json:"is_active,omitempty"`
}

type BulkRouteDeleteRequest struct {
	RouteIDs []string `json:"route_ids" validate:"required,min=1,max=100,dive,uuid4"`
}

type SearchRouteRequest struct {
	Origin      string `json:"origin" validate:"omitempty,max=100"`
	Destination string `json:"destination" validate:"omitempty,max=100"`
}

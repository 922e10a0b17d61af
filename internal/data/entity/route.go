package entity

type Route struct {
	Base
	Origin          string  `db:"origin"`
	Destination     string  `db:"destination"`
	DistanceKM      float64 `db:"distance_km"`
	DurationMinutes int     `db:"duration_minutes"`
	BasePrice       float64 `db:"base_price"`
	IsActive        bool    `db:"is_active"`
}

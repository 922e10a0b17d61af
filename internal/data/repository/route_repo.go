package repository

import (
	"context"
	"fmt"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const routeColumns = `id, origin, destination, distance_km, duration_minutes, base_price,
		is_active, created_at, updated_at`

type RouteRepository interface {
	Create(ctx context.Context, route *entity.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Route, error)
	Count(ctx context.Context) (int64, error)
	Search(ctx context.Context, origin, destination string) ([]*entity.Route, error)
	Update(ctx context.Context, route *entity.Route) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type routeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRouteRepository(db database.PgxIface, log *zap.Logger) RouteRepository {
	return &routeRepository{
		db:  db,
		log: log.With(zap.String("repository", "route")),
	}
}

func (r *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO routes (`+routeColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		route.ID,
		route.Origin,
		route.Destination,
		route.DistanceKM,
		route.DurationMinutes,
		route.BasePrice,
		route.IsActive,
		route.CreatedAt,
		route.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create route",
			zap.Error(err),
			zap.String("origin", route.Origin),
			zap.String("destination", route.Destination),
		)
		return fmt.Errorf("create route %s-%s: %w", route.Origin, route.Destination, err)
	}

	return nil
}

func (r *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	route, err := scanRoute(r.db.QueryRow(ctx,
		`SELECT `+routeColumns+` FROM routes WHERE id = $1 AND deleted_at IS NULL`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find route by ID",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return nil, fmt.Errorf("find route by ID %s: %w", id.String(), err)
	}
	return route, nil
}

func (r *routeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Route, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+routeColumns+` FROM routes
		 WHERE deleted_at IS NULL
		 ORDER BY origin, destination
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		r.log.Error("Failed to find routes", zap.Error(err))
		return nil, fmt.Errorf("find routes: %w", err)
	}
	defer rows.Close()

	return collectRoutes(rows)
}

func (r *routeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM routes WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count routes", zap.Error(err))
		return 0, fmt.Errorf("count routes: %w", err)
	}
	return count, nil
}

func (r *routeRepository) Search(ctx context.Context, origin, destination string) ([]*entity.Route, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+routeColumns+` FROM routes
		 WHERE deleted_at IS NULL AND is_active = true
		   AND origin ILIKE $1 AND destination ILIKE $2
		 ORDER BY origin, destination`,
		"%"+origin+"%", "%"+destination+"%",
	)
	if err != nil {
		r.log.Error("Failed to search routes",
			zap.Error(err),
			zap.String("origin", origin),
			zap.String("destination", destination),
		)
		return nil, fmt.Errorf("search routes %s-%s: %w", origin, destination, err)
	}
	defer rows.Close()

	return collectRoutes(rows)
}

func (r *routeRepository) Update(ctx context.Context, route *entity.Route) error {
	result, err := r.db.Exec(ctx,
		`UPDATE routes
		 SET origin = $2, destination = $3, distance_km = $4, duration_minutes = $5,
		     base_price = $6, is_active = $7, updated_at = $8
		 WHERE id = $1 AND deleted_at IS NULL`,
		route.ID,
		route.Origin,
		route.Destination,
		route.DistanceKM,
		route.DurationMinutes,
		route.BasePrice,
		route.IsActive,
		route.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update route",
			zap.Error(err),
			zap.String("route_id", route.ID.String()),
		)
		return fmt.Errorf("update route %s: %w", route.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s: %w", route.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *routeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`UPDATE routes SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		r.log.Error("Failed to delete route",
			zap.Error(err),
			zap.String("route_id", id.String()),
		)
		return fmt.Errorf("delete route %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("route %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Route soft deleted", zap.String("route_id", id.String()))
	return nil
}

// ==================== SCAN HELPERS ====================

func scanRoute(row pgx.Row) (*entity.Route, error) {
	var route entity.Route
	err := row.Scan(
		&route.ID,
		&route.Origin,
		&route.Destination,
		&route.DistanceKM,
		&route.DurationMinutes,
		&route.BasePrice,
		&route.IsActive,
		&route.CreatedAt,
		&route.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &route, nil
}

func collectRoutes(rows pgx.Rows) ([]*entity.Route, error) {
	var routes []*entity.Route
	for rows.Next() {
		route, err := scanRoute(rows)
		if err != nil {
			return nil, fmt.Errorf("scan route row: %w", err)
		}
		routes = append(routes, route)
	}
	return routes, nil
}

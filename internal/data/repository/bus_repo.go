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

const busColumns = `id, name, plate_number, total_seats, layout_type, is_active, created_at, updated_at`

type BusRepository interface {
	Create(ctx context.Context, bus *entity.Bus) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Bus, error)
	Count(ctx context.Context) (int64, error)
	Update(ctx context.Context, bus *entity.Bus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type busRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBusRepository(db database.PgxIface, log *zap.Logger) BusRepository {
	return &busRepository{
		db:  db,
		log: log.With(zap.String("repository", "bus")),
	}
}

func (r *busRepository) Create(ctx context.Context, bus *entity.Bus) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO buses (`+busColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		bus.ID,
		bus.Name,
		bus.PlateNumber,
		bus.TotalSeats,
		bus.LayoutType,
		bus.IsActive,
		bus.CreatedAt,
		bus.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create bus",
			zap.Error(err),
			zap.String("plate_number", bus.PlateNumber),
		)
		return fmt.Errorf("create bus %s: %w", bus.PlateNumber, err)
	}

	return nil
}

func (r *busRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	bus, err := scanBus(r.db.QueryRow(ctx,
		`SELECT `+busColumns+` FROM buses WHERE id = $1 AND deleted_at IS NULL`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find bus by ID",
			zap.Error(err),
			zap.String("bus_id", id.String()),
		)
		return nil, fmt.Errorf("find bus by ID %s: %w", id.String(), err)
	}
	return bus, nil
}

func (r *busRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Bus, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+busColumns+` FROM buses
		 WHERE deleted_at IS NULL
		 ORDER BY name
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		r.log.Error("Failed to find buses", zap.Error(err))
		return nil, fmt.Errorf("find buses: %w", err)
	}
	defer rows.Close()

	var buses []*entity.Bus
	for rows.Next() {
		bus, err := scanBus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan bus row: %w", err)
		}
		buses = append(buses, bus)
	}

	return buses, nil
}

func (r *busRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM buses WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count buses", zap.Error(err))
		return 0, fmt.Errorf("count buses: %w", err)
	}
	return count, nil
}

func (r *busRepository) Update(ctx context.Context, bus *entity.Bus) error {
	result, err := r.db.Exec(ctx,
		`UPDATE buses
		 SET name = $2, plate_number = $3, total_seats = $4, layout_type = $5,
		     is_active = $6, updated_at = $7
		 WHERE id = $1 AND deleted_at IS NULL`,
		bus.ID,
		bus.Name,
		bus.PlateNumber,
		bus.TotalSeats,
		bus.LayoutType,
		bus.IsActive,
		bus.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to update bus",
			zap.Error(err),
			zap.String("bus_id", bus.ID.String()),
		)
		return fmt.Errorf("update bus %s: %w", bus.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("bus %s: %w", bus.ID.String(), entity.ErrNotFound)
	}

	return nil
}

func (r *busRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx,
		`UPDATE buses SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`, id)
	if err != nil {
		r.log.Error("Failed to delete bus",
			zap.Error(err),
			zap.String("bus_id", id.String()),
		)
		return fmt.Errorf("delete bus %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("bus %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Bus soft deleted", zap.String("bus_id", id.String()))
	return nil
}

func scanBus(row pgx.Row) (*entity.Bus, error) {
	var bus entity.Bus
	err := row.Scan(
		&bus.ID,
		&bus.Name,
		&bus.PlateNumber,
		&bus.TotalSeats,
		&bus.LayoutType,
		&bus.IsActive,
		&bus.CreatedAt,
		&bus.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &bus, nil
}

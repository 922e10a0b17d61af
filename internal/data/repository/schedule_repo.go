package repository

import (
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const scheduleColumns = `id, route_id, bus_id, travel_date, departure_time, arrival_time,
		available_seats, status, created_at, updated_at`

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error)
	FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.Schedule, error)
	FindUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]*entity.Schedule, error)
	CountUpcoming(ctx context.Context, from time.Time) (int64, error)

	// UpdatePartial applies a typed partial update. A bus change recomputes
	// available_seats from the live confirmed-booking count in the same tx.
	UpdatePartial(ctx context.Context, id uuid.UUID, upd *entity.ScheduleUpdate) error

	// Cancel cascade-cancels every confirmed booking and restores the counter
	// to the bus capacity, atomically.
	Cancel(ctx context.Context, id uuid.UUID) (int64, error)

	// Delete refuses while confirmed bookings exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// Recount recomputes available_seats from the ledger; returns the stored
	// and recomputed values so callers can report drift.
	Recount(ctx context.Context, id uuid.UUID) (stored, actual int, err error)

	// ReconcileAll fixes counter drift across all non-departed schedules in
	// one statement. Returns the number of corrected rows.
	ReconcileAll(ctx context.Context) (int64, error)

	CompleteDeparted(ctx context.Context, before time.Time) (int64, error)
}

type scheduleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScheduleRepository(db database.PgxIface, log *zap.Logger) ScheduleRepository {
	return &scheduleRepository{
		db:  db,
		log: log.With(zap.String("repository", "schedule")),
	}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *entity.Schedule) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO schedules (`+scheduleColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		schedule.ID,
		schedule.RouteID,
		schedule.BusID,
		schedule.TravelDate,
		schedule.DepartureTime,
		schedule.ArrivalTime,
		schedule.AvailableSeats,
		schedule.Status,
		schedule.CreatedAt,
		schedule.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create schedule",
			zap.Error(err),
			zap.String("route_id", schedule.RouteID.String()),
			zap.String("bus_id", schedule.BusID.String()),
			zap.Time("travel_date", schedule.TravelDate),
		)
		return fmt.Errorf("create schedule for route %s bus %s: %w",
			schedule.RouteID.String(), schedule.BusID.String(), err)
	}

	return nil
}

func (r *scheduleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	schedule, err := scanSchedule(r.db.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find schedule by ID",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return nil, fmt.Errorf("find schedule by ID %s: %w", id.String(), err)
	}
	return schedule, nil
}

func (r *scheduleRepository) FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.Schedule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
		 WHERE route_id = $1
		 ORDER BY travel_date, departure_time`,
		routeID,
	)
	if err != nil {
		r.log.Error("Failed to find schedules by route ID",
			zap.Error(err),
			zap.String("route_id", routeID.String()),
		)
		return nil, fmt.Errorf("find schedules by route ID %s: %w", routeID.String(), err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func (r *scheduleRepository) FindUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]*entity.Schedule, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+scheduleColumns+` FROM schedules
		 WHERE travel_date >= $1 AND status = 'scheduled'
		 ORDER BY travel_date, departure_time
		 LIMIT $2 OFFSET $3`,
		from, limit, offset,
	)
	if err != nil {
		r.log.Error("Failed to find upcoming schedules", zap.Error(err))
		return nil, fmt.Errorf("find upcoming schedules: %w", err)
	}
	defer rows.Close()

	return collectSchedules(rows)
}

func (r *scheduleRepository) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM schedules WHERE travel_date >= $1 AND status = 'scheduled'`,
		from,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count upcoming schedules", zap.Error(err))
		return 0, fmt.Errorf("count upcoming schedules: %w", err)
	}
	return count, nil
}

func (r *scheduleRepository) UpdatePartial(ctx context.Context, id uuid.UUID, upd *entity.ScheduleUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin schedule update tx: %w", err)
	}

	var currentBus uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT bus_id FROM schedules WHERE id = $1 FOR UPDATE`, id,
	).Scan(&currentBus)
	if err == pgx.ErrNoRows {
		tx.Rollback(ctx)
		return fmt.Errorf("schedule %s: %w", id.String(), entity.ErrNotFound)
	}
	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("lock schedule %s: %w", id.String(), err)
	}

	// Closed field set; each present field becomes one SET clause.
	set := ""
	args := []any{id}
	add := func(column string, value any) {
		args = append(args, value)
		if set != "" {
			set += ", "
		}
		set += fmt.Sprintf("%s = $%d", column, len(args))
	}

	if upd.RouteID != nil {
		add("route_id", *upd.RouteID)
	}
	if upd.TravelDate != nil {
		add("travel_date", *upd.TravelDate)
	}
	if upd.DepartureTime != nil {
		add("departure_time", *upd.DepartureTime)
	}
	if upd.ArrivalTime != nil {
		add("arrival_time", *upd.ArrivalTime)
	}

	if upd.BusID != nil && *upd.BusID != currentBus {
		// Capacity changed: recompute the counter from the ledger, never
		// carry the old value over.
		var totalSeats int
		err = tx.QueryRow(ctx,
			`SELECT total_seats FROM buses WHERE id = $1 AND deleted_at IS NULL`, *upd.BusID,
		).Scan(&totalSeats)
		if err == pgx.ErrNoRows {
			tx.Rollback(ctx)
			return fmt.Errorf("bus %s: %w", upd.BusID.String(), entity.ErrNotFound)
		}
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("find bus %s: %w", upd.BusID.String(), err)
		}

		var confirmed int
		err = tx.QueryRow(ctx,
			`SELECT COUNT(*) FROM bookings WHERE schedule_id = $1 AND booking_status = 'confirmed'`, id,
		).Scan(&confirmed)
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("count confirmed bookings: %w", err)
		}

		if confirmed > totalSeats {
			tx.Rollback(ctx)
			return fmt.Errorf("bus capacity %d below %d confirmed bookings: %w",
				totalSeats, confirmed, entity.ErrScheduleHasBookings)
		}

		add("bus_id", *upd.BusID)
		add("available_seats", totalSeats-confirmed)
	}

	// Re-submitting the current bus with no other fields leaves nothing to
	// update.
	if set == "" {
		tx.Rollback(ctx)
		return nil
	}

	query := fmt.Sprintf("UPDATE schedules SET %s, updated_at = NOW() WHERE id = $1", set)
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to update schedule",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return fmt.Errorf("update schedule %s: %w", id.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit schedule update tx", zap.Error(err))
		return fmt.Errorf("commit schedule update tx: %w", err)
	}

	return nil
}

func (r *scheduleRepository) Cancel(ctx context.Context, id uuid.UUID) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin schedule cancel tx: %w", err)
	}

	var status entity.ScheduleStatus
	var busID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT status, bus_id FROM schedules WHERE id = $1 FOR UPDATE`, id,
	).Scan(&status, &busID)
	if err == pgx.ErrNoRows {
		tx.Rollback(ctx)
		return 0, fmt.Errorf("schedule %s: %w", id.String(), entity.ErrNotFound)
	}
	if err != nil {
		tx.Rollback(ctx)
		return 0, fmt.Errorf("lock schedule %s: %w", id.String(), err)
	}
	if status == entity.ScheduleStatusCancelled {
		tx.Rollback(ctx)
		return 0, fmt.Errorf("schedule %s: %w", id.String(), entity.ErrAlreadyCancelled)
	}

	result, err := tx.Exec(ctx,
		`UPDATE bookings
		 SET booking_status = 'cancelled', cancellation_reason = 'schedule cancelled', updated_at = NOW()
		 WHERE schedule_id = $1 AND booking_status = 'confirmed'`,
		id,
	)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to cascade-cancel bookings",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return 0, fmt.Errorf("cascade-cancel bookings: %w", err)
	}
	cancelled := result.RowsAffected()

	// Every seat is free again: counter back to bus capacity.
	_, err = tx.Exec(ctx,
		`UPDATE schedules
		 SET status = 'cancelled',
		     available_seats = (SELECT total_seats FROM buses WHERE id = $2),
		     updated_at = NOW()
		 WHERE id = $1`,
		id, busID,
	)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to cancel schedule",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return 0, fmt.Errorf("cancel schedule %s: %w", id.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit schedule cancel tx", zap.Error(err))
		return 0, fmt.Errorf("commit schedule cancel tx: %w", err)
	}

	r.log.Info("Schedule cancelled",
		zap.String("schedule_id", id.String()),
		zap.Int64("bookings_cancelled", cancelled),
	)
	return cancelled, nil
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	var confirmed int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE schedule_id = $1 AND booking_status = 'confirmed'`,
		id,
	).Scan(&confirmed)
	if err != nil {
		return fmt.Errorf("count confirmed bookings: %w", err)
	}
	if confirmed > 0 {
		return fmt.Errorf("schedule %s has %d confirmed bookings: %w",
			id.String(), confirmed, entity.ErrScheduleHasBookings)
	}

	result, err := r.db.Exec(ctx, `DELETE FROM schedules WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete schedule",
			zap.Error(err),
			zap.String("schedule_id", id.String()),
		)
		return fmt.Errorf("delete schedule %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("schedule %s: %w", id.String(), entity.ErrNotFound)
	}

	r.log.Info("Schedule deleted", zap.String("schedule_id", id.String()))
	return nil
}

func (r *scheduleRepository) Recount(ctx context.Context, id uuid.UUID) (int, int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("begin recount tx: %w", err)
	}

	var stored int
	var busID uuid.UUID
	err = tx.QueryRow(ctx,
		`SELECT available_seats, bus_id FROM schedules WHERE id = $1 FOR UPDATE`, id,
	).Scan(&stored, &busID)
	if err == pgx.ErrNoRows {
		tx.Rollback(ctx)
		return 0, 0, fmt.Errorf("schedule %s: %w", id.String(), entity.ErrNotFound)
	}
	if err != nil {
		tx.Rollback(ctx)
		return 0, 0, fmt.Errorf("lock schedule %s: %w", id.String(), err)
	}

	var actual int
	err = tx.QueryRow(ctx,
		`SELECT b.total_seats - (SELECT COUNT(*) FROM bookings
		                          WHERE schedule_id = $1 AND booking_status = 'confirmed')
		 FROM buses b
		 JOIN schedules s ON s.bus_id = b.id
		 WHERE s.id = $1`,
		id,
	).Scan(&actual)
	if err != nil {
		tx.Rollback(ctx)
		return 0, 0, fmt.Errorf("recompute available seats: %w", err)
	}

	if actual != stored {
		if _, err := tx.Exec(ctx,
			`UPDATE schedules SET available_seats = $2, updated_at = NOW() WHERE id = $1`,
			id, actual,
		); err != nil {
			tx.Rollback(ctx)
			return 0, 0, fmt.Errorf("correct available seats: %w", err)
		}
		r.log.Warn("Seat counter drift corrected",
			zap.String("schedule_id", id.String()),
			zap.Int("stored", stored),
			zap.Int("actual", actual),
		)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("commit recount tx: %w", err)
	}

	return stored, actual, nil
}

func (r *scheduleRepository) ReconcileAll(ctx context.Context) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE schedules s
		 SET available_seats = b.total_seats - c.confirmed, updated_at = NOW()
		 FROM buses b,
		      LATERAL (SELECT COUNT(*) AS confirmed FROM bookings
		               WHERE schedule_id = s.id AND booking_status = 'confirmed') c
		 WHERE b.id = s.bus_id
		   AND s.status = 'scheduled'
		   AND s.available_seats <> b.total_seats - c.confirmed`,
	)
	if err != nil {
		r.log.Error("Failed to reconcile seat counters", zap.Error(err))
		return 0, fmt.Errorf("reconcile seat counters: %w", err)
	}

	if corrected := result.RowsAffected(); corrected > 0 {
		r.log.Warn("Seat counters reconciled", zap.Int64("corrected", corrected))
		return corrected, nil
	}
	return 0, nil
}

func (r *scheduleRepository) CompleteDeparted(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE schedules SET status = 'completed', updated_at = NOW()
		 WHERE status = 'scheduled' AND travel_date < $1`,
		before,
	)
	if err != nil {
		r.log.Error("Failed to complete departed schedules", zap.Error(err))
		return 0, fmt.Errorf("complete departed schedules: %w", err)
	}
	return result.RowsAffected(), nil
}

// ==================== SCAN HELPERS ====================

func scanSchedule(row pgx.Row) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := row.Scan(
		&schedule.ID,
		&schedule.RouteID,
		&schedule.BusID,
		&schedule.TravelDate,
		&schedule.DepartureTime,
		&schedule.ArrivalTime,
		&schedule.AvailableSeats,
		&schedule.Status,
		&schedule.CreatedAt,
		&schedule.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func collectSchedules(rows pgx.Rows) ([]*entity.Schedule, error) {
	var schedules []*entity.Schedule
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scan schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}
	return schedules, nil
}

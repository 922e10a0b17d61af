package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

const bookingColumns = `id, booking_uuid, schedule_id, user_id, seat_number, passenger_name,
		passenger_phone, passenger_email, booking_status, amount_paid, payment_status,
		cancellation_reason, booked_at, created_at, updated_at`

type BookingRepository interface {
	// Atomic reservation operations. Each runs as a single transaction that
	// mutates the ledger and the schedule seat counter together.
	CreateConfirmed(ctx context.Context, booking *entity.Booking) error
	CancelByUUID(ctx context.Context, bookingUUID uuid.UUID, reason *string) (*entity.Booking, error)
	ReactivateByUUID(ctx context.Context, bookingUUID uuid.UUID) (*entity.Booking, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error

	// Reads
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByUUID(ctx context.Context, bookingUUID uuid.UUID) (*entity.Booking, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error)
	CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error)
	FindBookedSeatNumbers(ctx context.Context, scheduleID uuid.UUID) ([]string, error)
	CountConfirmedBySchedule(ctx context.Context, scheduleID uuid.UUID) (int, error)

	// Maintenance
	CompleteDeparted(ctx context.Context, before time.Time) (int64, error)

	// Reporting
	SalesByRoute(ctx context.Context, from, to time.Time) ([]*entity.RouteSales, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

// isUniqueViolation reports whether err is the partial unique index on
// (schedule_id, seat_number) WHERE booking_status = 'confirmed' firing.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// CreateConfirmed inserts a confirmed booking and decrements the schedule
// seat counter in one transaction. The schedule row is locked first, so the
// occupancy check, the insert and the decrement are serialized against
// concurrent attempts; the partial unique index backstops the seat
// exclusivity even then.
func (r *bookingRepository) CreateConfirmed(ctx context.Context, booking *entity.Booking) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin booking tx: %w", err)
	}

	var status entity.ScheduleStatus
	var available int
	err = tx.QueryRow(ctx,
		`SELECT status, available_seats FROM schedules WHERE id = $1 FOR UPDATE`,
		booking.ScheduleID,
	).Scan(&status, &available)
	if err == pgx.ErrNoRows {
		tx.Rollback(ctx)
		return fmt.Errorf("schedule %s: %w", booking.ScheduleID.String(), entity.ErrNotFound)
	}
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to lock schedule for booking",
			zap.Error(err),
			zap.String("schedule_id", booking.ScheduleID.String()),
		)
		return fmt.Errorf("lock schedule %s: %w", booking.ScheduleID.String(), err)
	}

	if status != entity.ScheduleStatusScheduled {
		tx.Rollback(ctx)
		return fmt.Errorf("schedule %s status %s: %w",
			booking.ScheduleID.String(), string(status), entity.ErrScheduleNotBookable)
	}
	if available <= 0 {
		tx.Rollback(ctx)
		return fmt.Errorf("schedule %s: %w", booking.ScheduleID.String(), entity.ErrScheduleFull)
	}

	var occupied int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE schedule_id = $1 AND seat_number = $2 AND booking_status = 'confirmed'`,
		booking.ScheduleID, booking.SeatNumber,
	).Scan(&occupied)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to check seat occupancy",
			zap.Error(err),
			zap.String("schedule_id", booking.ScheduleID.String()),
			zap.String("seat_number", booking.SeatNumber),
		)
		return fmt.Errorf("check seat %s occupancy: %w", booking.SeatNumber, err)
	}
	if occupied > 0 {
		tx.Rollback(ctx)
		return fmt.Errorf("seat %s on schedule %s: %w",
			booking.SeatNumber, booking.ScheduleID.String(), entity.ErrSeatAlreadyBooked)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO bookings (`+bookingColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		booking.ID,
		booking.BookingUUID,
		booking.ScheduleID,
		booking.UserID,
		booking.SeatNumber,
		booking.PassengerName,
		booking.PassengerPhone,
		booking.PassengerEmail,
		booking.Status,
		booking.AmountPaid,
		booking.PaymentStatus,
		booking.CancellationReason,
		booking.BookedAt,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		tx.Rollback(ctx)
		if isUniqueViolation(err) {
			// Lost the race despite the row lock (e.g. out-of-band writer).
			return fmt.Errorf("seat %s on schedule %s: %w",
				booking.SeatNumber, booking.ScheduleID.String(), entity.ErrSeatAlreadyBooked)
		}
		r.log.Error("Failed to insert booking",
			zap.Error(err),
			zap.String("booking_uuid", booking.BookingUUID.String()),
		)
		return fmt.Errorf("insert booking %s: %w", booking.BookingUUID.String(), err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE schedules SET available_seats = available_seats - 1, updated_at = NOW() WHERE id = $1`,
		booking.ScheduleID,
	)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to decrement available seats",
			zap.Error(err),
			zap.String("schedule_id", booking.ScheduleID.String()),
		)
		return fmt.Errorf("decrement available seats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit booking tx", zap.Error(err))
		return fmt.Errorf("commit booking tx: %w", err)
	}

	r.log.Info("Booking created",
		zap.String("booking_uuid", booking.BookingUUID.String()),
		zap.String("schedule_id", booking.ScheduleID.String()),
		zap.String("seat_number", booking.SeatNumber),
	)
	return nil
}

// CancelByUUID flips a confirmed booking to cancelled and gives the seat back
// to the schedule counter. Cancelling twice is reported as ErrAlreadyCancelled
// without touching the counter.
func (r *bookingRepository) CancelByUUID(ctx context.Context, bookingUUID uuid.UUID, reason *string) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin cancel tx: %w", err)
	}

	booking, err := scanBooking(tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE booking_uuid = $1 FOR UPDATE`,
		bookingUUID,
	))
	if err == pgx.ErrNoRows {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("booking %s: %w", bookingUUID.String(), entity.ErrNotFound)
	}
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to lock booking for cancel",
			zap.Error(err),
			zap.String("booking_uuid", bookingUUID.String()),
		)
		return nil, fmt.Errorf("lock booking %s: %w", bookingUUID.String(), err)
	}

	switch booking.Status {
	case entity.BookingStatusCancelled:
		tx.Rollback(ctx)
		return nil, fmt.Errorf("booking %s: %w", bookingUUID.String(), entity.ErrAlreadyCancelled)
	case entity.BookingStatusCompleted:
		tx.Rollback(ctx)
		return nil, fmt.Errorf("booking %s: %w", bookingUUID.String(), entity.ErrBookingCompleted)
	}

	_, err = tx.Exec(ctx,
		`UPDATE bookings SET booking_status = 'cancelled', cancellation_reason = $2, updated_at = NOW()
		 WHERE id = $1`,
		booking.ID, reason,
	)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_uuid", bookingUUID.String()),
		)
		return nil, fmt.Errorf("cancel booking %s: %w", bookingUUID.String(), err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE schedules SET available_seats = available_seats + 1, updated_at = NOW() WHERE id = $1`,
		booking.ScheduleID,
	)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to restore available seats",
			zap.Error(err),
			zap.String("schedule_id", booking.ScheduleID.String()),
		)
		return nil, fmt.Errorf("restore available seats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit cancel tx", zap.Error(err))
		return nil, fmt.Errorf("commit cancel tx: %w", err)
	}

	booking.Status = entity.BookingStatusCancelled
	booking.CancellationReason = reason

	r.log.Info("Booking cancelled",
		zap.String("booking_uuid", bookingUUID.String()),
		zap.String("seat_number", booking.SeatNumber),
	)
	return booking, nil
}

// ReactivateByUUID is a second admission attempt, not a status flip: the seat
// occupancy and capacity are re-checked under the same locks as a fresh
// booking before the cancelled row goes back to confirmed.
func (r *bookingRepository) ReactivateByUUID(ctx context.Context, bookingUUID uuid.UUID) (*entity.Booking, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin reactivate tx: %w", err)
	}

	booking, err := scanBooking(tx.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE booking_uuid = $1 FOR UPDATE`,
		bookingUUID,
	))
	if err == pgx.ErrNoRows {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("booking %s: %w", bookingUUID.String(), entity.ErrNotFound)
	}
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to lock booking for reactivate",
			zap.Error(err),
			zap.String("booking_uuid", bookingUUID.String()),
		)
		return nil, fmt.Errorf("lock booking %s: %w", bookingUUID.String(), err)
	}

	switch booking.Status {
	case entity.BookingStatusCompleted:
		tx.Rollback(ctx)
		return nil, fmt.Errorf("booking %s: %w", bookingUUID.String(), entity.ErrBookingCompleted)
	case entity.BookingStatusConfirmed:
		tx.Rollback(ctx)
		return nil, fmt.Errorf("booking %s: %w", bookingUUID.String(), entity.ErrBookingNotCancelled)
	}

	var status entity.ScheduleStatus
	var available int
	err = tx.QueryRow(ctx,
		`SELECT status, available_seats FROM schedules WHERE id = $1 FOR UPDATE`,
		booking.ScheduleID,
	).Scan(&status, &available)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to lock schedule for reactivate",
			zap.Error(err),
			zap.String("schedule_id", booking.ScheduleID.String()),
		)
		return nil, fmt.Errorf("lock schedule %s: %w", booking.ScheduleID.String(), err)
	}
	if status != entity.ScheduleStatusScheduled {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("schedule %s status %s: %w",
			booking.ScheduleID.String(), string(status), entity.ErrScheduleNotBookable)
	}
	if available <= 0 {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("schedule %s: %w", booking.ScheduleID.String(), entity.ErrScheduleFull)
	}

	var occupied int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings
		 WHERE schedule_id = $1 AND seat_number = $2 AND booking_status = 'confirmed'`,
		booking.ScheduleID, booking.SeatNumber,
	).Scan(&occupied)
	if err != nil {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("check seat %s occupancy: %w", booking.SeatNumber, err)
	}
	if occupied > 0 {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("seat %s on schedule %s: %w",
			booking.SeatNumber, booking.ScheduleID.String(), entity.ErrSeatAlreadyBooked)
	}

	_, err = tx.Exec(ctx,
		`UPDATE bookings SET booking_status = 'confirmed', cancellation_reason = NULL, updated_at = NOW()
		 WHERE id = $1`,
		booking.ID,
	)
	if err != nil {
		tx.Rollback(ctx)
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("seat %s on schedule %s: %w",
				booking.SeatNumber, booking.ScheduleID.String(), entity.ErrSeatAlreadyBooked)
		}
		r.log.Error("Failed to reactivate booking",
			zap.Error(err),
			zap.String("booking_uuid", bookingUUID.String()),
		)
		return nil, fmt.Errorf("reactivate booking %s: %w", bookingUUID.String(), err)
	}

	_, err = tx.Exec(ctx,
		`UPDATE schedules SET available_seats = available_seats - 1, updated_at = NOW() WHERE id = $1`,
		booking.ScheduleID,
	)
	if err != nil {
		tx.Rollback(ctx)
		return nil, fmt.Errorf("decrement available seats: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit reactivate tx", zap.Error(err))
		return nil, fmt.Errorf("commit reactivate tx: %w", err)
	}

	booking.Status = entity.BookingStatusConfirmed
	booking.CancellationReason = nil

	r.log.Info("Booking reactivated",
		zap.String("booking_uuid", bookingUUID.String()),
		zap.String("seat_number", booking.SeatNumber),
	)
	return booking, nil
}

// DeleteByID hard-deletes a booking. A confirmed booking first gets cancel
// semantics (counter increment) in the same transaction, so a delete never
// leaks a seat.
func (r *bookingRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete tx: %w", err)
	}

	var scheduleID uuid.UUID
	var status entity.BookingStatus
	err = tx.QueryRow(ctx,
		`SELECT schedule_id, booking_status FROM bookings WHERE id = $1 FOR UPDATE`,
		id,
	).Scan(&scheduleID, &status)
	if err == pgx.ErrNoRows {
		tx.Rollback(ctx)
		return fmt.Errorf("booking %s: %w", id.String(), entity.ErrNotFound)
	}
	if err != nil {
		tx.Rollback(ctx)
		return fmt.Errorf("lock booking %s: %w", id.String(), err)
	}

	if status == entity.BookingStatusConfirmed {
		_, err = tx.Exec(ctx,
			`UPDATE schedules SET available_seats = available_seats + 1, updated_at = NOW() WHERE id = $1`,
			scheduleID,
		)
		if err != nil {
			tx.Rollback(ctx)
			return fmt.Errorf("restore available seats: %w", err)
		}
	}

	_, err = tx.Exec(ctx, `DELETE FROM bookings WHERE id = $1`, id)
	if err != nil {
		tx.Rollback(ctx)
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit delete tx", zap.Error(err))
		return fmt.Errorf("commit delete tx: %w", err)
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}
	return booking, nil
}

func (r *bookingRepository) FindByUUID(ctx context.Context, bookingUUID uuid.UUID) (*entity.Booking, error) {
	booking, err := scanBooking(r.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE booking_uuid = $1`, bookingUUID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by UUID",
			zap.Error(err),
			zap.String("booking_uuid", bookingUUID.String()),
		)
		return nil, fmt.Errorf("find booking by UUID %s: %w", bookingUUID.String(), err)
	}
	return booking, nil
}

func (r *bookingRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+bookingColumns+` FROM bookings
		 WHERE user_id = $1
		 ORDER BY booked_at DESC
		 LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		r.log.Error("Failed to find bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find bookings by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM bookings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return 0, fmt.Errorf("count bookings by user ID %s: %w", userID.String(), err)
	}
	return count, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings`
	args := []any{}
	if status != nil {
		query += ` WHERE booking_status = $1 ORDER BY booked_at DESC LIMIT $2 OFFSET $3`
		args = append(args, *status, limit, offset)
	} else {
		query += ` ORDER BY booked_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.log.Error("Failed to find bookings", zap.Error(err))
		return nil, fmt.Errorf("find bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *bookingRepository) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings`
	args := []any{}
	if status != nil {
		query += ` WHERE booking_status = $1`
		args = append(args, *status)
	}

	var count int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

func (r *bookingRepository) FindBookedSeatNumbers(ctx context.Context, scheduleID uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT seat_number FROM bookings
		 WHERE schedule_id = $1 AND booking_status = 'confirmed'`,
		scheduleID,
	)
	if err != nil {
		r.log.Error("Failed to find booked seat numbers",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
		)
		return nil, fmt.Errorf("find booked seats for schedule %s: %w", scheduleID.String(), err)
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			r.log.Error("Failed to scan seat number", zap.Error(err))
			return nil, fmt.Errorf("scan seat number: %w", err)
		}
		seats = append(seats, seat)
	}

	return seats, nil
}

func (r *bookingRepository) CountConfirmedBySchedule(ctx context.Context, scheduleID uuid.UUID) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM bookings WHERE schedule_id = $1 AND booking_status = 'confirmed'`,
		scheduleID,
	).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count confirmed bookings",
			zap.Error(err),
			zap.String("schedule_id", scheduleID.String()),
		)
		return 0, fmt.Errorf("count confirmed bookings for schedule %s: %w", scheduleID.String(), err)
	}
	return count, nil
}

// CompleteDeparted marks confirmed bookings on departed schedules completed.
// Terminal transition, no counter change.
func (r *bookingRepository) CompleteDeparted(ctx context.Context, before time.Time) (int64, error) {
	result, err := r.db.Exec(ctx,
		`UPDATE bookings SET booking_status = 'completed', updated_at = NOW()
		 WHERE booking_status = 'confirmed'
		   AND schedule_id IN (SELECT id FROM schedules WHERE travel_date < $1)`,
		before,
	)
	if err != nil {
		r.log.Error("Failed to complete departed bookings", zap.Error(err))
		return 0, fmt.Errorf("complete departed bookings: %w", err)
	}
	return result.RowsAffected(), nil
}

// SalesByRoute aggregates booking counts and revenue per route over a travel
// date range. Revenue only counts non-cancelled bookings.
func (r *bookingRepository) SalesByRoute(ctx context.Context, from, to time.Time) ([]*entity.RouteSales, error) {
	rows, err := r.db.Query(ctx,
		`SELECT rt.origin, rt.destination,
		        COUNT(*) FILTER (WHERE b.booking_status <> 'cancelled'),
		        COUNT(*) FILTER (WHERE b.booking_status = 'cancelled'),
		        COALESCE(SUM(b.amount_paid) FILTER (WHERE b.booking_status <> 'cancelled'), 0)
		 FROM bookings b
		 JOIN schedules s ON s.id = b.schedule_id
		 JOIN routes rt ON rt.id = s.route_id
		 WHERE s.travel_date >= $1 AND s.travel_date <= $2
		 GROUP BY rt.origin, rt.destination
		 ORDER BY rt.origin, rt.destination`,
		from, to,
	)
	if err != nil {
		r.log.Error("Failed to aggregate sales by route", zap.Error(err))
		return nil, fmt.Errorf("sales by route: %w", err)
	}
	defer rows.Close()

	var report []*entity.RouteSales
	for rows.Next() {
		var row entity.RouteSales
		if err := rows.Scan(&row.Origin, &row.Destination, &row.Bookings, &row.Cancelled, &row.Revenue); err != nil {
			return nil, fmt.Errorf("scan sales row: %w", err)
		}
		report = append(report, &row)
	}
	return report, nil
}

// ==================== SCAN HELPERS ====================

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.BookingUUID,
		&booking.ScheduleID,
		&booking.UserID,
		&booking.SeatNumber,
		&booking.PassengerName,
		&booking.PassengerPhone,
		&booking.PassengerEmail,
		&booking.Status,
		&booking.AmountPaid,
		&booking.PaymentStatus,
		&booking.CancellationReason,
		&booking.BookedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func collectBookings(rows pgx.Rows) ([]*entity.Booking, error) {
	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

package repository

import (
	"context"
	"testing"
	"time"

	"bus-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingFixture(t *testing.T) (pgxmock.PgxPoolIface, BookingRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewBookingRepository(mock, zap.NewNop())
}

func testBooking() *entity.Booking {
	now := time.Now()
	return &entity.Booking{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		BookingUUID:    uuid.New(),
		ScheduleID:     uuid.New(),
		SeatNumber:     "A1",
		PassengerName:  "Rina Pratiwi",
		PassengerPhone: "081234567890",
		Status:         entity.BookingStatusConfirmed,
		AmountPaid:     250000,
		PaymentStatus:  entity.PaymentStatusPaid,
		BookedAt:       now,
	}
}

func expectScheduleLock(mock pgxmock.PgxPoolIface, scheduleID uuid.UUID, status entity.ScheduleStatus, available int) {
	mock.ExpectQuery(`SELECT status, available_seats FROM schedules WHERE id = \$1 FOR UPDATE`).
		WithArgs(scheduleID).
		WillReturnRows(pgxmock.NewRows([]string{"status", "available_seats"}).
			AddRow(status, available))
}

func TestCreateConfirmed(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()

	mock.ExpectBegin()
	expectScheduleLock(mock, booking.ScheduleID, entity.ScheduleStatusScheduled, 5)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(booking.ScheduleID, booking.SeatNumber).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(
			booking.ID, booking.BookingUUID, booking.ScheduleID, booking.UserID,
			booking.SeatNumber, booking.PassengerName, booking.PassengerPhone,
			booking.PassengerEmail, booking.Status, booking.AmountPaid,
			booking.PaymentStatus, booking.CancellationReason, booking.BookedAt,
			booking.CreatedAt, booking.UpdatedAt,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(`UPDATE schedules SET available_seats = available_seats - 1`).
		WithArgs(booking.ScheduleID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := repo.CreateConfirmed(context.Background(), booking)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmedSeatOccupied(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()

	mock.ExpectBegin()
	expectScheduleLock(mock, booking.ScheduleID, entity.ScheduleStatusScheduled, 5)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(booking.ScheduleID, booking.SeatNumber).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.CreateConfirmed(context.Background(), booking)
	assert.ErrorIs(t, err, entity.ErrSeatAlreadyBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmedUniqueIndexRace(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()

	mock.ExpectBegin()
	expectScheduleLock(mock, booking.ScheduleID, entity.ScheduleStatusScheduled, 5)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings`).
		WithArgs(booking.ScheduleID, booking.SeatNumber).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO bookings`).
		WithArgs(
			booking.ID, booking.BookingUUID, booking.ScheduleID, booking.UserID,
			booking.SeatNumber, booking.PassengerName, booking.PassengerPhone,
			booking.PassengerEmail, booking.Status, booking.AmountPaid,
			booking.PaymentStatus, booking.CancellationReason, booking.BookedAt,
			booking.CreatedAt, booking.UpdatedAt,
		).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "uniq_confirmed_seat"})
	mock.ExpectRollback()

	err := repo.CreateConfirmed(context.Background(), booking)
	assert.ErrorIs(t, err, entity.ErrSeatAlreadyBooked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmedScheduleFull(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()

	mock.ExpectBegin()
	expectScheduleLock(mock, booking.ScheduleID, entity.ScheduleStatusScheduled, 0)
	mock.ExpectRollback()

	err := repo.CreateConfirmed(context.Background(), booking)
	assert.ErrorIs(t, err, entity.ErrScheduleFull)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmedCancelledSchedule(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()

	mock.ExpectBegin()
	expectScheduleLock(mock, booking.ScheduleID, entity.ScheduleStatusCancelled, 10)
	mock.ExpectRollback()

	err := repo.CreateConfirmed(context.Background(), booking)
	assert.ErrorIs(t, err, entity.ErrScheduleNotBookable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConfirmedScheduleMissing(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT status, available_seats FROM schedules WHERE id = \$1 FOR UPDATE`).
		WithArgs(booking.ScheduleID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := repo.CreateConfirmed(context.Background(), booking)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func bookingRow(booking *entity.Booking) *pgxmock.Rows {
	return pgxmock.NewRows([]string{
		"id", "booking_uuid", "schedule_id", "user_id", "seat_number",
		"passenger_name", "passenger_phone", "passenger_email", "booking_status",
		"amount_paid", "payment_status", "cancellation_reason", "booked_at",
		"created_at", "updated_at",
	}).AddRow(
		booking.ID, booking.BookingUUID, booking.ScheduleID, booking.UserID,
		booking.SeatNumber, booking.PassengerName, booking.PassengerPhone,
		booking.PassengerEmail, booking.Status, booking.AmountPaid,
		booking.PaymentStatus, booking.CancellationReason, booking.BookedAt,
		booking.CreatedAt, booking.UpdatedAt,
	)
}

func TestCancelByUUID(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()
	reason := "change of plans"

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE booking_uuid = \$1 FOR UPDATE`).
		WithArgs(booking.BookingUUID).
		WillReturnRows(bookingRow(booking))
	mock.ExpectExec(`UPDATE bookings SET booking_status = 'cancelled'`).
		WithArgs(booking.ID, &reason).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec(`UPDATE schedules SET available_seats = available_seats \+ 1`).
		WithArgs(booking.ScheduleID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	cancelled, err := repo.CancelByUUID(context.Background(), booking.BookingUUID, &reason)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, reason, *cancelled.CancellationReason)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelByUUIDAlreadyCancelled(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()
	booking.Status = entity.BookingStatusCancelled

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE booking_uuid = \$1 FOR UPDATE`).
		WithArgs(booking.BookingUUID).
		WillReturnRows(bookingRow(booking))
	mock.ExpectRollback()

	cancelled, err := repo.CancelByUUID(context.Background(), booking.BookingUUID, nil)
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
	assert.Nil(t, cancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelByUUIDNotFound(t *testing.T) {
	mock, repo := newBookingFixture(t)

	ref := uuid.New()
	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE booking_uuid = \$1 FOR UPDATE`).
		WithArgs(ref).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	cancelled, err := repo.CancelByUUID(context.Background(), ref, nil)
	assert.ErrorIs(t, err, entity.ErrNotFound)
	assert.Nil(t, cancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReactivateByUUIDConfirmed(t *testing.T) {
	mock, repo := newBookingFixture(t)
	booking := testBooking()

	mock.ExpectBegin()
	mock.ExpectQuery(`FROM bookings WHERE booking_uuid = \$1 FOR UPDATE`).
		WithArgs(booking.BookingUUID).
		WillReturnRows(bookingRow(booking))
	mock.ExpectRollback()

	_, err := repo.ReactivateByUUID(context.Background(), booking.BookingUUID)
	assert.ErrorIs(t, err, entity.ErrBookingNotCancelled)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByUUIDMissingReturnsNil(t *testing.T) {
	mock, repo := newBookingFixture(t)

	ref := uuid.New()
	mock.ExpectQuery(`FROM bookings WHERE booking_uuid = \$1`).
		WithArgs(ref).
		WillReturnError(pgx.ErrNoRows)

	booking, err := repo.FindByUUID(context.Background(), ref)
	require.NoError(t, err)
	assert.Nil(t, booking)
	assert.NoError(t, mock.ExpectationsWereMet())
}

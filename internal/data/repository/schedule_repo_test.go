package repository

import (
	"context"
	"testing"

	"bus-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduleFixture(t *testing.T) (pgxmock.PgxPoolIface, ScheduleRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewScheduleRepository(mock, zap.NewNop())
}

func expectBusLock(mock pgxmock.PgxPoolIface, scheduleID, busID uuid.UUID) {
	mock.ExpectQuery(`SELECT bus_id FROM schedules WHERE id = \$1 FOR UPDATE`).
		WithArgs(scheduleID).
		WillReturnRows(pgxmock.NewRows([]string{"bus_id"}).AddRow(busID))
}

// Re-submitting the bus a schedule already uses must not produce an UPDATE
// with an empty SET list.
func TestUpdatePartialSameBusIsNoOp(t *testing.T) {
	mock, repo := newScheduleFixture(t)
	scheduleID := uuid.New()
	busID := uuid.New()

	mock.ExpectBegin()
	expectBusLock(mock, scheduleID, busID)
	mock.ExpectRollback()

	err := repo.UpdatePartial(context.Background(), scheduleID, &entity.ScheduleUpdate{BusID: &busID})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePartialEmptyUpdate(t *testing.T) {
	mock, repo := newScheduleFixture(t)

	err := repo.UpdatePartial(context.Background(), uuid.New(), &entity.ScheduleUpdate{})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePartialBusChangeRecomputesCounter(t *testing.T) {
	mock, repo := newScheduleFixture(t)
	scheduleID := uuid.New()
	oldBus := uuid.New()
	newBus := uuid.New()

	mock.ExpectBegin()
	expectBusLock(mock, scheduleID, oldBus)
	mock.ExpectQuery(`SELECT total_seats FROM buses WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(newBus).
		WillReturnRows(pgxmock.NewRows([]string{"total_seats"}).AddRow(30))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE schedule_id = \$1 AND booking_status = 'confirmed'`).
		WithArgs(scheduleID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectExec(`UPDATE schedules SET bus_id = \$2, available_seats = \$3, updated_at = NOW\(\) WHERE id = \$1`).
		WithArgs(scheduleID, newBus, 18).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	err := repo.UpdatePartial(context.Background(), scheduleID, &entity.ScheduleUpdate{BusID: &newBus})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePartialBusTooSmall(t *testing.T) {
	mock, repo := newScheduleFixture(t)
	scheduleID := uuid.New()
	newBus := uuid.New()

	mock.ExpectBegin()
	expectBusLock(mock, scheduleID, uuid.New())
	mock.ExpectQuery(`SELECT total_seats FROM buses WHERE id = \$1 AND deleted_at IS NULL`).
		WithArgs(newBus).
		WillReturnRows(pgxmock.NewRows([]string{"total_seats"}).AddRow(10))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE schedule_id = \$1 AND booking_status = 'confirmed'`).
		WithArgs(scheduleID).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectRollback()

	err := repo.UpdatePartial(context.Background(), scheduleID, &entity.ScheduleUpdate{BusID: &newBus})
	require.ErrorIs(t, err, entity.ErrScheduleHasBookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

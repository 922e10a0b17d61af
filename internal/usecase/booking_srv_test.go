package usecase

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/pkg/notify"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeStore is a mutex-guarded in-memory stand-in for the database. The
// booking fakes mirror the transactional semantics of the real repository:
// seat exclusivity and the counter move together under one lock.
type fakeStore struct {
	mu        sync.Mutex
	schedules map[uuid.UUID]*entity.Schedule
	bookings  map[uuid.UUID]*entity.Booking // keyed by BookingUUID
	routes    map[uuid.UUID]*entity.Route
	buses     map[uuid.UUID]*entity.Bus
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		schedules: map[uuid.UUID]*entity.Schedule{},
		bookings:  map[uuid.UUID]*entity.Booking{},
		routes:    map[uuid.UUID]*entity.Route{},
		buses:     map[uuid.UUID]*entity.Bus{},
	}
}

type fakeBookingRepo struct{ store *fakeStore }

func (f *fakeBookingRepo) CreateConfirmed(ctx context.Context, booking *entity.Booking) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	sched, ok := f.store.schedules[booking.ScheduleID]
	if !ok {
		return entity.ErrNotFound
	}
	if sched.Status != entity.ScheduleStatusScheduled {
		return entity.ErrScheduleNotBookable
	}
	if sched.AvailableSeats <= 0 {
		return entity.ErrScheduleFull
	}
	for _, b := range f.store.bookings {
		if b.ScheduleID == booking.ScheduleID && b.SeatNumber == booking.SeatNumber &&
			b.Status == entity.BookingStatusConfirmed {
			return entity.ErrSeatAlreadyBooked
		}
	}

	clone := *booking
	f.store.bookings[booking.BookingUUID] = &clone
	sched.AvailableSeats--
	return nil
}

func (f *fakeBookingRepo) CancelByUUID(ctx context.Context, bookingUUID uuid.UUID, reason *string) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	booking, ok := f.store.bookings[bookingUUID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	switch booking.Status {
	case entity.BookingStatusCancelled:
		return nil, entity.ErrAlreadyCancelled
	case entity.BookingStatusCompleted:
		return nil, entity.ErrBookingCompleted
	}

	booking.Status = entity.BookingStatusCancelled
	booking.CancellationReason = reason
	if sched, ok := f.store.schedules[booking.ScheduleID]; ok {
		sched.AvailableSeats++
	}
	clone := *booking
	return &clone, nil
}

func (f *fakeBookingRepo) ReactivateByUUID(ctx context.Context, bookingUUID uuid.UUID) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	booking, ok := f.store.bookings[bookingUUID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	switch booking.Status {
	case entity.BookingStatusCompleted:
		return nil, entity.ErrBookingCompleted
	case entity.BookingStatusConfirmed:
		return nil, entity.ErrBookingNotCancelled
	}

	sched, ok := f.store.schedules[booking.ScheduleID]
	if !ok {
		return nil, entity.ErrNotFound
	}
	if sched.Status != entity.ScheduleStatusScheduled {
		return nil, entity.ErrScheduleNotBookable
	}
	if sched.AvailableSeats <= 0 {
		return nil, entity.ErrScheduleFull
	}
	for _, b := range f.store.bookings {
		if b.ScheduleID == booking.ScheduleID && b.SeatNumber == booking.SeatNumber &&
			b.Status == entity.BookingStatusConfirmed {
			return nil, entity.ErrSeatAlreadyBooked
		}
	}

	booking.Status = entity.BookingStatusConfirmed
	booking.CancellationReason = nil
	sched.AvailableSeats--
	clone := *booking
	return &clone, nil
}

func (f *fakeBookingRepo) DeleteByID(ctx context.Context, id uuid.UUID) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()

	for key, b := range f.store.bookings {
		if b.ID == id {
			if b.Status == entity.BookingStatusConfirmed {
				if sched, ok := f.store.schedules[b.ScheduleID]; ok {
					sched.AvailableSeats++
				}
			}
			delete(f.store.bookings, key)
			return nil
		}
	}
	return entity.ErrNotFound
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	for _, b := range f.store.bookings {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUUID(ctx context.Context, bookingUUID uuid.UUID) (*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if b, ok := f.store.bookings[bookingUUID]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeBookingRepo) FindByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.store.bookings {
		if b.UserID != nil && *b.UserID == userID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	bookings, _ := f.FindByUserID(ctx, userID, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindAll(ctx context.Context, status *entity.BookingStatus, limit, offset int) ([]*entity.Booking, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []*entity.Booking
	for _, b := range f.store.bookings {
		if status == nil || b.Status == *status {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountAll(ctx context.Context, status *entity.BookingStatus) (int64, error) {
	bookings, _ := f.FindAll(ctx, status, 0, 0)
	return int64(len(bookings)), nil
}

func (f *fakeBookingRepo) FindBookedSeatNumbers(ctx context.Context, scheduleID uuid.UUID) ([]string, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	var out []string
	for _, b := range f.store.bookings {
		if b.ScheduleID == scheduleID && b.Status == entity.BookingStatusConfirmed {
			out = append(out, b.SeatNumber)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) CountConfirmedBySchedule(ctx context.Context, scheduleID uuid.UUID) (int, error) {
	seats, _ := f.FindBookedSeatNumbers(ctx, scheduleID)
	return len(seats), nil
}

func (f *fakeBookingRepo) CompleteDeparted(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeBookingRepo) SalesByRoute(ctx context.Context, from, to time.Time) ([]*entity.RouteSales, error) {
	return nil, nil
}

type fakeScheduleRepo struct{ store *fakeStore }

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *entity.Schedule) error {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	clone := *schedule
	f.store.schedules[schedule.ID] = &clone
	return nil
}

func (f *fakeScheduleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Schedule, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if s, ok := f.store.schedules[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeScheduleRepo) FindByRouteID(ctx context.Context, routeID uuid.UUID) ([]*entity.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) FindUpcoming(ctx context.Context, from time.Time, limit, offset int) ([]*entity.Schedule, error) {
	return nil, nil
}

func (f *fakeScheduleRepo) CountUpcoming(ctx context.Context, from time.Time) (int64, error) {
	return 0, nil
}

func (f *fakeScheduleRepo) UpdatePartial(ctx context.Context, id uuid.UUID, upd *entity.ScheduleUpdate) error {
	return nil
}

func (f *fakeScheduleRepo) Cancel(ctx context.Context, id uuid.UUID) (int64, error) {
	return 0, nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeScheduleRepo) Recount(ctx context.Context, id uuid.UUID) (int, int, error) {
	return 0, 0, nil
}

func (f *fakeScheduleRepo) ReconcileAll(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeScheduleRepo) CompleteDeparted(ctx context.Context, before time.Time) (int64, error) {
	return 0, nil
}

type fakeRouteRepo struct{ store *fakeStore }

func (f *fakeRouteRepo) Create(ctx context.Context, route *entity.Route) error { return nil }

func (f *fakeRouteRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if r, ok := f.store.routes[id]; ok {
		clone := *r
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeRouteRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Route, error) {
	return nil, nil
}

func (f *fakeRouteRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeRouteRepo) Search(ctx context.Context, origin, destination string) ([]*entity.Route, error) {
	return nil, nil
}

func (f *fakeRouteRepo) Update(ctx context.Context, route *entity.Route) error { return nil }

func (f *fakeRouteRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeBusRepo struct{ store *fakeStore }

func (f *fakeBusRepo) Create(ctx context.Context, bus *entity.Bus) error { return nil }

func (f *fakeBusRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Bus, error) {
	f.store.mu.Lock()
	defer f.store.mu.Unlock()
	if b, ok := f.store.buses[id]; ok {
		clone := *b
		return &clone, nil
	}
	return nil, nil
}

func (f *fakeBusRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Bus, error) {
	return nil, nil
}

func (f *fakeBusRepo) Count(ctx context.Context) (int64, error) { return 0, nil }

func (f *fakeBusRepo) Update(ctx context.Context, bus *entity.Bus) error { return nil }

func (f *fakeBusRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type fakeNotifier struct {
	mu       sync.Mutex
	messages []notify.Message
}

func (f *fakeNotifier) Enqueue(msg notify.Message) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
}

func (f *fakeNotifier) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.messages)
}

// ==================== FIXTURE ====================

type fixture struct {
	svc      BookingService
	store    *fakeStore
	notifier *fakeNotifier
	schedule *entity.Schedule
	route    *entity.Route
	bus      *entity.Bus
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := newFakeStore()
	now := time.Now()

	bus := &entity.Bus{
		Base:        entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Name:        "Night Express 1",
		PlateNumber: "B 7777 XY",
		TotalSeats:  40,
		LayoutType:  entity.BusLayout2x2,
		IsActive:    true,
	}
	route := &entity.Route{
		Base:            entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		Origin:          "Jakarta",
		Destination:     "Surabaya",
		DistanceKM:      780,
		DurationMinutes: 720,
		BasePrice:       250000,
		IsActive:        true,
	}
	schedule := &entity.Schedule{
		Base:           entity.Base{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		RouteID:        route.ID,
		BusID:          bus.ID,
		TravelDate:     now.AddDate(0, 0, 7),
		DepartureTime:  "20:00",
		ArrivalTime:    "08:00",
		AvailableSeats: 40,
		Status:         entity.ScheduleStatusScheduled,
	}

	store.buses[bus.ID] = bus
	store.routes[route.ID] = route
	store.schedules[schedule.ID] = schedule

	repo := &repository.Repository{
		Route:    &fakeRouteRepo{store},
		Bus:      &fakeBusRepo{store},
		Schedule: &fakeScheduleRepo{store},
		Booking:  &fakeBookingRepo{store},
	}
	notifier := &fakeNotifier{}

	return &fixture{
		svc:      NewBookingService(repo, notifier, zap.NewNop()),
		store:    store,
		notifier: notifier,
		schedule: schedule,
		route:    route,
		bus:      bus,
	}
}

func createReq(f *fixture, seat string) *request.CreateBookingRequest {
	email := "rina@example.com"
	return &request.CreateBookingRequest{
		ScheduleID:     f.schedule.ID.String(),
		SeatNumber:     seat,
		PassengerName:  "Rina Pratiwi",
		PassengerPhone: "081234567890",
		PassengerEmail: &email,
	}
}

// ==================== TESTS ====================

func TestCreateBookingSuccess(t *testing.T) {
	f := newFixture(t)

	resp, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "A1"))
	require.NoError(t, err)

	assert.Equal(t, "A1", resp.SeatNumber)
	assert.Equal(t, entity.BookingStatusConfirmed, resp.Status)
	assert.Equal(t, f.route.BasePrice, resp.AmountPaid)
	assert.Nil(t, resp.UserID)
	assert.NotEmpty(t, resp.BookingUUID)

	assert.Equal(t, 39, f.schedule.AvailableSeats)
	assert.Equal(t, 1, f.notifier.count())
}

func TestCreateBookingAttachesUser(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	resp, err := f.svc.CreateBooking(context.Background(), &userID, createReq(f, "B2"))
	require.NoError(t, err)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, userID.String(), *resp.UserID)
}

func TestCreateBookingInvalidSeat(t *testing.T) {
	f := newFixture(t)

	// K1 is off the end of a 40-seat 2x2 grid (rows A..J).
	_, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "K1"))
	assert.ErrorIs(t, err, entity.ErrInvalidSeat)
	assert.Equal(t, 40, f.schedule.AvailableSeats)
}

func TestCreateBookingScheduleNotFound(t *testing.T) {
	f := newFixture(t)

	req := createReq(f, "A1")
	req.ScheduleID = uuid.New().String()

	_, err := f.svc.CreateBooking(context.Background(), nil, req)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestCreateBookingCancelledSchedule(t *testing.T) {
	f := newFixture(t)
	f.schedule.Status = entity.ScheduleStatusCancelled

	_, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "A1"))
	assert.ErrorIs(t, err, entity.ErrScheduleNotBookable)
}

func TestCreateBookingDepartedSchedule(t *testing.T) {
	f := newFixture(t)
	f.schedule.TravelDate = time.Now().AddDate(0, 0, -2)

	_, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "A1"))
	assert.ErrorIs(t, err, entity.ErrScheduleNotBookable)
}

func TestCreateBookingSeatTaken(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "A1"))
	require.NoError(t, err)

	_, err = f.svc.CreateBooking(context.Background(), nil, createReq(f, "A1"))
	assert.ErrorIs(t, err, entity.ErrSeatAlreadyBooked)
	assert.Equal(t, 39, f.schedule.AvailableSeats)
}

func TestCreateBookingFullSchedule(t *testing.T) {
	f := newFixture(t)
	f.schedule.AvailableSeats = 0

	_, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "A1"))
	assert.ErrorIs(t, err, entity.ErrScheduleFull)
}

func TestCreateBookingConcurrentSameSeat(t *testing.T) {
	f := newFixture(t)

	const attempts = 20
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "C3"))
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	var won, lost int
	for err := range errs {
		if err == nil {
			won++
		} else {
			require.ErrorIs(t, err, entity.ErrSeatAlreadyBooked)
			lost++
		}
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, attempts-1, lost)
	assert.Equal(t, 39, f.schedule.AvailableSeats)
}

func TestCreateBookingConcurrentDistinctSeats(t *testing.T) {
	f := newFixture(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			seat := fmt.Sprintf("%c1", 'A'+n)
			_, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, seat))
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 30, f.schedule.AvailableSeats)
}

func TestCancelBookingOwnerAndStranger(t *testing.T) {
	f := newFixture(t)
	owner := uuid.New()
	stranger := uuid.New()

	created, err := f.svc.CreateBooking(context.Background(), &owner, createReq(f, "D4"))
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), created.BookingUUID, &stranger, false, &request.CancelBookingRequest{})
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	reason := "change of plans"
	cancelled, err := f.svc.CancelBooking(context.Background(), created.BookingUUID, &owner, false,
		&request.CancelBookingRequest{Reason: &reason})
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, reason, *cancelled.CancellationReason)
	assert.Equal(t, 40, f.schedule.AvailableSeats)
}

func TestCancelBookingTwice(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "E1"))
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), created.BookingUUID, nil, true, &request.CancelBookingRequest{})
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), created.BookingUUID, nil, true, &request.CancelBookingRequest{})
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
	assert.Equal(t, 40, f.schedule.AvailableSeats)
}

func TestCancelReactivateRoundTrip(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "F2"))
	require.NoError(t, err)
	assert.Equal(t, 39, f.schedule.AvailableSeats)

	_, err = f.svc.CancelBooking(context.Background(), created.BookingUUID, nil, true, &request.CancelBookingRequest{})
	require.NoError(t, err)
	assert.Equal(t, 40, f.schedule.AvailableSeats)

	reactivated, err := f.svc.ReactivateBooking(context.Background(), created.BookingUUID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusConfirmed, reactivated.Status)
	assert.Nil(t, reactivated.CancellationReason)
	assert.Equal(t, 39, f.schedule.AvailableSeats)
}

func TestReactivateBlockedBySeatSteal(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "G3"))
	require.NoError(t, err)

	_, err = f.svc.CancelBooking(context.Background(), first.BookingUUID, nil, true, &request.CancelBookingRequest{})
	require.NoError(t, err)

	// Someone else takes the freed seat before the reactivation attempt.
	_, err = f.svc.CreateBooking(context.Background(), nil, createReq(f, "G3"))
	require.NoError(t, err)

	_, err = f.svc.ReactivateBooking(context.Background(), first.BookingUUID)
	assert.ErrorIs(t, err, entity.ErrSeatAlreadyBooked)
}

func TestReactivateConfirmedBooking(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "H1"))
	require.NoError(t, err)

	_, err = f.svc.ReactivateBooking(context.Background(), created.BookingUUID)
	assert.ErrorIs(t, err, entity.ErrBookingNotCancelled)
}

func TestBulkCancelPartialFailure(t *testing.T) {
	f := newFixture(t)

	first, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "A1"))
	require.NoError(t, err)
	second, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "A2"))
	require.NoError(t, err)

	// Pre-cancel the second one so the bulk run skips it.
	_, err = f.svc.CancelBooking(context.Background(), second.BookingUUID, nil, true, &request.CancelBookingRequest{})
	require.NoError(t, err)

	unknown := uuid.New().String()
	result, err := f.svc.BulkCancel(context.Background(), &request.BulkBookingRequest{
		BookingIDs: []string{first.BookingUUID, second.BookingUUID, unknown},
	})
	require.NoError(t, err)

	// Already-cancelled is a skip; the unknown reference is an error.
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Errored)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, 40, f.schedule.AvailableSeats)
}

func TestBulkCancelUnknownBookingErrored(t *testing.T) {
	f := newFixture(t)

	result, err := f.svc.BulkCancel(context.Background(), &request.BulkBookingRequest{
		BookingIDs: []string{uuid.New().String()},
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Succeeded)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 1, result.Errored)
	require.Len(t, result.Errors, 1)
}

func TestBulkReactivate(t *testing.T) {
	f := newFixture(t)

	var refs []string
	for _, seat := range []string{"A1", "A2", "A3"} {
		created, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, seat))
		require.NoError(t, err)
		refs = append(refs, created.BookingUUID)
	}

	_, err := f.svc.BulkCancel(context.Background(), &request.BulkBookingRequest{BookingIDs: refs})
	require.NoError(t, err)
	assert.Equal(t, 40, f.schedule.AvailableSeats)

	result, err := f.svc.BulkReactivate(context.Background(), &request.BulkBookingRequest{BookingIDs: refs})
	require.NoError(t, err)
	assert.Equal(t, 3, result.Succeeded)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 0, result.Errored)
	assert.Equal(t, 37, f.schedule.AvailableSeats)
}

func TestBulkDeleteRestoresCounter(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "B1"))
	require.NoError(t, err)
	assert.Equal(t, 39, f.schedule.AvailableSeats)

	result, err := f.svc.BulkDelete(context.Background(), &request.BulkBookingRequest{
		BookingIDs: []string{created.BookingUUID},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Succeeded)
	assert.Equal(t, 40, f.schedule.AvailableSeats)

	found, err := f.svc.GetBookingByReference(context.Background(), created.BookingUUID)
	assert.Error(t, err)
	assert.Nil(t, found)
}

func TestGetUserBookings(t *testing.T) {
	f := newFixture(t)
	userID := uuid.New()

	for _, seat := range []string{"C1", "C2"} {
		_, err := f.svc.CreateBooking(context.Background(), &userID, createReq(f, seat))
		require.NoError(t, err)
	}
	_, err := f.svc.CreateBooking(context.Background(), nil, createReq(f, "C3"))
	require.NoError(t, err)

	page, err := f.svc.GetUserBookings(context.Background(), userID, &request.PaginatedRequest{Page: 1, PerPage: 10})
	require.NoError(t, err)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(2), page.Pagination.Total)
}

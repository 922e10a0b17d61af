package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/request"
	"bus-booking/internal/dto/response"
	"bus-booking/pkg/notify"
	"bus-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	// Public endpoints; userID is nil for guest bookings.
	CreateBooking(ctx context.Context, userID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	GetBookingByReference(ctx context.Context, reference string) (*response.BookingResponse, error)
	GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	CancelBooking(ctx context.Context, reference string, actorID *uuid.UUID, isAdmin bool, req *request.CancelBookingRequest) (*response.BookingResponse, error)

	// Admin endpoints
	GetAllBookings(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	ReactivateBooking(ctx context.Context, reference string) (*response.BookingResponse, error)
	DeleteBooking(ctx context.Context, reference string) error
	BulkCancel(ctx context.Context, req *request.BulkBookingRequest) (*response.BulkResultResponse, error)
	BulkReactivate(ctx context.Context, req *request.BulkBookingRequest) (*response.BulkResultResponse, error)
	BulkDelete(ctx context.Context, req *request.BulkBookingRequest) (*response.BulkResultResponse, error)
}

type bookingService struct {
	repo     *repository.Repository
	notifier notify.Notifier
	log      *zap.Logger
}

func NewBookingService(repo *repository.Repository, notifier notify.Notifier, log *zap.Logger) BookingService {
	return &bookingService{
		repo:     repo,
		notifier: notifier,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID *uuid.UUID, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return nil, fmt.Errorf("invalid schedule ID format %s: %w", req.ScheduleID, entity.ErrInvalidInput)
	}

	schedule, err := s.repo.Schedule.FindByID(ctx, scheduleID)
	if err != nil {
		return nil, err
	}
	if schedule == nil {
		return nil, fmt.Errorf("schedule %s: %w", req.ScheduleID, entity.ErrNotFound)
	}

	if schedule.Status != entity.ScheduleStatusScheduled {
		return nil, fmt.Errorf("schedule %s has status %s: %w",
			req.ScheduleID, schedule.Status, entity.ErrScheduleNotBookable)
	}

	// Bookable up to the end of the travel date; departure time is not cut off.
	today := utils.StartOfDay(time.Now())
	if schedule.TravelDate.Before(today) {
		return nil, fmt.Errorf("schedule %s departed on %s: %w",
			req.ScheduleID, schedule.TravelDate.Format("2006-01-02"), entity.ErrScheduleNotBookable)
	}

	bus, err := s.repo.Bus.FindByID(ctx, schedule.BusID)
	if err != nil {
		return nil, err
	}
	if bus == nil {
		return nil, fmt.Errorf("bus for schedule %s: %w", req.ScheduleID, entity.ErrNotFound)
	}

	if !entity.LayoutContains(bus.TotalSeats, bus.LayoutType, req.SeatNumber) {
		return nil, fmt.Errorf("seat %s does not exist on layout %s with %d seats: %w",
			req.SeatNumber, bus.LayoutType, bus.TotalSeats, entity.ErrInvalidSeat)
	}

	route, err := s.repo.Route.FindByID(ctx, schedule.RouteID)
	if err != nil {
		return nil, err
	}
	if route == nil {
		return nil, fmt.Errorf("route for schedule %s: %w", req.ScheduleID, entity.ErrNotFound)
	}

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		BookingUUID:    uuid.New(),
		ScheduleID:     scheduleID,
		UserID:         userID,
		SeatNumber:     req.SeatNumber,
		PassengerName:  req.PassengerName,
		PassengerPhone: req.PassengerPhone,
		PassengerEmail: req.PassengerEmail,
		Status:         entity.BookingStatusConfirmed,
		AmountPaid:     route.BasePrice,
		PaymentStatus:  entity.PaymentStatusPaid,
		BookedAt:       now,
	}

	if err := s.repo.Booking.CreateConfirmed(ctx, booking); err != nil {
		return nil, err
	}

	s.log.Info("Booking created",
		zap.String("booking_uuid", booking.BookingUUID.String()),
		zap.String("schedule_id", scheduleID.String()),
		zap.String("seat_number", booking.SeatNumber),
	)

	if booking.PassengerEmail != nil {
		s.notifier.Enqueue(notify.Message{
			To:      *booking.PassengerEmail,
			Subject: fmt.Sprintf("Booking confirmed: %s to %s", route.Origin, route.Destination),
			Body: fmt.Sprintf(
				"Hi %s,\n\nYour seat %s on %s (%s, departing %s) is confirmed.\nBooking reference: %s\nAmount paid: %.2f\n",
				booking.PassengerName, booking.SeatNumber,
				schedule.TravelDate.Format("2006-01-02"), route.Origin+" - "+route.Destination,
				schedule.DepartureTime, booking.BookingUUID.String(), booking.AmountPaid,
			),
		})
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetBookingByReference(ctx context.Context, reference string) (*response.BookingResponse, error) {
	bookingUUID, err := uuid.Parse(reference)
	if err != nil {
		return nil, fmt.Errorf("invalid booking reference %s: %w", reference, entity.ErrInvalidInput)
	}

	booking, err := s.repo.Booking.FindByUUID(ctx, bookingUUID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", reference, entity.ErrNotFound)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) GetUserBookings(ctx context.Context, userID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	bookings, err := s.repo.Booking.FindByUserID(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(
		response.BookingsToResponse(bookings), req.Page, req.Limit(), total), nil
}

func (s *bookingService) GetAllBookings(ctx context.Context, status string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	var filter *entity.BookingStatus
	if status != "" {
		bs := entity.BookingStatus(status)
		switch bs {
		case entity.BookingStatusConfirmed, entity.BookingStatusCancelled, entity.BookingStatusCompleted:
			filter = &bs
		default:
			return nil, fmt.Errorf("unknown booking status %q: %w", status, entity.ErrInvalidInput)
		}
	}

	bookings, err := s.repo.Booking.FindAll(ctx, filter, req.Limit(), req.Offset())
	if err != nil {
		return nil, err
	}

	total, err := s.repo.Booking.CountAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	return response.NewPaginatedResponse(
		response.BookingsToResponse(bookings), req.Page, req.Limit(), total), nil
}

func (s *bookingService) CancelBooking(ctx context.Context, reference string, actorID *uuid.UUID, isAdmin bool, req *request.CancelBookingRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	bookingUUID, err := uuid.Parse(reference)
	if err != nil {
		return nil, fmt.Errorf("invalid booking reference %s: %w", reference, entity.ErrInvalidInput)
	}

	booking, err := s.repo.Booking.FindByUUID(ctx, bookingUUID)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", reference, entity.ErrNotFound)
	}

	// Owners may cancel their own bookings; admins may cancel any. A guest
	// booking is cancellable by whoever holds the unguessable reference.
	if !isAdmin && booking.UserID != nil {
		if actorID == nil || *actorID != *booking.UserID {
			return nil, fmt.Errorf("booking %s belongs to another user: %w", reference, entity.ErrUnauthorized)
		}
	}

	cancelled, err := s.repo.Booking.CancelByUUID(ctx, bookingUUID, req.Reason)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking cancelled",
		zap.String("booking_uuid", reference),
		zap.Bool("by_admin", isAdmin),
	)

	if cancelled.PassengerEmail != nil {
		s.notifier.Enqueue(notify.Message{
			To:      *cancelled.PassengerEmail,
			Subject: "Booking cancelled",
			Body: fmt.Sprintf("Hi %s,\n\nYour booking %s for seat %s has been cancelled.\n",
				cancelled.PassengerName, cancelled.BookingUUID.String(), cancelled.SeatNumber),
		})
	}

	resp := response.BookingToResponse(cancelled)
	return &resp, nil
}

func (s *bookingService) ReactivateBooking(ctx context.Context, reference string) (*response.BookingResponse, error) {
	bookingUUID, err := uuid.Parse(reference)
	if err != nil {
		return nil, fmt.Errorf("invalid booking reference %s: %w", reference, entity.ErrInvalidInput)
	}

	booking, err := s.repo.Booking.ReactivateByUUID(ctx, bookingUUID)
	if err != nil {
		return nil, err
	}

	s.log.Info("Booking reactivated", zap.String("booking_uuid", reference))

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, reference string) error {
	bookingUUID, err := uuid.Parse(reference)
	if err != nil {
		return fmt.Errorf("invalid booking reference %s: %w", reference, entity.ErrInvalidInput)
	}

	booking, err := s.repo.Booking.FindByUUID(ctx, bookingUUID)
	if err != nil {
		return err
	}
	if booking == nil {
		return fmt.Errorf("booking %s: %w", reference, entity.ErrNotFound)
	}

	if err := s.repo.Booking.DeleteByID(ctx, booking.ID); err != nil {
		return err
	}

	s.log.Info("Booking deleted", zap.String("booking_uuid", reference))
	return nil
}

// bulkApply runs op per booking ID, isolating failures so one bad ID never
// aborts the batch. Items whose state refuses the operation count as skipped;
// unknown references and unexpected failures count as errored.
func (s *bookingService) bulkApply(ctx context.Context, ids []string, op func(context.Context, uuid.UUID) error) *response.BulkResultResponse {
	result := &response.BulkResultResponse{Errors: []response.BulkItemError{}}

	for _, idStr := range ids {
		id, err := uuid.Parse(idStr)
		if err != nil {
			result.Errored++
			result.Errors = append(result.Errors, response.BulkItemError{
				BookingID: idStr,
				Reason:    "invalid booking reference",
			})
			continue
		}

		if err := op(ctx, id); err != nil {
			if bulkSkippable(err) {
				result.Skipped++
			} else {
				result.Errored++
			}
			result.Errors = append(result.Errors, response.BulkItemError{
				BookingID: idStr,
				Reason:    bulkReason(err),
			})
			continue
		}
		result.Succeeded++
	}

	return result
}

// bulkSkippable reports whether the booking exists but is in a state the
// operation refuses.
func bulkSkippable(err error) bool {
	for _, sentinel := range []error{
		entity.ErrAlreadyCancelled,
		entity.ErrBookingNotCancelled,
		entity.ErrBookingCompleted,
		entity.ErrSeatAlreadyBooked,
		entity.ErrScheduleFull,
		entity.ErrScheduleNotBookable,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// bulkReason strips wrapping noise down to the domain error message.
func bulkReason(err error) string {
	for _, sentinel := range []error{
		entity.ErrNotFound,
		entity.ErrAlreadyCancelled,
		entity.ErrBookingNotCancelled,
		entity.ErrBookingCompleted,
		entity.ErrSeatAlreadyBooked,
		entity.ErrScheduleFull,
		entity.ErrScheduleNotBookable,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func (s *bookingService) BulkCancel(ctx context.Context, req *request.BulkBookingRequest) (*response.BulkResultResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	result := s.bulkApply(ctx, req.BookingIDs, func(ctx context.Context, id uuid.UUID) error {
		_, err := s.repo.Booking.CancelByUUID(ctx, id, req.Reason)
		return err
	})

	s.log.Info("Bulk cancel finished",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("skipped", result.Skipped),
		zap.Int("errored", result.Errored),
	)
	return result, nil
}

func (s *bookingService) BulkReactivate(ctx context.Context, req *request.BulkBookingRequest) (*response.BulkResultResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	result := s.bulkApply(ctx, req.BookingIDs, func(ctx context.Context, id uuid.UUID) error {
		_, err := s.repo.Booking.ReactivateByUUID(ctx, id)
		return err
	})

	s.log.Info("Bulk reactivate finished",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("skipped", result.Skipped),
		zap.Int("errored", result.Errored),
	)
	return result, nil
}

func (s *bookingService) BulkDelete(ctx context.Context, req *request.BulkBookingRequest) (*response.BulkResultResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s: %w", utils.FormatValidationErrors(errs), entity.ErrInvalidInput)
	}

	result := s.bulkApply(ctx, req.BookingIDs, func(ctx context.Context, id uuid.UUID) error {
		booking, err := s.repo.Booking.FindByUUID(ctx, id)
		if err != nil {
			return err
		}
		if booking == nil {
			return entity.ErrNotFound
		}
		return s.repo.Booking.DeleteByID(ctx, booking.ID)
	})

	s.log.Info("Bulk delete finished",
		zap.Int("succeeded", result.Succeeded),
		zap.Int("skipped", result.Skipped),
		zap.Int("errored", result.Errored),
	)
	return result, nil
}

package adaptor

import (
	"context"
	"errors"
	"net/http"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

// writeServiceError maps domain errors onto HTTP status codes. Conflicts get
// a machine-readable kind so clients can react without parsing messages.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, op string) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		utils.ResponseTimeout(w, "Request timed out")

	case errors.Is(err, entity.ErrNotFound):
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, entity.ErrSeatAlreadyBooked):
		utils.ResponseConflict(w, "seat_taken", err.Error())
	case errors.Is(err, entity.ErrScheduleFull):
		utils.ResponseConflict(w, "schedule_full", err.Error())
	case errors.Is(err, entity.ErrAlreadyCancelled):
		utils.ResponseConflict(w, "already_cancelled", err.Error())
	case errors.Is(err, entity.ErrBookingNotCancelled):
		utils.ResponseConflict(w, "not_cancelled", err.Error())
	case errors.Is(err, entity.ErrBookingCompleted):
		utils.ResponseConflict(w, "completed", err.Error())
	case errors.Is(err, entity.ErrScheduleHasBookings):
		utils.ResponseConflict(w, "has_bookings", err.Error())

	case errors.Is(err, entity.ErrScheduleNotBookable),
		errors.Is(err, entity.ErrInvalidSeat),
		errors.Is(err, entity.ErrInvalidInput):
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, entity.ErrUnauthorized):
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Unhandled service error", zap.Error(err), zap.String("op", op))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bus-booking/internal/data/entity"
	"bus-booking/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		kind string
	}{
		{"not found", fmt.Errorf("booking abc: %w", entity.ErrNotFound), http.StatusNotFound, ""},
		{"seat taken", fmt.Errorf("seat A1: %w", entity.ErrSeatAlreadyBooked), http.StatusConflict, "seat_taken"},
		{"schedule full", fmt.Errorf("schedule xyz: %w", entity.ErrScheduleFull), http.StatusConflict, "schedule_full"},
		{"already cancelled", fmt.Errorf("booking abc: %w", entity.ErrAlreadyCancelled), http.StatusConflict, "already_cancelled"},
		{"not cancelled", fmt.Errorf("booking abc: %w", entity.ErrBookingNotCancelled), http.StatusConflict, "not_cancelled"},
		{"completed", fmt.Errorf("booking abc: %w", entity.ErrBookingCompleted), http.StatusConflict, "completed"},
		{"has bookings", fmt.Errorf("schedule xyz: %w", entity.ErrScheduleHasBookings), http.StatusConflict, "has_bookings"},
		{"not bookable", fmt.Errorf("schedule xyz status cancelled: %w", entity.ErrScheduleNotBookable), http.StatusBadRequest, ""},
		{"invalid seat", fmt.Errorf("seat Z9: %w", entity.ErrInvalidSeat), http.StatusBadRequest, ""},
		{"unauthorized", fmt.Errorf("booking abc: %w", entity.ErrUnauthorized), http.StatusForbidden, ""},
		{"invalid input", fmt.Errorf("invalid route ID format abc: %w", entity.ErrInvalidInput), http.StatusBadRequest, ""},
		{"validation", fmt.Errorf("validation failed: seat_number is required: %w", entity.ErrInvalidInput), http.StatusBadRequest, ""},
		{"timeout", fmt.Errorf("create booking: %w", context.DeadlineExceeded), http.StatusGatewayTimeout, "timeout"},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError, ""},
		{"internal mentioning invalid", errors.New("pgx: invalid connection state"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, zap.NewNop(), tt.err, tt.name)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body utils.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Status)
			assert.Equal(t, tt.kind, body.Kind)
		})
	}
}

func TestWriteServiceErrorHidesInternalDetail(t *testing.T) {
	rec := httptest.NewRecorder()
	writeServiceError(rec, zap.NewNop(), errors.New("pq: relation bookings does not exist"), "list")

	var body utils.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal server error", body.Message)
	assert.NotContains(t, body.Message, "relation")
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"bus-booking/internal/dto/request"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/book (optional auth; guests book too)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	var userID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		userID = &id
	}

	booking, err := h.service.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// GetBooking handles GET /api/bookings/{reference} (public; reference is unguessable)
func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	booking, err := h.service.GetBookingByReference(r.Context(), reference)
	if err != nil {
		writeServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// GetUserBookings handles GET /api/user/bookings (protected)
func (h *BookingHandler) GetUserBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetUserBookings(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, h.log, err, "get user bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelBooking handles POST /api/bookings/{reference}/cancel (optional auth)
func (h *BookingHandler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	var req request.CancelBookingRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.ResponseBadRequest(w, "Invalid request body", nil)
			return
		}
	}

	var actorID *uuid.UUID
	if id, ok := utils.GetUserIDFromContext(r.Context()); ok {
		actorID = &id
	}

	booking, err := h.service.CancelBooking(r.Context(), reference, actorID, utils.IsAdmin(r.Context()), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "cancel booking")
		return
	}

	utils.ResponseSuccess(w, "Booking cancelled", booking)
}

// ==================== ADMIN ====================

// GetAllBookings handles GET /api/admin/bookings?status= (admin)
func (h *BookingHandler) GetAllBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.GetAllBookings(r.Context(), query.Get("status"), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get all bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// ReactivateBooking handles POST /api/admin/bookings/{reference}/reactivate (admin)
func (h *BookingHandler) ReactivateBooking(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	booking, err := h.service.ReactivateBooking(r.Context(), reference)
	if err != nil {
		writeServiceError(w, h.log, err, "reactivate booking")
		return
	}

	utils.ResponseSuccess(w, "Booking reactivated", booking)
}

// DeleteBooking handles DELETE /api/admin/bookings/{reference} (admin)
func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	reference := chi.URLParam(r, "reference")

	if err := h.service.DeleteBooking(r.Context(), reference); err != nil {
		writeServiceError(w, h.log, err, "delete booking")
		return
	}

	utils.ResponseSuccess(w, "Booking deleted", nil)
}

func (h *BookingHandler) decodeBulk(w http.ResponseWriter, r *http.Request) (*request.BulkBookingRequest, bool) {
	var req request.BulkBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return nil, false
	}
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return nil, false
	}
	return &req, true
}

// BulkCancel handles POST /api/admin/bookings/bulk-cancel (admin)
func (h *BookingHandler) BulkCancel(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBulk(w, r)
	if !ok {
		return
	}

	result, err := h.service.BulkCancel(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "bulk cancel")
		return
	}

	utils.ResponseSuccess(w, "Bulk cancel finished", result)
}

// BulkReactivate handles POST /api/admin/bookings/bulk-reactivate (admin)
func (h *BookingHandler) BulkReactivate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBulk(w, r)
	if !ok {
		return
	}

	result, err := h.service.BulkReactivate(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "bulk reactivate")
		return
	}

	utils.ResponseSuccess(w, "Bulk reactivate finished", result)
}

// BulkDelete handles POST /api/admin/bookings/bulk-delete (admin)
func (h *BookingHandler) BulkDelete(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBulk(w, r)
	if !ok {
		return
	}

	result, err := h.service.BulkDelete(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "bulk delete")
		return
	}

	utils.ResponseSuccess(w, "Bulk delete finished", result)
}

package adaptor

import (
	"encoding/json"
	"net/http"

	"bus-booking/internal/dto/request"
	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// GetSchedules handles GET /api/schedules?route_id= (public)
func (h *ScheduleHandler) GetSchedules(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if routeID := query.Get("route_id"); routeID != "" {
		schedules, err := h.service.GetSchedulesByRoute(r.Context(), routeID)
		if err != nil {
			writeServiceError(w, h.log, err, "get schedules by route")
			return
		}
		utils.ResponseSuccess(w, "success", schedules)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	schedules, err := h.service.GetUpcomingSchedules(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get schedules")
		return
	}

	utils.ResponseSuccess(w, "success", schedules)
}

// GetSchedule handles GET /api/schedules/{id} (public)
func (h *ScheduleHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	schedule, err := h.service.GetScheduleByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get schedule")
		return
	}

	utils.ResponseSuccess(w, "success", schedule)
}

// GetSeatMap handles GET /api/schedules/{id}/seats (public)
func (h *ScheduleHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	seatMap, err := h.service.GetSeatMap(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}

// ==================== ADMIN ====================

// CreateSchedule handles POST /api/admin/schedules (admin)
func (h *ScheduleHandler) CreateSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	schedule, err := h.service.CreateSchedule(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create schedule")
		return
	}

	utils.ResponseCreated(w, "success", schedule)
}

// UpdateSchedule handles PATCH /api/admin/schedules/{id} (admin)
func (h *ScheduleHandler) UpdateSchedule(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	schedule, err := h.service.UpdateSchedule(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule updated", schedule)
}

// CancelSchedule handles POST /api/admin/schedules/{id}/cancel (admin)
func (h *ScheduleHandler) CancelSchedule(w http.ResponseWriter, r *http.Request) {
	cancelled, err := h.service.CancelSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "cancel schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule cancelled", map[string]int64{"bookings_cancelled": cancelled})
}

// DeleteSchedule handles DELETE /api/admin/schedules/{id} (admin)
func (h *ScheduleHandler) DeleteSchedule(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteSchedule(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete schedule")
		return
	}

	utils.ResponseSuccess(w, "Schedule deleted", nil)
}

// RecountSchedule handles POST /api/admin/schedules/{id}/recount (admin)
func (h *ScheduleHandler) RecountSchedule(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.RecountSchedule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "recount schedule")
		return
	}

	utils.ResponseSuccess(w, "success", result)
}

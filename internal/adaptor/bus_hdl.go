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

type BusHandler struct {
	service usecase.BusService
	log     *zap.Logger
}

func NewBusHandler(service usecase.BusService, log *zap.Logger) *BusHandler {
	return &BusHandler{
		service: service,
		log:     log.With(zap.String("handler", "bus")),
	}
}

// GetBuses handles GET /api/admin/buses (admin)
func (h *BusHandler) GetBuses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	buses, err := h.service.GetAllBuses(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get buses")
		return
	}

	utils.ResponseSuccess(w, "success", buses)
}

// GetBus handles GET /api/admin/buses/{id} (admin)
func (h *BusHandler) GetBus(w http.ResponseWriter, r *http.Request) {
	bus, err := h.service.GetBusByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get bus")
		return
	}

	utils.ResponseSuccess(w, "success", bus)
}

// CreateBus handles POST /api/admin/buses (admin)
func (h *BusHandler) CreateBus(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	bus, err := h.service.CreateBus(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create bus")
		return
	}

	utils.ResponseCreated(w, "success", bus)
}

// UpdateBus handles PATCH /api/admin/buses/{id} (admin)
func (h *BusHandler) UpdateBus(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateBusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	bus, err := h.service.UpdateBus(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update bus")
		return
	}

	utils.ResponseSuccess(w, "Bus updated", bus)
}

// DeleteBus handles DELETE /api/admin/buses/{id} (admin)
func (h *BusHandler) DeleteBus(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteBus(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete bus")
		return
	}

	utils.ResponseSuccess(w, "Bus deleted", nil)
}

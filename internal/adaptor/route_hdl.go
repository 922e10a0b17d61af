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

type RouteHandler struct {
	service usecase.RouteService
	log     *zap.Logger
}

func NewRouteHandler(service usecase.RouteService, log *zap.Logger) *RouteHandler {
	return &RouteHandler{
		service: service,
		log:     log.With(zap.String("handler", "route")),
	}
}

// GetRoutes handles GET /api/routes (public)
func (h *RouteHandler) GetRoutes(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// With origin/destination filters this becomes a search.
	if query.Get("origin") != "" || query.Get("destination") != "" {
		routes, err := h.service.SearchRoutes(r.Context(), query.Get("origin"), query.Get("destination"))
		if err != nil {
			writeServiceError(w, h.log, err, "search routes")
			return
		}
		utils.ResponseSuccess(w, "success", routes)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	routes, err := h.service.GetAllRoutes(r.Context(), req)
	if err != nil {
		writeServiceError(w, h.log, err, "get routes")
		return
	}

	utils.ResponseSuccess(w, "success", routes)
}

// GetRoute handles GET /api/routes/{id} (public)
func (h *RouteHandler) GetRoute(w http.ResponseWriter, r *http.Request) {
	route, err := h.service.GetRouteByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, h.log, err, "get route")
		return
	}

	utils.ResponseSuccess(w, "success", route)
}

// CreateRoute handles POST /api/admin/routes (admin)
func (h *RouteHandler) CreateRoute(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	route, err := h.service.CreateRoute(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "create route")
		return
	}

	utils.ResponseCreated(w, "success", route)
}

// UpdateRoute handles PATCH /api/admin/routes/{id} (admin)
func (h *RouteHandler) UpdateRoute(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	route, err := h.service.UpdateRoute(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "update route")
		return
	}

	utils.ResponseSuccess(w, "Route updated", route)
}

// DeleteRoute handles DELETE /api/admin/routes/{id} (admin)
func (h *RouteHandler) DeleteRoute(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteRoute(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, h.log, err, "delete route")
		return
	}

	utils.ResponseSuccess(w, "Route deleted", nil)
}

// BulkDeleteRoutes handles POST /api/admin/routes/bulk-delete (admin)
func (h *RouteHandler) BulkDeleteRoutes(w http.ResponseWriter, r *http.Request) {
	var req request.BulkRouteDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	result, err := h.service.BulkDeleteRoutes(r.Context(), &req)
	if err != nil {
		writeServiceError(w, h.log, err, "bulk delete routes")
		return
	}

	utils.ResponseSuccess(w, "Bulk delete finished", result)
}

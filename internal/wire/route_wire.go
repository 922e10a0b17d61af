package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/pkg/middleware"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRoute(
	r chi.Router,
	routeHandler *adaptor.RouteHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/routes", routeHandler.GetRoutes)
	r.Get("/api/routes/{id}", routeHandler.GetRoute)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/routes", func(r chi.Router) {
		r.Use(middleware.AuthRequired(config.JWT.Secret, log))
		r.Use(middleware.AdminOnly())

		r.Post("/", routeHandler.CreateRoute)
		r.Patch("/{id}", routeHandler.UpdateRoute)
		r.Delete("/{id}", routeHandler.DeleteRoute)
		r.Post("/bulk-delete", routeHandler.BulkDeleteRoutes)
	})
}

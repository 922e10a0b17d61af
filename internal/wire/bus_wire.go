package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/pkg/middleware"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBus(
	r chi.Router,
	busHandler *adaptor.BusHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Fleet management is admin-only end to end.
	r.Route("/api/admin/buses", func(r chi.Router) {
		r.Use(middleware.AuthRequired(config.JWT.Secret, log))
		r.Use(middleware.AdminOnly())

		r.Get("/", busHandler.GetBuses)
		r.Get("/{id}", busHandler.GetBus)
		r.Post("/", busHandler.CreateBus)
		r.Patch("/{id}", busHandler.UpdateBus)
		r.Delete("/{id}", busHandler.DeleteBus)
	})
}

package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/pkg/middleware"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSchedule(
	r chi.Router,
	scheduleHandler *adaptor.ScheduleHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/schedules", scheduleHandler.GetSchedules)
	r.Get("/api/schedules/{id}", scheduleHandler.GetSchedule)
	r.Get("/api/schedules/{id}/seats", scheduleHandler.GetSeatMap)
	r.Get("/api/seats/{id}", scheduleHandler.GetSeatMap)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/schedules", func(r chi.Router) {
		r.Use(middleware.AuthRequired(config.JWT.Secret, log))
		r.Use(middleware.AdminOnly())

		r.Post("/", scheduleHandler.CreateSchedule)
		r.Patch("/{id}", scheduleHandler.UpdateSchedule)
		r.Post("/{id}/cancel", scheduleHandler.CancelSchedule)
		r.Post("/{id}/recount", scheduleHandler.RecountSchedule)
		r.Delete("/{id}", scheduleHandler.DeleteSchedule)
	})
}

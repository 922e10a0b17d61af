package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/pkg/middleware"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC / OPTIONAL-AUTH ROUTES ====================
	// Guests book with just the passenger details; logged-in users get the
	// booking attached to their account.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthOptional(config.JWT.Secret, log))

		// POST /api/book - Reserve a seat
		r.Post("/api/book", bookingHandler.CreateBooking)

		// PATCH /api/bookings/{reference}/cancel - Cancel by reference
		r.Patch("/api/bookings/{reference}/cancel", bookingHandler.CancelBooking)
	})

	// GET /api/bookings/{reference} - Look up a booking by its reference
	r.Get("/api/bookings/{reference}", bookingHandler.GetBooking)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthRequired(config.JWT.Secret, log))

		// GET /api/user/bookings - Booking history for the logged-in user
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthRequired(config.JWT.Secret, log))
		r.Use(middleware.AdminOnly())

		// GET /api/admin/bookings?status= - List all bookings
		r.Get("/", bookingHandler.GetAllBookings)

		// GET /api/admin/bookings/{reference} - Inspect a single booking
		r.Get("/{reference}", bookingHandler.GetBooking)

		// POST /api/admin/bookings/{reference}/reactivate - Undo a cancellation
		r.Post("/{reference}/reactivate", bookingHandler.ReactivateBooking)

		// DELETE /api/admin/bookings/{reference} - Hard delete (restores the seat)
		r.Delete("/{reference}", bookingHandler.DeleteBooking)

		// Bulk reconciliation endpoints
		r.Post("/bulk-cancel", bookingHandler.BulkCancel)
		r.Post("/bulk-reactivate", bookingHandler.BulkReactivate)
		r.Post("/bulk-delete", bookingHandler.BulkDelete)
	})
}

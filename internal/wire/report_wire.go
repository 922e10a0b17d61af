package wire

import (
	"bus-booking/internal/adaptor"
	"bus-booking/pkg/middleware"
	"bus-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Route("/api/admin/reports", func(r chi.Router) {
		r.Use(middleware.AuthRequired(config.JWT.Secret, log))
		r.Use(middleware.AdminOnly())

		r.Get("/sales", reportHandler.SalesReport)
		r.Get("/sales.pdf", reportHandler.SalesReportPDF)
	})
}

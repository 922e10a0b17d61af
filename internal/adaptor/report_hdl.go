package adaptor

import (
	"net/http"

	"bus-booking/internal/usecase"
	"bus-booking/pkg/utils"

	"go.uber.org/zap"
)

type ReportHandler struct {
	service usecase.ReportService
	log     *zap.Logger
}

func NewReportHandler(service usecase.ReportService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		log:     log.With(zap.String("handler", "report")),
	}
}

// SalesReport handles GET /api/admin/reports/sales?from=&to= (admin)
func (h *ReportHandler) SalesReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	report, err := h.service.SalesReport(r.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		writeServiceError(w, h.log, err, "sales report")
		return
	}

	utils.ResponseSuccess(w, "success", report)
}

// SalesReportPDF handles GET /api/admin/reports/sales.pdf?from=&to= (admin)
func (h *ReportHandler) SalesReportPDF(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	pdf, err := h.service.SalesReportPDF(r.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		writeServiceError(w, h.log, err, "sales report pdf")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="sales-report.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(pdf)
}

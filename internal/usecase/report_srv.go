package usecase

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"bus-booking/internal/data/entity"
	"bus-booking/internal/data/repository"
	"bus-booking/internal/dto/response"

	"github.com/phpdave11/gofpdf"
	"go.uber.org/zap"
)

type ReportService interface {
	SalesReport(ctx context.Context, from, to string) (*response.SalesReportResponse, error)
	SalesReportPDF(ctx context.Context, from, to string) ([]byte, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) parseRange(from, to string) (time.Time, time.Time, error) {
	if from == "" || to == "" {
		// Default to the current month.
		now := time.Now()
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, -1), nil
	}

	start, err := time.Parse("2006-01-02", from)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid from date %s: %w", from, entity.ErrInvalidInput)
	}
	end, err := time.Parse("2006-01-02", to)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid to date %s: %w", to, entity.ErrInvalidInput)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("date range %s to %s is inverted: %w", from, to, entity.ErrInvalidInput)
	}
	return start, end, nil
}

func (s *reportService) SalesReport(ctx context.Context, from, to string) (*response.SalesReportResponse, error) {
	start, end, err := s.parseRange(from, to)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Booking.SalesByRoute(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report := &response.SalesReportResponse{
		From:   start.Format("2006-01-02"),
		To:     end.Format("2006-01-02"),
		Routes: make([]response.RouteSalesRow, 0, len(rows)),
	}
	for _, row := range rows {
		report.TotalBookings += row.Bookings
		report.TotalRevenue += row.Revenue
		report.Routes = append(report.Routes, response.RouteSalesRow{
			Origin:       row.Origin,
			Destination:  row.Destination,
			Bookings:     row.Bookings,
			Cancelled:    row.Cancelled,
			TotalRevenue: row.Revenue,
		})
	}

	return report, nil
}

func (s *reportService) SalesReportPDF(ctx context.Context, from, to string) ([]byte, error) {
	report, err := s.SalesReport(ctx, from, to)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Sales Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", report.From, report.To))
	pdf.Ln(10)

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(70, 8, "Route", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 8, "Bookings", "1", 0, "R", false, 0, "")
	pdf.CellFormat(30, 8, "Cancelled", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 8, "Revenue", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, row := range report.Routes {
		pdf.CellFormat(70, 8, fmt.Sprintf("%s - %s", row.Origin, row.Destination), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", row.Bookings), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 8, fmt.Sprintf("%d", row.Cancelled), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", row.TotalRevenue), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(130, 8, "Total", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", report.TotalRevenue), "1", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.log.Error("Failed to render sales report PDF", zap.Error(err))
		return nil, fmt.Errorf("render sales report pdf: %w", err)
	}

	s.log.Info("Sales report generated",
		zap.String("from", report.From),
		zap.String("to", report.To),
		zap.Int("routes", len(report.Routes)),
	)
	return buf.Bytes(), nil
}

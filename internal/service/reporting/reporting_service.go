package reporting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/wms/internal/domain/models"
	"github.com/mamadbah2/wms/internal/repository/sheets"
	"github.com/mamadbah2/wms/pkg/clients/whatsapp"
)

const (
	dateLayout   = "2006-01-02"
	reportPeriod = 7 * 24 * time.Hour
)

// Repository is the storage used to build and keep stock reports.
type Repository interface {
	ListStockHistoryBetween(ctx context.Context, start, end time.Time) ([]models.StockHistory, error)
	SaveStockReport(ctx context.Context, report models.StockReport) error
}

// Service builds the weekly stock report and delivers it to its sinks.
type Service struct {
	repo      Repository
	sheet     sheets.ReportSheet
	messenger whatsapp.Client
	receiver  string
	logger    *zap.Logger
	now       func() time.Time
}

// Option configures optional report sinks.
type Option func(*Service)

// WithSheet appends every report to a spreadsheet.
func WithSheet(sheet sheets.ReportSheet) Option {
	return func(s *Service) { s.sheet = sheet }
}

// WithWhatsApp sends every report summary to receiver.
func WithWhatsApp(client whatsapp.Client, receiver string) Option {
	return func(s *Service) {
		s.messenger = client
		s.receiver = receiver
	}
}

// WithClock overrides the report clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService wires a new reporting service instance.
func NewService(repo Repository, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{repo: repo, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateWeeklyReport aggregates the stock history of the seven days ending at end.
func (s *Service) GenerateWeeklyReport(ctx context.Context, end time.Time) (models.StockReport, error) {
	start := end.Add(-reportPeriod)

	records, err := s.repo.ListStockHistoryBetween(ctx, start, end)
	if err != nil {
		return models.StockReport{}, fmt.Errorf("load stock history: %w", err)
	}

	report := models.StockReport{PeriodStart: start, PeriodEnd: end, CreatedAt: s.now().UTC()}
	touched := make(map[string]struct{})

	for _, record := range records {
		switch record.Type {
		case models.StockHistoryTransfer:
			report.TransferCount++
		default:
			report.PurchaseCount++
		}
		report.NetDifference += record.Difference
		touched[record.Product] = struct{}{}
	}
	report.ProductsTouched = len(touched)

	return report, nil
}

// RunWeeklyReport generates the report ending now and hands it to every
// configured sink. A failing sink does not stop the others.
func (s *Service) RunWeeklyReport(ctx context.Context) (models.StockReport, error) {
	report, err := s.GenerateWeeklyReport(ctx, s.now())
	if err != nil {
		return models.StockReport{}, err
	}

	var errs []error

	if err := s.repo.SaveStockReport(ctx, report); err != nil {
		s.logger.Error("failed to save stock report", zap.Error(err))
		errs = append(errs, err)
	}

	if s.sheet != nil {
		if err := s.sheet.AppendStockReport(ctx, report); err != nil {
			s.logger.Error("failed to append stock report to sheet", zap.Error(err))
			errs = append(errs, err)
		}
	}

	if s.messenger != nil {
		msg := whatsapp.SendTextMessageRequest{To: s.receiver, Body: Summarize(report)}
		if _, err := s.messenger.SendTextMessage(ctx, msg); err != nil {
			s.logger.Error("failed to send stock report", zap.Error(err))
			errs = append(errs, err)
		}
	}

	s.logger.Info("weekly stock report generated",
		zap.Int("purchases", report.PurchaseCount),
		zap.Int("transfers", report.TransferCount),
		zap.Int("net_difference", report.NetDifference),
	)

	return report, errors.Join(errs...)
}

// Summarize formats a report as a short text message.
func Summarize(report models.StockReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Stock report (%s - %s)\n", report.PeriodStart.Format(dateLayout), report.PeriodEnd.Format(dateLayout))

	if report.PurchaseCount+report.TransferCount == 0 {
		b.WriteString("No stock mutations recorded.")
		return b.String()
	}

	fmt.Fprintf(&b, "Purchases: %d\n", report.PurchaseCount)
	fmt.Fprintf(&b, "Transfers: %d\n", report.TransferCount)
	fmt.Fprintf(&b, "Net difference: %+d across %d products", report.NetDifference, report.ProductsTouched)
	return b.String()
}

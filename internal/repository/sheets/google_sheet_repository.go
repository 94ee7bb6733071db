package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/mamadbah2/wms/internal/config"
	"github.com/mamadbah2/wms/internal/domain/models"
)

const dateLayout = "2006-01-02"

// ReportSheet appends stock reports to a spreadsheet.
type ReportSheet interface {
	AppendStockReport(ctx context.Context, report models.StockReport) error
}

// GoogleSheetRepository implements ReportSheet with the Google Sheets API.
type GoogleSheetRepository struct {
	service       *sheetsapi.Service
	spreadsheetID string
	reportRange   string
	logger        *zap.Logger
}

// NewGoogleSheetRepository builds a Sheets backed repository. Without extra
// options the service account file from cfg is used.
func NewGoogleSheetRepository(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger, opts ...option.ClientOption) (*GoogleSheetRepository, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.ReportRange == "" {
		return nil, fmt.Errorf("report range must not be empty")
	}

	if len(opts) == 0 {
		opts = []option.ClientOption{
			option.WithCredentialsFile(cfg.CredentialsPath),
			option.WithScopes(sheetsapi.SpreadsheetsScope),
		}
	}

	service, err := sheetsapi.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetRepository{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		reportRange:   cfg.ReportRange,
		logger:        logger,
	}, nil
}

// AppendStockReport writes one report row below the existing data.
func (r *GoogleSheetRepository) AppendStockReport(ctx context.Context, report models.StockReport) error {
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{ReportRow(report)}}

	call := r.service.Spreadsheets.Values.Append(r.spreadsheetID, r.reportRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append stock report into range %s: %w", r.reportRange, err)
	}

	r.logger.Debug("stock report appended to sheet", zap.String("range", r.reportRange))
	return nil
}

// ReportRow lays out a report as period start, period end, purchases,
// transfers, net difference and products touched.
func ReportRow(report models.StockReport) []interface{} {
	return []interface{}{
		report.PeriodStart.Format(dateLayout),
		report.PeriodEnd.Format(dateLayout),
		report.PurchaseCount,
		report.TransferCount,
		report.NetDifference,
		report.ProductsTouched,
	}
}

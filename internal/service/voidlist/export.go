package voidlist

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mamadbah2/wms/internal/domain/models"
)

const (
	listSheet  = "Void List"
	itemsSheet = "Items"
)

// Export renders the filtered void list as an xlsx workbook with one sheet of
// invoices and one sheet of line items.
func (s *Service) Export(ctx context.Context, search string) ([]byte, error) {
	list, err := s.List(ctx, search)
	if err != nil {
		return nil, err
	}
	return renderWorkbook(list)
}

func renderWorkbook(list []models.Invoice) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", listSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, fmt.Errorf("create items sheet: %w", err)
	}

	if err := writeRow(f, listSheet, 1, []interface{}{"Void Invoice ID", "Customer Name", "Date", "Payment Method", "Price"}); err != nil {
		return nil, err
	}
	if err := writeRow(f, itemsSheet, 1, []interface{}{"Void Invoice ID", "Brand", "Count"}); err != nil {
		return nil, err
	}

	itemRow := 2
	for i, inv := range list {
		if err := writeRow(f, listSheet, i+2, []interface{}{inv.ID, inv.CustomerName, inv.Date, inv.PaymentMethod, inv.TotalPrice}); err != nil {
			return nil, err
		}
		for _, item := range inv.Items {
			if err := writeRow(f, itemsSheet, itemRow, []interface{}{inv.ID, item.Brand, item.Count}); err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("cell name for row %d: %w", row, err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}

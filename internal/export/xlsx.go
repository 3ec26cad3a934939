package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"carline/internal/domain"
)

const sheetName = "Expenses"

// WriteXLSX renders expenses as a single-sheet Excel workbook.
func WriteXLSX(w io.Writer, expenses []domain.Expense) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}

	for i, col := range columns {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return fmt.Errorf("export.WriteXLSX: %w", err)
		}
	}

	for rowIdx := range expenses {
		e := &expenses[rowIdx]
		values := []interface{}{
			e.ExpenseDate.Format(dateLayout),
			e.CategoryName,
			e.Amount,
			"",
			e.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if e.Description != nil {
			values[3] = *e.Description
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return fmt.Errorf("export.WriteXLSX: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return fmt.Errorf("export.WriteXLSX: %w", err)
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "B", 14); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	if err := f.SetColWidth(sheetName, "D", "E", 28); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export.WriteXLSX: %w", err)
	}
	return nil
}

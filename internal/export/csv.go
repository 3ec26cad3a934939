package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"time"

	"carline/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the export header row, shared by the CSV and XLSX writers.
var columns = []string{
	"Date",
	"Category",
	"Amount",
	"Description",
	"Created At",
}

const dateLayout = "2006-01-02"

// CSVWriter wraps csv.Writer for exporting expenses as CSV.
type CSVWriter struct {
	csv *csv.Writer
}

// NewCSVWriter creates a CSVWriter that writes to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *CSVWriter) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteExpenses converts a batch of expenses to CSV rows and writes them.
func (w *CSVWriter) WriteExpenses(expenses []domain.Expense) error {
	for i := range expenses {
		if err := w.csv.Write(expenseToRow(&expenses[i])); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *CSVWriter) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *CSVWriter) Error() error {
	return w.csv.Error()
}

func expenseToRow(e *domain.Expense) []string {
	row := make([]string, len(columns))
	row[0] = e.ExpenseDate.Format(dateLayout)
	row[1] = e.CategoryName
	row[2] = strconv.FormatFloat(e.Amount, 'f', 2, 64)
	if e.Description != nil {
		row[3] = *e.Description
	}
	row[4] = e.CreatedAt.Format(time.RFC3339)
	return row
}

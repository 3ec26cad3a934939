package domain

// ReceiptCategory is the fixed category set the receipt extractor may return.
type ReceiptCategory string

const (
	ReceiptCategoryFuel        ReceiptCategory = "fuel"
	ReceiptCategoryMaintenance ReceiptCategory = "maintenance"
	ReceiptCategoryCarwash     ReceiptCategory = "carwash"
	ReceiptCategoryParts       ReceiptCategory = "parts"
	ReceiptCategoryInsurance   ReceiptCategory = "insurance"
	ReceiptCategoryOther       ReceiptCategory = "other"
)

// ReceiptCategories lists all valid receipt categories in prompt order.
var ReceiptCategories = []ReceiptCategory{
	ReceiptCategoryFuel,
	ReceiptCategoryMaintenance,
	ReceiptCategoryCarwash,
	ReceiptCategoryParts,
	ReceiptCategoryInsurance,
	ReceiptCategoryOther,
}

// IsValid reports whether c is a member of the fixed category set.
func (c ReceiptCategory) IsValid() bool {
	switch c {
	case ReceiptCategoryFuel, ReceiptCategoryMaintenance, ReceiptCategoryCarwash,
		ReceiptCategoryParts, ReceiptCategoryInsurance, ReceiptCategoryOther:
		return true
	}
	return false
}

// ExportFormat identifies a supported expense export format.
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// IsValid reports whether f is a supported export format.
func (f ExportFormat) IsValid() bool {
	return f == ExportFormatCSV || f == ExportFormatXLSX
}

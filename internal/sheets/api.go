package sheets

import (
	"context"
)

// Rows is a block of cell values as the Sheets API exchanges them, one
// slice per row. Read cells through NewCell rather than type-switching.
type Rows = [][]any

// SheetsAPI is the subset of Google Sheets the roster store needs.
// Ranges are A1 notation, e.g. 'Survivors'!A2:A.
type SheetsAPI interface {
	ReadSheet(ctx context.Context, spreadsheetID, range_ string) (Rows, error)
	UpdateRange(ctx context.Context, spreadsheetID, range_ string, values Rows) error
	ClearRange(ctx context.Context, spreadsheetID, range_ string) error

	// CreateSheet adds a tab; SheetExists reports whether one is present
	CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error
	SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error)

	// EnsureSheetCapacity grows a tab to at least the given grid size
	EnsureSheetCapacity(ctx context.Context, spreadsheetID, sheetName string, requiredRows, requiredCols int) error
}

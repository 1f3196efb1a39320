package sheets

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
)

// ColumnRange is a single-column A1 range such as 'Survivors'!A2:A.
// The column is open-ended: the roster fills it from StartRow down.
type ColumnRange struct {
	SheetName string
	Column    string
	StartRow  int
}

var columnRangePattern = regexp.MustCompile(`^([A-Z]+)(\d+)(?::([A-Z]+)\d*)?$`)

// ParseColumnRange reads ranges of the form Sheet!A2:A, 'My Sheet'!B5 or Sheet!C1:C
func ParseColumnRange(a1 string) (ColumnRange, error) {
	bang := strings.LastIndex(a1, "!")
	if bang <= 0 {
		return ColumnRange{}, fmt.Errorf("range %q must name a sheet, e.g. Survivors!A2:A", a1)
	}

	sheetName := strings.Trim(a1[:bang], "'")
	cells := strings.ToUpper(strings.TrimSpace(a1[bang+1:]))

	match := columnRangePattern.FindStringSubmatch(cells)
	if match == nil {
		return ColumnRange{}, fmt.Errorf("range %q is not a single-column range", a1)
	}
	if match[3] != "" && match[3] != match[1] {
		return ColumnRange{}, fmt.Errorf("range %q spans columns %s to %s; expected one column", a1, match[1], match[3])
	}

	startRow, err := strconv.Atoi(match[2])
	if err != nil || startRow < 1 {
		return ColumnRange{}, fmt.Errorf("range %q has an invalid start row", a1)
	}

	return ColumnRange{SheetName: sheetName, Column: match[1], StartRow: startRow}, nil
}

// String formats the open-ended range, quoting the sheet name
func (r ColumnRange) String() string {
	return fmt.Sprintf("'%s'!%s%d:%s", r.SheetName, r.Column, r.StartRow, r.Column)
}

// StartCell is the first cell of the range, where writes begin
func (r ColumnRange) StartCell() string {
	return fmt.Sprintf("'%s'!%s%d", r.SheetName, r.Column, r.StartRow)
}

// columnNumber converts a column label to its 1-based index (A=1, AA=27)
func (r ColumnRange) columnNumber() int {
	n := 0
	for _, ch := range r.Column {
		n = n*26 + int(ch-'A'+1)
	}
	return n
}

// RosterSheet keeps a roster's attack values in one column of a spreadsheet
type RosterSheet struct {
	api           SheetsAPI
	spreadsheetID string
	column        ColumnRange
}

// NewRosterSheet creates a RosterSheet over the given range
func NewRosterSheet(api SheetsAPI, spreadsheetID string, column ColumnRange) *RosterSheet {
	return &RosterSheet{api: api, spreadsheetID: spreadsheetID, column: column}
}

// ReadAttackValues returns every non-empty, non-zero attack in the column, top to bottom.
// A missing tab reads as an empty roster.
func (s *RosterSheet) ReadAttackValues(ctx context.Context) ([]int, error) {
	exists, err := s.api.SheetExists(ctx, s.spreadsheetID, s.column.SheetName)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, nil
	}

	rows, err := s.api.ReadSheet(ctx, s.spreadsheetID, s.column.String())
	if err != nil {
		return nil, err
	}

	values := make([]int, 0, len(rows))
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell := NewCell(row[0])
		if cell.IsEmpty() {
			continue
		}
		attack := cell.Attack()
		if attack == 0 {
			log.Debug().
				Int("row", s.column.StartRow+i).
				Str("value", cell.String()).
				Msg("Skipping roster cell without an attack value")
			continue
		}
		values = append(values, attack)
	}

	return values, nil
}

// WriteAttackValues replaces the column's contents with values, creating the tab if needed
func (s *RosterSheet) WriteAttackValues(ctx context.Context, values []int) error {
	exists, err := s.api.SheetExists(ctx, s.spreadsheetID, s.column.SheetName)
	if err != nil {
		return err
	}
	if !exists {
		if err := s.api.CreateSheet(ctx, s.spreadsheetID, s.column.SheetName); err != nil {
			return err
		}
	}

	requiredRows := s.column.StartRow + len(values) - 1
	if err := s.api.EnsureSheetCapacity(ctx, s.spreadsheetID, s.column.SheetName, requiredRows, s.column.columnNumber()); err != nil {
		return err
	}

	if err := s.api.ClearRange(ctx, s.spreadsheetID, s.column.String()); err != nil {
		return err
	}

	if len(values) == 0 {
		return nil
	}

	rows := make(Rows, len(values))
	for i, v := range values {
		rows[i] = []any{v}
	}

	return s.api.UpdateRange(ctx, s.spreadsheetID, s.column.StartCell(), rows)
}

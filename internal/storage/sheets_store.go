package storage

import (
	"context"
	"fmt"

	"btd_party/internal/app"
	"btd_party/internal/sheets"
)

// SheetsStore keeps the roster as one attack value per row in a Google Sheet,
// so a group can also edit it by hand.
type SheetsStore struct {
	sheet *sheets.RosterSheet
}

// NewSheetsStore creates a SheetsStore over a single-column range such as Survivors!A2:A
func NewSheetsStore(api sheets.SheetsAPI, spreadsheetID, rangeA1 string) (*SheetsStore, error) {
	column, err := sheets.ParseColumnRange(rangeA1)
	if err != nil {
		return nil, fmt.Errorf("roster range: %w", err)
	}
	return &SheetsStore{sheet: sheets.NewRosterSheet(api, spreadsheetID, column)}, nil
}

// Load reads the roster column. Hand-typed cells such as "1,200" are normalized.
func (s *SheetsStore) Load(ctx context.Context) ([]app.Survivor, error) {
	values, err := s.sheet.ReadAttackValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster from sheet: %w", err)
	}

	survivors := make([]app.Survivor, len(values))
	for i, v := range values {
		survivors[i] = app.Survivor{Attack: v}
	}
	return survivors, nil
}

// Save rewrites the roster column
func (s *SheetsStore) Save(ctx context.Context, survivors []app.Survivor) error {
	values := make([]int, len(survivors))
	for i, survivor := range survivors {
		values[i] = survivor.Attack
	}

	if err := s.sheet.WriteAttackValues(ctx, values); err != nil {
		return fmt.Errorf("save roster to sheet: %w", err)
	}
	return nil
}

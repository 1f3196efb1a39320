package mocks

import (
	"context"
	"sync"
)

// MockSheetsClient is a test double for sheets.Client.
// It keeps the cells written through UpdateRange so a later ReadSheet of the
// same column sees them, and records how it was called.
type MockSheetsClient struct {
	mu sync.Mutex

	// Existing tabs and the rows last written to each start cell
	Sheets  map[string]bool
	Written map[string][][]any

	// ReadSheetResponse overrides the stored rows when set
	ReadSheetResponse [][]any

	// Errors to return
	ReadSheetError           error
	UpdateRangeError         error
	ClearRangeError          error
	CreateSheetError         error
	SheetExistsError         error
	EnsureSheetCapacityError error

	// Call tracking
	ReadSheetCalls           int
	UpdateRangeCalls         int
	ClearRangeCalls          int
	CreateSheetCalls         int
	EnsureSheetCapacityCalls int

	// Call parameters tracking
	ReadSheetCalledWith struct {
		SpreadsheetID string
		Range         string
	}
	UpdateRangeCalledWith struct {
		SpreadsheetID string
		Range         string
		Values        [][]any
	}
	ClearRangeCalledWith struct {
		SpreadsheetID string
		Range         string
	}
	EnsureSheetCapacityCalledWith struct {
		SheetName    string
		RequiredRows int
		RequiredCols int
	}
}

// NewMockSheetsClient creates a mock with the given tabs already present
func NewMockSheetsClient(existingSheets ...string) *MockSheetsClient {
	m := &MockSheetsClient{
		Sheets:  make(map[string]bool),
		Written: make(map[string][][]any),
	}
	for _, name := range existingSheets {
		m.Sheets[name] = true
	}
	return m
}

func (m *MockSheetsClient) ReadSheet(ctx context.Context, spreadsheetID, range_ string) ([][]any, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ReadSheetCalls++
	m.ReadSheetCalledWith.SpreadsheetID = spreadsheetID
	m.ReadSheetCalledWith.Range = range_

	if m.ReadSheetError != nil {
		return nil, m.ReadSheetError
	}
	if m.ReadSheetResponse != nil {
		return m.ReadSheetResponse, nil
	}
	return m.Written[m.UpdateRangeCalledWith.Range], nil
}

func (m *MockSheetsClient) UpdateRange(ctx context.Context, spreadsheetID, range_ string, values [][]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.UpdateRangeCalls++
	m.UpdateRangeCalledWith.SpreadsheetID = spreadsheetID
	m.UpdateRangeCalledWith.Range = range_
	m.UpdateRangeCalledWith.Values = values

	if m.UpdateRangeError != nil {
		return m.UpdateRangeError
	}
	m.Written[range_] = values
	return nil
}

func (m *MockSheetsClient) ClearRange(ctx context.Context, spreadsheetID, range_ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ClearRangeCalls++
	m.ClearRangeCalledWith.SpreadsheetID = spreadsheetID
	m.ClearRangeCalledWith.Range = range_

	if m.ClearRangeError != nil {
		return m.ClearRangeError
	}
	for key := range m.Written {
		delete(m.Written, key)
	}
	return nil
}

func (m *MockSheetsClient) CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CreateSheetCalls++
	if m.CreateSheetError != nil {
		return m.CreateSheetError
	}
	m.Sheets[sheetName] = true
	return nil
}

func (m *MockSheetsClient) SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.SheetExistsError != nil {
		return false, m.SheetExistsError
	}
	return m.Sheets[sheetName], nil
}

func (m *MockSheetsClient) EnsureSheetCapacity(ctx context.Context, spreadsheetID, sheetName string, requiredRows, requiredCols int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.EnsureSheetCapacityCalls++
	m.EnsureSheetCapacityCalledWith.SheetName = sheetName
	m.EnsureSheetCapacityCalledWith.RequiredRows = requiredRows
	m.EnsureSheetCapacityCalledWith.RequiredCols = requiredCols
	return m.EnsureSheetCapacityError
}

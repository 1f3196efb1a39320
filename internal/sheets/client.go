package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Client implements SheetsAPI against the Google Sheets v4 service
type Client struct {
	service *sheets.Service
}

// NewClient creates a Google Sheets client authorized by a service account
// credentials file, limited to the spreadsheets scope.
func NewClient(ctx context.Context, credentialsFile string) (*Client, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Client{service: service}, nil
}

// ReadSheet reads unformatted values, so numeric cells come back as float64
func (c *Client) ReadSheet(ctx context.Context, spreadsheetID, range_ string) (Rows, error) {
	resp, err := c.service.Spreadsheets.Values.Get(spreadsheetID, range_).
		ValueRenderOption("UNFORMATTED_VALUE").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet range %s: %w", range_, err)
	}

	return resp.Values, nil
}

// UpdateRange writes values starting at the given range. Values are sent RAW
// so an attack of 1200 is stored as a number rather than re-parsed by Sheets.
func (c *Client) UpdateRange(ctx context.Context, spreadsheetID, range_ string, values Rows) error {
	_, err := c.service.Spreadsheets.Values.Update(spreadsheetID, range_, &sheets.ValueRange{Values: values}).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to update range %s: %w", range_, err)
	}

	return nil
}

// ClearRange clears all values in the specified sheet range
func (c *Client) ClearRange(ctx context.Context, spreadsheetID, range_ string) error {
	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, range_, &sheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to clear range %s: %w", range_, err)
	}

	return nil
}

// CreateSheet adds a tab with the specified name
func (c *Client) CreateSheet(ctx context.Context, spreadsheetID, sheetName string) error {
	return c.batchUpdate(ctx, spreadsheetID, &sheets.Request{
		AddSheet: &sheets.AddSheetRequest{
			Properties: &sheets.SheetProperties{Title: sheetName},
		},
	})
}

// SheetExists checks if a tab with the given name exists in the spreadsheet
func (c *Client) SheetExists(ctx context.Context, spreadsheetID, sheetName string) (bool, error) {
	sheet, err := c.findSheet(ctx, spreadsheetID, sheetName)
	if err != nil {
		return false, err
	}
	return sheet != nil, nil
}

// EnsureSheetCapacity grows the tab's grid when the roster needs more rows or
// columns than it currently has. It never shrinks a tab.
func (c *Client) EnsureSheetCapacity(ctx context.Context, spreadsheetID, sheetName string, requiredRows, requiredCols int) error {
	sheet, err := c.findSheet(ctx, spreadsheetID, sheetName)
	if err != nil {
		return err
	}
	if sheet == nil {
		return fmt.Errorf("sheet %s not found", sheetName)
	}

	var rows, cols int
	if grid := sheet.Properties.GridProperties; grid != nil {
		rows, cols = int(grid.RowCount), int(grid.ColumnCount)
	}
	if requiredRows <= rows && requiredCols <= cols {
		return nil
	}

	newRows := max(rows, requiredRows+50)
	newCols := max(cols, requiredCols)

	log.Debug().
		Str("sheet_name", sheetName).
		Int("current_rows", rows).
		Int("current_cols", cols).
		Int("new_rows", newRows).
		Int("new_cols", newCols).
		Msg("Expanding sheet capacity")

	return c.batchUpdate(ctx, spreadsheetID, &sheets.Request{
		UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
			Properties: &sheets.SheetProperties{
				SheetId: sheet.Properties.SheetId,
				GridProperties: &sheets.GridProperties{
					RowCount:    int64(newRows),
					ColumnCount: int64(newCols),
				},
			},
			Fields: "gridProperties.rowCount,gridProperties.columnCount",
		},
	})
}

// findSheet returns the tab named sheetName, or nil when there is none
func (c *Client) findSheet(ctx context.Context, spreadsheetID, sheetName string) (*sheets.Sheet, error) {
	spreadsheet, err := c.service.Spreadsheets.Get(spreadsheetID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get spreadsheet: %w", err)
	}

	for _, sheet := range spreadsheet.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == sheetName {
			return sheet, nil
		}
	}
	return nil, nil
}

func (c *Client) batchUpdate(ctx context.Context, spreadsheetID string, requests ...*sheets.Request) error {
	_, err := c.service.Spreadsheets.BatchUpdate(spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to update spreadsheet %s: %w", spreadsheetID, err)
	}
	return nil
}

package gamelist

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// readRange covers every column the parser could care about on the first
// sheet. A1 notation without a sheet name targets the first visible sheet.
const readRange = "A1:ZZ"

// Session fetches GL spreadsheet snapshots from the Google Sheets API.
type Session struct {
	svc *sheets.Service
}

// NewSession builds a read-only Sheets client from a service account key
// file.
func NewSession(ctx context.Context, credentialsFile string) (*Session, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope))
	if err != nil {
		return nil, fmt.Errorf("create sheets client: %w", err)
	}
	return &Session{svc: svc}, nil
}

// Fetch downloads and parses a fresh snapshot of the spreadsheet.
func (s *Session) Fetch(ctx context.Context, spreadsheetID string) (*GameList, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch spreadsheet %s: %w", spreadsheetID, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, row := range resp.Values {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			// With the default FORMATTED_VALUE rendering every cell comes
			// back as a string; Sprint covers any stragglers.
			if str, ok := cell.(string); ok {
				cells = append(cells, str)
			} else {
				cells = append(cells, fmt.Sprint(cell))
			}
		}
		rows = append(rows, cells)
	}
	return Parse(rows)
}

// SheetURL is the browser URL for a spreadsheet id.
func SheetURL(spreadsheetID string) string {
	return "https://docs.google.com/spreadsheets/d/" + spreadsheetID
}

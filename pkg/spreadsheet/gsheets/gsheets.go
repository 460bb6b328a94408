// Package gsheets implements spreadsheet.Writer on the Google Sheets v4 API.
package gsheets

import (
	"context"
	"strings"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/spreadsheet"

	"github.com/go-faster/errors"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// valueInputOption lets the sheet parse numbers and dates in written cells.
const valueInputOption = "USER_ENTERED"

// Options selects the spreadsheet and the credentials used to reach it.
type Options struct {
	SpreadsheetID string
	// CredentialsJSON is a service account key. It takes precedence over CredentialsFile.
	CredentialsJSON []byte
	// CredentialsFile is a path to a service account key file.
	CredentialsFile string
	// ClientOptions are appended after the credential options; tests use them
	// to point the client at a fake endpoint.
	ClientOptions []option.ClientOption
}

// Sheets implements spreadsheet.Writer.
type Sheets struct {
	values        *sheets.SpreadsheetsValuesService
	spreadsheetID string
}

var _ spreadsheet.Writer = (*Sheets)(nil)

// New creates a Sheets client authorised for the spreadsheets scope.
func New(ctx context.Context, options Options) (*Sheets, error) {
	if options.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet id is required")
	}

	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	switch {
	case len(options.CredentialsJSON) > 0:
		opts = append(opts, option.WithCredentialsJSON(options.CredentialsJSON))
	case options.CredentialsFile != "":
		opts = append(opts, option.WithCredentialsFile(options.CredentialsFile))
	}
	opts = append(opts, options.ClientOptions...)

	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create sheets service")
	}

	return &Sheets{values: srv.Spreadsheets.Values, spreadsheetID: options.SpreadsheetID}, nil
}

// Clear empties every cell of sheet.
func (s *Sheets) Clear(ctx context.Context, sheet string) error {
	_, err := s.values.Clear(s.spreadsheetID, quote(sheet), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return errors.Wrapf(err, "clear sheet %q", sheet)
	}

	return nil
}

// Write replaces the values of rng in sheet.
func (s *Sheets) Write(ctx context.Context, sheet string, rng string, rows [][]string) error {
	a1 := A1(sheet, rng)

	_, err := s.values.Update(s.spreadsheetID, a1, &sheets.ValueRange{
		Range:          a1,
		MajorDimension: "ROWS",
		Values:         toValues(rows),
	}).ValueInputOption(valueInputOption).Context(ctx).Do()
	if err != nil {
		return errors.Wrapf(err, "write range %s", a1)
	}

	return nil
}

// A1 qualifies rng with a quoted sheet name: A1("ALL Accra Graph Data", "A2:F")
// is "'ALL Accra Graph Data'!A2:F".
func A1(sheet, rng string) string {
	return quote(sheet) + "!" + rng
}

// quote wraps a sheet name in single quotes, doubling embedded quotes.
func quote(sheet string) string {
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}

func toValues(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		out[i] = cells
	}

	return out
}

// Package spreadsheet defines the sheet operations the report pipeline needs
// from a spreadsheet service.
package spreadsheet

import "context"

// Writer clears and fills named sheets of one spreadsheet. Implementations
// must be safe for concurrent Write calls on distinct ranges.
//
//go:generate mockgen -package mockspreadsheet -source=interface.go -destination=mock/mockspreadsheet.go *
type Writer interface {
	// Clear removes every value from sheet, keeping its formatting.
	Clear(ctx context.Context, sheet string) error
	// Write replaces the values of rng (A1 notation without the sheet name)
	// in sheet with rows.
	Write(ctx context.Context, sheet string, rng string, rows [][]string) error
}

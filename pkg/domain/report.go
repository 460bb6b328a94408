package domain

import (
	"fmt"
	"time"
)

// BussingDateLayout is the ISO date layout the graph queries expect.
const BussingDateLayout = "2006-01-02"

// ReportParams are the two parameters every weekly query accepts.
type ReportParams struct {
	// CampusName selects the campus whose hierarchy is reported.
	CampusName string `json:"campusName"`
	// BussingDate is an ISO date; queries derive the ISO year and week from it.
	BussingDate string `json:"bussingDate"`
}

// Validate checks that the campus is set and the bussing date parses.
func (p ReportParams) Validate() error {
	if p.CampusName == "" {
		return fmt.Errorf("campus name is required")
	}
	if _, err := time.Parse(BussingDateLayout, p.BussingDate); err != nil {
		return fmt.Errorf("bussing date %q is not an ISO date: %w", p.BussingDate, err)
	}

	return nil
}

// LastSunday returns the most recent Sunday on or before t, formatted as a
// bussing date. Bussing happens on Sunday so a Monday run reports the day
// before.
func LastSunday(t time.Time) string {
	offset := int(t.Weekday()) // Sunday == 0

	return t.AddDate(0, 0, -offset).Format(BussingDateLayout)
}

// Rows is a report rendered as spreadsheet rows: a header row followed by one
// row per record.
type Rows [][]string

// Records returns the number of data rows, excluding the header.
func (r Rows) Records() int {
	if len(r) == 0 {
		return 0
	}

	return len(r) - 1
}

// ReportSummary describes what one report contributed to a run.
type ReportSummary struct {
	Name  string `json:"name"`
	Range string `json:"range"`
	// Rows counts header plus records; zero means the report came back empty.
	Rows int `json:"rows"`
}

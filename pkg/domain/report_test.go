package domain_test

import (
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"

	"github.com/stretchr/testify/require"
)

func TestLastSunday(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		out  string
	}{
		{"monday", time.Date(2026, 10, 12, 6, 0, 0, 0, time.UTC), "2026-10-11"},
		{"sunday itself", time.Date(2026, 10, 11, 23, 0, 0, 0, time.UTC), "2026-10-11"},
		{"saturday", time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC), "2026-10-11"},
		{"across month", time.Date(2026, 11, 2, 6, 0, 0, 0, time.UTC), "2026-11-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.out, domain.LastSunday(tc.in))
		})
	}
}

func TestReportParams_Validate(t *testing.T) {
	require.NoError(t, domain.ReportParams{CampusName: "Accra", BussingDate: "2026-10-11"}.Validate())
	require.Error(t, domain.ReportParams{BussingDate: "2026-10-11"}.Validate())
	require.Error(t, domain.ReportParams{CampusName: "Accra", BussingDate: "11/10/2026"}.Validate())
	require.Error(t, domain.ReportParams{CampusName: "Accra"}.Validate())
}

func TestRows_Records(t *testing.T) {
	require.Equal(t, 0, domain.Rows(nil).Records())
	require.Equal(t, 0, domain.Rows{{"Pastor"}}.Records())
	require.Equal(t, 2, domain.Rows{{"Pastor"}, {"a"}, {"b"}}.Records())
}

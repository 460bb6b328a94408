package report_test

import (
	"strings"
	"testing"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/report"

	"github.com/stretchr/testify/require"
)

// columns splits "G2:H" into its first and last column letters.
func columns(t *testing.T, rng string) (byte, byte) {
	t.Helper()

	from, to, ok := strings.Cut(rng, ":")
	require.True(t, ok, "range %q has no colon", rng)
	require.Equal(t, "2", from[1:], "range %q must start on row 2", rng)
	require.Len(t, to, 1, "range %q must be open-ended", rng)

	return from[0], to[0]
}

func TestAll_RangeContract(t *testing.T) {
	defs := report.All()
	require.Len(t, defs, 14)

	want := map[string]string{
		"councilList":              "A2:F",
		"weekendAttendance":        "G2:G",
		"weekendIncome":            "H2:H",
		"bussingAttendance":        "I2:I",
		"bacentasBussed":           "J2:J",
		"bacentasNotBussed":        "K2:K",
		"bacentasBelowEight":       "L2:L",
		"vehiclesCount":            "M2:M",
		"bussingCost":              "N2:N",
		"bussingTopUp":             "O2:O",
		"bacentaServiceAttendance": "P2:P",
		"bacentaServiceIncome":     "Q2:Q",
		"servicesNotBanked":        "R2:R",
		"amountNotBanked":          "S2:S",
	}

	next := byte('A')
	for _, def := range defs {
		require.Equal(t, want[def.Name], def.Range, def.Name)

		first, last := columns(t, def.Range)
		require.Equal(t, string(next), string(first), "%s does not continue at column %c", def.Name, next)
		width := int(last-first) + 1
		require.Len(t, def.Header, width, def.Name)
		require.Len(t, def.Fields, width, def.Name)
		require.NotEmpty(t, strings.TrimSpace(def.Query), def.Name)

		next = last + 1
	}
	require.Equal(t, "T", string(next))
}

func TestAll_ReturnsCopy(t *testing.T) {
	defs := report.All()
	defs[0].Name = "changed"

	require.Equal(t, "councilList", report.All()[0].Name)
}

func TestByName(t *testing.T) {
	def, ok := report.ByName("bussingCost")
	require.True(t, ok)
	require.Equal(t, "N2:N", def.Range)

	_, ok = report.ByName("nope")
	require.False(t, ok)
}

func TestDefinition_Params(t *testing.T) {
	councilList, _ := report.ByName("councilList")
	require.Equal(t, map[string]any{"campusName": "Accra"}, councilList.Params("Accra", "2026-10-11"))

	bussing, _ := report.ByName("bussingAttendance")
	require.Equal(t, map[string]any{"campusName": "Accra", "bussingDate": "2026-10-11"}, bussing.Params("Accra", "2026-10-11"))
}

func TestQueries_UseOnlyDeclaredParams(t *testing.T) {
	for _, def := range report.All() {
		require.Contains(t, def.Query, "$campusName", def.Name)
		require.Equal(t, def.NeedsDate, strings.Contains(def.Query, "$bussingDate"), def.Name)
		require.Contains(t, def.Query, "ORDER BY pastor, pastorId", def.Name)
	}
}

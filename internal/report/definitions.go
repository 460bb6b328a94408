package report

import (
	"fmt"
	"strings"
)

// Definition describes one report: the cypher that produces it, the header
// row, and the sheet range the rows land in.
type Definition struct {
	// Name identifies the report in logs, metrics and run history.
	Name string
	// Range is the A1 range inside the report sheet, e.g. "A2:F".
	Range string
	// Header is the first row written to Range.
	Header []string
	// Fields are the record keys read for each data row, in Header order.
	Fields []string
	// Query is the cypher statement; it receives $campusName and, when
	// NeedsDate is set, $bussingDate.
	Query string
	// NeedsDate marks queries scoped to the bussing week.
	NeedsDate bool
}

// Params returns the query parameters this definition accepts.
func (d Definition) Params(campusName, bussingDate string) map[string]any {
	params := map[string]any{"campusName": campusName}
	if d.NeedsDate {
		params["bussingDate"] = bussingDate
	}

	return params
}

// Every report is one row per council pastor, in the same order, so the
// single-column reports line up beside councilList.
const (
	pastorMatch = `MATCH (campus:Campus {name: $campusName})-[:HAS]->(stream:Stream)-[:HAS]->(council:Council)<-[:LEADS]-(pastor:Member)`
	pastorOrder = `ORDER BY pastor, pastorId`
	sameWeek    = `date.date.year = date($bussingDate).year AND date.date.week = date($bussingDate).week`
)

// perPastor builds a single-column report query: pastorMatch, then the given
// optional pattern, then one aggregated value per pastor.
func perPastor(optional, aggregate string) string {
	return strings.Join([]string{
		pastorMatch,
		optional,
		fmt.Sprintf("RETURN pastor.id AS pastorId, pastor.firstName + ' ' + pastor.lastName AS pastor, %s AS value", aggregate),
		pastorOrder,
	}, "\n")
}

// Bacentas are counted per council before the bishops are matched: a stream
// led by two members would otherwise count every bacenta twice.
const councilListQuery = pastorMatch + `
OPTIONAL MATCH (council)-[:HAS]->(active:Bacenta:Active)
WITH pastor, stream, council, count(DISTINCT active) AS active
OPTIONAL MATCH (council)-[:HAS]->(vacation:Bacenta:Vacation)
WITH pastor, stream, council, active, count(DISTINCT vacation) AS vacation
OPTIONAL MATCH (stream)<-[:LEADS]-(bishop:Member)
WITH pastor, stream, council, active, vacation,
     collect(DISTINCT bishop.firstName + ' ' + bishop.lastName) AS bishops
RETURN pastor.id AS pastorId,
       pastor.firstName + ' ' + pastor.lastName AS pastor,
       collect(DISTINCT stream.name) AS stream,
       reduce(acc = [], names IN collect(bishops) | acc + [name IN names WHERE NOT name IN acc]) AS bishop,
       collect(DISTINCT council.name) AS councils,
       sum(active) AS activeBacentas,
       sum(vacation) AS vacationBacentas
` + pastorOrder

var (
	councilServices = `OPTIONAL MATCH (council)-[:CURRENT_HISTORY]->(:ServiceLog)-[:HAS_SERVICE]->(record:ServiceRecord)-[:SERVICE_HELD_ON]->(date:TimeGraph)
WHERE ` + sameWeek + ` AND NOT record:NoService`

	bacentaServices = `OPTIONAL MATCH (council)-[:HAS]->(:Bacenta)-[:CURRENT_HISTORY]->(:ServiceLog)-[:HAS_SERVICE]->(record:ServiceRecord)-[:SERVICE_HELD_ON]->(date:TimeGraph)
WHERE ` + sameWeek + ` AND NOT record:NoService`

	bussingRecords = `OPTIONAL MATCH (council)-[:HAS]->(bacenta:Bacenta)-[:CURRENT_HISTORY]->(:ServiceLog)-[:HAS_BUSSING]->(bussing:BussingRecord)-[:BUSSED_ON]->(date:TimeGraph)
WHERE ` + sameWeek

	unbankedServices = `OPTIONAL MATCH (council)-[:HAS*0..1]->()-[:CURRENT_HISTORY]->(:ServiceLog)-[:HAS_SERVICE]->(record:ServiceRecord)-[:SERVICE_HELD_ON]->(date:TimeGraph)
WHERE ` + sameWeek + ` AND NOT record:NoService
  AND record.bankingSlip IS NULL AND record.transactionId IS NULL AND record.tellerConfirmationTime IS NULL`
)

// definitions are listed in column order; ranges must stay contiguous.
var definitions = []Definition{ //nolint: gochecknoglobals
	{
		Name:   "councilList",
		Range:  "A2:F",
		Header: []string{"Pastor", "Stream", "Bishop", "Council", "Active Bacentas", "Vacation Bacentas"},
		Fields: []string{"pastor", "stream", "bishop", "councils", "activeBacentas", "vacationBacentas"},
		Query:  councilListQuery,
	},
	{
		Name:      "weekendAttendance",
		Range:     "G2:G",
		Header:    []string{"Weekend Attendance"},
		Fields:    []string{"value"},
		Query:     perPastor(councilServices, "sum(record.attendance)"),
		NeedsDate: true,
	},
	{
		Name:      "weekendIncome",
		Range:     "H2:H",
		Header:    []string{"Weekend Income"},
		Fields:    []string{"value"},
		Query:     perPastor(councilServices, "round(sum(record.income), 2)"),
		NeedsDate: true,
	},
	{
		Name:      "bussingAttendance",
		Range:     "I2:I",
		Header:    []string{"Bussing Attendance"},
		Fields:    []string{"value"},
		Query:     perPastor(bussingRecords, "sum(bussing.attendance)"),
		NeedsDate: true,
	},
	{
		Name:      "bacentasBussed",
		Range:     "J2:J",
		Header:    []string{"Bacentas Bussed"},
		Fields:    []string{"value"},
		Query:     perPastor(bussingRecords, "count(DISTINCT bacenta)"),
		NeedsDate: true,
	},
	{
		Name:   "bacentasNotBussed",
		Range:  "K2:K",
		Header: []string{"Bacentas Not Bussed"},
		Fields: []string{"value"},
		Query: perPastor(`OPTIONAL MATCH (council)-[:HAS]->(bacenta:Bacenta:Active)
WHERE NOT EXISTS {
  MATCH (bacenta)-[:CURRENT_HISTORY]->(:ServiceLog)-[:HAS_BUSSING]->(:BussingRecord)-[:BUSSED_ON]->(date:TimeGraph)
  WHERE `+sameWeek+`
}`, "count(DISTINCT bacenta)"),
		NeedsDate: true,
	},
	{
		Name:      "bacentasBelowEight",
		Range:     "L2:L",
		Header:    []string{"Bacentas Below 8"},
		Fields:    []string{"value"},
		Query:     perPastor(bussingRecords+" AND bussing.attendance < 8", "count(DISTINCT bacenta)"),
		NeedsDate: true,
	},
	{
		Name:   "vehiclesCount",
		Range:  "M2:M",
		Header: []string{"Vehicles"},
		Fields: []string{"value"},
		Query: perPastor(bussingRecords,
			"sum(coalesce(bussing.numberOfBusses, 0) + coalesce(bussing.numberOfSprinters, 0) + coalesce(bussing.numberOfCars, 0))"),
		NeedsDate: true,
	},
	{
		Name:      "bussingCost",
		Range:     "N2:N",
		Header:    []string{"Bussing Cost"},
		Fields:    []string{"value"},
		Query:     perPastor(bussingRecords, "round(sum(bussing.bussingCost), 2)"),
		NeedsDate: true,
	},
	{
		Name:      "bussingTopUp",
		Range:     "O2:O",
		Header:    []string{"Bussing Top Up"},
		Fields:    []string{"value"},
		Query:     perPastor(bussingRecords, "round(sum(bussing.bussingTopUp), 2)"),
		NeedsDate: true,
	},
	{
		Name:      "bacentaServiceAttendance",
		Range:     "P2:P",
		Header:    []string{"Bacenta Service Attendance"},
		Fields:    []string{"value"},
		Query:     perPastor(bacentaServices, "sum(record.attendance)"),
		NeedsDate: true,
	},
	{
		Name:      "bacentaServiceIncome",
		Range:     "Q2:Q",
		Header:    []string{"Bacenta Service Income"},
		Fields:    []string{"value"},
		Query:     perPastor(bacentaServices, "round(sum(record.income), 2)"),
		NeedsDate: true,
	},
	{
		Name:      "servicesNotBanked",
		Range:     "R2:R",
		Header:    []string{"Services Not Banked"},
		Fields:    []string{"value"},
		Query:     perPastor(unbankedServices, "count(DISTINCT record)"),
		NeedsDate: true,
	},
	{
		Name:      "amountNotBanked",
		Range:     "S2:S",
		Header:    []string{"Amount Not Banked"},
		Fields:    []string{"value"},
		Query:     perPastor(unbankedServices, "round(sum(record.income), 2)"),
		NeedsDate: true,
	},
}

// All returns the weekly report definitions in sheet column order.
func All() []Definition {
	out := make([]Definition, len(definitions))
	copy(out, definitions)

	return out
}

// ByName looks up a definition by its report name.
func ByName(name string) (Definition, bool) {
	for _, d := range definitions {
		if d.Name == name {
			return d, true
		}
	}

	return Definition{}, false
}

package report_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/report"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/graph"
	mockgraph "github.com/firstlovecenter/fl-admin-portal-sub001/pkg/graph/mock"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var params = domain.ReportParams{CampusName: "Accra", BussingDate: "2026-10-11"} //nolint: gochecknoglobals

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func TestReader_Fetch_CouncilList(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mockgraph.NewMockRunner(ctrl)
	r := report.NewReader(g, nil, 0)

	def, _ := report.ByName("councilList")
	g.EXPECT().Run(gomock.Any(), def.Query, map[string]any{"campusName": "Accra"}).Return([]graph.Record{
		{
			"pastorId": "p1", "pastor": "Kwame Mensah", "stream": []any{"Anagkazo"}, "bishop": []any{"Ama Owusu"},
			"councils": []any{"Osu", "Labone"}, "activeBacentas": int64(12), "vacationBacentas": int64(2),
		},
		{
			"pastorId": "p2", "pastor": "Yaw Boateng", "stream": []any{"Gospel Encounter"}, "bishop": []any{"Kofi Asare"},
			"councils": []any{"Tema"}, "activeBacentas": int64(7), "vacationBacentas": int64(0),
		},
	}, nil)

	rows := r.Fetch(context.Background(), def, params)

	want := domain.Rows{
		{"Pastor", "Stream", "Bishop", "Council", "Active Bacentas", "Vacation Bacentas"},
		{"Kwame Mensah", "Anagkazo", "Ama Owusu", "Osu, Labone", "12", "2"},
		{"Yaw Boateng", "Gospel Encounter", "Kofi Asare", "Tema", "7", "0"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("councilList rows mismatch (-want +got):\n%s", diff)
	}
}

func TestReader_Fetch_RowCountIsRecordsPlusHeader(t *testing.T) {
	for _, def := range report.All() {
		t.Run(def.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			g := mockgraph.NewMockRunner(ctrl)
			r := report.NewReader(g, nil, time.Minute)

			records := make([]graph.Record, 5)
			for i := range records {
				records[i] = graph.Record{}
				for _, f := range def.Fields {
					records[i][f] = f
				}
			}
			g.EXPECT().Run(gomock.Any(), def.Query, def.Params(params.CampusName, params.BussingDate)).Return(records, nil)

			rows := r.Fetch(context.Background(), def, params)
			require.Len(t, rows, len(records)+1)
			require.Equal(t, len(records), rows.Records())
			require.Equal(t, def.Header, rows[0])
			for _, row := range rows[1:] {
				// each cell holds its own field name, so order is checked cell by cell
				require.Equal(t, def.Fields, row)
			}
		})
	}
}

func TestReader_Fetch_DatabaseErrorYieldsEmpty(t *testing.T) {
	for _, def := range report.All() {
		t.Run(def.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			g := mockgraph.NewMockRunner(ctrl)
			r := report.NewReader(g, nil, 0)

			g.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

			rows := r.Fetch(context.Background(), def, params)
			require.NotNil(t, rows)
			require.Empty(t, rows)
		})
	}
}

func TestReader_Fetch_EmptyQuerySkipsDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mockgraph.NewMockRunner(ctrl)
	r := report.NewReader(g, nil, 0)

	g.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	rows := r.Fetch(context.Background(), report.Definition{Name: "broken", Query: "  \n"}, params)
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestReader_Fetch_NoRecordsYieldsHeaderOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mockgraph.NewMockRunner(ctrl)
	r := report.NewReader(g, nil, 0)

	def, _ := report.ByName("bussingCost")
	g.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	require.Equal(t, domain.Rows{{"Bussing Cost"}}, r.Fetch(context.Background(), def, params))
}

func TestReader_Fetch_AppliesTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := mockgraph.NewMockRunner(ctrl)
	r := report.NewReader(g, nil, 50*time.Millisecond)

	def, _ := report.ByName("weekendIncome")
	g.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ string, _ map[string]any) ([]graph.Record, error) {
			deadline, ok := ctx.Deadline()
			require.True(t, ok)
			require.WithinDuration(t, time.Now().Add(50*time.Millisecond), deadline, 50*time.Millisecond)

			return []graph.Record{{"value": 1234.5}}, nil
		})

	require.Equal(t, domain.Rows{{"Weekend Income"}, {"1234.5"}}, r.Fetch(context.Background(), def, params))
}

func TestToRows_MissingFieldsAreBlank(t *testing.T) {
	def := report.Definition{Header: []string{"A", "B"}, Fields: []string{"a", "b"}}
	rows := report.ToRows(def, []graph.Record{{"a": "x"}})

	require.Equal(t, domain.Rows{{"A", "B"}, {"x", ""}}, rows)
}

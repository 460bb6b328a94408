package reports_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/reports"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/weekly"
	mockweekly "github.com/firstlovecenter/fl-admin-portal-sub001/internal/weekly/mock"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/storage"
	mockstorage "github.com/firstlovecenter/fl-admin-portal-sub001/pkg/storage/mock"

	"github.com/google/uuid"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

var (
	accra = mustLocation("Africa/Accra")
	// Wednesday 14 October 2026, 09:30 in Accra
	wednesday = time.Date(2026, 10, 14, 9, 30, 0, 0, accra)
)

func mustLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}

	return loc
}

type fixture struct {
	ctrl    *gomock.Controller
	storage *mockstorage.MockStorage
	runner  *mockweekly.MockRunner
	service reports.Service
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := fixture{
		ctrl:    ctrl,
		storage: mockstorage.NewMockStorage(ctrl),
		runner:  mockweekly.NewMockRunner(ctrl),
	}
	f.service = reports.New(f.storage, f.runner, reports.Options{
		CampusName: "Accra",
		Location:   accra,
		Now:        func() time.Time { return wednesday },
	})

	return f
}

// expectWithTx runs the WithTx callback against a MockAllStorage.
func (f fixture) expectWithTx(fn func(tx *mockstorage.MockAllStorage)) {
	f.storage.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(f.ctrl)
			fn(tx)

			return cb(tx)
		},
	)
}

func TestService_Params(t *testing.T) {
	f := newFixture(t)

	require.Equal(t,
		domain.ReportParams{CampusName: "Accra", BussingDate: "2026-10-11"},
		f.service.Params(domain.ReportParams{}))
	require.Equal(t,
		domain.ReportParams{CampusName: "Kumasi", BussingDate: "2026-09-27"},
		f.service.Params(domain.ReportParams{CampusName: "Kumasi", BussingDate: "2026-09-27"}))
}

func TestService_Enqueue(t *testing.T) {
	t.Run("job added", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().
			AddJob(gomock.Any(), reports.JobArgs{CampusName: "Accra", BussingDate: "2026-10-11"}, gomock.Nil()).
			Return(true, nil)

		params, err := f.service.Enqueue(context.Background(), domain.ReportParams{})
		require.NoError(t, err)
		require.Equal(t, "2026-10-11", params.BussingDate)
	})

	t.Run("duplicate is a conflict", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, nil)

		_, err := f.service.Enqueue(context.Background(), domain.ReportParams{})
		require.ErrorIs(t, err, serrors.ErrConflict)
	})

	t.Run("invalid date", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Enqueue(context.Background(), domain.ReportParams{BussingDate: "last sunday"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})

	t.Run("storage error", func(t *testing.T) {
		f := newFixture(t)
		f.storage.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("db down"))

		_, err := f.service.Enqueue(context.Background(), domain.ReportParams{})
		require.ErrorContains(t, err, "db down")
		require.Equal(t, serrors.ErrInternal, serrors.KindOf(err))
	})
}

func TestService_Generate(t *testing.T) {
	params := domain.ReportParams{CampusName: "Accra", BussingDate: "2026-10-11"}
	runID := domain.RunID(uuid.New())
	running := &domain.Run{ID: runID, CampusName: "Accra", BussingDate: "2026-10-11", Status: domain.RunStatusRunning}

	startRun := func(f fixture, abandoned int64) {
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().AbandonRuns(gomock.Any(), "Accra", "2026-10-11", gomock.Any()).Return(abandoned, nil)
			tx.EXPECT().StoreRun(gomock.Any(), domain.Run{
				CampusName:  "Accra",
				BussingDate: "2026-10-11",
				Status:      domain.RunStatusRunning,
			}).Return(running, nil)
		})
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		startRun(f, 1)
		f.runner.EXPECT().Run(gomock.Any(), params).Return(weekly.Result{
			StatusCode: http.StatusOK,
			Reports:    []domain.ReportSummary{{Name: "councilList", Range: "A2:F", Rows: 3}},
			SMSSent:    true,
		})
		f.storage.EXPECT().FinishRun(gomock.Any(), runID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.RunID, u storage.RunUpdates) (*domain.Run, error) {
				require.Equal(t, domain.RunStatusSucceeded, u.Status)
				require.Equal(t, http.StatusOK, *u.StatusCode)
				require.True(t, *u.SMSSent)
				require.Equal(t, map[string]int{"councilList": 3}, u.ReportRows)
				require.Empty(t, *u.LastError)

				return &domain.Run{ID: runID, Status: u.Status, StatusCode: *u.StatusCode}, nil
			})

		run, err := f.service.Generate(context.Background(), params)
		require.NoError(t, err)
		require.Equal(t, domain.RunStatusSucceeded, run.Status)
	})

	t.Run("pipeline failure is stored and returned", func(t *testing.T) {
		f := newFixture(t)
		startRun(f, 0)
		f.runner.EXPECT().Run(gomock.Any(), params).Return(weekly.Result{
			StatusCode: http.StatusInternalServerError,
			Err:        errors.New("could not clear sheet"),
		})
		f.storage.EXPECT().FinishRun(gomock.Any(), runID, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ domain.RunID, u storage.RunUpdates) (*domain.Run, error) {
				require.Equal(t, domain.RunStatusFailed, u.Status)
				require.Equal(t, "could not clear sheet", *u.LastError)

				return &domain.Run{ID: runID, Status: u.Status}, nil
			})

		run, err := f.service.Generate(context.Background(), params)
		require.ErrorContains(t, err, "status 500")
		require.NotNil(t, run)
		require.Equal(t, domain.RunStatusFailed, run.Status)
	})

	t.Run("finish survives canceled context", func(t *testing.T) {
		f := newFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		startRun(f, 0)
		f.runner.EXPECT().Run(gomock.Any(), params).DoAndReturn(
			func(context.Context, domain.ReportParams) weekly.Result {
				cancel()

				return weekly.Result{StatusCode: http.StatusInternalServerError, Err: context.Canceled}
			})
		f.storage.EXPECT().FinishRun(gomock.Any(), runID, gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ domain.RunID, u storage.RunUpdates) (*domain.Run, error) {
				require.NoError(t, ctx.Err())

				return &domain.Run{ID: runID, Status: u.Status}, nil
			})

		_, err := f.service.Generate(ctx, params)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("abandoned while running", func(t *testing.T) {
		f := newFixture(t)
		startRun(f, 0)
		f.runner.EXPECT().Run(gomock.Any(), params).Return(weekly.Result{StatusCode: http.StatusOK})
		f.storage.EXPECT().FinishRun(gomock.Any(), runID, gomock.Any()).Return(nil, nil)

		run, err := f.service.Generate(context.Background(), params)
		require.NoError(t, err)
		require.Equal(t, runID, run.ID)
	})

	t.Run("start failure skips pipeline", func(t *testing.T) {
		f := newFixture(t)
		f.expectWithTx(func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().AbandonRuns(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), nil)
			tx.EXPECT().StoreRun(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
		})

		_, err := f.service.Generate(context.Background(), params)
		require.ErrorContains(t, err, "could not start run")
	})

	t.Run("invalid params", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.Generate(context.Background(), domain.ReportParams{BussingDate: "tomorrow"})
		require.ErrorIs(t, err, serrors.ErrBadRequest)
	})
}

func TestService_RecentRuns(t *testing.T) {
	f := newFixture(t)

	f.storage.EXPECT().RecentRuns(gomock.Any(), "Accra", reports.DefaultRunsLimit).Return([]domain.Run{{CampusName: "Accra"}}, nil)
	runs, err := f.service.RecentRuns(context.Background(), "Accra", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)

	_, err = f.service.RecentRuns(context.Background(), "Accra", reports.MaxRunsLimit+1)
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestService_Run(t *testing.T) {
	f := newFixture(t)
	id := domain.RunID(uuid.New())

	f.storage.EXPECT().RunByID(gomock.Any(), id).Return(nil, nil)
	_, err := f.service.Run(context.Background(), id)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	f.storage.EXPECT().RunByID(gomock.Any(), id).Return(&domain.Run{ID: id}, nil)
	run, err := f.service.Run(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, id, run.ID)
}

func TestJobArgs(t *testing.T) {
	args := reports.NewJobArgs(domain.ReportParams{CampusName: "Accra", BussingDate: "2026-10-11"})
	require.Equal(t, "WeeklyReportJob", args.Kind())
	require.Equal(t, domain.ReportParams{CampusName: "Accra", BussingDate: "2026-10-11"}, args.Params())

	opts := args.InsertOpts()
	require.Equal(t, 1, opts.MaxAttempts)
	require.True(t, opts.UniqueOpts.ByArgs)
	require.NotContains(t, opts.UniqueOpts.ByState, rivertype.JobStateCompleted)
}

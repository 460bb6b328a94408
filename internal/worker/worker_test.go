package worker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/reports"
	mockreports "github.com/firstlovecenter/fl-admin-portal-sub001/internal/reports/mock"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/worker"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

func makeJob(id int64, args reports.JobArgs) *river.Job[reports.JobArgs] {
	return &river.Job[reports.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   args,
	}
}

var accraArgs = reports.JobArgs{CampusName: "Accra", BussingDate: "2026-10-11"} //nolint: gochecknoglobals

func TestWeeklyReportWorker_Work_Success(t *testing.T) {
	svc := mockreports.NewMockService(gomock.NewController(t))
	w := worker.NewWeeklyReportWorker(svc, 10*time.Minute)

	svc.EXPECT().Generate(gomock.Any(), accraArgs.Params()).Return(&domain.Run{
		ID:      domain.RunID(uuid.New()),
		Status:  domain.RunStatusSucceeded,
		SMSSent: true,
	}, nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, accraArgs)))
	require.Equal(t, 10*time.Minute, w.Timeout(makeJob(1, accraArgs)))
}

func TestWeeklyReportWorker_Work_PipelineFailure(t *testing.T) {
	svc := mockreports.NewMockService(gomock.NewController(t))
	w := worker.NewWeeklyReportWorker(svc, 0)

	cause := errors.New("weekly report failed with status 500: could not clear sheet")
	svc.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(&domain.Run{Status: domain.RunStatusFailed}, cause)

	err := w.Work(context.Background(), makeJob(2, accraArgs))
	require.ErrorIs(t, err, cause)

	var cancelErr *river.JobCancelError
	require.False(t, errors.As(err, &cancelErr), "pipeline failures are recorded, not canceled")
}

func TestWeeklyReportWorker_Work_InvalidArgsCancel(t *testing.T) {
	svc := mockreports.NewMockService(gomock.NewController(t))
	w := worker.NewWeeklyReportWorker(svc, 0)

	bad := reports.JobArgs{CampusName: "Accra", BussingDate: "11/10/2026"}
	svc.EXPECT().Generate(gomock.Any(), bad.Params()).
		Return(nil, serrors.With(serrors.ErrBadRequest, "invalid report parameters"))

	err := w.Work(context.Background(), makeJob(3, bad))
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestSchedule(t *testing.T) {
	accra, err := time.LoadLocation("Africa/Accra")
	require.NoError(t, err)

	sched, err := worker.Schedule("0 6 * * 1", accra)
	require.NoError(t, err)

	// Wednesday 2026-10-14 12:00 UTC
	next := sched.Next(time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	require.True(t, next.Equal(time.Date(2026, 10, 19, 6, 0, 0, 0, accra)), "got %s", next)

	_, err = worker.Schedule("every monday", accra)
	require.Error(t, err)
}

func TestSchedule_Location(t *testing.T) {
	lagos, err := time.LoadLocation("Africa/Lagos")
	require.NoError(t, err)

	sched, err := worker.Schedule("0 6 * * 1", lagos)
	require.NoError(t, err)

	next := sched.Next(time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC))
	require.True(t, next.Equal(time.Date(2026, 10, 19, 5, 0, 0, 0, time.UTC)), "got %s", next.UTC())
}

func TestPeriodicJob(t *testing.T) {
	svc := mockreports.NewMockService(gomock.NewController(t))
	sched, err := worker.Schedule("0 6 * * 1", time.UTC)
	require.NoError(t, err)

	require.NotNil(t, worker.PeriodicJob(svc, sched))
}

func TestNewOptions(t *testing.T) {
	var cfg config.Config
	cfg.Report.Timezone = "Africa/Accra"
	cfg.Report.Schedule = "0 6 * * 1"
	cfg.Report.MaxWorkers = 3
	cfg.Report.RunTimeout = 10 * time.Minute

	opts, err := worker.NewOptions(&cfg)
	require.NoError(t, err)
	require.Equal(t, "Africa/Accra", opts.Location.String())
	require.Equal(t, 3, opts.MaxWorkers)

	cfg.Report.Timezone = "Mars/Olympus"
	_, err = worker.NewOptions(&cfg)
	require.Error(t, err)
}

package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/reports"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// WeeklyReportWorker runs the weekly pipeline for one job. Jobs are never
// retried: a failed pipeline is returned as an error so River records it,
// and invalid arguments cancel the job.
type WeeklyReportWorker struct {
	river.WorkerDefaults[reports.JobArgs]

	service    reports.Service
	runTimeout time.Duration
}

func NewWeeklyReportWorker(service reports.Service, runTimeout time.Duration) *WeeklyReportWorker {
	return &WeeklyReportWorker{service: service, runTimeout: runTimeout}
}

// Timeout bounds a whole pipeline run. Zero keeps River's default.
func (w *WeeklyReportWorker) Timeout(*river.Job[reports.JobArgs]) time.Duration {
	return w.runTimeout
}

func (w *WeeklyReportWorker) Work(ctx context.Context, job *river.Job[reports.JobArgs]) error {
	ctx = logger.WithFields(ctx,
		zap.Int64("jobID", job.ID),
		zap.String("campusName", job.Args.CampusName),
		zap.String("bussingDate", job.Args.BussingDate))

	run, err := w.service.Generate(ctx, job.Args.Params())
	if err != nil {
		if errors.Is(err, serrors.ErrBadRequest) {
			logger.Warn(ctx, "invalid weekly report job", zap.Error(err))

			return river.JobCancel(err) //nolint: wrapcheck
		}

		logger.Error(ctx, "weekly report failed", zap.Error(err))

		return fmt.Errorf("could not generate weekly report: %w", err)
	}

	logger.Info(ctx, "weekly report generated",
		zap.Stringer("runID", run.ID),
		zap.Bool("smsSent", run.SMSSent))

	return nil
}

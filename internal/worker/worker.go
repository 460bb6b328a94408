// Package worker runs the River queue that executes weekly report jobs and
// enqueues them on the configured cron schedule.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/reports"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/riverdriver/riverpgxv5"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
)

type Options struct {
	MaxWorkers int
	// Schedule is a five-field cron expression evaluated in Location. An
	// empty schedule disables the periodic job.
	Schedule   string
	Location   *time.Location
	RunTimeout time.Duration
}

func NewOptions(cfg *config.Config) (Options, error) {
	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return Options{}, fmt.Errorf("could not load timezone %q: %w", cfg.Report.Timezone, err)
	}

	return Options{
		MaxWorkers: cfg.Report.MaxWorkers,
		Schedule:   cfg.Report.Schedule,
		Location:   loc,
		RunTimeout: cfg.Report.RunTimeout,
	}, nil
}

type locSchedule struct {
	schedule cron.Schedule
	location *time.Location
}

func (s locSchedule) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.location))
}

// Schedule parses a standard cron expression evaluated in loc.
func Schedule(expr string, loc *time.Location) (river.PeriodicSchedule, error) {
	sched, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, fmt.Errorf("could not parse cron schedule %q: %w", expr, err)
	}
	if loc == nil {
		loc = time.UTC
	}

	return locSchedule{schedule: sched, location: loc}, nil
}

// PeriodicJob enqueues a weekly report for the service's default campus and
// the Sunday preceding each tick.
func PeriodicJob(svc reports.Service, schedule river.PeriodicSchedule) *river.PeriodicJob {
	return river.NewPeriodicJob(schedule, func() (river.JobArgs, *river.InsertOpts) {
		return reports.NewJobArgs(svc.Params(domain.ReportParams{})), nil
	}, nil)
}

// Start creates and starts the River client processing weekly report jobs.
// The client keeps running after ctx is done; callers stop it with Stop, or
// StopAndCancel once the graceful window has passed.
func Start(ctx context.Context, dbPool *pgxpool.Pool, svc reports.Service, opts Options) (*river.Client[pgx.Tx], error) {
	workers := river.NewWorkers()
	river.AddWorker(workers, NewWeeklyReportWorker(svc, opts.RunTimeout))

	var periodicJobs []*river.PeriodicJob
	if opts.Schedule != "" {
		schedule, err := Schedule(opts.Schedule, opts.Location)
		if err != nil {
			return nil, err
		}
		periodicJobs = append(periodicJobs, PeriodicJob(svc, schedule))
		logger.Info(ctx, "weekly report scheduled",
			zap.String("schedule", opts.Schedule),
			zap.Stringer("location", opts.Location))
	}

	maxWorkers := opts.MaxWorkers
	if maxWorkers <= 0 {
		maxWorkers = 1
	}

	riverClient, err := river.NewClient(riverpgxv5.New(dbPool), &river.Config{
		Queues: map[string]river.QueueConfig{
			river.QueueDefault: {MaxWorkers: maxWorkers},
		},
		Workers:      workers,
		PeriodicJobs: periodicJobs,
		Logger:       slog.New(zapslog.NewHandler(logger.Get(ctx).Core())),
	})
	if err != nil {
		return nil, fmt.Errorf("could not create river queue client: %w", err)
	}

	// Cancelling the context given to Start hard-stops River and cancels the
	// jobs in flight, so the client outlives ctx and is stopped through Stop.
	if err := riverClient.Start(context.WithoutCancel(ctx)); err != nil {
		return nil, fmt.Errorf("could not start river queue client: %w", err)
	}

	return riverClient, nil
}

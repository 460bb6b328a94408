// Package reports schedules weekly report runs and keeps their history.
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/weekly"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/storage"

	"go.uber.org/zap"
)

const (
	// DefaultRunsLimit is used when RecentRuns is called with a zero limit.
	DefaultRunsLimit uint = 20
	// MaxRunsLimit caps RecentRuns.
	MaxRunsLimit uint = 100

	abandonedReason = "superseded by a newer run"
)

// Options configure parameter defaults for enqueued and generated reports.
type Options struct {
	// CampusName is used when a request leaves the campus empty.
	CampusName string
	// Location is the campus time zone; the default bussing date is the last
	// Sunday in this zone.
	Location *time.Location
	// Now returns the current time. Nil means time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	loc, err := time.LoadLocation(cfg.Report.Timezone)
	if err != nil {
		return Options{}, fmt.Errorf("could not load report timezone %q: %w", cfg.Report.Timezone, err)
	}

	return Options{
		CampusName: cfg.Report.CampusName,
		Location:   loc,
	}, nil
}

type service struct {
	options Options
	storage storage.Storage
	runner  weekly.Runner
}

// Params fills the empty fields of partial with the configured campus and
// the last Sunday in the campus time zone.
func (o Options) Params(partial domain.ReportParams) domain.ReportParams {
	if partial.CampusName == "" {
		partial.CampusName = o.CampusName
	}
	if partial.BussingDate == "" {
		now := time.Now
		if o.Now != nil {
			now = o.Now
		}
		loc := o.Location
		if loc == nil {
			loc = time.UTC
		}
		partial.BussingDate = domain.LastSunday(now().In(loc))
	}

	return partial
}

func (s service) Params(partial domain.ReportParams) domain.ReportParams {
	return s.options.Params(partial)
}

// Enqueue inserts a weekly report job and returns the resolved parameters.
// A job already queued or running for the same campus and date is a conflict.
func (s service) Enqueue(ctx context.Context, params domain.ReportParams) (domain.ReportParams, error) {
	params = s.Params(params)
	if err := params.Validate(); err != nil {
		return params, serrors.Wrap(serrors.ErrBadRequest, err, "invalid report parameters")
	}

	added, err := s.storage.AddJob(ctx, NewJobArgs(params), nil)
	if err != nil {
		return params, fmt.Errorf("could not enqueue weekly report: %w", err)
	}
	if !added {
		return params, serrors.With(serrors.ErrConflict,
			"weekly report for %s on %s is already queued", params.CampusName, params.BussingDate)
	}

	logger.Info(ctx, "weekly report enqueued",
		zap.String("campus", params.CampusName),
		zap.String("bussingDate", params.BussingDate))

	return params, nil
}

// Generate records a run, executes the pipeline and stores its outcome. The
// returned error is non-nil when the pipeline did not write the sheet; the
// run is returned either way once it has been stored.
func (s service) Generate(ctx context.Context, params domain.ReportParams) (*domain.Run, error) {
	params = s.Params(params)
	if err := params.Validate(); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid report parameters")
	}

	var run *domain.Run
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		n, err := tx.AbandonRuns(ctx, params.CampusName, params.BussingDate, abandonedReason)
		if err != nil {
			return fmt.Errorf("could not abandon stale runs: %w", err)
		}
		if n > 0 {
			logger.Warn(ctx, "abandoned stale runs", zap.Int64("count", n))
		}

		run, err = tx.StoreRun(ctx, domain.Run{
			CampusName:  params.CampusName,
			BussingDate: params.BussingDate,
			Status:      domain.RunStatusRunning,
		})
		if err != nil {
			return fmt.Errorf("could not store run: %w", err)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("could not start run: %w", err)
	}

	ctx = logger.WithFields(ctx, zap.Stringer("runID", run.ID))
	res := s.runner.Run(ctx, params)

	updates := storage.RunUpdates{
		Status:     domain.RunStatusSucceeded,
		StatusCode: &res.StatusCode,
		SMSSent:    &res.SMSSent,
		ReportRows: res.ReportRows(),
	}
	lastError := ""
	if res.Err != nil {
		updates.Status = domain.RunStatusFailed
		lastError = res.Err.Error()
	}
	updates.LastError = &lastError

	// the run outcome is stored even when ctx expired during the pipeline
	finished, err := s.storage.FinishRun(context.WithoutCancel(ctx), run.ID, updates)
	if err != nil {
		return run, fmt.Errorf("could not finish run: %w", err)
	}
	if finished == nil {
		logger.Warn(ctx, "run was abandoned before it finished")
		finished = run
	}

	if res.Err != nil {
		return finished, fmt.Errorf("weekly report failed with status %d: %w", res.StatusCode, res.Err)
	}

	return finished, nil
}

// RecentRuns lists the newest runs of campusName, or of every campus when it
// is empty.
func (s service) RecentRuns(ctx context.Context, campusName string, limit uint) ([]domain.Run, error) {
	if limit == 0 {
		limit = DefaultRunsLimit
	}
	if limit > MaxRunsLimit {
		return nil, serrors.With(serrors.ErrBadRequest, "limit must not exceed %d", MaxRunsLimit)
	}

	runs, err := s.storage.RecentRuns(ctx, campusName, limit)
	if err != nil {
		return nil, fmt.Errorf("could not get recent runs: %w", err)
	}

	return runs, nil
}

func (s service) Run(ctx context.Context, id domain.RunID) (*domain.Run, error) {
	run, err := s.storage.RunByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get run: %w", err)
	}
	if run == nil {
		return nil, serrors.With(serrors.ErrNotFound, "run not found")
	}

	return run, nil
}

// New creates a Service storing runs in storage and executing them with runner.
func New(storage storage.Storage, runner weekly.Runner, options Options) Service {
	return &service{
		options: options,
		storage: storage,
		runner:  runner,
	}
}

// Package weekly runs the campus weekly report: it reads every report from the
// graph database, rewrites the summary sheet and sends an SMS when done.
package weekly

import (
	"context"
	"fmt"
	"strings"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/config"
	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/report"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/metrics"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/notifier"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/spreadsheet"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const tracerName = "github.com/firstlovecenter/fl-admin-portal-sub001/internal/weekly"

// Options configure where the pipeline writes and whom it notifies.
type Options struct {
	// SheetName is the tab that is cleared and rewritten on every run.
	SheetName string
	// Recipients receive the completion SMS. No SMS is sent when empty.
	Recipients []string
	// Sender is the SMS sender id.
	Sender string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SheetName:  cfg.Sheets.SheetName,
		Recipients: cfg.Notifier.Recipients,
		Sender:     cfg.Notifier.Sender,
	}
}

// Pipeline implements Runner.
type Pipeline struct {
	options     Options
	reader      *report.Reader
	definitions []report.Definition
	sheets      spreadsheet.Writer
	notifier    notifier.Client
	recorder    *metrics.Recorder
	tracer      trace.Tracer
}

var _ Runner = (*Pipeline)(nil)

// New creates a Pipeline over the full report catalogue.
func New(reader *report.Reader,
	sheets spreadsheet.Writer,
	notifier notifier.Client,
	recorder *metrics.Recorder,
	options Options) *Pipeline {
	return &Pipeline{
		options:     options,
		reader:      reader,
		definitions: report.All(),
		sheets:      sheets,
		notifier:    notifier,
		recorder:    recorder,
		tracer:      otel.Tracer(tracerName),
	}
}

// Run executes the pipeline for params.
//
// Reads never fail the run; a report whose query fails contributes no rows.
// Once every read has returned the sheet is cleared and each non-empty report
// is written to its range. A clear or write failure yields a 500. The SMS is
// best effort and does not change the status.
func (p *Pipeline) Run(ctx context.Context, params domain.ReportParams) Result {
	ctx, span := p.tracer.Start(ctx, "weekly.Run", trace.WithAttributes(
		attribute.String("campus", params.CampusName),
		attribute.String("bussing_date", params.BussingDate)))
	defer span.End()
	ctx = logger.WithFields(ctx,
		zap.String("campus", params.CampusName),
		zap.String("bussingDate", params.BussingDate))

	res := p.run(ctx, params)

	p.recorder.CountRun(ctx, params.CampusName, res.StatusCode)
	span.SetAttributes(attribute.Int("status_code", res.StatusCode))
	if res.Err != nil {
		span.RecordError(res.Err)
		span.SetStatus(codes.Error, res.Err.Error())
		logger.Error(ctx, "weekly report failed", zap.Error(res.Err))
	} else {
		logger.Info(ctx, "weekly report written", zap.Bool("smsSent", res.SMSSent))
	}

	return res
}

func (p *Pipeline) run(ctx context.Context, params domain.ReportParams) Result {
	results := p.fetchAll(ctx, params)
	summaries := make([]domain.ReportSummary, len(p.definitions))
	for i, def := range p.definitions {
		summaries[i] = domain.ReportSummary{Name: def.Name, Range: def.Range, Rows: len(results[i])}
	}

	if err := ctx.Err(); err != nil {
		return failed(fmt.Errorf("could not read reports: %w", err), summaries)
	}

	if err := p.clear(ctx); err != nil {
		return failed(err, summaries)
	}

	if err := p.writeAll(ctx, results); err != nil {
		return failed(err, summaries)
	}

	msg := fmt.Sprintf("%s Campus weekly report for %s has been updated", params.CampusName, params.BussingDate)
	sent := p.notify(ctx, msg)

	return succeeded(msg, summaries, sent)
}

// fetchAll runs every report concurrently and waits for all of them.
func (p *Pipeline) fetchAll(ctx context.Context, params domain.ReportParams) []domain.Rows {
	ctx, span := p.tracer.Start(ctx, "weekly.fetchAll")
	defer span.End()

	results := make([]domain.Rows, len(p.definitions))

	var g errgroup.Group
	for i, def := range p.definitions {
		g.Go(func() error {
			results[i] = p.reader.Fetch(ctx, def, params)

			return nil
		})
	}
	_ = g.Wait() // Fetch does not fail

	return results
}

func (p *Pipeline) clear(ctx context.Context) error {
	ctx, span := p.tracer.Start(ctx, "weekly.clear")
	defer span.End()

	if err := p.sheets.Clear(ctx, p.options.SheetName); err != nil {
		span.RecordError(err)

		return fmt.Errorf("could not clear sheet %q: %w", p.options.SheetName, err)
	}

	return nil
}

// writeAll writes each non-empty report to its range concurrently.
func (p *Pipeline) writeAll(ctx context.Context, results []domain.Rows) error {
	ctx, span := p.tracer.Start(ctx, "weekly.writeAll")
	defer span.End()

	g, gctx := errgroup.WithContext(ctx)
	for i, def := range p.definitions {
		rows := results[i]
		if len(rows) == 0 {
			logger.Warn(ctx, "report is empty, leaving range blank", zap.String("report", def.Name))

			continue
		}

		g.Go(func() error {
			if err := p.sheets.Write(gctx, p.options.SheetName, def.Range, rows); err != nil {
				return fmt.Errorf("could not write %s to %s: %w", def.Name, def.Range, err)
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)

		return err
	}

	return nil
}

// notify sends the completion SMS and reports whether it was accepted.
func (p *Pipeline) notify(ctx context.Context, msg string) bool {
	if len(p.options.Recipients) == 0 {
		logger.Info(ctx, "no sms recipients configured, skipping notification")

		return false
	}

	err := p.notifier.SendSMS(ctx, notifier.SMS{
		Recipients: p.options.Recipients,
		Sender:     p.options.Sender,
		Message:    msg,
	})
	p.recorder.CountSMS(ctx, err == nil)
	if err != nil {
		logger.Error(ctx, "could not send sms",
			zap.Error(err),
			zap.String("recipients", strings.Join(p.options.Recipients, ",")))

		return false
	}

	return true
}

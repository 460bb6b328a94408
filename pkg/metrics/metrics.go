// Package metrics exposes the pipeline's OpenTelemetry instruments and the
// Prometheus-backed meter provider that serves them on /metrics.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets are histogram boundaries in seconds, shared by latency metrics.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60} //nolint: gochecknoglobals

const meterName = "github.com/firstlovecenter/fl-admin-portal-sub001/report"

// Setup registers an OpenTelemetry Prometheus exporter on registerer and
// installs the resulting meter provider as the global one.
func Setup(registerer prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel prometheus exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Recorder records report pipeline measurements. A nil *Recorder is valid and
// records nothing.
type Recorder struct {
	queryDuration metric.Float64Histogram
	reportRows    metric.Int64Histogram
	runs          metric.Int64Counter
	sms           metric.Int64Counter
}

// NewRecorder creates the pipeline instruments on mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	queryDuration, err := meter.Float64Histogram("report.query.duration",
		metric.WithDescription("Duration of one report query against the graph database."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create query duration histogram: %w", err)
	}

	reportRows, err := meter.Int64Histogram("report.rows",
		metric.WithDescription("Rows produced by one report, header included."),
		metric.WithExplicitBucketBoundaries(0, 1, 2, 5, 10, 25, 50, 100, 250))
	if err != nil {
		return nil, fmt.Errorf("could not create report rows histogram: %w", err)
	}

	runs, err := meter.Int64Counter("report.pipeline.runs",
		metric.WithDescription("Weekly pipeline runs by response status code."))
	if err != nil {
		return nil, fmt.Errorf("could not create runs counter: %w", err)
	}

	sms, err := meter.Int64Counter("report.sms.notifications",
		metric.WithDescription("SMS notifications by outcome."))
	if err != nil {
		return nil, fmt.Errorf("could not create sms counter: %w", err)
	}

	return &Recorder{
		queryDuration: queryDuration,
		reportRows:    reportRows,
		runs:          runs,
		sms:           sms,
	}, nil
}

// ObserveQuery records how long report's query took and whether it failed.
func (r *Recorder) ObserveQuery(ctx context.Context, report string, took time.Duration, failed bool) {
	if r == nil {
		return
	}

	r.queryDuration.Record(ctx, took.Seconds(), metric.WithAttributes(
		attribute.String("report", report),
		attribute.Bool("failed", failed)))
}

// ObserveRows records the number of rows report produced.
func (r *Recorder) ObserveRows(ctx context.Context, report string, rows int) {
	if r == nil {
		return
	}

	r.reportRows.Record(ctx, int64(rows), metric.WithAttributes(attribute.String("report", report)))
}

// CountRun counts a finished pipeline run.
func (r *Recorder) CountRun(ctx context.Context, campus string, statusCode int) {
	if r == nil {
		return
	}

	r.runs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("campus", campus),
		attribute.String("status_code", strconv.Itoa(statusCode))))
}

// CountSMS counts an SMS notification attempt.
func (r *Recorder) CountSMS(ctx context.Context, sent bool) {
	if r == nil {
		return
	}

	r.sms.Add(ctx, 1, metric.WithAttributes(attribute.Bool("sent", sent)))
}

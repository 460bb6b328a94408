// Package report holds the weekly report catalogue and turns graph records
// into spreadsheet rows.
package report

import (
	"context"
	"strings"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/graph"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/logger"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/metrics"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/serrors"

	"go.uber.org/zap"
)

// Reader runs report definitions against the graph database.
type Reader struct {
	graph    graph.Runner
	recorder *metrics.Recorder
	// timeout bounds each query; zero leaves the caller's deadline alone.
	timeout time.Duration
}

// NewReader returns a Reader sharing g across every report it fetches.
func NewReader(g graph.Runner, recorder *metrics.Recorder, timeout time.Duration) *Reader {
	return &Reader{graph: g, recorder: recorder, timeout: timeout}
}

// Fetch runs def and returns its header row followed by one row per record.
//
// Fetch never fails: an empty query or a database error is logged and yields
// an empty result, so one broken report degrades only its own columns.
func (r *Reader) Fetch(ctx context.Context, def Definition, params domain.ReportParams) domain.Rows {
	ctx = logger.WithFields(ctx, zap.String("report", def.Name))

	if strings.TrimSpace(def.Query) == "" {
		logger.Error(ctx, "skipping report", zap.Error(serrors.With(serrors.ErrInvalidQuery, "query is empty")))

		return domain.Rows{}
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	start := time.Now()
	records, err := r.graph.Run(ctx, def.Query, def.Params(params.CampusName, params.BussingDate))
	r.recorder.ObserveQuery(ctx, def.Name, time.Since(start), err != nil)
	if err != nil {
		logger.Error(ctx, "could not run report query", zap.Error(err))

		return domain.Rows{}
	}

	rows := ToRows(def, records)
	r.recorder.ObserveRows(ctx, def.Name, len(rows))
	logger.Debug(ctx, "report fetched", zap.Int("records", rows.Records()), zap.Duration("took", time.Since(start)))

	return rows
}

// ToRows renders records as def's header plus one row per record with the
// fields in header order. Missing keys become empty cells.
func ToRows(def Definition, records []graph.Record) domain.Rows {
	rows := make(domain.Rows, 0, len(records)+1)
	rows = append(rows, append([]string(nil), def.Header...))

	for _, record := range records {
		row := make([]string, len(def.Fields))
		for i, field := range def.Fields {
			row[i] = graph.FormatValue(record[field])
		}
		rows = append(rows, row)
	}

	return rows
}

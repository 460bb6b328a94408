package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	runsTable = "report_runs"
)

func (p *PgSQL) StoreRun(ctx context.Context, run domain.Run) (*domain.Run, error) {
	var row PgRun
	if err := row.FromDomain(run); err != nil {
		return nil, err
	}

	var stored PgRun
	found, err := p.Builder.Insert(runsTable).
		Rows(row).
		Returning(&PgRun{}).
		Executor().ScanStructContext(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("could not store run into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store run into pg: no row returned")
	}

	return stored.ToDomain()
}

// FinishRun sets the final fields of a RUNNING run and stamps finished_at.
func (p *PgSQL) FinishRun(ctx context.Context, id domain.RunID, updates storage.RunUpdates) (*domain.Run, error) {
	rec := goqu.Record{
		"status":      string(updates.Status),
		"finished_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.StatusCode != nil {
		rec["status_code"] = *updates.StatusCode
	}
	if updates.SMSSent != nil {
		rec["sms_sent"] = *updates.SMSSent
	}
	if updates.ReportRows != nil {
		b, err := json.Marshal(updates.ReportRows)
		if err != nil {
			return nil, fmt.Errorf("could not marshal report rows: %w", err)
		}

		rec["report_rows"] = b
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgRun
	found, err := p.Builder.Update(runsTable).
		Set(rec).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("status").Eq(string(domain.RunStatusRunning)),
		).
		Returning(&PgRun{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not finish run in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) AbandonRuns(ctx context.Context, campusName, bussingDate, reason string) (int64, error) {
	res, err := p.Builder.Update(runsTable).
		Set(goqu.Record{
			"status":      string(domain.RunStatusFailed),
			"last_error":  reason,
			"finished_at": goqu.L("CURRENT_TIMESTAMP"),
		}).
		Where(
			goqu.I("campus_name").Eq(campusName),
			goqu.I("bussing_date").Eq(bussingDate),
			goqu.I("status").Eq(string(domain.RunStatusRunning)),
		).
		Executor().ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("could not abandon runs in pg: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("could not count abandoned runs: %w", err)
	}

	return n, nil
}

// RecentRuns returns up to limit runs ordered by created_at DESC, id DESC.
func (p *PgSQL) RecentRuns(ctx context.Context, campusName string, limit uint) ([]domain.Run, error) {
	ds := p.Builder.From(runsTable).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit)
	if campusName != "" {
		ds = ds.Where(goqu.I("campus_name").Eq(campusName))
	}

	var rows []PgRun
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch recent runs from pg: %w", err)
	}

	return pgRunsToDomain(rows)
}

func (p *PgSQL) RunByID(ctx context.Context, id domain.RunID) (*domain.Run, error) {
	var row PgRun
	found, err := p.Builder.From(runsTable).
		Where(goqu.I("id").Eq(uuid.UUID(id))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch run by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

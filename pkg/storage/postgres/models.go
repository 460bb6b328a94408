package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"

	"github.com/google/uuid"
)

// PgRun is the report_runs row.
type PgRun struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	CampusName  string          `db:"campus_name"`
	BussingDate time.Time       `db:"bussing_date"`
	Status      string          `db:"status"`
	StatusCode  int             `db:"status_code"`
	SMSSent     bool            `db:"sms_sent"`
	ReportRows  json.RawMessage `db:"report_rows"`
	LastError   sql.NullString  `db:"last_error"`

	CreatedAt  time.Time    `db:"created_at"  goqu:"skipinsert"`
	FinishedAt sql.NullTime `db:"finished_at"`
}

func (p *PgRun) ToDomain() (*domain.Run, error) {
	var reportRows map[string]int
	if len(p.ReportRows) > 0 {
		if err := json.Unmarshal(p.ReportRows, &reportRows); err != nil {
			return nil, fmt.Errorf("could not unmarshal report rows: %w", err)
		}
	}

	return &domain.Run{
		ID:          domain.RunID(p.ID),
		CampusName:  p.CampusName,
		BussingDate: p.BussingDate.Format(domain.BussingDateLayout),
		Status:      domain.RunStatus(p.Status),
		StatusCode:  p.StatusCode,
		SMSSent:     p.SMSSent,
		ReportRows:  reportRows,
		LastError:   p.LastError.String,
		CreatedAt:   p.CreatedAt,
		FinishedAt:  p.FinishedAt.Time,
	}, nil
}

func (p *PgRun) FromDomain(run domain.Run) error {
	bussingDate, err := time.Parse(domain.BussingDateLayout, run.BussingDate)
	if err != nil {
		return fmt.Errorf("could not parse bussing date: %w", err)
	}

	reportRows := run.ReportRows
	if reportRows == nil {
		reportRows = map[string]int{}
	}
	rows, err := json.Marshal(reportRows)
	if err != nil {
		return fmt.Errorf("could not marshal report rows: %w", err)
	}

	*p = PgRun{
		ID:          uuid.UUID(run.ID),
		CampusName:  run.CampusName,
		BussingDate: bussingDate,
		Status:      string(run.Status),
		StatusCode:  run.StatusCode,
		SMSSent:     run.SMSSent,
		ReportRows:  rows,
		LastError: sql.NullString{
			String: run.LastError,
			Valid:  run.LastError != "",
		},
		CreatedAt: run.CreatedAt,
		FinishedAt: sql.NullTime{
			Time:  run.FinishedAt,
			Valid: !run.FinishedAt.IsZero(),
		},
	}

	return nil
}

func pgRunsToDomain(runs []PgRun) ([]domain.Run, error) {
	out := make([]domain.Run, 0, len(runs))
	for _, run := range runs {
		d, err := run.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}

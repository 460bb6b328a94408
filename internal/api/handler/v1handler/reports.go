package v1handler

import (
	"context"

	"github.com/firstlovecenter/fl-admin-portal-sub001/internal/api/specs/v1specs"
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"

	"github.com/google/uuid"
)

// TriggerWeekly enqueues a weekly report. Both body fields are optional.
func (h Handler) TriggerWeekly(ctx context.Context, req v1specs.OptTriggerRequest) (*v1specs.TriggerResponse, error) {
	var params domain.ReportParams
	if body, ok := req.Get(); ok {
		params.CampusName = body.CampusName.Or("")
		params.BussingDate = body.BussingDate.Or("")
	}

	params, err := h.deps.Reports.Enqueue(ctx, params)
	if err != nil {
		return nil, err
	}

	return &v1specs.TriggerResponse{
		Queued:      true,
		CampusName:  params.CampusName,
		BussingDate: params.BussingDate,
	}, nil
}

func (h Handler) ListRuns(ctx context.Context, params v1specs.ListRunsParams) (*v1specs.RunList, error) {
	runs, err := h.deps.Reports.RecentRuns(ctx, params.Campus.Or(""), uint(params.Limit.Or(0))) //nolint: gosec
	if err != nil {
		return nil, err
	}

	res := &v1specs.RunList{Runs: make([]v1specs.Run, 0, len(runs))}
	for _, run := range runs {
		res.Runs = append(res.Runs, DomainRunToV1Specs(run))
	}

	return res, nil
}

func (h Handler) GetRun(ctx context.Context, params v1specs.GetRunParams) (*v1specs.Run, error) {
	run, err := h.deps.Reports.Run(ctx, domain.RunID(params.ID))
	if err != nil {
		return nil, err
	}

	res := DomainRunToV1Specs(*run)

	return &res, nil
}

// DomainRunToV1Specs converts a run for the API. Timestamps are reported in
// UTC and empty optional fields are left unset.
func DomainRunToV1Specs(run domain.Run) v1specs.Run {
	res := v1specs.Run{
		ID:          uuid.UUID(run.ID),
		CampusName:  run.CampusName,
		BussingDate: run.BussingDate,
		Status:      v1specs.RunStatus(run.Status),
		StatusCode:  run.StatusCode,
		SmsSent:     run.SMSSent,
		ReportRows:  v1specs.RunReportRows(run.ReportRows),
		CreatedAt:   run.CreatedAt.UTC(),
	}
	if res.ReportRows == nil {
		res.ReportRows = v1specs.RunReportRows{}
	}
	if run.LastError != "" {
		res.LastError = v1specs.NewOptString(run.LastError)
	}
	if !run.FinishedAt.IsZero() {
		res.FinishedAt.SetTo(run.FinishedAt.UTC())
	}

	return res
}

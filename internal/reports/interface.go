package reports

import (
	"context"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
)

//go:generate mockgen -package mockreports -source=interface.go -destination=mock/mockreports.go *
type Service interface {
	Params(partial domain.ReportParams) domain.ReportParams
	Enqueue(ctx context.Context, params domain.ReportParams) (domain.ReportParams, error)
	Generate(ctx context.Context, params domain.ReportParams) (*domain.Run, error)
	RecentRuns(ctx context.Context, campusName string, limit uint) ([]domain.Run, error)
	Run(ctx context.Context, id domain.RunID) (*domain.Run, error)
}

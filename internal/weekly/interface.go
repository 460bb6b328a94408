package weekly

import (
	"context"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
)

// Runner executes the weekly report pipeline once.
//
//go:generate mockgen -package mockweekly -source=interface.go -destination=mock/mockweekly.go *
type Runner interface {
	// Run reads every report, rewrites the sheet and notifies recipients. It
	// never returns a Go error; failures are reported through Result.
	Run(ctx context.Context, params domain.ReportParams) Result
}

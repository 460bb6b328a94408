package storage

import (
	"context"

	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"
)

// RunUpdates are the fields written when a run finishes. Nil pointers and a
// nil map leave the stored value untouched.
type RunUpdates struct {
	Status     domain.RunStatus
	StatusCode *int
	SMSSent    *bool
	ReportRows map[string]int
	// LastError set to an empty string clears the stored error.
	LastError *string
}

// RunStorage persists the history of weekly pipeline runs.
type RunStorage interface {
	// StoreRun inserts run and returns it with generated fields filled in.
	StoreRun(ctx context.Context, run domain.Run) (*domain.Run, error)
	// FinishRun applies updates to a running run, stamps finished_at and
	// returns the updated row. It returns nil when no running run has that id.
	FinishRun(ctx context.Context, id domain.RunID, updates RunUpdates) (*domain.Run, error)
	// AbandonRuns fails every run of the campus and bussing date that is still
	// marked running, returning how many were changed.
	AbandonRuns(ctx context.Context, campusName, bussingDate, reason string) (int64, error)
	// RecentRuns lists the newest runs first. An empty campusName matches every
	// campus.
	RecentRuns(ctx context.Context, campusName string, limit uint) ([]domain.Run, error)
	// RunByID returns nil when the run does not exist.
	RunByID(ctx context.Context, id domain.RunID) (*domain.Run, error)
}

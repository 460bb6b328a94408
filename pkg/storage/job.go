package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage inserts background jobs into the queue backend.
type JobStorage interface {
	// AddJob enqueues a job, joining the surrounding transaction when there is
	// one. It returns false when River skipped the insert as a duplicate of a
	// unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}

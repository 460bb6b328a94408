package reports

import (
	"github.com/firstlovecenter/fl-admin-portal-sub001/pkg/domain"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// JobKind is the River kind of the weekly report job.
const JobKind = "WeeklyReportJob"

// JobArgs are the arguments of a weekly report job. Both fields take part in
// the uniqueness key so a campus has at most one live job per bussing date.
type JobArgs struct {
	CampusName  string `json:"campusName"  river:"unique"`
	BussingDate string `json:"bussingDate" river:"unique"`
}

// Kind returns the River job kind used to register and dispatch the worker.
func (args JobArgs) Kind() string { return JobKind }

// InsertOpts disables retries: a failed run is reported, not repeated.
// Completed jobs are left out of the unique states so a report can be
// regenerated for a date once the previous job finished.
func (args JobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: 1,
		UniqueOpts: river.UniqueOpts{
			ByArgs: true,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}

// Params returns the pipeline parameters carried by the job.
func (args JobArgs) Params() domain.ReportParams {
	return domain.ReportParams{CampusName: args.CampusName, BussingDate: args.BussingDate}
}

// NewJobArgs builds job arguments from params.
func NewJobArgs(params domain.ReportParams) JobArgs {
	return JobArgs{CampusName: params.CampusName, BussingDate: params.BussingDate}
}

package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunID uniquely identifies a pipeline run.
type RunID uuid.UUID

func (id RunID) String() string { return uuid.UUID(id).String() }

// RunStatus is the lifecycle state of a pipeline run.
type RunStatus string

const (
	// RunStatusRunning marks a run whose side effects are in progress.
	RunStatusRunning RunStatus = "RUNNING"
	// RunStatusSucceeded marks a run that cleared and wrote the sheet.
	RunStatusSucceeded RunStatus = "SUCCEEDED"
	// RunStatusFailed marks a run that stopped before or during sheet writes.
	RunStatusFailed RunStatus = "FAILED"
)

// Run records one execution of the weekly pipeline.
type Run struct {
	ID RunID `json:"id"`

	CampusName  string    `json:"campusName"`
	BussingDate string    `json:"bussingDate"`
	Status      RunStatus `json:"status"`
	// StatusCode mirrors the handler response (200 or 500); zero while running.
	StatusCode int  `json:"statusCode"`
	SMSSent    bool `json:"smsSent"`
	// ReportRows maps report name to rows written (header included).
	ReportRows map[string]int `json:"reportRows,omitempty"`
	LastError  string         `json:"lastError,omitempty"`

	CreatedAt  time.Time `json:"createdAt"`
	FinishedAt time.Time `json:"finishedAt,omitzero"`
}

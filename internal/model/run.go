package model

import "time"

// RunStatus represents the current state of a report-generation run.
type RunStatus string

const (
	RunStatusQueued   RunStatus = "queued"
	RunStatusComplete RunStatus = "complete"
	RunStatusFailed   RunStatus = "failed"
)

// ReportRun records one report-generation request and its outcome.
type ReportRun struct {
	ID        string      `json:"id"`
	AuditName string      `json:"audit_name"`
	Status    RunStatus   `json:"status"`
	Report    *ReportData `json:"report,omitempty"`
	Error     string      `json:"error,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

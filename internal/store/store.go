// Package store persists report-generation runs.
package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/wattwise-group/audit-cli/internal/model"
)

// ErrNotFound is returned when a run ID does not exist.
var ErrNotFound = eris.New("store: run not found")

// RunFilter specifies criteria for listing runs.
type RunFilter struct {
	Status model.RunStatus `json:"status,omitempty"`
	Limit  int             `json:"limit,omitempty"`
	Offset int             `json:"offset,omitempty"`
}

// Store defines the persistence interface for report runs.
type Store interface {
	CreateRun(ctx context.Context, auditName string) (*model.ReportRun, error)
	CompleteRun(ctx context.Context, runID string, report *model.ReportData) error
	FailRun(ctx context.Context, runID string, cause string) error
	GetRun(ctx context.Context, runID string) (*model.ReportRun, error)
	ListRuns(ctx context.Context, filter RunFilter) ([]model.ReportRun, error)

	Migrate(ctx context.Context) error
	Close() error
}

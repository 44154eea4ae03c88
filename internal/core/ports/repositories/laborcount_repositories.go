package repositories

import (
	"context"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// LaborCountReader defines read operations for labor count snapshots
type LaborCountReader interface {
	// ListLaborCountsByEmployer retrieves all snapshots for an employer,
	// most recent period first.
	ListLaborCountsByEmployer(ctx context.Context, employerID string) ([]domain.LaborCountRecord, error)

	// ListRecentLaborCounts retrieves the most recent `window` monthly
	// snapshots for an employer, most recent period first.
	ListRecentLaborCounts(ctx context.Context, employerID string, window int) ([]domain.LaborCountRecord, error)
}

// LaborCountWriter defines write operations for labor count snapshots
type LaborCountWriter interface {
	// UpsertLaborCount inserts the snapshot, or replaces the count if a row
	// for the same employer and period already exists.
	UpsertLaborCount(ctx context.Context, record domain.LaborCountRecord) error
}

// LaborCountRepositoryFacade combines all labor-count repository interfaces
type LaborCountRepositoryFacade interface {
	LaborCountReader
	LaborCountWriter
}

package repositories

import (
	"context"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// EmployerReader defines read operations for employer data
type EmployerReader interface {
	// FindEmployerByID retrieves a specific employer by its unique identifier.
	FindEmployerByID(ctx context.Context, employerID string) (*domain.Employer, error)

	// ListEmployers retrieves a paginated list of employers.
	ListEmployers(ctx context.Context, limit int, offset int) ([]domain.Employer, error)

	// ListEmployerIDs retrieves the IDs of all employers. Used by the
	// reconciliation pass over cached quota totals.
	ListEmployerIDs(ctx context.Context) ([]string, error)
}

// EmployerWriter defines write operations for employer data
type EmployerWriter interface {
	// SaveEmployer persists a new employer.
	SaveEmployer(ctx context.Context, employer domain.Employer) error
}

// EmployerRepositoryFacade combines all employer-related repository interfaces
type EmployerRepositoryFacade interface {
	EmployerReader
	EmployerWriter
}

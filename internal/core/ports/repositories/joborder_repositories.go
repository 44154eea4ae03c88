package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// JobOrderReader defines read operations for job order data
type JobOrderReader interface {
	// FindJobOrderByID retrieves a specific job order by its unique identifier.
	FindJobOrderByID(ctx context.Context, jobOrderID string) (*domain.JobOrder, error)

	// ListJobOrdersByEmployer retrieves all job orders for an employer, newest first.
	ListJobOrdersByEmployer(ctx context.Context, employerID string) ([]domain.JobOrder, error)
}

// JobOrderWriter defines write operations for job order data
type JobOrderWriter interface {
	// SaveJobOrder persists a new job order.
	SaveJobOrder(ctx context.Context, jobOrder domain.JobOrder) error

	// SetCertificate records the futility certificate number obtained after
	// the statutory waiting period.
	SetCertificate(ctx context.Context, jobOrderID string, certificateNumber string, userID string, now time.Time) error

	// AddDomesticHires increments the job order's success count. Fails with
	// ErrConflict when the increment would exceed the vacancy count.
	AddDomesticHires(ctx context.Context, jobOrderID string, hired int, userID string, now time.Time) error
}

// JobOrderTransactionSupport defines operations invoked inside another
// repository's transaction. The permit ledger completes a job order in the
// same transaction that inserts the linked permit.
type JobOrderTransactionSupport interface {
	// CompleteJobOrderInTx transitions the job order ACTIVE -> COMPLETED.
	// Fails with ErrConflict when the job order is not active.
	CompleteJobOrderInTx(ctx context.Context, tx pgx.Tx, jobOrderID string, userID string, now time.Time) error
}

// JobOrderRepositoryFacade combines all job-order repository interfaces
type JobOrderRepositoryFacade interface {
	JobOrderReader
	JobOrderWriter
}

// JobOrderRepositoryWithTx extends the facade with in-transaction support
type JobOrderRepositoryWithTx interface {
	JobOrderRepositoryFacade
	JobOrderTransactionSupport
}

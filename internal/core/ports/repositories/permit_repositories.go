package repositories

import (
	"context"
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// PermitReader defines read operations for the permit ledger
type PermitReader interface {
	// FindPermitByID retrieves a specific permit by its surrogate key.
	FindPermitByID(ctx context.Context, permitID string) (*domain.RecruitmentPermit, error)

	// FindPermitByNumber retrieves a permit by its government-assigned number.
	FindPermitByNumber(ctx context.Context, permitNumber string) (*domain.RecruitmentPermit, error)

	// FindPermitsByEmployer retrieves all permits for an employer, newest first.
	FindPermitsByEmployer(ctx context.Context, employerID string) ([]domain.RecruitmentPermit, error)

	// ListPermitsByEmployer retrieves a paginated list of permits using
	// token-based pagination. Returns the permits, a token for the next page,
	// and an error.
	ListPermitsByEmployer(ctx context.Context, employerID string, limit int, nextToken *string) ([]domain.RecruitmentPermit, *string, error)
}

// EntryReader defines read operations for entry realizations
type EntryReader interface {
	// ListEntriesByPermit retrieves all entry realizations recorded against a
	// permit, oldest first.
	ListEntriesByPermit(ctx context.Context, permitID string) ([]domain.EntryPermit, error)

	// SumEntriesByPermitIDs returns the authoritative used figure per permit:
	// the sum of worker counts over each permit's entry rows. Permits with no
	// entries map to zero.
	SumEntriesByPermitIDs(ctx context.Context, permitIDs []string) (map[string]int, error)

	// SumUsedByEmployer returns the total worker count realized across all of
	// an employer's permits.
	SumUsedByEmployer(ctx context.Context, employerID string) (int, error)
}

// PermitWriter defines the mutating ledger operations. Each executes as one
// atomic storage transaction that also recomputes the owning employer's
// cached total quota; partial application is never observable.
type PermitWriter interface {
	// SavePermit inserts the permit row, completes the originating job order
	// (when linked), and recomputes the employer's cached total, all in one
	// transaction. A unique-constraint violation on the permit number
	// surfaces as *apperrors.DuplicatePermitError.
	SavePermit(ctx context.Context, permit domain.RecruitmentPermit) error

	// RecordEntry inserts an entry realization after re-deriving the permit's
	// remaining balance from its entry rows under a row lock. Fails with
	// *apperrors.QuotaExceededError when the balance is insufficient.
	// Returns the permit as updated by the transaction.
	RecordEntry(ctx context.Context, entry domain.EntryPermit) (*domain.RecruitmentPermit, error)

	// RevokePermitQuota increases the permit's revoked quota, rejecting
	// amounts that would push used+revoked past the approved quota.
	// Returns the permit as updated by the transaction.
	RevokePermitQuota(ctx context.Context, permitID string, amount int, userID string, now time.Time) (*domain.RecruitmentPermit, error)

	// RecomputeEmployerTotal re-derives the employer's cached total quota
	// from the ledger and persists it. Idempotent; safe to run at any time.
	// Returns the previous cached value and the recomputed total, both read
	// under the same lock so callers can detect drift without racing
	// concurrent ledger writers.
	RecomputeEmployerTotal(ctx context.Context, employerID string, userID string, now time.Time) (int, int, error)
}

// PermitRepositoryFacade combines all permit-ledger repository interfaces
type PermitRepositoryFacade interface {
	PermitReader
	EntryReader
	PermitWriter
}

// PermitRepositoryWithTx extends PermitRepositoryFacade with transaction capabilities
type PermitRepositoryWithTx interface {
	PermitRepositoryFacade
	TransactionManager
}

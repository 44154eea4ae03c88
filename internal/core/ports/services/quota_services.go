package services

import (
	"context"

	"github.com/placementworks/recruit_quota_app/internal/dto"
)

// QuotaSvcFacade defines the read-side quota aggregation operations plus the
// reconciliation safety net for the cached employer totals.
type QuotaSvcFacade interface {
	// AvailableQuota returns the per-permit balance projection for an
	// employer. Read-only; computed from the authoritative per-permit sums.
	AvailableQuota(ctx context.Context, employerID string) (*dto.AvailableQuotaResponse, error)

	// EmployerTotalQuota returns the employer's total remaining quota,
	// computed from the ledger rather than the cached field.
	EmployerTotalQuota(ctx context.Context, employerID string) (int, error)

	// ReconcileEmployerTotals recomputes every employer's cached total from
	// the ledger and corrects drift. Idempotent; safe to run at any time.
	ReconcileEmployerTotals(ctx context.Context, userID string) (*dto.ReconcileResponse, error)
}

package services

import (
	"context"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// EligibilitySvcFacade defines the tiered additional-quota calculation.
type EligibilitySvcFacade interface {
	// CalculateAdditionalQuota assesses the statutory additional-quota
	// top-up the employer may request. An ineligible employer is a normal
	// outcome (Eligible=false, Quota=0), not an error.
	CalculateAdditionalQuota(ctx context.Context, employerID string) (*domain.AdditionalQuotaAssessment, error)
}

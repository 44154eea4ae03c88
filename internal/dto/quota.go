package dto

import (
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// AvailableQuotaResponse is the per-permit balance projection for an employer.
type AvailableQuotaResponse struct {
	EmployerID string               `json:"employerID"`
	Permits    []domain.PermitQuota `json:"permits"`
	TotalQuota int                  `json:"totalQuota"`
}

// ReconcileCorrection describes one cached total that was out of line with
// the ledger and has been corrected.
type ReconcileCorrection struct {
	EmployerID    string `json:"employerID"`
	PreviousTotal int    `json:"previousTotal"`
	Recomputed    int    `json:"recomputed"`
}

// ReconcileResponse summarizes a reconciliation pass over cached totals.
type ReconcileResponse struct {
	EmployersChecked int                   `json:"employersChecked"`
	Corrections      []ReconcileCorrection `json:"corrections"`
}

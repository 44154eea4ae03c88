package dto

import (
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AdditionalQuotaResponse is the structured eligibility breakdown returned to
// display components.
type AdditionalQuotaResponse struct {
	EmployerID        string          `json:"employerID"`
	Eligible          bool            `json:"eligible"`
	Quota             int             `json:"quota"`
	AverageLaborCount decimal.Decimal `json:"averageLaborCount"`
	BaseRate          decimal.Decimal `json:"baseRate"`
	ExtraRate         decimal.Decimal `json:"extraRate"`
	AdditionalRate    decimal.Decimal `json:"additionalRate"`
	TotalRate         decimal.Decimal `json:"totalRate"`
	RateCeiling       decimal.Decimal `json:"rateCeiling"`
	TheoreticalQuota  int             `json:"theoreticalQuota"`
	AdditionalUsed    int             `json:"additionalUsed"`
}

// ToAdditionalQuotaResponse converts a domain assessment to its response DTO
func ToAdditionalQuotaResponse(employerID string, a *domain.AdditionalQuotaAssessment) AdditionalQuotaResponse {
	return AdditionalQuotaResponse{
		EmployerID:        employerID,
		Eligible:          a.Eligible,
		Quota:             a.Quota,
		AverageLaborCount: a.AverageLaborCount,
		BaseRate:          a.BaseRate,
		ExtraRate:         a.ExtraRate,
		AdditionalRate:    a.AdditionalRate,
		TotalRate:         a.TotalRate,
		RateCeiling:       a.RateCeiling,
		TheoreticalQuota:  a.TheoreticalQuota,
		AdditionalUsed:    a.AdditionalUsed,
	}
}

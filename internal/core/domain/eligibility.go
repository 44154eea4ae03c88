package domain

import "github.com/shopspring/decimal"

// AdditionalQuotaAssessment is the structured breakdown of an additional-quota
// calculation. Intermediate values are exposed so callers and tests can assert
// on them, not just the final number.
type AdditionalQuotaAssessment struct {
	Eligible          bool            `json:"eligible"`
	Quota             int             `json:"quota"`
	AverageLaborCount decimal.Decimal `json:"averageLaborCount"`
	BaseRate          decimal.Decimal `json:"baseRate"`
	ExtraRate         decimal.Decimal `json:"extraRate"`
	AdditionalRate    decimal.Decimal `json:"additionalRate"`
	TotalRate         decimal.Decimal `json:"totalRate"`
	RateCeiling       decimal.Decimal `json:"rateCeiling"`
	TheoreticalQuota  int             `json:"theoreticalQuota"` // ceiling A = avg x additional rate
	AdditionalUsed    int             `json:"additionalUsed"`   // portion B of consumption attributed to the additional bucket
}

// AssessAdditionalQuota computes the statutory additional-quota top-up an
// employer may request. Pure: all inputs are passed in, so the formula can be
// exercised against tabular regulatory scenarios without persistence.
//
// The theoretical ceiling A is averageLaborCount x additionalRate. The
// employer is ineligible when it holds no active recognition or when the total
// authorized rate (base + extra + additional) exceeds the statutory ceiling.
// Consumption is attributed to the base+extra bucket first; only the portion
// above averageLaborCount x (base + extra) counts against the additional
// bucket (value B). The grantable quota is C = max(0, A - B).
func AssessAdditionalQuota(averageLaborCount decimal.Decimal, recognition *IndustryRecognition, consumedQuota int, additionalRate, rateCeiling decimal.Decimal) AdditionalQuotaAssessment {
	assessment := AdditionalQuotaAssessment{
		AverageLaborCount: averageLaborCount,
		AdditionalRate:    additionalRate,
		RateCeiling:       rateCeiling,
		BaseRate:          decimal.Zero,
		ExtraRate:         decimal.Zero,
		TotalRate:         decimal.Zero,
	}

	if recognition == nil {
		return assessment
	}

	assessment.BaseRate = recognition.BaseAllocationRate
	assessment.ExtraRate = recognition.ExtraRate
	assessment.TotalRate = recognition.BaseAllocationRate.Add(recognition.ExtraRate).Add(additionalRate)

	if assessment.TotalRate.GreaterThan(rateCeiling) {
		return assessment
	}

	theoretical := averageLaborCount.Mul(additionalRate).IntPart()
	if theoretical < 0 {
		theoretical = 0
	}
	assessment.TheoreticalQuota = int(theoretical)

	baseBucket := averageLaborCount.Mul(recognition.BaseAllocationRate.Add(recognition.ExtraRate)).IntPart()
	additionalUsed := consumedQuota - int(baseBucket)
	if additionalUsed < 0 {
		additionalUsed = 0
	}
	assessment.AdditionalUsed = additionalUsed

	quota := assessment.TheoreticalQuota - additionalUsed
	if quota < 0 {
		quota = 0
	}

	assessment.Eligible = true
	assessment.Quota = quota
	return assessment
}

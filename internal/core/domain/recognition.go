package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecognitionTier classifies an employer under the allocation regulation.
// Tier codes arrive as free text from the registry; they are validated into
// this closed set at the boundary.
type RecognitionTier string

const (
	TierGeneral   RecognitionTier = "GENERAL"
	TierPreferred RecognitionTier = "PREFERRED"
	TierExcellent RecognitionTier = "EXCELLENT"
)

// IsValid reports whether the tier is one of the known codes.
func (t RecognitionTier) IsValid() bool {
	switch t {
	case TierGeneral, TierPreferred, TierExcellent:
		return true
	}
	return false
}

// IndustryRecognition is a time-bounded regulatory grant carrying the base and
// extra allocation rates used by the additional-quota formula.
type IndustryRecognition struct {
	RecognitionID      string          `json:"recognitionID"`
	EmployerID         string          `json:"employerID"`
	Tier               RecognitionTier `json:"tier"`
	BaseAllocationRate decimal.Decimal `json:"baseAllocationRate"`
	ExtraRate          decimal.Decimal `json:"extraRate"`
	IssueDate          time.Time       `json:"issueDate"`
	ExpiryDate         *time.Time      `json:"expiryDate"` // nil means open-ended
	ReferenceNumber    string          `json:"referenceNumber"`
	AuditFields
}

// ActiveOn reports whether the recognition is in force on the given date.
func (r IndustryRecognition) ActiveOn(date time.Time) bool {
	if date.Before(r.IssueDate) {
		return false
	}
	if r.ExpiryDate == nil {
		return true
	}
	return !date.After(*r.ExpiryDate)
}

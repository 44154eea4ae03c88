package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecognitionTier is the stored tier code.
type RecognitionTier string

// IndustryRecognition mirrors the industry_recognitions table.
type IndustryRecognition struct {
	RecognitionID      string          `db:"recognition_id"`
	EmployerID         string          `db:"employer_id"`
	Tier               RecognitionTier `db:"tier"`
	BaseAllocationRate decimal.Decimal `db:"base_allocation_rate"`
	ExtraRate          decimal.Decimal `db:"extra_rate"`
	IssueDate          time.Time       `db:"issue_date"`
	ExpiryDate         *time.Time      `db:"expiry_date"`
	ReferenceNumber    string          `db:"reference_number"`
	AuditFields
}

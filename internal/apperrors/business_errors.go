package apperrors

import "fmt"

// DuplicatePermitError is returned when a permit number that already exists in the
// ledger is submitted again. The offending number is carried so the caller can
// render an actionable conflict message instead of a generic failure.
type DuplicatePermitError struct {
	PermitNumber string
}

func (e *DuplicatePermitError) Error() string {
	return fmt.Sprintf("permit number %q is already registered", e.PermitNumber)
}

func (e *DuplicatePermitError) Unwrap() error {
	return ErrDuplicate
}

// NewDuplicatePermitError creates a DuplicatePermitError for the given permit number.
func NewDuplicatePermitError(permitNumber string) *DuplicatePermitError {
	return &DuplicatePermitError{PermitNumber: permitNumber}
}

// QuotaExceededError is returned when recording an entry would push a permit's
// consumption past its remaining balance.
type QuotaExceededError struct {
	PermitID  string
	Remaining int
	Requested int
}

func (e *QuotaExceededError) Error() string {
	return fmt.Sprintf("permit %s has %d remaining but %d workers were requested", e.PermitID, e.Remaining, e.Requested)
}

func (e *QuotaExceededError) Unwrap() error {
	return ErrQuotaExceeded
}

// NewQuotaExceededError creates a QuotaExceededError with the rejected request details.
func NewQuotaExceededError(permitID string, remaining, requested int) *QuotaExceededError {
	return &QuotaExceededError{PermitID: permitID, Remaining: remaining, Requested: requested}
}

package domain

import "time"

// PermitAvailability labels a permit by whether any balance is left on it.
type PermitAvailability string

const (
	PermitAvailable PermitAvailability = "available"
	PermitExhausted PermitAvailability = "exhausted"
)

// PermitQuota is the read-only per-permit projection served to display
// components: the ledger row plus the authoritative consumption-derived
// remaining balance.
type PermitQuota struct {
	PermitNumber string             `json:"permitNumber"`
	IssueDate    time.Time          `json:"issueDate"`
	ValidUntil   time.Time          `json:"validUntil"`
	Approved     int                `json:"approved"`
	Used         int                `json:"used"`
	Remaining    int                `json:"remaining"`
	Status       PermitAvailability `json:"status"`
}

// RemainingBalance computes the balance left on a permit given the
// authoritative used figure (the sum over its entry realizations).
// Never negative: concurrent writers or manual fixes may momentarily push the
// raw difference below zero, and a balance is clamped rather than exposed.
func RemainingBalance(approvedQuota, usedQuota, revokedQuota int) int {
	remaining := approvedQuota - usedQuota - revokedQuota
	if remaining < 0 {
		return 0
	}
	return remaining
}

// QuotaStatus labels a remaining balance as available or exhausted.
func QuotaStatus(remaining int) PermitAvailability {
	if remaining > 0 {
		return PermitAvailable
	}
	return PermitExhausted
}

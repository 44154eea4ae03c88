package domain

import "time"

// RecruitmentPermit is one row of the permit ledger. Issuance fields are
// immutable after creation; UsedQuota and RevokedQuota move as entries are
// recorded and headcount is revoked. UsedQuota is a denormalized cache of the
// sum over the permit's entry realizations and must be re-derived from that
// sum whenever a balance decision is made.
type RecruitmentPermit struct {
	PermitID      string     `json:"permitID"`
	EmployerID    string     `json:"employerID"`
	JobOrderID    *string    `json:"jobOrderID"` // set when the permit originates from a job order
	PermitNumber  string     `json:"permitNumber"` // government-assigned, globally unique
	IssueDate     time.Time  `json:"issueDate"`
	ValidUntil    time.Time  `json:"validUntil"`
	ApprovedQuota int        `json:"approvedQuota"`
	UsedQuota     int        `json:"usedQuota"`
	RevokedQuota  int        `json:"revokedQuota"`
	AttachmentRef *string    `json:"attachmentRef"`
	AuditFields
}

// ExpiredOn reports whether the permit's validity window has passed on the given date.
func (p RecruitmentPermit) ExpiredOn(date time.Time) bool {
	return date.After(p.ValidUntil)
}

// EntryPermit records one batch of workers actually imported against a permit.
// Append-only; the sum over a permit's entries is the authoritative used figure.
type EntryPermit struct {
	EntryID     string    `json:"entryID"`
	PermitID    string    `json:"permitID"`
	WorkerCount int       `json:"workerCount"`
	OccurredAt  time.Time `json:"occurredAt"`
	AuditFields
}

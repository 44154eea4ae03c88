package models

import "time"

// RecruitmentPermit mirrors the recruitment_permits table. permit_number
// carries the one uniqueness constraint the engine relies on the storage
// layer to enforce.
type RecruitmentPermit struct {
	PermitID      string    `db:"permit_id"`
	EmployerID    string    `db:"employer_id"`
	JobOrderID    *string   `db:"job_order_id"`
	PermitNumber  string    `db:"permit_number"`
	IssueDate     time.Time `db:"issue_date"`
	ValidUntil    time.Time `db:"valid_until"`
	ApprovedQuota int       `db:"approved_quota"`
	UsedQuota     int       `db:"used_quota"`
	RevokedQuota  int       `db:"revoked_quota"`
	AttachmentRef *string   `db:"attachment_ref"`
	AuditFields
}

// EntryPermit mirrors the entry_permits table.
type EntryPermit struct {
	EntryID     string    `db:"entry_id"`
	PermitID    string    `db:"permit_id"`
	WorkerCount int       `db:"worker_count"`
	OccurredAt  time.Time `db:"occurred_at"`
	AuditFields
}

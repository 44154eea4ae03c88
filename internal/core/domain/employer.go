package domain

// Employer is the aggregate root every regulatory document hangs off.
// TotalQuota is a denormalized cache of the sum of remaining balances over the
// employer's permits; it is recomputed transactionally by the permit ledger and
// must never be written directly by callers.
type Employer struct {
	EmployerID     string `json:"employerID"` // Primary Key (UUID)
	Name           string `json:"name"`
	BusinessRegNo  string `json:"businessRegNo"` // Government business registration number
	Representative string `json:"representative"`
	TotalQuota     int    `json:"totalQuota"` // Cached aggregate, see quota.go
	AuditFields
}

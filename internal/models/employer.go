package models

// Employer mirrors the employers table. total_quota is the cached aggregate
// maintained by the permit ledger.
type Employer struct {
	EmployerID     string `db:"employer_id"`
	Name           string `db:"name"`
	BusinessRegNo  string `db:"business_reg_no"`
	Representative string `db:"representative"`
	TotalQuota     int    `db:"total_quota"`
	AuditFields
}

package models

// LaborCountRecord mirrors the labor_count_records table. One row per
// employer per calendar month, enforced by a unique constraint.
type LaborCountRecord struct {
	LaborCountID string `db:"labor_count_id"`
	EmployerID   string `db:"employer_id"`
	Year         int    `db:"year"`
	Month        int    `db:"month"`
	Count        int    `db:"count"`
	AuditFields
}

package domain

// LaborCountRecord is a monthly headcount snapshot for an employer.
// Append-only apart from upsert-by-period; read input to the eligibility formula.
type LaborCountRecord struct {
	LaborCountID string `json:"laborCountID"`
	EmployerID   string `json:"employerID"`
	Year         int    `json:"year"`
	Month        int    `json:"month"` // 1-12
	Count        int    `json:"count"`
	AuditFields
}

package domain

import "time"

// JobOrderStatus tracks the lifecycle of a domestic recruitment registration.
type JobOrderStatus string

const (
	JobOrderActive    JobOrderStatus = "ACTIVE"
	JobOrderCompleted JobOrderStatus = "COMPLETED"
)

// IsValid reports whether the status is one of the known codes.
func (s JobOrderStatus) IsValid() bool {
	return s == JobOrderActive || s == JobOrderCompleted
}

// JobOrder records the mandatory local-recruitment-first step. A job order
// transitions ACTIVE -> COMPLETED exactly once, as part of issuing the permit
// that originates from it.
type JobOrder struct {
	JobOrderID        string         `json:"jobOrderID"`
	EmployerID        string         `json:"employerID"`
	JobType           string         `json:"jobType"`
	VacancyCount      int            `json:"vacancyCount"`
	RegistryDate      time.Time      `json:"registryDate"`
	ExpiryDate        time.Time      `json:"expiryDate"`
	CertificateNumber *string        `json:"certificateNumber"` // futility certificate, set after the waiting period
	SuccessCount      int            `json:"successCount"`      // workers hired domestically
	Status            JobOrderStatus `json:"status"`
	AuditFields
}

// RemainingVacancies is the headcount still requestable via permit after
// domestic hires are subtracted, clamped at zero.
func (j JobOrder) RemainingVacancies() int {
	remaining := j.VacancyCount - j.SuccessCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

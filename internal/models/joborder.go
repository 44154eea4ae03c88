package models

import "time"

// JobOrderStatus is the stored status code.
type JobOrderStatus string

// JobOrder mirrors the job_orders table.
type JobOrder struct {
	JobOrderID        string         `db:"job_order_id"`
	EmployerID        string         `db:"employer_id"`
	JobType           string         `db:"job_type"`
	VacancyCount      int            `db:"vacancy_count"`
	RegistryDate      time.Time      `db:"registry_date"`
	ExpiryDate        time.Time      `db:"expiry_date"`
	CertificateNumber *string        `db:"certificate_number"`
	SuccessCount      int            `db:"success_count"`
	Status            JobOrderStatus `db:"status"`
	AuditFields
}

package dto

import (
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// RegisterJobOrderRequest starts the mandatory domestic recruitment step.
type RegisterJobOrderRequest struct {
	JobType      string    `json:"jobType" binding:"required"`
	VacancyCount int       `json:"vacancyCount" binding:"required,gt=0"`
	RegistryDate time.Time `json:"registryDate" binding:"required"`
	ExpiryDate   time.Time `json:"expiryDate"` // Optional; defaults to registry date + waiting window
}

// AttachCertificateRequest records the futility certificate number.
type AttachCertificateRequest struct {
	CertificateNumber string `json:"certificateNumber" binding:"required"`
}

// RecordDomesticHireRequest reports workers hired through the local posting.
type RecordDomesticHireRequest struct {
	HiredCount int `json:"hiredCount" binding:"required,gt=0"`
}

// JobOrderResponse defines the data returned for a job order.
type JobOrderResponse struct {
	JobOrderID        string                `json:"jobOrderID"`
	EmployerID        string                `json:"employerID"`
	JobType           string                `json:"jobType"`
	VacancyCount      int                   `json:"vacancyCount"`
	RegistryDate      time.Time             `json:"registryDate"`
	ExpiryDate        time.Time             `json:"expiryDate"`
	CertificateNumber *string               `json:"certificateNumber"`
	SuccessCount      int                   `json:"successCount"`
	Status            domain.JobOrderStatus `json:"status"`
	CreatedAt         time.Time             `json:"createdAt"`
}

// ToJobOrderResponse converts a domain.JobOrder to its response DTO
func ToJobOrderResponse(j *domain.JobOrder) JobOrderResponse {
	return JobOrderResponse{
		JobOrderID:        j.JobOrderID,
		EmployerID:        j.EmployerID,
		JobType:           j.JobType,
		VacancyCount:      j.VacancyCount,
		RegistryDate:      j.RegistryDate,
		ExpiryDate:        j.ExpiryDate,
		CertificateNumber: j.CertificateNumber,
		SuccessCount:      j.SuccessCount,
		Status:            j.Status,
		CreatedAt:         j.CreatedAt,
	}
}

// ToListJobOrderResponse converts a slice of job orders to response DTOs
func ToListJobOrderResponse(jobOrders []domain.JobOrder) []JobOrderResponse {
	res := make([]JobOrderResponse, len(jobOrders))
	for i, j := range jobOrders {
		res[i] = ToJobOrderResponse(&j)
	}
	return res
}

// CertificateDateResponse carries the earliest futility certificate date for
// a given registry date.
type CertificateDateResponse struct {
	RegistryDate            time.Time `json:"registryDate"`
	EarliestCertificateDate time.Time `json:"earliestCertificateDate"`
}

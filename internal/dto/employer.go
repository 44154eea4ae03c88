package dto

import (
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// CreateEmployerRequest defines the data needed to register a new employer.
type CreateEmployerRequest struct {
	Name           string `json:"name" binding:"required"`
	BusinessRegNo  string `json:"businessRegNo" binding:"required"`
	Representative string `json:"representative"`
}

// EmployerResponse defines the data returned for an employer.
type EmployerResponse struct {
	EmployerID     string    `json:"employerID"`
	Name           string    `json:"name"`
	BusinessRegNo  string    `json:"businessRegNo"`
	Representative string    `json:"representative"`
	TotalQuota     int       `json:"totalQuota"`
	CreatedAt      time.Time `json:"createdAt"`
	LastUpdatedAt  time.Time `json:"lastUpdatedAt"`
}

// ToEmployerResponse converts a domain.Employer to EmployerResponse DTO
func ToEmployerResponse(e *domain.Employer) EmployerResponse {
	return EmployerResponse{
		EmployerID:     e.EmployerID,
		Name:           e.Name,
		BusinessRegNo:  e.BusinessRegNo,
		Representative: e.Representative,
		TotalQuota:     e.TotalQuota,
		CreatedAt:      e.CreatedAt,
		LastUpdatedAt:  e.LastUpdatedAt,
	}
}

// ToListEmployerResponse converts a slice of domain.Employer to response DTOs
func ToListEmployerResponse(employers []domain.Employer) []EmployerResponse {
	res := make([]EmployerResponse, len(employers))
	for i, e := range employers {
		res[i] = ToEmployerResponse(&e)
	}
	return res
}

// ListEmployersParams defines query parameters for listing employers.
type ListEmployersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

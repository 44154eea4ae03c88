package dto

import (
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// UpsertLaborCountRequest records the headcount for one calendar month.
type UpsertLaborCountRequest struct {
	Year  int `json:"year" binding:"required,gte=2000,lte=2100"`
	Month int `json:"month" binding:"required,gte=1,lte=12"`
	Count int `json:"count" binding:"gte=0"`
}

// LaborCountResponse defines the data returned for a labor count snapshot.
type LaborCountResponse struct {
	LaborCountID  string    `json:"laborCountID"`
	EmployerID    string    `json:"employerID"`
	Year          int       `json:"year"`
	Month         int       `json:"month"`
	Count         int       `json:"count"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ToLaborCountResponse converts a domain.LaborCountRecord to its response DTO
func ToLaborCountResponse(r *domain.LaborCountRecord) LaborCountResponse {
	return LaborCountResponse{
		LaborCountID:  r.LaborCountID,
		EmployerID:    r.EmployerID,
		Year:          r.Year,
		Month:         r.Month,
		Count:         r.Count,
		LastUpdatedAt: r.LastUpdatedAt,
	}
}

// ToListLaborCountResponse converts a slice of records to response DTOs
func ToListLaborCountResponse(records []domain.LaborCountRecord) []LaborCountResponse {
	res := make([]LaborCountResponse, len(records))
	for i, r := range records {
		res[i] = ToLaborCountResponse(&r)
	}
	return res
}

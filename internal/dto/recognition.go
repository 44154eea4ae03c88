package dto

import (
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecognitionRequest registers a new industry recognition grant.
type CreateRecognitionRequest struct {
	Tier               domain.RecognitionTier `json:"tier" binding:"required,oneof=GENERAL PREFERRED EXCELLENT"`
	BaseAllocationRate decimal.Decimal        `json:"baseAllocationRate" binding:"required"`
	ExtraRate          decimal.Decimal        `json:"extraRate"`
	IssueDate          time.Time              `json:"issueDate" binding:"required"`
	ExpiryDate         *time.Time             `json:"expiryDate"` // Optional, nil means open-ended
	ReferenceNumber    string                 `json:"referenceNumber" binding:"required"`
}

// RecognitionResponse defines the data returned for a recognition document.
type RecognitionResponse struct {
	RecognitionID      string                 `json:"recognitionID"`
	EmployerID         string                 `json:"employerID"`
	Tier               domain.RecognitionTier `json:"tier"`
	BaseAllocationRate decimal.Decimal        `json:"baseAllocationRate"`
	ExtraRate          decimal.Decimal        `json:"extraRate"`
	IssueDate          time.Time              `json:"issueDate"`
	ExpiryDate         *time.Time             `json:"expiryDate"`
	ReferenceNumber    string                 `json:"referenceNumber"`
	CreatedAt          time.Time              `json:"createdAt"`
}

// ToRecognitionResponse converts a domain.IndustryRecognition to its response DTO
func ToRecognitionResponse(r *domain.IndustryRecognition) RecognitionResponse {
	return RecognitionResponse{
		RecognitionID:      r.RecognitionID,
		EmployerID:         r.EmployerID,
		Tier:               r.Tier,
		BaseAllocationRate: r.BaseAllocationRate,
		ExtraRate:          r.ExtraRate,
		IssueDate:          r.IssueDate,
		ExpiryDate:         r.ExpiryDate,
		ReferenceNumber:    r.ReferenceNumber,
		CreatedAt:          r.CreatedAt,
	}
}

// ToListRecognitionResponse converts a slice of recognitions to response DTOs
func ToListRecognitionResponse(recognitions []domain.IndustryRecognition) []RecognitionResponse {
	res := make([]RecognitionResponse, len(recognitions))
	for i, r := range recognitions {
		res[i] = ToRecognitionResponse(&r)
	}
	return res
}

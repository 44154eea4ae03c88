package services

import (
	"context"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/dto"
)

// RecognitionSvcFacade defines operations on industry recognition documents.
type RecognitionSvcFacade interface {
	// CreateRecognition registers a new time-bounded recognition grant.
	CreateRecognition(ctx context.Context, employerID string, req dto.CreateRecognitionRequest, creatorUserID string) (*domain.IndustryRecognition, error)

	// GetActiveRecognition retrieves the recognition currently in force, or
	// ErrNotFound when the employer holds none.
	GetActiveRecognition(ctx context.Context, employerID string) (*domain.IndustryRecognition, error)

	// ListRecognitions retrieves all recognitions held by the employer.
	ListRecognitions(ctx context.Context, employerID string) ([]domain.IndustryRecognition, error)
}

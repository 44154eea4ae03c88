package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
)

// recognitionService manages industry recognition documents.
type recognitionService struct {
	recognitionRepo portsrepo.RecognitionRepositoryFacade
	employerRepo    portsrepo.EmployerReader
}

// NewRecognitionService creates a new RecognitionService.
func NewRecognitionService(recognitionRepo portsrepo.RecognitionRepositoryFacade, employerRepo portsrepo.EmployerReader) portssvc.RecognitionSvcFacade {
	return &recognitionService{
		recognitionRepo: recognitionRepo,
		employerRepo:    employerRepo,
	}
}

// Ensure recognitionService implements the portssvc.RecognitionSvcFacade interface
var _ portssvc.RecognitionSvcFacade = (*recognitionService)(nil)

func (s *recognitionService) CreateRecognition(ctx context.Context, employerID string, req dto.CreateRecognitionRequest, creatorUserID string) (*domain.IndustryRecognition, error) {
	if !req.Tier.IsValid() {
		return nil, fmt.Errorf("%w: unknown recognition tier %q", apperrors.ErrValidation, req.Tier)
	}
	if req.BaseAllocationRate.LessThan(decimal.Zero) || req.ExtraRate.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: allocation rates cannot be negative", apperrors.ErrValidation)
	}
	if req.ExpiryDate != nil && req.ExpiryDate.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: expiry date precedes issue date", apperrors.ErrValidation)
	}

	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}

	now := time.Now()
	recognition := domain.IndustryRecognition{
		RecognitionID:      uuid.NewString(),
		EmployerID:         employerID,
		Tier:               req.Tier,
		BaseAllocationRate: req.BaseAllocationRate,
		ExtraRate:          req.ExtraRate,
		IssueDate:          req.IssueDate,
		ExpiryDate:         req.ExpiryDate,
		ReferenceNumber:    req.ReferenceNumber,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}

	if err := s.recognitionRepo.SaveRecognition(ctx, recognition); err != nil {
		return nil, fmt.Errorf("failed to save recognition: %w", err)
	}

	return &recognition, nil
}

func (s *recognitionService) GetActiveRecognition(ctx context.Context, employerID string) (*domain.IndustryRecognition, error) {
	return s.recognitionRepo.FindActiveRecognition(ctx, employerID, time.Now())
}

func (s *recognitionService) ListRecognitions(ctx context.Context, employerID string) ([]domain.IndustryRecognition, error) {
	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}
	return s.recognitionRepo.ListRecognitionsByEmployer(ctx, employerID)
}

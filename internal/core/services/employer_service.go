package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
)

// employerService provides employer registry operations.
type employerService struct {
	employerRepo portsrepo.EmployerRepositoryFacade
}

// NewEmployerService creates a new EmployerService.
func NewEmployerService(employerRepo portsrepo.EmployerRepositoryFacade) portssvc.EmployerSvcFacade {
	return &employerService{
		employerRepo: employerRepo,
	}
}

// Ensure employerService implements the portssvc.EmployerSvcFacade interface
var _ portssvc.EmployerSvcFacade = (*employerService)(nil)

func (s *employerService) CreateEmployer(ctx context.Context, req dto.CreateEmployerRequest, creatorUserID string) (*domain.Employer, error) {
	now := time.Now()
	employer := domain.Employer{
		EmployerID:     uuid.NewString(),
		Name:           req.Name,
		BusinessRegNo:  req.BusinessRegNo,
		Representative: req.Representative,
		TotalQuota:     0, // no permits yet
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}

	if err := s.employerRepo.SaveEmployer(ctx, employer); err != nil {
		return nil, fmt.Errorf("failed to save employer: %w", err)
	}

	return &employer, nil
}

func (s *employerService) GetEmployerByID(ctx context.Context, employerID string) (*domain.Employer, error) {
	return s.employerRepo.FindEmployerByID(ctx, employerID)
}

func (s *employerService) ListEmployers(ctx context.Context, params dto.ListEmployersParams) ([]domain.Employer, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}
	return s.employerRepo.ListEmployers(ctx, limit, offset)
}

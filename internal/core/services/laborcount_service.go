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

// laborCountService manages monthly labor count snapshots.
type laborCountService struct {
	laborCountRepo portsrepo.LaborCountRepositoryFacade
	employerRepo   portsrepo.EmployerReader
}

// NewLaborCountService creates a new LaborCountService.
func NewLaborCountService(laborCountRepo portsrepo.LaborCountRepositoryFacade, employerRepo portsrepo.EmployerReader) portssvc.LaborCountSvcFacade {
	return &laborCountService{
		laborCountRepo: laborCountRepo,
		employerRepo:   employerRepo,
	}
}

// Ensure laborCountService implements the portssvc.LaborCountSvcFacade interface
var _ portssvc.LaborCountSvcFacade = (*laborCountService)(nil)

func (s *laborCountService) UpsertLaborCount(ctx context.Context, employerID string, req dto.UpsertLaborCountRequest, userID string) (*domain.LaborCountRecord, error) {
	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}

	now := time.Now()
	record := domain.LaborCountRecord{
		LaborCountID: uuid.NewString(),
		EmployerID:   employerID,
		Year:         req.Year,
		Month:        req.Month,
		Count:        req.Count,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	if err := s.laborCountRepo.UpsertLaborCount(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to upsert labor count for employer %s: %w", employerID, err)
	}

	return &record, nil
}

func (s *laborCountService) ListLaborCounts(ctx context.Context, employerID string) ([]domain.LaborCountRecord, error) {
	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}
	return s.laborCountRepo.ListLaborCountsByEmployer(ctx, employerID)
}

package services

import (
	"context"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/dto"
)

// EmployerReaderSvc defines read operations for employer data
type EmployerReaderSvc interface {
	// GetEmployerByID retrieves a specific employer by its ID.
	GetEmployerByID(ctx context.Context, employerID string) (*domain.Employer, error)

	// ListEmployers retrieves a paginated list of employers.
	ListEmployers(ctx context.Context, params dto.ListEmployersParams) ([]domain.Employer, error)
}

// EmployerWriterSvc defines write operations for employer data
type EmployerWriterSvc interface {
	// CreateEmployer persists a new employer with a zero cached quota.
	CreateEmployer(ctx context.Context, req dto.CreateEmployerRequest, creatorUserID string) (*domain.Employer, error)
}

// EmployerSvcFacade combines all employer-related service interfaces
type EmployerSvcFacade interface {
	EmployerReaderSvc
	EmployerWriterSvc
}

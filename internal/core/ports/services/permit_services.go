package services

import (
	"context"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/dto"
)

// PermitReaderSvc defines read operations for the permit ledger
type PermitReaderSvc interface {
	// GetPermitByID retrieves a specific permit by its ID.
	GetPermitByID(ctx context.Context, permitID string) (*domain.RecruitmentPermit, error)

	// GetPermitByNumber retrieves a permit by its government-assigned
	// number, the identifier clerks transcribe from the paper permit.
	GetPermitByNumber(ctx context.Context, permitNumber string) (*domain.RecruitmentPermit, error)

	// ListPermits retrieves a paginated list of an employer's permits.
	ListPermits(ctx context.Context, employerID string, params dto.ListPermitsParams) (*dto.ListPermitsResponse, error)

	// ListEntries retrieves the entry realizations recorded against a permit.
	ListEntries(ctx context.Context, permitID string) ([]domain.EntryPermit, error)
}

// PermitWriterSvc defines the mutating ledger operations
type PermitWriterSvc interface {
	// IssuePermit creates a new recruitment permit for the employer,
	// completing the originating job order and refreshing the employer's
	// cached quota atomically.
	IssuePermit(ctx context.Context, employerID string, req dto.IssuePermitRequest, creatorUserID string) (*domain.RecruitmentPermit, error)

	// RevokePermitQuota removes headcount from a permit at the issuing
	// authority's direction.
	RevokePermitQuota(ctx context.Context, permitID string, req dto.RevokeQuotaRequest, userID string) (*domain.RecruitmentPermit, error)

	// RecordEntry records one batch of workers imported against a permit.
	RecordEntry(ctx context.Context, permitID string, req dto.RecordEntryRequest, userID string) (*domain.EntryPermit, error)
}

// PermitSvcFacade combines all permit-ledger service interfaces
type PermitSvcFacade interface {
	PermitReaderSvc
	PermitWriterSvc
}

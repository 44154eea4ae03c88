package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
	"github.com/placementworks/recruit_quota_app/internal/middleware"
)

// permitService provides the permit ledger operations. All mutations delegate
// to the repository, which executes them as single transactions that also
// refresh the owning employer's cached total.
type permitService struct {
	permitRepo   portsrepo.PermitRepositoryFacade
	employerRepo portsrepo.EmployerReader
	jobOrderRepo portsrepo.JobOrderReader
	validityDays int
}

// NewPermitService creates a new PermitService. validityDays is the default
// permit validity window applied when the issuing document carries no
// explicit expiry.
func NewPermitService(permitRepo portsrepo.PermitRepositoryFacade, employerRepo portsrepo.EmployerReader, jobOrderRepo portsrepo.JobOrderReader, validityDays int) portssvc.PermitSvcFacade {
	return &permitService{
		permitRepo:   permitRepo,
		employerRepo: employerRepo,
		jobOrderRepo: jobOrderRepo,
		validityDays: validityDays,
	}
}

// Ensure permitService implements the portssvc.PermitSvcFacade interface
var _ portssvc.PermitSvcFacade = (*permitService)(nil)

func (s *permitService) IssuePermit(ctx context.Context, employerID string, req dto.IssuePermitRequest, creatorUserID string) (*domain.RecruitmentPermit, error) {
	permitNumber := strings.TrimSpace(req.PermitNumber)
	if permitNumber == "" {
		return nil, fmt.Errorf("%w: permit number is required", apperrors.ErrValidation)
	}
	if req.ApprovedQuota <= 0 {
		return nil, fmt.Errorf("%w: approved quota must be positive", apperrors.ErrValidation)
	}

	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}

	validUntil := req.IssueDate.AddDate(0, 0, s.validityDays)
	if req.ValidUntil != nil {
		validUntil = *req.ValidUntil
	}
	if validUntil.Before(req.IssueDate) {
		return nil, fmt.Errorf("%w: validity end precedes issue date", apperrors.ErrValidation)
	}

	if req.JobOrderID != nil {
		jobOrder, err := s.jobOrderRepo.FindJobOrderByID(ctx, *req.JobOrderID)
		if err != nil {
			return nil, fmt.Errorf("failed to find job order %s: %w", *req.JobOrderID, err)
		}
		if jobOrder.EmployerID != employerID {
			return nil, fmt.Errorf("%w: job order %s belongs to another employer", apperrors.ErrValidation, *req.JobOrderID)
		}
		if jobOrder.Status != domain.JobOrderActive {
			return nil, fmt.Errorf("%w: job order %s is already completed", apperrors.ErrConflict, *req.JobOrderID)
		}
	}

	now := time.Now()
	permit := domain.RecruitmentPermit{
		PermitID:      uuid.NewString(),
		EmployerID:    employerID,
		JobOrderID:    req.JobOrderID,
		PermitNumber:  permitNumber,
		IssueDate:     req.IssueDate,
		ValidUntil:    validUntil,
		ApprovedQuota: req.ApprovedQuota,
		UsedQuota:     0,
		RevokedQuota:  0,
		AttachmentRef: req.AttachmentRef,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}

	// The repository inserts the permit, completes the linked job order and
	// recomputes the employer's cached total in one transaction. Duplicate
	// permit numbers surface here as *apperrors.DuplicatePermitError.
	if err := s.permitRepo.SavePermit(ctx, permit); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Recruitment permit issued",
		slog.String("permit_id", permit.PermitID),
		slog.String("permit_number", permitNumber),
		slog.String("employer_id", employerID),
		slog.Int("approved_quota", req.ApprovedQuota),
	)

	return &permit, nil
}

func (s *permitService) RevokePermitQuota(ctx context.Context, permitID string, req dto.RevokeQuotaRequest, userID string) (*domain.RecruitmentPermit, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: revocation amount must be positive", apperrors.ErrValidation)
	}

	permit, err := s.permitRepo.RevokePermitQuota(ctx, permitID, req.Amount, userID, time.Now())
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Permit quota revoked",
		slog.String("permit_id", permitID),
		slog.Int("amount", req.Amount),
		slog.Int("revoked_total", permit.RevokedQuota),
	)

	return permit, nil
}

func (s *permitService) RecordEntry(ctx context.Context, permitID string, req dto.RecordEntryRequest, userID string) (*domain.EntryPermit, error) {
	if req.WorkerCount <= 0 {
		return nil, fmt.Errorf("%w: worker count must be positive", apperrors.ErrValidation)
	}

	occurredAt := time.Now()
	if req.OccurredAt != nil {
		occurredAt = *req.OccurredAt
	}

	now := time.Now()
	entry := domain.EntryPermit{
		EntryID:     uuid.NewString(),
		PermitID:    permitID,
		WorkerCount: req.WorkerCount,
		OccurredAt:  occurredAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	// The repository re-derives the remaining balance under a row lock before
	// inserting; an insufficient balance surfaces as *apperrors.QuotaExceededError.
	permit, err := s.permitRepo.RecordEntry(ctx, entry)
	if err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Entry recorded",
		slog.String("entry_id", entry.EntryID),
		slog.String("permit_id", permitID),
		slog.Int("worker_count", req.WorkerCount),
		slog.Int("used_total", permit.UsedQuota),
	)

	return &entry, nil
}

func (s *permitService) GetPermitByID(ctx context.Context, permitID string) (*domain.RecruitmentPermit, error) {
	return s.permitRepo.FindPermitByID(ctx, permitID)
}

func (s *permitService) GetPermitByNumber(ctx context.Context, permitNumber string) (*domain.RecruitmentPermit, error) {
	permitNumber = strings.TrimSpace(permitNumber)
	if permitNumber == "" {
		return nil, apperrors.NewAppError(400, "permit number must not be blank", apperrors.ErrValidation)
	}
	return s.permitRepo.FindPermitByNumber(ctx, permitNumber)
}

func (s *permitService) ListPermits(ctx context.Context, employerID string, params dto.ListPermitsParams) (*dto.ListPermitsResponse, error) {
	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	permits, nextToken, err := s.permitRepo.ListPermitsByEmployer(ctx, employerID, limit, params.NextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list permits for employer %s: %w", employerID, err)
	}

	return &dto.ListPermitsResponse{
		Permits:   dto.ToListPermitResponse(permits),
		NextToken: nextToken,
	}, nil
}

func (s *permitService) ListEntries(ctx context.Context, permitID string) ([]domain.EntryPermit, error) {
	if _, err := s.permitRepo.FindPermitByID(ctx, permitID); err != nil {
		return nil, fmt.Errorf("failed to find permit %s: %w", permitID, err)
	}
	return s.permitRepo.ListEntriesByPermit(ctx, permitID)
}

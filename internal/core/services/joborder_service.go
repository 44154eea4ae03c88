package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
	"github.com/placementworks/recruit_quota_app/internal/middleware"
)

// jobOrderService manages the domestic-recruitment-first workflow.
type jobOrderService struct {
	jobOrderRepo portsrepo.JobOrderRepositoryFacade
	employerRepo portsrepo.EmployerReader
	waitingDays  int
}

// NewJobOrderService creates a new JobOrderService. waitingDays is the
// statutory number of calendar days a posting must stay open before a
// futility certificate may be requested.
func NewJobOrderService(jobOrderRepo portsrepo.JobOrderRepositoryFacade, employerRepo portsrepo.EmployerReader, waitingDays int) portssvc.JobOrderSvcFacade {
	return &jobOrderService{
		jobOrderRepo: jobOrderRepo,
		employerRepo: employerRepo,
		waitingDays:  waitingDays,
	}
}

// Ensure jobOrderService implements the portssvc.JobOrderSvcFacade interface
var _ portssvc.JobOrderSvcFacade = (*jobOrderService)(nil)

// EarliestCertificateDate returns the first calendar day on which the
// futility certificate may be requested for a posting registered on
// registryDate. Calendar days, not business days.
func (s *jobOrderService) EarliestCertificateDate(registryDate time.Time) time.Time {
	return registryDate.AddDate(0, 0, s.waitingDays)
}

func (s *jobOrderService) RegisterDomesticRecruitment(ctx context.Context, employerID string, req dto.RegisterJobOrderRequest, creatorUserID string) (*domain.JobOrder, error) {
	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}

	expiryDate := req.ExpiryDate
	if expiryDate.IsZero() {
		expiryDate = s.EarliestCertificateDate(req.RegistryDate)
	}
	if expiryDate.Before(req.RegistryDate) {
		return nil, fmt.Errorf("%w: expiry date precedes registry date", apperrors.ErrValidation)
	}

	now := time.Now()
	jobOrder := domain.JobOrder{
		JobOrderID:   uuid.NewString(),
		EmployerID:   employerID,
		JobType:      req.JobType,
		VacancyCount: req.VacancyCount,
		RegistryDate: req.RegistryDate,
		ExpiryDate:   expiryDate,
		SuccessCount: 0,
		Status:       domain.JobOrderActive,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}

	if err := s.jobOrderRepo.SaveJobOrder(ctx, jobOrder); err != nil {
		return nil, fmt.Errorf("failed to save job order: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Domestic recruitment registered",
		slog.String("job_order_id", jobOrder.JobOrderID),
		slog.String("employer_id", employerID),
		slog.Int("vacancy_count", req.VacancyCount),
	)

	return &jobOrder, nil
}

func (s *jobOrderService) AttachFutilityCertificate(ctx context.Context, jobOrderID string, req dto.AttachCertificateRequest, userID string) (*domain.JobOrder, error) {
	jobOrder, err := s.jobOrderRepo.FindJobOrderByID(ctx, jobOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job order %s: %w", jobOrderID, err)
	}

	if jobOrder.CertificateNumber != nil {
		return nil, fmt.Errorf("%w: job order %s already has a futility certificate", apperrors.ErrConflict, jobOrderID)
	}

	now := time.Now()
	if earliest := s.EarliestCertificateDate(jobOrder.RegistryDate); now.Before(earliest) {
		return nil, fmt.Errorf("%w: futility certificate not available before %s", apperrors.ErrValidation, earliest.Format("2006-01-02"))
	}

	if err := s.jobOrderRepo.SetCertificate(ctx, jobOrderID, req.CertificateNumber, userID, now); err != nil {
		return nil, fmt.Errorf("failed to attach certificate to job order %s: %w", jobOrderID, err)
	}

	return s.jobOrderRepo.FindJobOrderByID(ctx, jobOrderID)
}

func (s *jobOrderService) RecordDomesticHire(ctx context.Context, jobOrderID string, req dto.RecordDomesticHireRequest, userID string) (*domain.JobOrder, error) {
	jobOrder, err := s.jobOrderRepo.FindJobOrderByID(ctx, jobOrderID)
	if err != nil {
		return nil, fmt.Errorf("failed to find job order %s: %w", jobOrderID, err)
	}

	if jobOrder.Status != domain.JobOrderActive {
		return nil, fmt.Errorf("%w: job order %s is not active", apperrors.ErrConflict, jobOrderID)
	}

	if err := s.jobOrderRepo.AddDomesticHires(ctx, jobOrderID, req.HiredCount, userID, time.Now()); err != nil {
		return nil, fmt.Errorf("failed to record domestic hires on job order %s: %w", jobOrderID, err)
	}

	return s.jobOrderRepo.FindJobOrderByID(ctx, jobOrderID)
}

func (s *jobOrderService) GetJobOrderByID(ctx context.Context, jobOrderID string) (*domain.JobOrder, error) {
	return s.jobOrderRepo.FindJobOrderByID(ctx, jobOrderID)
}

func (s *jobOrderService) ListJobOrders(ctx context.Context, employerID string) ([]domain.JobOrder, error) {
	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}
	return s.jobOrderRepo.ListJobOrdersByEmployer(ctx, employerID)
}

package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
	"github.com/placementworks/recruit_quota_app/internal/middleware"
)

// quotaService serves the read-side balance projections and the
// reconciliation pass over cached employer totals. Balances are always
// computed from the per-permit entry sums, never from the cached columns.
type quotaService struct {
	permitRepo     portsrepo.PermitRepositoryFacade
	employerRepo   portsrepo.EmployerReader
	excludeExpired bool
}

// NewQuotaService creates a new QuotaService. When excludeExpired is set,
// permits past their validity window do not count toward employer totals.
func NewQuotaService(permitRepo portsrepo.PermitRepositoryFacade, employerRepo portsrepo.EmployerReader, excludeExpired bool) portssvc.QuotaSvcFacade {
	return &quotaService{
		permitRepo:     permitRepo,
		employerRepo:   employerRepo,
		excludeExpired: excludeExpired,
	}
}

// Ensure quotaService implements the portssvc.QuotaSvcFacade interface
var _ portssvc.QuotaSvcFacade = (*quotaService)(nil)

func (s *quotaService) AvailableQuota(ctx context.Context, employerID string) (*dto.AvailableQuotaResponse, error) {
	permits, total, err := s.projectQuota(ctx, employerID)
	if err != nil {
		return nil, err
	}
	return &dto.AvailableQuotaResponse{
		EmployerID: employerID,
		Permits:    permits,
		TotalQuota: total,
	}, nil
}

func (s *quotaService) EmployerTotalQuota(ctx context.Context, employerID string) (int, error) {
	_, total, err := s.projectQuota(ctx, employerID)
	return total, err
}

// projectQuota builds the per-permit balance projection. The used figure per
// permit is the sum over its entry rows; the cached used_quota column is not
// consulted.
func (s *quotaService) projectQuota(ctx context.Context, employerID string) ([]domain.PermitQuota, int, error) {
	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, 0, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}

	permits, err := s.permitRepo.FindPermitsByEmployer(ctx, employerID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list permits for employer %s: %w", employerID, err)
	}

	permitIDs := make([]string, len(permits))
	for i, p := range permits {
		permitIDs[i] = p.PermitID
	}

	usedByPermit, err := s.permitRepo.SumEntriesByPermitIDs(ctx, permitIDs)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to sum entries for employer %s: %w", employerID, err)
	}

	now := time.Now()
	projection := make([]domain.PermitQuota, len(permits))
	total := 0
	for i, p := range permits {
		used := usedByPermit[p.PermitID]
		remaining := domain.RemainingBalance(p.ApprovedQuota, used, p.RevokedQuota)
		projection[i] = domain.PermitQuota{
			PermitNumber: p.PermitNumber,
			IssueDate:    p.IssueDate,
			ValidUntil:   p.ValidUntil,
			Approved:     p.ApprovedQuota,
			Used:         used,
			Remaining:    remaining,
			Status:       domain.QuotaStatus(remaining),
		}
		if s.excludeExpired && p.ExpiredOn(now) {
			continue
		}
		total += remaining
	}

	return projection, total, nil
}

func (s *quotaService) ReconcileEmployerTotals(ctx context.Context, userID string) (*dto.ReconcileResponse, error) {
	employerIDs, err := s.employerRepo.ListEmployerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employers: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()
	resp := &dto.ReconcileResponse{
		EmployersChecked: len(employerIDs),
		Corrections:      []dto.ReconcileCorrection{},
	}

	for _, employerID := range employerIDs {
		// The previous value comes from the recompute's own locked read;
		// reading the cached total separately would race concurrent ledger
		// writers and report phantom drift.
		previous, recomputed, err := s.permitRepo.RecomputeEmployerTotal(ctx, employerID, userID, now)
		if err != nil {
			return nil, fmt.Errorf("failed to recompute total for employer %s: %w", employerID, err)
		}

		if recomputed != previous {
			logger.Warn("Cached quota total drifted from ledger",
				slog.String("employer_id", employerID),
				slog.Int("cached", previous),
				slog.Int("recomputed", recomputed),
			)
			resp.Corrections = append(resp.Corrections, dto.ReconcileCorrection{
				EmployerID:    employerID,
				PreviousTotal: previous,
				Recomputed:    recomputed,
			})
		}
	}

	logger.Info("Quota reconciliation finished",
		slog.Int("employers_checked", resp.EmployersChecked),
		slog.Int("corrections", len(resp.Corrections)),
	)

	return resp, nil
}

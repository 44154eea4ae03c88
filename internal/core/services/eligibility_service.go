package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
)

// eligibilityService assembles the inputs to the additional-quota formula and
// delegates the calculation to the domain.
type eligibilityService struct {
	laborCountRepo  portsrepo.LaborCountReader
	recognitionRepo portsrepo.RecognitionReader
	permitRepo      portsrepo.EntryReader
	employerRepo    portsrepo.EmployerReader
	additionalRate  decimal.Decimal
	rateCeiling     decimal.Decimal
	windowMonths    int
}

// NewEligibilityService creates a new EligibilityService with the configured
// regulatory rates and averaging window.
func NewEligibilityService(
	laborCountRepo portsrepo.LaborCountReader,
	recognitionRepo portsrepo.RecognitionReader,
	permitRepo portsrepo.EntryReader,
	employerRepo portsrepo.EmployerReader,
	additionalRate float64,
	rateCeiling float64,
	windowMonths int,
) portssvc.EligibilitySvcFacade {
	return &eligibilityService{
		laborCountRepo:  laborCountRepo,
		recognitionRepo: recognitionRepo,
		permitRepo:      permitRepo,
		employerRepo:    employerRepo,
		additionalRate:  decimal.NewFromFloat(additionalRate),
		rateCeiling:     decimal.NewFromFloat(rateCeiling),
		windowMonths:    windowMonths,
	}
}

// Ensure eligibilityService implements the portssvc.EligibilitySvcFacade interface
var _ portssvc.EligibilitySvcFacade = (*eligibilityService)(nil)

func (s *eligibilityService) CalculateAdditionalQuota(ctx context.Context, employerID string) (*domain.AdditionalQuotaAssessment, error) {
	if _, err := s.employerRepo.FindEmployerByID(ctx, employerID); err != nil {
		return nil, fmt.Errorf("failed to find employer %s: %w", employerID, err)
	}

	records, err := s.laborCountRepo.ListRecentLaborCounts(ctx, employerID, s.windowMonths)
	if err != nil {
		return nil, fmt.Errorf("failed to list labor counts for employer %s: %w", employerID, err)
	}

	average := decimal.Zero
	if len(records) > 0 {
		sum := decimal.Zero
		for _, r := range records {
			sum = sum.Add(decimal.NewFromInt(int64(r.Count)))
		}
		average = sum.Div(decimal.NewFromInt(int64(len(records))))
	}

	// Holding no active recognition is a normal ineligible outcome, not a failure.
	recognition, err := s.recognitionRepo.FindActiveRecognition(ctx, employerID, time.Now())
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to find active recognition for employer %s: %w", employerID, err)
		}
		recognition = nil
	}

	consumed, err := s.permitRepo.SumUsedByEmployer(ctx, employerID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum realized entries for employer %s: %w", employerID, err)
	}

	assessment := domain.AssessAdditionalQuota(average, recognition, consumed, s.additionalRate, s.rateCeiling)
	return &assessment, nil
}

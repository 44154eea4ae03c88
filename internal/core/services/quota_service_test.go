package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/core/services"
)

type QuotaServiceTestSuite struct {
	suite.Suite
	mockPermitRepo   *MockPermitRepository
	mockEmployerRepo *MockEmployerRepository
	service          portssvc.QuotaSvcFacade

	ctx        context.Context
	employerID string
	employer   *domain.Employer
}

func (suite *QuotaServiceTestSuite) SetupTest() {
	suite.mockPermitRepo = new(MockPermitRepository)
	suite.mockEmployerRepo = new(MockEmployerRepository)
	suite.service = services.NewQuotaService(suite.mockPermitRepo, suite.mockEmployerRepo, true)

	suite.ctx = context.Background()
	suite.employerID = uuid.NewString()
	suite.employer = &domain.Employer{EmployerID: suite.employerID, Name: "Seorim Fisheries"}
}

func (suite *QuotaServiceTestSuite) permitRow(number string, approved, revoked int, validUntil time.Time) domain.RecruitmentPermit {
	return domain.RecruitmentPermit{
		PermitID:      uuid.NewString(),
		EmployerID:    suite.employerID,
		PermitNumber:  number,
		IssueDate:     validUntil.AddDate(0, -3, 0),
		ValidUntil:    validUntil,
		ApprovedQuota: approved,
		RevokedQuota:  revoked,
	}
}

func (suite *QuotaServiceTestSuite) TestAvailableQuotaProjection() {
	future := time.Now().AddDate(0, 2, 0)
	permitA := suite.permitRow("RP-A", 10, 0, future)
	permitB := suite.permitRow("RP-B", 5, 1, future)

	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("FindPermitsByEmployer", suite.ctx, suite.employerID).
		Return([]domain.RecruitmentPermit{permitA, permitB}, nil)
	suite.mockPermitRepo.On("SumEntriesByPermitIDs", suite.ctx, []string{permitA.PermitID, permitB.PermitID}).
		Return(map[string]int{permitA.PermitID: 4, permitB.PermitID: 4}, nil)

	resp, err := suite.service.AvailableQuota(suite.ctx, suite.employerID)

	suite.Require().NoError(err)
	suite.Require().Len(resp.Permits, 2)

	suite.Equal(6, resp.Permits[0].Remaining)
	suite.Equal(domain.PermitAvailable, resp.Permits[0].Status)
	suite.Equal(0, resp.Permits[1].Remaining)
	suite.Equal(domain.PermitExhausted, resp.Permits[1].Status)
	suite.Equal(6, resp.TotalQuota)
}

func (suite *QuotaServiceTestSuite) TestAvailableQuotaUsesEntrySumsNotCachedColumn() {
	future := time.Now().AddDate(0, 2, 0)
	permit := suite.permitRow("RP-A", 10, 0, future)
	permit.UsedQuota = 9 // stale cache; entry rows say otherwise

	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("FindPermitsByEmployer", suite.ctx, suite.employerID).
		Return([]domain.RecruitmentPermit{permit}, nil)
	suite.mockPermitRepo.On("SumEntriesByPermitIDs", suite.ctx, []string{permit.PermitID}).
		Return(map[string]int{permit.PermitID: 2}, nil)

	resp, err := suite.service.AvailableQuota(suite.ctx, suite.employerID)

	suite.Require().NoError(err)
	suite.Equal(2, resp.Permits[0].Used)
	suite.Equal(8, resp.Permits[0].Remaining)
}

func (suite *QuotaServiceTestSuite) TestExpiredPermitListedButExcludedFromTotal() {
	past := time.Now().AddDate(0, -1, 0)
	future := time.Now().AddDate(0, 2, 0)
	expired := suite.permitRow("RP-OLD", 10, 0, past)
	current := suite.permitRow("RP-NEW", 5, 0, future)

	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("FindPermitsByEmployer", suite.ctx, suite.employerID).
		Return([]domain.RecruitmentPermit{expired, current}, nil)
	suite.mockPermitRepo.On("SumEntriesByPermitIDs", suite.ctx, mock.AnythingOfType("[]string")).
		Return(map[string]int{}, nil)

	resp, err := suite.service.AvailableQuota(suite.ctx, suite.employerID)

	suite.Require().NoError(err)
	suite.Len(resp.Permits, 2)
	suite.Equal(5, resp.TotalQuota)
}

func (suite *QuotaServiceTestSuite) TestAvailableQuotaIsReadOnly() {
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("FindPermitsByEmployer", suite.ctx, suite.employerID).
		Return([]domain.RecruitmentPermit{}, nil)
	suite.mockPermitRepo.On("SumEntriesByPermitIDs", suite.ctx, []string{}).
		Return(map[string]int{}, nil)

	_, err := suite.service.AvailableQuota(suite.ctx, suite.employerID)

	suite.Require().NoError(err)
	suite.mockPermitRepo.AssertNotCalled(suite.T(), "RecomputeEmployerTotal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *QuotaServiceTestSuite) TestReconcileReportsDriftOnly() {
	operatorID := uuid.NewString()
	driftedID := uuid.NewString()
	cleanID := uuid.NewString()

	suite.mockEmployerRepo.On("ListEmployerIDs", suite.ctx).Return([]string{driftedID, cleanID}, nil)
	suite.mockPermitRepo.On("RecomputeEmployerTotal", suite.ctx, driftedID, operatorID, mock.AnythingOfType("time.Time")).Return(9, 7, nil)
	suite.mockPermitRepo.On("RecomputeEmployerTotal", suite.ctx, cleanID, operatorID, mock.AnythingOfType("time.Time")).Return(4, 4, nil)

	resp, err := suite.service.ReconcileEmployerTotals(suite.ctx, operatorID)

	suite.Require().NoError(err)
	suite.Equal(2, resp.EmployersChecked)
	suite.Require().Len(resp.Corrections, 1)
	suite.Equal(driftedID, resp.Corrections[0].EmployerID)
	suite.Equal(9, resp.Corrections[0].PreviousTotal)
	suite.Equal(7, resp.Corrections[0].Recomputed)
}

func (suite *QuotaServiceTestSuite) TestReconcileComparesUnderTheRecomputeLock() {
	// Drift detection must use the before-value the recompute read under its
	// own row lock. A stale cached total fetched outside that transaction,
	// e.g. while a permit was being issued concurrently, must not surface as
	// a correction.
	operatorID := uuid.NewString()
	employerID := uuid.NewString()

	suite.mockEmployerRepo.On("ListEmployerIDs", suite.ctx).Return([]string{employerID}, nil)
	suite.mockPermitRepo.On("RecomputeEmployerTotal", suite.ctx, employerID, operatorID, mock.AnythingOfType("time.Time")).Return(15, 15, nil)

	resp, err := suite.service.ReconcileEmployerTotals(suite.ctx, operatorID)

	suite.Require().NoError(err)
	suite.Empty(resp.Corrections)
	suite.mockEmployerRepo.AssertNotCalled(suite.T(), "FindEmployerByID", mock.Anything, mock.Anything)
}

func TestQuotaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(QuotaServiceTestSuite))
}

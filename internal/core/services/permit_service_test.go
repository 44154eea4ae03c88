package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/core/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
)

const testValidityDays = 90

type PermitServiceTestSuite struct {
	suite.Suite
	mockPermitRepo   *MockPermitRepository
	mockEmployerRepo *MockEmployerRepository
	mockJobOrderRepo *MockJobOrderRepository
	service          portssvc.PermitSvcFacade

	ctx        context.Context
	employerID string
	operatorID string
	employer   *domain.Employer
}

func (suite *PermitServiceTestSuite) SetupTest() {
	suite.mockPermitRepo = new(MockPermitRepository)
	suite.mockEmployerRepo = new(MockEmployerRepository)
	suite.mockJobOrderRepo = new(MockJobOrderRepository)
	suite.service = services.NewPermitService(suite.mockPermitRepo, suite.mockEmployerRepo, suite.mockJobOrderRepo, testValidityDays)

	suite.ctx = context.Background()
	suite.employerID = uuid.NewString()
	suite.operatorID = uuid.NewString()
	suite.employer = &domain.Employer{EmployerID: suite.employerID, Name: "Hyundong Manufacturing"}
}

func (suite *PermitServiceTestSuite) validRequest() dto.IssuePermitRequest {
	return dto.IssuePermitRequest{
		PermitNumber:  "RP-2026-0001",
		IssueDate:     time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
		ApprovedQuota: 8,
	}
}

func (suite *PermitServiceTestSuite) TestIssuePermitSuccess() {
	req := suite.validRequest()
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("SavePermit", suite.ctx, mock.AnythingOfType("domain.RecruitmentPermit")).Return(nil)

	permit, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(req.PermitNumber, permit.PermitNumber)
	suite.Equal(req.ApprovedQuota, permit.ApprovedQuota)
	suite.Equal(0, permit.UsedQuota)
	suite.Equal(suite.operatorID, permit.CreatedBy)
	// Default validity window applied from the issue date
	suite.Equal(req.IssueDate.AddDate(0, 0, testValidityDays), permit.ValidUntil)
	suite.mockPermitRepo.AssertExpectations(suite.T())
}

func (suite *PermitServiceTestSuite) TestIssuePermitTrimsPermitNumber() {
	req := suite.validRequest()
	req.PermitNumber = "  RP-2026-0002  "
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("SavePermit", suite.ctx, mock.MatchedBy(func(p domain.RecruitmentPermit) bool {
		return p.PermitNumber == "RP-2026-0002"
	})).Return(nil)

	permit, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal("RP-2026-0002", permit.PermitNumber)
}

func (suite *PermitServiceTestSuite) TestIssuePermitBlankNumberRejected() {
	req := suite.validRequest()
	req.PermitNumber = "   "

	_, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPermitRepo.AssertNotCalled(suite.T(), "SavePermit", mock.Anything, mock.Anything)
}

func (suite *PermitServiceTestSuite) TestIssuePermitExplicitValidityKept() {
	req := suite.validRequest()
	validUntil := req.IssueDate.AddDate(0, 6, 0)
	req.ValidUntil = &validUntil
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("SavePermit", suite.ctx, mock.AnythingOfType("domain.RecruitmentPermit")).Return(nil)

	permit, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(validUntil, permit.ValidUntil)
}

func (suite *PermitServiceTestSuite) TestIssuePermitValidityBeforeIssueRejected() {
	req := suite.validRequest()
	validUntil := req.IssueDate.AddDate(0, 0, -1)
	req.ValidUntil = &validUntil
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)

	_, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *PermitServiceTestSuite) TestIssuePermitUnknownEmployerRejected() {
	req := suite.validRequest()
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(nil, apperrors.NewNotFoundError("employer not found"))

	_, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *PermitServiceTestSuite) TestIssuePermitForeignJobOrderRejected() {
	req := suite.validRequest()
	jobOrderID := uuid.NewString()
	req.JobOrderID = &jobOrderID
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockJobOrderRepo.On("FindJobOrderByID", suite.ctx, jobOrderID).Return(&domain.JobOrder{
		JobOrderID: jobOrderID,
		EmployerID: uuid.NewString(), // different employer
		Status:     domain.JobOrderActive,
	}, nil)

	_, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPermitRepo.AssertNotCalled(suite.T(), "SavePermit", mock.Anything, mock.Anything)
}

func (suite *PermitServiceTestSuite) TestIssuePermitCompletedJobOrderRejected() {
	req := suite.validRequest()
	jobOrderID := uuid.NewString()
	req.JobOrderID = &jobOrderID
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockJobOrderRepo.On("FindJobOrderByID", suite.ctx, jobOrderID).Return(&domain.JobOrder{
		JobOrderID: jobOrderID,
		EmployerID: suite.employerID,
		Status:     domain.JobOrderCompleted,
	}, nil)

	_, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *PermitServiceTestSuite) TestIssuePermitDuplicateNumberPropagated() {
	req := suite.validRequest()
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("SavePermit", suite.ctx, mock.AnythingOfType("domain.RecruitmentPermit")).
		Return(apperrors.NewDuplicatePermitError(req.PermitNumber))

	_, err := suite.service.IssuePermit(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().Error(err)
	var dupErr *apperrors.DuplicatePermitError
	suite.ErrorAs(err, &dupErr)
	suite.Equal(req.PermitNumber, dupErr.PermitNumber)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *PermitServiceTestSuite) TestRecordEntrySuccess() {
	permitID := uuid.NewString()
	updated := &domain.RecruitmentPermit{PermitID: permitID, ApprovedQuota: 8, UsedQuota: 3}
	suite.mockPermitRepo.On("RecordEntry", suite.ctx, mock.MatchedBy(func(e domain.EntryPermit) bool {
		return e.PermitID == permitID && e.WorkerCount == 3 && e.EntryID != ""
	})).Return(updated, nil)

	entry, err := suite.service.RecordEntry(suite.ctx, permitID, dto.RecordEntryRequest{WorkerCount: 3}, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(permitID, entry.PermitID)
	suite.Equal(3, entry.WorkerCount)
	suite.Equal(suite.operatorID, entry.CreatedBy)
}

func (suite *PermitServiceTestSuite) TestRecordEntryQuotaExceededPropagated() {
	permitID := uuid.NewString()
	suite.mockPermitRepo.On("RecordEntry", suite.ctx, mock.AnythingOfType("domain.EntryPermit")).
		Return(nil, apperrors.NewQuotaExceededError(permitID, 2, 5))

	_, err := suite.service.RecordEntry(suite.ctx, permitID, dto.RecordEntryRequest{WorkerCount: 5}, suite.operatorID)

	suite.Require().Error(err)
	var quotaErr *apperrors.QuotaExceededError
	suite.ErrorAs(err, &quotaErr)
	suite.Equal(2, quotaErr.Remaining)
	suite.Equal(5, quotaErr.Requested)
}

func (suite *PermitServiceTestSuite) TestRecordEntryNonPositiveCountRejected() {
	_, err := suite.service.RecordEntry(suite.ctx, uuid.NewString(), dto.RecordEntryRequest{WorkerCount: 0}, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPermitRepo.AssertNotCalled(suite.T(), "RecordEntry", mock.Anything, mock.Anything)
}

func (suite *PermitServiceTestSuite) TestRevokeQuotaDelegates() {
	permitID := uuid.NewString()
	updated := &domain.RecruitmentPermit{PermitID: permitID, ApprovedQuota: 8, RevokedQuota: 2}
	suite.mockPermitRepo.On("RevokePermitQuota", suite.ctx, permitID, 2, suite.operatorID, mock.AnythingOfType("time.Time")).Return(updated, nil)

	permit, err := suite.service.RevokePermitQuota(suite.ctx, permitID, dto.RevokeQuotaRequest{Amount: 2}, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(2, permit.RevokedQuota)
}

func (suite *PermitServiceTestSuite) TestGetPermitByNumberTrimsInput() {
	permit := &domain.RecruitmentPermit{PermitID: uuid.NewString(), PermitNumber: "RP-2026-0042"}
	suite.mockPermitRepo.On("FindPermitByNumber", suite.ctx, "RP-2026-0042").Return(permit, nil)

	found, err := suite.service.GetPermitByNumber(suite.ctx, "  RP-2026-0042  ")

	suite.Require().NoError(err)
	suite.Equal(permit.PermitID, found.PermitID)
}

func (suite *PermitServiceTestSuite) TestGetPermitByNumberRejectsBlank() {
	_, err := suite.service.GetPermitByNumber(suite.ctx, "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockPermitRepo.AssertNotCalled(suite.T(), "FindPermitByNumber", mock.Anything, mock.Anything)
}

func (suite *PermitServiceTestSuite) TestListPermitsPassesToken() {
	token := "opaque-token"
	next := "next-token"
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockPermitRepo.On("ListPermitsByEmployer", suite.ctx, suite.employerID, 20, &token).
		Return([]domain.RecruitmentPermit{{PermitID: uuid.NewString(), PermitNumber: "RP-1"}}, next, nil)

	resp, err := suite.service.ListPermits(suite.ctx, suite.employerID, dto.ListPermitsParams{NextToken: &token})

	suite.Require().NoError(err)
	suite.Len(resp.Permits, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(next, *resp.NextToken)
}

func TestPermitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PermitServiceTestSuite))
}

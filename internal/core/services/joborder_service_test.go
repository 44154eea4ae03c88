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

const testWaitingDays = 14

type JobOrderServiceTestSuite struct {
	suite.Suite
	mockJobOrderRepo *MockJobOrderRepository
	mockEmployerRepo *MockEmployerRepository
	service          portssvc.JobOrderSvcFacade

	ctx        context.Context
	employerID string
	operatorID string
	employer   *domain.Employer
}

func (suite *JobOrderServiceTestSuite) SetupTest() {
	suite.mockJobOrderRepo = new(MockJobOrderRepository)
	suite.mockEmployerRepo = new(MockEmployerRepository)
	suite.service = services.NewJobOrderService(suite.mockJobOrderRepo, suite.mockEmployerRepo, testWaitingDays)

	suite.ctx = context.Background()
	suite.employerID = uuid.NewString()
	suite.operatorID = uuid.NewString()
	suite.employer = &domain.Employer{EmployerID: suite.employerID, Name: "Dongrae Textiles"}
}

func (suite *JobOrderServiceTestSuite) TestEarliestCertificateDate() {
	registryDate := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	got := suite.service.EarliestCertificateDate(registryDate)

	suite.Equal(time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), got)
}

func (suite *JobOrderServiceTestSuite) TestRegisterDomesticRecruitment() {
	registryDate := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	req := dto.RegisterJobOrderRequest{
		JobType:      "welder",
		VacancyCount: 5,
		RegistryDate: registryDate,
	}
	suite.mockEmployerRepo.On("FindEmployerByID", suite.ctx, suite.employerID).Return(suite.employer, nil)
	suite.mockJobOrderRepo.On("SaveJobOrder", suite.ctx, mock.AnythingOfType("domain.JobOrder")).Return(nil)

	jobOrder, err := suite.service.RegisterDomesticRecruitment(suite.ctx, suite.employerID, req, suite.operatorID)

	suite.Require().NoError(err)
	suite.Equal(domain.JobOrderActive, jobOrder.Status)
	suite.Equal(0, jobOrder.SuccessCount)
	// Posting stays open at least through the statutory waiting window
	suite.Equal(registryDate.AddDate(0, 0, testWaitingDays), jobOrder.ExpiryDate)
}

func (suite *JobOrderServiceTestSuite) TestAttachCertificateBeforeWaitingPeriodRejected() {
	jobOrderID := uuid.NewString()
	suite.mockJobOrderRepo.On("FindJobOrderByID", suite.ctx, jobOrderID).Return(&domain.JobOrder{
		JobOrderID:   jobOrderID,
		EmployerID:   suite.employerID,
		RegistryDate: time.Now().AddDate(0, 0, -3), // waiting period not over
		Status:       domain.JobOrderActive,
	}, nil)

	_, err := suite.service.AttachFutilityCertificate(suite.ctx, jobOrderID, dto.AttachCertificateRequest{CertificateNumber: "FC-1"}, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockJobOrderRepo.AssertNotCalled(suite.T(), "SetCertificate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JobOrderServiceTestSuite) TestAttachCertificateAfterWaitingPeriod() {
	jobOrderID := uuid.NewString()
	jobOrder := &domain.JobOrder{
		JobOrderID:   jobOrderID,
		EmployerID:   suite.employerID,
		RegistryDate: time.Now().AddDate(0, 0, -testWaitingDays-1),
		Status:       domain.JobOrderActive,
	}
	suite.mockJobOrderRepo.On("FindJobOrderByID", suite.ctx, jobOrderID).Return(jobOrder, nil)
	suite.mockJobOrderRepo.On("SetCertificate", suite.ctx, jobOrderID, "FC-1", suite.operatorID, mock.AnythingOfType("time.Time")).Return(nil)

	_, err := suite.service.AttachFutilityCertificate(suite.ctx, jobOrderID, dto.AttachCertificateRequest{CertificateNumber: "FC-1"}, suite.operatorID)

	suite.Require().NoError(err)
	suite.mockJobOrderRepo.AssertExpectations(suite.T())
}

func (suite *JobOrderServiceTestSuite) TestAttachCertificateTwiceRejected() {
	jobOrderID := uuid.NewString()
	existing := "FC-0"
	suite.mockJobOrderRepo.On("FindJobOrderByID", suite.ctx, jobOrderID).Return(&domain.JobOrder{
		JobOrderID:        jobOrderID,
		RegistryDate:      time.Now().AddDate(0, -2, 0),
		CertificateNumber: &existing,
		Status:            domain.JobOrderActive,
	}, nil)

	_, err := suite.service.AttachFutilityCertificate(suite.ctx, jobOrderID, dto.AttachCertificateRequest{CertificateNumber: "FC-1"}, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
}

func (suite *JobOrderServiceTestSuite) TestRecordDomesticHireOnCompletedOrderRejected() {
	jobOrderID := uuid.NewString()
	suite.mockJobOrderRepo.On("FindJobOrderByID", suite.ctx, jobOrderID).Return(&domain.JobOrder{
		JobOrderID: jobOrderID,
		Status:     domain.JobOrderCompleted,
	}, nil)

	_, err := suite.service.RecordDomesticHire(suite.ctx, jobOrderID, dto.RecordDomesticHireRequest{HiredCount: 1}, suite.operatorID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.mockJobOrderRepo.AssertNotCalled(suite.T(), "AddDomesticHires", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestJobOrderServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JobOrderServiceTestSuite))
}

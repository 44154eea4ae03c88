package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
	"github.com/placementworks/recruit_quota_app/internal/handlers"
	"github.com/placementworks/recruit_quota_app/internal/middleware"
	"github.com/placementworks/recruit_quota_app/internal/platform/config"
)

// --- Mock PermitService ---
type MockPermitService struct {
	mock.Mock
}

var _ portssvc.PermitSvcFacade = (*MockPermitService)(nil)

func (m *MockPermitService) IssuePermit(ctx context.Context, employerID string, req dto.IssuePermitRequest, creatorUserID string) (*domain.RecruitmentPermit, error) {
	args := m.Called(ctx, employerID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitService) RevokePermitQuota(ctx context.Context, permitID string, req dto.RevokeQuotaRequest, userID string) (*domain.RecruitmentPermit, error) {
	args := m.Called(ctx, permitID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitService) RecordEntry(ctx context.Context, permitID string, req dto.RecordEntryRequest, userID string) (*domain.EntryPermit, error) {
	args := m.Called(ctx, permitID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EntryPermit), args.Error(1)
}

func (m *MockPermitService) GetPermitByNumber(ctx context.Context, permitNumber string) (*domain.RecruitmentPermit, error) {
	args := m.Called(ctx, permitNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitService) GetPermitByID(ctx context.Context, permitID string) (*domain.RecruitmentPermit, error) {
	args := m.Called(ctx, permitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitService) ListPermits(ctx context.Context, employerID string, params dto.ListPermitsParams) (*dto.ListPermitsResponse, error) {
	args := m.Called(ctx, employerID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPermitsResponse), args.Error(1)
}

func (m *MockPermitService) ListEntries(ctx context.Context, permitID string) ([]domain.EntryPermit, error) {
	args := m.Called(ctx, permitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryPermit), args.Error(1)
}

// --- Test Suite ---
type PermitHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockPermitService *MockPermitService
	employerID        string
}

func (suite *PermitHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockPermitService = new(MockPermitService)
	suite.employerID = uuid.NewString()

	services := &portssvc.ServiceContainer{Permit: suite.mockPermitService}

	suite.router = gin.New()
	suite.router.Use(middleware.OperatorMiddleware())
	handlers.RegisterRoutes(suite.router, &config.Config{}, services)
}

func (suite *PermitHandlerTestSuite) issueRequest(body any, operator string) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/employers/"+suite.employerID+"/permits", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	if operator != "" {
		req.Header.Set(middleware.OperatorHeader, operator)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PermitHandlerTestSuite) TestIssuePermitCreated() {
	issueDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	req := dto.IssuePermitRequest{PermitNumber: "RP-2026-0001", IssueDate: issueDate, ApprovedQuota: 8}
	permit := &domain.RecruitmentPermit{
		PermitID:      uuid.NewString(),
		EmployerID:    suite.employerID,
		PermitNumber:  req.PermitNumber,
		IssueDate:     issueDate,
		ApprovedQuota: 8,
	}
	suite.mockPermitService.On("IssuePermit", mock.Anything, suite.employerID, req, "clerk-7").Return(permit, nil)

	w := suite.issueRequest(req, "clerk-7")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PermitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("RP-2026-0001", resp.PermitNumber)
	suite.mockPermitService.AssertExpectations(suite.T())
}

func (suite *PermitHandlerTestSuite) TestIssuePermitWithoutOperatorUsesSystem() {
	issueDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	req := dto.IssuePermitRequest{PermitNumber: "RP-2026-0002", IssueDate: issueDate, ApprovedQuota: 3}
	permit := &domain.RecruitmentPermit{PermitID: uuid.NewString(), PermitNumber: req.PermitNumber}
	suite.mockPermitService.On("IssuePermit", mock.Anything, suite.employerID, req, "system").Return(permit, nil)

	w := suite.issueRequest(req, "")

	suite.Equal(http.StatusCreated, w.Code)
	suite.mockPermitService.AssertExpectations(suite.T())
}

func (suite *PermitHandlerTestSuite) TestIssuePermitDuplicateNumberConflict() {
	issueDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	req := dto.IssuePermitRequest{PermitNumber: "RP-2026-0001", IssueDate: issueDate, ApprovedQuota: 8}
	suite.mockPermitService.On("IssuePermit", mock.Anything, suite.employerID, req, mock.AnythingOfType("string")).
		Return(nil, apperrors.NewDuplicatePermitError(req.PermitNumber))

	w := suite.issueRequest(req, "clerk-7")

	suite.Equal(http.StatusConflict, w.Code)
	suite.Contains(w.Body.String(), "RP-2026-0001")
}

func (suite *PermitHandlerTestSuite) TestIssuePermitMissingFieldsRejected() {
	w := suite.issueRequest(map[string]any{"permitNumber": "RP-1"}, "clerk-7")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPermitService.AssertNotCalled(suite.T(), "IssuePermit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PermitHandlerTestSuite) TestRecordEntryQuotaExceededConflict() {
	permitID := uuid.NewString()
	suite.mockPermitService.On("RecordEntry", mock.Anything, permitID, dto.RecordEntryRequest{WorkerCount: 5}, mock.AnythingOfType("string")).
		Return(nil, apperrors.NewQuotaExceededError(permitID, 2, 5))

	payload, _ := json.Marshal(dto.RecordEntryRequest{WorkerCount: 5})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/permits/"+permitID+"/entries", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *PermitHandlerTestSuite) TestGetPermitByNumber() {
	permit := &domain.RecruitmentPermit{PermitID: uuid.NewString(), PermitNumber: "RP-2026-0042"}
	suite.mockPermitService.On("GetPermitByNumber", mock.Anything, "RP-2026-0042").Return(permit, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/permits?number=RP-2026-0042", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PermitResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(permit.PermitID, resp.PermitID)
}

func (suite *PermitHandlerTestSuite) TestGetPermitNotFound() {
	permitID := uuid.NewString()
	suite.mockPermitService.On("GetPermitByID", mock.Anything, permitID).
		Return(nil, apperrors.NewNotFoundError("permit not found"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/permits/"+permitID, nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestPermitHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PermitHandlerTestSuite))
}

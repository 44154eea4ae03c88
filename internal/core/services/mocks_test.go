package services_test

import (
	"context"
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployerRepository ---
type MockEmployerRepository struct {
	mock.Mock
}

// Ensure MockEmployerRepository implements portsrepo.EmployerRepositoryFacade
var _ portsrepo.EmployerRepositoryFacade = (*MockEmployerRepository)(nil)

func (m *MockEmployerRepository) FindEmployerByID(ctx context.Context, employerID string) (*domain.Employer, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employer), args.Error(1)
}

func (m *MockEmployerRepository) ListEmployers(ctx context.Context, limit int, offset int) ([]domain.Employer, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employer), args.Error(1)
}

func (m *MockEmployerRepository) ListEmployerIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockEmployerRepository) SaveEmployer(ctx context.Context, employer domain.Employer) error {
	args := m.Called(ctx, employer)
	return args.Error(0)
}

// --- Mock LaborCountRepository ---
type MockLaborCountRepository struct {
	mock.Mock
}

var _ portsrepo.LaborCountRepositoryFacade = (*MockLaborCountRepository)(nil)

func (m *MockLaborCountRepository) ListLaborCountsByEmployer(ctx context.Context, employerID string) ([]domain.LaborCountRecord, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LaborCountRecord), args.Error(1)
}

func (m *MockLaborCountRepository) ListRecentLaborCounts(ctx context.Context, employerID string, window int) ([]domain.LaborCountRecord, error) {
	args := m.Called(ctx, employerID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LaborCountRecord), args.Error(1)
}

func (m *MockLaborCountRepository) UpsertLaborCount(ctx context.Context, record domain.LaborCountRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

// --- Mock RecognitionRepository ---
type MockRecognitionRepository struct {
	mock.Mock
}

var _ portsrepo.RecognitionRepositoryFacade = (*MockRecognitionRepository)(nil)

func (m *MockRecognitionRepository) FindActiveRecognition(ctx context.Context, employerID string, asOf time.Time) (*domain.IndustryRecognition, error) {
	args := m.Called(ctx, employerID, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.IndustryRecognition), args.Error(1)
}

func (m *MockRecognitionRepository) ListRecognitionsByEmployer(ctx context.Context, employerID string) ([]domain.IndustryRecognition, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.IndustryRecognition), args.Error(1)
}

func (m *MockRecognitionRepository) SaveRecognition(ctx context.Context, recognition domain.IndustryRecognition) error {
	args := m.Called(ctx, recognition)
	return args.Error(0)
}

// --- Mock JobOrderRepository ---
type MockJobOrderRepository struct {
	mock.Mock
}

var _ portsrepo.JobOrderRepositoryFacade = (*MockJobOrderRepository)(nil)

func (m *MockJobOrderRepository) FindJobOrderByID(ctx context.Context, jobOrderID string) (*domain.JobOrder, error) {
	args := m.Called(ctx, jobOrderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobOrder), args.Error(1)
}

func (m *MockJobOrderRepository) ListJobOrdersByEmployer(ctx context.Context, employerID string) ([]domain.JobOrder, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobOrder), args.Error(1)
}

func (m *MockJobOrderRepository) SaveJobOrder(ctx context.Context, jobOrder domain.JobOrder) error {
	args := m.Called(ctx, jobOrder)
	return args.Error(0)
}

func (m *MockJobOrderRepository) SetCertificate(ctx context.Context, jobOrderID string, certificateNumber string, userID string, now time.Time) error {
	args := m.Called(ctx, jobOrderID, certificateNumber, userID, now)
	return args.Error(0)
}

func (m *MockJobOrderRepository) AddDomesticHires(ctx context.Context, jobOrderID string, hired int, userID string, now time.Time) error {
	args := m.Called(ctx, jobOrderID, hired, userID, now)
	return args.Error(0)
}

// --- Mock PermitRepository ---
type MockPermitRepository struct {
	mock.Mock
}

var _ portsrepo.PermitRepositoryFacade = (*MockPermitRepository)(nil)

func (m *MockPermitRepository) FindPermitByID(ctx context.Context, permitID string) (*domain.RecruitmentPermit, error) {
	args := m.Called(ctx, permitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitRepository) FindPermitByNumber(ctx context.Context, permitNumber string) (*domain.RecruitmentPermit, error) {
	args := m.Called(ctx, permitNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitRepository) FindPermitsByEmployer(ctx context.Context, employerID string) ([]domain.RecruitmentPermit, error) {
	args := m.Called(ctx, employerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitRepository) ListPermitsByEmployer(ctx context.Context, employerID string, limit int, nextToken *string) ([]domain.RecruitmentPermit, *string, error) {
	args := m.Called(ctx, employerID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.RecruitmentPermit), returnedNextToken, args.Error(2)
}

func (m *MockPermitRepository) ListEntriesByPermit(ctx context.Context, permitID string) ([]domain.EntryPermit, error) {
	args := m.Called(ctx, permitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntryPermit), args.Error(1)
}

func (m *MockPermitRepository) SumEntriesByPermitIDs(ctx context.Context, permitIDs []string) (map[string]int, error) {
	args := m.Called(ctx, permitIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

func (m *MockPermitRepository) SumUsedByEmployer(ctx context.Context, employerID string) (int, error) {
	args := m.Called(ctx, employerID)
	return args.Int(0), args.Error(1)
}

func (m *MockPermitRepository) SavePermit(ctx context.Context, permit domain.RecruitmentPermit) error {
	args := m.Called(ctx, permit)
	return args.Error(0)
}

func (m *MockPermitRepository) RecordEntry(ctx context.Context, entry domain.EntryPermit) (*domain.RecruitmentPermit, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitRepository) RevokePermitQuota(ctx context.Context, permitID string, amount int, userID string, now time.Time) (*domain.RecruitmentPermit, error) {
	args := m.Called(ctx, permitID, amount, userID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RecruitmentPermit), args.Error(1)
}

func (m *MockPermitRepository) RecomputeEmployerTotal(ctx context.Context, employerID string, userID string, now time.Time) (int, int, error) {
	args := m.Called(ctx, employerID, userID, now)
	return args.Int(0), args.Int(1), args.Error(2)
}

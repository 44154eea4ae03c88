package services

import (
	"context"
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/dto"
)

// JobOrderReaderSvc defines read operations for job orders
type JobOrderReaderSvc interface {
	// GetJobOrderByID retrieves a specific job order by its ID.
	GetJobOrderByID(ctx context.Context, jobOrderID string) (*domain.JobOrder, error)

	// ListJobOrders retrieves all job orders for an employer.
	ListJobOrders(ctx context.Context, employerID string) ([]domain.JobOrder, error)

	// EarliestCertificateDate returns the earliest date on which a futility
	// certificate may be requested for a registration made on registryDate.
	// Pure; callable independently of persistence.
	EarliestCertificateDate(registryDate time.Time) time.Time
}

// JobOrderWriterSvc defines write operations for job orders
type JobOrderWriterSvc interface {
	// RegisterDomesticRecruitment creates a job order in active status.
	RegisterDomesticRecruitment(ctx context.Context, employerID string, req dto.RegisterJobOrderRequest, creatorUserID string) (*domain.JobOrder, error)

	// AttachFutilityCertificate records the certificate obtained after the
	// statutory waiting period. Rejected before the waiting period elapses.
	AttachFutilityCertificate(ctx context.Context, jobOrderID string, req dto.AttachCertificateRequest, userID string) (*domain.JobOrder, error)

	// RecordDomesticHire adds domestically-hired workers to the job order's
	// success count, reducing the headcount requestable via permit.
	RecordDomesticHire(ctx context.Context, jobOrderID string, req dto.RecordDomesticHireRequest, userID string) (*domain.JobOrder, error)
}

// JobOrderSvcFacade combines all job-order service interfaces
type JobOrderSvcFacade interface {
	JobOrderReaderSvc
	JobOrderWriterSvc
}

package services

import (
	"context"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/dto"
)

// LaborCountSvcFacade defines operations on monthly labor count snapshots.
type LaborCountSvcFacade interface {
	// UpsertLaborCount records (or corrects) the headcount snapshot for one
	// employer and calendar month.
	UpsertLaborCount(ctx context.Context, employerID string, req dto.UpsertLaborCountRequest, userID string) (*domain.LaborCountRecord, error)

	// ListLaborCounts retrieves the employer's snapshots, most recent first.
	ListLaborCounts(ctx context.Context, employerID string) ([]domain.LaborCountRecord, error)
}

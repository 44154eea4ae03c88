package dto

import (
	"time"

	"github.com/placementworks/recruit_quota_app/internal/core/domain"
)

// IssuePermitRequest defines the data needed to register a recruitment permit.
type IssuePermitRequest struct {
	PermitNumber  string     `json:"permitNumber" binding:"required"`
	IssueDate     time.Time  `json:"issueDate" binding:"required"`
	ApprovedQuota int        `json:"approvedQuota" binding:"required,gt=0"`
	JobOrderID    *string    `json:"jobOrderID"`    // Optional link to the originating job order
	ValidUntil    *time.Time `json:"validUntil"`    // Optional; defaults to issue date + statutory validity window
	AttachmentRef *string    `json:"attachmentRef"` // Optional scanned document reference
}

// RevokeQuotaRequest removes headcount from a permit.
type RevokeQuotaRequest struct {
	Amount int `json:"amount" binding:"required,gt=0"`
}

// RecordEntryRequest records one batch of imported workers against a permit.
type RecordEntryRequest struct {
	WorkerCount int        `json:"workerCount" binding:"required,gt=0"`
	OccurredAt  *time.Time `json:"occurredAt"` // Optional, defaults to now
}

// PermitResponse defines the data returned for a recruitment permit.
type PermitResponse struct {
	PermitID      string     `json:"permitID"`
	EmployerID    string     `json:"employerID"`
	JobOrderID    *string    `json:"jobOrderID"`
	PermitNumber  string     `json:"permitNumber"`
	IssueDate     time.Time  `json:"issueDate"`
	ValidUntil    time.Time  `json:"validUntil"`
	ApprovedQuota int        `json:"approvedQuota"`
	UsedQuota     int        `json:"usedQuota"`
	RevokedQuota  int        `json:"revokedQuota"`
	AttachmentRef *string    `json:"attachmentRef"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// ToPermitResponse converts a domain.RecruitmentPermit to its response DTO
func ToPermitResponse(p *domain.RecruitmentPermit) PermitResponse {
	return PermitResponse{
		PermitID:      p.PermitID,
		EmployerID:    p.EmployerID,
		JobOrderID:    p.JobOrderID,
		PermitNumber:  p.PermitNumber,
		IssueDate:     p.IssueDate,
		ValidUntil:    p.ValidUntil,
		ApprovedQuota: p.ApprovedQuota,
		UsedQuota:     p.UsedQuota,
		RevokedQuota:  p.RevokedQuota,
		AttachmentRef: p.AttachmentRef,
		CreatedAt:     p.CreatedAt,
	}
}

// ToListPermitResponse converts a slice of permits to response DTOs
func ToListPermitResponse(permits []domain.RecruitmentPermit) []PermitResponse {
	res := make([]PermitResponse, len(permits))
	for i, p := range permits {
		res[i] = ToPermitResponse(&p)
	}
	return res
}

// EntryResponse defines the data returned for an entry realization.
type EntryResponse struct {
	EntryID     string    `json:"entryID"`
	PermitID    string    `json:"permitID"`
	WorkerCount int       `json:"workerCount"`
	OccurredAt  time.Time `json:"occurredAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToEntryResponse converts a domain.EntryPermit to its response DTO
func ToEntryResponse(e *domain.EntryPermit) EntryResponse {
	return EntryResponse{
		EntryID:     e.EntryID,
		PermitID:    e.PermitID,
		WorkerCount: e.WorkerCount,
		OccurredAt:  e.OccurredAt,
		CreatedAt:   e.CreatedAt,
	}
}

// ToListEntryResponse converts a slice of entries to response DTOs
func ToListEntryResponse(entries []domain.EntryPermit) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(&e)
	}
	return res
}

// ListPermitsParams defines query parameters for listing permits.
type ListPermitsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListPermitsResponse wraps a page of permits with the next-page token.
type ListPermitsResponse struct {
	Permits   []PermitResponse `json:"permits"`
	NextToken *string          `json:"nextToken,omitempty"`
}

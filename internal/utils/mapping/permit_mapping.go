package mapping

import (
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/models"
)

// ToModelPermit converts a domain RecruitmentPermit to its model representation.
func ToModelPermit(d domain.RecruitmentPermit) models.RecruitmentPermit {
	return models.RecruitmentPermit{
		PermitID:      d.PermitID,
		EmployerID:    d.EmployerID,
		JobOrderID:    d.JobOrderID,
		PermitNumber:  d.PermitNumber,
		IssueDate:     d.IssueDate,
		ValidUntil:    d.ValidUntil,
		ApprovedQuota: d.ApprovedQuota,
		UsedQuota:     d.UsedQuota,
		RevokedQuota:  d.RevokedQuota,
		AttachmentRef: d.AttachmentRef,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPermit converts a model RecruitmentPermit back to the domain type.
func ToDomainPermit(m models.RecruitmentPermit) domain.RecruitmentPermit {
	return domain.RecruitmentPermit{
		PermitID:      m.PermitID,
		EmployerID:    m.EmployerID,
		JobOrderID:    m.JobOrderID,
		PermitNumber:  m.PermitNumber,
		IssueDate:     m.IssueDate,
		ValidUntil:    m.ValidUntil,
		ApprovedQuota: m.ApprovedQuota,
		UsedQuota:     m.UsedQuota,
		RevokedQuota:  m.RevokedQuota,
		AttachmentRef: m.AttachmentRef,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPermitSlice converts a slice of model permits to domain permits.
func ToDomainPermitSlice(ms []models.RecruitmentPermit) []domain.RecruitmentPermit {
	ds := make([]domain.RecruitmentPermit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPermit(m)
	}
	return ds
}

// ToModelEntry converts a domain EntryPermit to its model representation.
func ToModelEntry(d domain.EntryPermit) models.EntryPermit {
	return models.EntryPermit{
		EntryID:     d.EntryID,
		PermitID:    d.PermitID,
		WorkerCount: d.WorkerCount,
		OccurredAt:  d.OccurredAt,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEntry converts a model EntryPermit back to the domain type.
func ToDomainEntry(m models.EntryPermit) domain.EntryPermit {
	return domain.EntryPermit{
		EntryID:     m.EntryID,
		PermitID:    m.PermitID,
		WorkerCount: m.WorkerCount,
		OccurredAt:  m.OccurredAt,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainEntrySlice converts a slice of model entries to domain entries.
func ToDomainEntrySlice(ms []models.EntryPermit) []domain.EntryPermit {
	ds := make([]domain.EntryPermit, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}

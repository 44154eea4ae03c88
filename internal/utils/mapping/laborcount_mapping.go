package mapping

import (
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/models"
)

// ToModelLaborCount converts a domain LaborCountRecord to its model representation.
func ToModelLaborCount(d domain.LaborCountRecord) models.LaborCountRecord {
	return models.LaborCountRecord{
		LaborCountID: d.LaborCountID,
		EmployerID:   d.EmployerID,
		Year:         d.Year,
		Month:        d.Month,
		Count:        d.Count,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLaborCount converts a model LaborCountRecord back to the domain type.
func ToDomainLaborCount(m models.LaborCountRecord) domain.LaborCountRecord {
	return domain.LaborCountRecord{
		LaborCountID: m.LaborCountID,
		EmployerID:   m.EmployerID,
		Year:         m.Year,
		Month:        m.Month,
		Count:        m.Count,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLaborCountSlice converts a slice of model labor counts to domain labor counts.
func ToDomainLaborCountSlice(ms []models.LaborCountRecord) []domain.LaborCountRecord {
	ds := make([]domain.LaborCountRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLaborCount(m)
	}
	return ds
}

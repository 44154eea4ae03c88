package mapping

import (
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/models"
)

// ToModelEmployer converts a domain Employer to its model representation.
func ToModelEmployer(d domain.Employer) models.Employer {
	return models.Employer{
		EmployerID:     d.EmployerID,
		Name:           d.Name,
		BusinessRegNo:  d.BusinessRegNo,
		Representative: d.Representative,
		TotalQuota:     d.TotalQuota,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployer converts a model Employer back to the domain type.
func ToDomainEmployer(m models.Employer) domain.Employer {
	return domain.Employer{
		EmployerID:     m.EmployerID,
		Name:           m.Name,
		BusinessRegNo:  m.BusinessRegNo,
		Representative: m.Representative,
		TotalQuota:     m.TotalQuota,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

package mapping

import (
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/models"
)

// ToModelJobOrder converts a domain JobOrder to its model representation.
func ToModelJobOrder(d domain.JobOrder) models.JobOrder {
	return models.JobOrder{
		JobOrderID:        d.JobOrderID,
		EmployerID:        d.EmployerID,
		JobType:           d.JobType,
		VacancyCount:      d.VacancyCount,
		RegistryDate:      d.RegistryDate,
		ExpiryDate:        d.ExpiryDate,
		CertificateNumber: d.CertificateNumber,
		SuccessCount:      d.SuccessCount,
		Status:            models.JobOrderStatus(d.Status),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainJobOrder converts a model JobOrder back to the domain type.
func ToDomainJobOrder(m models.JobOrder) domain.JobOrder {
	return domain.JobOrder{
		JobOrderID:        m.JobOrderID,
		EmployerID:        m.EmployerID,
		JobType:           m.JobType,
		VacancyCount:      m.VacancyCount,
		RegistryDate:      m.RegistryDate,
		ExpiryDate:        m.ExpiryDate,
		CertificateNumber: m.CertificateNumber,
		SuccessCount:      m.SuccessCount,
		Status:            domain.JobOrderStatus(m.Status),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainJobOrderSlice converts a slice of model job orders to domain job orders.
func ToDomainJobOrderSlice(ms []models.JobOrder) []domain.JobOrder {
	ds := make([]domain.JobOrder, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainJobOrder(m)
	}
	return ds
}

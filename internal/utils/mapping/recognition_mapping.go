package mapping

import (
	"github.com/placementworks/recruit_quota_app/internal/core/domain"
	"github.com/placementworks/recruit_quota_app/internal/models"
)

// ToModelRecognition converts a domain IndustryRecognition to its model representation.
func ToModelRecognition(d domain.IndustryRecognition) models.IndustryRecognition {
	return models.IndustryRecognition{
		RecognitionID:      d.RecognitionID,
		EmployerID:         d.EmployerID,
		Tier:               models.RecognitionTier(d.Tier),
		BaseAllocationRate: d.BaseAllocationRate,
		ExtraRate:          d.ExtraRate,
		IssueDate:          d.IssueDate,
		ExpiryDate:         d.ExpiryDate,
		ReferenceNumber:    d.ReferenceNumber,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecognition converts a model IndustryRecognition back to the domain type.
func ToDomainRecognition(m models.IndustryRecognition) domain.IndustryRecognition {
	return domain.IndustryRecognition{
		RecognitionID:      m.RecognitionID,
		EmployerID:         m.EmployerID,
		Tier:               domain.RecognitionTier(m.Tier),
		BaseAllocationRate: m.BaseAllocationRate,
		ExtraRate:          m.ExtraRate,
		IssueDate:          m.IssueDate,
		ExpiryDate:         m.ExpiryDate,
		ReferenceNumber:    m.ReferenceNumber,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRecognitionSlice converts a slice of model recognitions to domain recognitions.
func ToDomainRecognitionSlice(ms []models.IndustryRecognition) []domain.IndustryRecognition {
	ds := make([]domain.IndustryRecognition, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRecognition(m)
	}
	return ds
}

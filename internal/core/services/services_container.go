package services

import (
	portsrepo "github.com/placementworks/recruit_quota_app/internal/core/ports/repositories"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employer = NewEmployerService(repos.EmployerRepo)
	container.LaborCount = NewLaborCountService(repos.LaborCountRepo, repos.EmployerRepo)
	container.Recognition = NewRecognitionService(repos.RecognitionRepo, repos.EmployerRepo)
	container.JobOrder = NewJobOrderService(repos.JobOrderRepo, repos.EmployerRepo, cfg.DomesticWaitingDays)
	container.Permit = NewPermitService(repos.PermitRepo, repos.EmployerRepo, repos.JobOrderRepo, cfg.PermitValidityDays)
	container.Quota = NewQuotaService(repos.PermitRepo, repos.EmployerRepo, cfg.ExcludeExpiredFromTotal)
	container.Eligibility = NewEligibilityService(
		repos.LaborCountRepo,
		repos.RecognitionRepo,
		repos.PermitRepo,
		repos.EmployerRepo,
		cfg.AdditionalQuotaRate,
		cfg.TotalRateCeiling,
		cfg.LaborAvgWindowMonths,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EmployerSvcFacade    = (*employerService)(nil)
	_ portssvc.PermitSvcFacade      = (*permitService)(nil)
	_ portssvc.QuotaSvcFacade       = (*quotaService)(nil)
	_ portssvc.EligibilitySvcFacade = (*eligibilityService)(nil)
)

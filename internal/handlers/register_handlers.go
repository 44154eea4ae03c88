package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	setupAPIV1Routes(r, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	registerEmployerRoutes(v1, services.Employer)
	registerLaborCountRoutes(v1, services.LaborCount)
	registerRecognitionRoutes(v1, services.Recognition)
	registerJobOrderRoutes(v1, services.JobOrder)
	registerPermitRoutes(v1, services.Permit)
	registerQuotaRoutes(v1, services.Quota, services.Eligibility)
}

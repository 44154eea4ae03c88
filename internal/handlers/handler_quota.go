package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
	"github.com/placementworks/recruit_quota_app/internal/middleware"
)

// quotaHandler serves the quota projections, the additional-quota assessment
// and the reconciliation endpoint.
type quotaHandler struct {
	quotaService       portssvc.QuotaSvcFacade
	eligibilityService portssvc.EligibilitySvcFacade
}

// registerQuotaRoutes registers the quota read endpoints under the employer
// resource plus the system-wide reconciliation trigger.
func registerQuotaRoutes(rg *gin.RouterGroup, quotaService portssvc.QuotaSvcFacade, eligibilityService portssvc.EligibilitySvcFacade) {
	h := &quotaHandler{quotaService: quotaService, eligibilityService: eligibilityService}

	quota := rg.Group("/employers/:id/quota")
	{
		quota.GET("", h.getAvailableQuota)
		quota.GET("/total", h.getTotalQuota)
		quota.GET("/additional", h.getAdditionalQuota)
	}

	rg.POST("/quota/reconcile", h.reconcileTotals)
}

func (h *quotaHandler) getAvailableQuota(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	resp, err := h.quotaService.AvailableQuota(c.Request.Context(), employerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else {
			logger.Error("Failed to project available quota", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute available quota"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getTotalQuota serves the employer total alone; the per-permit breakdown
// lives one level up on the quota endpoint.
func (h *quotaHandler) getTotalQuota(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	total, err := h.quotaService.EmployerTotalQuota(c.Request.Context(), employerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else {
			logger.Error("Failed to read employer total quota", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read total quota"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"employerID": employerID, "totalQuota": total})
}

func (h *quotaHandler) getAdditionalQuota(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	assessment, err := h.eligibilityService.CalculateAdditionalQuota(c.Request.Context(), employerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else {
			logger.Error("Failed to assess additional quota", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assess additional quota"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAdditionalQuotaResponse(employerID, assessment))
}

func (h *quotaHandler) reconcileTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	operatorID := middleware.GetOperatorFromContext(c)

	resp, err := h.quotaService.ReconcileEmployerTotals(c.Request.Context(), operatorID)
	if err != nil {
		logger.Error("Failed to reconcile quota totals", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reconcile quota totals"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

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

// laborCountHandler handles HTTP requests for monthly labor count snapshots.
type laborCountHandler struct {
	laborCountService portssvc.LaborCountSvcFacade
}

// registerLaborCountRoutes registers routes for labor count snapshots under
// the employer resource.
func registerLaborCountRoutes(rg *gin.RouterGroup, laborCountService portssvc.LaborCountSvcFacade) {
	h := &laborCountHandler{laborCountService: laborCountService}

	laborCounts := rg.Group("/employers/:id/labor-counts")
	{
		laborCounts.PUT("", h.upsertLaborCount)
		laborCounts.GET("", h.listLaborCounts)
	}
}

func (h *laborCountHandler) upsertLaborCount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	var req dto.UpsertLaborCountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertLaborCount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)

	record, err := h.laborCountService.UpsertLaborCount(c.Request.Context(), employerID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Employer not found for labor count", slog.String("employer_id", employerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error upserting labor count", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to upsert labor count in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record labor count"})
		}
		return
	}

	logger.Info("Labor count recorded", slog.String("employer_id", employerID), slog.Int("year", req.Year), slog.Int("month", req.Month))
	c.JSON(http.StatusOK, dto.ToLaborCountResponse(record))
}

func (h *laborCountHandler) listLaborCounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	records, err := h.laborCountService.ListLaborCounts(c.Request.Context(), employerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else {
			logger.Error("Failed to list labor counts from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list labor counts"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"laborCounts": dto.ToListLaborCountResponse(records)})
}

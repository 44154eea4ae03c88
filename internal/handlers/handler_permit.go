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

// permitHandler handles HTTP requests for the permit ledger.
type permitHandler struct {
	permitService portssvc.PermitSvcFacade
}

// registerPermitRoutes registers permit ledger routes. Issuance and listing
// live under the employer resource; per-permit operations address the permit
// directly.
func registerPermitRoutes(rg *gin.RouterGroup, permitService portssvc.PermitSvcFacade) {
	h := &permitHandler{permitService: permitService}

	employerPermits := rg.Group("/employers/:id/permits")
	{
		employerPermits.POST("", h.issuePermit)
		employerPermits.GET("", h.listPermits)
	}

	permits := rg.Group("/permits")
	{
		permits.GET("", h.getPermitByNumber)
		permits.GET("/:id", h.getPermit)
		permits.POST("/:id/revocations", h.revokeQuota)
		permits.POST("/:id/entries", h.recordEntry)
		permits.GET("/:id/entries", h.listEntries)
	}
}

func (h *permitHandler) issuePermit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	var req dto.IssuePermitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for IssuePermit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)
	logger.Info("Received request to issue permit", slog.String("employer_id", employerID), slog.String("permit_number", req.PermitNumber))

	permit, err := h.permitService.IssuePermit(c.Request.Context(), employerID, req, operatorID)
	if err != nil {
		var dupErr *apperrors.DuplicatePermitError
		if errors.As(err, &dupErr) {
			logger.Warn("Duplicate permit number", slog.String("permit_number", dupErr.PermitNumber))
			c.JSON(http.StatusConflict, gin.H{"error": dupErr.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Dependency not found issuing permit", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Conflict issuing permit", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error issuing permit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to issue permit in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue permit"})
		}
		return
	}

	logger.Info("Permit issued successfully", slog.String("permit_id", permit.PermitID))
	c.JSON(http.StatusCreated, dto.ToPermitResponse(permit))
}

func (h *permitHandler) getPermit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	permitID := c.Param("id")

	permit, err := h.permitService.GetPermitByID(c.Request.Context(), permitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Permit not found"})
		} else {
			logger.Error("Failed to get permit from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve permit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPermitResponse(permit))
}

// getPermitByNumber looks a permit up by the government-assigned number on
// the paper document, e.g. GET /permits?number=RP-2026-0001.
func (h *permitHandler) getPermitByNumber(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	number := c.Query("number")
	permit, err := h.permitService.GetPermitByNumber(c.Request.Context(), number)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Permit not found"})
		} else {
			logger.Error("Failed to get permit by number", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve permit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPermitResponse(permit))
}

func (h *permitHandler) listPermits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	var params dto.ListPermitsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListPermits", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.permitService.ListPermits(c.Request.Context(), employerID, params)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list permits from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list permits"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *permitHandler) revokeQuota(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	permitID := c.Param("id")

	var req dto.RevokeQuotaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RevokeQuota", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)

	permit, err := h.permitService.RevokePermitQuota(c.Request.Context(), permitID, req, operatorID)
	if err != nil {
		var quotaErr *apperrors.QuotaExceededError
		if errors.As(err, &quotaErr) {
			logger.Warn("Revocation exceeds remaining balance", slog.String("permit_id", permitID), slog.Int("remaining", quotaErr.Remaining), slog.Int("requested", quotaErr.Requested))
			c.JSON(http.StatusConflict, gin.H{"error": quotaErr.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Permit not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to revoke quota in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke quota"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPermitResponse(permit))
}

func (h *permitHandler) recordEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	permitID := c.Param("id")

	var req dto.RecordEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)

	entry, err := h.permitService.RecordEntry(c.Request.Context(), permitID, req, operatorID)
	if err != nil {
		var quotaErr *apperrors.QuotaExceededError
		if errors.As(err, &quotaErr) {
			logger.Warn("Entry exceeds remaining balance", slog.String("permit_id", permitID), slog.Int("remaining", quotaErr.Remaining), slog.Int("requested", quotaErr.Requested))
			c.JSON(http.StatusConflict, gin.H{"error": quotaErr.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Permit not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record entry in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record entry"})
		}
		return
	}

	logger.Info("Entry recorded successfully", slog.String("entry_id", entry.EntryID), slog.String("permit_id", permitID))
	c.JSON(http.StatusCreated, dto.ToEntryResponse(entry))
}

func (h *permitHandler) listEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	permitID := c.Param("id")

	entries, err := h.permitService.ListEntries(c.Request.Context(), permitID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Permit not found"})
		} else {
			logger.Error("Failed to list entries from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": dto.ToListEntryResponse(entries)})
}

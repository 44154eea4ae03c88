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

// employerHandler handles HTTP requests related to employers.
type employerHandler struct {
	employerService portssvc.EmployerSvcFacade
}

// newEmployerHandler creates a new employerHandler.
func newEmployerHandler(es portssvc.EmployerSvcFacade) *employerHandler {
	return &employerHandler{
		employerService: es,
	}
}

// registerEmployerRoutes registers routes related to the employer registry.
func registerEmployerRoutes(rg *gin.RouterGroup, employerService portssvc.EmployerSvcFacade) {
	h := newEmployerHandler(employerService)

	employers := rg.Group("/employers")
	{
		employers.POST("", h.createEmployer)
		employers.GET("", h.listEmployers)
		employers.GET("/:id", h.getEmployer)
	}
}

func (h *employerHandler) createEmployer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)
	logger.Info("Received request to create employer", slog.String("name", req.Name))

	employer, err := h.employerService.CreateEmployer(c.Request.Context(), req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate employer", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating employer", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create employer in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employer"})
		}
		return
	}

	logger.Info("Employer created successfully", slog.String("employer_id", employer.EmployerID))
	c.JSON(http.StatusCreated, dto.ToEmployerResponse(employer))
}

func (h *employerHandler) getEmployer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	employer, err := h.employerService.GetEmployerByID(c.Request.Context(), employerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Employer not found", slog.String("employer_id", employerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else {
			logger.Error("Failed to get employer from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employer"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployerResponse(employer))
}

func (h *employerHandler) listEmployers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListEmployers", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	employers, err := h.employerService.ListEmployers(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list employers from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list employers"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"employers": dto.ToListEmployerResponse(employers)})
}

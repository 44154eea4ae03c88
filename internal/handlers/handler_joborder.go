package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/placementworks/recruit_quota_app/internal/apperrors"
	portssvc "github.com/placementworks/recruit_quota_app/internal/core/ports/services"
	"github.com/placementworks/recruit_quota_app/internal/dto"
	"github.com/placementworks/recruit_quota_app/internal/middleware"
)

// jobOrderHandler handles HTTP requests for the domestic recruitment workflow.
type jobOrderHandler struct {
	jobOrderService portssvc.JobOrderSvcFacade
}

// registerJobOrderRoutes registers job order routes. Creation and listing
// live under the employer resource; lifecycle operations address the job
// order directly.
func registerJobOrderRoutes(rg *gin.RouterGroup, jobOrderService portssvc.JobOrderSvcFacade) {
	h := &jobOrderHandler{jobOrderService: jobOrderService}

	employerJobOrders := rg.Group("/employers/:id/job-orders")
	{
		employerJobOrders.POST("", h.registerDomesticRecruitment)
		employerJobOrders.GET("", h.listJobOrders)
	}

	jobOrders := rg.Group("/job-orders")
	{
		jobOrders.GET("/certificate-date", h.getEarliestCertificateDate)
		jobOrders.GET("/:id", h.getJobOrder)
		jobOrders.POST("/:id/certificate", h.attachFutilityCertificate)
		jobOrders.POST("/:id/domestic-hires", h.recordDomesticHire)
	}
}

func (h *jobOrderHandler) registerDomesticRecruitment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	var req dto.RegisterJobOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RegisterDomesticRecruitment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)

	jobOrder, err := h.jobOrderService.RegisterDomesticRecruitment(c.Request.Context(), employerID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Employer not found for job order", slog.String("employer_id", employerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error registering job order", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to register job order in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register domestic recruitment"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToJobOrderResponse(jobOrder))
}

func (h *jobOrderHandler) getJobOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobOrderID := c.Param("id")

	jobOrder, err := h.jobOrderService.GetJobOrderByID(c.Request.Context(), jobOrderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job order not found"})
		} else {
			logger.Error("Failed to get job order from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve job order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJobOrderResponse(jobOrder))
}

func (h *jobOrderHandler) listJobOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	jobOrders, err := h.jobOrderService.ListJobOrders(c.Request.Context(), employerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else {
			logger.Error("Failed to list job orders from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list job orders"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"jobOrders": dto.ToListJobOrderResponse(jobOrders)})
}

// getEarliestCertificateDate answers the planning question of when a posting
// registered on a given date becomes eligible for a futility certificate.
func (h *jobOrderHandler) getEarliestCertificateDate(c *gin.Context) {
	registryDateStr := c.Query("registryDate")
	registryDate, err := time.Parse("2006-01-02", registryDateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "registryDate must be a date in YYYY-MM-DD form"})
		return
	}

	c.JSON(http.StatusOK, dto.CertificateDateResponse{
		RegistryDate:            registryDate,
		EarliestCertificateDate: h.jobOrderService.EarliestCertificateDate(registryDate),
	})
}

func (h *jobOrderHandler) attachFutilityCertificate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobOrderID := c.Param("id")

	var req dto.AttachCertificateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AttachFutilityCertificate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)

	jobOrder, err := h.jobOrderService.AttachFutilityCertificate(c.Request.Context(), jobOrderID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job order not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Certificate conflict", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Certificate requested too early", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to attach certificate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to attach certificate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJobOrderResponse(jobOrder))
}

func (h *jobOrderHandler) recordDomesticHire(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	jobOrderID := c.Param("id")

	var req dto.RecordDomesticHireRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordDomesticHire", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)

	jobOrder, err := h.jobOrderService.RecordDomesticHire(c.Request.Context(), jobOrderID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Job order not found"})
		} else if errors.Is(err, apperrors.ErrConflict) {
			logger.Warn("Domestic hire conflict", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record domestic hire in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record domestic hire"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToJobOrderResponse(jobOrder))
}

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

// recognitionHandler handles HTTP requests for industry recognition documents.
type recognitionHandler struct {
	recognitionService portssvc.RecognitionSvcFacade
}

// registerRecognitionRoutes registers recognition routes under the employer resource.
func registerRecognitionRoutes(rg *gin.RouterGroup, recognitionService portssvc.RecognitionSvcFacade) {
	h := &recognitionHandler{recognitionService: recognitionService}

	recognitions := rg.Group("/employers/:id/recognitions")
	{
		recognitions.POST("", h.createRecognition)
		recognitions.GET("", h.listRecognitions)
		recognitions.GET("/active", h.getActiveRecognition)
	}
}

func (h *recognitionHandler) createRecognition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	var req dto.CreateRecognitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateRecognition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": bindErrorMessage(err)})
		return
	}

	operatorID := middleware.GetOperatorFromContext(c)

	recognition, err := h.recognitionService.CreateRecognition(c.Request.Context(), employerID, req, operatorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Employer not found for recognition", slog.String("employer_id", employerID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating recognition", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create recognition in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recognition"})
		}
		return
	}

	logger.Info("Recognition created", slog.String("recognition_id", recognition.RecognitionID), slog.String("employer_id", employerID))
	c.JSON(http.StatusCreated, dto.ToRecognitionResponse(recognition))
}

func (h *recognitionHandler) getActiveRecognition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	recognition, err := h.recognitionService.GetActiveRecognition(c.Request.Context(), employerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active recognition"})
		} else {
			logger.Error("Failed to get active recognition from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve recognition"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToRecognitionResponse(recognition))
}

func (h *recognitionHandler) listRecognitions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employerID := c.Param("id")

	recognitions, err := h.recognitionService.ListRecognitions(c.Request.Context(), employerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		} else {
			logger.Error("Failed to list recognitions from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list recognitions"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"recognitions": dto.ToListRecognitionResponse(recognitions)})
}

package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
	"github.com/Skbaji74/scan-nourish-ai/internal/llm"
	"github.com/Skbaji74/scan-nourish-ai/internal/service"
)

const rateLimitMessage = "Rate limit exceeded. Please try again in a moment."

// ScanHandler mantiene dependencias para el endpoint de analisis.
type ScanHandler struct {
	logger  *zap.Logger
	scans   *service.ScanService
	limiter service.ScanRateLimiter
}

// NewScanHandler crea el handler. limiter puede ser nil (sin limite local).
func NewScanHandler(logger *zap.Logger, scans *service.ScanService, limiter service.ScanRateLimiter) *ScanHandler {
	return &ScanHandler{
		logger:  logger,
		scans:   scans,
		limiter: limiter,
	}
}

type userProfilePayload struct {
	Allergies   []string `json:"allergies"`
	Conditions  []string `json:"conditions"`
	Preferences []string `json:"preferences"`
}

// AnalyzeFood maneja POST /analyze-food.
func (h *ScanHandler) AnalyzeFood(c *gin.Context) {
	var req struct {
		ImageBase64 string              `json:"imageBase64"`
		UserID      string              `json:"userId"`
		UserProfile *userProfilePayload `json:"userProfile"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid analyze request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if h.limiter != nil && !h.limiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": rateLimitMessage})
		return
	}

	profile := domain.HealthProfile{UserID: req.UserID}
	if req.UserProfile != nil {
		profile.Allergies = req.UserProfile.Allergies
		profile.Conditions = req.UserProfile.Conditions
		profile.Preferences = req.UserProfile.Preferences
	}

	result, err := h.scans.AnalyzeFood(c.Request.Context(), req.ImageBase64, profile)
	if err != nil {
		h.respondAnalyzeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// respondAnalyzeError traduce la taxonomia de errores del servicio a los
// status del contrato: 400 sin imagen, 429/402 del proveedor, 500 el resto.
func (h *ScanHandler) respondAnalyzeError(c *gin.Context, err error) {
	var upstream *llm.UpstreamError
	switch {
	case errors.Is(err, service.ErrNoImage):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No image provided"})
	case errors.Is(err, service.ErrMissingAPIKey):
		h.logger.Error("llm api key not provisioned")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing LOVABLE_API_KEY"})
	case errors.Is(err, llm.ErrRateLimited):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": rateLimitMessage})
	case errors.Is(err, llm.ErrQuotaExhausted):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "AI credits exhausted. Please add credits to continue."})
	case errors.As(err, &upstream):
		h.logger.Error("analysis upstream failed", zap.Int("status", upstream.Status))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI analysis error", "details": upstream.Body})
	default:
		h.logger.Error("analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "AI analysis error", "details": err.Error()})
	}
}

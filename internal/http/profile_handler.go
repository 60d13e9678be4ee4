package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
	"github.com/Skbaji74/scan-nourish-ai/internal/repository"
)

const recentScansLimit = 20

// ProfileHandler expone el perfil de salud y el historial de escaneos.
// Ambos repos pueden ser nil: sin base de datos los endpoints responden 503
// y el resto del servicio sigue funcionando.
type ProfileHandler struct {
	logger   *zap.Logger
	profiles repository.HealthProfileRepository
	scans    repository.ScanRepository
}

func NewProfileHandler(
	logger *zap.Logger,
	profiles repository.HealthProfileRepository,
	scans repository.ScanRepository,
) *ProfileHandler {
	return &ProfileHandler{
		logger:   logger,
		profiles: profiles,
		scans:    scans,
	}
}

// SaveProfile maneja PUT /profile. Sobrescribe el registro completo.
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	if h.profiles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage not configured"})
		return
	}

	var profile domain.HealthProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		h.logger.Warn("invalid profile request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if strings.TrimSpace(profile.UserID) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
		return
	}
	profile.UpdatedAt = time.Now().UTC()

	if err := h.profiles.Upsert(c.Request.Context(), profile); err != nil {
		h.logger.Error("profile upsert failed", zap.Error(err), zap.String("user_id", profile.UserID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not save profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// GetProfile maneja GET /profile/:user_id.
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	if h.profiles == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage not configured"})
		return
	}

	userID := c.Param("user_id")
	profile, err := h.profiles.GetByUserID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		h.logger.Error("profile lookup failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": profile})
}

// ListScans maneja GET /scans/:user_id.
func (h *ProfileHandler) ListScans(c *gin.Context) {
	if h.scans == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage not configured"})
		return
	}

	userID := c.Param("user_id")
	records, err := h.scans.ListRecentByUser(c.Request.Context(), userID, recentScansLimit)
	if err != nil {
		h.logger.Error("scan history lookup failed", zap.Error(err), zap.String("user_id", userID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load scans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans": records})
}

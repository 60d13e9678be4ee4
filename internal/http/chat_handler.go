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

// ChatHandler mantiene dependencias para el endpoint de chat.
type ChatHandler struct {
	logger *zap.Logger
	chat   *service.ChatService
}

func NewChatHandler(logger *zap.Logger, chat *service.ChatService) *ChatHandler {
	return &ChatHandler{
		logger: logger,
		chat:   chat,
	}
}

// FoodChat maneja POST /food-chat.
func (h *ChatHandler) FoodChat(c *gin.Context) {
	var req struct {
		Messages    []domain.ChatMessage `json:"messages"`
		ScanContext *domain.ScanResult   `json:"scanContext"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid chat request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	reply, err := h.chat.Chat(c.Request.Context(), req.Messages, req.ScanContext)
	if err != nil {
		var upstream *llm.UpstreamError
		switch {
		case errors.Is(err, service.ErrMissingAPIKey):
			h.logger.Error("chat api key not provisioned")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Missing GEMINI_API_KEY"})
		case errors.As(err, &upstream):
			h.logger.Error("chat upstream failed", zap.Int("status", upstream.Status))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Gemini API error", "details": upstream.Body})
		default:
			h.logger.Error("chat failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "AI chat error", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
	"github.com/Skbaji74/scan-nourish-ai/internal/llm"
)

const chatFallbackReply = "Sorry, I couldn't generate a response."

// ChatService responde un turno de conversacion, opcionalmente anclado en
// un ScanResult previo. Las respuestas son texto opaco: aqui no se
// normaliza nada.
type ChatService struct {
	chat    llm.ChatClient
	prompts ChatPromptBuilder
	logger  *zap.Logger
	apiKey  string
}

func NewChatService(chat llm.ChatClient, logger *zap.Logger, apiKey string) *ChatService {
	return &ChatService{
		chat:   chat,
		logger: logger,
		apiKey: apiKey,
	}
}

// Chat mapea el historial completo al formato del proveedor: la instruccion
// de sistema va como primer turno de usuario, assistant se traduce a model.
func (s *ChatService) Chat(ctx context.Context, history []domain.ChatMessage, scan *domain.ScanResult) (string, error) {
	if strings.TrimSpace(s.apiKey) == "" {
		return "", ErrMissingAPIKey
	}

	contents := make([]llm.Content, 0, len(history)+1)
	contents = append(contents, llm.Content{
		Role:  llm.RoleTurnUser,
		Parts: []llm.Part{{Text: s.prompts.BuildSystemPrompt(scan)}},
	})

	for _, msg := range history {
		role := llm.RoleTurnUser
		if msg.Role == domain.RoleAssistant {
			role = llm.RoleTurnModel
		}
		contents = append(contents, llm.Content{
			Role:  role,
			Parts: []llm.Part{{Text: msg.Content}},
		})
	}

	reply, err := s.chat.GenerateContent(ctx, contents)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(reply) == "" {
		s.logger.Warn("empty chat reply from model")
		return chatFallbackReply, nil
	}
	return reply, nil
}

package domain

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage es un turno de la conversacion sobre un escaneo.
// La secuencia es append-only; los mensajes nunca se mutan ni reordenan.
type ChatMessage struct {
	ID      string `json:"id,omitempty"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

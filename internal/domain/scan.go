package domain

import "time"

// ScanResult es el analisis normalizado de una etiqueta de alimento.
// El Normalizer garantiza que los cuatro campos siempre estan presentes.
type ScanResult struct {
	Score       int      `json:"score"`
	Ingredients []string `json:"ingredients"`
	Highlights  []string `json:"highlights"`
	Summary     string   `json:"summary"`
}

// ScanRecord es una entrada del historial de escaneos persistido.
type ScanRecord struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id,omitempty"`
	Score       int       `json:"score"`
	Ingredients []string  `json:"ingredients"`
	Highlights  []string  `json:"highlights"`
	Summary     string    `json:"summary"`
	CreatedAt   time.Time `json:"created_at"`
}

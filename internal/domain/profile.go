package domain

import "time"

// HealthProfile son los datos de salud que personalizan el analisis.
// Todos los campos son opcionales; las listas vacias se muestran al modelo
// como "None specified".
type HealthProfile struct {
	UserID          string    `json:"user_id,omitempty"`
	Name            string    `json:"name,omitempty"`
	Age             string    `json:"age,omitempty"`
	Weight          string    `json:"weight,omitempty"`
	Height          string    `json:"height,omitempty"`
	Allergies       []string  `json:"allergies,omitempty"`
	Conditions      []string  `json:"conditions,omitempty"`
	Preferences     []string  `json:"preferences,omitempty"`
	OtherAllergies  string    `json:"other_allergies,omitempty"`
	OtherConditions string    `json:"other_conditions,omitempty"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

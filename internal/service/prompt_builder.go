package service

import (
	"fmt"
	"strings"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
)

// ScanPromptBuilder arma la instruccion de analisis para el modelo de vision.
type ScanPromptBuilder struct{}

// BuildAnalysisPrompt combina la tarea fija de OCR/analisis con el contexto
// de salud del usuario y el formato JSON estricto que se espera de vuelta.
func (ScanPromptBuilder) BuildAnalysisPrompt(profile domain.HealthProfile) string {
	var sb strings.Builder

	sb.WriteString("You are a food ingredient analyzer. Analyze this food label image and extract the ingredients list using OCR.\n\n")

	sb.WriteString("User Health Profile:\n")
	sb.WriteString(fmt.Sprintf("- Allergies: %s\n", joinOrNone(profile.Allergies)))
	sb.WriteString(fmt.Sprintf("- Health Conditions: %s\n", joinOrNone(profile.Conditions)))
	sb.WriteString(fmt.Sprintf("- Dietary Preferences: %s\n\n", joinOrNone(profile.Preferences)))

	sb.WriteString("Based on the ingredients found and the user's health profile, provide:\n\n")
	sb.WriteString("1. A health score from 0-100 (where 100 is healthiest)\n")
	sb.WriteString("2. A list of all ingredients detected\n")
	sb.WriteString("3. Key highlights about the food (warnings, benefits, concerns based on user's profile)\n")
	sb.WriteString("4. A brief summary of the overall healthiness\n\n")

	sb.WriteString("IMPORTANT: Respond ONLY with valid JSON in this exact format:\n")
	sb.WriteString("{\n")
	sb.WriteString("  \"score\": <number 0-100>,\n")
	sb.WriteString("  \"ingredients\": [\"ingredient1\", \"ingredient2\", ...],\n")
	sb.WriteString("  \"highlights\": [\"highlight1\", \"highlight2\", ...],\n")
	sb.WriteString("  \"summary\": \"Brief summary of the food's healthiness\"\n")
	sb.WriteString("}\n\n")

	sb.WriteString("If you cannot read the ingredients clearly, still provide your best analysis with what you can see. If it's not a food label image, return a score of 0 with an appropriate message.")

	return sb.String()
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "None specified"
	}
	return strings.Join(items, ", ")
}

// ChatPromptBuilder arma el turno de sistema del asistente nutricional.
type ChatPromptBuilder struct{}

// BuildSystemPrompt describe la persona del asistente y, si hay un escaneo
// previo, agrega su contexto campo por campo.
func (ChatPromptBuilder) BuildSystemPrompt(scan *domain.ScanResult) string {
	var sb strings.Builder

	sb.WriteString("You are Health Assistant, a concise, friendly nutrition expert.\n")
	sb.WriteString("Use the provided scan context to answer user questions about the scanned food.\n")
	sb.WriteString("- Be practical and evidence-based\n")
	sb.WriteString("- If relevant, suggest healthier alternatives\n")
	sb.WriteString("- Consider common allergies/conditions if in the context\n")
	sb.WriteString("- Keep answers clear and brief unless asked for detail")

	if scan == nil {
		return sb.String()
	}

	sb.WriteString("\n\nScan Context:\n")
	if scan.Summary != "" {
		sb.WriteString(fmt.Sprintf("Summary: %s\n", scan.Summary))
	}
	if len(scan.Highlights) > 0 {
		sb.WriteString(fmt.Sprintf("Key Points: %s\n", strings.Join(scan.Highlights, ", ")))
	}
	if len(scan.Ingredients) > 0 {
		sb.WriteString(fmt.Sprintf("Ingredients: %s\n", strings.Join(scan.Ingredients, ", ")))
	}
	sb.WriteString(fmt.Sprintf("Health Score: %d\n", scan.Score))

	return sb.String()
}

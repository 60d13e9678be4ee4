package service

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
)

const (
	emptyFallbackHighlight = "Could not analyze the image"
	emptyFallbackSummary   = "Unable to analyze the food label. Please try with a clearer image."
	degradedHighlight      = "Analysis completed but response format was unexpected"
	degradedSummaryLimit   = 200
)

// fencedBlockRe captura el contenido de un bloque ```json ... ``` (o sin tag).
var fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// NormalizeScanResult convierte la salida cruda del modelo en un ScanResult.
// El modelo recibe la instruccion de responder JSON puro pero no siempre
// cumple; se intenta en orden: bloque fenced, primer objeto {...}, texto
// crudo. La funcion es total: cualquier entrada (vacia, basura binaria,
// JSON invalido) produce un resultado renderizable, nunca un error.
func NormalizeScanResult(raw string) domain.ScanResult {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyFallbackResult()
	}

	candidate := trimmed
	if m := fencedBlockRe.FindStringSubmatch(trimmed); len(m) == 2 {
		candidate = strings.TrimSpace(m[1])
	} else if obj := extractFirstJSONObject(trimmed); obj != "" {
		candidate = obj
	}

	var parsed struct {
		Score       float64  `json:"score"`
		Ingredients []string `json:"ingredients"`
		Highlights  []string `json:"highlights"`
		Summary     string   `json:"summary"`
	}
	if err := json.Unmarshal([]byte(candidate), &parsed); err != nil {
		return degradedResult(raw)
	}

	result := domain.ScanResult{
		Score:       int(parsed.Score),
		Ingredients: parsed.Ingredients,
		Highlights:  parsed.Highlights,
		Summary:     parsed.Summary,
	}
	if result.Ingredients == nil {
		result.Ingredients = []string{}
	}
	if result.Highlights == nil {
		result.Highlights = []string{}
	}
	return result
}

// EmptyFallbackResult es la respuesta de baja confianza cuando el modelo no
// devolvio texto. Se prefiere sobre un error: la omision upstream es comun
// y no debe romper la experiencia.
func EmptyFallbackResult() domain.ScanResult {
	return domain.ScanResult{
		Score:       50,
		Ingredients: []string{},
		Highlights:  []string{emptyFallbackHighlight},
		Summary:     emptyFallbackSummary,
	}
}

// degradedResult se usa cuando hubo texto pero no se pudo parsear: el
// summary conserva los primeros 200 caracteres crudos para el usuario.
func degradedResult(raw string) domain.ScanResult {
	summary := raw
	if len(summary) > degradedSummaryLimit {
		summary = summary[:degradedSummaryLimit]
	}
	return domain.ScanResult{
		Score:       50,
		Ingredients: []string{},
		Highlights:  []string{degradedHighlight},
		Summary:     summary,
	}
}

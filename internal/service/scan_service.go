package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Skbaji74/scan-nourish-ai/internal/domain"
	"github.com/Skbaji74/scan-nourish-ai/internal/llm"
	"github.com/Skbaji74/scan-nourish-ai/internal/repository"
)

var (
	ErrNoImage       = errors.New("no image provided")
	ErrMissingAPIKey = errors.New("llm api key not configured")
)

// ScanService realiza un analisis de etiqueta: compone el prompt con el
// perfil del usuario, llama al modelo de vision y normaliza la respuesta.
type ScanService struct {
	vision  llm.VisionClient
	scans   repository.ScanRepository
	prompts ScanPromptBuilder
	logger  *zap.Logger
	apiKey  string
}

// NewScanService crea el servicio. scans puede ser nil: sin base de datos
// no se guarda historial y el analisis funciona igual.
func NewScanService(vision llm.VisionClient, scans repository.ScanRepository, logger *zap.Logger, apiKey string) *ScanService {
	return &ScanService{
		vision: vision,
		scans:  scans,
		logger: logger,
		apiKey: apiKey,
	}
}

// AnalyzeFood hace un viaje de ida y vuelta al modelo de vision.
// Nunca llama upstream sin imagen ni sin credencial. Una respuesta exitosa
// sin texto se absorbe como fallback renderizable, no como error.
func (s *ScanService) AnalyzeFood(ctx context.Context, imageBase64 string, profile domain.HealthProfile) (domain.ScanResult, error) {
	if strings.TrimSpace(imageBase64) == "" {
		return domain.ScanResult{}, ErrNoImage
	}
	if strings.TrimSpace(s.apiKey) == "" {
		return domain.ScanResult{}, ErrMissingAPIKey
	}

	prompt := s.prompts.BuildAnalysisPrompt(profile)

	raw, err := s.vision.AnalyzeImage(ctx, prompt, imageBase64)
	if err != nil {
		return domain.ScanResult{}, err
	}

	var result domain.ScanResult
	if strings.TrimSpace(raw) == "" {
		s.logger.Warn("empty analysis response from model")
		result = EmptyFallbackResult()
	} else {
		result = NormalizeScanResult(raw)
	}

	s.recordScan(result, profile.UserID)

	return result, nil
}

// recordScan guarda el historial sin bloquear la respuesta al usuario.
// Un fallo de persistencia solo se loguea.
func (s *ScanService) recordScan(result domain.ScanResult, userID string) {
	if s.scans == nil {
		return
	}

	record := domain.ScanRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		Score:       result.Score,
		Ingredients: result.Ingredients,
		Highlights:  result.Highlights,
		Summary:     result.Summary,
		CreatedAt:   time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.scans.Create(ctx, record); err != nil {
			s.logger.Warn("scan record failed", zap.Error(err), zap.String("scan_id", record.ID))
		}
	}()
}
